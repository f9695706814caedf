package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cmd := exec.Command("git", "init")
	cmd.Dir = dir
	require.NoError(t, cmd.Run())
	return dir
}

func TestIsRepo(t *testing.T) {
	assert.False(t, IsRepo(t.TempDir()), "empty dir should not be a repo")
	assert.True(t, IsRepo(initRepo(t)), "initialized dir should be a repo")
}

func TestCommitFiles(t *testing.T) {
	dir := initRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ledger.beancount"), []byte("2020-01-01 * \"\" \"\"\n"), 0o644))

	hash, err := CommitFiles(dir, "import: tangerine_march.csv", "Test Author", "test@example.com", []string{"ledger.beancount"})
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "import: tangerine_march.csv")

	authorLog := exec.Command("git", "log", "--format=%an <%ae>", "-1")
	authorLog.Dir = dir
	out, err = authorLog.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "Test Author <test@example.com>")
}
