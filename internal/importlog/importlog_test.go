package importlog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "import-log.csv")

	first := Entry{
		Timestamp:  time.Date(2020, 3, 15, 10, 30, 0, 0, time.UTC),
		Source:     "tangerine_march.csv",
		Kind:       "tangerine",
		Rows:       12,
		Accepted:   10,
		Duplicates: 1,
		Skipped:    2,
	}
	require.NoError(t, Append(path, []Entry{first}))

	second := Entry{
		Timestamp: time.Date(2020, 4, 2, 9, 0, 0, 0, time.UTC),
		Source:    "paste",
		Kind:      "manulife",
		Rows:      2,
		Accepted:  2,
	}
	require.NoError(t, Append(path, []Entry{second}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "nonexistent.csv"))
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_BadRow(t *testing.T) {
	_, err := UnmarshalEntry([]string{"just", "two"})
	assert.Error(t, err)

	_, err = UnmarshalEntry([]string{"NOTATIMESTAMP", "f.csv", "rbc", "1", "1", "0", "0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing timestamp")

	_, err = UnmarshalEntry([]string{"2020-03-15T10:30:00Z", "f.csv", "rbc", "x", "1", "0", "0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing count")
}
