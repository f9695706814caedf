package ledger

import (
	"fmt"
	"os"
	"strings"
)

// AppendEntries appends rendered ledger entries to path, creating the file
// if needed. Each entry is separated by a blank line.
func AppendEntries(path string, entries []string) error {
	if len(entries) == 0 {
		return nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	for _, entry := range entries {
		if _, err := fmt.Fprintf(f, "%s\n\n", strings.TrimRight(entry, "\n")); err != nil {
			return fmt.Errorf("writing ledger entry: %w", err)
		}
	}
	return nil
}
