package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beanport-dev/beanport/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "beanport",
		Short:   "Import bank and credit card exports into a plain-text ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newStatementCommand())
	rootCmd.AddCommand(newMappingCommand())
	rootCmd.AddCommand(newFormatsCommand())

	return rootCmd
}
