package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/beanport-dev/beanport/internal/config"
)

func newInitCommand() *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a beanport project directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, currency)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "CAD", "default commodity for imported amounts")

	return cmd
}

func runInit(cmd *cobra.Command, dir, currency string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	configPath := filepath.Join(dir, "beanport.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	}

	cfg := config.Default()
	cfg.Currency = currency
	if err := config.Save(configPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Empty ledger so the first import has a file to append to.
	ledgerPath := filepath.Join(dir, cfg.LedgerFile)
	if _, err := os.Stat(ledgerPath); os.IsNotExist(err) {
		if err := os.WriteFile(ledgerPath, []byte{}, 0o644); err != nil {
			return fmt.Errorf("writing ledger: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized beanport project at %s\n", dir)
	return nil
}
