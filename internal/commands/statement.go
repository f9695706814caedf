package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/beanport-dev/beanport/internal/importer"
	"github.com/beanport-dev/beanport/internal/ledger"
	"github.com/beanport-dev/beanport/internal/mapping"
)

func newStatementCommand() *cobra.Command {
	var configPath string
	var accountName string
	var currency string
	var appendToLedger bool

	cmd := &cobra.Command{
		Use:   "statement <transactions-file> <balances-file>",
		Short: "Convert a pasted ManuLife statement into ledger entries",
		Long: `Converts text copied from a ManuLife group retirement statement into
ledger entries. The first argument holds the transaction block, the second
the fund balance block. Pass - to read a block from stdin.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			store, err := mapping.Load(cfg.MappingFile)
			if err != nil {
				return fmt.Errorf("loading mappings: %w", err)
			}
			led := ledger.LoadOrEmpty(cfg.LedgerFile)

			account, err := resolveAccount(cfg, store, "manulife", accountName)
			if err != nil {
				return err
			}
			if currency == "" {
				currency = resolveCurrency(cfg, store, "manulife")
			}

			transactions, err := readBlock(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			balances, err := readBlock(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}

			ml := importer.NewManuLife(led, account, currency)
			output := ml.Parse(transactions, balances)
			if output == "" {
				return fmt.Errorf("no entries recognized in input")
			}

			if appendToLedger {
				if err := ledger.AppendEntries(cfg.LedgerFile, []string{output}); err != nil {
					return fmt.Errorf("appending to ledger: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Appended statement entries to %s\n", cfg.LedgerFile)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigFile, "path to beanport.yaml")
	cmd.Flags().StringVar(&accountName, "account", "", "retirement account root (overrides config)")
	cmd.Flags().StringVar(&currency, "currency", "", "commodity for cash amounts (overrides config)")
	cmd.Flags().BoolVar(&appendToLedger, "append", false, "append the entries to the ledger instead of printing")

	return cmd
}

// readBlock reads a text block from a file, or from stdin when path is -.
// Only one block may come from stdin per invocation.
func readBlock(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading statement: %w", err)
	}
	return string(data), nil
}
