package commands

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/beanport-dev/beanport/internal/config"
	"github.com/beanport-dev/beanport/internal/gitops"
	"github.com/beanport-dev/beanport/internal/importer"
	"github.com/beanport-dev/beanport/internal/importlog"
	"github.com/beanport-dev/beanport/internal/ledger"
	"github.com/beanport-dev/beanport/internal/mapping"
	"github.com/beanport-dev/beanport/internal/model"
)

const defaultConfigFile = "beanport.yaml"

var (
	warnColor   = color.New(color.FgYellow)
	attnColor   = color.New(color.FgRed)
	okColor     = color.New(color.FgGreen)
	promptColor = color.New(color.FgCyan)
)

func newImportCommand() *cobra.Command {
	var configPath string
	var accountName string
	var currency string
	var acceptAll bool

	cmd := &cobra.Command{
		Use:   "import <file> [<file>...]",
		Short: "Import CSV exports into the ledger",
		Args:  cobra.MinimumNArgs(1),
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
			registry := importer.DefaultRegistry()

			var failed int
			var touched bool
			for _, path := range args {
				if err := runImport(cmd, cfg, store, led, registry, path, accountName, currency, acceptAll); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					failed++
					continue
				}
				touched = true
			}

			if touched && cfg.Git.AutoCommit && gitops.IsRepo(".") {
				paths := []string{cfg.LedgerFile, cfg.MappingFile}
				if cfg.ImportLogFile != "" {
					paths = append(paths, cfg.ImportLogFile)
				}
				message := "import: " + commitFileList(args)
				hash, err := gitops.CommitFiles(".", message, cfg.Git.AuthorName, cfg.Git.AuthorEmail, paths)
				if err != nil {
					return fmt.Errorf("committing import: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Committed %s\n", hash)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigFile, "path to beanport.yaml")
	cmd.Flags().StringVar(&accountName, "account", "", "account the export belongs to (overrides config)")
	cmd.Flags().StringVar(&currency, "currency", "", "commodity for imported amounts (overrides config)")
	cmd.Flags().BoolVarP(&acceptAll, "yes", "y", false, "accept every non-duplicate without prompting")

	return cmd
}

func runImport(cmd *cobra.Command, cfg *config.Config, store *mapping.Store, led *model.Ledger, registry *importer.Registry, path, accountName, currency string, acceptAll bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading export: %w", err)
	}

	kind, err := peekKind(data, registry)
	if err != nil {
		return err
	}

	account, err := resolveAccount(cfg, store, kind, accountName)
	if err != nil {
		return err
	}
	if currency == "" {
		currency = resolveCurrency(cfg, store, kind)
	}

	session, err := importer.NewSession(bytes.NewReader(data), registry, account, currency, store, led)
	if err != nil {
		return err
	}
	if err := session.Load(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: detected %s format\n", path, session.Kind())

	in := bufio.NewScanner(cmd.InOrStdin())
	var entries []string
	var rows, accepted, duplicates, skipped int
	for it := session.Next(); it != nil; it = session.Next() {
		rows++
		if it.PossibleDuplicate != nil {
			duplicates++
		}

		decision, err := review(cmd, in, store, it, acceptAll)
		if err != nil {
			return err
		}
		switch decision {
		case decisionAccept:
			entries = append(entries, it.Transaction.String())
			accepted++
		case decisionSkip:
			skipped++
		case decisionQuit:
			skipped++
			for session.Next() != nil {
				rows++
				skipped++
			}
		}
	}

	if err := ledger.AppendEntries(cfg.LedgerFile, entries); err != nil {
		return fmt.Errorf("appending to ledger: %w", err)
	}

	if cfg.ImportLogFile != "" {
		logEntry := importlog.Entry{
			Timestamp:  time.Now().UTC(),
			Source:     filepath.Base(path),
			Kind:       session.Kind(),
			Rows:       rows,
			Accepted:   accepted,
			Duplicates: duplicates,
			Skipped:    skipped,
		}
		if err := importlog.Append(cfg.ImportLogFile, []importlog.Entry{logEntry}); err != nil {
			return fmt.Errorf("writing import log: %w", err)
		}
	}

	// Remember the account and currency for the next import of this format.
	if err := store.SetImporterSetting(kind, "account", account.Name); err != nil {
		return fmt.Errorf("saving importer settings: %w", err)
	}
	if err := store.SetImporterSetting(kind, "currency", currency); err != nil {
		return fmt.Errorf("saving importer settings: %w", err)
	}

	okColor.Fprintf(cmd.OutOrStdout(), "%s: %d accepted, %d skipped, %d possible duplicates\n", path, accepted, skipped, duplicates)
	return nil
}

type decision int

const (
	decisionAccept decision = iota
	decisionSkip
	decisionQuit
)

// review shows one transaction and asks what to do with it. Entries not open
// to user edit are taken as-is without a prompt; in accept-all mode
// duplicates are skipped and everything else taken as-is.
func review(cmd *cobra.Command, in *bufio.Scanner, store *mapping.Store, it *model.ImportedTransaction, acceptAll bool) (decision, error) {
	out := cmd.OutOrStdout()

	if acceptAll {
		if it.PossibleDuplicate != nil {
			return decisionSkip, nil
		}
		return decisionAccept, nil
	}

	if !it.AllowUserEdit {
		return decisionAccept, nil
	}

	fmt.Fprintf(out, "\n%s\n", it.Transaction)
	if it.PossibleDuplicate != nil {
		warnColor.Fprintf(out, "possible duplicate of:\n%s\n", it.PossibleDuplicate)
	}
	if it.Transaction.MetaData.Flag == model.FlagIncomplete {
		attnColor.Fprintln(out, "needs payee and narration")
	}

	for {
		answer, ok := promptLine(out, in, "[a]ccept / [e]dit / [s]kip / [q]uit: ")
		if !ok {
			return decisionQuit, nil
		}
		switch strings.ToLower(answer) {
		case "a", "":
			return decisionAccept, nil
		case "s":
			return decisionSkip, nil
		case "q":
			return decisionQuit, nil
		case "e":
			if err := edit(out, in, store, it); err != nil {
				return decisionQuit, err
			}
			fmt.Fprintf(out, "\n%s\n", it.Transaction)
		}
	}
}

// edit rewrites payee, narration, and category account in place and records
// the answers so the next import of the same description is pre-filled.
func edit(out io.Writer, in *bufio.Scanner, store *mapping.Store, it *model.ImportedTransaction) error {
	meta := &it.Transaction.MetaData

	payee, ok := promptLine(out, in, fmt.Sprintf("payee [%s]: ", meta.Payee))
	if !ok {
		return nil
	}
	if payee != "" {
		meta.Payee = payee
		if err := store.SetPayee(it.OriginalDescription, payee); err != nil {
			return fmt.Errorf("saving payee mapping: %w", err)
		}
	}

	narration, ok := promptLine(out, in, fmt.Sprintf("narration [%s]: ", meta.Narration))
	if !ok {
		return nil
	}
	if narration != "" {
		meta.Narration = narration
		if err := store.SetNarration(it.OriginalDescription, narration); err != nil {
			return fmt.Errorf("saving narration mapping: %w", err)
		}
	}

	for {
		name, ok := promptLine(out, in, fmt.Sprintf("category account [%s]: ", it.Transaction.Postings[1].Account))
		if !ok || name == "" {
			break
		}
		account, err := model.NewAccount(name)
		if err != nil {
			warnColor.Fprintf(out, "%v\n", err)
			continue
		}
		it.Transaction.Postings[1].Account = account
		if meta.Payee != "" {
			if err := store.SetCategoryAccount(meta.Payee, name); err != nil {
				return fmt.Errorf("saving account mapping: %w", err)
			}
		}
		break
	}

	if meta.Payee != "" && meta.Narration != "" {
		meta.Flag = model.FlagComplete
	}
	return nil
}

func promptLine(out io.Writer, in *bufio.Scanner, prompt string) (string, bool) {
	promptColor.Fprint(out, prompt)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

// peekKind reads just the header row to identify the format, so the account
// and currency can be resolved before the session consumes the file.
func peekKind(data []byte, registry *importer.Registry) (string, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return "", fmt.Errorf("reading CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	parser := registry.Detect(header)
	if parser == nil {
		return "", importer.ErrNoParserFound
	}
	return parser.Kind(), nil
}

func resolveAccount(cfg *config.Config, store *mapping.Store, kind, override string) (model.Account, error) {
	name := override
	if name == "" {
		if configured, ok := cfg.ImporterAccount(kind); ok {
			name = configured
		} else if saved, ok := store.ImporterSetting(kind, "account"); ok {
			name = saved
		}
	}
	if name == "" {
		return model.Account{}, fmt.Errorf("no account configured for %s imports (use --account)", kind)
	}
	return model.NewAccount(name)
}

// resolveCurrency mirrors resolveAccount's precedence: config entry, then
// the setting remembered from the last run, then the global currency.
func resolveCurrency(cfg *config.Config, store *mapping.Store, kind string) string {
	if configured, ok := cfg.ImporterCurrency(kind); ok {
		return configured
	}
	if saved, ok := store.ImporterSetting(kind, "currency"); ok {
		return saved
	}
	return cfg.Currency
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == defaultConfigFile {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func commitFileList(paths []string) string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return strings.Join(names, ", ")
}
