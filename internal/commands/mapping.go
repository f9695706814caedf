package commands

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/beanport-dev/beanport/internal/mapping"
	"github.com/beanport-dev/beanport/internal/model"
)

func newMappingCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "mapping",
		Short: "Inspect and edit learned description mappings",
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigFile, "path to beanport.yaml")

	openStore := func() (*mapping.Store, error) {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return nil, err
		}
		store, err := mapping.Load(cfg.MappingFile)
		if err != nil {
			return nil, fmt.Errorf("loading mappings: %w", err)
		}
		return store, nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all learned mappings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "date tolerance: %d days\n", store.DateTolerance())
			printSection(out, "payees", store.Payees())
			printSection(out, "narrations", store.Narrations())
			printSection(out, "accounts", store.CategoryAccounts())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-payee <description> <payee>",
		Short: "Map a sanitized description to a payee",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			return store.SetPayee(args[0], args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-narration <description> <narration>",
		Short: "Map a sanitized description to a narration",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			return store.SetNarration(args[0], args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-account <payee> <account>",
		Short: "Map a payee to a category account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			if _, err := model.NewAccount(args[1]); err != nil {
				return err
			}
			return store.SetCategoryAccount(args[0], args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-tolerance <days>",
		Short: "Set the duplicate detection date tolerance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing days: %w", err)
			}
			store, err := openStore()
			if err != nil {
				return err
			}
			return store.SetDateTolerance(days)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete payee|narration|account <key>",
		Short: "Remove a learned mapping",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			switch args[0] {
			case "payee":
				return store.SetPayee(args[1], "")
			case "narration":
				return store.SetNarration(args[1], "")
			case "account":
				return store.SetCategoryAccount(args[1], "")
			default:
				return fmt.Errorf("unknown mapping kind %q", args[0])
			}
		},
	})

	return cmd
}

func printSection(out io.Writer, title string, entries map[string]string) {
	fmt.Fprintf(out, "%s:\n", title)
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "  %q -> %q\n", k, entries[k])
	}
}
