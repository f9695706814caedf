package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/beanport-dev/beanport/internal/importer"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported export formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			registry := importer.DefaultRegistry()
			for _, kind := range registry.Kinds() {
				parser := registry.Get(kind)
				fmt.Fprintf(out, "%-12s CSV header: %s\n", kind, strings.Join(parser.Header(), ","))
			}
			fmt.Fprintf(out, "%-12s pasted statement text (see beanport statement)\n", "manulife")
			return nil
		},
	}
}
