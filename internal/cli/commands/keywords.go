package commands

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/lexer"
)

// NewKeywordsCommand creates the keywords command.
func NewKeywordsCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Print the shared keyword table",
		Long: `Print the keyword table shared by Dialect-B and Dialect-I, so a
parser author can cross-check reserved words without reading Go source.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			words := lexer.Keywords()
			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(words)
			}

			w := cmd.OutOrStdout()
			t := table.NewWriter()
			t.SetOutputMirror(w)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Keyword"})
			for _, word := range words {
				t.AppendRow(table.Row{word})
			}
			t.Render()
			_, _ = fmt.Fprintf(w, "(%d keywords)\n", len(words))
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format (text|json)")
	return cmd
}
