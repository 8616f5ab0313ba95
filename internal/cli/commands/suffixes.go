package commands

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/lexer"
)

// NewSuffixesCommand creates the suffixes command.
func NewSuffixesCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "suffixes",
		Short: "Print the numeric-width, memory-size, and duration suffix tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			groups := []struct {
				name    string
				entries []lexer.SuffixEntry
			}{
				{"numeric-width", lexer.NumericWidthSuffixes()},
				{"memory-size", lexer.MemorySizeSuffixes()},
				{"duration", lexer.DurationSuffixes()},
			}

			if format == "json" {
				out := map[string][]lexer.SuffixEntry{}
				for _, g := range groups {
					out[g.name] = g.entries
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			w := cmd.OutOrStdout()
			for _, g := range groups {
				_, _ = fmt.Fprintf(w, "%s:\n", g.name)
				t := table.NewWriter()
				t.SetOutputMirror(w)
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"Suffix", "Kind"})
				for _, e := range g.entries {
					t.AppendRow(table.Row{e.Text, e.Kind.String()})
				}
				t.Render()
				_, _ = fmt.Fprintln(w)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format (text|json)")
	return cmd
}
