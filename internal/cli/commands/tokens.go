package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/dj-lumiere/razorforge-lang-sub007/internal/config"
	"github.com/dj-lumiere/razorforge-lang-sub007/internal/source"
	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/lexer"
	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/token"
)

// TokensOptions holds options for the tokens command.
type TokensOptions struct {
	Dialect  string
	Format   string
	Parallel bool
}

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	opts := &TokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens <file>...",
		Short: "Tokenize one or more source files and print the token stream",
		Example: `  lexctl tokens --dialect i main.cake
  lexctl tokens --dialect b --format json a.rf b.rf
  lexctl tokens --parallel *.rf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Dialect, "dialect", "", "dialect for these files (b|i)")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.Flags().BoolVar(&opts.Parallel, "parallel", false, "tokenize files concurrently")

	return cmd
}

type fileResult struct {
	path   string
	tokens []token.Token
	err    error
}

func runTokens(cmd *cobra.Command, paths []string, opts *TokensOptions) error {
	ctx := cmd.Context()
	dialect, err := resolveDialect(ctx, opts.Dialect)
	if err != nil {
		return err
	}
	logger := config.LoggerFromContext(ctx)

	results := make([]fileResult, len(paths))
	tokenizeOne := func(i int) error {
		src, err := source.Read(paths[i])
		if err != nil {
			results[i] = fileResult{path: paths[i], err: err}
			return nil
		}
		toks, err := lexer.Tokenize(src, dialect)
		results[i] = fileResult{path: paths[i], tokens: toks, err: err}
		return nil
	}

	if opts.Parallel {
		g, _ := errgroup.WithContext(ctx)
		for i := range paths {
			i := i
			g.Go(func() error { return tokenizeOne(i) })
		}
		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		for i := range paths {
			_ = tokenizeOne(i)
		}
	}

	logger.Info("tokenized files", "count", len(paths), "dialect", dialect.String())

	w := cmd.OutOrStdout()
	for _, r := range results {
		if r.err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.path, r.err)
			continue
		}
		if len(paths) > 1 {
			_, _ = fmt.Fprintf(w, "== %s ==\n", r.path)
		}
		if err := renderTokens(ctx, w, r.tokens, resolveFormat(cmd, opts.Format)); err != nil {
			return err
		}
	}
	return nil
}

// resolveFormat honors an explicit --format flag, but when the default
// "text" format is still in effect and stdout isn't a terminal, it falls
// back to plain tab-separated lines instead of a box-drawing table that
// would just be noise when piped.
func resolveFormat(cmd *cobra.Command, format string) string {
	if format != "text" || cmd.Flags().Changed("format") {
		return format
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return "plain"
	}
	return format
}

func renderTokens(ctx context.Context, w io.Writer, toks []token.Token, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toks)
	case "plain":
		for _, tok := range toks {
			_, _ = fmt.Fprintf(w, "%s\t%q\t%d:%d\n", tok.Kind.String(), tok.Text, tok.Line, tok.Column)
		}
		return nil
	default:
		return renderTokensTableColored(ctx, w, toks)
	}
}

func renderTokensTableColored(ctx context.Context, w io.Writer, toks []token.Token) error {
	out := colorProfile(ctx)
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Kind", "Text", "Line", "Col", "Offset"})
	for _, tok := range toks {
		t.AppendRow(table.Row{styleKind(out, tok.Kind), tok.Text, tok.Line, tok.Column, tok.Offset})
	}
	t.Render()
	return nil
}

// renderTokensTable renders without color resolution, for callers (the REPL,
// the file watcher) that have no long-lived command context to resolve a
// --color setting from.
func renderTokensTable(w io.Writer, toks []token.Token) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Kind", "Text", "Line", "Col", "Offset"})
	for _, tok := range toks {
		t.AppendRow(table.Row{tok.Kind.String(), tok.Text, tok.Line, tok.Column, tok.Offset})
	}
	t.Render()
	return nil
}
