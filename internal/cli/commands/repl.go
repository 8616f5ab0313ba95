package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/lexer"
)

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	var dialectFlag string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively tokenize lines of source",
		Long: `repl reads one line at a time and prints the tokens it produces.
Use .dialect b or .dialect i to switch dialects, .quit to exit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dialect, err := resolveDialect(cmd.Context(), dialectFlag)
			if err != nil {
				return err
			}
			return runRepl(cmd, dialect)
		},
	}
	cmd.Flags().StringVar(&dialectFlag, "dialect", "", "starting dialect (b|i)")
	return cmd
}

func runRepl(cmd *cobra.Command, dialect lexer.Dialect) error {
	historyFile := filepath.Join(os.TempDir(), "lexctl_repl_history")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptFor(dialect),
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "lexctl repl (dialect: %s)\n", dialect)
	_, _ = fmt.Fprintln(w, "Type .help for commands, .quit to exit")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			switch {
			case line == ".quit" || line == ".exit":
				return nil
			case line == ".help":
				printReplHelp(w)
			case strings.HasPrefix(line, ".dialect"):
				dialect, err = applyDialectCommand(line, dialect)
				if err != nil {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
					continue
				}
				rl.SetPrompt(promptFor(dialect))
				_, _ = fmt.Fprintf(w, "switched to %s\n", dialect)
			default:
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "unknown command: %s\n", line)
			}
			continue
		}

		toks, err := lexer.Tokenize(line, dialect)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			continue
		}
		if err := renderTokensTable(w, toks); err != nil {
			return err
		}
	}
}

func applyDialectCommand(line string, current lexer.Dialect) (lexer.Dialect, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return current, fmt.Errorf("usage: .dialect b|i")
	}
	switch strings.ToLower(parts[1]) {
	case "b":
		return lexer.DialectB, nil
	case "i":
		return lexer.DialectI, nil
	default:
		return current, fmt.Errorf("unknown dialect %q (expected b or i)", parts[1])
	}
}

func promptFor(dialect lexer.Dialect) string {
	if dialect == lexer.DialectB {
		return "lex[b]> "
	}
	return "lex[i]> "
}

func printReplHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .dialect b|i    Switch the active dialect
  .quit / .exit   Exit the REPL

Each line you type is tokenized independently.
`
	_, _ = fmt.Fprintln(w, help)
}
