package commands

import (
	"context"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/dj-lumiere/razorforge-lang-sub007/internal/config"
	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/token"
)

// colorProfile resolves the --color config setting (auto|always|never) to a
// termenv output, honoring "auto" by detecting the terminal's real color
// capability the same way the teacher's rendered SQL output decides whether
// to colorize.
func colorProfile(ctx context.Context) termenv.Output {
	switch strings.ToLower(config.FromContext(ctx).Color) {
	case "always":
		return *termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.ANSI256))
	case "never":
		return *termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.Ascii))
	default:
		return *termenv.NewOutput(os.Stdout)
	}
}

// styleKind colors a token kind's rendered name by lexical category, so a
// terminal render of `lexctl tokens` reads at a glance the way a syntax
// highlighter would.
func styleKind(out termenv.Output, k token.Kind) string {
	name := k.String()
	switch {
	case token.IsKeyword(k):
		return out.String(name).Foreground(out.Color("2")).String() // green
	case token.IsOperator(k):
		return out.String(name).Foreground(out.Color("3")).String() // yellow
	case token.IsLiteral(k):
		return out.String(name).Foreground(out.Color("6")).String() // cyan
	default:
		return name
	}
}
