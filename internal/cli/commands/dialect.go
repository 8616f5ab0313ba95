package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/dj-lumiere/razorforge-lang-sub007/internal/config"
	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/lexer"
)

// resolveDialect picks the dialect for a command: an explicit --dialect
// flag value wins, otherwise the config's default (itself defaulted to
// Dialect-I per internal/config's DefaultDialect).
func resolveDialect(ctx context.Context, flagValue string) (lexer.Dialect, error) {
	word := flagValue
	if word == "" {
		word = config.FromContext(ctx).Dialect
	}
	switch strings.ToLower(word) {
	case "b":
		return lexer.DialectB, nil
	case "i":
		return lexer.DialectI, nil
	default:
		return lexer.DialectB, fmt.Errorf("unknown dialect %q (expected b or i)", word)
	}
}
