package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/lexer"
	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/token"
)

func tokenize(t *testing.T, source string, dialect lexer.Dialect) []token.Token {
	t.Helper()
	toks, err := lexer.Tokenize(source, dialect)
	require.NoError(t, err)
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestKeywordsAreRecognizedInBothDialects(t *testing.T) {
	cases := []struct {
		word string
		kind token.Kind
	}{
		{"let", token.KwLet}, {"routine", token.KwRoutine}, {"entity", token.KwEntity},
		{"if", token.KwIf}, {"match", token.KwMatch}, {"true", token.KwTrue},
		{"and", token.KwAnd}, {"self", token.KwSelf}, {"unsafe", token.KwUnsafe},
	}
	for _, c := range cases {
		t.Run(c.word, func(t *testing.T) {
			for _, d := range []lexer.Dialect{lexer.DialectB, lexer.DialectI} {
				toks := tokenize(t, c.word, d)
				require.Len(t, toks, 2) // keyword + EOF
				assert.Equal(t, c.kind, toks[0].Kind)
			}
		})
	}
}

func TestLowercaseIdentifierInBothDialects(t *testing.T) {
	for _, d := range []lexer.Dialect{lexer.DialectB, lexer.DialectI} {
		toks := tokenize(t, "count", d)
		require.Len(t, toks, 2)
		assert.Equal(t, token.Identifier, toks[0].Kind)
		assert.Equal(t, "count", toks[0].Text)
	}
}

func TestPascalCaseIsTypeIdentifierOnlyInDialectB(t *testing.T) {
	b := tokenize(t, "Widget", lexer.DialectB)
	require.Len(t, b, 2)
	assert.Equal(t, token.TypeIdentifier, b[0].Kind)

	i := tokenize(t, "Widget", lexer.DialectI)
	require.Len(t, i, 2)
	assert.Equal(t, token.Identifier, i[0].Kind)
}

func TestDeclarationStarterSetsScriptModeFalse(t *testing.T) {
	assert.False(t, lexer.IsScriptMode("routine main()\n", lexer.DialectI))
	assert.True(t, lexer.IsScriptMode("let x = 1\n", lexer.DialectI))
	assert.False(t, lexer.IsScriptMode("anything at all", lexer.DialectB))
}

func TestIdentifierFailableMarkerBoundary(t *testing.T) {
	t.Run("bare question mark absorbed", func(t *testing.T) {
		toks := tokenize(t, "x?", lexer.DialectB)
		require.Len(t, toks, 2)
		assert.Equal(t, token.Identifier, toks[0].Kind)
		assert.Equal(t, "x?", toks[0].Text)
	})
	t.Run("double question mark not absorbed", func(t *testing.T) {
		toks := tokenize(t, "x??", lexer.DialectB)
		require.Len(t, toks, 3)
		assert.Equal(t, []token.Kind{token.Identifier, token.NullCoalesce, token.EOF}, kinds(toks))
		assert.Equal(t, "x", toks[0].Text)
	})
	t.Run("null coalesce assign not absorbed", func(t *testing.T) {
		toks := tokenize(t, "x??=", lexer.DialectB)
		require.Len(t, toks, 3)
		assert.Equal(t, []token.Kind{token.Identifier, token.NullCoalesceAssign, token.EOF}, kinds(toks))
	})
}
