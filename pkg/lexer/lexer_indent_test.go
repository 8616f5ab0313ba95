package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/lexer"
	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/token"
)

func TestWorkedExampleThreeIndentation(t *testing.T) {
	source := "if x:\n    y = 1\nz = 2\n"
	toks := tokenize(t, source, lexer.DialectI)
	want := []token.Kind{
		token.KwIf, token.Identifier, token.Colon, token.Newline,
		token.Indent,
		token.Identifier, token.Assign, token.Integer, token.Newline,
		token.Dedent,
		token.Identifier, token.Assign, token.Integer, token.Newline,
		token.EOF,
	}
	assert.Equal(t, want, kinds(toks))
}

func TestBlockStarterColonVsAnnotationColon(t *testing.T) {
	annotation := tokenize(t, "let x: Int = 5\n", lexer.DialectI)
	for _, tok := range annotation {
		assert.NotEqual(t, token.Indent, tok.Kind)
	}

	blockStarter := tokenize(t, "if x:\n    y\n", lexer.DialectI)
	var sawIndent bool
	for _, tok := range blockStarter {
		if tok.Kind == token.Indent {
			sawIndent = true
		}
	}
	assert.True(t, sawIndent)
}

func TestIndentationMustBeMultipleOfFour(t *testing.T) {
	_, err := lexer.Tokenize("if x:\n   y\n", lexer.DialectI)
	require.Error(t, err)
	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, lexer.IndentationError, lexErr.Kind)
}

func TestUnexpectedIndentIsError(t *testing.T) {
	_, err := lexer.Tokenize("x = 1\n    y = 2\n", lexer.DialectI)
	require.Error(t, err)
	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, lexer.IndentationError, lexErr.Kind)
}

func TestMissingIndentAfterColonIsError(t *testing.T) {
	_, err := lexer.Tokenize("if x:\ny = 1\n", lexer.DialectI)
	require.Error(t, err)
	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, lexer.IndentationError, lexErr.Kind)
}

func TestBlankAndCommentOnlyLinesDoNotAffectIndentation(t *testing.T) {
	source := "if x:\n    y = 1\n\n    # a comment\n    z = 2\n"
	toks := tokenize(t, source, lexer.DialectI)
	// Exactly one Indent (at "y") and no Dedent until the implicit one at EOF.
	var indents, dedents int
	for _, tok := range toks {
		switch tok.Kind {
		case token.Indent:
			indents++
		case token.Dedent:
			dedents++
		}
	}
	assert.Equal(t, 1, indents)
	assert.Equal(t, 1, dedents) // closing Dedent emitted at EOF
}

func TestTabCountsAsFourColumns(t *testing.T) {
	source := "if x:\n\ty = 1\n"
	toks := tokenize(t, source, lexer.DialectI)
	var sawIndent bool
	for _, tok := range toks {
		if tok.Kind == token.Indent {
			sawIndent = true
		}
	}
	assert.True(t, sawIndent)
}

func TestBalancedIndentDedentAcrossNestedBlocks(t *testing.T) {
	source := "if a:\n    if b:\n        x = 1\n    y = 2\nz = 3\n"
	toks := tokenize(t, source, lexer.DialectI)
	depth := 0
	maxDepthSeen := 0
	for _, tok := range toks {
		switch tok.Kind {
		case token.Indent:
			depth++
			if depth > maxDepthSeen {
				maxDepthSeen = depth
			}
		case token.Dedent:
			depth--
			require.GreaterOrEqual(t, depth, 0)
		}
	}
	assert.Equal(t, 0, depth)
	assert.Equal(t, 2, maxDepthSeen)
}

// Continuation lines inside parens stay at column 1 with no extra
// indentation: the line-start procedure (spec.md §4.3) runs unconditionally
// on every line regardless of paren nesting, so deeper indentation here
// would trip the "unexpected indent" rule rather than being suspended for
// the open '('. Newline suppression and indentation tracking are
// independent mechanisms. The newline after the closing ')' ends the
// statement and is significant.
func TestNewlineSuppressedInsideParens(t *testing.T) {
	source := "f(\n1,\n2,\n)\n"
	toks := tokenize(t, source, lexer.DialectI)
	for i, tok := range toks {
		if tok.Kind == token.RightParen {
			break
		}
		if tok.Kind == token.Newline {
			t.Fatalf("unexpected Newline at index %d inside parenthesized continuation", i)
		}
	}
	want := []token.Kind{
		token.Identifier, token.LeftParen,
		token.Integer, token.Comma,
		token.Integer, token.Comma,
		token.RightParen, token.Newline,
		token.EOF,
	}
	assert.Equal(t, want, kinds(toks))
}

func TestDialectBNeverEmitsIndentOrDedent(t *testing.T) {
	toks := tokenize(t, "if (x) { y = 1; }\n", lexer.DialectB)
	for _, tok := range toks {
		assert.NotEqual(t, token.Indent, tok.Kind)
		assert.NotEqual(t, token.Dedent, tok.Kind)
	}
}
