package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/lexer"
	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/token"
)

func TestPlainTextLiteralDefaultsPerDialect(t *testing.T) {
	b := tokenize(t, `"hi"`, lexer.DialectB)
	require.Len(t, b, 2)
	assert.Equal(t, token.Text8Text, b[0].Kind)
	assert.Equal(t, "hi", b[0].Text)

	i := tokenize(t, `"hi"`, lexer.DialectI)
	require.Len(t, i, 2)
	assert.Equal(t, token.Text32Text, i[0].Kind)
}

func TestRawFormattedPrefixPreservesBackslashes(t *testing.T) {
	toks := tokenize(t, `t8rf"path: {p}\file"`, lexer.DialectB)
	require.Len(t, toks, 2)
	assert.Equal(t, token.Text8RawFormattedText, toks[0].Kind)
	assert.Equal(t, `path: {p}\file`, toks[0].Text)
}

func TestByteStringPrefixInDialectI(t *testing.T) {
	toks := tokenize(t, `b"raw bytes"`, lexer.DialectI)
	require.Len(t, toks, 2)
	assert.Equal(t, token.ByteText, toks[0].Kind)
}

func TestUnmatchedPrefixWordFallsBackToIdentifierThenLiteral(t *testing.T) {
	toks := tokenize(t, `foo"bar"`, lexer.DialectB)
	require.Len(t, toks, 3)
	assert.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, "foo", toks[0].Text)
	assert.Equal(t, token.Text8Text, toks[1].Kind)
	assert.Equal(t, "bar", toks[1].Text)
}

func TestEscapeSequences(t *testing.T) {
	toks := tokenize(t, `"a\nb\tc"`, lexer.DialectB)
	require.Len(t, toks, 2)
	assert.Equal(t, "a\nb\tc", toks[0].Text)
}

// unicodeEscapeText builds the literal six-character source text for a
// "\u" + 4 hex digits escape without risking the digits being interpreted
// as an actual Go/editor escape along the way.
func unicodeEscapeText(hex4 string) string {
	return string([]byte{'\\', 'u'}) + hex4
}

// TestCharLiteralUnicodeEscapeAcceptedAndRejected mirrors spec.md §8 test 5.
func TestCharLiteralUnicodeEscapeAcceptedAndRejected(t *testing.T) {
	source16 := "letter16'" + unicodeEscapeText("00FF") + "'"
	accepted16 := tokenize(t, source16, lexer.DialectB)
	require.Len(t, accepted16, 2)
	assert.Equal(t, token.Letter16Literal, accepted16[0].Kind)
	assert.Equal(t, string(rune(0x00FF)), accepted16[0].Text)

	source8 := "letter8'" + unicodeEscapeText("00FF") + "'"
	accepted8 := tokenize(t, source8, lexer.DialectB)
	require.Len(t, accepted8, 2)
	assert.Equal(t, token.Letter8Literal, accepted8[0].Kind)
	assert.Equal(t, string(rune(0x00FF)), accepted8[0].Text)

	rejectedSource := "letter8'" + unicodeEscapeText("01FF") + "'"
	_, err := lexer.Tokenize(rejectedSource, lexer.DialectB)
	require.Error(t, err)
	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, lexer.InvalidEscape, lexErr.Kind)
}

func TestUnterminatedStringIsFatal(t *testing.T) {
	_, err := lexer.Tokenize(`"never closes`, lexer.DialectB)
	require.Error(t, err)
	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, lexer.UnterminatedLiteral, lexErr.Kind)
}

func TestUnknownEscapeCharacterIsFatal(t *testing.T) {
	_, err := lexer.Tokenize(`"bad \q escape"`, lexer.DialectB)
	require.Error(t, err)
	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, lexer.InvalidEscape, lexErr.Kind)
}
