package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/lexer"
	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/token"
)

func TestArithmeticOverflowFamily(t *testing.T) {
	cases := []struct {
		source string
		kind   token.Kind
	}{
		{"+", token.Plus}, {"+%", token.PlusWrap}, {"+^", token.PlusSaturate},
		{"+?", token.PlusChecked}, {"+!", token.PlusUnchecked}, {"+=", token.PlusAssign},
		{"+%=", token.PlusWrapAssign}, {"+!=", token.PlusUncheckedAssign},
		{"-", token.Minus}, {"-^", token.MinusSaturate},
		{"*", token.Multiply}, {"*%", token.MultiplyWrap},
		{"**", token.Power}, {"**^", token.PowerSaturate}, {"**=", token.PowerAssign},
		{"%", token.Modulo}, {"%?", token.ModuloChecked},
		{"/", token.FloatDivide}, {"/=", token.FloatDivideAssign},
		{"//", token.Divide}, {"//?", token.DivideChecked}, {"//!", token.DivideUnchecked},
	}
	for _, c := range cases {
		t.Run(c.source, func(t *testing.T) {
			toks := tokenize(t, c.source, lexer.DialectB)
			require.Len(t, toks, 2)
			assert.Equal(t, c.kind, toks[0].Kind)
			assert.Equal(t, c.source, toks[0].Text)
		})
	}
}

func TestWorkedExampleTwoArithmeticFamily(t *testing.T) {
	toks := tokenize(t, "a +? b -^ c *% d //? e", lexer.DialectB)
	want := []token.Kind{
		token.Identifier, token.PlusChecked,
		token.Identifier, token.MinusSaturate,
		token.Identifier, token.MultiplyWrap,
		token.Identifier, token.DivideChecked,
		token.Identifier, token.EOF,
	}
	assert.Equal(t, want, kinds(toks))
}

func TestComparisonAndShiftChains(t *testing.T) {
	cases := []struct {
		source string
		kind   token.Kind
	}{
		{"<", token.Less}, {"<=", token.LessEqual}, {"<=>", token.Spaceship},
		{"<<", token.LeftShift}, {"<<<", token.LogicalLeftShift}, {"<<?", token.CheckedLeftShift},
		{"<<=", token.LeftShiftAssign}, {"<<<=", token.LogicalLeftShiftAssign}, {"<<?=", token.CheckedLeftShiftAssign},
		{">", token.Greater}, {">=", token.GreaterEqual},
		{">>", token.RightShift}, {">>>", token.LogicalRightShift}, {">>?", token.CheckedRightShift},
		{">>=", token.RightShiftAssign}, {">>>=", token.LogicalRightShiftAssign}, {">>?=", token.CheckedRightShiftAssign},
	}
	for _, c := range cases {
		t.Run(c.source, func(t *testing.T) {
			toks := tokenize(t, c.source, lexer.DialectB)
			require.Len(t, toks, 2)
			assert.Equal(t, c.kind, toks[0].Kind)
		})
	}
}

func TestShiftAssignIsAtomicNotShiftThenAssign(t *testing.T) {
	toks := tokenize(t, "<<<=", lexer.DialectB)
	require.Len(t, toks, 2)
	assert.Equal(t, token.LogicalLeftShiftAssign, toks[0].Kind)
}

func TestEqualityFamily(t *testing.T) {
	cases := []struct {
		source string
		kind   token.Kind
	}{
		{"=", token.Assign}, {"==", token.Equal}, {"===", token.RefEqual}, {"=>", token.FatArrow},
		{"!=", token.NotEqual}, {"!==", token.RefNotEqual},
		{"??", token.NullCoalesce}, {"??=", token.NullCoalesceAssign}, {"?:", token.Elvis},
	}
	for _, c := range cases {
		t.Run(c.source, func(t *testing.T) {
			toks := tokenize(t, c.source, lexer.DialectB)
			require.Len(t, toks, 2)
			assert.Equal(t, c.kind, toks[0].Kind)
		})
	}
}

func TestColonFamily(t *testing.T) {
	b := tokenize(t, "::", lexer.DialectB)
	require.Len(t, b, 2)
	assert.Equal(t, token.DoubleColon, b[0].Kind)

	_, err := lexer.Tokenize("::", lexer.DialectI)
	require.Error(t, err)
	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, lexer.ForbiddenSyntax, lexErr.Kind)
}

func TestDotDotIsForbidden(t *testing.T) {
	for _, d := range []lexer.Dialect{lexer.DialectB, lexer.DialectI} {
		_, err := lexer.Tokenize("1 .. 2", d)
		require.Error(t, err)
		var lexErr *lexer.Error
		require.ErrorAs(t, err, &lexErr)
		assert.Equal(t, lexer.ForbiddenSyntax, lexErr.Kind)
	}
}

func TestDotDotDotIsEllipsis(t *testing.T) {
	toks := tokenize(t, "...", lexer.DialectB)
	require.Len(t, toks, 2)
	assert.Equal(t, token.DotDotDot, toks[0].Kind)
}

func TestAtIntrinsicAndNative(t *testing.T) {
	toks := tokenize(t, "@intrinsic @native @other", lexer.DialectB)
	want := []token.Kind{token.AtIntrinsic, token.AtNative, token.At, token.Identifier, token.EOF}
	assert.Equal(t, want, kinds(toks))
}

func TestAtIntrinsicRequiresWordBoundary(t *testing.T) {
	toks := tokenize(t, "@intrinsicFoo", lexer.DialectB)
	require.Len(t, toks, 3)
	assert.Equal(t, token.At, toks[0].Kind)
	assert.Equal(t, token.Identifier, toks[1].Kind)
	assert.Equal(t, "intrinsicFoo", toks[1].Text)
}

func TestBitwiseCompoundAssign(t *testing.T) {
	cases := []struct {
		source string
		kind   token.Kind
	}{
		{"&", token.Ampersand}, {"&=", token.AmpersandAssign},
		{"|", token.Pipe}, {"|=", token.PipeAssign},
		{"^", token.Caret}, {"^=", token.CaretAssign},
		{"~", token.Tilde},
	}
	for _, c := range cases {
		t.Run(c.source, func(t *testing.T) {
			toks := tokenize(t, c.source, lexer.DialectB)
			require.Len(t, toks, 2)
			assert.Equal(t, c.kind, toks[0].Kind)
		})
	}
}

func TestBracesAreIllegalInDialectI(t *testing.T) {
	toks := tokenize(t, "{}", lexer.DialectI)
	require.Len(t, toks, 3)
	assert.Equal(t, token.Illegal, toks[0].Kind)
	assert.Equal(t, token.Illegal, toks[1].Kind)
}

func TestSemicolonEmitsNewlineInDialectB(t *testing.T) {
	toks := tokenize(t, "x; y", lexer.DialectB)
	want := []token.Kind{token.Identifier, token.Newline, token.Identifier, token.EOF}
	assert.Equal(t, want, kinds(toks))
}

func TestSemicolonForbiddenInDialectI(t *testing.T) {
	_, err := lexer.Tokenize("x; y", lexer.DialectI)
	require.Error(t, err)
	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, lexer.ForbiddenSyntax, lexErr.Kind)
}
