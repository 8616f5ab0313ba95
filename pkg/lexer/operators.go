package lexer

import "github.com/dj-lumiere/razorforge-lang-sub007/pkg/token"

// scanArithmeticFamily resolves the optional overflow-behavior suffix
// ('%' wrap, '^' saturate, '?' checked, '!' unchecked — the last only where
// the operator has an unchecked form) and optional trailing '=' shared by
// +, -, *, %, **, and // (spec.md §4.2.5). unchecked/uncheckedAssign may be
// token.Illegal when allowUnchecked is false; they're never read in that case.
func (l *Lexer) scanArithmeticFamily(
	start token.Position,
	base, wrap, saturate, checked, unchecked token.Kind,
	baseAssign, wrapAssign, saturateAssign, checkedAssign, uncheckedAssign token.Kind,
	allowUnchecked bool,
) error {
	kind := base
	switch l.cur.Current() {
	case '%':
		l.cur.Advance()
		kind = wrap
	case '^':
		l.cur.Advance()
		kind = saturate
	case '?':
		l.cur.Advance()
		kind = checked
	case '!':
		if allowUnchecked {
			l.cur.Advance()
			kind = unchecked
		}
	}
	if l.cur.Match('=') {
		switch kind {
		case base:
			kind = baseAssign
		case wrap:
			kind = wrapAssign
		case saturate:
			kind = saturateAssign
		case checked:
			kind = checkedAssign
		case unchecked:
			kind = uncheckedAssign
		}
	}
	l.emit(kind, l.cur.Slice(start.Offset), start)
	return nil
}

// scanOperatorOrDelimiter handles every punctuation-led token: the
// arithmetic overflow families, comparison/shift chains, equality/null-
// coalescing families, ':'/'.'/'@' special handling, bitwise operators, and
// plain delimiters. A character that matches nothing below becomes an
// Illegal token rather than aborting the lex (spec.md §4.2.5-6).
func (l *Lexer) scanOperatorOrDelimiter(start token.Position) error {
	switch l.cur.Current() {
	case '+':
		l.cur.Advance()
		return l.scanArithmeticFamily(start,
			token.Plus, token.PlusWrap, token.PlusSaturate, token.PlusChecked, token.PlusUnchecked,
			token.PlusAssign, token.PlusWrapAssign, token.PlusSaturateAssign, token.PlusCheckedAssign, token.PlusUncheckedAssign,
			true)

	case '-':
		l.cur.Advance()
		if l.cur.Match('>') {
			l.emit(token.Arrow, l.cur.Slice(start.Offset), start)
			return nil
		}
		return l.scanArithmeticFamily(start,
			token.Minus, token.MinusWrap, token.MinusSaturate, token.MinusChecked, token.MinusUnchecked,
			token.MinusAssign, token.MinusWrapAssign, token.MinusSaturateAssign, token.MinusCheckedAssign, token.MinusUncheckedAssign,
			true)

	case '*':
		l.cur.Advance()
		if l.cur.Match('*') {
			return l.scanArithmeticFamily(start,
				token.Power, token.PowerWrap, token.PowerSaturate, token.PowerChecked, token.Illegal,
				token.PowerAssign, token.PowerWrapAssign, token.PowerSaturateAssign, token.PowerCheckedAssign, token.Illegal,
				false)
		}
		return l.scanArithmeticFamily(start,
			token.Multiply, token.MultiplyWrap, token.MultiplySaturate, token.MultiplyChecked, token.MultiplyUnchecked,
			token.MultiplyAssign, token.MultiplyWrapAssign, token.MultiplySaturateAssign, token.MultiplyCheckedAssign, token.MultiplyUncheckedAssign,
			true)

	case '%':
		l.cur.Advance()
		return l.scanArithmeticFamily(start,
			token.Modulo, token.ModuloWrap, token.ModuloSaturate, token.ModuloChecked, token.Illegal,
			token.ModuloAssign, token.ModuloWrapAssign, token.ModuloSaturateAssign, token.ModuloCheckedAssign, token.Illegal,
			false)

	case '/':
		l.cur.Advance()
		if l.cur.Match('/') {
			return l.scanArithmeticFamily(start,
				token.Divide, token.DivideWrap, token.DivideSaturate, token.DivideChecked, token.DivideUnchecked,
				token.DivideAssign, token.DivideWrapAssign, token.DivideSaturateAssign, token.DivideCheckedAssign, token.DivideUncheckedAssign,
				true)
		}
		if l.cur.Match('=') {
			l.emit(token.FloatDivideAssign, l.cur.Slice(start.Offset), start)
			return nil
		}
		l.emit(token.FloatDivide, l.cur.Slice(start.Offset), start)
		return nil

	case '<':
		return l.scanLessFamily(start)
	case '>':
		return l.scanGreaterFamily(start)

	case '=':
		l.cur.Advance()
		switch {
		case l.cur.Current() == '=' && l.cur.Peek(1) == '=':
			l.cur.Advance()
			l.cur.Advance()
			l.emit(token.RefEqual, l.cur.Slice(start.Offset), start)
		case l.cur.Match('='):
			l.emit(token.Equal, l.cur.Slice(start.Offset), start)
		case l.cur.Match('>'):
			l.emit(token.FatArrow, l.cur.Slice(start.Offset), start)
		default:
			l.emit(token.Assign, l.cur.Slice(start.Offset), start)
		}
		return nil

	case '!':
		l.cur.Advance()
		if l.cur.Current() == '=' && l.cur.Peek(1) == '=' {
			l.cur.Advance()
			l.cur.Advance()
			l.emit(token.RefNotEqual, l.cur.Slice(start.Offset), start)
			return nil
		}
		if l.cur.Match('=') {
			l.emit(token.NotEqual, l.cur.Slice(start.Offset), start)
			return nil
		}
		l.emit(token.Illegal, l.cur.Slice(start.Offset), start)
		return nil

	case '?':
		l.cur.Advance()
		switch {
		case l.cur.Current() == '?' && l.cur.Peek(1) == '=':
			l.cur.Advance()
			l.cur.Advance()
			l.emit(token.NullCoalesceAssign, l.cur.Slice(start.Offset), start)
		case l.cur.Match('?'):
			l.emit(token.NullCoalesce, l.cur.Slice(start.Offset), start)
		case l.cur.Match(':'):
			l.emit(token.Elvis, l.cur.Slice(start.Offset), start)
		default:
			l.emit(token.Illegal, l.cur.Slice(start.Offset), start)
		}
		return nil

	case ':':
		l.cur.Advance()
		if l.cur.Current() == ':' {
			if l.dialect == DialectI {
				return newError(ForbiddenSyntax, start, "'::' is forbidden in Dialect-I")
			}
			l.cur.Advance()
			l.emit(token.DoubleColon, l.cur.Slice(start.Offset), start)
			return nil
		}
		l.emit(token.Colon, l.cur.Slice(start.Offset), start)
		if l.dialect == DialectI {
			l.armBlockStarterIfNeeded()
		}
		return nil

	case '.':
		l.cur.Advance()
		if l.cur.Current() == '.' && l.cur.Peek(1) == '.' {
			l.cur.Advance()
			l.cur.Advance()
			l.emit(token.DotDotDot, l.cur.Slice(start.Offset), start)
			return nil
		}
		if l.cur.Current() == '.' {
			return newError(ForbiddenSyntax, start, "'..' is forbidden; use the 'to' keyword instead")
		}
		l.emit(token.Dot, l.cur.Slice(start.Offset), start)
		return nil

	case ';':
		l.cur.Advance()
		if l.dialect == DialectI {
			return newError(ForbiddenSyntax, start, "';' is forbidden as a statement separator in Dialect-I; use a newline")
		}
		l.emit(token.Newline, l.cur.Slice(start.Offset), start)
		return nil

	case '@':
		l.cur.Advance()
		if l.matchWord("intrinsic") {
			l.emit(token.AtIntrinsic, l.cur.Slice(start.Offset), start)
			return nil
		}
		if l.matchWord("native") {
			l.emit(token.AtNative, l.cur.Slice(start.Offset), start)
			return nil
		}
		l.emit(token.At, l.cur.Slice(start.Offset), start)
		return nil

	case '&':
		l.cur.Advance()
		if l.cur.Match('=') {
			l.emit(token.AmpersandAssign, l.cur.Slice(start.Offset), start)
		} else {
			l.emit(token.Ampersand, l.cur.Slice(start.Offset), start)
		}
		return nil

	case '|':
		l.cur.Advance()
		if l.cur.Match('=') {
			l.emit(token.PipeAssign, l.cur.Slice(start.Offset), start)
		} else {
			l.emit(token.Pipe, l.cur.Slice(start.Offset), start)
		}
		return nil

	case '^':
		l.cur.Advance()
		if l.cur.Match('=') {
			l.emit(token.CaretAssign, l.cur.Slice(start.Offset), start)
		} else {
			l.emit(token.Caret, l.cur.Slice(start.Offset), start)
		}
		return nil

	case '~':
		l.cur.Advance()
		l.emit(token.Tilde, l.cur.Slice(start.Offset), start)
		return nil

	case '(':
		l.cur.Advance()
		l.emit(token.LeftParen, l.cur.Slice(start.Offset), start)
		return nil
	case ')':
		l.cur.Advance()
		l.emit(token.RightParen, l.cur.Slice(start.Offset), start)
		return nil
	case '[':
		l.cur.Advance()
		l.emit(token.LeftBracket, l.cur.Slice(start.Offset), start)
		return nil
	case ']':
		l.cur.Advance()
		l.emit(token.RightBracket, l.cur.Slice(start.Offset), start)
		return nil
	case '{':
		l.cur.Advance()
		if l.dialect == DialectI {
			l.emit(token.Illegal, l.cur.Slice(start.Offset), start)
		} else {
			l.emit(token.LeftBrace, l.cur.Slice(start.Offset), start)
		}
		return nil
	case '}':
		l.cur.Advance()
		if l.dialect == DialectI {
			l.emit(token.Illegal, l.cur.Slice(start.Offset), start)
		} else {
			l.emit(token.RightBrace, l.cur.Slice(start.Offset), start)
		}
		return nil
	case ',':
		l.cur.Advance()
		l.emit(token.Comma, l.cur.Slice(start.Offset), start)
		return nil

	default:
		l.cur.Advance()
		l.emit(token.Illegal, l.cur.Slice(start.Offset), start)
		return nil
	}
}

// scanLessFamily resolves every token that begins with '<': the three-way
// comparison, the shift variants, and their compound-assignment forms.
func (l *Lexer) scanLessFamily(start token.Position) error {
	l.cur.Advance()
	switch {
	case l.cur.Current() == '=' && l.cur.Peek(1) == '>':
		l.cur.Advance()
		l.cur.Advance()
		l.emit(token.Spaceship, l.cur.Slice(start.Offset), start)
	case l.cur.Match('='):
		l.emit(token.LessEqual, l.cur.Slice(start.Offset), start)
	case l.cur.Current() == '<':
		l.cur.Advance()
		switch {
		case l.cur.Match('<'):
			if l.cur.Match('=') {
				l.emit(token.LogicalLeftShiftAssign, l.cur.Slice(start.Offset), start)
			} else {
				l.emit(token.LogicalLeftShift, l.cur.Slice(start.Offset), start)
			}
		case l.cur.Match('?'):
			if l.cur.Match('=') {
				l.emit(token.CheckedLeftShiftAssign, l.cur.Slice(start.Offset), start)
			} else {
				l.emit(token.CheckedLeftShift, l.cur.Slice(start.Offset), start)
			}
		case l.cur.Match('='):
			l.emit(token.LeftShiftAssign, l.cur.Slice(start.Offset), start)
		default:
			l.emit(token.LeftShift, l.cur.Slice(start.Offset), start)
		}
	default:
		l.emit(token.Less, l.cur.Slice(start.Offset), start)
	}
	return nil
}

// scanGreaterFamily mirrors scanLessFamily for '>'.
func (l *Lexer) scanGreaterFamily(start token.Position) error {
	l.cur.Advance()
	switch {
	case l.cur.Match('='):
		l.emit(token.GreaterEqual, l.cur.Slice(start.Offset), start)
	case l.cur.Current() == '>':
		l.cur.Advance()
		switch {
		case l.cur.Match('>'):
			if l.cur.Match('=') {
				l.emit(token.LogicalRightShiftAssign, l.cur.Slice(start.Offset), start)
			} else {
				l.emit(token.LogicalRightShift, l.cur.Slice(start.Offset), start)
			}
		case l.cur.Match('?'):
			if l.cur.Match('=') {
				l.emit(token.CheckedRightShiftAssign, l.cur.Slice(start.Offset), start)
			} else {
				l.emit(token.CheckedRightShift, l.cur.Slice(start.Offset), start)
			}
		case l.cur.Match('='):
			l.emit(token.RightShiftAssign, l.cur.Slice(start.Offset), start)
		default:
			l.emit(token.RightShift, l.cur.Slice(start.Offset), start)
		}
	default:
		l.emit(token.Greater, l.cur.Slice(start.Offset), start)
	}
	return nil
}

// matchWord consumes word and returns true only if it's followed by a
// non-identifier character (or EOF), so "@intrinsicFoo" isn't misread as
// "@intrinsic" followed by "Foo".
func (l *Lexer) matchWord(word string) bool {
	for i := 0; i < len(word); i++ {
		if l.cur.Peek(i) != word[i] {
			return false
		}
	}
	if isIdentChar(l.cur.Peek(len(word))) {
		return false
	}
	for range word {
		l.cur.Advance()
	}
	return true
}
