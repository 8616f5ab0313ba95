package lexer

import "github.com/dj-lumiere/razorforge-lang-sub007/pkg/token"

// scanNumber implements the three-phase recognition from spec.md §4.2.3:
// an optional hex/binary prefix (phase 2) or a plain decimal body with
// optional fractional and exponent parts (phase 1), followed in both cases
// by an optional suffix (phase 3) resolved through resolveSuffix.
func (l *Lexer) scanNumber(start token.Position) error {
	offset := l.cur.Offset()

	if l.cur.Current() == '0' && (l.cur.Peek(1) == 'x' || l.cur.Peek(1) == 'X') {
		l.cur.Advance()
		l.cur.Advance()
		digitsStart := l.cur.Offset()
		for isHexDigit(l.cur.Current()) || l.cur.Current() == '_' {
			l.cur.Advance()
		}
		if l.cur.Offset() == digitsStart {
			return newError(UnknownSuffix, start, "hexadecimal literal requires at least one digit after '0x'")
		}
		return l.finishNumberLiteral(start, offset, false, true)
	}

	if l.cur.Current() == '0' && (l.cur.Peek(1) == 'b' || l.cur.Peek(1) == 'B') {
		if l.dialect == DialectB && !isBinaryDigit(l.cur.Peek(2)) {
			// "0b" not followed by a binary digit: the 'b' is pushed back
			// (spec.md §4.2.3/§8) rather than read as a suffix attempt — the
			// '0' stands alone, and the main loop picks up "b..." fresh as
			// an ordinary identifier on the next call.
			l.cur.Advance()
			l.emit(token.S64Literal, l.cur.Slice(offset), start)
			return nil
		}
		l.cur.Advance()
		l.cur.Advance()
		digitsStart := l.cur.Offset()
		for isBinaryDigit(l.cur.Current()) || l.cur.Current() == '_' {
			l.cur.Advance()
		}
		if l.cur.Offset() == digitsStart {
			return newError(UnknownSuffix, start, "binary literal requires at least one digit after '0b'")
		}
		return l.finishNumberLiteral(start, offset, false, true)
	}

	for isDigit(l.cur.Current()) || l.cur.Current() == '_' {
		l.cur.Advance()
	}

	isFloat := false
	if l.cur.Current() == '.' && isDigit(l.cur.Peek(1)) {
		isFloat = true
		l.cur.Advance()
		for isDigit(l.cur.Current()) || l.cur.Current() == '_' {
			l.cur.Advance()
		}
	}

	if l.cur.Current() == 'e' || l.cur.Current() == 'E' {
		lookahead := 1
		if l.cur.Peek(1) == '+' || l.cur.Peek(1) == '-' {
			lookahead = 2
		}
		if isDigit(l.cur.Peek(lookahead)) {
			isFloat = true
			l.cur.Advance()
			if l.cur.Current() == '+' || l.cur.Current() == '-' {
				l.cur.Advance()
			}
			for isDigit(l.cur.Current()) || l.cur.Current() == '_' {
				l.cur.Advance()
			}
		}
	}

	return l.finishNumberLiteral(start, offset, isFloat, false)
}

// finishNumberLiteral resolves the optional trailing suffix and picks the
// unsuffixed default kind per dialect when there is none.
func (l *Lexer) finishNumberLiteral(start token.Position, offset int, isFloat, isPrefixed bool) error {
	if isLetter(l.cur.Current()) {
		suffixStart := l.cur.Offset()
		for isIdentChar(l.cur.Current()) {
			l.cur.Advance()
		}
		suffix := l.cur.Slice(suffixStart)
		kind, ok := resolveSuffix(suffix)
		if !ok {
			return newError(UnknownSuffix, start, "unknown numeric suffix '%s'", suffix)
		}
		if isPrefixed && !isNumericWidthKind(kind) {
			return newError(UnknownSuffix, start,
				"hexadecimal/binary literals accept only a numeric-width suffix, got '%s'", suffix)
		}
		l.emit(kind, l.cur.Slice(offset), start)
		return nil
	}

	text := l.cur.Slice(offset)
	switch {
	case isFloat && l.dialect == DialectB:
		l.emit(token.F64Literal, text, start)
	case isFloat:
		l.emit(token.Decimal, text, start)
	case l.dialect == DialectB:
		l.emit(token.S64Literal, text, start)
	default:
		l.emit(token.Integer, text, start)
	}
	return nil
}

func isNumericWidthKind(kind token.Kind) bool {
	return kind >= token.S8Literal && kind <= token.D128Literal
}
