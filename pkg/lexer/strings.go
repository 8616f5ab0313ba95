package lexer

import (
	"strings"

	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/token"
)

// scanQuoted consumes a string or character literal body up to the matching
// quote, given a kind already resolved by prefix lookup (scanIdentifierOrKeyword
// or scanOne's bare-quote fallback). Raw literals copy bytes verbatim,
// including backslashes; all others decode escapes through decodeEscape.
func (l *Lexer) scanQuoted(start token.Position, kind token.Kind, quote byte) error {
	attrs := literalAttrTable[kind]
	l.cur.Advance() // opening quote

	var body strings.Builder
	for {
		if l.cur.AtEnd() || l.cur.Current() == '\n' {
			return newError(UnterminatedLiteral, start, "unterminated literal")
		}
		c := l.cur.Current()
		if c == quote {
			l.cur.Advance()
			break
		}
		if c == '\\' {
			if attrs.raw {
				body.WriteByte(c)
				l.cur.Advance()
				continue
			}
			r, err := l.decodeEscape(start, attrs)
			if err != nil {
				return err
			}
			body.WriteRune(r)
			continue
		}
		body.WriteByte(c)
		l.cur.Advance()
	}

	l.emit(kind, body.String(), start)
	return nil
}

// escapeDigits is the fixed hex-digit count \u always consumes; the decoded
// value is then range-checked against the literal's target width rather
// than the digit count varying by width (spec.md §8's worked examples use
// four hex digits uniformly for both 8- and 16-bit character literals).
const escapeDigits = 4

func (l *Lexer) decodeEscape(start token.Position, attrs literalAttrs) (rune, error) {
	l.cur.Advance() // backslash
	c := l.cur.Current()
	switch c {
	case 'n':
		l.cur.Advance()
		return '\n', nil
	case 't':
		l.cur.Advance()
		return '\t', nil
	case 'r':
		l.cur.Advance()
		return '\r', nil
	case '\\':
		l.cur.Advance()
		return '\\', nil
	case '"':
		l.cur.Advance()
		return '"', nil
	case '\'':
		l.cur.Advance()
		return '\'', nil
	case '0':
		l.cur.Advance()
		return 0, nil
	case 'u':
		l.cur.Advance()
		var value int64
		for i := 0; i < escapeDigits; i++ {
			d, ok := hexDigitValue(l.cur.Current())
			if !ok {
				return 0, newError(InvalidEscape, start,
					"invalid unicode escape: expected %d hex digits", escapeDigits)
			}
			value = value*16 + int64(d)
			l.cur.Advance()
		}
		if attrs.width < 16 {
			maxValue := int64(1)<<uint(attrs.width) - 1
			if value > maxValue {
				return 0, newError(InvalidEscape, start, "unicode escape value exceeds target width")
			}
		}
		return rune(value), nil
	default:
		return 0, newError(InvalidEscape, start, "unknown escape character '%c'", c)
	}
}
