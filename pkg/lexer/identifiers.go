package lexer

import "github.com/dj-lumiere/razorforge-lang-sub007/pkg/token"

// scanIdentifierOrKeyword consumes a letter/underscore-led word. Before
// deciding it's a plain identifier it checks two other possibilities the
// same leading characters can produce: a string/char literal prefix
// (immediately followed by the matching quote, with no intervening word
// boundary — "foo"bar"" lexes as two tokens, not a malformed prefix) and a
// trailing '?' absorbed as part of a failable-type name. Word text that
// matches neither continues on to the keyword table (spec.md §4.2.2).
func (l *Lexer) scanIdentifierOrKeyword(start token.Position) error {
	offset := l.cur.Offset()
	for isIdentChar(l.cur.Current()) {
		l.cur.Advance()
	}
	word := l.cur.Slice(offset)

	if l.cur.Current() == '"' {
		if kind, ok := textPrefixKind(l.dialect, word); ok {
			return l.scanQuoted(start, kind, '"')
		}
	}
	if l.cur.Current() == '\'' {
		if kind, ok := charPrefixKind(l.dialect, word); ok {
			return l.scanQuoted(start, kind, '\'')
		}
	}

	// A trailing '?' marks a failable type name (e.g. "Result?") unless it's
	// the start of "??", which belongs to the next token.
	if l.cur.Current() == '?' && l.cur.Peek(1) != '?' {
		l.cur.Advance()
		word = l.cur.Slice(offset)
	}

	kind, isKeyword := lookupKeyword(keywords, word)
	if !isKeyword {
		if l.dialect == DialectB && len(word) > 0 && isUpperByte(word[0]) {
			kind = token.TypeIdentifier
		} else {
			kind = token.Identifier
		}
	}
	l.emit(kind, word, start)
	return nil
}
