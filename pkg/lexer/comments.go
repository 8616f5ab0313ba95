package lexer

import "github.com/dj-lumiere/razorforge-lang-sub007/pkg/token"

// scanComment runs on a leading '#'. A run that starts with three hashes
// opens a doc comment: the text after those three hashes (including any
// further '#') becomes a DocComment token. One or two hashes open a silent
// comment that contributes no token at all (spec.md §4.2.1).
func (l *Lexer) scanComment(start token.Position) error {
	if l.cur.Current() == '#' && l.cur.Peek(1) == '#' && l.cur.Peek(2) == '#' {
		l.cur.Advance()
		l.cur.Advance()
		l.cur.Advance()
		bodyStart := l.cur.Offset()
		for l.cur.Current() != '\n' && !l.cur.AtEnd() {
			l.cur.Advance()
		}
		l.emit(token.DocComment, l.cur.Slice(bodyStart), start)
		return nil
	}
	for l.cur.Current() != '\n' && !l.cur.AtEnd() {
		l.cur.Advance()
	}
	return nil
}
