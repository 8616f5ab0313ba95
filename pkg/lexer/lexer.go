// Package lexer tokenizes RazorForge (Dialect-B) and Cake/Suflae (Dialect-I)
// source text into the shared token vocabulary in pkg/token.
//
// The package is split along the same three-layer architecture regardless of
// dialect: pkg/cursor supplies byte-level navigation, this file and its
// siblings (comments.go, identifiers.go, numbers.go, strings.go,
// operators.go) supply dialect-neutral recognizers, and the Dialect-I
// indentation bookkeeping in this file is the one piece of genuinely
// dialect-specific driving logic.
package lexer

import (
	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/cursor"
	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/token"
)

// Lexer drives a single tokenization pass. Construct one via Tokenize rather
// than directly; the zero value is not usable because cur is nil.
type Lexer struct {
	cur     *cursor.Cursor
	dialect Dialect
	tokens  []token.Token

	// Dialect-I structural state (spec.md §4.3). Unused in Dialect-B.
	indentLevel    int
	expectIndent   bool
	hasTokenOnLine bool
	hasDefinitions bool

	lastKind token.Kind
	hasLast  bool
}

// Tokenize lexes source under the given dialect, returning the complete
// token stream (terminated by a single EOF token) or the first lexical
// error encountered. Lexing is non-recoverable: an error means no token
// stream is returned alongside it.
func Tokenize(source string, dialect Dialect) ([]token.Token, error) {
	l := &Lexer{cur: cursor.New(source), dialect: dialect}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.tokens, nil
}

// IsScriptMode reports whether source, tokenized under dialect, contains no
// top-level definitions — the signal a downstream compiler driver uses to
// decide whether to wrap loose top-level statements in an implicit entry
// routine. Dialect-B source is never in script mode, so this is a cheap
// dialect check rather than a second tokenization pass in that case. Lexical
// errors are treated as "has definitions" (conservative: false) since a
// malformed file shouldn't be silently wrapped.
func IsScriptMode(source string, dialect Dialect) bool {
	if dialect == DialectB {
		return false
	}
	l := &Lexer{cur: cursor.New(source), dialect: dialect}
	if err := l.run(); err != nil {
		return false
	}
	return !l.hasDefinitions
}

func (l *Lexer) pos() token.Position {
	return token.Position{Line: l.cur.Line(), Column: l.cur.Column(), Offset: l.cur.Offset()}
}

// emit appends a token and updates the driver state every recognizer
// depends on: the last-kind memo newline suppression reads, the
// has-token-on-line flag that decides whether a pending newline is
// significant, and the has-definitions flag script-mode detection reads.
func (l *Lexer) emit(kind token.Kind, text string, pos token.Position) {
	l.tokens = append(l.tokens, token.Token{
		Kind: kind, Text: text,
		Line: pos.Line, Column: pos.Column, Offset: pos.Offset,
	})
	l.lastKind = kind
	l.hasLast = true
	if kind != token.Newline && kind != token.Indent && kind != token.Dedent {
		l.hasTokenOnLine = true
	}
	if declarationStarters[kind] {
		l.hasDefinitions = true
	}
}

// run is the dispatch loop from spec.md §4.3: at the start of every line, a
// Dialect-I lexer first resolves indentation, then the shared scanner core
// takes one token at a time until EOF, at which point Dialect-I closes any
// still-open indent levels before the terminal EOF token.
func (l *Lexer) run() error {
	for !l.cur.AtEnd() {
		if l.dialect == DialectI && l.cur.Column() == 1 {
			if err := l.handleLineStart(); err != nil {
				return err
			}
			if l.cur.AtEnd() {
				break
			}
		}
		if err := l.scanOne(); err != nil {
			return err
		}
	}
	if l.dialect == DialectI {
		for l.indentLevel > 0 {
			l.emit(token.Dedent, "", l.pos())
			l.indentLevel--
		}
	}
	l.emit(token.EOF, "", l.pos())
	return nil
}

// handleLineStart runs once per source line in Dialect-I, before any token
// on that line is scanned. It counts leading indentation (tabs count as
// four columns), skips adjustment entirely for blank or comment-only lines,
// and otherwise emits the Indent/Dedent tokens needed to reconcile the new
// line's depth against current_indent_level (spec.md §4.3).
func (l *Lexer) handleLineStart() error {
	lineStart := l.pos()
	spaces := 0
	for {
		switch l.cur.Current() {
		case ' ':
			spaces++
			l.cur.Advance()
			continue
		case '\t':
			spaces += 4
			l.cur.Advance()
			continue
		}
		break
	}

	c := l.cur.Current()
	if c == '\n' || c == '\r' || c == '#' || l.cur.AtEnd() {
		return nil
	}

	if spaces%4 != 0 {
		return newError(IndentationError, lineStart,
			"indentation must be a multiple of four spaces, got %d", spaces)
	}
	newLevel := spaces / 4

	if l.expectIndent {
		if newLevel <= l.indentLevel {
			return newError(IndentationError, l.pos(), "expected indent after ':'")
		}
		l.emit(token.Indent, "", l.pos())
		l.indentLevel = newLevel
		l.expectIndent = false
		return nil
	}

	for newLevel < l.indentLevel {
		l.emit(token.Dedent, "", l.pos())
		l.indentLevel--
	}
	if newLevel > l.indentLevel {
		return newError(IndentationError, l.pos(), "unexpected indent")
	}
	return nil
}

// armBlockStarterIfNeeded looks ahead past trailing spaces/tabs, without
// consuming them, to see whether a just-emitted ':' ends its line (meaning
// it opens a block and the next line must indent). A colon followed by more
// tokens on the same line — an annotation, a slice bound, a type ascription
// — never arms expect_indent.
func (l *Lexer) armBlockStarterIfNeeded() {
	k := 0
	for {
		c := l.cur.Peek(k)
		if c == ' ' || c == '\t' {
			k++
			continue
		}
		if c == '\n' || c == '\r' || c == '#' || c == 0 {
			l.expectIndent = true
		}
		return
	}
}

// scanOne consumes exactly one token (or, for pure layout in Dialect-B,
// advances past it and consumes none). Leading space/tab/carriage-return
// runs are always layout; '\n' and '#' route to dialect-aware handlers
// before falling into the shared literal/identifier/operator dispatch.
func (l *Lexer) scanOne() error {
	for {
		switch l.cur.Current() {
		case ' ', '\t', '\r':
			l.cur.Advance()
			continue
		case '\n':
			return l.scanNewline(l.pos())
		case '#':
			return l.scanComment(l.pos())
		}
		break
	}

	start := l.pos()
	ch := l.cur.Current()
	switch {
	case ch == '_' || isLetter(ch):
		return l.scanIdentifierOrKeyword(start)
	case isDigit(ch):
		return l.scanNumber(start)
	case ch == '"':
		kind, _ := textPrefixKind(l.dialect, "")
		return l.scanQuoted(start, kind, '"')
	case ch == '\'':
		kind, _ := charPrefixKind(l.dialect, "")
		return l.scanQuoted(start, kind, '\'')
	default:
		return l.scanOperatorOrDelimiter(start)
	}
}

// scanNewline handles '\n'. Dialect-B treats all whitespace as invisible
// layout (only ';' carries statement-separator meaning there), so the only
// work is consuming the byte. Dialect-I applies the significance rule from
// spec.md §4.3: a newline matters only if some real token already appeared
// on the line and the last token isn't one that implies continuation.
func (l *Lexer) scanNewline(start token.Position) error {
	l.cur.Advance()
	if l.dialect == DialectB {
		return nil
	}
	if l.hasTokenOnLine && !l.suppressesNewline() {
		l.emit(token.Newline, "", start)
	}
	l.hasTokenOnLine = false
	return nil
}

// suppressesNewline reports whether the most recently emitted token implies
// the logical line continues, so a following physical newline carries no
// statement-boundary meaning (spec.md §4.3's continuation list). Only the
// base arithmetic operators are listed, matching the spec's literal list;
// a line ending in an overflow variant like "a +%" does not suppress.
func (l *Lexer) suppressesNewline() bool {
	if !l.hasLast {
		return true
	}
	switch l.lastKind {
	case token.LeftParen, token.LeftBracket, token.Comma, token.Dot,
		token.Plus, token.Minus, token.Multiply, token.FloatDivide, token.Divide,
		token.Equal, token.Less, token.Greater,
		token.KwAnd, token.KwOr,
		token.Arrow, token.FatArrow, token.Newline:
		return true
	default:
		return false
	}
}
