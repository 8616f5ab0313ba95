package lexer

import (
	"fmt"

	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/token"
)

// ErrorKind distinguishes the lexical-error categories the spec requires
// callers to be able to tell apart.
type ErrorKind int

const (
	UnterminatedLiteral ErrorKind = iota
	InvalidEscape
	UnknownSuffix
	IndentationError
	ForbiddenSyntax
)

func (k ErrorKind) String() string {
	switch k {
	case UnterminatedLiteral:
		return "UnterminatedLiteral"
	case InvalidEscape:
		return "InvalidEscape"
	case UnknownSuffix:
		return "UnknownSuffix"
	case IndentationError:
		return "IndentationError"
	case ForbiddenSyntax:
		return "ForbiddenSyntax"
	default:
		return "UnknownErrorKind"
	}
}

// Error is the single error type Tokenize reports. Lexing is non-recoverable
// per the spec: the first Error aborts tokenization, and no partial token
// stream is returned alongside it.
type Error struct {
	Kind    ErrorKind
	Pos     token.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, column %d: %s", e.Kind, e.Pos.Line, e.Pos.Column, e.Message)
}

func newError(kind ErrorKind, pos token.Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}
