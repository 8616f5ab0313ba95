// Package token defines the token taxonomy shared by the RazorForge
// (brace-and-semicolon) and Cake (indentation-sensitive) front ends.
//
// Unlike a multi-vendor SQL dialect system, the two source dialects here
// share one closed, compile-time-known vocabulary (spec §2), so token kinds
// are plain constants — no runtime registration is needed.
package token

import (
	"encoding/json"
	"fmt"
)

// Kind identifies the lexical category of a Token. It is a closed tagged
// enumeration: every valid source program's tokens fit one of these kinds.
type Kind int32

//nolint:revive // grouped, not stuttering: these are read as token.EOF, token.Plus, etc.
const (
	// Special tokens.
	EOF Kind = iota
	Illegal

	// Structural tokens. Indent/Dedent are emitted only by the Dialect-I
	// (Cake) driver. Newline marks a significant line end in Dialect-I and a
	// ';' statement terminator in Dialect-B (RazorForge). DocComment is
	// emitted in both dialects.
	Newline
	Indent
	Dedent
	DocComment

	// Identifiers.
	Identifier     // ordinary identifier
	TypeIdentifier // Dialect-B only: a PascalCase identifier

	// ---- Keywords (≈90; see pkg/lexer/keywords.go for the literal table) ----

	// Declarations.
	KwLet
	KwVar
	KwConst
	KwRoutine
	KwEntity
	KwRecord
	KwChoice
	KwVariant
	KwMutant
	KwProtocol
	KwImport
	KwExport
	KwModule
	KwPackage
	KwAlias
	KwType
	KwEnum
	KwInterface
	KwStruct
	KwTrait
	KwImpl
	KwExtends
	KwImplements

	// Access modifiers.
	KwPrivate
	KwPublic
	KwGlobal
	KwExternal
	KwImported
	KwInternal

	// Memory-access / ownership modes.
	KwViewing
	KwHijacking
	KwSeizing
	KwInspecting
	KwUsurping
	KwMove
	KwOwn
	KwBorrow
	KwShared
	KwWeak
	KwLazy
	KwRef
	KwMutable
	KwReadonly

	// Control flow.
	KwIf
	KwElif
	KwElse
	KwWhile
	KwFor
	KwLoop
	KwBreak
	KwContinue
	KwReturn
	KwDo
	KwDefer
	KwTry
	KwCatch
	KwFinally
	KwThrow
	KwYield
	KwMatch
	KwCase
	KwWhen
	KwIs
	KwIn
	KwFallthrough
	KwPass

	// Booleans / none.
	KwTrue
	KwFalse
	KwNone

	// Logical words.
	KwAnd
	KwOr
	KwNot

	// Misc modifiers and clause words.
	KwSelf
	KwSuper
	KwNew
	KwStatic
	KwOverride
	KwAbstract
	KwFinal
	KwSealed
	KwAsync
	KwAwait
	KwSpawn
	KwAs
	KwFrom
	KwTo
	KwWith
	KwWhere
	KwUsing
	KwUnsafe
	KwInline

	// ---- Literals ----

	// Dialect-I arbitrary-precision defaults.
	Integer // unsuffixed integer, Dialect-I
	Decimal // unsuffixed float, Dialect-I

	// Width-suffixed integers (numeric-width suffix table).
	S8Literal
	S16Literal
	S32Literal
	S64Literal // also Dialect-B's unsuffixed default integer literal
	S128Literal
	SAddrLiteral
	U8Literal
	U16Literal
	U32Literal
	U64Literal
	U128Literal
	UAddrLiteral

	// Binary floats (numeric-width suffix table).
	F16Literal
	F32Literal
	F64Literal // also Dialect-B's unsuffixed default float literal
	F128Literal

	// Decimal floats (numeric-width suffix table).
	D32Literal
	D64Literal
	D128Literal

	// Memory-size literals (21 variants: byte/bit x none/SI/binary x k/m/g/t/p).
	MemByteLiteral
	MemKBLiteral
	MemMBLiteral
	MemGBLiteral
	MemTBLiteral
	MemPBLiteral
	MemKiBLiteral
	MemMiBLiteral
	MemGiBLiteral
	MemTiBLiteral
	MemPiBLiteral
	MemKbitLiteral
	MemMbitLiteral
	MemGbitLiteral
	MemTbitLiteral
	MemPbitLiteral
	MemKibitLiteral
	MemMibitLiteral
	MemGibitLiteral
	MemTibitLiteral
	MemPibitLiteral

	// Duration literals (8 variants, w...ns).
	DurationWeekLiteral
	DurationDayLiteral
	DurationHourLiteral
	DurationMinuteLiteral
	DurationSecondLiteral
	DurationMillisecondLiteral
	DurationMicrosecondLiteral
	DurationNanosecondLiteral

	// Character literals.
	LetterLiteral   // 32-bit, plain '...' in both dialects or explicit letter32'...'
	Letter8Literal  // Dialect-B letter8'...'
	Letter16Literal // Dialect-B letter16'...'
	ByteCharLiteral // Dialect-I b'...'

	// Text literals (Dialect-B: 8-bit/16-bit widths).
	Text8Text
	Text8RawText
	Text8FormattedText
	Text8RawFormattedText
	Text16Text
	Text16RawText
	Text16FormattedText
	Text16RawFormattedText

	// Text literals (Dialect-I: 32-bit default width, byte variant).
	Text32Text
	Text32RawText
	Text32FormattedText
	Text32RawFormattedText
	ByteText
	ByteRawText
	ByteFormattedText
	ByteRawFormattedText

	// ---- Operators ----

	// Arithmetic: +
	Plus
	PlusWrap
	PlusSaturate
	PlusChecked
	PlusUnchecked
	PlusAssign
	PlusWrapAssign
	PlusSaturateAssign
	PlusCheckedAssign
	PlusUncheckedAssign

	// Arithmetic: -
	Minus
	MinusWrap
	MinusSaturate
	MinusChecked
	MinusUnchecked
	MinusAssign
	MinusWrapAssign
	MinusSaturateAssign
	MinusCheckedAssign
	MinusUncheckedAssign

	// Arithmetic: *
	Multiply
	MultiplyWrap
	MultiplySaturate
	MultiplyChecked
	MultiplyUnchecked
	MultiplyAssign
	MultiplyWrapAssign
	MultiplySaturateAssign
	MultiplyCheckedAssign
	MultiplyUncheckedAssign

	// Arithmetic: %
	Modulo
	ModuloWrap
	ModuloSaturate
	ModuloChecked
	ModuloAssign
	ModuloWrapAssign
	ModuloSaturateAssign
	ModuloCheckedAssign

	// Arithmetic: ** (power)
	Power
	PowerWrap
	PowerSaturate
	PowerChecked
	PowerAssign
	PowerWrapAssign
	PowerSaturateAssign
	PowerCheckedAssign

	// Arithmetic: / (float division, no overflow variants)
	FloatDivide
	FloatDivideAssign

	// Arithmetic: // (integer division, overflow variants named "Divide*")
	Divide
	DivideWrap
	DivideSaturate
	DivideChecked
	DivideUnchecked
	DivideAssign
	DivideWrapAssign
	DivideSaturateAssign
	DivideCheckedAssign
	DivideUncheckedAssign

	// Comparison.
	Equal
	NotEqual
	Less
	LessEqual
	Spaceship // <=>
	Greater
	GreaterEqual
	RefEqual    // ===
	RefNotEqual // !==

	// Assignment / arrows.
	Assign
	Arrow    // ->
	FatArrow // =>

	// Bitwise.
	Ampersand
	Pipe
	Caret
	Tilde
	LeftShift
	RightShift
	LogicalLeftShift  // <<<
	LogicalRightShift // >>>
	CheckedLeftShift  // <<?
	CheckedRightShift // >>?
	AmpersandAssign
	PipeAssign
	CaretAssign
	LeftShiftAssign
	RightShiftAssign
	LogicalLeftShiftAssign
	LogicalRightShiftAssign
	CheckedLeftShiftAssign
	CheckedRightShiftAssign

	// Special.
	NullCoalesce       // ??
	NullCoalesceAssign // ??=
	Elvis              // ?:
	At                 // @
	AtIntrinsic        // @intrinsic
	AtNative           // @native
	Hash               // # — reserved in the taxonomy; never emitted (see pkg/lexer/comments.go)

	// Delimiters.
	LeftParen
	RightParen
	LeftBracket
	RightBracket
	LeftBrace
	RightBrace
	Comma
	Dot
	DotDotDot // ...
	Colon
	DoubleColon // :: — Dialect-B only

	// maxKind is a sentinel, not a valid token kind.
	maxKind
)

// String returns a human-readable name for k, used in diagnostics and by
// lexctl's `tokens` command.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int32(k))
}

// MarshalJSON renders a Kind as its name rather than its numeric value, so
// lexctl's `tokens --format json` output is self-describing.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// IsKeyword reports whether k is one of the reserved keyword kinds.
func IsKeyword(k Kind) bool {
	return k >= KwLet && k <= KwInline
}

// IsOperator reports whether k is an operator or delimiter kind.
func IsOperator(k Kind) bool {
	return k >= Plus && k < maxKind
}

// IsLiteral reports whether k is a literal kind.
func IsLiteral(k Kind) bool {
	return k >= Integer && k < Plus
}

// Token is an immutable lexical token: a kind tag, the exact source text (or,
// for strings with escapes, the decoded contents), and the position of its
// first character.
type Token struct {
	Kind   Kind
	Text   string
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based byte offset
}

// Pos returns the token's position as a Position value.
func (t Token) Pos() Position {
	return Position{Line: t.Line, Column: t.Column, Offset: t.Offset}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Text, t.Line, t.Column)
}
