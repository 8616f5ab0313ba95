package token

// kindNames maps every Kind to its human-readable name, used by String()
// and by lexctl's table/JSON output.
var kindNames = map[Kind]string{
	EOF:        "EOF",
	Illegal:    "Illegal",
	Newline:    "Newline",
	Indent:     "Indent",
	Dedent:     "Dedent",
	DocComment: "DocComment",

	Identifier:     "Identifier",
	TypeIdentifier: "TypeIdentifier",

	KwLet:         "let",
	KwVar:         "var",
	KwConst:       "const",
	KwRoutine:     "routine",
	KwEntity:      "entity",
	KwRecord:      "record",
	KwChoice:      "choice",
	KwVariant:     "variant",
	KwMutant:      "mutant",
	KwProtocol:    "protocol",
	KwImport:      "import",
	KwExport:      "export",
	KwModule:      "module",
	KwPackage:     "package",
	KwAlias:       "alias",
	KwType:        "type",
	KwEnum:        "enum",
	KwInterface:   "interface",
	KwStruct:      "struct",
	KwTrait:       "trait",
	KwImpl:        "impl",
	KwExtends:     "extends",
	KwImplements:  "implements",
	KwPrivate:     "private",
	KwPublic:      "public",
	KwGlobal:      "global",
	KwExternal:    "external",
	KwImported:    "imported",
	KwInternal:    "internal",
	KwViewing:     "viewing",
	KwHijacking:   "hijacking",
	KwSeizing:     "seizing",
	KwInspecting:  "inspecting",
	KwUsurping:    "usurping",
	KwMove:        "move",
	KwOwn:         "own",
	KwBorrow:      "borrow",
	KwShared:      "shared",
	KwWeak:        "weak",
	KwLazy:        "lazy",
	KwRef:         "ref",
	KwMutable:     "mutable",
	KwReadonly:    "readonly",
	KwIf:          "if",
	KwElif:        "elif",
	KwElse:        "else",
	KwWhile:       "while",
	KwFor:         "for",
	KwLoop:        "loop",
	KwBreak:       "break",
	KwContinue:    "continue",
	KwReturn:      "return",
	KwDo:          "do",
	KwDefer:       "defer",
	KwTry:         "try",
	KwCatch:       "catch",
	KwFinally:     "finally",
	KwThrow:       "throw",
	KwYield:       "yield",
	KwMatch:       "match",
	KwCase:        "case",
	KwWhen:        "when",
	KwIs:          "is",
	KwIn:          "in",
	KwFallthrough: "fallthrough",
	KwPass:        "pass",
	KwTrue:        "true",
	KwFalse:       "false",
	KwNone:        "none",
	KwAnd:         "and",
	KwOr:          "or",
	KwNot:         "not",
	KwSelf:        "self",
	KwSuper:       "super",
	KwNew:         "new",
	KwStatic:      "static",
	KwOverride:    "override",
	KwAbstract:    "abstract",
	KwFinal:       "final",
	KwSealed:      "sealed",
	KwAsync:       "async",
	KwAwait:       "await",
	KwSpawn:       "spawn",
	KwAs:          "as",
	KwFrom:        "from",
	KwTo:          "to",
	KwWith:        "with",
	KwWhere:       "where",
	KwUsing:       "using",
	KwUnsafe:      "unsafe",
	KwInline:      "inline",

	Integer: "Integer",
	Decimal: "Decimal",

	S8Literal:    "S8Literal",
	S16Literal:   "S16Literal",
	S32Literal:   "S32Literal",
	S64Literal:   "S64Literal",
	S128Literal:  "S128Literal",
	SAddrLiteral: "SAddrLiteral",
	U8Literal:    "U8Literal",
	U16Literal:   "U16Literal",
	U32Literal:   "U32Literal",
	U64Literal:   "U64Literal",
	U128Literal:  "U128Literal",
	UAddrLiteral: "UAddrLiteral",

	F16Literal:  "F16Literal",
	F32Literal:  "F32Literal",
	F64Literal:  "F64Literal",
	F128Literal: "F128Literal",

	D32Literal:  "D32Literal",
	D64Literal:  "D64Literal",
	D128Literal: "D128Literal",

	MemByteLiteral:  "MemByteLiteral",
	MemKBLiteral:    "MemKBLiteral",
	MemMBLiteral:    "MemMBLiteral",
	MemGBLiteral:    "MemGBLiteral",
	MemTBLiteral:    "MemTBLiteral",
	MemPBLiteral:    "MemPBLiteral",
	MemKiBLiteral:   "MemKiBLiteral",
	MemMiBLiteral:   "MemMiBLiteral",
	MemGiBLiteral:   "MemGiBLiteral",
	MemTiBLiteral:   "MemTiBLiteral",
	MemPiBLiteral:   "MemPiBLiteral",
	MemKbitLiteral:  "MemKbitLiteral",
	MemMbitLiteral:  "MemMbitLiteral",
	MemGbitLiteral:  "MemGbitLiteral",
	MemTbitLiteral:  "MemTbitLiteral",
	MemPbitLiteral:  "MemPbitLiteral",
	MemKibitLiteral: "MemKibitLiteral",
	MemMibitLiteral: "MemMibitLiteral",
	MemGibitLiteral: "MemGibitLiteral",
	MemTibitLiteral: "MemTibitLiteral",
	MemPibitLiteral: "MemPibitLiteral",

	DurationWeekLiteral:        "DurationWeekLiteral",
	DurationDayLiteral:         "DurationDayLiteral",
	DurationHourLiteral:        "DurationHourLiteral",
	DurationMinuteLiteral:      "DurationMinuteLiteral",
	DurationSecondLiteral:      "DurationSecondLiteral",
	DurationMillisecondLiteral: "DurationMillisecondLiteral",
	DurationMicrosecondLiteral: "DurationMicrosecondLiteral",
	DurationNanosecondLiteral:  "DurationNanosecondLiteral",

	LetterLiteral:   "LetterLiteral",
	Letter8Literal:  "Letter8Literal",
	Letter16Literal: "Letter16Literal",
	ByteCharLiteral: "ByteCharLiteral",

	Text8Text:              "Text8Text",
	Text8RawText:           "Text8RawText",
	Text8FormattedText:     "Text8FormattedText",
	Text8RawFormattedText:  "Text8RawFormattedText",
	Text16Text:             "Text16Text",
	Text16RawText:          "Text16RawText",
	Text16FormattedText:    "Text16FormattedText",
	Text16RawFormattedText: "Text16RawFormattedText",
	Text32Text:             "Text32Text",
	Text32RawText:          "Text32RawText",
	Text32FormattedText:    "Text32FormattedText",
	Text32RawFormattedText: "Text32RawFormattedText",
	ByteText:               "ByteText",
	ByteRawText:            "ByteRawText",
	ByteFormattedText:      "ByteFormattedText",
	ByteRawFormattedText:   "ByteRawFormattedText",

	Plus:                "+",
	PlusWrap:            "+%",
	PlusSaturate:        "+^",
	PlusChecked:         "+?",
	PlusUnchecked:       "+!",
	PlusAssign:          "+=",
	PlusWrapAssign:      "+%=",
	PlusSaturateAssign:  "+^=",
	PlusCheckedAssign:   "+?=",
	PlusUncheckedAssign: "+!=",

	Minus:                "-",
	MinusWrap:            "-%",
	MinusSaturate:        "-^",
	MinusChecked:         "-?",
	MinusUnchecked:       "-!",
	MinusAssign:          "-=",
	MinusWrapAssign:      "-%=",
	MinusSaturateAssign:  "-^=",
	MinusCheckedAssign:   "-?=",
	MinusUncheckedAssign: "-!=",

	Multiply:                "*",
	MultiplyWrap:            "*%",
	MultiplySaturate:        "*^",
	MultiplyChecked:         "*?",
	MultiplyUnchecked:       "*!",
	MultiplyAssign:          "*=",
	MultiplyWrapAssign:      "*%=",
	MultiplySaturateAssign:  "*^=",
	MultiplyCheckedAssign:   "*?=",
	MultiplyUncheckedAssign: "*!=",

	Modulo:               "%",
	ModuloWrap:           "%%",
	ModuloSaturate:       "%^",
	ModuloChecked:        "%?",
	ModuloAssign:         "%=",
	ModuloWrapAssign:     "%%=",
	ModuloSaturateAssign: "%^=",
	ModuloCheckedAssign:  "%?=",

	Power:                "**",
	PowerWrap:            "**%",
	PowerSaturate:        "**^",
	PowerChecked:         "**?",
	PowerAssign:          "**=",
	PowerWrapAssign:      "**%=",
	PowerSaturateAssign:  "**^=",
	PowerCheckedAssign:   "**?=",

	FloatDivide:       "/",
	FloatDivideAssign: "/=",

	Divide:                "//",
	DivideWrap:            "//%",
	DivideSaturate:        "//^",
	DivideChecked:         "//?",
	DivideUnchecked:       "//!",
	DivideAssign:          "//=",
	DivideWrapAssign:      "//%=",
	DivideSaturateAssign:  "//^=",
	DivideCheckedAssign:   "//?=",
	DivideUncheckedAssign: "//!=",

	Equal:        "==",
	NotEqual:     "!=",
	Less:         "<",
	LessEqual:    "<=",
	Spaceship:    "<=>",
	Greater:      ">",
	GreaterEqual: ">=",
	RefEqual:     "===",
	RefNotEqual:  "!==",

	Assign:   "=",
	Arrow:    "->",
	FatArrow: "=>",

	Ampersand:               "&",
	Pipe:                    "|",
	Caret:                   "^",
	Tilde:                   "~",
	LeftShift:               "<<",
	RightShift:              ">>",
	LogicalLeftShift:        "<<<",
	LogicalRightShift:       ">>>",
	CheckedLeftShift:        "<<?",
	CheckedRightShift:       ">>?",
	AmpersandAssign:         "&=",
	PipeAssign:              "|=",
	CaretAssign:             "^=",
	LeftShiftAssign:         "<<=",
	RightShiftAssign:        ">>=",
	LogicalLeftShiftAssign:  "<<<=",
	LogicalRightShiftAssign: ">>>=",
	CheckedLeftShiftAssign:  "<<?=",
	CheckedRightShiftAssign: ">>?=",

	NullCoalesce:       "??",
	NullCoalesceAssign: "??=",
	Elvis:              "?:",
	At:                 "@",
	AtIntrinsic:        "@intrinsic",
	AtNative:           "@native",
	Hash:               "#",

	LeftParen:    "(",
	RightParen:   ")",
	LeftBracket:  "[",
	RightBracket: "]",
	LeftBrace:    "{",
	RightBrace:   "}",
	Comma:        ",",
	Dot:          ".",
	DotDotDot:    "...",
	Colon:        ":",
	DoubleColon:  "::",
}
