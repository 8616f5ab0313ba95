package lexer

import (
	"sort"

	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/token"
)

// keywordEntry pairs a keyword's literal text with its token kind, stored
// sorted for binary-search lookup — the keyword set is closed and known at
// compile time, so a generic hash map buys nothing here.
type keywordEntry struct {
	text string
	kind token.Kind
}

// suffixEntry is the equivalent pairing for the three numeric suffix tables.
type suffixEntry struct {
	text string
	kind token.Kind
}

func sortedKeywords(m map[string]token.Kind) []keywordEntry {
	out := make([]keywordEntry, 0, len(m))
	for text, kind := range m {
		out = append(out, keywordEntry{text, kind})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].text < out[j].text })
	return out
}

func sortedSuffixes(m map[string]token.Kind) []suffixEntry {
	out := make([]suffixEntry, 0, len(m))
	for text, kind := range m {
		out = append(out, suffixEntry{text, kind})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].text < out[j].text })
	return out
}

func lookupKeyword(table []keywordEntry, text string) (token.Kind, bool) {
	i := sort.Search(len(table), func(i int) bool { return table[i].text >= text })
	if i < len(table) && table[i].text == text {
		return table[i].kind, true
	}
	return token.Illegal, false
}

func lookupSuffix(table []suffixEntry, text string) (token.Kind, bool) {
	i := sort.Search(len(table), func(i int) bool { return table[i].text >= text })
	if i < len(table) && table[i].text == text {
		return table[i].kind, true
	}
	return token.Illegal, false
}

// keywords is the ~90-word table shared by both dialects (spec.md §2: the
// dialects "share a common token vocabulary"). A dialect that never emits a
// particular keyword in practice still reserves the word.
var keywords = sortedKeywords(map[string]token.Kind{
	"let": token.KwLet, "var": token.KwVar, "const": token.KwConst,
	"routine": token.KwRoutine, "entity": token.KwEntity, "record": token.KwRecord,
	"choice": token.KwChoice, "variant": token.KwVariant, "mutant": token.KwMutant,
	"protocol": token.KwProtocol, "import": token.KwImport, "export": token.KwExport,
	"module": token.KwModule, "package": token.KwPackage, "alias": token.KwAlias,
	"type": token.KwType, "enum": token.KwEnum, "interface": token.KwInterface,
	"struct": token.KwStruct, "trait": token.KwTrait, "impl": token.KwImpl,
	"extends": token.KwExtends, "implements": token.KwImplements,

	"private": token.KwPrivate, "public": token.KwPublic, "global": token.KwGlobal,
	"external": token.KwExternal, "imported": token.KwImported, "internal": token.KwInternal,

	"viewing": token.KwViewing, "hijacking": token.KwHijacking, "seizing": token.KwSeizing,
	"inspecting": token.KwInspecting, "usurping": token.KwUsurping, "move": token.KwMove,
	"own": token.KwOwn, "borrow": token.KwBorrow, "shared": token.KwShared,
	"weak": token.KwWeak, "lazy": token.KwLazy, "ref": token.KwRef,
	"mutable": token.KwMutable, "readonly": token.KwReadonly,

	"if": token.KwIf, "elif": token.KwElif, "else": token.KwElse,
	"while": token.KwWhile, "for": token.KwFor, "loop": token.KwLoop,
	"break": token.KwBreak, "continue": token.KwContinue, "return": token.KwReturn,
	"do": token.KwDo, "defer": token.KwDefer, "try": token.KwTry,
	"catch": token.KwCatch, "finally": token.KwFinally, "throw": token.KwThrow,
	"yield": token.KwYield, "match": token.KwMatch, "case": token.KwCase,
	"when": token.KwWhen, "is": token.KwIs, "in": token.KwIn,
	"fallthrough": token.KwFallthrough, "pass": token.KwPass,

	"true": token.KwTrue, "false": token.KwFalse, "none": token.KwNone,

	"and": token.KwAnd, "or": token.KwOr, "not": token.KwNot,

	"self": token.KwSelf, "super": token.KwSuper, "new": token.KwNew,
	"static": token.KwStatic, "override": token.KwOverride, "abstract": token.KwAbstract,
	"final": token.KwFinal, "sealed": token.KwSealed, "async": token.KwAsync,
	"await": token.KwAwait, "spawn": token.KwSpawn, "as": token.KwAs,
	"from": token.KwFrom, "to": token.KwTo, "with": token.KwWith,
	"where": token.KwWhere, "using": token.KwUsing, "unsafe": token.KwUnsafe,
	"inline": token.KwInline,
})

// declarationStarters are the keywords that open a top-level definition.
// Seeing one sets the Dialect-I driver's has_definitions flag (script-mode
// detection) and, in Dialect-I, the matching identifier-scan side effect
// from spec.md §4.2.2.
var declarationStarters = map[token.Kind]bool{
	token.KwRoutine:  true,
	token.KwEntity:   true,
	token.KwRecord:   true,
	token.KwChoice:   true,
	token.KwVariant:  true,
	token.KwMutant:   true,
	token.KwProtocol: true,
}

// numericWidthSuffixes is the 19-entry table for width-suffixed numeric
// literals (signed/unsigned integers, binary floats, decimal floats).
var numericWidthSuffixes = sortedSuffixes(map[string]token.Kind{
	"s8": token.S8Literal, "s16": token.S16Literal, "s32": token.S32Literal,
	"s64": token.S64Literal, "s128": token.S128Literal, "saddr": token.SAddrLiteral,
	"u8": token.U8Literal, "u16": token.U16Literal, "u32": token.U32Literal,
	"u64": token.U64Literal, "u128": token.U128Literal, "uaddr": token.UAddrLiteral,
	"f16": token.F16Literal, "f32": token.F32Literal, "f64": token.F64Literal,
	"f128": token.F128Literal,
	"d32":  token.D32Literal, "d64": token.D64Literal, "d128": token.D128Literal,
})

// memorySizeSuffixes is the 21-entry byte/bit x (none|SI-k/m/g/t/p|
// binary-ki/mi/gi/ti/pi) cross product.
var memorySizeSuffixes = sortedSuffixes(map[string]token.Kind{
	"b":  token.MemByteLiteral,
	"kb": token.MemKBLiteral, "mb": token.MemMBLiteral, "gb": token.MemGBLiteral,
	"tb": token.MemTBLiteral, "pb": token.MemPBLiteral,
	"kib": token.MemKiBLiteral, "mib": token.MemMiBLiteral, "gib": token.MemGiBLiteral,
	"tib": token.MemTiBLiteral, "pib": token.MemPiBLiteral,
	"kbit": token.MemKbitLiteral, "mbit": token.MemMbitLiteral, "gbit": token.MemGbitLiteral,
	"tbit": token.MemTbitLiteral, "pbit": token.MemPbitLiteral,
	"kibit": token.MemKibitLiteral, "mibit": token.MemMibitLiteral, "gibit": token.MemGibitLiteral,
	"tibit": token.MemTibitLiteral, "pibit": token.MemPibitLiteral,
})

// durationSuffixes is the 8-entry week..nanosecond table.
var durationSuffixes = sortedSuffixes(map[string]token.Kind{
	"w": token.DurationWeekLiteral, "d": token.DurationDayLiteral,
	"h": token.DurationHourLiteral, "min": token.DurationMinuteLiteral,
	"s": token.DurationSecondLiteral, "ms": token.DurationMillisecondLiteral,
	"us": token.DurationMicrosecondLiteral, "ns": token.DurationNanosecondLiteral,
})

// resolveSuffix tries the three disjoint suffix tables in order, returning
// the first match (spec.md §4.2.3: "the first match wins").
func resolveSuffix(text string) (token.Kind, bool) {
	if kind, ok := lookupSuffix(numericWidthSuffixes, text); ok {
		return kind, true
	}
	if kind, ok := lookupSuffix(memorySizeSuffixes, text); ok {
		return kind, true
	}
	if kind, ok := lookupSuffix(durationSuffixes, text); ok {
		return kind, true
	}
	return token.Illegal, false
}
