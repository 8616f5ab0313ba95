package lexer

import "github.com/dj-lumiere/razorforge-lang-sub007/pkg/token"

// literalAttrs captures the decode-time behavior that follows from a string
// or character literal's resolved prefix: whether escapes are interpreted at
// all, and the nominal width used to cap \u escape values (spec.md §4.2.4).
// Formatting placeholders and the 8-bit byte-range rule are both fully
// determined by the token kind itself — every width-8 entry caps escapes at
// 0xFF regardless of whether the kind is a "text8" or a "byte" literal — so
// neither needs its own field here.
type literalAttrs struct {
	raw   bool
	width int
}

var literalAttrTable = map[token.Kind]literalAttrs{
	token.Text8Text:              {false, 8},
	token.Text8RawText:           {true, 8},
	token.Text8FormattedText:     {false, 8},
	token.Text8RawFormattedText:  {true, 8},
	token.Text16Text:             {false, 16},
	token.Text16RawText:          {true, 16},
	token.Text16FormattedText:    {false, 16},
	token.Text16RawFormattedText: {true, 16},
	token.Text32Text:             {false, 32},
	token.Text32RawText:          {true, 32},
	token.Text32FormattedText:    {false, 32},
	token.Text32RawFormattedText: {true, 32},
	token.ByteText:               {false, 8},
	token.ByteRawText:            {true, 8},
	token.ByteFormattedText:      {false, 8},
	token.ByteRawFormattedText:   {true, 8},
	token.LetterLiteral:          {false, 32},
	token.Letter8Literal:         {false, 8},
	token.Letter16Literal:        {false, 16},
	token.ByteCharLiteral:        {false, 8},
}

// dialectBTextPrefixes maps a RazorForge string prefix word (including the
// empty prefix) to its resolved kind. "r"/"f" are shorthand for the default
// width-8 family; "t8"/"t16" spell the width out explicitly.
var dialectBTextPrefixes = map[string]token.Kind{
	"":      token.Text8Text,
	"r":     token.Text8RawText,
	"f":     token.Text8FormattedText,
	"rf":    token.Text8RawFormattedText,
	"t8":    token.Text8Text,
	"t8r":   token.Text8RawText,
	"t8f":   token.Text8FormattedText,
	"t8rf":  token.Text8RawFormattedText,
	"t16":   token.Text16Text,
	"t16r":  token.Text16RawText,
	"t16f":  token.Text16FormattedText,
	"t16rf": token.Text16RawFormattedText,
}

var dialectBCharPrefixes = map[string]token.Kind{
	"":         token.LetterLiteral,
	"letter8":  token.Letter8Literal,
	"letter16": token.Letter16Literal,
	"letter32": token.LetterLiteral,
}

// dialectITextPrefixes: Cake/Suflae defaults to a width-32 text literal and
// spells the byte family with a "b" prefix instead of a width number.
var dialectITextPrefixes = map[string]token.Kind{
	"":    token.Text32Text,
	"r":   token.Text32RawText,
	"f":   token.Text32FormattedText,
	"rf":  token.Text32RawFormattedText,
	"b":   token.ByteText,
	"br":  token.ByteRawText,
	"bf":  token.ByteFormattedText,
	"brf": token.ByteRawFormattedText,
}

var dialectICharPrefixes = map[string]token.Kind{
	"":  token.LetterLiteral,
	"b": token.ByteCharLiteral,
}

func textPrefixKind(d Dialect, word string) (token.Kind, bool) {
	table := dialectITextPrefixes
	if d == DialectB {
		table = dialectBTextPrefixes
	}
	kind, ok := table[word]
	return kind, ok
}

func charPrefixKind(d Dialect, word string) (token.Kind, bool) {
	table := dialectICharPrefixes
	if d == DialectB {
		table = dialectBCharPrefixes
	}
	kind, ok := table[word]
	return kind, ok
}
