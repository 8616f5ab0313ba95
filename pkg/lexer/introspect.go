package lexer

import "github.com/dj-lumiere/razorforge-lang-sub007/pkg/token"

// SuffixEntry names one entry of a closed suffix table for introspection
// tools (lexctl suffixes) that need the table without re-deriving it from
// the token package.
type SuffixEntry struct {
	Text string     `json:"text"`
	Kind token.Kind `json:"kind"`
}

// Keywords returns the shared keyword table's literal spellings, sorted.
func Keywords() []string {
	out := make([]string, len(keywords))
	for i, e := range keywords {
		out[i] = e.text
	}
	return out
}

// NumericWidthSuffixes returns the 19-entry numeric-width suffix table.
func NumericWidthSuffixes() []SuffixEntry {
	return suffixEntries(numericWidthSuffixes)
}

// MemorySizeSuffixes returns the 21-entry memory-size suffix table.
func MemorySizeSuffixes() []SuffixEntry {
	return suffixEntries(memorySizeSuffixes)
}

// DurationSuffixes returns the 8-entry duration suffix table.
func DurationSuffixes() []SuffixEntry {
	return suffixEntries(durationSuffixes)
}

func suffixEntries(table []suffixEntry) []SuffixEntry {
	out := make([]SuffixEntry, len(table))
	for i, e := range table {
		out[i] = SuffixEntry{Text: e.text, Kind: e.kind}
	}
	return out
}
