package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/lexer"
)

func TestKeywordsTableIsSortedAndNonEmpty(t *testing.T) {
	words := lexer.Keywords()
	assert.NotEmpty(t, words)
	for i := 1; i < len(words); i++ {
		assert.Less(t, words[i-1], words[i])
	}
}

func TestSuffixTablesAreDisjoint(t *testing.T) {
	seen := map[string]bool{}
	for _, table := range [][]lexer.SuffixEntry{
		lexer.NumericWidthSuffixes(),
		lexer.MemorySizeSuffixes(),
		lexer.DurationSuffixes(),
	} {
		for _, e := range table {
			assert.False(t, seen[e.Text], "suffix %q appears in more than one table", e.Text)
			seen[e.Text] = true
		}
	}
}
