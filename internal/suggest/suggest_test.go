package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, Levenshtein("", ""))
	assert.Equal(t, 3, Levenshtein("", "abc"))
	assert.Equal(t, 3, Levenshtein("abc", ""))
	assert.Equal(t, 0, Levenshtein("page", "page"))
	assert.Equal(t, 1, Levenshtein("abc", "abd"), "one substitution")
	assert.Equal(t, 1, Levenshtein("pag", "page"), "one insertion")
	assert.Equal(t, 2, Levenshtein("paeg", "page"), "transposition costs two")
	assert.Equal(t, 3, Levenshtein("kitten", "sitting"))
	assert.Equal(t, 1, Levenshtein("상태", "상태값"), "rune-based, not byte-based")
}

func TestKeywordSuggestion(t *testing.T) {
	candidates := []string{"page", "component", "state", "derived", "button"}

	got, ok := Keyword("page", candidates)
	assert.True(t, ok)
	assert.Equal(t, "page", got)

	got, ok = Keyword("stait", candidates)
	assert.True(t, ok)
	assert.Equal(t, "state", got)

	_, ok = Keyword("zzzzzz", candidates)
	assert.False(t, ok, "nothing within distance 2")

	_, ok = Keyword("page", candidates)
	assert.True(t, ok, "exact match is still a suggestion")
}

func TestWrongEcosystemHints(t *testing.T) {
	for word, want := range map[string]string{
		"div":      "layout",
		"function": "fn",
		"onclick":  "@click",
		"var":      "state",
	} {
		hint, ok := Hint(word)
		assert.True(t, ok, word)
		assert.Contains(t, hint, want)
	}

	_, ok := Hint("blarg")
	assert.False(t, ok, "no hint for arbitrary words")
}

func TestForPrefersHintOverDistance(t *testing.T) {
	candidates := []string{"divider", "layout"}

	// A known wrong-ecosystem word gets its hint even when a candidate is
	// within edit distance.
	msg := For("div", candidates)
	assert.Contains(t, msg, "layout")

	msg = For("layuot", candidates)
	assert.Contains(t, msg, "Did you mean 'layout'?")

	assert.Empty(t, For("qqqqqq", candidates))
}
