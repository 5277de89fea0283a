// Package suggest produces "did you mean" hints for the lexer and parser
// error paths: nearest-keyword matching by edit distance, and a fixed table
// of habits carried over from HTML/JS that map to a targeted hint.
package suggest

// Levenshtein computes the edit distance between a and b with unit-cost
// insert, delete, and substitute operations.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min3(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

// maxDistance is the cutoff beyond which a nearest keyword is considered
// noise rather than a likely typo.
const maxDistance = 2

// Keyword returns the candidate closest to word by edit distance, or
// ("", false) when even the best candidate is further than the cutoff.
func Keyword(word string, candidates []string) (string, bool) {
	best := ""
	bestDist := maxDistance + 1
	for _, cand := range candidates {
		d := Levenshtein(word, cand)
		if d < bestDist {
			best = cand
			bestDist = d
		}
	}
	if bestDist > maxDistance {
		return "", false
	}
	return best, true
}

// commonMistakes maps keywords from other ecosystems to targeted hints.
// Checked before the edit-distance fallback so that, say, `div` never gets
// matched against an unrelated keyword.
var commonMistakes = map[string]string{
	"div":      "use 'layout' (or 'row'/'column') to group elements",
	"span":     "use 'text' for inline text",
	"p":        "use 'text' for paragraphs",
	"h1":       "use 'text' with a size class, e.g. text \"...\" .2xl",
	"h2":       "use 'text' with a size class, e.g. text \"...\" .xl",
	"img":      "use 'image' with a source string",
	"a":        "use 'link' with a target string",
	"href":     "use 'link' with a target string",
	"var":      "use 'state' to declare reactive variables",
	"const":    "use 'state' to declare reactive variables",
	"function": "use 'fn' to declare functions",
	"def":      "use 'fn' to declare functions",
	"func":     "use 'fn' to declare functions",
	"onclick":  "attach handlers with '@click:' on a button",
	"onchange": "attach handlers with '@change:' on an input",
	"print":    "use 'log(...)' inside function bodies",
	"while":    "use 'for item in items' to iterate",
	"switch":   "use 'if'/'elif'/'else' branches",
	"class":    "use 'component' to define reusable UI",
}

// Hint returns the wrong-ecosystem hint for word, if there is one.
func Hint(word string) (string, bool) {
	hint, ok := commonMistakes[word]
	return hint, ok
}

// For builds the suggestion fragment appended to unknown-keyword errors:
// a targeted hint when the word is a known habit from another ecosystem,
// otherwise a nearest-keyword guess, otherwise "".
func For(word string, candidates []string) string {
	if hint, ok := Hint(word); ok {
		return hint
	}
	if kw, ok := Keyword(word, candidates); ok {
		return "Did you mean '" + kw + "'?"
	}
	return ""
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
