package lexer

import "sort"

// KEYWORDS is the reserved-word set of the language. Words outside this set
// (and outside HTTP_METHODS) scan as identifiers.
var KEYWORDS = map[string]bool{
	// Containers
	"page":      true,
	"component": true,
	"app":       true,

	// Body declarations
	"state":    true,
	"derived":  true,
	"prop":     true,
	"fn":       true,
	"type":     true,
	"store":    true,
	"api":      true,
	"on":       true,
	"mount":    true,
	"destroy":  true,
	"watch":    true,
	"style":    true,
	"requires": true,
	"ensures":  true,

	// Domain declarations
	"model":    true,
	"auth":     true,
	"route":    true,
	"deploy":   true,
	"endpoint": true,
	"form":     true,
	"table":    true,
	"chart":    true,
	"nav":      true,
	"theme":    true,
	"upload":   true,
	"socket":   true,
	"task":     true,
	"seed":     true,
	"config":   true,

	// Control flow
	"if":   true,
	"elif": true,
	"else": true,
	"for":  true,
	"in":   true,
	"show": true,
	"hide": true,

	// Statements and expressions
	"let":    true,
	"return": true,
	"await":  true,
	"prev":   true,
	"true":   true,
	"false":  true,
	"null":   true,

	// UI containers
	"layout": true,
	"row":    true,
	"column": true,
	"grid":   true,
	"stack":  true,
	"card":   true,
	"modal":  true,
	"header": true,
	"footer": true,
	"list":   true,
	"tabs":   true,
	"tab":    true,

	// UI leaves
	"text":     true,
	"button":   true,
	"input":    true,
	"image":    true,
	"link":     true,
	"toggle":   true,
	"select":   true,
	"checkbox": true,
	"slider":   true,
	"video":    true,
	"divider":  true,
	"spacer":   true,
	"badge":    true,
	"avatar":   true,
	"progress": true,
}

// HTTP_METHODS classifies endpoint verbs into their own token type so the
// api/endpoint grammar can dispatch on them directly.
var HTTP_METHODS = map[string]bool{
	"GET":    true,
	"POST":   true,
	"PUT":    true,
	"DELETE": true,
	"PATCH":  true,
}

// Keywords returns the reserved words sorted, for the suggestion engine and
// LSP completion.
func Keywords() []string {
	words := make([]string, 0, len(KEYWORDS))
	for w := range KEYWORDS {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

func classifyWord(word string) TokenType {
	if HTTP_METHODS[word] {
		return HTTP_METHOD
	}
	if KEYWORDS[word] {
		return KEYWORD
	}
	return IDENTIFIER
}
