package lexer

// TokenType is the closed set of token kinds the Lumen lexer can emit.
type TokenType int

const (
	// Special tokens
	ERROR TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	NUMBER
	STRING
	COLOR

	// Classified words
	KEYWORD
	HTTP_METHOD
	AT_KEYWORD
	STYLE_CLASS

	// Operators and punctuation
	OPERATOR
	PUNCTUATION

	// Structure
	COMMENT
	NEWLINE
	INDENT
	DEDENT
)

var tokenTypeNames = [...]string{
	ERROR:       "ERROR",
	EOF:         "EOF",
	IDENTIFIER:  "IDENTIFIER",
	NUMBER:      "NUMBER",
	STRING:      "STRING",
	COLOR:       "COLOR",
	KEYWORD:     "KEYWORD",
	HTTP_METHOD: "HTTP_METHOD",
	AT_KEYWORD:  "AT_KEYWORD",
	STYLE_CLASS: "STYLE_CLASS",
	OPERATOR:    "OPERATOR",
	PUNCTUATION: "PUNCTUATION",
	COMMENT:     "COMMENT",
	NEWLINE:     "NEWLINE",
	INDENT:      "INDENT",
	DEDENT:      "DEDENT",
}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Position is a 1-based line/column location in the source text.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
}

// Token is a single lexical unit. Value holds the lexeme with sigils
// stripped: string tokens carry their unescaped contents, at-keywords drop
// the '@', style classes drop the leading '.'.
type Token struct {
	Type     TokenType
	Value    string
	Position Position
}

// LexError is the single fatal lexer condition (unterminated string).
// Stray bytes are emitted as ERROR tokens instead and left for the parser.
type LexError struct {
	Message  string
	Position Position
}

func (e *LexError) Error() string {
	return e.Message
}
