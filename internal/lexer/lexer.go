package lexer

import (
	"fmt"
	"strings"
)

// Lexer converts Lumen source text into a flat token stream. Blocks are
// delimited by INDENT/DEDENT tokens synthesized from an indent stack, the
// way the language's significant whitespace demands.
type Lexer struct {
	lines   []string
	tokens  []Token
	indents []int

	line int    // 1-based line currently being scanned
	col  int    // 1-based column of the next rune
	pos  int    // index into the current line's runes
	cur  []rune // runes of the current line
}

func NewLexer(source string) *Lexer {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	lines := strings.Split(source, "\n")
	// A terminating newline ends the last line; it is not a blank line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return &Lexer{
		lines:   lines,
		indents: []int{0},
	}
}

// Tokenize scans the whole source. The only fatal condition is an
// unterminated string literal; unknown bytes become ERROR tokens.
func Tokenize(source string) ([]Token, error) {
	return NewLexer(source).Tokenize()
}

func (l *Lexer) Tokenize() ([]Token, error) {
	for i, raw := range l.lines {
		l.line = i + 1
		if err := l.scanLine(raw); err != nil {
			return nil, err
		}
	}

	endLine := len(l.lines) + 1
	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		l.emit(DEDENT, "", Position{Line: endLine, Column: 1})
	}
	l.emit(EOF, "", Position{Line: endLine, Column: 1})
	return l.tokens, nil
}

func (l *Lexer) scanLine(raw string) error {
	l.cur = []rune(raw)
	l.pos = 0
	l.col = 1

	// Leading whitespace: a space is one column, a tab two.
	for l.pos < len(l.cur) && (l.cur[l.pos] == ' ' || l.cur[l.pos] == '\t') {
		if l.cur[l.pos] == '\t' {
			l.col += 2
		} else {
			l.col++
		}
		l.pos++
	}
	indent := l.col - 1

	// Blank lines carry no tokens and leave the indent stack alone.
	if l.pos >= len(l.cur) {
		l.emit(NEWLINE, "", Position{Line: l.line, Column: 1})
		return nil
	}

	// Comment-only lines still participate in indentation so a comment
	// between statements cannot break the enclosing block.
	l.adjustIndent(indent)

	if l.pos+1 < len(l.cur) && l.cur[l.pos] == '/' && l.cur[l.pos+1] == '/' {
		l.emit(COMMENT, string(l.cur[l.pos:]), Position{Line: l.line, Column: l.col})
		l.emit(NEWLINE, "", Position{Line: l.line, Column: l.col + len(l.cur) - l.pos})
		return nil
	}

	for l.pos < len(l.cur) {
		if err := l.scanToken(); err != nil {
			return err
		}
	}
	l.emit(NEWLINE, "", Position{Line: l.line, Column: l.col})
	return nil
}

// adjustIndent compares the measured indent against the stack top. Dedenting
// to a width that was never pushed lands at the nearest enclosing level
// rather than erroring.
func (l *Lexer) adjustIndent(indent int) {
	top := l.indents[len(l.indents)-1]
	if indent > top {
		l.indents = append(l.indents, indent)
		l.emit(INDENT, "", Position{Line: l.line, Column: 1})
		return
	}
	for l.indents[len(l.indents)-1] > indent {
		l.indents = l.indents[:len(l.indents)-1]
		l.emit(DEDENT, "", Position{Line: l.line, Column: 1})
	}
}

func (l *Lexer) scanToken() error {
	c := l.cur[l.pos]
	start := Position{Line: l.line, Column: l.col}

	switch {
	case c == ' ' || c == '\t':
		l.advance()
		return nil

	case c == '/' && l.peekAt(1) == '/':
		l.emit(COMMENT, string(l.cur[l.pos:]), start)
		l.col += len(l.cur) - l.pos
		l.pos = len(l.cur)
		return nil

	case c == '#':
		return l.scanColor(start)

	case c == '.':
		return l.scanDot(start)

	case c == '@':
		return l.scanAtKeyword(start)

	case c == '"' || c == '\'':
		return l.scanString(c, start)

	case isDigit(c):
		l.scanNumber(start)
		return nil

	case isWordStart(c):
		word := l.scanWord()
		l.emit(classifyWord(word), word, start)
		return nil
	}

	if op, ok := l.matchOperator(); ok {
		l.emit(OPERATOR, op, start)
		return nil
	}
	if isPunctuation(c) {
		l.advance()
		l.emit(PUNCTUATION, string(c), start)
		return nil
	}

	l.advance()
	l.emit(ERROR, string(c), start)
	return nil
}

func (l *Lexer) scanColor(start Position) error {
	if !isHexDigit(l.peekAt(1)) {
		l.advance()
		l.emit(ERROR, "#", start)
		return nil
	}
	l.advance() // '#'
	var sb strings.Builder
	sb.WriteByte('#')
	for l.pos < len(l.cur) && isHexDigit(l.cur[l.pos]) {
		sb.WriteRune(l.cur[l.pos])
		l.advance()
	}
	l.emit(COLOR, sb.String(), start)
	return nil
}

// scanDot disambiguates member access, float literals, and style classes.
// A dot glued to the preceding value (`user.name`, `items[0].id`) is field
// access; a free-standing `.foo` is a style class selector.
func (l *Lexer) scanDot(start Position) error {
	next := l.peekAt(1)
	if l.memberContext() {
		l.advance()
		l.emit(PUNCTUATION, ".", start)
		return nil
	}
	if isDigit(next) {
		var sb strings.Builder
		sb.WriteByte('.')
		l.advance()
		for l.pos < len(l.cur) && isDigit(l.cur[l.pos]) {
			sb.WriteRune(l.cur[l.pos])
			l.advance()
		}
		l.emit(NUMBER, sb.String(), start)
		return nil
	}
	if isWordStart(next) {
		l.advance()
		l.emit(STYLE_CLASS, l.scanWord(), start)
		return nil
	}
	l.advance()
	l.emit(PUNCTUATION, ".", start)
	return nil
}

func (l *Lexer) scanAtKeyword(start Position) error {
	if !isWordStart(l.peekAt(1)) {
		l.advance()
		l.emit(ERROR, "@", start)
		return nil
	}
	l.advance()
	l.emit(AT_KEYWORD, l.scanWord(), start)
	return nil
}

func (l *Lexer) scanString(quote rune, start Position) error {
	l.advance()
	var sb strings.Builder
	for l.pos < len(l.cur) {
		c := l.cur[l.pos]
		if c == quote {
			l.advance()
			l.emit(STRING, sb.String(), start)
			return nil
		}
		if c == '\\' && l.pos+1 < len(l.cur) {
			l.advance()
			esc := l.cur[l.pos]
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '\\':
				sb.WriteByte('\\')
			default:
				// Unknown escapes pass through, including the quote chars.
				sb.WriteRune(esc)
			}
			l.advance()
			continue
		}
		sb.WriteRune(c)
		l.advance()
	}
	return &LexError{
		Message:  fmt.Sprintf("unterminated string literal starting at line %d", start.Line),
		Position: start,
	}
}

// scanNumber handles integers, floats, and the size-token quirk: digits
// immediately followed by a letter rescan as a single identifier (2xl, 3fr).
func (l *Lexer) scanNumber(start Position) {
	var sb strings.Builder
	for l.pos < len(l.cur) && isDigit(l.cur[l.pos]) {
		sb.WriteRune(l.cur[l.pos])
		l.advance()
	}
	if l.pos < len(l.cur) && isWordStart(l.cur[l.pos]) {
		sb.WriteString(l.scanWord())
		l.emit(IDENTIFIER, sb.String(), start)
		return
	}
	if l.pos+1 < len(l.cur) && l.cur[l.pos] == '.' && isDigit(l.cur[l.pos+1]) {
		sb.WriteByte('.')
		l.advance()
		for l.pos < len(l.cur) && isDigit(l.cur[l.pos]) {
			sb.WriteRune(l.cur[l.pos])
			l.advance()
		}
	}
	l.emit(NUMBER, sb.String(), start)
}

func (l *Lexer) scanWord() string {
	var sb strings.Builder
	for l.pos < len(l.cur) && isWordPart(l.cur[l.pos]) {
		sb.WriteRune(l.cur[l.pos])
		l.advance()
	}
	return sb.String()
}

var twoCharOperators = []string{
	"==", "!=", "<=", ">=", "&&", "||", "+=", "-=", "*=", "/=", "=>", "->",
}

// matchOperator matches two-character operators greedily before falling back
// to single characters.
func (l *Lexer) matchOperator() (string, bool) {
	if l.pos+1 < len(l.cur) {
		pair := string(l.cur[l.pos : l.pos+2])
		for _, op := range twoCharOperators {
			if pair == op {
				l.advance()
				l.advance()
				return op, true
			}
		}
	}
	switch l.cur[l.pos] {
	case '+', '-', '*', '/', '%', '=', '<', '>', '!', '?', '&', '|':
		op := string(l.cur[l.pos])
		l.advance()
		return op, true
	}
	return "", false
}

func (l *Lexer) advance() {
	l.pos++
	l.col++
}

func (l *Lexer) peekAt(offset int) rune {
	if l.pos+offset >= len(l.cur) {
		return 0
	}
	return l.cur[l.pos+offset]
}

func (l *Lexer) emit(tt TokenType, value string, pos Position) {
	l.tokens = append(l.tokens, Token{Type: tt, Value: value, Position: pos})
}

// memberContext reports whether a '.' continues the preceding value, so that
// `user.name` is member access while a free-standing `.title` is a class.
// Adjacency decides: any whitespace before the dot breaks the member chain.
func (l *Lexer) memberContext() bool {
	if l.pos == 0 {
		return false
	}
	prev := l.cur[l.pos-1]
	return isWordPart(prev) || prev == ')' || prev == ']' || prev == '"' || prev == '\''
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c rune) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isPunctuation(c rune) bool {
	switch c {
	case '(', ')', '[', ']', '{', '}', ',', ':', ';':
		return true
	}
	return false
}

// identRanges are the non-ASCII scripts permitted in identifiers. The test
// corpus leans on Korean names, so Hangul must round-trip as single tokens.
var identRanges = [...]struct{ lo, hi rune }{
	{0x00C0, 0x024F}, // Latin extended
	{0x0370, 0x03FF}, // Greek
	{0x0400, 0x04FF}, // Cyrillic
	{0x0590, 0x05FF}, // Hebrew
	{0x0600, 0x06FF}, // Arabic
	{0x1100, 0x11FF}, // Hangul jamo
	{0x3040, 0x309F}, // Hiragana
	{0x30A0, 0x30FF}, // Katakana
	{0x3130, 0x318F}, // Hangul compatibility jamo
	{0x4E00, 0x9FFF}, // CJK unified ideographs
	{0xAC00, 0xD7AF}, // Hangul syllables
}

func isWordStart(c rune) bool {
	if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_' {
		return true
	}
	for _, r := range identRanges {
		if c >= r.lo && c <= r.hi {
			return true
		}
	}
	return false
}

func isWordPart(c rune) bool {
	return isWordStart(c) || isDigit(c)
}
