// Package parser turns Lumen source text into the syntax tree. It is a
// fail-fast recursive-descent parser: the first unrecoverable violation
// aborts the parse with a single positioned error.
package parser

import (
	"fmt"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/lexer"
	"lumen/internal/suggest"
)

// ParseError is the single error a failed parse reports.
type ParseError struct {
	Code     string
	Message  string
	Position ast.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

type Parser struct {
	filename string
	tokens   []lexer.Token
	current  int
}

// Parse tokenizes and parses source, returning the ordered top-level
// declarations. Lexical and syntax failures both surface as *ParseError.
func Parse(source string) ([]ast.Node, error) {
	return ParseSource("", source)
}

func ParseSource(filename, source string) (nodes []ast.Node, err error) {
	tokens, lexErr := lexer.Tokenize(source)
	if lexErr != nil {
		le := lexErr.(*lexer.LexError)
		return nil, &ParseError{
			Code:    diag.ErrUnterminatedString,
			Message: le.Message,
			Position: ast.Position{
				Filename: filename,
				Line:     le.Position.Line,
				Column:   le.Position.Column,
			},
		}
	}

	p := NewParser(filename, tokens)
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*ParseError)
			if !ok {
				panic(r)
			}
			nodes = nil
			err = pe
		}
	}()

	for !p.isAtEnd() {
		p.skipBlank()
		if p.isAtEnd() {
			break
		}
		nodes = append(nodes, p.parseTopLevel())
	}
	return nodes, nil
}

// NewParser wraps a token stream. Comment tokens are filtered out up front;
// they already did their job keeping the lexer's indent tracking honest.
func NewParser(filename string, tokens []lexer.Token) *Parser {
	filtered := make([]lexer.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type != lexer.COMMENT {
			filtered = append(filtered, tok)
		}
	}
	return &Parser{filename: filename, tokens: filtered}
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) peekNext() lexer.Token {
	if p.current+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+1]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) check(tt lexer.TokenType) bool {
	return p.peek().Type == tt
}

func (p *Parser) checkPunct(value string) bool {
	tok := p.peek()
	return tok.Type == lexer.PUNCTUATION && tok.Value == value
}

func (p *Parser) checkOp(value string) bool {
	tok := p.peek()
	return tok.Type == lexer.OPERATOR && tok.Value == value
}

func (p *Parser) checkKeyword(word string) bool {
	tok := p.peek()
	return tok.Type == lexer.KEYWORD && tok.Value == word
}

func (p *Parser) match(tt lexer.TokenType) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) matchPunct(value string) bool {
	if p.checkPunct(value) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) matchOp(value string) bool {
	if p.checkOp(value) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) matchKeyword(word string) bool {
	if p.checkKeyword(word) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(tt lexer.TokenType, message string) lexer.Token {
	if p.check(tt) {
		return p.advance()
	}
	p.fail(diag.ErrUnexpectedToken, p.peek(), "%s, got %s", message, describeToken(p.peek()))
	return lexer.Token{}
}

func (p *Parser) expectPunct(value, message string) lexer.Token {
	if p.checkPunct(value) {
		return p.advance()
	}
	p.fail(diag.ErrUnexpectedToken, p.peek(), "%s, got %s", message, describeToken(p.peek()))
	return lexer.Token{}
}

func (p *Parser) expectKeyword(word, message string) lexer.Token {
	if p.checkKeyword(word) {
		return p.advance()
	}
	p.fail(diag.ErrUnexpectedToken, p.peek(), "%s, got %s", message, describeToken(p.peek()))
	return lexer.Token{}
}

func (p *Parser) expectIdent(message string) ast.Ident {
	tok := p.expect(lexer.IDENTIFIER, message)
	return p.makeIdent(tok)
}

// expectNewline ends a single-line construct.
func (p *Parser) expectNewline(context string) {
	if p.check(lexer.NEWLINE) || p.check(lexer.EOF) {
		if p.check(lexer.NEWLINE) {
			p.advance()
		}
		return
	}
	p.fail(diag.ErrUnexpectedToken, p.peek(), "unexpected %s after %s", describeToken(p.peek()), context)
}

// skipBlank consumes the NEWLINE runs blank and comment-only lines leave
// behind.
func (p *Parser) skipBlank() {
	for p.check(lexer.NEWLINE) {
		p.advance()
	}
}

// beginBlock consumes the ": NEWLINE INDENT" sequence that opens every
// indented body.
func (p *Parser) beginBlock(context string) {
	p.expectPunct(":", fmt.Sprintf("expected ':' to open %s", context))
	p.expectNewline(context)
	p.skipBlank()
	if p.check(lexer.EOF) {
		p.fail(diag.ErrUnterminatedBlock, p.peek(), "unexpected end of file: %s has no body", context)
	}
	if !p.match(lexer.INDENT) {
		p.fail(diag.ErrBadIndentation, p.peek(), "expected indented block for %s", context)
	}
}

// blockDone reports whether the current indented block has closed, failing
// on EOF inside an open block.
func (p *Parser) blockDone(context string) bool {
	p.skipBlank()
	if p.match(lexer.DEDENT) {
		return true
	}
	if p.check(lexer.EOF) {
		p.fail(diag.ErrUnterminatedBlock, p.peek(), "unexpected end of file inside %s", context)
	}
	return false
}

func (p *Parser) fail(code string, tok lexer.Token, format string, args ...any) {
	panic(&ParseError{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Position: p.makePos(tok),
	})
}

// failUnknownKeyword rejects a word in keyword-dispatch position, routing it
// through the suggestion engine first.
func (p *Parser) failUnknownKeyword(tok lexer.Token, context string, candidates []string) {
	msg := fmt.Sprintf("unknown keyword '%s' %s", tok.Value, context)
	if s := suggest.For(tok.Value, candidates); s != "" {
		msg += ". " + s
	}
	panic(&ParseError{
		Code:     diag.ErrUnknownKeyword,
		Message:  msg,
		Position: p.makePos(tok),
	})
}

func (p *Parser) makePos(tok lexer.Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

// makeEndPos approximates the position one past the token, accounting for
// quotes and sigils the lexer strips from Value.
func (p *Parser) makeEndPos(tok lexer.Token) ast.Position {
	extra := 0
	switch tok.Type {
	case lexer.STRING:
		extra = 2
	case lexer.AT_KEYWORD, lexer.STYLE_CLASS:
		extra = 1
	}
	return ast.Position{
		Filename: p.filename,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + len([]rune(tok.Value)) + extra,
	}
}

func (p *Parser) makeIdent(tok lexer.Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Value,
	}
}

func describeToken(tok lexer.Token) string {
	switch tok.Type {
	case lexer.NEWLINE:
		return "end of line"
	case lexer.INDENT:
		return "indent"
	case lexer.DEDENT:
		return "dedent"
	case lexer.EOF:
		return "end of file"
	case lexer.ERROR:
		return fmt.Sprintf("unexpected character %q", tok.Value)
	}
	return fmt.Sprintf("'%s'", tok.Value)
}
