package parser

import (
	"strings"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/lexer"
)

var binaryPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3,
	"<": 4, "<=": 4, ">": 4, ">=": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6, "%": 6,
}

var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true,
}

func (p *Parser) parseExpr() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment handles =, +=, -=, *=, /= as right-associative expressions
// over an assignable target.
func (p *Parser) parseAssignment() ast.Expr {
	left := p.parseTernary()
	tok := p.peek()
	if tok.Type != lexer.OPERATOR || !assignOps[tok.Value] {
		return left
	}
	switch left.(type) {
	case *ast.IdentExpr, *ast.MemberExpr, *ast.IndexExpr:
	default:
		p.fail(diag.ErrUnexpectedToken, tok, "invalid assignment target")
	}
	p.advance()
	value := p.parseAssignment()
	return &ast.AssignExpr{
		Pos:    left.NodePos(),
		EndPos: value.NodeEndPos(),
		Target: left,
		Op:     tok.Value,
		Value:  value,
	}
}

func (p *Parser) parseTernary() ast.Expr {
	cond := p.parseBinary(1)
	if !p.matchOp("?") {
		return cond
	}
	then := p.parseExpr()
	p.expectPunct(":", "expected ':' in conditional expression")
	alt := p.parseTernary()
	return &ast.TernaryExpr{
		Pos:    cond.NodePos(),
		EndPos: alt.NodeEndPos(),
		Cond:   cond,
		Then:   then,
		Else:   alt,
	}
}

// parseBinary is the precedence-climbing core shared by every binary level.
func (p *Parser) parseBinary(minPrec int) ast.Expr {
	left := p.parseUnary()
	for {
		tok := p.peek()
		if tok.Type != lexer.OPERATOR {
			return left
		}
		prec, ok := binaryPrecedence[tok.Value]
		if !ok || prec < minPrec {
			return left
		}
		p.advance()
		right := p.parseBinary(prec + 1)
		left = &ast.BinaryExpr{
			Pos:    left.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     tok.Value,
			Left:   left,
			Right:  right,
		}
	}
}

func (p *Parser) parseUnary() ast.Expr {
	tok := p.peek()
	if tok.Type == lexer.OPERATOR && (tok.Value == "-" || tok.Value == "!") {
		p.advance()
		value := p.parseUnary()
		return &ast.UnaryExpr{
			Pos:    p.makePos(tok),
			EndPos: value.NodeEndPos(),
			Op:     tok.Value,
			Value:  value,
		}
	}
	if tok.Type == lexer.KEYWORD && tok.Value == "await" {
		p.advance()
		value := p.parseUnary()
		return &ast.AwaitExpr{
			Pos:    p.makePos(tok),
			EndPos: value.NodeEndPos(),
			Value:  value,
		}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	for {
		switch {
		case p.checkPunct("."):
			p.advance()
			field := p.advance()
			if field.Type != lexer.IDENTIFIER && field.Type != lexer.KEYWORD {
				p.fail(diag.ErrUnexpectedToken, field,
					"expected a member name after '.', got %s", describeToken(field))
			}
			expr = &ast.MemberExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(field),
				Target: expr,
				Field:  p.makeIdent(field),
			}
		case p.checkPunct("("):
			p.advance()
			var args []ast.Expr
			for !p.checkPunct(")") {
				if len(args) > 0 {
					p.expectPunct(",", "expected ',' between arguments")
				}
				args = append(args, p.parseExpr())
			}
			closing := p.expectPunct(")", "expected ')' after arguments")
			expr = &ast.CallExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(closing),
				Callee: expr,
				Args:   args,
			}
		case p.checkPunct("["):
			p.advance()
			index := p.parseExpr()
			closing := p.expectPunct("]", "expected ']' after index")
			expr = &ast.IndexExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(closing),
				Target: expr,
				Index:  index,
			}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.peek()
	switch tok.Type {
	case lexer.NUMBER:
		p.advance()
		return p.makeLiteral(tok, ast.NumberLit)
	case lexer.COLOR:
		p.advance()
		return p.makeLiteral(tok, ast.ColorLit)
	case lexer.STRING:
		p.advance()
		if strings.ContainsRune(tok.Value, '{') {
			return p.parseTemplate(tok)
		}
		return p.makeLiteral(tok, ast.StringLit)
	case lexer.KEYWORD:
		switch tok.Value {
		case "true", "false":
			p.advance()
			return p.makeLiteral(tok, ast.BoolLit)
		case "null":
			p.advance()
			return p.makeLiteral(tok, ast.NullLit)
		case "prev":
			p.advance()
			return &ast.PrevExpr{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok)}
		}
	case lexer.IDENTIFIER:
		p.advance()
		if p.checkOp("=>") {
			return p.parseArrowBody([]ast.Ident{p.makeIdent(tok)}, p.makePos(tok))
		}
		return &ast.IdentExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   tok.Value,
		}
	case lexer.PUNCTUATION:
		switch tok.Value {
		case "(":
			if p.isArrowAhead() {
				return p.parseParenArrow()
			}
			p.advance()
			value := p.parseExpr()
			closing := p.expectPunct(")", "expected ')' after expression")
			return &ast.ParenExpr{
				Pos:    p.makePos(tok),
				EndPos: p.makeEndPos(closing),
				Value:  value,
			}
		case "[":
			return p.parseArray()
		case "{":
			return p.parseObject()
		}
	}
	p.fail(diag.ErrUnexpectedToken, tok, "expected an expression, got %s", describeToken(tok))
	return nil
}

func (p *Parser) makeLiteral(tok lexer.Token, kind ast.LiteralKind) *ast.Literal {
	return &ast.Literal{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Kind:   kind,
		Value:  tok.Value,
	}
}

// isArrowAhead reports whether the '(' at the cursor opens an arrow-function
// parameter list, by scanning to the matching ')' and peeking for '=>'.
func (p *Parser) isArrowAhead() bool {
	depth := 0
	for i := p.current; i < len(p.tokens); i++ {
		tok := p.tokens[i]
		if tok.Type == lexer.NEWLINE || tok.Type == lexer.EOF {
			return false
		}
		if tok.Type != lexer.PUNCTUATION {
			continue
		}
		switch tok.Value {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				next := p.tokens[i+1]
				return next.Type == lexer.OPERATOR && next.Value == "=>"
			}
		}
	}
	return false
}

func (p *Parser) parseParenArrow() ast.Expr {
	open := p.expectPunct("(", "expected '('")
	var params []ast.Ident
	for !p.checkPunct(")") {
		if len(params) > 0 {
			p.expectPunct(",", "expected ',' between parameters")
		}
		params = append(params, p.expectIdent("expected a parameter name"))
	}
	p.expectPunct(")", "expected ')' after parameters")
	return p.parseArrowBody(params, p.makePos(open))
}

func (p *Parser) parseArrowBody(params []ast.Ident, pos ast.Position) ast.Expr {
	if !p.matchOp("=>") {
		p.fail(diag.ErrUnexpectedToken, p.peek(), "expected '=>'")
	}
	body := p.parseExpr()
	return &ast.ArrowExpr{
		Pos:    pos,
		EndPos: body.NodeEndPos(),
		Params: params,
		Expr:   body,
	}
}

func (p *Parser) parseArray() ast.Expr {
	open := p.expectPunct("[", "expected '['")
	arr := &ast.ArrayExpr{Pos: p.makePos(open)}
	for !p.checkPunct("]") {
		if len(arr.Elements) > 0 {
			p.expectPunct(",", "expected ',' between array elements")
		}
		arr.Elements = append(arr.Elements, p.parseExpr())
	}
	closing := p.expectPunct("]", "expected ']' to close array")
	arr.EndPos = p.makeEndPos(closing)
	return arr
}

func (p *Parser) parseObject() ast.Expr {
	open := p.expectPunct("{", "expected '{'")
	obj := &ast.ObjectExpr{Pos: p.makePos(open)}
	for !p.checkPunct("}") {
		if len(obj.Entries) > 0 {
			p.expectPunct(",", "expected ',' between object entries")
		}
		keyTok := p.advance()
		if keyTok.Type != lexer.IDENTIFIER && keyTok.Type != lexer.STRING && keyTok.Type != lexer.KEYWORD {
			p.fail(diag.ErrUnexpectedToken, keyTok,
				"expected an object key, got %s", describeToken(keyTok))
		}
		p.expectPunct(":", "expected ':' after object key '"+keyTok.Value+"'")
		value := p.parseExpr()
		obj.Entries = append(obj.Entries, &ast.ObjectEntry{
			Pos:    p.makePos(keyTok),
			EndPos: value.NodeEndPos(),
			Key:    p.makeIdent(keyTok),
			Value:  value,
		})
	}
	closing := p.expectPunct("}", "expected '}' to close object")
	obj.EndPos = p.makeEndPos(closing)
	return obj
}

// parseTemplate splits an interpolated string into literal text parts and
// {expr} parts, sub-parsing each expression fragment with its positions
// shifted back onto the original string token.
func (p *Parser) parseTemplate(tok lexer.Token) ast.Expr {
	tmpl := &ast.TemplateExpr{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok)}
	runes := []rune(tok.Value)
	text := strings.Builder{}

	for i := 0; i < len(runes); i++ {
		if runes[i] != '{' {
			text.WriteRune(runes[i])
			continue
		}
		if text.Len() > 0 {
			tmpl.Parts = append(tmpl.Parts, ast.TemplatePart{Text: text.String()})
			text.Reset()
		}
		depth := 1
		start := i + 1
		j := start
		for ; j < len(runes); j++ {
			if runes[j] == '{' {
				depth++
			} else if runes[j] == '}' {
				depth--
				if depth == 0 {
					break
				}
			}
		}
		if depth != 0 {
			p.fail(diag.ErrUnexpectedToken, tok,
				"unterminated '{' interpolation in string")
		}
		fragment := string(runes[start:j])
		expr := p.parseFragment(fragment, tok, start)
		tmpl.Parts = append(tmpl.Parts, ast.TemplatePart{Expr: expr})
		i = j
	}
	if text.Len() > 0 {
		tmpl.Parts = append(tmpl.Parts, ast.TemplatePart{Text: text.String()})
	}
	return tmpl
}

// parseFragment parses one interpolation fragment in isolation. offset is the
// fragment's rune offset within the string's unescaped contents; positions
// are approximate when the string contains escape sequences.
func (p *Parser) parseFragment(fragment string, strTok lexer.Token, offset int) ast.Expr {
	// Leading whitespace would be measured as indentation by the standalone
	// tokenizer, so strip it here and keep the columns exact.
	trimmed := strings.TrimLeft(fragment, " \t")
	offset += len([]rune(fragment)) - len([]rune(trimmed))
	fragment = trimmed

	tokens, err := lexer.Tokenize(fragment)
	if err != nil {
		p.fail(diag.ErrUnexpectedToken, strTok, "invalid interpolation '{%s}'", fragment)
	}
	shift := strTok.Position.Column + offset
	for i := range tokens {
		tokens[i].Position.Line = strTok.Position.Line
		tokens[i].Position.Column += shift
	}

	sub := NewParser(p.filename, tokens)
	if sub.check(lexer.NEWLINE) || sub.check(lexer.EOF) {
		p.fail(diag.ErrUnexpectedToken, strTok, "empty interpolation in string")
	}
	expr := sub.parseExpr()
	if !sub.check(lexer.NEWLINE) && !sub.check(lexer.EOF) {
		p.fail(diag.ErrUnexpectedToken, strTok,
			"unexpected %s in interpolation '{%s}'", describeToken(sub.peek()), fragment)
	}
	return expr
}
