package parser

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/lexer"
)

// parseStmtBlock parses a ':'-opened indented statement list.
func (p *Parser) parseStmtBlock(context string) []ast.Stmt {
	p.beginBlock(context)
	var stmts []ast.Stmt
	for !p.blockDone(context) {
		stmts = append(stmts, p.parseStmt())
	}
	return stmts
}

func (p *Parser) parseStmt() ast.Stmt {
	tok := p.peek()
	if tok.Type == lexer.KEYWORD {
		switch tok.Value {
		case "let":
			return p.parseLetStmt()
		case "return":
			return p.parseReturnStmt()
		case "if":
			return p.parseIf(false)
		case "for":
			return p.parseFor(false)
		}
	}
	expr := p.parseExpr()
	p.expectNewline("statement")
	return &ast.ExprStmt{
		Pos:    expr.NodePos(),
		EndPos: expr.NodeEndPos(),
		Expr:   expr,
	}
}

// let Name [: Type] = expr
func (p *Parser) parseLetStmt() *ast.LetStmt {
	kw := p.advance()
	name := p.expectIdent("expected a name after 'let'")
	stmt := &ast.LetStmt{Pos: p.makePos(kw), EndPos: name.EndPos, Name: name}
	if p.matchPunct(":") {
		stmt.Type = p.parseTypeRef()
		stmt.EndPos = stmt.Type.EndPos
	}
	if !p.matchOp("=") {
		p.fail(diag.ErrUnexpectedToken, p.peek(),
			"let '%s' needs an '=' and an initial value", name.Value)
	}
	stmt.Value = p.parseExpr()
	stmt.EndPos = stmt.Value.NodeEndPos()
	p.expectNewline("let statement")
	return stmt
}

// return [expr]
func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	kw := p.advance()
	stmt := &ast.ReturnStmt{Pos: p.makePos(kw), EndPos: p.makeEndPos(kw)}
	if !p.check(lexer.NEWLINE) && !p.check(lexer.EOF) {
		stmt.Value = p.parseExpr()
		stmt.EndPos = stmt.Value.NodeEndPos()
	}
	p.expectNewline("return statement")
	return stmt
}
