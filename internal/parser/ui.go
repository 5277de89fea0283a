package parser

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/lexer"
)

func (p *Parser) parseUINode() ast.UINode {
	tok := p.peek()
	if tok.Type != lexer.KEYWORD {
		if tok.Type == lexer.IDENTIFIER {
			p.failUnknownKeyword(tok, "in UI block", bodyKeywords)
		}
		p.fail(diag.ErrUnexpectedToken, tok, "expected a UI element, got %s", describeToken(tok))
	}
	if _, ok := ast.ElementKinds[tok.Value]; ok {
		return p.parseElement()
	}
	switch tok.Value {
	case "if":
		return p.parseIf(true)
	case "for":
		return p.parseFor(true)
	case "show":
		return p.parseShow()
	case "hide":
		return p.parseHide()
	}
	p.failUnknownKeyword(tok, "in UI block", bodyKeywords)
	return nil
}

// parseElement parses one element line: the kind keyword, then any mix of
// content expression, .class shorthands, name: value props and @event
// handlers, then either end of line or a ':' opening a children block.
func (p *Parser) parseElement() *ast.Element {
	kw := p.advance()
	spec := ast.ElementKinds[kw.Value]
	el := &ast.Element{Pos: p.makePos(kw), EndPos: p.makeEndPos(kw), Kind: kw.Value}

	for {
		switch {
		case p.check(lexer.NEWLINE) || p.check(lexer.EOF):
			p.expectNewline("element")
			return el

		case p.checkPunct(":"):
			if !spec.Container {
				p.fail(diag.ErrUnexpectedToken, p.peek(),
					"'%s' cannot have children", el.Kind)
			}
			el.Children = p.parseChildren("'" + el.Kind + "' block")
			if len(el.Children) > 0 {
				el.EndPos = el.Children[len(el.Children)-1].NodeEndPos()
			}
			return el

		case p.check(lexer.STYLE_CLASS):
			tok := p.advance()
			el.Classes = append(el.Classes, tok.Value)
			el.EndPos = p.makeEndPos(tok)

		case p.check(lexer.AT_KEYWORD):
			tok := p.advance()
			p.expectPunct(":", "expected ':' after '@"+tok.Value+"'")
			action := p.parseExpr()
			el.Events = append(el.Events, &ast.EventHandler{
				Pos:    p.makePos(tok),
				EndPos: action.NodeEndPos(),
				Name:   p.makeIdent(tok),
				Action: action,
			})
			el.EndPos = action.NodeEndPos()

		case p.check(lexer.IDENTIFIER) && p.peekNext().Type == lexer.PUNCTUATION && p.peekNext().Value == ":":
			prop := p.parseInlineProp()
			el.Props = append(el.Props, prop)
			el.EndPos = prop.EndPos

		case el.Content == nil && spec.HasContent:
			el.Content = p.parseExpr()
			el.EndPos = el.Content.NodeEndPos()

		default:
			p.fail(diag.ErrUnexpectedToken, p.peek(),
				"unexpected %s in '%s' element", describeToken(p.peek()), el.Kind)
		}
	}
}

// parseChildren parses the ':'-opened indented list of child UI nodes.
func (p *Parser) parseChildren(context string) []ast.UINode {
	p.beginBlock(context)
	var children []ast.UINode
	for !p.blockDone(context) {
		children = append(children, p.parseUINode())
	}
	return children
}

// parseIf handles if/elif/else chains for both grammars: ui selects between
// UI-node and statement bodies.
func (p *Parser) parseIf(ui bool) *ast.If {
	kw := p.advance()
	cond := p.parseExpr()
	node := &ast.If{Pos: p.makePos(kw), EndPos: cond.NodeEndPos(), Cond: cond}
	node.Then = p.parseControlBlock(ui, "'if' block")
	if len(node.Then) > 0 {
		node.EndPos = node.Then[len(node.Then)-1].NodeEndPos()
	}

	for {
		p.skipBlank()
		if p.checkKeyword("elif") {
			elifKw := p.advance()
			elifCond := p.parseExpr()
			branch := &ast.ElifBranch{
				Pos:    p.makePos(elifKw),
				EndPos: elifCond.NodeEndPos(),
				Cond:   elifCond,
			}
			branch.Body = p.parseControlBlock(ui, "'elif' block")
			if len(branch.Body) > 0 {
				branch.EndPos = branch.Body[len(branch.Body)-1].NodeEndPos()
			}
			node.Elifs = append(node.Elifs, branch)
			node.EndPos = branch.EndPos
			continue
		}
		if p.checkKeyword("else") {
			p.advance()
			node.Else = p.parseControlBlock(ui, "'else' block")
			if len(node.Else) > 0 {
				node.EndPos = node.Else[len(node.Else)-1].NodeEndPos()
			}
		}
		return node
	}
}

// parseFor handles "for item[, index] in iterable:" for both grammars.
func (p *Parser) parseFor(ui bool) *ast.For {
	kw := p.advance()
	item := p.expectIdent("expected a loop variable after 'for'")
	node := &ast.For{Pos: p.makePos(kw), EndPos: item.EndPos, Item: item}
	if p.matchPunct(",") {
		index := p.expectIdent("expected an index variable after ','")
		node.Index = &index
	}
	p.expectKeyword("in", "expected 'in' after loop variable")
	node.Iterable = p.parseExpr()
	node.Body = p.parseControlBlock(ui, "'for' block")
	node.EndPos = node.Iterable.NodeEndPos()
	if len(node.Body) > 0 {
		node.EndPos = node.Body[len(node.Body)-1].NodeEndPos()
	}
	return node
}

// parseShow and parseHide handle the "show <cond>:" / "hide <cond>:"
// visibility wrappers around a block of child UI nodes.
func (p *Parser) parseShow() *ast.Show {
	pos, end, cond, body := p.parseVisibility()
	return &ast.Show{Pos: pos, EndPos: end, Cond: cond, Body: body}
}

func (p *Parser) parseHide() *ast.Hide {
	pos, end, cond, body := p.parseVisibility()
	return &ast.Hide{Pos: pos, EndPos: end, Cond: cond, Body: body}
}

func (p *Parser) parseVisibility() (ast.Position, ast.Position, ast.Expr, []ast.UINode) {
	kw := p.advance()
	cond := p.parseExpr()
	body := p.parseChildren("'" + kw.Value + "' block")
	end := cond.NodeEndPos()
	if len(body) > 0 {
		end = body[len(body)-1].NodeEndPos()
	}
	return p.makePos(kw), end, cond, body
}

// parseControlBlock parses the body of an if/elif/else/for arm, choosing the
// UI-node or statement grammar for its items.
func (p *Parser) parseControlBlock(ui bool, context string) []ast.Node {
	p.beginBlock(context)
	var items []ast.Node
	for !p.blockDone(context) {
		if ui {
			items = append(items, p.parseUINode())
		} else {
			items = append(items, p.parseStmt())
		}
	}
	return items
}
