package parser

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/lexer"
)

var topLevelKeywords = []string{
	"page", "component", "app",
	"model", "auth", "route", "deploy", "endpoint", "api", "store", "type",
	"form", "table", "chart", "nav", "theme", "upload", "socket", "task",
	"seed", "config",
}

func (p *Parser) parseTopLevel() ast.Node {
	tok := p.peek()
	if tok.Type != lexer.KEYWORD {
		if tok.Type == lexer.IDENTIFIER {
			p.failUnknownKeyword(tok, "at top level", topLevelKeywords)
		}
		p.fail(diag.ErrUnexpectedToken, tok, "expected a declaration, got %s", describeToken(tok))
	}

	switch tok.Value {
	case "page", "component", "app":
		return p.parseContainer()
	case "model":
		return p.parseModelDecl()
	case "auth":
		return p.parseAuthDecl()
	case "route":
		return p.parseRouteDecl()
	case "deploy":
		return p.parseDeployDecl()
	case "endpoint":
		return p.parseEndpointDecl()
	case "api":
		return p.parseApiDecl()
	case "store":
		return p.parseStoreDecl()
	case "type":
		return p.parseTypeDecl()
	case "form":
		return p.parseFormDecl()
	case "table":
		return p.parseTableDecl()
	case "chart":
		return p.parseChartDecl()
	case "nav":
		return p.parseNavDecl()
	case "theme":
		return p.parseThemeDecl()
	case "upload":
		return p.parseUploadDecl()
	case "socket":
		return p.parseSocketDecl()
	case "task":
		return p.parseTaskDecl()
	case "seed":
		return p.parseSeedDecl()
	case "config":
		return p.parseConfigDecl()
	}
	p.failUnknownKeyword(tok, "at top level", topLevelKeywords)
	return nil
}

// parseContainer handles the three declaration kinds that carry a full body:
// page, component and app.
func (p *Parser) parseContainer() ast.Node {
	kw := p.advance()
	name := p.expectIdent("expected a name after '" + kw.Value + "'")
	body := p.parseBody(kw.Value + " '" + name.Value + "'")

	pos := p.makePos(kw)
	end := name.EndPos
	if len(body) > 0 {
		end = body[len(body)-1].NodeEndPos()
	}

	switch kw.Value {
	case "page":
		return &ast.Page{Pos: pos, EndPos: end, Name: name, Body: body}
	case "component":
		return &ast.Component{Pos: pos, EndPos: end, Name: name, Body: body}
	default:
		return &ast.App{Pos: pos, EndPos: end, Name: name, Body: body}
	}
}

// parseBody parses the indented block of a page, component, app or store.
func (p *Parser) parseBody(context string) []ast.BodyItem {
	p.beginBlock(context)
	var items []ast.BodyItem
	for !p.blockDone(context) {
		items = append(items, p.parseBodyItem())
	}
	return items
}

var bodyKeywords = []string{
	"state", "derived", "prop", "fn", "on", "watch", "style", "type",
	"store", "api", "model", "form", "table", "chart", "nav",
	"if", "for", "show", "hide",
	"layout", "row", "column", "grid", "stack", "card", "modal", "header",
	"footer", "list", "tabs", "tab",
	"text", "button", "input", "image", "link", "toggle", "select",
	"checkbox", "slider", "video", "divider", "spacer", "badge", "avatar",
	"progress",
}

func (p *Parser) parseBodyItem() ast.BodyItem {
	tok := p.peek()
	if tok.Type != lexer.KEYWORD {
		if tok.Type == lexer.IDENTIFIER {
			p.failUnknownKeyword(tok, "in body", bodyKeywords)
		}
		p.fail(diag.ErrUnexpectedToken, tok, "expected a body item, got %s", describeToken(tok))
	}

	if _, isElement := ast.ElementKinds[tok.Value]; isElement {
		return p.parseElement()
	}

	switch tok.Value {
	case "state":
		return p.parseStateDecl()
	case "derived":
		return p.parseDerivedDecl()
	case "prop":
		return p.parsePropDecl()
	case "fn":
		return p.parseFnDecl()
	case "on":
		return p.parseLifecycle()
	case "watch":
		return p.parseWatch()
	case "style":
		return p.parseStyleBlock()
	case "type":
		return p.parseTypeDecl()
	case "store":
		return p.parseStoreDecl()
	case "api":
		return p.parseApiDecl()
	case "model":
		return p.parseModelDecl()
	case "form":
		return p.parseFormDecl()
	case "table":
		return p.parseTableDecl()
	case "chart":
		return p.parseChartDecl()
	case "nav":
		return p.parseNavDecl()
	case "if":
		return p.parseIf(true)
	case "for":
		return p.parseFor(true)
	case "show":
		return p.parseShow()
	case "hide":
		return p.parseHide()
	}
	p.failUnknownKeyword(tok, "in body", bodyKeywords)
	return nil
}

// state Name [: Type] [= expr]
func (p *Parser) parseStateDecl() *ast.StateDecl {
	kw := p.advance()
	name := p.expectIdent("expected a name after 'state'")
	decl := &ast.StateDecl{Pos: p.makePos(kw), EndPos: name.EndPos, Name: name}
	if p.matchPunct(":") {
		decl.Type = p.parseTypeRef()
		decl.EndPos = decl.Type.EndPos
	}
	if p.matchOp("=") {
		decl.Value = p.parseExpr()
		decl.EndPos = decl.Value.NodeEndPos()
	}
	p.expectNewline("state declaration")
	return decl
}

// derived Name = expr
func (p *Parser) parseDerivedDecl() *ast.DerivedDecl {
	kw := p.advance()
	name := p.expectIdent("expected a name after 'derived'")
	if !p.matchOp("=") {
		p.fail(diag.ErrUnexpectedToken, p.peek(),
			"derived '%s' needs an '=' and an expression", name.Value)
	}
	value := p.parseExpr()
	p.expectNewline("derived declaration")
	return &ast.DerivedDecl{
		Pos:    p.makePos(kw),
		EndPos: value.NodeEndPos(),
		Name:   name,
		Value:  value,
	}
}

// prop Name : Type [= expr]
func (p *Parser) parsePropDecl() *ast.PropDecl {
	kw := p.advance()
	name := p.expectIdent("expected a name after 'prop'")
	p.expectPunct(":", "prop '"+name.Value+"' needs a type annotation")
	typ := p.parseTypeRef()
	decl := &ast.PropDecl{Pos: p.makePos(kw), EndPos: typ.EndPos, Name: name, Type: typ}
	if p.matchOp("=") {
		decl.Default = p.parseExpr()
		decl.EndPos = decl.Default.NodeEndPos()
	}
	p.expectNewline("prop declaration")
	return decl
}

// fn Name(params) [-> Type]: requires/ensures lines then statements.
func (p *Parser) parseFnDecl() *ast.FnDecl {
	kw := p.advance()
	name := p.expectIdent("expected a function name after 'fn'")
	p.expectPunct("(", "expected '(' after function name")

	var params []*ast.Param
	for !p.checkPunct(")") {
		if len(params) > 0 {
			p.expectPunct(",", "expected ',' between parameters")
		}
		params = append(params, p.parseParam())
	}
	closeParen := p.expectPunct(")", "expected ')' after parameters")

	decl := &ast.FnDecl{
		Pos:    p.makePos(kw),
		EndPos: p.makeEndPos(closeParen),
		Name:   name,
		Params: params,
	}
	if p.matchOp("->") {
		decl.Return = p.parseTypeRef()
	}

	context := "fn '" + name.Value + "'"
	p.beginBlock(context)
	for !p.blockDone(context) {
		switch {
		case p.checkKeyword("requires") && len(decl.Body) == 0:
			p.advance()
			p.expectPunct(":", "expected ':' after 'requires'")
			decl.Requires = append(decl.Requires, p.parseExprList()...)
			p.expectNewline("requires clause")
		case p.checkKeyword("ensures") && len(decl.Body) == 0:
			p.advance()
			p.expectPunct(":", "expected ':' after 'ensures'")
			decl.Ensures = append(decl.Ensures, p.parseExprList()...)
			p.expectNewline("ensures clause")
		default:
			decl.Body = append(decl.Body, p.parseStmt())
		}
	}
	if len(decl.Body) > 0 {
		decl.EndPos = decl.Body[len(decl.Body)-1].NodeEndPos()
	}
	return decl
}

func (p *Parser) parseParam() *ast.Param {
	name := p.expectIdent("expected a parameter name")
	param := &ast.Param{Pos: name.Pos, EndPos: name.EndPos, Name: name}
	if p.matchPunct(":") {
		param.Type = p.parseTypeRef()
		param.EndPos = param.Type.EndPos
	}
	if p.matchOp("=") {
		param.Default = p.parseExpr()
		param.EndPos = param.Default.NodeEndPos()
	}
	return param
}

// on mount: / on destroy:
func (p *Parser) parseLifecycle() ast.BodyItem {
	kw := p.advance()
	hook := p.peek()
	if !p.matchKeyword("mount") && !p.matchKeyword("destroy") {
		p.fail(diag.ErrUnexpectedToken, hook,
			"expected 'mount' or 'destroy' after 'on', got %s", describeToken(hook))
	}
	body := p.parseStmtBlock("on " + hook.Value)
	pos := p.makePos(kw)
	end := p.makeEndPos(hook)
	if len(body) > 0 {
		end = body[len(body)-1].NodeEndPos()
	}
	if hook.Value == "mount" {
		return &ast.OnMount{Pos: pos, EndPos: end, Body: body}
	}
	return &ast.OnDestroy{Pos: pos, EndPos: end, Body: body}
}

// watch Name: statements
func (p *Parser) parseWatch() *ast.Watch {
	kw := p.advance()
	target := p.expectIdent("expected a state name after 'watch'")
	body := p.parseStmtBlock("watch '" + target.Value + "'")
	end := target.EndPos
	if len(body) > 0 {
		end = body[len(body)-1].NodeEndPos()
	}
	return &ast.Watch{Pos: p.makePos(kw), EndPos: end, Target: target, Body: body}
}

// style: block of selector rules.
func (p *Parser) parseStyleBlock() *ast.StyleBlock {
	kw := p.advance()
	block := &ast.StyleBlock{Pos: p.makePos(kw), EndPos: p.makeEndPos(kw)}
	p.beginBlock("style block")
	for !p.blockDone("style block") {
		block.Rules = append(block.Rules, p.parseStyleRule())
	}
	if len(block.Rules) > 0 {
		block.EndPos = block.Rules[len(block.Rules)-1].EndPos
	}
	return block
}

func (p *Parser) parseStyleRule() *ast.StyleRule {
	tok := p.advance()
	var selector string
	switch tok.Type {
	case lexer.STYLE_CLASS:
		selector = "." + tok.Value
	case lexer.IDENTIFIER, lexer.KEYWORD:
		selector = tok.Value
	default:
		p.fail(diag.ErrUnexpectedToken, tok,
			"expected a style selector, got %s", describeToken(tok))
	}

	rule := &ast.StyleRule{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Selector: selector}
	context := "style rule '" + selector + "'"
	p.beginBlock(context)
	for !p.blockDone(context) {
		prop := p.parseStyleProp()
		rule.Props = append(rule.Props, prop)
		rule.EndPos = prop.EndPos
	}
	return rule
}

func (p *Parser) parseStyleProp() *ast.StyleProp {
	tok := p.advance()
	if tok.Type != lexer.IDENTIFIER && tok.Type != lexer.KEYWORD {
		p.fail(diag.ErrUnexpectedToken, tok,
			"expected a style property name, got %s", describeToken(tok))
	}
	name := tok.Value
	// CSS-style hyphenated names lex as identifier runs joined by '-'.
	for p.checkOp("-") {
		p.advance()
		part := p.advance()
		if part.Type != lexer.IDENTIFIER && part.Type != lexer.KEYWORD {
			p.fail(diag.ErrUnexpectedToken, part,
				"expected a style property name, got %s", describeToken(part))
		}
		name += "-" + part.Value
	}
	p.expectPunct(":", "expected ':' after style property '"+name+"'")
	value := p.parseExpr()
	p.expectNewline("style property")
	return &ast.StyleProp{
		Pos:    p.makePos(tok),
		EndPos: value.NodeEndPos(),
		Name:   name,
		Value:  value,
	}
}

// type Name: fields
func (p *Parser) parseTypeDecl() *ast.TypeDecl {
	kw := p.advance()
	name := p.expectIdent("expected a name after 'type'")
	decl := &ast.TypeDecl{Pos: p.makePos(kw), EndPos: name.EndPos, Name: name}
	context := "type '" + name.Value + "'"
	p.beginBlock(context)
	for !p.blockDone(context) {
		fieldName := p.expectIdent("expected a field name")
		p.expectPunct(":", "field '"+fieldName.Value+"' needs a type")
		fieldType := p.parseTypeRef()
		p.expectNewline("type field")
		decl.Fields = append(decl.Fields, &ast.TypeField{
			Pos:    fieldName.Pos,
			EndPos: fieldType.EndPos,
			Name:   fieldName,
			Type:   fieldType,
		})
		decl.EndPos = fieldType.EndPos
	}
	return decl
}

// store Name: shares the page/component body grammar.
func (p *Parser) parseStoreDecl() *ast.StoreDecl {
	kw := p.advance()
	name := p.expectIdent("expected a name after 'store'")
	body := p.parseBody("store '" + name.Value + "'")
	end := name.EndPos
	if len(body) > 0 {
		end = body[len(body)-1].NodeEndPos()
	}
	return &ast.StoreDecl{Pos: p.makePos(kw), EndPos: end, Name: name, Body: body}
}

// api Name: endpoints
func (p *Parser) parseApiDecl() *ast.ApiDecl {
	kw := p.advance()
	name := p.expectIdent("expected a name after 'api'")
	decl := &ast.ApiDecl{Pos: p.makePos(kw), EndPos: name.EndPos, Name: name}
	context := "api '" + name.Value + "'"
	p.beginBlock(context)
	for !p.blockDone(context) {
		ep := p.parseEndpointBody(p.expect(lexer.HTTP_METHOD, "expected an HTTP method"))
		decl.Endpoints = append(decl.Endpoints, ep)
		decl.EndPos = ep.EndPos
	}
	return decl
}

// endpoint METHOD "path": statements — the standalone form.
func (p *Parser) parseEndpointDecl() *ast.EndpointDecl {
	kw := p.advance()
	method := p.expect(lexer.HTTP_METHOD, "expected an HTTP method after 'endpoint'")
	ep := p.parseEndpointBody(method)
	ep.Pos = p.makePos(kw)
	return ep
}

func (p *Parser) parseEndpointBody(method lexer.Token) *ast.EndpointDecl {
	path := p.expect(lexer.STRING, "expected a path string after '"+method.Value+"'")
	body := p.parseStmtBlock(method.Value + " " + path.Value)
	end := p.makeEndPos(path)
	if len(body) > 0 {
		end = body[len(body)-1].NodeEndPos()
	}
	return &ast.EndpointDecl{
		Pos:    p.makePos(method),
		EndPos: end,
		Method: method.Value,
		Path:   path.Value,
		Body:   body,
	}
}

// model Name: fields with optional attributes and defaults.
func (p *Parser) parseModelDecl() *ast.ModelDecl {
	kw := p.advance()
	name := p.expectIdent("expected a name after 'model'")
	decl := &ast.ModelDecl{Pos: p.makePos(kw), EndPos: name.EndPos, Name: name}
	context := "model '" + name.Value + "'"
	p.beginBlock(context)
	for !p.blockDone(context) {
		field := p.parseModelField()
		decl.Fields = append(decl.Fields, field)
		decl.EndPos = field.EndPos
	}
	return decl
}

func (p *Parser) parseModelField() *ast.ModelField {
	name := p.expectIdent("expected a field name")
	p.expectPunct(":", "field '"+name.Value+"' needs a type")
	typ := p.parseTypeRef()
	field := &ast.ModelField{Pos: name.Pos, EndPos: typ.EndPos, Name: name, Type: typ}
	for p.check(lexer.IDENTIFIER) {
		attr := p.makeIdent(p.advance())
		field.Attrs = append(field.Attrs, attr)
		field.EndPos = attr.EndPos
	}
	if p.matchOp("=") {
		field.Default = p.parseExpr()
		field.EndPos = field.Default.NodeEndPos()
	}
	p.expectNewline("model field")
	return field
}

// auth: providers line plus config entries.
func (p *Parser) parseAuthDecl() *ast.AuthDecl {
	kw := p.advance()
	decl := &ast.AuthDecl{Pos: p.makePos(kw), EndPos: p.makeEndPos(kw)}
	p.beginBlock("auth block")
	for !p.blockDone("auth block") {
		if p.check(lexer.IDENTIFIER) && p.peek().Value == "providers" {
			p.advance()
			p.expectPunct(":", "expected ':' after 'providers'")
			for {
				provider := p.expectIdent("expected a provider name")
				decl.Providers = append(decl.Providers, provider)
				decl.EndPos = provider.EndPos
				if !p.matchPunct(",") {
					break
				}
			}
			p.expectNewline("providers list")
			continue
		}
		entry := p.parseConfigEntry()
		decl.Entries = append(decl.Entries, entry)
		decl.EndPos = entry.EndPos
	}
	return decl
}

// route: "path" : PageName lines.
func (p *Parser) parseRouteDecl() *ast.RouteDecl {
	kw := p.advance()
	decl := &ast.RouteDecl{Pos: p.makePos(kw), EndPos: p.makeEndPos(kw)}
	p.beginBlock("route block")
	for !p.blockDone("route block") {
		path := p.expect(lexer.STRING, "expected a route path string")
		p.expectPunct(":", "expected ':' after route path")
		target := p.expectIdent("expected a page name for route '" + path.Value + "'")
		p.expectNewline("route entry")
		decl.Entries = append(decl.Entries, &ast.RouteEntry{
			Pos:    p.makePos(path),
			EndPos: target.EndPos,
			Path:   path.Value,
			Target: target,
		})
		decl.EndPos = target.EndPos
	}
	return decl
}

// deploy Provider: config entries.
func (p *Parser) parseDeployDecl() *ast.DeployDecl {
	kw := p.advance()
	provider := p.expectIdent("expected a provider after 'deploy'")
	decl := &ast.DeployDecl{
		Pos:      p.makePos(kw),
		EndPos:   provider.EndPos,
		Provider: provider,
	}
	decl.Entries, decl.EndPos = p.parseConfigEntries("deploy block", decl.EndPos)
	return decl
}

// form Name: model line plus fields with prop lists.
func (p *Parser) parseFormDecl() *ast.FormDecl {
	kw := p.advance()
	name := p.expectIdent("expected a name after 'form'")
	decl := &ast.FormDecl{Pos: p.makePos(kw), EndPos: name.EndPos, Name: name}
	context := "form '" + name.Value + "'"
	p.beginBlock(context)
	for !p.blockDone(context) {
		if p.checkKeyword("model") {
			p.advance()
			p.expectPunct(":", "expected ':' after 'model'")
			decl.Model = p.expectIdent("expected a model name")
			decl.EndPos = decl.Model.EndPos
			p.expectNewline("model binding")
			continue
		}
		fieldName := p.expectIdent("expected a form field name")
		field := &ast.FormField{Pos: fieldName.Pos, EndPos: fieldName.EndPos, Name: fieldName}
		for p.check(lexer.IDENTIFIER) {
			prop := p.parseInlineProp()
			field.Props = append(field.Props, prop)
			field.EndPos = prop.EndPos
		}
		p.expectNewline("form field")
		decl.Fields = append(decl.Fields, field)
		decl.EndPos = field.EndPos
	}
	return decl
}

// table Name: source line plus column lines.
func (p *Parser) parseTableDecl() *ast.TableDecl {
	kw := p.advance()
	name := p.expectIdent("expected a name after 'table'")
	decl := &ast.TableDecl{Pos: p.makePos(kw), EndPos: name.EndPos, Name: name}
	context := "table '" + name.Value + "'"
	p.beginBlock(context)
	for !p.blockDone(context) {
		if p.check(lexer.IDENTIFIER) && p.peek().Value == "source" && p.peekNext().Type == lexer.PUNCTUATION && p.peekNext().Value == ":" {
			p.advance()
			p.advance()
			decl.Source = p.parseExpr()
			decl.EndPos = decl.Source.NodeEndPos()
			p.expectNewline("table source")
			continue
		}
		colName := p.expectIdent("expected a column name")
		col := &ast.TableColumn{Pos: colName.Pos, EndPos: colName.EndPos, Name: colName}
		for p.check(lexer.IDENTIFIER) {
			prop := p.parseInlineProp()
			col.Props = append(col.Props, prop)
			col.EndPos = prop.EndPos
		}
		p.expectNewline("table column")
		decl.Columns = append(decl.Columns, col)
		decl.EndPos = col.EndPos
	}
	return decl
}

// chart Name: config entries.
func (p *Parser) parseChartDecl() *ast.ChartDecl {
	kw := p.advance()
	name := p.expectIdent("expected a name after 'chart'")
	decl := &ast.ChartDecl{Pos: p.makePos(kw), EndPos: name.EndPos, Name: name}
	decl.Entries, decl.EndPos = p.parseConfigEntries("chart '"+name.Value+"'", decl.EndPos)
	return decl
}

// nav: label : Target lines.
func (p *Parser) parseNavDecl() *ast.NavDecl {
	kw := p.advance()
	decl := &ast.NavDecl{Pos: p.makePos(kw), EndPos: p.makeEndPos(kw)}
	p.beginBlock("nav block")
	for !p.blockDone("nav block") {
		label := p.parseExpr()
		p.expectPunct(":", "expected ':' after nav label")
		target := p.expectIdent("expected a page name for nav entry")
		p.expectNewline("nav entry")
		decl.Items = append(decl.Items, &ast.NavItem{
			Pos:    label.NodePos(),
			EndPos: target.EndPos,
			Label:  label,
			Target: target,
		})
		decl.EndPos = target.EndPos
	}
	return decl
}

// theme Name: config entries.
func (p *Parser) parseThemeDecl() *ast.ThemeDecl {
	kw := p.advance()
	name := p.expectIdent("expected a name after 'theme'")
	decl := &ast.ThemeDecl{Pos: p.makePos(kw), EndPos: name.EndPos, Name: name}
	decl.Entries, decl.EndPos = p.parseConfigEntries("theme '"+name.Value+"'", decl.EndPos)
	return decl
}

func (p *Parser) parseUploadDecl() *ast.UploadDecl {
	kw := p.advance()
	name := p.expectIdent("expected a name after 'upload'")
	decl := &ast.UploadDecl{Pos: p.makePos(kw), EndPos: name.EndPos, Name: name}
	decl.Entries, decl.EndPos = p.parseConfigEntries("upload '"+name.Value+"'", decl.EndPos)
	return decl
}

func (p *Parser) parseSocketDecl() *ast.SocketDecl {
	kw := p.advance()
	name := p.expectIdent("expected a name after 'socket'")
	decl := &ast.SocketDecl{Pos: p.makePos(kw), EndPos: name.EndPos, Name: name}
	decl.Entries, decl.EndPos = p.parseConfigEntries("socket '"+name.Value+"'", decl.EndPos)
	return decl
}

// task Name: optional schedule line then statements.
func (p *Parser) parseTaskDecl() *ast.TaskDecl {
	kw := p.advance()
	name := p.expectIdent("expected a name after 'task'")
	decl := &ast.TaskDecl{Pos: p.makePos(kw), EndPos: name.EndPos, Name: name}
	context := "task '" + name.Value + "'"
	p.beginBlock(context)
	first := true
	for !p.blockDone(context) {
		if first && p.check(lexer.IDENTIFIER) && p.peek().Value == "schedule" {
			p.advance()
			p.expectPunct(":", "expected ':' after 'schedule'")
			sched := p.expect(lexer.STRING, "expected a schedule string")
			decl.Schedule = sched.Value
			decl.EndPos = p.makeEndPos(sched)
			p.expectNewline("schedule")
			first = false
			continue
		}
		first = false
		stmt := p.parseStmt()
		decl.Body = append(decl.Body, stmt)
		decl.EndPos = stmt.NodeEndPos()
	}
	return decl
}

// seed Model: one row expression per line.
func (p *Parser) parseSeedDecl() *ast.SeedDecl {
	kw := p.advance()
	model := p.expectIdent("expected a model name after 'seed'")
	decl := &ast.SeedDecl{Pos: p.makePos(kw), EndPos: model.EndPos, Model: model}
	context := "seed '" + model.Value + "'"
	p.beginBlock(context)
	for !p.blockDone(context) {
		row := p.parseExpr()
		p.expectNewline("seed row")
		decl.Rows = append(decl.Rows, row)
		decl.EndPos = row.NodeEndPos()
	}
	return decl
}

// config: entries.
func (p *Parser) parseConfigDecl() *ast.ConfigDecl {
	kw := p.advance()
	decl := &ast.ConfigDecl{Pos: p.makePos(kw), EndPos: p.makeEndPos(kw)}
	decl.Entries, decl.EndPos = p.parseConfigEntries("config block", decl.EndPos)
	return decl
}

// parseConfigEntries parses a block of "name: expr" lines.
func (p *Parser) parseConfigEntries(context string, end ast.Position) ([]*ast.ConfigEntry, ast.Position) {
	p.beginBlock(context)
	var entries []*ast.ConfigEntry
	for !p.blockDone(context) {
		entry := p.parseConfigEntry()
		entries = append(entries, entry)
		end = entry.EndPos
	}
	return entries, end
}

func (p *Parser) parseConfigEntry() *ast.ConfigEntry {
	tok := p.advance()
	if tok.Type != lexer.IDENTIFIER && tok.Type != lexer.KEYWORD {
		p.fail(diag.ErrUnexpectedToken, tok,
			"expected a setting name, got %s", describeToken(tok))
	}
	name := p.makeIdent(tok)
	p.expectPunct(":", "expected ':' after '"+name.Value+"'")
	value := p.parseExpr()
	p.expectNewline("setting")
	return &ast.ConfigEntry{
		Pos:    name.Pos,
		EndPos: value.NodeEndPos(),
		Name:   name,
		Value:  value,
	}
}

// parseInlineProp parses a single "name: expr" pair on the current line.
func (p *Parser) parseInlineProp() *ast.Prop {
	name := p.expectIdent("expected a property name")
	p.expectPunct(":", "expected ':' after property '"+name.Value+"'")
	value := p.parseExpr()
	return &ast.Prop{
		Pos:    name.Pos,
		EndPos: value.NodeEndPos(),
		Name:   name,
		Value:  value,
	}
}

// parseTypeRef parses a type name with optional angle-bracket arguments,
// e.g. list<Todo>.
func (p *Parser) parseTypeRef() *ast.TypeRef {
	tok := p.advance()
	if tok.Type != lexer.IDENTIFIER && tok.Type != lexer.KEYWORD {
		p.fail(diag.ErrUnexpectedToken, tok, "expected a type name, got %s", describeToken(tok))
	}
	ref := &ast.TypeRef{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Name:   p.makeIdent(tok),
	}
	if p.matchOp("<") {
		for {
			arg := p.parseTypeRef()
			ref.Args = append(ref.Args, arg)
			if !p.matchPunct(",") {
				break
			}
		}
		closing := p.peek()
		if !p.matchOp(">") {
			p.fail(diag.ErrUnexpectedToken, closing,
				"expected '>' to close type arguments, got %s", describeToken(closing))
		}
		ref.EndPos = p.makeEndPos(closing)
	}
	return ref
}

func (p *Parser) parseExprList() []ast.Expr {
	exprs := []ast.Expr{p.parseExpr()}
	for p.matchPunct(",") {
		exprs = append(exprs, p.parseExpr())
	}
	return exprs
}
