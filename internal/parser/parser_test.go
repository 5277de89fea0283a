package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumen/internal/ast"
	"lumen/internal/diag"
)

func TestParseReactivePage(t *testing.T) {
	source := `page Test:
  state count = 0
  derived doubled = count * 2
  fn inc():
    count += 1
`
	nodes, err := Parse(source)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	page, ok := nodes[0].(*ast.Page)
	require.True(t, ok, "top-level node should be a page")
	assert.Equal(t, "Test", page.Name.Value)
	require.Len(t, page.Body, 3)

	state, ok := page.Body[0].(*ast.StateDecl)
	require.True(t, ok)
	assert.Equal(t, "count", state.Name.Value)
	lit, ok := state.Value.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, ast.NumberLit, lit.Kind)
	assert.Equal(t, "0", lit.Value)

	derived, ok := page.Body[1].(*ast.DerivedDecl)
	require.True(t, ok)
	assert.Equal(t, "doubled", derived.Name.Value)
	bin, ok := derived.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", bin.Op)

	fn, ok := page.Body[2].(*ast.FnDecl)
	require.True(t, ok)
	assert.Equal(t, "inc", fn.Name.Value)
	assert.Empty(t, fn.Params)
	require.Len(t, fn.Body, 1)
	stmt := fn.Body[0].(*ast.ExprStmt)
	assign, ok := stmt.Expr.(*ast.AssignExpr)
	require.True(t, ok)
	assert.Equal(t, "+=", assign.Op)
}

func TestParseUITree(t *testing.T) {
	source := `page Home:
  layout .container:
    text "Hello" .title
    button "Go" @click: navigate("/next")
`
	nodes, err := Parse(source)
	require.NoError(t, err)

	page := nodes[0].(*ast.Page)
	require.Len(t, page.Body, 1)

	layout, ok := page.Body[0].(*ast.Element)
	require.True(t, ok)
	assert.Equal(t, "layout", layout.Kind)
	assert.Equal(t, []string{"container"}, layout.Classes)
	require.Len(t, layout.Children, 2)

	text := layout.Children[0].(*ast.Element)
	assert.Equal(t, "text", text.Kind)
	content := text.Content.(*ast.Literal)
	assert.Equal(t, "Hello", content.Value)
	assert.Equal(t, []string{"title"}, text.Classes)

	button := layout.Children[1].(*ast.Element)
	assert.Equal(t, "button", button.Kind)
	require.Len(t, button.Events, 1)
	assert.Equal(t, "click", button.Events[0].Name.Value)
	call, ok := button.Events[0].Action.(*ast.CallExpr)
	require.True(t, ok)
	assert.Len(t, call.Args, 1)
}

func TestParseElementProps(t *testing.T) {
	source := `page Form:
  input placeholder: "Your name" value: name @change: setName(value)
`
	nodes, err := Parse(source)
	require.NoError(t, err)

	input := nodes[0].(*ast.Page).Body[0].(*ast.Element)
	assert.Equal(t, "input", input.Kind)
	assert.Nil(t, input.Content, "input takes no content expression")
	require.Len(t, input.Props, 2)
	assert.Equal(t, "placeholder", input.Props[0].Name.Value)
	assert.Equal(t, "value", input.Props[1].Name.Value)
	require.Len(t, input.Events, 1)
	assert.Equal(t, "change", input.Events[0].Name.Value)
}

func TestParseIfElifElse(t *testing.T) {
	source := `page P:
  if count > 0:
    text "pos"
  elif count == 0:
    text "zero"
  else:
    text "neg"
`
	nodes, err := Parse(source)
	require.NoError(t, err)

	node, ok := nodes[0].(*ast.Page).Body[0].(*ast.If)
	require.True(t, ok)
	bin := node.Cond.(*ast.BinaryExpr)
	assert.Equal(t, ">", bin.Op)
	assert.Len(t, node.Then, 1)
	require.Len(t, node.Elifs, 1)
	assert.Len(t, node.Elifs[0].Body, 1)
	assert.Len(t, node.Else, 1)
}

func TestParseForLoop(t *testing.T) {
	source := `page P:
  for item, i in items:
    text item.name
`
	nodes, err := Parse(source)
	require.NoError(t, err)

	loop := nodes[0].(*ast.Page).Body[0].(*ast.For)
	assert.Equal(t, "item", loop.Item.Value)
	require.NotNil(t, loop.Index)
	assert.Equal(t, "i", loop.Index.Value)
	_, ok := loop.Iterable.(*ast.IdentExpr)
	assert.True(t, ok)
	require.Len(t, loop.Body, 1)

	text := loop.Body[0].(*ast.Element)
	_, ok = text.Content.(*ast.MemberExpr)
	assert.True(t, ok, "content should be the member access item.name")
}

func TestParseShowHide(t *testing.T) {
	source := `page P:
  state open = true
  show open:
    text "visible"
  hide open:
    text "hidden"
`
	nodes, err := Parse(source)
	require.NoError(t, err)

	body := nodes[0].(*ast.Page).Body
	require.Len(t, body, 3)

	show, ok := body[1].(*ast.Show)
	require.True(t, ok)
	assert.Len(t, show.Body, 1)

	hide, ok := body[2].(*ast.Hide)
	require.True(t, ok)
	assert.Len(t, hide.Body, 1)
}

func TestParseTemplateString(t *testing.T) {
	source := `page P:
  text "Hello {name}, you have {count + 1} items"
`
	nodes, err := Parse(source)
	require.NoError(t, err)

	text := nodes[0].(*ast.Page).Body[0].(*ast.Element)
	tmpl, ok := text.Content.(*ast.TemplateExpr)
	require.True(t, ok)
	require.Len(t, tmpl.Parts, 5)

	assert.Equal(t, "Hello ", tmpl.Parts[0].Text)
	ident, ok := tmpl.Parts[1].Expr.(*ast.IdentExpr)
	require.True(t, ok)
	assert.Equal(t, "name", ident.Name)
	assert.Equal(t, ", you have ", tmpl.Parts[2].Text)
	bin, ok := tmpl.Parts[3].Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)
	assert.Equal(t, " items", tmpl.Parts[4].Text)
}

func TestParseTemplatePaddedInterpolation(t *testing.T) {
	source := `page P:
  text "{ count }"
`
	nodes, err := Parse(source)
	require.NoError(t, err)

	text := nodes[0].(*ast.Page).Body[0].(*ast.Element)
	tmpl, ok := text.Content.(*ast.TemplateExpr)
	require.True(t, ok)
	require.Len(t, tmpl.Parts, 1)

	ident, ok := tmpl.Parts[0].Expr.(*ast.IdentExpr)
	require.True(t, ok)
	assert.Equal(t, "count", ident.Name)

	// Whitespace-only interpolations are still rejected as empty.
	_, err = Parse("page P:\n  text \"{  }\"\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty interpolation")
}

func TestParseFnContracts(t *testing.T) {
	source := `page P:
  fn withdraw(amount: number):
    requires: amount > 0
    ensures: balance >= 0
    balance -= amount
`
	nodes, err := Parse(source)
	require.NoError(t, err)

	fn := nodes[0].(*ast.Page).Body[0].(*ast.FnDecl)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, "amount", fn.Params[0].Name.Value)
	require.NotNil(t, fn.Params[0].Type)
	assert.Equal(t, "number", fn.Params[0].Type.Name.Value)
	assert.Len(t, fn.Requires, 1)
	assert.Len(t, fn.Ensures, 1)
	assert.Len(t, fn.Body, 1)
}

func TestParseLifecycleAndWatch(t *testing.T) {
	source := `page P:
  state n = 0
  watch n:
    log(n)
  on mount:
    n = 1
  on destroy:
    save(n)
  text n
`
	nodes, err := Parse(source)
	require.NoError(t, err)

	body := nodes[0].(*ast.Page).Body
	require.Len(t, body, 5)

	watch := body[1].(*ast.Watch)
	assert.Equal(t, "n", watch.Target.Value)
	assert.Len(t, watch.Body, 1)

	mount := body[2].(*ast.OnMount)
	require.Len(t, mount.Body, 1)
	assign := mount.Body[0].(*ast.ExprStmt).Expr.(*ast.AssignExpr)
	assert.Equal(t, "=", assign.Op)

	_, ok := body[3].(*ast.OnDestroy)
	assert.True(t, ok)
}

func TestParseStyleBlock(t *testing.T) {
	source := `component Card:
  text "hi" .label
  style:
    .label:
      color: #ff0000
      font-size: 2xl
`
	nodes, err := Parse(source)
	require.NoError(t, err)

	comp := nodes[0].(*ast.Component)
	style := comp.Body[1].(*ast.StyleBlock)
	require.Len(t, style.Rules, 1)

	rule := style.Rules[0]
	assert.Equal(t, ".label", rule.Selector)
	require.Len(t, rule.Props, 2)
	assert.Equal(t, "color", rule.Props[0].Name)
	colorLit := rule.Props[0].Value.(*ast.Literal)
	assert.Equal(t, ast.ColorLit, colorLit.Kind)
	assert.Equal(t, "#ff0000", colorLit.Value)
	assert.Equal(t, "font-size", rule.Props[1].Name)
	size := rule.Props[1].Value.(*ast.IdentExpr)
	assert.Equal(t, "2xl", size.Name)
}

func TestParseStoreAndGenericProp(t *testing.T) {
	source := `store cart:
  state items = []
  fn add(item):
    items.push(item)

component List:
  prop items: list<Todo> = []
  text items.length
`
	nodes, err := Parse(source)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	store := nodes[0].(*ast.StoreDecl)
	assert.Equal(t, "cart", store.Name.Value)
	assert.Len(t, store.Body, 2)

	comp := nodes[1].(*ast.Component)
	prop := comp.Body[0].(*ast.PropDecl)
	assert.Equal(t, "list", prop.Type.Name.Value)
	require.Len(t, prop.Type.Args, 1)
	assert.Equal(t, "Todo", prop.Type.Args[0].Name.Value)
	require.NotNil(t, prop.Default)
}

func TestParseModelRouteAuthDeploy(t *testing.T) {
	source := `model Todo:
  title: string required
  done: bool = false

route:
  "/": Home
  "/about": About

auth:
  providers: google, github
  redirect: "/login"

deploy vercel:
  region: "icn1"
`
	nodes, err := Parse(source)
	require.NoError(t, err)
	require.Len(t, nodes, 4)

	model := nodes[0].(*ast.ModelDecl)
	assert.Equal(t, "Todo", model.Name.Value)
	require.Len(t, model.Fields, 2)
	assert.Equal(t, "string", model.Fields[0].Type.Name.Value)
	require.Len(t, model.Fields[0].Attrs, 1)
	assert.Equal(t, "required", model.Fields[0].Attrs[0].Value)
	require.NotNil(t, model.Fields[1].Default)

	route := nodes[1].(*ast.RouteDecl)
	require.Len(t, route.Entries, 2)
	assert.Equal(t, "/", route.Entries[0].Path)
	assert.Equal(t, "Home", route.Entries[0].Target.Value)

	auth := nodes[2].(*ast.AuthDecl)
	require.Len(t, auth.Providers, 2)
	assert.Equal(t, "google", auth.Providers[0].Value)
	require.Len(t, auth.Entries, 1)
	assert.Equal(t, "redirect", auth.Entries[0].Name.Value)

	deploy := nodes[3].(*ast.DeployDecl)
	assert.Equal(t, "vercel", deploy.Provider.Value)
	require.Len(t, deploy.Entries, 1)
}

func TestParseApiAndStandaloneEndpoint(t *testing.T) {
	source := `api todos:
  GET "/api/todos":
    return db.todos.all()
  POST "/api/todos":
    db.todos.create(body)

endpoint GET "/health":
  return "ok"
`
	nodes, err := Parse(source)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	api := nodes[0].(*ast.ApiDecl)
	require.Len(t, api.Endpoints, 2)
	assert.Equal(t, "GET", api.Endpoints[0].Method)
	assert.Equal(t, "/api/todos", api.Endpoints[0].Path)
	assert.Equal(t, "POST", api.Endpoints[1].Method)

	health := nodes[1].(*ast.EndpointDecl)
	assert.Equal(t, "GET", health.Method)
	assert.Equal(t, "/health", health.Path)
	require.Len(t, health.Body, 1)
	ret := health.Body[0].(*ast.ReturnStmt)
	require.NotNil(t, ret.Value)
}

func TestParseFormTableChartNav(t *testing.T) {
	source := `form TodoForm:
  model: Todo
  title placeholder: "Title" required: true
  done label: "Done?"

table TodoTable:
  source: todos
  title label: "Title"

chart Sales:
  kind: "bar"
  data: sales

nav:
  "Home": Home
  "About": About
`
	nodes, err := Parse(source)
	require.NoError(t, err)
	require.Len(t, nodes, 4)

	form := nodes[0].(*ast.FormDecl)
	assert.Equal(t, "Todo", form.Model.Value)
	require.Len(t, form.Fields, 2)
	assert.Equal(t, "title", form.Fields[0].Name.Value)
	require.Len(t, form.Fields[0].Props, 2)

	table := nodes[1].(*ast.TableDecl)
	require.NotNil(t, table.Source)
	require.Len(t, table.Columns, 1)
	assert.Equal(t, "title", table.Columns[0].Name.Value)

	chart := nodes[2].(*ast.ChartDecl)
	assert.Equal(t, "Sales", chart.Name.Value)
	assert.Len(t, chart.Entries, 2)

	nav := nodes[3].(*ast.NavDecl)
	require.Len(t, nav.Items, 2)
	label := nav.Items[0].Label.(*ast.Literal)
	assert.Equal(t, "Home", label.Value)
	assert.Equal(t, "Home", nav.Items[0].Target.Value)
}

func TestParseThemeUploadSocketTaskSeedConfig(t *testing.T) {
	source := `theme dark:
  primary: #222222

upload avatars:
  max_size: 10

socket live:
  url: "wss://example.dev"

task cleanup:
  schedule: "0 0 * * *"
  db.sessions.prune()

seed Todo:
  { title: "first", done: false }
  { title: "second", done: true }

config:
  api_url: "https://example.dev"
`
	nodes, err := Parse(source)
	require.NoError(t, err)
	require.Len(t, nodes, 6)

	theme := nodes[0].(*ast.ThemeDecl)
	assert.Equal(t, "dark", theme.Name.Value)

	upload := nodes[1].(*ast.UploadDecl)
	require.Len(t, upload.Entries, 1)

	socket := nodes[2].(*ast.SocketDecl)
	assert.Equal(t, "live", socket.Name.Value)

	task := nodes[3].(*ast.TaskDecl)
	assert.Equal(t, "0 0 * * *", task.Schedule)
	require.Len(t, task.Body, 1)

	seed := nodes[4].(*ast.SeedDecl)
	assert.Equal(t, "Todo", seed.Model.Value)
	require.Len(t, seed.Rows, 2)
	row := seed.Rows[0].(*ast.ObjectExpr)
	require.Len(t, row.Entries, 2)
	assert.Equal(t, "title", row.Entries[0].Key.Value)

	cfg := nodes[5].(*ast.ConfigDecl)
	require.Len(t, cfg.Entries, 1)
	assert.Equal(t, "api_url", cfg.Entries[0].Name.Value)
}

func TestParseExpressions(t *testing.T) {
	source := `page P:
  state items = []
  derived done = items.filter((x) => x.done)
  derived label = items.length > 0 ? "full" : "empty"
  fn load():
    let data = await fetch("/api")
    return data.items[0]
`
	nodes, err := Parse(source)
	require.NoError(t, err)

	body := nodes[0].(*ast.Page).Body

	filter := body[1].(*ast.DerivedDecl).Value.(*ast.CallExpr)
	require.Len(t, filter.Args, 1)
	arrow, ok := filter.Args[0].(*ast.ArrowExpr)
	require.True(t, ok)
	require.Len(t, arrow.Params, 1)
	assert.Equal(t, "x", arrow.Params[0].Value)

	ternary, ok := body[2].(*ast.DerivedDecl).Value.(*ast.TernaryExpr)
	require.True(t, ok)
	_, ok = ternary.Cond.(*ast.BinaryExpr)
	assert.True(t, ok)

	fn := body[3].(*ast.FnDecl)
	let := fn.Body[0].(*ast.LetStmt)
	assert.Equal(t, "data", let.Name.Value)
	_, ok = let.Value.(*ast.AwaitExpr)
	assert.True(t, ok)
	ret := fn.Body[1].(*ast.ReturnStmt)
	_, ok = ret.Value.(*ast.IndexExpr)
	assert.True(t, ok)
}

func TestOperatorPrecedence(t *testing.T) {
	source := `page P:
  derived v = 1 + 2 * 3 == 7 && !flag || other
`
	nodes, err := Parse(source)
	require.NoError(t, err)

	// || binds loosest: (1+2*3 == 7 && !flag) || other
	or := nodes[0].(*ast.Page).Body[0].(*ast.DerivedDecl).Value.(*ast.BinaryExpr)
	assert.Equal(t, "||", or.Op)
	and := or.Left.(*ast.BinaryExpr)
	assert.Equal(t, "&&", and.Op)
	eq := and.Left.(*ast.BinaryExpr)
	assert.Equal(t, "==", eq.Op)
	sum := eq.Left.(*ast.BinaryExpr)
	assert.Equal(t, "+", sum.Op)
	mul := sum.Right.(*ast.BinaryExpr)
	assert.Equal(t, "*", mul.Op)
}

func TestUnknownKeywordSuggestion(t *testing.T) {
	source := `page P:
  stat count = 0
`
	_, err := Parse(source)
	require.Error(t, err)

	parseErr, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, diag.ErrUnknownKeyword, parseErr.Code)
	assert.Contains(t, parseErr.Message, "stat")
	assert.Contains(t, parseErr.Message, "Did you mean 'state'?")
	assert.Equal(t, 2, parseErr.Position.Line)
	assert.Equal(t, 3, parseErr.Position.Column)
}

func TestWrongEcosystemHintInError(t *testing.T) {
	_, err := Parse("div Home:\n  text \"x\"\n")
	require.Error(t, err)

	parseErr := err.(*ParseError)
	assert.Equal(t, diag.ErrUnknownKeyword, parseErr.Code)
	assert.Contains(t, parseErr.Message, "layout", "HTML tag names should earn a hint")
}

func TestFailFastStopsAtFirstError(t *testing.T) {
	source := `page P:
  stat a = 1
  stat b = 2
`
	nodes, err := Parse(source)
	require.Error(t, err, "only the first bad line is reported")
	assert.Nil(t, nodes)
}

func TestUnterminatedBlock(t *testing.T) {
	_, err := Parse("page P:\n")
	require.Error(t, err)
	parseErr := err.(*ParseError)
	assert.Equal(t, diag.ErrUnterminatedBlock, parseErr.Code)
}

func TestLeafElementRejectsChildren(t *testing.T) {
	source := `page P:
  input:
    text "nope"
`
	_, err := Parse(source)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot have children")
}

func TestLexicalErrorSurfacesAsParseError(t *testing.T) {
	_, err := Parse("page P:\n  text \"oops\n")
	require.Error(t, err)

	parseErr, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Contains(t, parseErr.Message, "unterminated string")
	assert.Equal(t, 2, parseErr.Position.Line)
}

func TestParseUnicodeSource(t *testing.T) {
	source := `page 할일:
  state 목록 = []
  derived 개수 = 목록.length
  text "{개수}개 남음"
`
	nodes, err := Parse(source)
	require.NoError(t, err)

	page := nodes[0].(*ast.Page)
	assert.Equal(t, "할일", page.Name.Value)
	assert.Equal(t, "목록", page.Body[0].(*ast.StateDecl).Name.Value)

	tmpl := page.Body[2].(*ast.Element).Content.(*ast.TemplateExpr)
	require.Len(t, tmpl.Parts, 2)
	ident := tmpl.Parts[0].Expr.(*ast.IdentExpr)
	assert.Equal(t, "개수", ident.Name)
}

func TestCommentsAreTransparent(t *testing.T) {
	source := `// app header comment
page P:
  // inside the body
  state n = 0
  text n
`
	nodes, err := Parse(source)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Len(t, nodes[0].(*ast.Page).Body, 2)
}
