package ast

// Position tracks location information for error reporting and tooling.
// Line and Column are 1-based; editor surfaces convert to 0-based themselves.
type Position struct {
	Filename string
	Line     int
	Column   int
}

// Node is implemented by every syntax tree node. Nodes are built once per
// Parse call and never mutated afterwards.
type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
}

// Decl is a top-level declaration: a page/component/app container or one of
// the standalone domain declarations (model, auth, route, deploy, ...).
type Decl interface {
	Node
	isDecl()
}

// BodyItem is anything that may appear in the body of a page, component,
// app, or store: declarations, lifecycle hooks, and UI nodes.
type BodyItem interface {
	Node
	isBodyItem()
}

// UINode is a node of the rendered element tree, including the structural
// control-flow wrappers.
type UINode interface {
	Node
	isUINode()
}

// Expr is an expression node.
type Expr interface {
	Node
	isExpr()
}

// Stmt is a statement node inside function bodies, lifecycle hooks, watch
// blocks, and endpoint handlers.
type Stmt interface {
	Node
	isStmt()
}

// Ident represents any identifier: declaration names, prop names, loop
// variables. Identifiers may use the full unicode repertoire the lexer
// accepts.
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

// TypeRef is a type annotation like `int`, `string`, or `list<User>`.
type TypeRef struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Args   []*TypeRef
}

func (t *TypeRef) NodePos() Position    { return t.Pos }
func (t *TypeRef) NodeEndPos() Position { return t.EndPos }
func (*TypeRef) NodeType() NodeType     { return TYPE_REF }
