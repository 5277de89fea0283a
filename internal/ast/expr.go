package ast

// LiteralKind distinguishes the literal families the lexer produces.
type LiteralKind int

const (
	NumberLit LiteralKind = iota
	StringLit
	BoolLit
	NullLit
	ColorLit
)

// Literal is a literal value, stored verbatim as scanned.
// Example: "42", "3.14", "hello", "true", "#ff0000"
type Literal struct {
	Pos    Position
	EndPos Position
	Kind   LiteralKind
	Value  string
}

// IdentExpr references a name in expression position.
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

// MemberExpr is field access.
// Example: "user.name"
type MemberExpr struct {
	Pos    Position
	EndPos Position
	Target Expr
	Field  Ident
}

// IndexExpr is subscript access.
// Example: "items[0]"
type IndexExpr struct {
	Pos    Position
	EndPos Position
	Target Expr
	Index  Expr
}

// CallExpr is a function call.
// Example: "inc()", "fetch(url, opts)"
type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee Expr
	Args   []Expr
}

// BinaryExpr is an infix operation.
// Example: "count * 2", "a && b"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

// UnaryExpr is a prefix operation.
// Example: "-x", "!done"
type UnaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Value  Expr
}

// TernaryExpr is "cond ? then : else".
type TernaryExpr struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   Expr
	Else   Expr
}

// AssignExpr is a right-associative assignment expression.
// Example: "count += 1"
type AssignExpr struct {
	Pos    Position
	EndPos Position
	Target Expr
	Op     string // =, +=, -=, *=, /=
	Value  Expr
}

// ArrowExpr is an arrow function literal. Exactly one of Expr or Body is
// set, depending on whether the arrow had an expression or a block body.
// Example: "(x) => x * 2"
type ArrowExpr struct {
	Pos    Position
	EndPos Position
	Params []Ident
	Expr   Expr
	Body   []Stmt
}

// ArrayExpr is an array literal.
type ArrayExpr struct {
	Pos      Position
	EndPos   Position
	Elements []Expr
}

// ObjectExpr is an object literal.
type ObjectExpr struct {
	Pos     Position
	EndPos  Position
	Entries []*ObjectEntry
}

// ObjectEntry is one "key: value" pair of an object literal.
type ObjectEntry struct {
	Pos    Position
	EndPos Position
	Key    Ident
	Value  Expr
}

// TemplateExpr is a string with "{expr}" interpolation segments.
// Example: "Hello {user.name}!"
type TemplateExpr struct {
	Pos    Position
	EndPos Position
	Parts  []TemplatePart
}

// TemplatePart is either literal text or an interpolated expression;
// exactly one of the two fields is set.
type TemplatePart struct {
	Text string
	Expr Expr
}

// AwaitExpr awaits an asynchronous value.
type AwaitExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// PrevExpr references the previous value of the watched state, valid only
// inside watch bodies and ensures clauses.
type PrevExpr struct {
	Pos    Position
	EndPos Position
}

// ParenExpr preserves explicit grouping.
type ParenExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

func (l *Literal) NodePos() Position    { return l.Pos }
func (l *Literal) NodeEndPos() Position { return l.EndPos }
func (*Literal) NodeType() NodeType     { return LITERAL_EXPR }

func (i *IdentExpr) NodePos() Position    { return i.Pos }
func (i *IdentExpr) NodeEndPos() Position { return i.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

func (m *MemberExpr) NodePos() Position    { return m.Pos }
func (m *MemberExpr) NodeEndPos() Position { return m.EndPos }
func (*MemberExpr) NodeType() NodeType     { return MEMBER_EXPR }

func (i *IndexExpr) NodePos() Position    { return i.Pos }
func (i *IndexExpr) NodeEndPos() Position { return i.EndPos }
func (*IndexExpr) NodeType() NodeType     { return INDEX_EXPR }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (u *UnaryExpr) NodePos() Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() Position { return u.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (t *TernaryExpr) NodePos() Position    { return t.Pos }
func (t *TernaryExpr) NodeEndPos() Position { return t.EndPos }
func (*TernaryExpr) NodeType() NodeType     { return TERNARY_EXPR }

func (a *AssignExpr) NodePos() Position    { return a.Pos }
func (a *AssignExpr) NodeEndPos() Position { return a.EndPos }
func (*AssignExpr) NodeType() NodeType     { return ASSIGN_EXPR }

func (a *ArrowExpr) NodePos() Position    { return a.Pos }
func (a *ArrowExpr) NodeEndPos() Position { return a.EndPos }
func (*ArrowExpr) NodeType() NodeType     { return ARROW_EXPR }

func (a *ArrayExpr) NodePos() Position    { return a.Pos }
func (a *ArrayExpr) NodeEndPos() Position { return a.EndPos }
func (*ArrayExpr) NodeType() NodeType     { return ARRAY_EXPR }

func (o *ObjectExpr) NodePos() Position    { return o.Pos }
func (o *ObjectExpr) NodeEndPos() Position { return o.EndPos }
func (*ObjectExpr) NodeType() NodeType     { return OBJECT_EXPR }

func (o *ObjectEntry) NodePos() Position    { return o.Pos }
func (o *ObjectEntry) NodeEndPos() Position { return o.EndPos }
func (*ObjectEntry) NodeType() NodeType     { return OBJECT_ENTRY }

func (t *TemplateExpr) NodePos() Position    { return t.Pos }
func (t *TemplateExpr) NodeEndPos() Position { return t.EndPos }
func (*TemplateExpr) NodeType() NodeType     { return TEMPLATE_EXPR }

func (a *AwaitExpr) NodePos() Position    { return a.Pos }
func (a *AwaitExpr) NodeEndPos() Position { return a.EndPos }
func (*AwaitExpr) NodeType() NodeType     { return AWAIT_EXPR }

func (p *PrevExpr) NodePos() Position    { return p.Pos }
func (p *PrevExpr) NodeEndPos() Position { return p.EndPos }
func (*PrevExpr) NodeType() NodeType     { return PREV_EXPR }

func (p *ParenExpr) NodePos() Position    { return p.Pos }
func (p *ParenExpr) NodeEndPos() Position { return p.EndPos }
func (*ParenExpr) NodeType() NodeType     { return PAREN_EXPR }
