package ast

// ExprStmt is a bare expression in statement position, including assignment
// expressions and calls.
type ExprStmt struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

// ReturnStmt returns from a function, with an optional value.
type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr // nil for a bare return
}

// LetStmt declares a local variable inside a function body.
// Example: "let total = price * qty"
type LetStmt struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   *TypeRef
	Value  Expr
}

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (r *ReturnStmt) NodePos() Position    { return r.Pos }
func (r *ReturnStmt) NodeEndPos() Position { return r.EndPos }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (l *LetStmt) NodePos() Position    { return l.Pos }
func (l *LetStmt) NodeEndPos() Position { return l.EndPos }
func (*LetStmt) NodeType() NodeType     { return LET_STMT }
