package ast

// Inspect traverses the tree rooted at n in depth-first source order,
// calling f for every node. If f returns false the node's children are
// skipped. This is the one traversal in the front end: the validator's
// dependency and liveness passes and the LSP symbol walk all run on it, so
// a new node kind is wired up exactly once, here.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch node := n.(type) {
	case *Ident, *Literal, *IdentExpr, *PrevExpr:
		// leaves

	case *TypeRef:
		for _, arg := range node.Args {
			Inspect(arg, f)
		}

	case *Page:
		inspectBody(node.Body, f)
	case *Component:
		inspectBody(node.Body, f)
	case *App:
		inspectBody(node.Body, f)

	case *StateDecl:
		inspectExpr(node.Value, f)
	case *DerivedDecl:
		inspectExpr(node.Value, f)
	case *PropDecl:
		inspectExpr(node.Default, f)
	case *FnDecl:
		for _, p := range node.Params {
			Inspect(p, f)
		}
		for _, e := range node.Requires {
			Inspect(e, f)
		}
		for _, e := range node.Ensures {
			Inspect(e, f)
		}
		inspectStmts(node.Body, f)
	case *Param:
		inspectExpr(node.Default, f)
	case *OnMount:
		inspectStmts(node.Body, f)
	case *OnDestroy:
		inspectStmts(node.Body, f)
	case *Watch:
		Inspect(&node.Target, f)
		inspectStmts(node.Body, f)
	case *StyleBlock:
		for _, r := range node.Rules {
			Inspect(r, f)
		}
	case *StyleRule:
		for _, p := range node.Props {
			Inspect(p, f)
		}
	case *StyleProp:
		inspectExpr(node.Value, f)
	case *TypeDecl:
		for _, field := range node.Fields {
			Inspect(field, f)
		}
	case *TypeField:
		Inspect(node.Type, f)
	case *StoreDecl:
		inspectBody(node.Body, f)

	case *ApiDecl:
		for _, e := range node.Endpoints {
			Inspect(e, f)
		}
	case *EndpointDecl:
		inspectStmts(node.Body, f)
	case *ModelDecl:
		for _, field := range node.Fields {
			Inspect(field, f)
		}
	case *ModelField:
		inspectExpr(node.Default, f)
	case *AuthDecl:
		inspectEntries(node.Entries, f)
	case *RouteDecl:
		for _, e := range node.Entries {
			Inspect(e, f)
		}
	case *RouteEntry:
		Inspect(&node.Target, f)
	case *DeployDecl:
		inspectEntries(node.Entries, f)
	case *FormDecl:
		for _, field := range node.Fields {
			Inspect(field, f)
		}
	case *FormField:
		inspectProps(node.Props, f)
	case *TableDecl:
		inspectExpr(node.Source, f)
		for _, c := range node.Columns {
			Inspect(c, f)
		}
	case *TableColumn:
		inspectProps(node.Props, f)
	case *ChartDecl:
		inspectEntries(node.Entries, f)
	case *NavDecl:
		for _, item := range node.Items {
			Inspect(item, f)
		}
	case *NavItem:
		inspectExpr(node.Label, f)
		Inspect(&node.Target, f)
	case *ThemeDecl:
		inspectEntries(node.Entries, f)
	case *UploadDecl:
		inspectEntries(node.Entries, f)
	case *SocketDecl:
		inspectEntries(node.Entries, f)
	case *TaskDecl:
		inspectStmts(node.Body, f)
	case *SeedDecl:
		for _, row := range node.Rows {
			Inspect(row, f)
		}
	case *ConfigDecl:
		inspectEntries(node.Entries, f)
	case *ConfigEntry:
		inspectExpr(node.Value, f)

	case *Element:
		inspectExpr(node.Content, f)
		inspectProps(node.Props, f)
		for _, h := range node.Events {
			Inspect(h, f)
		}
		for _, child := range node.Children {
			Inspect(child, f)
		}
	case *Prop:
		inspectExpr(node.Value, f)
	case *EventHandler:
		inspectExpr(node.Action, f)
	case *If:
		inspectExpr(node.Cond, f)
		inspectNodes(node.Then, f)
		for _, arm := range node.Elifs {
			Inspect(arm, f)
		}
		inspectNodes(node.Else, f)
	case *ElifBranch:
		inspectExpr(node.Cond, f)
		inspectNodes(node.Body, f)
	case *For:
		inspectExpr(node.Iterable, f)
		inspectNodes(node.Body, f)
	case *Show:
		inspectExpr(node.Cond, f)
		for _, child := range node.Body {
			Inspect(child, f)
		}
	case *Hide:
		inspectExpr(node.Cond, f)
		for _, child := range node.Body {
			Inspect(child, f)
		}

	case *MemberExpr:
		inspectExpr(node.Target, f)
	case *IndexExpr:
		inspectExpr(node.Target, f)
		inspectExpr(node.Index, f)
	case *CallExpr:
		inspectExpr(node.Callee, f)
		for _, arg := range node.Args {
			Inspect(arg, f)
		}
	case *BinaryExpr:
		inspectExpr(node.Left, f)
		inspectExpr(node.Right, f)
	case *UnaryExpr:
		inspectExpr(node.Value, f)
	case *TernaryExpr:
		inspectExpr(node.Cond, f)
		inspectExpr(node.Then, f)
		inspectExpr(node.Else, f)
	case *AssignExpr:
		inspectExpr(node.Target, f)
		inspectExpr(node.Value, f)
	case *ArrowExpr:
		inspectExpr(node.Expr, f)
		inspectStmts(node.Body, f)
	case *ArrayExpr:
		for _, el := range node.Elements {
			Inspect(el, f)
		}
	case *ObjectExpr:
		for _, entry := range node.Entries {
			Inspect(entry, f)
		}
	case *ObjectEntry:
		inspectExpr(node.Value, f)
	case *TemplateExpr:
		for _, part := range node.Parts {
			inspectExpr(part.Expr, f)
		}
	case *AwaitExpr:
		inspectExpr(node.Value, f)
	case *ParenExpr:
		inspectExpr(node.Value, f)

	case *ExprStmt:
		inspectExpr(node.Expr, f)
	case *ReturnStmt:
		inspectExpr(node.Value, f)
	case *LetStmt:
		inspectExpr(node.Value, f)
	}
}

func inspectExpr(e Expr, f func(Node) bool) {
	if e != nil {
		Inspect(e, f)
	}
}

func inspectBody(items []BodyItem, f func(Node) bool) {
	for _, item := range items {
		Inspect(item, f)
	}
}

func inspectStmts(stmts []Stmt, f func(Node) bool) {
	for _, s := range stmts {
		Inspect(s, f)
	}
}

func inspectNodes(nodes []Node, f func(Node) bool) {
	for _, n := range nodes {
		Inspect(n, f)
	}
}

func inspectEntries(entries []*ConfigEntry, f func(Node) bool) {
	for _, e := range entries {
		Inspect(e, f)
	}
}

func inspectProps(props []*Prop, f func(Node) bool) {
	for _, p := range props {
		Inspect(p, f)
	}
}
