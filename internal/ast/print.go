package ast

import (
	"fmt"
	"strings"
)

// Dump renders the tree as an indented outline, one node per line with its
// kind, a short identity and source position. Intended for CLI inspection,
// not machine consumption.
func Dump(nodes []Node) string {
	var out strings.Builder
	for _, node := range nodes {
		dumpNode(&out, node)
	}
	return out.String()
}

func dumpNode(out *strings.Builder, root Node) {
	// Depth comes from a position stack: a node past its parent's end has
	// left that parent's subtree.
	var stack []Node
	Inspect(root, func(n Node) bool {
		for len(stack) > 0 && !within(n, stack[len(stack)-1]) {
			stack = stack[:len(stack)-1]
		}
		pos := n.NodePos()
		fmt.Fprintf(out, "%s%s%s (%d:%d)\n",
			strings.Repeat("  ", len(stack)), n.NodeType(), identity(n), pos.Line, pos.Column)
		stack = append(stack, n)
		return true
	})
}

func within(n, parent Node) bool {
	pos, end := n.NodePos(), parent.NodeEndPos()
	if pos.Line != end.Line {
		return pos.Line < end.Line
	}
	return pos.Column <= end.Column
}

func identity(n Node) string {
	var name string
	switch node := n.(type) {
	case *Ident:
		name = node.Value
	case *Page:
		name = node.Name.Value
	case *Component:
		name = node.Name.Value
	case *App:
		name = node.Name.Value
	case *StateDecl:
		name = node.Name.Value
	case *DerivedDecl:
		name = node.Name.Value
	case *PropDecl:
		name = node.Name.Value
	case *FnDecl:
		name = node.Name.Value
	case *Param:
		name = node.Name.Value
	case *Watch:
		name = node.Target.Value
	case *TypeDecl:
		name = node.Name.Value
	case *TypeField:
		name = node.Name.Value
	case *StoreDecl:
		name = node.Name.Value
	case *ApiDecl:
		name = node.Name.Value
	case *EndpointDecl:
		name = node.Method + " " + node.Path
	case *ModelDecl:
		name = node.Name.Value
	case *ModelField:
		name = node.Name.Value
	case *TypeRef:
		name = node.Name.Value
	case *StyleRule:
		name = node.Selector
	case *StyleProp:
		name = node.Name
	case *Element:
		name = node.Kind
	case *Prop:
		name = node.Name.Value
	case *EventHandler:
		name = "@" + node.Name.Value
	case *For:
		name = node.Item.Value
	case *Literal:
		name = node.Value
	case *IdentExpr:
		name = node.Name
	case *MemberExpr:
		name = "." + node.Field.Value
	case *BinaryExpr:
		name = node.Op
	case *UnaryExpr:
		name = node.Op
	case *AssignExpr:
		name = node.Op
	case *LetStmt:
		name = node.Name.Value
	case *ConfigEntry:
		name = node.Name.Value
	case *FormDecl:
		name = node.Name.Value
	case *TableDecl:
		name = node.Name.Value
	case *ChartDecl:
		name = node.Name.Value
	case *ThemeDecl:
		name = node.Name.Value
	case *UploadDecl:
		name = node.Name.Value
	case *SocketDecl:
		name = node.Name.Value
	case *TaskDecl:
		name = node.Name.Value
	case *SeedDecl:
		name = node.Model.Value
	case *RouteEntry:
		name = node.Path
	}
	if name == "" {
		return ""
	}
	return " " + name
}
