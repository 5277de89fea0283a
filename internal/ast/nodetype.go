package ast

// NodeType discriminates the closed node union. Downstream consumers switch
// exhaustively over it; adding a constant here without teaching every
// consumer about it is a bug, not an extension point.
type NodeType int

const (
	ILLEGAL NodeType = iota

	// Shared
	IDENT
	TYPE_REF

	// Containers
	PAGE
	COMPONENT
	APP

	// Body declarations
	STATE_DECL
	DERIVED_DECL
	PROP_DECL
	FN_DECL
	PARAM
	ON_MOUNT
	ON_DESTROY
	WATCH
	STYLE_BLOCK
	STYLE_RULE
	STYLE_PROP
	TYPE_DECL
	TYPE_FIELD
	STORE_DECL

	// Domain declarations
	API_DECL
	ENDPOINT_DECL
	MODEL_DECL
	MODEL_FIELD
	AUTH_DECL
	ROUTE_DECL
	ROUTE_ENTRY
	DEPLOY_DECL
	FORM_DECL
	FORM_FIELD
	TABLE_DECL
	TABLE_COLUMN
	CHART_DECL
	NAV_DECL
	NAV_ITEM
	THEME_DECL
	UPLOAD_DECL
	SOCKET_DECL
	TASK_DECL
	SEED_DECL
	CONFIG_DECL
	CONFIG_ENTRY

	// UI
	ELEMENT
	PROP
	EVENT_HANDLER
	IF_NODE
	ELIF_BRANCH
	FOR_NODE
	SHOW_NODE
	HIDE_NODE

	// Expressions
	LITERAL_EXPR
	IDENT_EXPR
	MEMBER_EXPR
	INDEX_EXPR
	CALL_EXPR
	BINARY_EXPR
	UNARY_EXPR
	TERNARY_EXPR
	ASSIGN_EXPR
	ARROW_EXPR
	ARRAY_EXPR
	OBJECT_EXPR
	OBJECT_ENTRY
	TEMPLATE_EXPR
	AWAIT_EXPR
	PREV_EXPR
	PAREN_EXPR

	// Statements
	EXPR_STMT
	RETURN_STMT
	LET_STMT
)

var nodeTypeNames = [...]string{
	ILLEGAL:       "ILLEGAL",
	IDENT:         "IDENT",
	TYPE_REF:      "TYPE_REF",
	PAGE:          "PAGE",
	COMPONENT:     "COMPONENT",
	APP:           "APP",
	STATE_DECL:    "STATE_DECL",
	DERIVED_DECL:  "DERIVED_DECL",
	PROP_DECL:     "PROP_DECL",
	FN_DECL:       "FN_DECL",
	PARAM:         "PARAM",
	ON_MOUNT:      "ON_MOUNT",
	ON_DESTROY:    "ON_DESTROY",
	WATCH:         "WATCH",
	STYLE_BLOCK:   "STYLE_BLOCK",
	STYLE_RULE:    "STYLE_RULE",
	STYLE_PROP:    "STYLE_PROP",
	TYPE_DECL:     "TYPE_DECL",
	TYPE_FIELD:    "TYPE_FIELD",
	STORE_DECL:    "STORE_DECL",
	API_DECL:      "API_DECL",
	ENDPOINT_DECL: "ENDPOINT_DECL",
	MODEL_DECL:    "MODEL_DECL",
	MODEL_FIELD:   "MODEL_FIELD",
	AUTH_DECL:     "AUTH_DECL",
	ROUTE_DECL:    "ROUTE_DECL",
	ROUTE_ENTRY:   "ROUTE_ENTRY",
	DEPLOY_DECL:   "DEPLOY_DECL",
	FORM_DECL:     "FORM_DECL",
	FORM_FIELD:    "FORM_FIELD",
	TABLE_DECL:    "TABLE_DECL",
	TABLE_COLUMN:  "TABLE_COLUMN",
	CHART_DECL:    "CHART_DECL",
	NAV_DECL:      "NAV_DECL",
	NAV_ITEM:      "NAV_ITEM",
	THEME_DECL:    "THEME_DECL",
	UPLOAD_DECL:   "UPLOAD_DECL",
	SOCKET_DECL:   "SOCKET_DECL",
	TASK_DECL:     "TASK_DECL",
	SEED_DECL:     "SEED_DECL",
	CONFIG_DECL:   "CONFIG_DECL",
	CONFIG_ENTRY:  "CONFIG_ENTRY",
	ELEMENT:       "ELEMENT",
	PROP:          "PROP",
	EVENT_HANDLER: "EVENT_HANDLER",
	IF_NODE:       "IF_NODE",
	ELIF_BRANCH:   "ELIF_BRANCH",
	FOR_NODE:      "FOR_NODE",
	SHOW_NODE:     "SHOW_NODE",
	HIDE_NODE:     "HIDE_NODE",
	LITERAL_EXPR:  "LITERAL_EXPR",
	IDENT_EXPR:    "IDENT_EXPR",
	MEMBER_EXPR:   "MEMBER_EXPR",
	INDEX_EXPR:    "INDEX_EXPR",
	CALL_EXPR:     "CALL_EXPR",
	BINARY_EXPR:   "BINARY_EXPR",
	UNARY_EXPR:    "UNARY_EXPR",
	TERNARY_EXPR:  "TERNARY_EXPR",
	ASSIGN_EXPR:   "ASSIGN_EXPR",
	ARROW_EXPR:    "ARROW_EXPR",
	ARRAY_EXPR:    "ARRAY_EXPR",
	OBJECT_EXPR:   "OBJECT_EXPR",
	OBJECT_ENTRY:  "OBJECT_ENTRY",
	TEMPLATE_EXPR: "TEMPLATE_EXPR",
	AWAIT_EXPR:    "AWAIT_EXPR",
	PREV_EXPR:     "PREV_EXPR",
	PAREN_EXPR:    "PAREN_EXPR",
	EXPR_STMT:     "EXPR_STMT",
	RETURN_STMT:   "RETURN_STMT",
	LET_STMT:      "LET_STMT",
}

func (nt NodeType) String() string {
	if int(nt) < len(nodeTypeNames) && nodeTypeNames[nt] != "" {
		return nodeTypeNames[nt]
	}
	return "ILLEGAL"
}
