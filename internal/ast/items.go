package ast

// Top-level declarations.

func (*Page) isDecl()         {}
func (*Component) isDecl()    {}
func (*App) isDecl()          {}
func (*ModelDecl) isDecl()    {}
func (*AuthDecl) isDecl()     {}
func (*RouteDecl) isDecl()    {}
func (*DeployDecl) isDecl()   {}
func (*EndpointDecl) isDecl() {}
func (*ApiDecl) isDecl()      {}
func (*StoreDecl) isDecl()    {}
func (*TypeDecl) isDecl()     {}
func (*FormDecl) isDecl()     {}
func (*TableDecl) isDecl()    {}
func (*ChartDecl) isDecl()    {}
func (*NavDecl) isDecl()      {}
func (*ThemeDecl) isDecl()    {}
func (*UploadDecl) isDecl()   {}
func (*SocketDecl) isDecl()   {}
func (*TaskDecl) isDecl()     {}
func (*SeedDecl) isDecl()     {}
func (*ConfigDecl) isDecl()   {}

// Container body items. UI nodes join through their own marker below.

func (*StateDecl) isBodyItem()   {}
func (*DerivedDecl) isBodyItem() {}
func (*PropDecl) isBodyItem()    {}
func (*FnDecl) isBodyItem()      {}
func (*OnMount) isBodyItem()     {}
func (*OnDestroy) isBodyItem()   {}
func (*Watch) isBodyItem()       {}
func (*StyleBlock) isBodyItem()  {}
func (*TypeDecl) isBodyItem()    {}
func (*StoreDecl) isBodyItem()   {}
func (*ApiDecl) isBodyItem()     {}
func (*ModelDecl) isBodyItem()   {}
func (*FormDecl) isBodyItem()    {}
func (*TableDecl) isBodyItem()   {}
func (*ChartDecl) isBodyItem()   {}
func (*NavDecl) isBodyItem()     {}

func (*Element) isBodyItem() {}
func (*If) isBodyItem()      {}
func (*For) isBodyItem()     {}
func (*Show) isBodyItem()    {}
func (*Hide) isBodyItem()    {}

// UI tree nodes.

func (*Element) isUINode() {}
func (*If) isUINode()      {}
func (*For) isUINode()     {}
func (*Show) isUINode()    {}
func (*Hide) isUINode()    {}

// Expressions.

func (*Literal) isExpr()      {}
func (*IdentExpr) isExpr()    {}
func (*MemberExpr) isExpr()   {}
func (*IndexExpr) isExpr()    {}
func (*CallExpr) isExpr()     {}
func (*BinaryExpr) isExpr()   {}
func (*UnaryExpr) isExpr()    {}
func (*TernaryExpr) isExpr()  {}
func (*AssignExpr) isExpr()   {}
func (*ArrowExpr) isExpr()    {}
func (*ArrayExpr) isExpr()    {}
func (*ObjectExpr) isExpr()   {}
func (*TemplateExpr) isExpr() {}
func (*AwaitExpr) isExpr()    {}
func (*PrevExpr) isExpr()     {}
func (*ParenExpr) isExpr()    {}

// Statements. If and For are shared with the UI grammar so both stay in
// lockstep by construction.

func (*ExprStmt) isStmt()   {}
func (*ReturnStmt) isStmt() {}
func (*LetStmt) isStmt()    {}
func (*If) isStmt()         {}
func (*For) isStmt()        {}
