package ast

// Page represents a routable page container.
// Example: "page Dashboard:" followed by an indented body.
type Page struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Body   []BodyItem
}

// Component represents a reusable UI component container.
type Component struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Body   []BodyItem
}

// App represents the application root container.
type App struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Body   []BodyItem
}

// StateDecl declares a mutable state variable.
// Example: "state count: int = 0"
type StateDecl struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   *TypeRef // nil when inferred
	Value  Expr     // nil when uninitialized
}

// DerivedDecl declares a computed value recalculated from other state.
// Example: "derived doubled = count * 2"
type DerivedDecl struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Value  Expr
}

// PropDecl declares a component input.
// Example: "prop title: string = \"Untitled\""
type PropDecl struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Type    *TypeRef
	Default Expr
}

// FnDecl declares a function, with optional requires/ensures contract
// expressions recorded but not enforced by the front end.
type FnDecl struct {
	Pos      Position
	EndPos   Position
	Name     Ident
	Params   []*Param
	Return   *TypeRef
	Requires []Expr
	Ensures  []Expr
	Body     []Stmt
}

// Param is a function parameter with optional type and default.
type Param struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Type    *TypeRef
	Default Expr
}

// OnMount is the "on mount:" lifecycle hook.
type OnMount struct {
	Pos    Position
	EndPos Position
	Body   []Stmt
}

// OnDestroy is the "on destroy:" lifecycle hook.
type OnDestroy struct {
	Pos    Position
	EndPos Position
	Body   []Stmt
}

// Watch runs its body whenever the target state changes. Inside the body,
// `prev` refers to the value before the change.
type Watch struct {
	Pos    Position
	EndPos Position
	Target Ident
	Body   []Stmt
}

// StyleBlock groups style rules scoped to the enclosing container.
type StyleBlock struct {
	Pos    Position
	EndPos Position
	Rules  []*StyleRule
}

// StyleRule is a selector with its property lines.
// Example: ".title:" with "color: #ff0000" and "size: 2xl" beneath it.
type StyleRule struct {
	Pos      Position
	EndPos   Position
	Selector string
	Props    []*StyleProp
}

// StyleProp is one "name: value" line inside a style rule.
type StyleProp struct {
	Pos    Position
	EndPos Position
	Name   string
	Value  Expr
}

// TypeDecl declares a named record type.
type TypeDecl struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Fields []*TypeField
}

// TypeField is one "name: type" line of a type declaration.
type TypeField struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   *TypeRef
}

// StoreDecl declares a shared store holding state/derived/fn members.
type StoreDecl struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Body   []BodyItem
}

// ApiDecl groups endpoint declarations under a name.
type ApiDecl struct {
	Pos       Position
	EndPos    Position
	Name      Ident
	Endpoints []*EndpointDecl
}

// EndpointDecl is an HTTP handler: method, path, and a statement body.
// Example: "GET \"/users\":" followed by handler statements.
type EndpointDecl struct {
	Pos    Position
	EndPos Position
	Method string
	Path   string
	Body   []Stmt
}

// ModelDecl declares a persisted data model.
type ModelDecl struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Fields []*ModelField
}

// ModelField is one model field line: name, type, attribute words, and an
// optional default.
// Example: "email: string unique required"
type ModelField struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Type    *TypeRef
	Attrs   []Ident
	Default Expr
}

// AuthDecl configures authentication providers and settings.
type AuthDecl struct {
	Pos       Position
	EndPos    Position
	Providers []Ident
	Entries   []*ConfigEntry
}

// RouteDecl maps URL paths to pages.
type RouteDecl struct {
	Pos     Position
	EndPos  Position
	Entries []*RouteEntry
}

// RouteEntry is one "\"/path\": PageName" line.
type RouteEntry struct {
	Pos    Position
	EndPos Position
	Path   string
	Target Ident
}

// DeployDecl configures a deployment target.
// Example: "deploy vercel:" with settings beneath.
type DeployDecl struct {
	Pos      Position
	EndPos   Position
	Provider Ident
	Entries  []*ConfigEntry
}

// FormDecl declares a form bound to a model.
type FormDecl struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Model  Ident // zero Value when unbound
	Fields []*FormField
}

// FormField is one field line of a form declaration.
type FormField struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Props  []*Prop
}

// TableDecl declares a data table view.
type TableDecl struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Source  Expr // nil when the columns carry their own bindings
	Columns []*TableColumn
}

// TableColumn is one column line of a table declaration.
type TableColumn struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Props  []*Prop
}

// ChartDecl declares a chart view configured through entries (kind, source,
// axes).
type ChartDecl struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Entries []*ConfigEntry
}

// NavDecl declares the navigation structure.
type NavDecl struct {
	Pos    Position
	EndPos Position
	Items  []*NavItem
}

// NavItem is one "\"Label\": Target" navigation line.
type NavItem struct {
	Pos    Position
	EndPos Position
	Label  Expr
	Target Ident
}

// ThemeDecl declares a named theme of design-token entries.
type ThemeDecl struct {
	Pos     Position
	EndPos  Position
	Name    Ident // zero Value for the default theme
	Entries []*ConfigEntry
}

// UploadDecl configures a file upload target.
type UploadDecl struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Entries []*ConfigEntry
}

// SocketDecl configures a realtime channel.
type SocketDecl struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Entries []*ConfigEntry
}

// TaskDecl declares a scheduled background task.
type TaskDecl struct {
	Pos      Position
	EndPos   Position
	Name     Ident
	Schedule string // cron expression, empty when run-on-demand
	Body     []Stmt
}

// SeedDecl provides initial rows for a model.
type SeedDecl struct {
	Pos    Position
	EndPos Position
	Model  Ident
	Rows   []Expr
}

// ConfigDecl holds free-form application settings.
type ConfigDecl struct {
	Pos     Position
	EndPos  Position
	Entries []*ConfigEntry
}

// ConfigEntry is one "name: value" settings line.
type ConfigEntry struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Value  Expr
}

func (p *Page) NodePos() Position    { return p.Pos }
func (p *Page) NodeEndPos() Position { return p.EndPos }
func (*Page) NodeType() NodeType     { return PAGE }

func (c *Component) NodePos() Position    { return c.Pos }
func (c *Component) NodeEndPos() Position { return c.EndPos }
func (*Component) NodeType() NodeType     { return COMPONENT }

func (a *App) NodePos() Position    { return a.Pos }
func (a *App) NodeEndPos() Position { return a.EndPos }
func (*App) NodeType() NodeType     { return APP }

func (s *StateDecl) NodePos() Position    { return s.Pos }
func (s *StateDecl) NodeEndPos() Position { return s.EndPos }
func (*StateDecl) NodeType() NodeType     { return STATE_DECL }

func (d *DerivedDecl) NodePos() Position    { return d.Pos }
func (d *DerivedDecl) NodeEndPos() Position { return d.EndPos }
func (*DerivedDecl) NodeType() NodeType     { return DERIVED_DECL }

func (p *PropDecl) NodePos() Position    { return p.Pos }
func (p *PropDecl) NodeEndPos() Position { return p.EndPos }
func (*PropDecl) NodeType() NodeType     { return PROP_DECL }

func (f *FnDecl) NodePos() Position    { return f.Pos }
func (f *FnDecl) NodeEndPos() Position { return f.EndPos }
func (*FnDecl) NodeType() NodeType     { return FN_DECL }

func (p *Param) NodePos() Position    { return p.Pos }
func (p *Param) NodeEndPos() Position { return p.EndPos }
func (*Param) NodeType() NodeType     { return PARAM }

func (o *OnMount) NodePos() Position    { return o.Pos }
func (o *OnMount) NodeEndPos() Position { return o.EndPos }
func (*OnMount) NodeType() NodeType     { return ON_MOUNT }

func (o *OnDestroy) NodePos() Position    { return o.Pos }
func (o *OnDestroy) NodeEndPos() Position { return o.EndPos }
func (*OnDestroy) NodeType() NodeType     { return ON_DESTROY }

func (w *Watch) NodePos() Position    { return w.Pos }
func (w *Watch) NodeEndPos() Position { return w.EndPos }
func (*Watch) NodeType() NodeType     { return WATCH }

func (s *StyleBlock) NodePos() Position    { return s.Pos }
func (s *StyleBlock) NodeEndPos() Position { return s.EndPos }
func (*StyleBlock) NodeType() NodeType     { return STYLE_BLOCK }

func (r *StyleRule) NodePos() Position    { return r.Pos }
func (r *StyleRule) NodeEndPos() Position { return r.EndPos }
func (*StyleRule) NodeType() NodeType     { return STYLE_RULE }

func (p *StyleProp) NodePos() Position    { return p.Pos }
func (p *StyleProp) NodeEndPos() Position { return p.EndPos }
func (*StyleProp) NodeType() NodeType     { return STYLE_PROP }

func (t *TypeDecl) NodePos() Position    { return t.Pos }
func (t *TypeDecl) NodeEndPos() Position { return t.EndPos }
func (*TypeDecl) NodeType() NodeType     { return TYPE_DECL }

func (t *TypeField) NodePos() Position    { return t.Pos }
func (t *TypeField) NodeEndPos() Position { return t.EndPos }
func (*TypeField) NodeType() NodeType     { return TYPE_FIELD }

func (s *StoreDecl) NodePos() Position    { return s.Pos }
func (s *StoreDecl) NodeEndPos() Position { return s.EndPos }
func (*StoreDecl) NodeType() NodeType     { return STORE_DECL }

func (a *ApiDecl) NodePos() Position    { return a.Pos }
func (a *ApiDecl) NodeEndPos() Position { return a.EndPos }
func (*ApiDecl) NodeType() NodeType     { return API_DECL }

func (e *EndpointDecl) NodePos() Position    { return e.Pos }
func (e *EndpointDecl) NodeEndPos() Position { return e.EndPos }
func (*EndpointDecl) NodeType() NodeType     { return ENDPOINT_DECL }

func (m *ModelDecl) NodePos() Position    { return m.Pos }
func (m *ModelDecl) NodeEndPos() Position { return m.EndPos }
func (*ModelDecl) NodeType() NodeType     { return MODEL_DECL }

func (m *ModelField) NodePos() Position    { return m.Pos }
func (m *ModelField) NodeEndPos() Position { return m.EndPos }
func (*ModelField) NodeType() NodeType     { return MODEL_FIELD }

func (a *AuthDecl) NodePos() Position    { return a.Pos }
func (a *AuthDecl) NodeEndPos() Position { return a.EndPos }
func (*AuthDecl) NodeType() NodeType     { return AUTH_DECL }

func (r *RouteDecl) NodePos() Position    { return r.Pos }
func (r *RouteDecl) NodeEndPos() Position { return r.EndPos }
func (*RouteDecl) NodeType() NodeType     { return ROUTE_DECL }

func (r *RouteEntry) NodePos() Position    { return r.Pos }
func (r *RouteEntry) NodeEndPos() Position { return r.EndPos }
func (*RouteEntry) NodeType() NodeType     { return ROUTE_ENTRY }

func (d *DeployDecl) NodePos() Position    { return d.Pos }
func (d *DeployDecl) NodeEndPos() Position { return d.EndPos }
func (*DeployDecl) NodeType() NodeType     { return DEPLOY_DECL }

func (f *FormDecl) NodePos() Position    { return f.Pos }
func (f *FormDecl) NodeEndPos() Position { return f.EndPos }
func (*FormDecl) NodeType() NodeType     { return FORM_DECL }

func (f *FormField) NodePos() Position    { return f.Pos }
func (f *FormField) NodeEndPos() Position { return f.EndPos }
func (*FormField) NodeType() NodeType     { return FORM_FIELD }

func (t *TableDecl) NodePos() Position    { return t.Pos }
func (t *TableDecl) NodeEndPos() Position { return t.EndPos }
func (*TableDecl) NodeType() NodeType     { return TABLE_DECL }

func (t *TableColumn) NodePos() Position    { return t.Pos }
func (t *TableColumn) NodeEndPos() Position { return t.EndPos }
func (*TableColumn) NodeType() NodeType     { return TABLE_COLUMN }

func (c *ChartDecl) NodePos() Position    { return c.Pos }
func (c *ChartDecl) NodeEndPos() Position { return c.EndPos }
func (*ChartDecl) NodeType() NodeType     { return CHART_DECL }

func (n *NavDecl) NodePos() Position    { return n.Pos }
func (n *NavDecl) NodeEndPos() Position { return n.EndPos }
func (*NavDecl) NodeType() NodeType     { return NAV_DECL }

func (n *NavItem) NodePos() Position    { return n.Pos }
func (n *NavItem) NodeEndPos() Position { return n.EndPos }
func (*NavItem) NodeType() NodeType     { return NAV_ITEM }

func (t *ThemeDecl) NodePos() Position    { return t.Pos }
func (t *ThemeDecl) NodeEndPos() Position { return t.EndPos }
func (*ThemeDecl) NodeType() NodeType     { return THEME_DECL }

func (u *UploadDecl) NodePos() Position    { return u.Pos }
func (u *UploadDecl) NodeEndPos() Position { return u.EndPos }
func (*UploadDecl) NodeType() NodeType     { return UPLOAD_DECL }

func (s *SocketDecl) NodePos() Position    { return s.Pos }
func (s *SocketDecl) NodeEndPos() Position { return s.EndPos }
func (*SocketDecl) NodeType() NodeType     { return SOCKET_DECL }

func (t *TaskDecl) NodePos() Position    { return t.Pos }
func (t *TaskDecl) NodeEndPos() Position { return t.EndPos }
func (*TaskDecl) NodeType() NodeType     { return TASK_DECL }

func (s *SeedDecl) NodePos() Position    { return s.Pos }
func (s *SeedDecl) NodeEndPos() Position { return s.EndPos }
func (*SeedDecl) NodeType() NodeType     { return SEED_DECL }

func (c *ConfigDecl) NodePos() Position    { return c.Pos }
func (c *ConfigDecl) NodeEndPos() Position { return c.EndPos }
func (*ConfigDecl) NodeType() NodeType     { return CONFIG_DECL }

func (c *ConfigEntry) NodePos() Position    { return c.Pos }
func (c *ConfigEntry) NodeEndPos() Position { return c.EndPos }
func (*ConfigEntry) NodeType() NodeType     { return CONFIG_ENTRY }
