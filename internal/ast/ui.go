package ast

// Element is a concrete UI node, discriminated by Kind. The kind set is
// closed; ElementKinds co-locates each kind's shape so parser dispatch and
// generator dispatch share one table.
type Element struct {
	Pos      Position
	EndPos   Position
	Kind     string
	Content  Expr // primary content: text label, image source, link target
	Classes  []string
	Props    []*Prop
	Events   []*EventHandler
	Children []UINode
}

// Prop is a "name: value" attribute on a UI element.
type Prop struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Value  Expr
}

// EventHandler binds an "@event: action" pair on a UI element.
type EventHandler struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Action Expr
}

// If is the structural conditional. It appears in both the UI grammar and
// the statement grammar; Body/Else slices hold UINode or Stmt values
// accordingly.
type If struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   []Node
	Elifs  []*ElifBranch
	Else   []Node
}

// ElifBranch is one "elif cond:" arm of an If.
type ElifBranch struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   []Node
}

// For is the structural loop: "for item in items:" or
// "for item, index in items:". Shared between UI and statement grammars
// like If.
type For struct {
	Pos      Position
	EndPos   Position
	Item     Ident
	Index    *Ident // nil without the ", index" form
	Iterable Expr
	Body     []Node
}

// Show renders its children only while the condition holds.
type Show struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   []UINode
}

// Hide is the negated counterpart of Show.
type Hide struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   []UINode
}

func (e *Element) NodePos() Position    { return e.Pos }
func (e *Element) NodeEndPos() Position { return e.EndPos }
func (*Element) NodeType() NodeType     { return ELEMENT }

func (p *Prop) NodePos() Position    { return p.Pos }
func (p *Prop) NodeEndPos() Position { return p.EndPos }
func (*Prop) NodeType() NodeType     { return PROP }

func (h *EventHandler) NodePos() Position    { return h.Pos }
func (h *EventHandler) NodeEndPos() Position { return h.EndPos }
func (*EventHandler) NodeType() NodeType     { return EVENT_HANDLER }

func (i *If) NodePos() Position    { return i.Pos }
func (i *If) NodeEndPos() Position { return i.EndPos }
func (*If) NodeType() NodeType     { return IF_NODE }

func (e *ElifBranch) NodePos() Position    { return e.Pos }
func (e *ElifBranch) NodeEndPos() Position { return e.EndPos }
func (*ElifBranch) NodeType() NodeType     { return ELIF_BRANCH }

func (f *For) NodePos() Position    { return f.Pos }
func (f *For) NodeEndPos() Position { return f.EndPos }
func (*For) NodeType() NodeType     { return FOR_NODE }

func (s *Show) NodePos() Position    { return s.Pos }
func (s *Show) NodeEndPos() Position { return s.EndPos }
func (*Show) NodeType() NodeType     { return SHOW_NODE }

func (h *Hide) NodePos() Position    { return h.Pos }
func (h *Hide) NodeEndPos() Position { return h.EndPos }
func (*Hide) NodeType() NodeType     { return HIDE_NODE }

// ElementSpec describes the shape of one element kind.
type ElementSpec struct {
	Container  bool // may take an indented block of children
	HasContent bool // takes a leading content expression
}

// ElementKinds is the closed registry of UI element kinds. Adding a kind
// means adding one entry here; the lexer keyword set and the generators key
// off the same names.
var ElementKinds = map[string]ElementSpec{
	"layout": {Container: true},
	"row":    {Container: true},
	"column": {Container: true},
	"grid":   {Container: true},
	"stack":  {Container: true},
	"card":   {Container: true},
	"modal":  {Container: true},
	"header": {Container: true},
	"footer": {Container: true},
	"list":   {Container: true},
	"tabs":   {Container: true},
	"tab":    {Container: true, HasContent: true},

	"text":     {HasContent: true},
	"button":   {HasContent: true},
	"input":    {},
	"image":    {HasContent: true},
	"link":     {HasContent: true},
	"toggle":   {},
	"select":   {},
	"checkbox": {HasContent: true},
	"slider":   {},
	"video":    {HasContent: true},
	"divider":  {},
	"spacer":   {},
	"badge":    {HasContent: true},
	"avatar":   {HasContent: true},
	"progress": {},
}
