package resolver

import "github.com/t14raptor/go-ratel/ast"

// Reference is a use or declaration of a name, tagged with the scope depth
// active when it was seen. The module body is depth 0.
type Reference struct {
	Name  ast.Identifier
	Depth int
	Span  ast.Span
}

// Events is the context Tracker fills during a traversal.
type Events struct {
	Depth    int
	MaxDepth int

	// Scopes lists every scope entered, in traversal order.
	Scopes       []ast.ScopeKind
	Uses         []Reference
	Declarations []Reference
}

// Tracker records scope nesting and name references. It is usable as a
// static visitor and, through Register, as part of a dynamic one.
type Tracker struct {
	ast.NoopVisitor[Events]
}

// Track walks n and returns what Tracker recorded.
func Track(n ast.Visitable) *Events {
	ev := &Events{}
	ast.Traverse(n, Tracker{}, ev)
	return ev
}

func (Tracker) OnEnterScope(kind ast.ScopeKind, ev *Events) {
	ev.Scopes = append(ev.Scopes, kind)
	ev.Depth++
	ev.MaxDepth = max(ev.MaxDepth, ev.Depth)
}

func (Tracker) OnLeaveScope(ev *Events) {
	ev.Depth--
}

func (Tracker) OnReferenceUse(name ast.Identifier, span ast.Span, ev *Events) {
	ev.Uses = append(ev.Uses, Reference{Name: name, Depth: ev.Depth, Span: span})
}

func (Tracker) OnReferenceDeclaration(name ast.Identifier, span ast.Span, ev *Events) {
	ev.Declarations = append(ev.Declarations, Reference{Name: name, Depth: ev.Depth, Span: span})
}

// Register adds the tracker's callbacks to d.
func (t Tracker) Register(d *ast.DynamicVisitor[Events]) {
	d.HandleEnterScope(t.OnEnterScope)
	d.HandleLeaveScope(t.OnLeaveScope)
	d.HandleReferenceUse(t.OnReferenceUse)
	d.HandleReferenceDeclaration(t.OnReferenceDeclaration)
}
