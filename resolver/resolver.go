package resolver

import (
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-ratel/ast"
)

// Use is a reference to a name and the scope it resolved to.
type Use struct {
	Name ast.Identifier
	Span ast.Span
	// Scope is where the use appears.
	Scope *Scope
	// Binding is the declaring scope, nil for unresolved (global) names.
	Binding *Scope
}

// Mark returns the binding scope's mark or UnresolvedMark.
func (u Use) Mark() Mark {
	if u.Binding == nil {
		return UnresolvedMark
	}
	return u.Binding.mark
}

// Resolution is the scope tree of a traversal with every use bound.
type Resolution struct {
	Module *Scope
	Uses   []Use

	scopes []*Scope
}

// Scopes returns every scope in creation order; Scopes()[0] is the module.
func (r *Resolution) Scopes() []*Scope { return r.scopes }

// Unresolved returns the sorted set of names used but never declared.
func (r *Resolution) Unresolved() []ast.Identifier {
	var names []ast.Identifier
	for _, u := range r.Uses {
		if u.Binding == nil {
			names = append(names, u.Name)
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Resolve walks n, builds its scope tree and binds every use to the nearest
// enclosing scope declaring the name. Binding happens after the whole walk,
// so uses before a hoisted declaration resolve too.
func Resolve(n ast.Visitable) *Resolution {
	st := &state{declKinds: []DeclKind{DeclKindLexical}}
	st.pushScope(ast.ScopeFunction)

	ast.Traverse(n, resolver{}, st)

	res := &Resolution{Module: st.scopes[0], scopes: st.scopes}
	res.Uses = make([]Use, len(st.pending))
	for i, p := range st.pending {
		res.Uses[i] = Use{Name: p.name, Span: p.span, Scope: p.scope, Binding: p.scope.Lookup(p.name)}
	}
	return res
}

type pendingUse struct {
	name  ast.Identifier
	span  ast.Span
	scope *Scope
}

type state struct {
	current *Scope
	scopes  []*Scope

	// declKinds holds the kind of the declaration being walked, one entry
	// per open scope.
	declKinds []DeclKind
	pending   []pendingUse
}

func (st *state) pushScope(kind ast.ScopeKind) {
	st.current = newScope(st.current, kind, TopLevelMark+Mark(len(st.scopes)))
	st.scopes = append(st.scopes, st.current)
}

func (st *state) popScope() {
	if st.current.parent != nil {
		st.current = st.current.parent
	}
}

func (st *state) setDeclKind(kind DeclKind) {
	st.declKinds[len(st.declKinds)-1] = kind
}

type resolver struct {
	ast.NoopVisitor[state]
}

func (resolver) OnEnterScope(kind ast.ScopeKind, st *state) {
	st.pushScope(kind)
	st.declKinds = append(st.declKinds, DeclKindLexical)
}

func (resolver) OnLeaveScope(st *state) {
	st.popScope()
	st.declKinds = st.declKinds[:len(st.declKinds)-1]
}

func (resolver) OnDeclarationStatement(n *ast.DeclarationStatement, _ ast.Span, st *state) {
	if n.Kind == ast.DeclarationVar {
		st.setDeclKind(DeclKindVar)
	} else {
		st.setDeclKind(DeclKindLexical)
	}
}

func (resolver) OnFunctionStatement(_ *ast.FunctionStatement, _ ast.Span, st *state) {
	st.setDeclKind(DeclKindLexical)
}

func (resolver) OnClassStatement(_ *ast.ClassStatement, _ ast.Span, st *state) {
	st.setDeclKind(DeclKindLexical)
}

func (resolver) OnReferenceDeclaration(name ast.Identifier, span ast.Span, st *state) {
	st.current.declare(name, span, st.declKinds[len(st.declKinds)-1])
}

func (resolver) OnReferenceUse(name ast.Identifier, span ast.Span, st *state) {
	st.pending = append(st.pending, pendingUse{name: name, span: span, scope: st.current})
}
