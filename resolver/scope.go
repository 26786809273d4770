package resolver

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-ratel/ast"
)

// Mark identifies a scope within one Resolution.
type Mark int

const (
	UnresolvedMark Mark = 0
	TopLevelMark   Mark = 1
)

type DeclKind int

const (
	// DeclKindLexical binds in the scope it appears in: let, const,
	// parameters, catch parameters, function and class declarations.
	DeclKindLexical DeclKind = iota
	// DeclKindVar binds in the nearest function scope.
	DeclKindVar
)

type Scope struct {
	parent *Scope

	kind  ast.ScopeKind
	mark  Mark
	depth int

	declared map[ast.Identifier]ast.Span
	children []*Scope
}

func newScope(parent *Scope, kind ast.ScopeKind, mark Mark) *Scope {
	s := &Scope{
		parent:   parent,
		kind:     kind,
		mark:     mark,
		declared: make(map[ast.Identifier]ast.Span),
	}
	if parent != nil {
		s.depth = parent.depth + 1
		parent.children = append(parent.children, s)
	}
	return s
}

// Parent returns the enclosing scope, or nil for the module scope.
func (s *Scope) Parent() *Scope { return s.parent }

// Kind returns the scope kind. The module scope reports ScopeFunction.
func (s *Scope) Kind() ast.ScopeKind { return s.kind }

func (s *Scope) Mark() Mark { return s.mark }

// Depth is 0 for the module scope.
func (s *Scope) Depth() int { return s.depth }

func (s *Scope) Children() []*Scope { return s.children }

// Declares reports whether name is declared directly in s and where.
func (s *Scope) Declares(name ast.Identifier) (ast.Span, bool) {
	span, ok := s.declared[name]
	return span, ok
}

// Names returns the names declared directly in s, sorted.
func (s *Scope) Names() []ast.Identifier {
	names := maps.Keys(s.declared)
	slices.Sort(names)
	return names
}

// Lookup returns the nearest scope, starting at s, that declares name.
func (s *Scope) Lookup(name ast.Identifier) *Scope {
	for scope := s; scope != nil; scope = scope.parent {
		if _, exists := scope.declared[name]; exists {
			return scope
		}
	}
	return nil
}

func (s *Scope) declare(name ast.Identifier, span ast.Span, kind DeclKind) {
	target := s
	if kind == DeclKindVar {
		for target.kind != ast.ScopeFunction && target.parent != nil {
			target = target.parent
		}
	}
	if _, exists := target.declared[name]; !exists {
		target.declared[name] = span
	}
}
