package ast

import (
	"iter"
)

// Idx is a byte offset into the parsed source.
type Idx int

// Span is the half-open [Start, End) byte range of a node.
type Span struct {
	Start, End Idx
}

// Loc pairs an item with the source range it was parsed from.
type Loc[T any] struct {
	Start Idx
	End   Idx
	Item  T
}

// Span returns the range of the located item.
func (l *Loc[T]) Span() Span { return Span{Start: l.Start, End: l.End} }

// Node is a handle to a located node. The payload kinds a traversal can
// start from are the ones named by the aliases below; a Node of any other
// payload is visited as a no-op.
// The zero Node is an absent optional child.
type Node[T any] struct {
	ptr Ptr[Loc[T]]
}

// NewNode stores item with its source range in the arena.
func NewNode[T any](a *Arena, start, end Idx, item T) Node[T] {
	return Node[T]{ptr: Alloc(a, Loc[T]{Start: start, End: end, Item: item})}
}

// IsNil reports whether the node is absent.
func (n Node[T]) IsNil() bool { return n.ptr.IsNil() }

// Get returns the located node, or nil if the node is absent.
func (n Node[T]) Get() *Loc[T] { return n.ptr.Get() }

// Item returns the node's payload. It must not be called on an absent node.
func (n Node[T]) Item() T { return n.ptr.Get().Item }

// Span returns the node's source range.
func (n Node[T]) Span() Span { return n.ptr.Get().Span() }

// Equal compares the referenced nodes structurally.
func (n Node[T]) Equal(o Node[T]) bool { return n.ptr.Equal(o.ptr) }

// NodeList is an ordered arena list of nodes of one kind.
type NodeList[T any] struct {
	list List[Node[T]]
}

// AllocNodes stores nodes in the arena as a NodeList.
func AllocNodes[T any](a *Arena, nodes ...Node[T]) NodeList[T] {
	return NodeList[T]{list: AllocList(a, nodes...)}
}

// Len returns the number of nodes.
func (l NodeList[T]) Len() int { return l.list.Len() }

// At returns the i-th node.
func (l NodeList[T]) At(i int) Node[T] { return l.list.At(i) }

// All iterates over the nodes in source order.
func (l NodeList[T]) All() iter.Seq2[int, Node[T]] { return l.list.All() }

// Values iterates over the nodes in source order.
func (l NodeList[T]) Values() iter.Seq[Node[T]] { return l.list.Values() }

// Equal compares two lists node by node.
func (l NodeList[T]) Equal(o NodeList[T]) bool { return l.list.Equal(o.list) }

type (
	ExpressionNode  = Node[Expression]
	StatementNode   = Node[Statement]
	PatternNode     = Node[Pattern]
	PropertyNode    = Node[Property]
	PropertyKeyNode = Node[PropertyKey]
	ClassMemberNode = Node[ClassMember]
	DeclaratorNode  = Node[Declarator]
	SwitchCaseNode  = Node[SwitchCase]

	ExpressionList = NodeList[Expression]
	StatementList  = NodeList[Statement]
	PatternList    = NodeList[Pattern]
	PropertyList   = NodeList[Property]

	// IdentifierNode is a located name that is not itself a traversal root,
	// e.g. the property of a member expression or a declaration's name.
	IdentifierNode = Ptr[Loc[Identifier]]
)

// Module is the root of one parsed source. It owns the arena its nodes
// live in.
type Module struct {
	arena *Arena
	Body  StatementList
}

// NewModule wraps a statement list produced in arena a.
func NewModule(a *Arena, body StatementList) *Module {
	return &Module{arena: a, Body: body}
}

// Arena returns the arena owning the module's nodes.
func (m *Module) Arena() *Arena { return m.arena }

// Release frees the module's arena. The module must not be used afterwards.
func (m *Module) Release() { m.arena.Release() }

// Equal compares the bodies of two modules.
func (m *Module) Equal(o *Module) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.Body.Equal(o.Body)
}
