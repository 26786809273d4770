// Package graph holds a small directed graph keyed by comparable node
// values, with the reachability and component queries the linter needs.
package graph

import (
	"iter"
	"slices"
)

// Direction selects which edges of a node to follow.
type Direction int

const (
	Incoming Direction = iota
	Outgoing
)

type edge[N comparable] struct {
	to        N
	direction Direction
}

type edgeKey[N comparable] struct {
	from, to N
}

// Directed is a directed graph with edge weights of type E. Nodes are
// iterated in insertion order so that results built from a graph are
// stable from run to run.
type Directed[N comparable, E any] struct {
	order []N
	nodes map[N][]edge[N]
	edges map[edgeKey[N]]E
}

func New[N comparable, E any]() *Directed[N, E] {
	return &Directed[N, E]{
		nodes: make(map[N][]edge[N]),
		edges: make(map[edgeKey[N]]E),
	}
}

// AddNode adds node unless it is already present.
func (g *Directed[N, E]) AddNode(node N) {
	if _, ok := g.nodes[node]; ok {
		return
	}
	g.nodes[node] = nil
	g.order = append(g.order, node)
}

// Contains reports whether node is in the graph.
func (g *Directed[N, E]) Contains(node N) bool {
	_, ok := g.nodes[node]
	return ok
}

// Len is the number of nodes.
func (g *Directed[N, E]) Len() int { return len(g.order) }

// RemoveNode removes node along with every edge touching it.
func (g *Directed[N, E]) RemoveNode(node N) {
	links, ok := g.nodes[node]
	if !ok {
		return
	}
	for _, l := range links {
		if l.direction == Outgoing {
			g.unlink(l.to, node, Incoming)
			delete(g.edges, edgeKey[N]{node, l.to})
		} else {
			g.unlink(l.to, node, Outgoing)
			delete(g.edges, edgeKey[N]{l.to, node})
		}
	}
	delete(g.nodes, node)
	g.order = slices.DeleteFunc(g.order, func(n N) bool { return n == node })
}

// AddEdge connects from to to, adding either node if needed. Adding an
// existing edge replaces its weight.
func (g *Directed[N, E]) AddEdge(from, to N, weight E) {
	g.AddNode(from)
	g.AddNode(to)
	key := edgeKey[N]{from, to}
	if _, ok := g.edges[key]; !ok {
		g.nodes[from] = append(g.nodes[from], edge[N]{to, Outgoing})
		if from != to {
			g.nodes[to] = append(g.nodes[to], edge[N]{from, Incoming})
		}
	}
	g.edges[key] = weight
}

// RemoveEdge removes the edge from from to to, if any.
func (g *Directed[N, E]) RemoveEdge(from, to N) {
	key := edgeKey[N]{from, to}
	if _, ok := g.edges[key]; !ok {
		return
	}
	g.unlink(from, to, Outgoing)
	if from != to {
		g.unlink(to, from, Incoming)
	}
	delete(g.edges, key)
}

func (g *Directed[N, E]) unlink(from, to N, direction Direction) {
	links := g.nodes[from]
	i := slices.IndexFunc(links, func(e edge[N]) bool {
		return e.to == to && e.direction == direction
	})
	if i >= 0 {
		g.nodes[from] = slices.Delete(links, i, i+1)
	}
}

// EdgeWeight returns the weight of the edge from from to to.
func (g *Directed[N, E]) EdgeWeight(from, to N) (E, bool) {
	w, ok := g.edges[edgeKey[N]{from, to}]
	return w, ok
}

// Nodes yields every node in insertion order.
func (g *Directed[N, E]) Nodes() iter.Seq[N] {
	return slices.Values(g.order)
}

// Neighbors yields the nodes joined to node by an edge in the given
// direction. A self loop counts in both directions.
func (g *Directed[N, E]) Neighbors(node N, direction Direction) iter.Seq[N] {
	return func(yield func(N) bool) {
		for _, e := range g.nodes[node] {
			if e.direction == direction || e.to == node {
				if !yield(e.to) {
					return
				}
			}
		}
	}
}

// Successors is Neighbors in the Outgoing direction.
func (g *Directed[N, E]) Successors(node N) iter.Seq[N] {
	return g.Neighbors(node, Outgoing)
}

// Reachable returns the set of nodes reachable from the roots, roots
// included. Roots missing from the graph are ignored.
func (g *Directed[N, E]) Reachable(roots ...N) map[N]bool {
	seen := make(map[N]bool, len(g.order))
	var stack []N
	for _, r := range roots {
		if g.Contains(r) && !seen[r] {
			seen[r] = true
			stack = append(stack, r)
		}
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for next := range g.Successors(n) {
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return seen
}
