package graph

import "iter"

// Source is what Components needs from a graph.
type Source[N comparable] interface {
	Nodes() iter.Seq[N]
	Successors(node N) iter.Seq[N]
}

// tarjan is the state of one run of Tarjan's algorithm.
type tarjan[N comparable] struct {
	g       Source[N]
	next    int
	stack   []N
	onStack map[N]bool
	index   map[N]int
	low     map[N]int
	out     [][]N
}

// Components returns the strongly connected components of g. A component
// is emitted only after every component it reaches, so the result is in
// reverse topological order. Members of a component are listed in the
// order they were popped.
func Components[N comparable](g Source[N]) [][]N {
	t := &tarjan[N]{
		g:       g,
		onStack: make(map[N]bool),
		index:   make(map[N]int),
		low:     make(map[N]int),
	}
	for n := range g.Nodes() {
		if _, ok := t.index[n]; !ok {
			t.connect(n)
		}
	}
	return t.out
}

func (t *tarjan[N]) connect(n N) {
	t.index[n] = t.next
	t.low[n] = t.next
	t.next++
	t.stack = append(t.stack, n)
	t.onStack[n] = true

	for m := range t.g.Successors(n) {
		if _, ok := t.index[m]; !ok {
			t.connect(m)
			t.low[n] = min(t.low[n], t.low[m])
		} else if t.onStack[m] {
			t.low[n] = min(t.low[n], t.index[m])
		}
	}

	if t.low[n] != t.index[n] {
		return
	}
	var comp []N
	for {
		top := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[top] = false
		comp = append(comp, top)
		if top == n {
			break
		}
	}
	t.out = append(t.out, comp)
}
