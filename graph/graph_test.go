package graph

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirected(t *testing.T) {
	g := New[string, int]()
	g.AddEdge("a", "b", 1)
	g.AddEdge("a", "c", 2)
	g.AddEdge("c", "c", 3)
	g.AddNode("d")
	g.AddNode("a")

	assert.Equal(t, []string{"a", "b", "c", "d"}, slices.Collect(g.Nodes()))
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, []string{"b", "c"}, slices.Collect(g.Successors("a")))
	assert.Equal(t, []string{"a"}, slices.Collect(g.Neighbors("b", Incoming)))
	assert.Equal(t, []string{"a", "c"}, slices.Collect(g.Neighbors("c", Incoming)))
	assert.Equal(t, []string{"c"}, slices.Collect(g.Successors("c")))

	w, ok := g.EdgeWeight("a", "c")
	require.True(t, ok)
	assert.Equal(t, 2, w)
	g.AddEdge("a", "c", 5)
	w, _ = g.EdgeWeight("a", "c")
	assert.Equal(t, 5, w)
	assert.Equal(t, []string{"b", "c"}, slices.Collect(g.Successors("a")))

	g.RemoveEdge("a", "b")
	_, ok = g.EdgeWeight("a", "b")
	assert.False(t, ok)
	assert.Empty(t, slices.Collect(g.Neighbors("b", Incoming)))

	g.RemoveNode("c")
	assert.False(t, g.Contains("c"))
	assert.Empty(t, slices.Collect(g.Successors("a")))
	_, ok = g.EdgeWeight("a", "c")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b", "d"}, slices.Collect(g.Nodes()))
}

func TestReachable(t *testing.T) {
	g := New[int, struct{}]()
	g.AddEdge(0, 1, struct{}{})
	g.AddEdge(1, 2, struct{}{})
	g.AddEdge(2, 1, struct{}{})
	g.AddEdge(3, 4, struct{}{})

	got := g.Reachable(0, 9)
	assert.Equal(t, map[int]bool{0: true, 1: true, 2: true}, got)
	assert.Empty(t, g.Reachable())
}

func TestComponents(t *testing.T) {
	g := New[string, struct{}]()
	for _, e := range [][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "a"},
		{"c", "d"}, {"d", "e"}, {"e", "d"},
		{"f", "f"},
	} {
		g.AddEdge(e[0], e[1], struct{}{})
	}
	g.AddNode("g")

	got := Components[string](g)
	for _, c := range got {
		slices.Sort(c)
	}
	assert.Equal(t, [][]string{{"d", "e"}, {"a", "b", "c"}, {"f"}, {"g"}}, got)
}
