package taskgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCycle(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	assert.False(t, g.HasCycle())

	g.AddEdge("c", "a")
	assert.True(t, g.HasCycle())
}

func TestHasCycleSelfLoop(t *testing.T) {
	g := New()
	g.AddEdge("a", "a")
	assert.True(t, g.HasCycle())
}

func TestHasCycleDiamondIsAcyclic(t *testing.T) {
	// a -> b -> d, a -> c -> d: shared dependency, not a cycle.
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("a", "c")
	g.AddEdge("b", "d")
	g.AddEdge("c", "d")
	assert.False(t, g.HasCycle())
}

func TestTransitiveDependencies(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("b", "d")
	g.AddNode("e")

	assert.Equal(t, []string{"b", "c", "d"}, g.TransitiveDependencies("a"))
	assert.Empty(t, g.TransitiveDependencies("e"))
}

func TestTransitiveDependenciesTerminatesOnCycle(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	assert.Equal(t, []string{"b"}, g.TransitiveDependencies("a"))
}

func TestWouldCreateCycle(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")

	assert.True(t, g.WouldCreateCycle("a", "a"))
	assert.True(t, g.WouldCreateCycle("c", "a"))
	assert.False(t, g.WouldCreateCycle("a", "c"))
}
