// Package taskgraph models directed dependency relations between tasks as an
// adjacency list keyed by task id. The stored relation is permitted to
// contain cycles, so every traversal here carries an explicit visited set
// instead of recursing over embedded references.
package taskgraph

import "sort"

type Graph struct {
	edges map[string][]string
	nodes map[string]struct{}
}

func New() *Graph {
	return &Graph{
		edges: make(map[string][]string),
		nodes: make(map[string]struct{}),
	}
}

func (g *Graph) AddNode(id string) {
	g.nodes[id] = struct{}{}
}

// AddEdge records that "from" depends on "to". Both endpoints become nodes.
func (g *Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	g.edges[from] = append(g.edges[from], to)
}

func (g *Graph) Dependencies(id string) []string {
	return g.edges[id]
}

// HasCycle reports whether any directed cycle exists, via depth-first search
// with a three-state visited map.
func (g *Graph) HasCycle() bool {
	const (
		unvisited = 0
		inStack   = 1
		done      = 2
	)

	state := make(map[string]int, len(g.nodes))

	var visit func(id string) bool
	visit = func(id string) bool {
		switch state[id] {
		case inStack:
			return true
		case done:
			return false
		}

		state[id] = inStack
		for _, dep := range g.edges[id] {
			if visit(dep) {
				return true
			}
		}
		state[id] = done
		return false
	}

	for id := range g.nodes {
		if visit(id) {
			return true
		}
	}
	return false
}

// TransitiveDependencies returns every task reachable from id following
// dependency edges, excluding id itself. Safe on cyclic input.
func (g *Graph) TransitiveDependencies(id string) []string {
	visited := map[string]struct{}{id: {}}
	var out []string

	stack := append([]string(nil), g.edges[id]...)
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[next]; seen {
			continue
		}
		visited[next] = struct{}{}
		out = append(out, next)
		stack = append(stack, g.edges[next]...)
	}

	sort.Strings(out)
	return out
}

// WouldCreateCycle reports whether adding the edge from -> to would make the
// graph cyclic, i.e. whether "from" is already reachable from "to".
func (g *Graph) WouldCreateCycle(from, to string) bool {
	if from == to {
		return true
	}
	for _, id := range g.TransitiveDependencies(to) {
		if id == from {
			return true
		}
	}
	return false
}
