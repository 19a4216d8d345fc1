// Package world holds the game map: a directed weighted graph over nodes
// numbered 1..N, and the random generator that builds it.
package world

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	ErrNodeOutOfRange = errors.New("world: node id out of range")
	ErrSelfLoop       = errors.New("world: self-loop not allowed")
	ErrBadWeight      = errors.New("world: edge weight must be positive")
)

// Edge is a one-way path; Weight is the health it costs to take.
type Edge struct {
	To     int `yaml:"to"`
	Weight int `yaml:"weight"`
}

// Node is a location. Edges keep insertion order, which is also menu order.
type Node struct {
	ID    int    `yaml:"id"`
	Edges []Edge `yaml:"edges,omitempty"`
}

// Graph owns a fixed set of nodes. Edges can be added but never removed.
type Graph struct {
	Nodes []Node `yaml:"nodes"`
}

// NewGraph returns a graph with nodes 1..size and no edges.
func NewGraph(size int) *Graph {
	g := &Graph{Nodes: make([]Node, size)}
	for i := range g.Nodes {
		g.Nodes[i].ID = i + 1
	}
	return g
}

// Size is the number of nodes; it is also the id of the goal node.
func (g *Graph) Size() int {
	return len(g.Nodes)
}

func (g *Graph) valid(id int) bool {
	return id >= 1 && id <= len(g.Nodes)
}

// AddEdge appends an edge from -> to. Parallel edges are allowed.
func (g *Graph) AddEdge(from, to, weight int) error {
	if !g.valid(from) || !g.valid(to) {
		return fmt.Errorf("%w: %d -> %d (size %d)", ErrNodeOutOfRange, from, to, g.Size())
	}
	if from == to {
		return fmt.Errorf("%w: node %d", ErrSelfLoop, from)
	}
	if weight <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadWeight, weight)
	}
	n := &g.Nodes[from-1]
	n.Edges = append(n.Edges, Edge{To: to, Weight: weight})
	return nil
}

// Edges returns a copy of the outgoing edges of id, or nil for an unknown id.
func (g *Graph) Edges(id int) []Edge {
	if !g.valid(id) {
		return nil
	}
	return append([]Edge(nil), g.Nodes[id-1].Edges...)
}

// HasPathTo reports whether any edge in the graph targets id.
func (g *Graph) HasPathTo(id int) bool {
	for _, n := range g.Nodes {
		for _, e := range n.Edges {
			if e.To == id {
				return true
			}
		}
	}
	return false
}

// EdgeCount is the total number of edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, n := range g.Nodes {
		total += len(n.Edges)
	}
	return total
}

// YAML renders the graph for the map command.
func (g *Graph) YAML() ([]byte, error) {
	return yaml.Marshal(g)
}
