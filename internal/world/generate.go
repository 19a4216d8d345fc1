package world

import (
	"errors"
	"fmt"

	"github.com/tatianab/artifact-quest/internal/dice"
)

const (
	MinWeight = 1
	MaxWeight = 20
)

var (
	ErrTooFewNodes   = errors.New("world: need at least 2 nodes")
	ErrNegativeEdges = errors.New("world: edge attempts must not be negative")
)

// Generate builds a random graph. It makes numEdges attempts at a random
// edge, skipping self-loops, then makes sure node 1 has a way out and that
// something leads into node numNodes. Nodes without outgoing edges are left
// as they are.
func Generate(src dice.Source, numNodes, numEdges int) (*Graph, error) {
	if numNodes < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewNodes, numNodes)
	}
	if numEdges < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeEdges, numEdges)
	}

	g := NewGraph(numNodes)
	for i := 0; i < numEdges; i++ {
		from := dice.Between(src, 1, numNodes)
		to := dice.Between(src, 1, numNodes)
		weight := dice.Between(src, MinWeight, MaxWeight)
		if from != to {
			g.mustAdd(from, to, weight)
		}
	}

	if len(g.Nodes[0].Edges) == 0 {
		to := dice.Between(src, 2, numNodes)
		g.mustAdd(1, to, dice.Between(src, MinWeight, MaxWeight))
	}

	if !g.HasPathTo(numNodes) {
		from := dice.Between(src, 1, numNodes-1)
		g.mustAdd(from, numNodes, dice.Between(src, MinWeight, MaxWeight))
	}

	return g, nil
}

// mustAdd is only called with endpoints the generator has already bounded.
func (g *Graph) mustAdd(from, to, weight int) {
	if err := g.AddEdge(from, to, weight); err != nil {
		panic(err)
	}
}
