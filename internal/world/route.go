package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/dominikbraun/graph"

	"github.com/tatianab/artifact-quest/internal/pqueue"
)

// Reachable reports whether to can be reached from from by following edges.
// A graph whose edges point outside 1..N reaches nothing.
func (g *Graph) Reachable(from, to int) bool {
	if !g.valid(from) || !g.valid(to) {
		return false
	}
	if from == to {
		return true
	}

	dg, err := g.connectivity()
	if err != nil {
		return false
	}

	found := false
	err = graph.BFS(dg, from, func(id int) bool {
		if id == to {
			found = true
		}
		return found
	})
	return err == nil && found
}

// connectivity mirrors g as an unweighted directed graph.
func (g *Graph) connectivity() (graph.Graph[int, int], error) {
	dg := graph.New(graph.IntHash, graph.Directed())
	for _, n := range g.Nodes {
		if err := dg.AddVertex(n.ID); err != nil {
			return nil, fmt.Errorf("adding node %d: %w", n.ID, err)
		}
	}
	for _, n := range g.Nodes {
		for _, e := range n.Edges {
			err := dg.AddEdge(n.ID, e.To)
			// Parallel edges collapse to one; only connectivity matters here.
			if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return nil, fmt.Errorf("adding edge %d -> %d: %w", n.ID, e.To, err)
			}
		}
	}
	return dg, nil
}

// CheapestRoute returns the node sequence from -> to with the lowest total
// weight and that total. ok is false if to is unreachable.
func (g *Graph) CheapestRoute(from, to int) (path []int, cost int, ok bool) {
	if !g.valid(from) || !g.valid(to) {
		return nil, 0, false
	}

	dist := make([]int, g.Size()+1)
	prev := make([]int, g.Size()+1)
	done := make([]bool, g.Size()+1)
	for i := range dist {
		dist[i] = math.MaxInt
	}
	dist[from] = 0

	q := pqueue.New(g.EdgeCount() + 1)
	q.Push(0, from)
	for !q.Empty() {
		it, _ := q.Pop()
		u := it.Node
		if done[u] {
			continue
		}
		done[u] = true
		if u == to {
			break
		}
		for _, e := range g.Nodes[u-1].Edges {
			if nd := dist[u] + e.Weight; nd < dist[e.To] {
				dist[e.To] = nd
				prev[e.To] = u
				q.Push(nd, e.To)
			}
		}
	}

	if dist[to] == math.MaxInt {
		return nil, 0, false
	}
	for at := to; at != from; at = prev[at] {
		path = append(path, at)
	}
	path = append(path, from)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[to], true
}
