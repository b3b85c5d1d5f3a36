package bipartite

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeSize is returned by New for a negative side size.
	ErrNegativeSize = errors.New("bipartite: negative side size")

	// ErrVertexOutOfRange is returned by AddEdge for an endpoint outside its side.
	ErrVertexOutOfRange = errors.New("bipartite: vertex out of range")
)

// unmatched marks a free vertex in Matching.Left / Matching.Right.
const unmatched = -1

// Graph is a bipartite graph with adjacency lists from the left side.
// It is not safe for concurrent mutation.
type Graph struct {
	left, right int
	adj         [][]int
}

// Matching is the result of MaxMatching.
type Matching struct {
	// Size is the number of matched pairs.
	Size int
	// Left[u] is the right vertex matched to u, or -1.
	Left []int
	// Right[v] is the left vertex matched to v, or -1.
	Right []int
}

// Perfect reports whether every vertex on both sides is matched.
func (m Matching) Perfect() bool {
	return len(m.Left) == len(m.Right) && m.Size == len(m.Left)
}

// New returns an empty graph with the given side sizes.
func New(left, right int) (*Graph, error) {
	if left < 0 || right < 0 {
		return nil, ErrNegativeSize
	}

	return &Graph{left: left, right: right, adj: make([][]int, left)}, nil
}

// Left returns the number of left vertices.
func (g *Graph) Left() int { return g.left }

// Right returns the number of right vertices.
func (g *Graph) Right() int { return g.right }

// AddEdge connects left vertex u to right vertex v. Parallel edges are kept
// and are harmless for matching.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.left {
		return fmt.Errorf("%w: left %d of %d", ErrVertexOutOfRange, u, g.left)
	}
	if v < 0 || v >= g.right {
		return fmt.Errorf("%w: right %d of %d", ErrVertexOutOfRange, v, g.right)
	}
	g.adj[u] = append(g.adj[u], v)

	return nil
}

// MaxMatching returns a maximum-cardinality matching.
//
// Steps:
//  1. Start with every vertex free.
//  2. Repeat:
//     a. BFS from all free left vertices; dist[u] is the alternating-path layer.
//     b. If no free right vertex was reached, stop.
//     c. For each free left vertex, DFS along dist+1 layers and flip the first
//     augmenting path found.
//  3. Return the matching.
func (g *Graph) MaxMatching() Matching {
	m := Matching{
		Left:  make([]int, g.left),
		Right: make([]int, g.right),
	}
	for u := range m.Left {
		m.Left[u] = unmatched
	}
	for v := range m.Right {
		m.Right[v] = unmatched
	}

	dist := make([]int, g.left)
	queue := make([]int, 0, g.left)
	for {
		layer := g.buildLevels(&m, dist, queue)
		if layer == unmatched {
			break
		}
		for u := 0; u < g.left; u++ {
			if m.Left[u] == unmatched && g.augment(&m, dist, u, layer) {
				m.Size++
			}
		}
	}

	return m
}

// buildLevels layers left vertices by alternating-path distance from the free
// ones. It returns the layer of the first left vertex adjacent to a free right
// vertex, or unmatched when no augmenting path exists. Layers past that one are
// not expanded.
func (g *Graph) buildLevels(m *Matching, dist []int, queue []int) int {
	queue = queue[:0]
	for u := 0; u < g.left; u++ {
		if m.Left[u] == unmatched {
			dist[u] = 0
			queue = append(queue, u)
		} else {
			dist[u] = unmatched
		}
	}

	freeLayer := unmatched
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		if freeLayer != unmatched && dist[u] > freeLayer {
			break
		}
		for _, v := range g.adj[u] {
			w := m.Right[v]
			if w == unmatched {
				if freeLayer == unmatched {
					freeLayer = dist[u]
				}
				continue
			}
			if dist[w] == unmatched {
				dist[w] = dist[u] + 1
				queue = append(queue, w)
			}
		}
	}

	return freeLayer
}

// augment searches a shortest augmenting path from u through the level graph
// and flips it. A free right vertex ends a path only at freeLayer. Dead ends
// are pruned by clearing dist.
func (g *Graph) augment(m *Matching, dist []int, u, freeLayer int) bool {
	for _, v := range g.adj[u] {
		w := m.Right[v]
		if w == unmatched {
			if dist[u] != freeLayer {
				continue
			}
		} else if dist[w] != dist[u]+1 || !g.augment(m, dist, w, freeLayer) {
			continue
		}
		m.Left[u] = v
		m.Right[v] = u
		return true
	}
	dist[u] = unmatched

	return false
}
