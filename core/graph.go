package core

import "fmt"

// NewGraph returns an n-vertex graph with no edges assigned yet.
//
// Complexity: O(n²) time and space.
func NewGraph(n int) (*Graph, error) {
	if n < 1 {
		return nil, ErrEmptyGraph
	}
	w := make([][]Weight, n)
	for i := range w {
		w[i] = make([]Weight, n)
	}

	return &Graph{n: n, w: w}, nil
}

// FromMatrix builds a Graph from a dense symmetric weight matrix.
// Only off-diagonal entries are read; each must be 1 or 2.
//
// Complexity: O(n²).
func FromMatrix(weights [][]int) (*Graph, error) {
	n := len(weights)
	g, err := NewGraph(n)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(weights[i]) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(weights[i]), n, ErrNonSquare)
		}
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if weights[i][j] != weights[j][i] {
				return nil, fmt.Errorf("w[%d][%d]=%d, w[%d][%d]=%d: %w",
					i, j, weights[i][j], j, i, weights[j][i], ErrAsymmetry)
			}
			if err = g.AddEdge(i, j, Weight(weights[i][j])); err != nil {
				return nil, fmt.Errorf("w[%d][%d]: %w", i, j, err)
			}
		}
	}

	return g, nil
}

// AddEdge sets the weight of {u, v} in both directions.
func (g *Graph) AddEdge(u, v int, w Weight) error {
	if !g.has(u) || !g.has(v) {
		return fmt.Errorf("AddEdge(%d, %d): %w", u, v, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d, %d): %w", u, v, ErrLoopNotAllowed)
	}
	if !w.Valid() {
		return fmt.Errorf("AddEdge(%d, %d, %d): %w", u, v, w, ErrBadWeight)
	}
	g.w[u][v] = w
	g.w[v][u] = w

	return nil
}

// GetEdgeWeight returns the weight of {u, v}, or NoEdge when the pair was
// never set, u == v, or either vertex is out of range.
func (g *Graph) GetEdgeWeight(u, v int) Weight {
	if !g.has(u) || !g.has(v) {
		return NoEdge
	}

	return g.w[u][v]
}

// IsLight reports whether {u, v} is a light edge.
func (g *Graph) IsLight(u, v int) bool {
	return g.GetEdgeWeight(u, v) == Light
}

// EdgesByVertex returns v's full neighbor → weight map.
// The map is freshly allocated; mutating it does not affect the graph.
func (g *Graph) EdgesByVertex(v int) map[int]Weight {
	if !g.has(v) {
		return nil
	}
	out := make(map[int]Weight, g.n-1)
	for u, w := range g.w[v] {
		if w != NoEdge {
			out[u] = w
		}
	}

	return out
}

// LightNeighbors returns the light neighbors of v in ascending order.
func (g *Graph) LightNeighbors(v int) []int {
	if !g.has(v) {
		return nil
	}
	var out []int
	for u, w := range g.w[v] {
		if w == Light {
			out = append(out, u)
		}
	}

	return out
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// Complete returns an error wrapping ErrIncompleteGraph when some unordered
// pair carries no weight.
func (g *Graph) Complete() error {
	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			if g.w[i][j] == NoEdge {
				return fmt.Errorf("pair {%d, %d}: %w", i, j, ErrIncompleteGraph)
			}
		}
	}

	return nil
}

func (g *Graph) has(v int) bool { return v >= 0 && v < g.n }
