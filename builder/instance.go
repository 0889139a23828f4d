// SPDX-License-Identifier: MIT
// Package: cycletsp/builder
//
// instance.go — the solver input bundle and its YAML shape.

package builder

import "github.com/katalvlaran/cycletsp/core"

// Instance is a weight matrix together with a cycle cover of its vertices.
//
// YAML form:
//
//	name: triangles
//	weights: [[0, 1, 1], [1, 0, 1], [1, 1, 0]]
//	cover: [[0, 1, 2]]
type Instance struct {
	Name    string  `yaml:"name"`
	Weights [][]int `yaml:"weights,flow"`
	Cover   [][]int `yaml:"cover,flow"`
}

// Order returns the number of vertices.
func (in *Instance) Order() int { return len(in.Weights) }

// Graph builds the core graph of the weight matrix.
func (in *Instance) Graph() (*core.Graph, error) {
	return core.FromMatrix(in.Weights)
}

// Clone returns a deep copy.
func (in *Instance) Clone() *Instance {
	return &Instance{
		Name:    in.Name,
		Weights: cloneRows(in.Weights),
		Cover:   cloneRows(in.Cover),
	}
}

// coverPairs returns every unordered pair joined by a cover edge, keyed
// with the smaller vertex first.
func (in *Instance) coverPairs() map[[2]int]struct{} {
	out := make(map[[2]int]struct{})
	for _, seq := range in.Cover {
		for i, u := range seq {
			v := seq[(i+1)%len(seq)]
			if u == v {
				continue
			}
			if u > v {
				u, v = v, u
			}
			out[[2]int{u, v}] = struct{}{}
		}
	}

	return out
}

func cloneRows(rows [][]int) [][]int {
	if rows == nil {
		return nil
	}
	out := make([][]int, len(rows))
	for i, r := range rows {
		out[i] = append([]int(nil), r...)
	}

	return out
}

// newWeights returns an n×n matrix with a zero diagonal and every pair heavy.
func newWeights(n int) [][]int {
	w := make([][]int, n)
	for i := range w {
		w[i] = make([]int, n)
		for j := range w[i] {
			if i != j {
				w[i][j] = int(core.Heavy)
			}
		}
	}

	return w
}

func setPair(w [][]int, u, v int, weight core.Weight) {
	w[u][v] = int(weight)
	w[v][u] = int(weight)
}
