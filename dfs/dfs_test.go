package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cycletsp/dfs"
)

// build adds the edges in order.
func build(edges ...[2]int) *dfs.DirectedGraph {
	g := dfs.NewDirectedGraph()
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}

	return g
}

// assertParentChain checks that every element of cyc has an edge from the next one.
func assertParentChain(t *testing.T, g *dfs.DirectedGraph, cyc []int) {
	t.Helper()
	for i, v := range cyc {
		parent := cyc[(i+1)%len(cyc)]
		assert.Contains(t, g.Neighbors(parent), v, "missing edge %d → %d", parent, v)
	}
}

// TestAddEdge_Dedup checks vertex bookkeeping and parallel-edge collapse.
func TestAddEdge_Dedup(t *testing.T) {
	g := build([2]int{1, 2}, [2]int{1, 2}, [2]int{2, 3})
	assert.Equal(t, []int{1, 2, 3}, g.Vertices())
	assert.Equal(t, []int{2}, g.Neighbors(1))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 1, g.InDegree(2))
	assert.Equal(t, 0, g.InDegree(1))

	g.AddVertex(9)
	g.AddVertex(9)
	assert.Equal(t, []int{1, 2, 3, 9}, g.Vertices())
	assert.Empty(t, g.Neighbors(9))
	assert.False(t, g.HasVertex(7))
}

// TestFindComponents_Trees verifies roots win even when children are inserted first.
func TestFindComponents_Trees(t *testing.T) {
	g := build(
		[2]int{3, 4}, // child subtree first
		[2]int{1, 3},
		[2]int{1, 2},
		[2]int{10, 11}, // second tree
	)
	g.AddVertex(20) // isolated vertex is its own component

	assert.Equal(t, []int{1, 10, 20}, g.FindComponents())
}

// TestFindComponents_CycleWithTails verifies the representative lies on the cycle.
func TestFindComponents_CycleWithTails(t *testing.T) {
	g := build(
		[2]int{4, 5},
		[2]int{2, 4},
		[2]int{1, 2},
		[2]int{2, 3},
		[2]int{3, 1},
		[2]int{3, 6},
	)
	reps := g.FindComponents()
	require.Len(t, reps, 1)
	assert.Contains(t, []int{1, 2, 3}, reps[0])

	cyc := g.FindCycle(reps[0])
	assert.ElementsMatch(t, []int{1, 2, 3}, cyc)
	assert.Equal(t, reps[0], cyc[0])
	assertParentChain(t, g, cyc)
}

// TestFindComponents_EveryStartOrder rotates the insertion order of a
// two-cycle with tails and checks the representative is always on the cycle.
func TestFindComponents_EveryStartOrder(t *testing.T) {
	edges := [][2]int{{7, 8}, {8, 7}, {7, 9}, {9, 10}, {8, 11}}
	for shift := range edges {
		rotated := append(append([][2]int(nil), edges[shift:]...), edges[:shift]...)
		g := build(rotated...)
		reps := g.FindComponents()
		require.Len(t, reps, 1, "shift %d", shift)
		assert.Contains(t, []int{7, 8}, reps[0], "shift %d", shift)
		cyc := g.FindCycle(reps[0])
		assert.ElementsMatch(t, []int{7, 8}, cyc)
		assertParentChain(t, g, cyc)
	}
}

// TestFindCycle_Tree returns the start vertex when no cycle is reachable.
func TestFindCycle_Tree(t *testing.T) {
	g := build([2]int{1, 2}, [2]int{1, 3}, [2]int{3, 4})
	assert.Equal(t, []int{1}, g.FindCycle(1))
	assert.Equal(t, []int{42}, g.FindCycle(42)) // unknown vertex
}

// TestFindCycle_Long checks a five-cycle entered through a tail.
func TestFindCycle_Long(t *testing.T) {
	g := build(
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 0},
		[2]int{2, 9},
	)
	cyc := g.FindCycle(0)
	assert.Len(t, cyc, 5)
	assert.Equal(t, 0, cyc[0])
	assertParentChain(t, g, cyc)
}

// TestPostOrder checks children precede parents and cycles do not loop.
func TestPostOrder(t *testing.T) {
	g := build([2]int{1, 2}, [2]int{2, 3}, [2]int{2, 4}, [2]int{1, 5})
	order := g.PostOrder(1)
	assert.Equal(t, []int{3, 4, 2, 5, 1}, order)

	cyclic := build([2]int{1, 2}, [2]int{2, 1})
	assert.Equal(t, []int{2, 1}, cyclic.PostOrder(1))
	assert.Nil(t, cyclic.PostOrder(3))
}
