package cycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cycletsp/core"
	"github.com/katalvlaran/cycletsp/cycle"
)

// graphWithLight returns an n-vertex graph where the listed pairs are light
// and every other pair is heavy.
func graphWithLight(t *testing.T, n int, light ...[2]int) *core.Graph {
	t.Helper()
	w := make([][]int, n)
	for i := range w {
		w[i] = make([]int, n)
		for j := range w[i] {
			if i != j {
				w[i][j] = int(core.Heavy)
			}
		}
	}
	for _, p := range light {
		w[p[0]][p[1]] = int(core.Light)
		w[p[1]][p[0]] = int(core.Light)
	}
	g, err := core.FromMatrix(w)
	require.NoError(t, err)

	return g
}

// TestNew_Links verifies successor/predecessor wiring and heavy origins.
func TestNew_Links(t *testing.T) {
	g := graphWithLight(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{3, 0})
	c, err := cycle.New([]int{0, 1, 2, 3}, g)
	require.NoError(t, err)

	next, ok := c.Next(3)
	assert.True(t, ok)
	assert.Equal(t, 0, next) // wraparound
	prev, ok := c.Prev(0)
	assert.True(t, ok)
	assert.Equal(t, 3, prev)

	// Only 2→3 is heavy.
	assert.False(t, c.IsGood())
	assert.Equal(t, []int{2}, c.HeavyOrigins())
	assert.Equal(t, core.Edge{From: 2, To: 3}, c.GetEdgeOfMaximumWeight())
	assert.Equal(t, []int{0, 1, 2, 3}, c.Vertices())
	assert.NoError(t, c.Validate(g))
}

// TestNew_Errors covers empty and duplicate sequences.
func TestNew_Errors(t *testing.T) {
	g := graphWithLight(t, 3)
	_, err := cycle.New(nil, g)
	assert.ErrorIs(t, err, cycle.ErrEmptyCycle)

	_, err = cycle.New([]int{0, 1, 0}, g)
	assert.ErrorIs(t, err, cycle.ErrDuplicateVertex)
}

// TestNew_SmallCycles checks singleton and two-vertex cycles.
func TestNew_SmallCycles(t *testing.T) {
	g := graphWithLight(t, 3, [2]int{0, 1})

	single, err := cycle.New([]int{2}, g)
	require.NoError(t, err)
	assert.True(t, single.IsGood()) // self-loop is never heavy
	next, _ := single.Next(2)
	assert.Equal(t, 2, next)
	assert.Equal(t, core.Edge{From: 2, To: 2}, single.GetEdgeOfMaximumWeight())
	assert.NoError(t, single.Validate(g))

	pair, err := cycle.New([]int{1, 2}, g)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, pair.HeavyOrigins()) // both directions of {1,2}
	assert.Equal(t, 2, pair.HeavyCount())

	good, err := cycle.New([]int{1, 0}, g)
	require.NoError(t, err)
	assert.True(t, good.IsGood())
	assert.Equal(t, core.Edge{From: 0, To: 1}, good.GetEdgeOfMaximumWeight())
}

// TestChangeEdge_AndAddCycle splices two cycles the way a two-cycle fusion does.
func TestChangeEdge_AndAddCycle(t *testing.T) {
	// Triangles {0,1,2} and {3,4,5}; bridges 0-4 and 3-1 are light.
	g := graphWithLight(t, 6,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
		[2]int{3, 4}, [2]int{4, 5}, [2]int{5, 3},
		[2]int{0, 4}, [2]int{3, 1},
	)
	a, err := cycle.New([]int{0, 1, 2}, g)
	require.NoError(t, err)
	b, err := cycle.New([]int{3, 4, 5}, g)
	require.NoError(t, err)

	// Break 0→1 and 3→4, cross-connect 0→4 and 3→1.
	require.NoError(t, a.ChangeEdge(0, 4, g.GetEdgeWeight(0, 4)))
	require.NoError(t, b.ChangeEdge(3, 1, g.GetEdgeWeight(3, 1)))
	a.AddCycle(b)

	assert.Equal(t, 6, a.Len())
	assert.True(t, a.IsGood())
	assert.Equal(t, []int{0, 4, 5, 3, 1, 2}, a.Vertices())
	assert.NoError(t, a.Validate(g))
	assert.True(t, a.Contains(5))
}

// TestChangeEdge_HeavyBookkeeping checks heavy-set updates and the precondition.
func TestChangeEdge_HeavyBookkeeping(t *testing.T) {
	g := graphWithLight(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})
	c, err := cycle.New([]int{0, 1, 2, 3}, g)
	require.NoError(t, err)
	require.True(t, c.IsGood())

	// Mark 1's outgoing edge heavy and then light again.
	require.NoError(t, c.ChangeEdge(1, 2, core.Heavy))
	assert.Equal(t, []int{1}, c.HeavyOrigins())
	assert.ErrorIs(t, c.Validate(g), cycle.ErrBrokenCycle) // 1→2 is light in g
	require.NoError(t, c.ChangeEdge(1, 2, core.Light))
	assert.True(t, c.IsGood())
	assert.NoError(t, c.Validate(g))

	assert.ErrorIs(t, c.ChangeEdge(9, 0, core.Light), cycle.ErrVertexNotInCycle)
}

// TestValidate_DetectsBrokenStructure rewires an edge without a matching splice.
func TestValidate_DetectsBrokenStructure(t *testing.T) {
	g := graphWithLight(t, 4)
	c, err := cycle.New([]int{0, 1, 2, 3}, g)
	require.NoError(t, err)

	// 0 → 2 skips 1: 1 loses its predecessor and 2 gets two.
	require.NoError(t, c.ChangeEdge(0, 2, core.Heavy))
	assert.ErrorIs(t, c.Validate(nil), cycle.ErrBrokenCycle)
}

// TestConnectedEdge covers the unset and set states.
func TestConnectedEdge(t *testing.T) {
	g := graphWithLight(t, 3)
	c, err := cycle.New([]int{0, 1}, g)
	require.NoError(t, err)

	_, err = c.GetConnectedEdge()
	assert.ErrorIs(t, err, cycle.ErrNoConnectedEdge)

	c.SetConnectedEdge(core.Edge{From: 1, To: 2})
	e, err := c.GetConnectedEdge()
	require.NoError(t, err)
	assert.Equal(t, core.Edge{From: 1, To: 2}, e)
}
