package tsp_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cycletsp/core"
	"github.com/katalvlaran/cycletsp/tsp"
)

func TestValidatePermutation(t *testing.T) {
	require.NoError(t, tsp.ValidatePermutation([]int{2, 0, 1}, 3))

	cases := []struct {
		name string
		perm []int
		n    int
		want error
	}{
		{"short", []int{0, 1}, 3, tsp.ErrDimensionMismatch},
		{"zero n", nil, 0, tsp.ErrDimensionMismatch},
		{"repeat", []int{0, 0, 1}, 3, tsp.ErrDimensionMismatch},
		{"range", []int{0, 1, 3}, 3, tsp.ErrVertexOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tsp.ValidatePermutation(tc.perm, tc.n)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestRotateTourToStart(t *testing.T) {
	got, err := tsp.RotateTourToStart([]int{3, 1, 0, 2}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 1}, got)

	_, err = tsp.RotateTourToStart([]int{3, 1, 0, 2}, 7)
	assert.True(t, errors.Is(err, tsp.ErrStartOutOfRange))

	_, err = tsp.RotateTourToStart(nil, 0)
	assert.True(t, errors.Is(err, tsp.ErrDimensionMismatch))
}

func TestTourEquality(t *testing.T) {
	a := []int{0, 1, 2, 3}

	assert.True(t, tsp.EqualToursModuloRotation(a, []int{2, 3, 0, 1}))
	assert.False(t, tsp.EqualToursModuloRotation(a, []int{0, 3, 2, 1}))
	assert.False(t, tsp.EqualToursModuloRotation(a, []int{0, 1, 2}))
	assert.False(t, tsp.EqualToursModuloRotation(nil, nil))

	assert.True(t, tsp.EqualCyclesUpToDirection(a, []int{0, 3, 2, 1}))
	assert.True(t, tsp.EqualCyclesUpToDirection(a, []int{1, 0, 3, 2}))
	assert.False(t, tsp.EqualCyclesUpToDirection(a, []int{0, 2, 1, 3}))
}

func TestDebugString(t *testing.T) {
	assert.Equal(t, "[]", tsp.DebugString(nil))
	assert.Equal(t, "[0 3 1 2 | 0]", tsp.DebugString([]int{0, 3, 1, 2}))
}

func TestTourCost(t *testing.T) {
	g, err := core.FromMatrix(weightsWithLight(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}))
	require.NoError(t, err)

	cost, err := tsp.TourCost(g, []int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 5, cost)

	heavy, err := tsp.HeavyEdgeCount(g, []int{0, 2, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, heavy)

	_, err = tsp.TourCost(g, []int{0, 1, 2})
	assert.True(t, errors.Is(err, tsp.ErrDimensionMismatch))

	assert.Equal(t, 4, tsp.LowerBound(g))
	require.NoError(t, tsp.ValidateTour(g, []int{3, 2, 1, 0}))
}

func TestTourCost_Incomplete(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, core.Light))

	_, err = tsp.TourCost(g, []int{0, 1, 2})
	assert.True(t, errors.Is(err, core.ErrIncompleteGraph))
	assert.Error(t, tsp.ValidateTour(g, []int{0, 1, 2}))
}

func TestTourCost_SingleVertex(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)

	cost, err := tsp.TourCost(g, []int{0})
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Zero(t, tsp.LowerBound(g))
}
