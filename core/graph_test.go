package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cycletsp/core"
)

// TestNewGraph_Validation checks the order guard.
func TestNewGraph_Validation(t *testing.T) {
	_, err := core.NewGraph(0)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)

	g, err := core.NewGraph(1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Order())
	assert.NoError(t, g.Complete()) // no pairs to fill
}

// TestAddEdge_Symmetric verifies both directions are set and invalid input is rejected.
func TestAddEdge_Symmetric(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 2, core.Heavy))
	assert.Equal(t, core.Heavy, g.GetEdgeWeight(0, 2))
	assert.Equal(t, core.Heavy, g.GetEdgeWeight(2, 0))
	assert.Equal(t, core.NoEdge, g.GetEdgeWeight(0, 1)) // never set
	assert.Equal(t, core.NoEdge, g.GetEdgeWeight(1, 1)) // diagonal
	assert.Equal(t, core.NoEdge, g.GetEdgeWeight(-1, 1))

	assert.ErrorIs(t, g.AddEdge(0, 3, core.Light), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(1, 1, core.Light), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(0, 1, core.Weight(3)), core.ErrBadWeight)
	assert.ErrorIs(t, g.AddEdge(0, 1, core.NoEdge), core.ErrBadWeight)

	assert.ErrorIs(t, g.Complete(), core.ErrIncompleteGraph)
}

// TestFromMatrix covers shape, symmetry and domain validation.
func TestFromMatrix(t *testing.T) {
	tests := []struct {
		name    string
		weights [][]int
		wantErr error
	}{
		{"empty", nil, core.ErrEmptyGraph},
		{"ragged", [][]int{{0, 1}, {1}}, core.ErrNonSquare},
		{"asymmetric", [][]int{{0, 1}, {2, 0}}, core.ErrAsymmetry},
		{"weight three", [][]int{{0, 3}, {3, 0}}, core.ErrBadWeight},
		{"weight zero", [][]int{{0, 0}, {0, 0}}, core.ErrBadWeight},
		{"single vertex", [][]int{{0}}, nil},
		{"diagonal ignored", [][]int{{7, 1}, {1, 9}}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.FromMatrix(tc.weights)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, g.Complete())
		})
	}
}

// TestEdgesByVertex checks the neighbor map and the light-neighbor list.
func TestEdgesByVertex(t *testing.T) {
	g, err := core.FromMatrix([][]int{
		{0, 1, 2, 1},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{1, 2, 1, 0},
	})
	require.NoError(t, err)

	m := g.EdgesByVertex(0)
	assert.Equal(t, map[int]core.Weight{1: core.Light, 2: core.Heavy, 3: core.Light}, m)

	m[1] = core.Heavy // caller copy only
	assert.True(t, g.IsLight(0, 1))

	assert.Equal(t, []int{1, 3}, g.LightNeighbors(0))
	assert.Equal(t, []int{0, 2}, g.LightNeighbors(1))
	assert.Nil(t, g.EdgesByVertex(4))
	assert.Nil(t, g.LightNeighbors(-1))
}

// TestWeight_String covers the Stringer.
func TestWeight_String(t *testing.T) {
	assert.Equal(t, "light", core.Light.String())
	assert.Equal(t, "heavy", core.Heavy.String())
	assert.Equal(t, "none", core.NoEdge.String())
	assert.False(t, core.Weight(5).Valid())
}
