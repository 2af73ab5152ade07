package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierarch/graph"
)

// TestNewUndirected_Validation covers construction edge cases.
func TestNewUndirected_Validation(t *testing.T) {
	_, err := graph.NewUndirected(-1)
	assert.ErrorIs(t, err, graph.ErrVertexCount)

	g, err := graph.NewUndirected(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.NumVertices())
	assert.Equal(t, 0, g.NumEdges())
}

// TestAddEdge_DenseIDs verifies sequential id assignment and the endpoint
// lookups the builders rely on.
func TestAddEdge_DenseIDs(t *testing.T) {
	g, err := graph.NewUndirected(4)
	require.NoError(t, err)

	// Edges inserted in a fixed order receive ids 0, 1, 2.
	e0, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	e1, err := g.AddEdge(1, 2)
	require.NoError(t, err)
	e2, err := g.AddEdge(2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, []int{e0, e1, e2})
	assert.Equal(t, 3, g.NumEdges())

	// Endpoints come back in insertion order.
	u, v := g.Endpoints(e1)
	assert.Equal(t, 1, u)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, g.OtherEndpoint(e1, 1))
	assert.Equal(t, 1, g.OtherEndpoint(e1, 2))

	// Incidence lists preserve insertion order.
	assert.Equal(t, []int{e0, e1}, g.IncidentEdges(1))
	assert.Equal(t, 2, g.Degree(1))
	assert.Equal(t, 1, g.Degree(0))
}

// TestAddEdge_Validation covers range and self-loop rejection.
func TestAddEdge_Validation(t *testing.T) {
	g, err := graph.NewUndirected(2)
	require.NoError(t, err)

	_, err = g.AddEdge(0, 2)
	assert.ErrorIs(t, err, graph.ErrVertexRange)
	_, err = g.AddEdge(-1, 1)
	assert.ErrorIs(t, err, graph.ErrVertexRange)
	_, err = g.AddEdge(1, 1)
	assert.ErrorIs(t, err, graph.ErrSelfLoop)
	assert.Equal(t, 0, g.NumEdges())
}

// TestGrid4_Shape2x3 pins down the canonical edge enumeration of a 2×3
// raster: per pixel, right then down.
func TestGrid4_Shape2x3(t *testing.T) {
	g, err := graph.Grid4(2, 3)
	require.NoError(t, err)
	require.Equal(t, 6, g.NumVertices())
	require.Equal(t, 7, g.NumEdges())

	want := [][2]int{{0, 1}, {0, 3}, {1, 2}, {1, 4}, {2, 5}, {3, 4}, {4, 5}}
	for e, p := range want {
		u, v := g.Endpoints(e)
		assert.Equal(t, p, [2]int{u, v}, "edge %d", e)
	}
}

// TestGrid4_Shape1x2 is the smallest non-trivial raster.
func TestGrid4_Shape1x2(t *testing.T) {
	g, err := graph.Grid4(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumVertices())
	assert.Equal(t, 1, g.NumEdges())
	u, v := g.Endpoints(0)
	assert.Equal(t, [2]int{0, 1}, [2]int{u, v})
}

// TestGrid8_Shape2x2 checks the diagonal edges and their ordering.
func TestGrid8_Shape2x2(t *testing.T) {
	g, err := graph.Grid8(2, 2)
	require.NoError(t, err)
	require.Equal(t, 4, g.NumVertices())
	// 2 horizontal + 2 vertical + 2 diagonal.
	require.Equal(t, 6, g.NumEdges())

	want := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for e, p := range want {
		u, v := g.Endpoints(e)
		assert.Equal(t, p, [2]int{u, v}, "edge %d", e)
	}
}

// TestGrid_Validation rejects degenerate shapes.
func TestGrid_Validation(t *testing.T) {
	_, err := graph.Grid4(0, 5)
	assert.ErrorIs(t, err, graph.ErrEmptyGrid)
	_, err = graph.Grid4(5, 0)
	assert.ErrorIs(t, err, graph.ErrEmptyGrid)
	_, err = graph.Grid8(-1, 1)
	assert.ErrorIs(t, err, graph.ErrEmptyGrid)
}
