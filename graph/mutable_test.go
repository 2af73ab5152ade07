package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierarch/graph"
)

// buildPath returns the mutable copy of a path graph 0-1-2-3.
func buildPath(t *testing.T) *graph.Mutable {
	t.Helper()
	g, err := graph.NewUndirected(4)
	require.NoError(t, err)
	for _, p := range [][2]int{{0, 1}, {1, 2}, {2, 3}} {
		_, err = g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	return graph.NewMutableFrom(g)
}

// TestNewMutableFrom_PreservesIDs verifies that the copy keeps ids,
// endpoints and incidence order of the source.
func TestNewMutableFrom_PreservesIDs(t *testing.T) {
	mg := buildPath(t)

	assert.Equal(t, 4, mg.NumVertices())
	assert.Equal(t, 3, mg.NumEdges())
	assert.Equal(t, 3, mg.NumLiveEdges())

	u, v, ok := mg.Endpoints(1)
	require.True(t, ok)
	assert.Equal(t, [2]int{1, 2}, [2]int{u, v})
	assert.Equal(t, []int{0, 1}, mg.IncidentEdges(1))
	assert.Equal(t, []int{1, 2}, mg.IncidentEdges(2))
}

// TestRemoveEdge_TombstonesWithoutRenumbering verifies removal semantics:
// idempotent, id table keeps its size, other ids untouched.
func TestRemoveEdge_TombstonesWithoutRenumbering(t *testing.T) {
	mg := buildPath(t)

	mg.RemoveEdge(1)
	assert.Equal(t, 3, mg.NumEdges(), "id table must keep tombstoned slots")
	assert.Equal(t, 2, mg.NumLiveEdges())
	assert.False(t, mg.EdgePresent(1))
	_, _, ok := mg.Endpoints(1)
	assert.False(t, ok)

	// Incidence no longer reports the tombstoned edge.
	assert.Equal(t, []int{0}, mg.IncidentEdges(1))
	assert.Equal(t, []int{2}, mg.IncidentEdges(2))

	// Removing again is a no-op.
	mg.RemoveEdge(1)
	assert.Equal(t, 2, mg.NumLiveEdges())

	// Untouched edges still resolve.
	u, v, ok := mg.Endpoints(2)
	require.True(t, ok)
	assert.Equal(t, [2]int{2, 3}, [2]int{u, v})
}

// TestAddVertex_DoesNotDisturbEdges verifies sequential vertex growth.
func TestAddVertex_DoesNotDisturbEdges(t *testing.T) {
	mg := buildPath(t)

	v := mg.AddVertex()
	assert.Equal(t, 4, v)
	assert.Equal(t, 5, mg.NumVertices())
	assert.Empty(t, mg.IncidentEdges(v))
	assert.Equal(t, 3, mg.NumLiveEdges())
}

// TestSetEdge_RewiresToMergedVertex plays the rewiring step of a merge:
// edge 1 (1-2) is relocated to connect 1 with a fresh vertex, appending at
// the tail of both incidence lists.
func TestSetEdge_RewiresToMergedVertex(t *testing.T) {
	mg := buildPath(t)
	r := mg.AddVertex() // the merged region

	mg.SetEdge(1, 1, r)

	u, v, ok := mg.Endpoints(1)
	require.True(t, ok)
	assert.Equal(t, [2]int{1, r}, [2]int{u, v})

	// Vertex 2 lost the edge; vertex r gained it; vertex 1 kept it (now last).
	assert.Equal(t, []int{2}, mg.IncidentEdges(2))
	assert.Equal(t, []int{1}, mg.IncidentEdges(r))
	assert.Equal(t, []int{0, 1}, mg.IncidentEdges(1))
	assert.Equal(t, 1, mg.OtherEndpoint(1, r))
	assert.Equal(t, r, mg.OtherEndpoint(1, 1))
}

// TestVisitIncident_OrderAfterChurn verifies the deterministic iteration
// contract after a mix of removals and rewirings.
func TestVisitIncident_OrderAfterChurn(t *testing.T) {
	// Star around vertex 0 with four spokes.
	g, err := graph.NewUndirected(5)
	require.NoError(t, err)
	for i := 1; i <= 4; i++ {
		_, err = g.AddEdge(0, i)
		require.NoError(t, err)
	}
	mg := graph.NewMutableFrom(g)

	// Remove the middle spoke, rewire the first to the tail position.
	mg.RemoveEdge(1)
	mg.SetEdge(0, 0, 2)

	// Order: remaining original edges in insertion order, rewired edge last.
	assert.Equal(t, []int{2, 3, 0}, mg.IncidentEdges(0))

	// Early termination stops the walk.
	var seen []int
	mg.VisitIncident(0, func(e int) bool {
		seen = append(seen, e)

		return len(seen) < 2
	})
	assert.Equal(t, []int{2, 3}, seen)
}
