package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// saadGraph builds the 15-vertex reference graph from Saad's textbook used
// throughout the traversal and reordering tests.
func saadGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := NewGraphFromEdges(false, []Edge{
		{0, 6}, {0, 8},
		{1, 7}, {1, 8}, {1, 10}, {1, 12},
		{2, 6}, {2, 7}, {2, 9},
		{3, 11}, {3, 12}, {3, 14},
		{4, 9}, {4, 10}, {4, 11}, {4, 13},
		{5, 13}, {5, 14},
		{6, 7}, {6, 8},
		{7, 8}, {7, 9}, {7, 10},
		{9, 10},
		{10, 11}, {10, 12},
		{11, 12}, {11, 13}, {11, 14},
		{13, 14},
	})
	require.NoError(t, err)
	return g
}

// structuredGraph builds an n x n grid graph.
func structuredGraph(t *testing.T, directed bool, n int) *Graph {
	t.Helper()
	g := NewGraph(directed)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v := y*n + x
			if x != 0 {
				_, err := g.Insert(Edge{v - 1, v})
				require.NoError(t, err)
			}
			if x != n-1 {
				_, err := g.Insert(Edge{v, v + 1})
				require.NoError(t, err)
			}
			if y != 0 {
				_, err := g.Insert(Edge{v - n, v})
				require.NoError(t, err)
			}
			if y < n-1 {
				_, err := g.Insert(Edge{v, v + n})
				require.NoError(t, err)
			}
		}
	}
	return g
}

func TestGraphInsertUndirected(t *testing.T) {
	g := NewGraph(false)

	inserted, err := g.Insert(Edge{0, 2})
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())

	// Both endpoint slices carry the edge.
	assert.Equal(t, []int{2}, g.Neighbors(0))
	assert.Equal(t, []int{0}, g.Neighbors(2))

	// Repeat insertion is a no-op.
	inserted, err = g.Insert(Edge{2, 0})
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, 1, g.EdgeCount())

	// Neighbour lists stay sorted.
	_, err = g.Insert(Edge{2, 3})
	require.NoError(t, err)
	_, err = g.Insert(Edge{2, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, g.Neighbors(2))
}

func TestGraphInsertSelfLoop(t *testing.T) {
	g := NewGraph(false)
	_, err := g.Insert(Edge{1, 1})
	assert.ErrorIs(t, err, ErrSelfLoop)
}

func TestGraphInsertDirected(t *testing.T) {
	g := NewGraph(true)

	_, err := g.Insert(Edge{0, 2})
	require.NoError(t, err)
	_, err = g.Insert(Edge{2, 1})
	require.NoError(t, err)

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []int{2}, g.Neighbors(0))
	assert.Equal(t, []int{1}, g.Neighbors(2))
	assert.Empty(t, g.Neighbors(1))

	assert.True(t, g.Contains(Edge{0, 2}))
	assert.False(t, g.Contains(Edge{2, 0}))
}

func TestGraphEdgeStorageInvariant(t *testing.T) {
	g := saadGraph(t)

	// For an undirected graph every edge appears twice.
	assert.Equal(t, 15, g.VertexCount())
	assert.Equal(t, 30, g.EdgeCount())

	doubled := 0
	for v := 0; v < g.VertexCount(); v++ {
		for _, w := range g.Neighbors(v) {
			assert.True(t, g.Contains(Edge{w, v}), "edge (%d, %d) missing its mirror", v, w)
			doubled++
		}
	}
	assert.Equal(t, 2*g.EdgeCount(), doubled)
}

func TestGraphDegree(t *testing.T) {
	g := saadGraph(t)

	deg, err := g.Degree(11)
	require.NoError(t, err)
	assert.Equal(t, 6, deg)

	_, err = g.Degree(15)
	assert.ErrorIs(t, err, ErrVertexRange)
}

func TestGraphResize(t *testing.T) {
	// Sizing up appends a disconnected point cloud.
	g := NewGraph(false)
	g.Resize(5)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())

	// Sizing down a fully connected pentagon leaves a 2-simplex.
	g, err := NewGraphFromEdges(false, []Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {0, 4},
		{0, 2}, {0, 3}, {1, 3}, {1, 4}, {2, 4},
	})
	require.NoError(t, err)

	g.Resize(3)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))
	assert.Equal(t, []int{0, 2}, g.Neighbors(1))
	assert.Equal(t, []int{0, 1}, g.Neighbors(2))

	g.Resize(0)
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraphEraseIfUndirected(t *testing.T) {
	g := saadGraph(t)

	newToOld := g.EraseIf(func(v int) bool { return v%2 != 0 })

	// Survivors 0, 2, 4, 6, 8, 10, 12, 14 relabelled 0..7 in order.
	assert.Equal(t, []int{0, 2, 4, 6, 8, 10, 12, 14}, newToOld)
	expected, err := NewGraphFromEdges(false, []Edge{
		{0, 3}, {0, 4}, {1, 3}, {2, 5}, {3, 4}, {5, 6},
	})
	require.NoError(t, err)
	expected.Resize(8)

	require.Equal(t, expected.VertexCount(), g.VertexCount())
	for v := 0; v < expected.VertexCount(); v++ {
		assert.Equal(t, expected.Neighbors(v), g.Neighbors(v), "vertex %d", v)
	}
}

func TestGraphEraseIfDirected(t *testing.T) {
	g := structuredGraph(t, true, 4)

	g.EraseIf(func(v int) bool { return v%2 == 0 })

	// Odd vertices 1, 3, .., 15 relabel to 0..7; only ascending-direction
	// vertical edges survive.
	expected, err := NewGraphFromEdges(true, []Edge{
		{0, 2}, {1, 3}, {2, 4}, {3, 5}, {4, 6}, {5, 7},
	})
	require.NoError(t, err)
	expected.Resize(8)

	require.Equal(t, expected.VertexCount(), g.VertexCount())
	for v := 0; v < expected.VertexCount(); v++ {
		assert.Equal(t, expected.Neighbors(v), g.Neighbors(v), "vertex %d", v)
	}
}

func TestGraphReorder(t *testing.T) {
	g, err := NewGraphFromEdges(false, []Edge{{0, 1}, {1, 2}, {2, 3}, {0, 3}})
	require.NoError(t, err)

	// Rotate all vertices by one.
	perm := []int{1, 2, 3, 0}
	old, err := g.Reorder(perm)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, g.Neighbors(2), "old vertex 1 moved to 2 with neighbours relabelled")
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []int{1, 3}, old.Neighbors(0), "returned graph holds the pre-reorder contents")
}

func TestGraphReorderRoundTrip(t *testing.T) {
	g := saadGraph(t)
	original := g.Clone()

	perm := []int{7, 3, 11, 0, 14, 2, 9, 5, 12, 1, 8, 13, 6, 4, 10}
	inverse := make([]int, len(perm))
	for i, p := range perm {
		inverse[p] = i
	}

	_, err := g.Reorder(perm)
	require.NoError(t, err)
	_, err = g.Reorder(inverse)
	require.NoError(t, err)

	for v := 0; v < original.VertexCount(); v++ {
		assert.Equal(t, original.Neighbors(v), g.Neighbors(v), "vertex %d", v)
	}
}

func TestGraphReorderValidation(t *testing.T) {
	g := saadGraph(t)

	_, err := g.Reorder([]int{0, 1, 2})
	assert.ErrorIs(t, err, ErrBadPermutation)

	// Correct length and checksum but repeated indices: the bitset catches
	// what the arithmetic sum test would admit.
	perm := make([]int, 15)
	for i := range perm {
		perm[i] = i
	}
	perm[3], perm[4] = 2, 5 // sum preserved, 2 duplicated
	_, err = g.Reorder(perm)
	assert.ErrorIs(t, err, ErrBadPermutation)
}

func TestGraphCloneSwapClear(t *testing.T) {
	g := saadGraph(t)
	c := g.Clone()

	other := NewGraph(false)
	g.Swap(other)
	assert.True(t, g.IsEmpty())
	assert.Equal(t, 15, other.VertexCount())

	// Clone is deep.
	_, err := c.Insert(Edge{0, 1})
	require.NoError(t, err)
	assert.False(t, other.Contains(Edge{0, 1}))

	other.Clear()
	assert.True(t, other.IsEmpty())
	assert.Equal(t, 0, other.EdgeCount())
}
