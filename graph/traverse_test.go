package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelTraversal(t *testing.T) {
	g := saadGraph(t)

	levels, err := g.LevelTraversal([]int{0}, -1)
	require.NoError(t, err)
	require.Len(t, levels, 15)

	assert.Equal(t, 0, levels[0])
	assert.Equal(t, 1, levels[6])
	assert.Equal(t, 1, levels[8])
	assert.Equal(t, 2, levels[2])
	assert.Equal(t, 2, levels[7])
	assert.Equal(t, 2, levels[1])
	assert.Equal(t, 6, levels[5])

	// Triangle inequality over edges: adjacent levels differ by at most 1.
	for v := 0; v < g.VertexCount(); v++ {
		for _, w := range g.Neighbors(v) {
			diff := levels[v] - levels[w]
			if diff < 0 {
				diff = -diff
			}
			assert.LessOrEqual(t, diff, 1, "edge (%d, %d)", v, w)
		}
	}
}

func TestLevelTraversalEndLevel(t *testing.T) {
	g := saadGraph(t)

	levels, err := g.LevelTraversal([]int{0}, 2)
	require.NoError(t, err)

	for v, l := range levels {
		if l == Unreached {
			continue
		}
		assert.LessOrEqual(t, l, 2, "vertex %d", v)
	}
	assert.Equal(t, Unreached, levels[5], "distance-6 vertex must be unreached at cut-off 2")
	assert.Equal(t, 2, levels[7])
}

func TestLevelTraversalMultipleSeeds(t *testing.T) {
	g := saadGraph(t)

	levels, err := g.LevelTraversal([]int{0, 5}, -1)
	require.NoError(t, err)

	assert.Equal(t, 0, levels[0])
	assert.Equal(t, 0, levels[5])
	assert.Equal(t, 1, levels[13])
	for v, l := range levels {
		assert.NotEqual(t, Unreached, l, "vertex %d", v)
	}
}

func TestLevelTraversalUnreachedSentinel(t *testing.T) {
	g := NewGraph(false)
	_, err := g.Insert(Edge{0, 1})
	require.NoError(t, err)
	g.Resize(4) // vertices 2 and 3 are disconnected

	levels, err := g.LevelTraversal([]int{0}, -1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, Unreached, Unreached}, levels)
}

func TestLevelTraversalErrors(t *testing.T) {
	g := NewGraph(false)
	_, err := g.LevelTraversal([]int{0}, -1)
	assert.ErrorIs(t, err, ErrEmptyGraph)

	g = saadGraph(t)
	_, err = g.LevelTraversal([]int{42}, -1)
	assert.ErrorIs(t, err, ErrVertexRange)
	_, err = g.LevelTraversal(nil, -1)
	assert.ErrorIs(t, err, ErrVertexRange)
}

func TestPseudoPeripheral(t *testing.T) {
	g := saadGraph(t)

	// The Saad reference expectations.
	v, err := g.PseudoPeripheral(11)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	v, err = g.PseudoPeripheral(2)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestPseudoPeripheralZeroDegree(t *testing.T) {
	g := saadGraph(t)
	g.Resize(16) // vertex 15 is isolated

	v, err := g.PseudoPeripheral(15)
	require.NoError(t, err)
	assert.Equal(t, 15, v)
}

func TestPseudoPeripheralErrors(t *testing.T) {
	g := NewGraph(false)
	_, err := g.PseudoPeripheral(0)
	assert.ErrorIs(t, err, ErrEmptyGraph)

	g = saadGraph(t)
	_, err = g.PseudoPeripheral(-1)
	assert.ErrorIs(t, err, ErrVertexRange)
}

func TestLevelExpansion(t *testing.T) {
	g := structuredGraph(t, false, 4)

	color, err := g.LevelExpansion([]int{0, 15})
	require.NoError(t, err)
	require.Len(t, color, 16)

	assert.Equal(t, 0, color[0])
	assert.Equal(t, 1, color[15])
	assert.Equal(t, 0, color[1])
	assert.Equal(t, 1, color[14])

	// Every vertex is coloured with one of the seed indices.  Tie-distance
	// vertices on the anti-diagonal go to whichever queue drains first in
	// the deciding round, so the split is deterministic but not even.
	counts := map[int]int{}
	for _, c := range color {
		require.Contains(t, []int{0, 1}, c)
		counts[c]++
	}
	assert.Equal(t, 16, counts[0]+counts[1])
	assert.Equal(t, 10, counts[0])
	assert.Equal(t, 6, counts[1])
}

func TestLevelExpansionDisjoint(t *testing.T) {
	g, err := NewGraphFromEdges(false, []Edge{{0, 1}, {2, 3}})
	require.NoError(t, err)

	_, err = g.LevelExpansion([]int{0})
	assert.ErrorIs(t, err, ErrDisjoint)
}

func TestDistanceMatrix(t *testing.T) {
	g := saadGraph(t)

	distance, err := g.DistanceMatrix()
	require.NoError(t, err)
	require.Len(t, distance, 15)

	for u := range distance {
		assert.Equal(t, 0, distance[u][u])
		for v := range distance[u] {
			assert.Equal(t, distance[u][v], distance[v][u], "distance symmetry (%d, %d)", u, v)
		}
	}
	assert.Equal(t, 6, distance[0][5])
}
