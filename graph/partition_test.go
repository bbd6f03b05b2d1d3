package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertPartitioning verifies that the subgraphs cover every parent vertex
// exactly once.
func assertPartitioning(t *testing.T, parent *Graph, subgraphs []*Subgraph) {
	t.Helper()

	seen := make([]int, parent.VertexCount())
	total := 0
	for _, s := range subgraphs {
		for local := 0; local < s.VertexCount(); local++ {
			global, err := s.LocalToGlobal(local)
			require.NoError(t, err)
			seen[global]++
			total++
		}
	}
	assert.Equal(t, parent.VertexCount(), total)
	for v, n := range seen {
		assert.Equal(t, 1, n, "vertex %d covered %d times", v, n)
	}
}

func TestRecursiveBisection(t *testing.T) {
	g := structuredGraph(t, false, 6)

	subgraphs, err := RecursiveBisection(g, 4)
	require.NoError(t, err)
	require.Len(t, subgraphs, 4)

	assertPartitioning(t, g, subgraphs)

	// No partition should be empty or hold almost everything.
	for i, s := range subgraphs {
		assert.Greater(t, s.VertexCount(), 0, "partition %d", i)
		assert.Less(t, s.VertexCount(), g.VertexCount(), "partition %d", i)
	}
}

func TestRecursiveBisectionSinglePartition(t *testing.T) {
	g := saadGraph(t)

	subgraphs, err := RecursiveBisection(g, 1)
	require.NoError(t, err)
	require.Len(t, subgraphs, 1)
	assert.Equal(t, g.VertexCount(), subgraphs[0].VertexCount())
}

func TestRecursiveBisectionValidation(t *testing.T) {
	g := saadGraph(t)

	_, err := RecursiveBisection(g, 0)
	assert.ErrorIs(t, err, ErrPartitionCount)

	_, err = RecursiveBisection(g, 16)
	assert.ErrorIs(t, err, ErrPartitionCount)
}

func TestMultinodeLevelSetExpansion(t *testing.T) {
	g := structuredGraph(t, false, 6)

	subgraphs, err := MultinodeLevelSetExpansion(g, 3, 2)
	require.NoError(t, err)
	require.Len(t, subgraphs, 3)

	assertPartitioning(t, g, subgraphs)
}
