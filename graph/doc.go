// Package graph provides an adjacency graph stored in compressed sparse row
// style offsets, together with the traversal, reordering and partitioning
// operations built on it: breadth-first level traversal, pseudo-peripheral
// vertex search, level-set expansion colouring, recursive bisection and
// subgraph views with level-set extension.
//
// The graph doubles as a sparsity-pattern carrier: a reordering computed here
// can be applied to a sparse matrix with the same structure.
//
// Errors:
//
//	ErrSelfLoop       - edge endpoints are identical.
//	ErrVertexRange    - a vertex index is outside [0, |V|).
//	ErrEmptyGraph     - operation requires a non-empty graph.
//	ErrBadPermutation - permutation is not a bijection on the vertex set.
//	ErrDisjoint       - level expansion could not colour every vertex.
//	ErrNotParent      - subgraph update against a graph it was not built from.
//	ErrPartitionCount - requested partition count is zero or exceeds |V|.
package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrSelfLoop indicates an edge connecting a vertex to itself.
	ErrSelfLoop = errors.New("graph: self-loop edge")

	// ErrVertexRange indicates a vertex index outside the graph.
	ErrVertexRange = errors.New("graph: vertex out of range")

	// ErrEmptyGraph indicates an operation on an empty graph.
	ErrEmptyGraph = errors.New("graph: graph is empty")

	// ErrBadPermutation indicates a reorder permutation of the wrong size or
	// with repeated indices.
	ErrBadPermutation = errors.New("graph: invalid permutation")

	// ErrDisjoint indicates a disconnected graph where connectivity is
	// required.
	ErrDisjoint = errors.New("graph: graph is disjoint")

	// ErrNotParent indicates a subgraph operation against a graph other than
	// the one the subgraph was constructed from.
	ErrNotParent = errors.New("graph: not the parent graph")

	// ErrDuplicateVertex indicates a vertex subset containing repeats.
	ErrDuplicateVertex = errors.New("graph: duplicate vertex in subset")

	// ErrPartitionCount indicates an unusable number of partitions.
	ErrPartitionCount = errors.New("graph: invalid partition count")
)
