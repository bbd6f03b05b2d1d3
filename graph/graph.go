package graph

import (
	"hash/fnv"
	"sort"
)

// Edge connects two vertices.  For an undirected graph the pair is unordered;
// for a directed graph the edge runs U -> V.
type Edge struct {
	U, V int
}

// ordered returns the edge endpoints as (lower, upper).
func (e Edge) ordered() (int, int) {
	if e.U > e.V {
		return e.V, e.U
	}
	return e.U, e.V
}

// Graph is an adjacency graph G(V, E) with the vertex count implicit from the
// offset array.  Neighbour lists are stored in one contiguous slice,
// adjacency, with offset[v] giving the start of vertex v's slice, exactly as
// a CSR matrix stores its sparsity pattern.  Within each vertex slice the
// neighbour indices are strictly ascending.  For an undirected graph each
// edge appears in both endpoint slices; for a directed graph it appears only
// in the source slice.
type Graph struct {
	directed  bool
	offset    []int
	adjacency []int
}

// NewGraph creates an empty graph.
func NewGraph(directed bool) *Graph {
	return &Graph{directed: directed, offset: []int{0}}
}

// NewGraphFromEdges creates a graph from an edge list.  The vertex count is
// max(endpoint) + 1 over all edges.  A self-loop edge is rejected.
func NewGraphFromEdges(directed bool, edges []Edge) (*Graph, error) {
	g := NewGraph(directed)
	for _, e := range edges {
		if _, err := g.Insert(e); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Directed reports whether the graph is directed.
func (g *Graph) Directed() bool { return g.directed }

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.offset) - 1 }

// EdgeCount returns |E|.  Each undirected edge is stored twice but counted
// once.
func (g *Graph) EdgeCount() int {
	if g.directed {
		return len(g.adjacency)
	}
	return len(g.adjacency) / 2
}

// IsEmpty reports whether the graph has no vertices.
func (g *Graph) IsEmpty() bool { return len(g.offset) < 2 }

// Degree returns the number of neighbours of v (out-degree for a directed
// graph).
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= g.VertexCount() {
		return 0, ErrVertexRange
	}
	return g.offset[v+1] - g.offset[v], nil
}

// Neighbors returns vertex v's neighbour slice, strictly ascending.  The
// slice shares backing storage with the graph and must not be mutated.
func (g *Graph) Neighbors(v int) []int {
	return g.adjacency[g.offset[v]:g.offset[v+1]]
}

// Contains reports whether the edge is present.  A self-loop query is never
// present.
func (g *Graph) Contains(e Edge) bool {
	u, v := e.U, e.V
	if !g.directed {
		u, v = e.ordered()
	}
	if u < 0 || v < 0 || u >= g.VertexCount() || v >= g.VertexCount() || u == v {
		return false
	}
	adj := g.Neighbors(u)
	k := sort.SearchInts(adj, v)
	return k < len(adj) && adj[k] == v
}

// Insert adds the edge to the graph, growing the vertex count when an
// endpoint is beyond the current size.  Insert reports whether the edge was
// added; an already present edge leaves the graph unchanged.  Self-loops are
// rejected with ErrSelfLoop.
func (g *Graph) Insert(e Edge) (bool, error) {
	if e.U == e.V {
		return false, ErrSelfLoop
	}
	if e.U < 0 || e.V < 0 {
		return false, ErrVertexRange
	}
	if g.Contains(e) {
		return false, nil
	}

	lower, upper := e.ordered()
	if upper >= g.VertexCount() {
		g.Resize(upper + 1)
	}

	if g.directed {
		g.insertAdjacent(e.U, e.V)
		return true, nil
	}
	g.insertAdjacent(lower, upper)
	g.insertAdjacent(upper, lower)
	return true, nil
}

// insertAdjacent places v in sorted position within u's neighbour slice and
// shifts the successive offsets up by one.
func (g *Graph) insertAdjacent(u, v int) {
	p := g.offset[u] + sort.SearchInts(g.Neighbors(u), v)
	g.adjacency = append(g.adjacency, 0)
	copy(g.adjacency[p+1:], g.adjacency[p:])
	g.adjacency[p] = v

	for k := u + 1; k < len(g.offset); k++ {
		g.offset[k]++
	}
}

// Resize changes the vertex count.  Growing appends disconnected vertices.
// Shrinking removes every vertex with index >= size together with its
// incident edges, truncating each surviving neighbour slice at its first
// out-of-range entry and carrying the offset decrement forward.
func (g *Graph) Resize(size int) {
	if size >= g.VertexCount() {
		back := g.offset[len(g.offset)-1]
		for n := g.VertexCount(); n < size; n++ {
			g.offset = append(g.offset, back)
		}
		return
	}

	g.adjacency = g.adjacency[:g.offset[size]]
	g.offset = g.offset[:size+1]

	t := 0
	begin := g.offset[0]
	for v := 0; v < size; v++ {
		end := g.offset[v+1]
		cut := begin + sort.SearchInts(g.adjacency[begin:end], size)
		for k := begin; k < cut; k++ {
			g.adjacency[t] = g.adjacency[k]
			t++
		}
		begin = end
		g.offset[v+1] = t
	}
	g.adjacency = g.adjacency[:t]
}

// EraseIf removes every vertex for which pred holds, along with all incident
// edges.  Surviving vertices are compacted, keeping their original relative
// order; the returned slice maps the new vertex indices to the old ones.
func (g *Graph) EraseIf(pred func(v int) bool) []int {
	n := g.VertexCount()
	relabel := make([]int, n)
	newToOld := make([]int, 0, n)
	kept := 0
	for v := 0; v < n; v++ {
		if pred(v) {
			relabel[v] = -1
			continue
		}
		relabel[v] = kept
		newToOld = append(newToOld, v)
		kept++
	}

	offset := make([]int, 1, kept+1)
	adjacency := make([]int, 0, len(g.adjacency))
	for _, old := range newToOld {
		for _, w := range g.Neighbors(old) {
			if relabel[w] >= 0 {
				adjacency = append(adjacency, relabel[w])
			}
		}
		offset = append(offset, len(adjacency))
	}

	g.offset = offset
	g.adjacency = adjacency
	return newToOld
}

// Reorder produces a new graph whose edge set is the image of the receiver's
// under the permutation, i.e. new vertex perm[v] holds old vertex v's
// adjacency, relabelled and resorted.  The receiver takes the reordered
// contents and the previous graph is returned for optional reuse.  The
// permutation must be a bijection on [0, |V|), validated with a seen-index
// bitset.
func (g *Graph) Reorder(perm []int) (*Graph, error) {
	n := g.VertexCount()
	if len(perm) != n {
		return nil, ErrBadPermutation
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, ErrBadPermutation
		}
		seen[p] = true
	}

	reordered := &Graph{
		directed:  g.directed,
		offset:    make([]int, len(g.offset)),
		adjacency: make([]int, len(g.adjacency)),
	}

	// Record old-vertex degrees at their new positions, then prefix sum.
	if !g.IsEmpty() {
		for old := 0; old < n; old++ {
			reordered.offset[perm[old]+1] = g.offset[old+1] - g.offset[old]
		}
		for v := 0; v < n; v++ {
			reordered.offset[v+1] += reordered.offset[v]
		}
	}

	// Copy each adjacency list to its new position with relabelling, then
	// restore the ascending ordering.
	for old := 0; old < n; old++ {
		target := reordered.adjacency[reordered.offset[perm[old]]:reordered.offset[perm[old]+1]]
		for k, w := range g.Neighbors(old) {
			target[k] = perm[w]
		}
		sort.Ints(target)
	}

	old := &Graph{}
	*old = *g
	*g = *reordered
	return old, nil
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		directed:  g.directed,
		offset:    make([]int, len(g.offset)),
		adjacency: make([]int, len(g.adjacency)),
	}
	copy(c.offset, g.offset)
	copy(c.adjacency, g.adjacency)
	return c
}

// Swap exchanges the contents of the receiver and other.
func (g *Graph) Swap(other *Graph) {
	*g, *other = *other, *g
}

// Clear removes all vertices and edges, retaining the backing capacity.
func (g *Graph) Clear() {
	g.offset = g.offset[:1]
	g.offset[0] = 0
	g.adjacency = g.adjacency[:0]
}

// hash fingerprints the graph structure; subgraphs use it to reject updates
// against a graph other than their parent.
func (g *Graph) hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)
	put := func(v uint64) {
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf)
	}
	if g.directed {
		put(1)
	} else {
		put(0)
	}
	for _, off := range g.offset {
		put(uint64(off))
	}
	for _, v := range g.adjacency {
		put(uint64(v))
	}
	return h.Sum64()
}
