package graph

import (
	"sort"
)

// Subgraph is a view of a parent graph over a subset of its vertices, held as
// an owned graph with a local vertex indexing.  Each local vertex carries a
// level value: 0 for the primary partition, k > 0 for vertices added through
// k levels of neighbour expansion.  The parent's structural hash is retained
// so that later updates against a different graph are rejected.
type Subgraph struct {
	graph         *Graph
	localToGlobal []int
	level         []int
	parentHash    uint64
}

// NewSubgraph constructs the subgraph of parent induced by the given global
// vertex subset, which must be duplicate free and within range.  The subset
// forms the primary partition: every level value is zero.  Local indices
// number the subset in ascending global order.
func NewSubgraph(parent *Graph, partition []int) (*Subgraph, error) {
	inSet := make(map[int]bool, len(partition))
	for _, v := range partition {
		if v < 0 || v >= parent.VertexCount() {
			return nil, ErrVertexRange
		}
		if inSet[v] {
			return nil, ErrDuplicateVertex
		}
		inSet[v] = true
	}

	local := parent.Clone()
	newToOld := local.EraseIf(func(v int) bool { return !inSet[v] })

	s := &Subgraph{
		graph:         local,
		localToGlobal: newToOld,
		level:         make([]int, len(newToOld)),
		parentHash:    parent.hash(),
	}
	return s, nil
}

// Graph returns the owned local graph.  It shares storage with the subgraph
// and must not be structurally mutated by callers.
func (s *Subgraph) Graph() *Graph { return s.graph }

// VertexCount returns the number of local vertices.
func (s *Subgraph) VertexCount() int { return len(s.localToGlobal) }

// LocalToGlobal maps a local vertex index to the parent's global index.
func (s *Subgraph) LocalToGlobal(local int) (int, error) {
	if local < 0 || local >= len(s.localToGlobal) {
		return 0, ErrVertexRange
	}
	return s.localToGlobal[local], nil
}

// GlobalToLocal maps a global vertex index to its local index, reporting
// whether the vertex is part of the subgraph.
func (s *Subgraph) GlobalToLocal(global int) (int, bool) {
	k := sort.SearchInts(s.localToGlobal, global)
	if k < len(s.localToGlobal) && s.localToGlobal[k] == global {
		return k, true
	}
	// Vertices appended by level extension are past the sorted primary
	// block; fall back to a scan.
	for local, g := range s.localToGlobal {
		if g == global {
			return local, true
		}
	}
	return 0, false
}

// Level returns the level value of a local vertex.
func (s *Subgraph) Level(local int) (int, error) {
	if local < 0 || local >= len(s.level) {
		return 0, ErrVertexRange
	}
	return s.level[local], nil
}

// MaxLevel returns the highest level value present, zero for a primary-only
// subgraph.
func (s *Subgraph) MaxLevel() int {
	max := 0
	for _, l := range s.level {
		if l > max {
			max = l
		}
	}
	return max
}

// UpdateLevels grows or shrinks the halo of the subgraph so that its maximum
// level value equals maxLevel.  Growing performs a level traversal of the
// parent seeded with the current outermost vertex set, adding newly reached
// vertices and the parent edges among them; shrinking erases local vertices
// whose level exceeds the target.  The parent must be the graph the subgraph
// was built from.
func (s *Subgraph) UpdateLevels(parent *Graph, maxLevel int) error {
	if parent.hash() != s.parentHash {
		return ErrNotParent
	}

	current := s.MaxLevel()
	if current < maxLevel {
		return s.addLevels(parent, maxLevel, current)
	}
	s.removeLevels(maxLevel)
	return nil
}

// addLevels extends the subgraph with vertices at parent-graph distance
// (current, maxLevel] of the primary partition.
func (s *Subgraph) addLevels(parent *Graph, maxLevel, current int) error {
	globalToLocal := make([]int, parent.VertexCount())
	for i := range globalToLocal {
		globalToLocal[i] = -1
	}

	// Seed the parent traversal with the outermost shell, pre-marking every
	// member vertex with its known level.
	levels := make([]int, parent.VertexCount())
	for i := range levels {
		levels[i] = Unreached
	}
	var queue []int
	for local, global := range s.localToGlobal {
		if s.level[local] == current {
			queue = append(queue, global)
		}
		levels[global] = s.level[local]
		globalToLocal[global] = local
	}

	parent.levelSweep(queue, levels, maxLevel)

	// Adopt the newly reached vertices into the local indexing.
	for global, lvl := range levels {
		if current < lvl && lvl != Unreached && lvl <= maxLevel {
			globalToLocal[global] = len(s.localToGlobal)
			s.localToGlobal = append(s.localToGlobal, global)
			s.level = append(s.level, lvl)
		}
	}
	s.graph.Resize(len(s.localToGlobal))

	// Wire the added vertices to every neighbour present in the subgraph.
	for global, lvl := range levels {
		if current < lvl && lvl != Unreached && lvl <= maxLevel {
			local := globalToLocal[global]
			for _, adjacentGlobal := range parent.Neighbors(global) {
				if adjacentLocal := globalToLocal[adjacentGlobal]; adjacentLocal >= 0 {
					if _, err := s.graph.Insert(Edge{U: local, V: adjacentLocal}); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// removeLevels erases local vertices whose level value exceeds maxLevel and
// compacts the mapping and level storage consistently.
func (s *Subgraph) removeLevels(maxLevel int) {
	levels := s.level
	newToOld := s.graph.EraseIf(func(v int) bool { return levels[v] > maxLevel })

	localToGlobal := make([]int, len(newToOld))
	level := make([]int, len(newToOld))
	for local, old := range newToOld {
		localToGlobal[local] = s.localToGlobal[old]
		level[local] = s.level[old]
	}
	s.localToGlobal = localToGlobal
	s.level = level
}

// Reorder permutes the local vertex indexing, keeping the mapping and level
// values consistent.  The previous local graph is returned for optional
// reuse.
func (s *Subgraph) Reorder(perm []int) (*Graph, error) {
	old, err := s.graph.Reorder(perm)
	if err != nil {
		return nil, err
	}

	localToGlobal := make([]int, len(s.localToGlobal))
	level := make([]int, len(s.level))
	for i, p := range perm {
		localToGlobal[p] = s.localToGlobal[i]
		level[p] = s.level[i]
	}
	s.localToGlobal = localToGlobal
	s.level = level
	return old, nil
}
