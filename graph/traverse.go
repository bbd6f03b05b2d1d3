package graph

import (
	"math"
)

// Unreached is the level value assigned to vertices not reached by a
// traversal.
const Unreached = math.MaxInt

// LevelTraversal performs a breadth-first sweep from the seed vertices,
// assigning every reached vertex its graph distance to the nearest seed up to
// and including endLevel.  Unreached vertices hold Unreached.  Pass
// endLevel < 0 for an unbounded sweep.
func (g *Graph) LevelTraversal(seeds []int, endLevel int) ([]int, error) {
	if g.IsEmpty() {
		return nil, ErrEmptyGraph
	}
	if len(seeds) == 0 {
		return nil, ErrVertexRange
	}

	level := make([]int, g.VertexCount())
	for i := range level {
		level[i] = Unreached
	}
	queue := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if s < 0 || s >= g.VertexCount() {
			return nil, ErrVertexRange
		}
		level[s] = 0
		queue = append(queue, s)
	}

	g.levelSweep(queue, level, endLevel)
	return level, nil
}

// levelSweep continues a breadth-first sweep from a seeded queue over a
// partially filled level vector.  Every level is rolled up by one internally
// so that zero can mean "unvisited" during the sweep, and rolled back down on
// exit; endLevel < 0 leaves the sweep unbounded.
func (g *Graph) levelSweep(queue []int, level []int, endLevel int) {
	for i := range level {
		if level[i] != Unreached {
			level[i]++
		} else {
			level[i] = 0
		}
	}

	for len(queue) > 0 {
		front := queue[0]
		queue = queue[1:]
		if endLevel >= 0 && level[front] == endLevel+1 {
			continue
		}
		for _, w := range g.Neighbors(front) {
			if level[w] == 0 {
				level[w] = level[front] + 1
				queue = append(queue, w)
			}
		}
	}

	for i := range level {
		if level[i] == 0 {
			level[i] = Unreached
		} else {
			level[i]--
		}
	}
}

// PseudoPeripheral finds a pseudo-peripheral vertex: a vertex whose
// eccentricity approaches the graph diameter.  Starting from the given
// vertex, the candidate is repeatedly replaced by the reached vertex of
// maximum distance, ties broken towards smaller degree, until it no longer
// changes.  A zero-degree start vertex is returned unchanged.
func (g *Graph) PseudoPeripheral(start int) (int, error) {
	if g.IsEmpty() {
		return 0, ErrEmptyGraph
	}
	if start < 0 || start >= g.VertexCount() {
		return 0, ErrVertexRange
	}
	if len(g.Neighbors(start)) == 0 {
		log.Warn().Int("vertex", start).Msg("pseudo-peripheral start vertex has zero degree")
		return start, nil
	}

	peripheral := start
	maxDistance := 0
	for {
		found := true
		distance, err := g.LevelTraversal([]int{peripheral}, -1)
		if err != nil {
			return 0, err
		}
		for v := 0; v < g.VertexCount(); v++ {
			if distance[v] == Unreached {
				continue
			}
			if distance[v] > maxDistance ||
				(distance[v] == maxDistance && len(g.Neighbors(v)) < len(g.Neighbors(peripheral))) {
				maxDistance = distance[v]
				peripheral = v
				found = false
			}
		}
		if found {
			return peripheral, nil
		}
	}
}

// LevelExpansion colours every vertex with the index of the nearest seed by
// expanding one level per colour per round.  To keep tie-distance bias even,
// alternate rounds drain the per-colour queues in reverse order.  If the
// colouring is incomplete after |V| rounds the graph is disjoint from the
// seed set and ErrDisjoint is returned.
func (g *Graph) LevelExpansion(seeds []int) ([]int, error) {
	if g.IsEmpty() {
		return nil, ErrEmptyGraph
	}
	if len(seeds) == 0 {
		return nil, ErrVertexRange
	}

	color := make([]int, g.VertexCount())
	for i := range color {
		color[i] = Unreached
	}
	queues := make([][]int, len(seeds))
	for c, s := range seeds {
		if s < 0 || s >= g.VertexCount() {
			return nil, ErrVertexRange
		}
		queues[c] = []int{s}
		color[s] = c
	}

	pending := func() bool {
		for _, q := range queues {
			if len(q) > 0 {
				return true
			}
		}
		return false
	}

	iteration := 0
	for pending() {
		if iteration >= g.VertexCount() {
			return nil, ErrDisjoint
		}
		for qi := range queues {
			// Forwards and backwards sweeps alternate to keep the
			// expansion unbiased.
			i := qi
			if iteration%2 != 0 {
				i = len(queues) - qi - 1
			}

			var next []int
			for _, front := range queues[i] {
				for _, w := range g.Neighbors(front) {
					if color[w] == Unreached {
						color[w] = color[front]
						next = append(next, w)
					}
				}
			}
			queues[i] = next
		}
		iteration++
	}

	for _, c := range color {
		if c == Unreached {
			return nil, ErrDisjoint
		}
	}
	return color, nil
}

// DistanceMatrix returns the all-pairs graph distances, one level traversal
// per vertex.  distance[u][v] is Unreached when v cannot be reached from u.
func (g *Graph) DistanceMatrix() ([][]int, error) {
	if g.IsEmpty() {
		return nil, ErrEmptyGraph
	}
	distance := make([][]int, g.VertexCount())
	for v := range distance {
		row, err := g.LevelTraversal([]int{v}, -1)
		if err != nil {
			return nil, err
		}
		distance[v] = row
	}
	return distance, nil
}
