package graph

// RecursiveBisection splits the graph into the requested number of partitions
// by repeatedly bisecting the largest current partition: a level traversal is
// run from a pseudo-peripheral vertex of that partition and the vertices at
// or below the middle level form one half, the rest the other.
func RecursiveBisection(g *Graph, partitions int) ([]*Subgraph, error) {
	if partitions <= 0 || partitions > g.VertexCount() {
		return nil, ErrPartitionCount
	}

	whole := make([]int, g.VertexCount())
	for v := range whole {
		whole[v] = v
	}
	first, err := NewSubgraph(g, whole)
	if err != nil {
		return nil, err
	}
	subgraphs := []*Subgraph{first}

	for len(subgraphs) < partitions {
		// Split the largest partition.
		split := 0
		for i, s := range subgraphs {
			if s.VertexCount() > subgraphs[split].VertexCount() {
				split = i
			}
		}
		local := subgraphs[split].Graph()

		peripheral, err := local.PseudoPeripheral(0)
		if err != nil {
			return nil, err
		}
		levels, err := local.LevelTraversal([]int{peripheral}, -1)
		if err != nil {
			return nil, err
		}
		maxLevel := 0
		for _, l := range levels {
			if l != Unreached && l > maxLevel {
				maxLevel = l
			}
		}
		middle := maxLevel / 2

		var left, right []int
		for v, l := range levels {
			global, err := subgraphs[split].LocalToGlobal(v)
			if err != nil {
				return nil, err
			}
			if l != Unreached && l <= middle {
				left = append(left, global)
			} else {
				right = append(right, global)
			}
		}
		if len(left) == 0 || len(right) == 0 {
			return nil, ErrPartitionCount
		}

		if subgraphs[split], err = NewSubgraph(g, left); err != nil {
			return nil, err
		}
		rightSub, err := NewSubgraph(g, right)
		if err != nil {
			return nil, err
		}
		subgraphs = append(subgraphs, rightSub)

		log.Debug().Int("partitions", len(subgraphs)).
			Int("left", len(left)).Int("right", len(right)).
			Msg("bisected largest partition")
	}

	return subgraphs, nil
}

// MultinodeLevelSetExpansion partitions the graph by iterating seeded level
// expansion: starting from a recursive bisection, each round picks the most
// central vertex of every partition (the member minimising the maximum
// distance to the rest of its partition), recolours the whole graph by level
// expansion from those seeds and rebuilds the partitions from the colouring.
func MultinodeLevelSetExpansion(g *Graph, partitions, iterations int) ([]*Subgraph, error) {
	subgraphs, err := RecursiveBisection(g, partitions)
	if err != nil {
		return nil, err
	}

	distance, err := g.DistanceMatrix()
	if err != nil {
		return nil, err
	}

	seeds := make([]int, partitions)
	for iter := 0; iter < iterations; iter++ {
		// Find the nucleation seed of every partition.
		for i, s := range subgraphs {
			minEccentricity := Unreached
			seeds[i] = -1
			for v0 := 0; v0 < s.VertexCount(); v0++ {
				g0, _ := s.LocalToGlobal(v0)
				eccentricity := 0
				for v1 := 0; v1 < s.VertexCount(); v1++ {
					g1, _ := s.LocalToGlobal(v1)
					if d := distance[g0][g1]; d != Unreached && d > eccentricity {
						eccentricity = d
					}
				}
				if eccentricity < minEccentricity {
					minEccentricity = eccentricity
					seeds[i] = g0
				}
			}
		}

		color, err := g.LevelExpansion(seeds)
		if err != nil {
			return nil, err
		}

		members := make([][]int, partitions)
		for v, c := range color {
			members[c] = append(members[c], v)
		}
		for i := range subgraphs {
			if subgraphs[i], err = NewSubgraph(g, members[i]); err != nil {
				return nil, err
			}
		}

		log.Debug().Int("iteration", iter).Ints("seeds", seeds).
			Msg("level set expansion pass")
	}

	return subgraphs, nil
}
