package graph

// Generations returns the length of the longest ancestral line in the
// graph, counting individuals. Nodes on a cycle and their ancestors are
// never released by Kahn's algorithm and do not count. An empty graph has
// zero generations.
func (g *Graph) Generations() int {
	// Process children before parents: a node is ready once every child
	// pointing at it has been seen.
	inDegree := make(map[string]int, len(g.nodes))
	for _, parents := range g.edges {
		for _, p := range parents {
			inDegree[p]++
		}
	}

	depth := make(map[string]int, len(g.nodes))
	var queue []string
	for _, x := range g.sortedNodes() {
		if inDegree[x] == 0 {
			queue = append(queue, x)
			depth[x] = 1
		}
	}

	best := 0
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		best = max(best, depth[x])

		for _, p := range g.edges[x] {
			depth[p] = max(depth[p], depth[x]+1)
			inDegree[p]--
			if inDegree[p] == 0 {
				queue = append(queue, p)
			}
		}
	}
	return best
}
