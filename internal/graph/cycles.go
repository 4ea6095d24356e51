package graph

import "slices"

// Cycles returns every strongly connected component with more than one
// node, or a single node that is its own parent, found via Tarjan's
// algorithm. Each cycle is sorted, and cycles are ordered by their first
// xref.
func (g *Graph) Cycles() [][]string {
	var (
		index    int
		stack    []string
		onStack  = make(map[string]bool)
		indices  = make(map[string]int)
		lowlinks = make(map[string]int)
		sccs     [][]string
	)

	var strongConnect func(x string)
	strongConnect = func(x string) {
		indices[x] = index
		lowlinks[x] = index
		index++
		stack = append(stack, x)
		onStack[x] = true

		for _, p := range g.edges[x] {
			if _, visited := indices[p]; !visited {
				strongConnect(p)
				lowlinks[x] = min(lowlinks[x], lowlinks[p])
			} else if onStack[p] {
				lowlinks[x] = min(lowlinks[x], indices[p])
			}
		}

		if lowlinks[x] != indices[x] {
			return
		}
		var scc []string
		for {
			w := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			onStack[w] = false
			scc = append(scc, w)
			if w == x {
				break
			}
		}
		if len(scc) > 1 || slices.Contains(g.edges[scc[0]], scc[0]) {
			slices.Sort(scc)
			sccs = append(sccs, scc)
		}
	}

	for _, x := range g.sortedNodes() {
		if _, visited := indices[x]; !visited {
			strongConnect(x)
		}
	}

	slices.SortFunc(sccs, func(a, b []string) int {
		return slices.Compare(a, b)
	})
	return sccs
}

// HasCycles reports whether anyone is recorded as their own ancestor.
func (g *Graph) HasCycles() bool {
	return len(g.Cycles()) > 0
}
