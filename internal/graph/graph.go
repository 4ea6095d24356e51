// Package graph builds the parent/child lineage graph of a document and
// analyses it for cycles and generation depth.
package graph

import (
	"slices"

	"github.com/gogedcom/gedcom/tree"
)

// Graph is a directed graph of individual xrefs with an edge from each
// child to each of its parents.
type Graph struct {
	nodes map[string]struct{}
	edges map[string][]string
}

// New returns a graph with no nodes or edges.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]struct{}),
		edges: make(map[string][]string),
	}
}

// FromDocument builds the lineage graph of doc. Every individual is a
// node. For every family, each child gets an edge to the husband and the
// wife. References to missing individuals still create nodes.
func FromDocument(doc *tree.Document) *Graph {
	g := New()
	for _, ind := range doc.Individuals() {
		if ind.Xref != "" {
			g.AddNode(ind.Xref)
		}
	}
	for _, fam := range doc.Families() {
		parents := fam.Parents()
		for _, child := range fam.Children {
			for _, parent := range parents {
				g.AddEdge(child, parent)
			}
		}
	}
	return g
}

// AddNode registers an xref. Duplicate calls are no-ops.
func (g *Graph) AddNode(xref string) {
	g.nodes[xref] = struct{}{}
}

// AddEdge records that child descends from parent. Missing nodes are
// created implicitly. Duplicate edges are ignored.
func (g *Graph) AddEdge(child, parent string) {
	g.nodes[child] = struct{}{}
	g.nodes[parent] = struct{}{}

	if slices.Contains(g.edges[child], parent) {
		return
	}
	g.edges[child] = append(g.edges[child], parent)
}

// Parents returns the parents recorded for xref.
func (g *Graph) Parents(xref string) []string {
	return g.edges[xref]
}

// HasNode reports whether xref exists in the graph.
func (g *Graph) HasNode(xref string) bool {
	_, ok := g.nodes[xref]
	return ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// sortedNodes returns the nodes in xref order so traversals are
// deterministic.
func (g *Graph) sortedNodes() []string {
	out := make([]string, 0, len(g.nodes))
	for x := range g.nodes {
		out = append(out, x)
	}
	slices.Sort(out)
	return out
}
