// Package graph builds the co-occurrence graph over segment indices and
// computes the three-level branching signature of every node.
//
// Two segments are adjacent when some recurring unit occurs in both. A
// location list of n distinct indices therefore induces a clique. Neighbor
// sets keep the order in which neighbors were discovered, which the
// signature walk depends on.
package graph

import (
	"sort"

	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/indexer/index"
)

type neighborSet struct {
	order   []int
	members map[int]struct{}
}

func (s *neighborSet) add(n int) {
	if _, exists := s.members[n]; exists {
		return
	}
	s.members[n] = struct{}{}
	s.order = append(s.order, n)
}

func (s *neighborSet) has(n int) bool {
	_, ok := s.members[n]
	return ok
}

// Graph is an undirected graph over segment indices with ordered adjacency.
type Graph struct {
	nodes []int
	adj   map[int]*neighborSet
}

// Build constructs the co-occurrence graph from a filtered location-list
// collection in a single pass. Self loops are never recorded and repeated
// indices within a list collapse.
func Build(lists []index.LocationList) *Graph {
	g := &Graph{adj: make(map[int]*neighborSet)}
	for _, locations := range lists {
		for _, loc := range locations {
			set := g.node(loc)
			for _, other := range locations {
				if other != loc {
					set.add(other)
				}
			}
		}
	}
	return g
}

func (g *Graph) node(n int) *neighborSet {
	set, exists := g.adj[n]
	if !exists {
		set = &neighborSet{members: make(map[int]struct{})}
		g.adj[n] = set
		g.nodes = append(g.nodes, n)
	}
	return set
}

// Nodes returns every node in first-insertion order.
func (g *Graph) Nodes() []int {
	return append([]int(nil), g.nodes...)
}

// SortedNodes returns every node in ascending order.
func (g *Graph) SortedNodes() []int {
	nodes := g.Nodes()
	sort.Ints(nodes)
	return nodes
}

func (g *Graph) Len() int {
	return len(g.nodes)
}

func (g *Graph) Has(n int) bool {
	_, ok := g.adj[n]
	return ok
}

// Neighbors returns the neighbors of n in discovery order, or nil when n is
// not in the graph.
func (g *Graph) Neighbors(n int) []int {
	set, exists := g.adj[n]
	if !exists {
		return nil
	}
	return append([]int(nil), set.order...)
}

// Adjacent reports whether a and b share a recurring unit.
func (g *Graph) Adjacent(a, b int) bool {
	set, exists := g.adj[a]
	return exists && set.has(b)
}

// Edges returns the number of undirected edges.
func (g *Graph) Edges() int {
	total := 0
	for _, set := range g.adj {
		total += len(set.order)
	}
	return total / 2
}
