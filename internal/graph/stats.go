package graph

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises the shape of a co-occurrence graph. Signature cost grows
// with the square and cube of the degree, so MaxDegree is the number to
// watch on large corpora.
type Stats struct {
	Nodes        int     `json:"nodes"`
	Edges        int     `json:"edges"`
	Components   int     `json:"components"`
	Isolated     int     `json:"isolated"`
	MaxDegree    int     `json:"max_degree"`
	MeanDegree   float64 `json:"mean_degree"`
	DegreeStdDev float64 `json:"degree_std_dev"`
}

// Stats computes node, edge, component and degree statistics.
func (g *Graph) Stats() Stats {
	st := Stats{Nodes: len(g.nodes)}
	if st.Nodes == 0 {
		return st
	}

	ug := simple.NewUndirectedGraph()
	for _, n := range g.nodes {
		ug.AddNode(simple.Node(int64(n)))
	}
	degrees := make([]float64, 0, len(g.nodes))
	for _, n := range g.nodes {
		set := g.adj[n]
		d := len(set.order)
		degrees = append(degrees, float64(d))
		if d == 0 {
			st.Isolated++
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
		for _, m := range set.order {
			if n < m {
				ug.SetEdge(ug.NewEdge(simple.Node(int64(n)), simple.Node(int64(m))))
				st.Edges++
			}
		}
	}
	st.Components = len(topo.ConnectedComponents(ug))

	if len(degrees) > 1 {
		st.MeanDegree, st.DegreeStdDev = stat.MeanStdDev(degrees, nil)
	} else {
		st.MeanDegree = degrees[0]
	}
	return st
}
