package graph

import (
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/errors"
)

// Mark records whether a node reached during the walk is itself adjacent to
// the node the signature belongs to.
type Mark byte

const (
	Yes Mark = 'Y'
	No  Mark = 'N'
)

func (m Mark) String() string {
	return string(m)
}

// Step is one marker with the node it was emitted for.
type Step struct {
	Mark Mark
	Node int
}

// Signature is the bounded neighbourhood fingerprint of a node. Levels one
// and two keep the node each marker refers to; level three keeps markers
// only.
type Signature struct {
	L1 []Step
	L2 []Step
	L3 []Mark
}

// Counts is the number of Yes and No markers on one level.
type Counts struct {
	Yes int `json:"yes"`
	No  int `json:"no"`
}

// Counts returns the marker counts of the three levels.
func (s Signature) Counts() [3]Counts {
	var c [3]Counts
	for _, st := range s.L1 {
		c[0].add(st.Mark)
	}
	for _, st := range s.L2 {
		c[1].add(st.Mark)
	}
	for _, m := range s.L3 {
		c[2].add(m)
	}
	return c
}

func (c *Counts) add(m Mark) {
	switch m {
	case Yes:
		c.Yes++
	case No:
		c.No++
	}
}

// IsEmpty reports whether the node had no neighbors.
func (s Signature) IsEmpty() bool {
	return len(s.L1) == 0 && len(s.L2) == 0 && len(s.L3) == 0
}

func (s Signature) String() string {
	var b strings.Builder
	b.WriteString("L1[")
	writeSteps(&b, s.L1)
	b.WriteString("] L2[")
	writeSteps(&b, s.L2)
	b.WriteString("] L3[")
	for _, m := range s.L3 {
		b.WriteByte(byte(m))
	}
	b.WriteString("]")
	return b.String()
}

func writeSteps(b *strings.Builder, steps []Step) {
	for i, st := range steps {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(b, "%c%d", st.Mark, st.Node)
	}
}

// RevisitFilter decides which nodes are skipped on levels two and three.
type RevisitFilter int

const (
	// FilterRaw walks all three levels in one nested pass and skips a node
	// only if it was already emitted on the previous level at that point of
	// the walk. Nodes can repeat within a level, and n itself shows up on
	// level two with a No marker.
	FilterRaw RevisitFilter = iota
	// FilterVisited walks level by level with a single visited set seeded
	// with n and its neighbors, so every node appears at most once across
	// the signature.
	FilterVisited
)

func (f RevisitFilter) String() string {
	switch f {
	case FilterRaw:
		return "raw"
	case FilterVisited:
		return "visited"
	default:
		return fmt.Sprintf("RevisitFilter(%d)", int(f))
	}
}

// ParseRevisitFilter maps "raw" or "visited" to a RevisitFilter.
func ParseRevisitFilter(s string) (RevisitFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw", "":
		return FilterRaw, nil
	case "visited":
		return FilterVisited, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperrors.ErrUnknownFilter, s)
	}
}

// Table maps each segment index to its signature.
type Table map[int]Signature

// Nodes returns the table's indices in ascending order.
func (t Table) Nodes() []int {
	nodes := make([]int, 0, len(t))
	for n := range t {
		nodes = append(nodes, n)
	}
	sort.Ints(nodes)
	return nodes
}

// Signatures computes the signature of every node in the graph.
func (g *Graph) Signatures(filter RevisitFilter) Table {
	t := make(Table, len(g.nodes))
	for _, n := range g.nodes {
		t[n] = g.Signature(n, filter)
	}
	return t
}

// Signature computes the signature of node n. A node outside the graph or
// without neighbors has an empty signature.
func (g *Graph) Signature(n int, filter RevisitFilter) Signature {
	if !g.Has(n) {
		return Signature{}
	}
	if filter == FilterVisited {
		return g.visitedSignature(n)
	}
	return g.rawSignature(n)
}

// mark is Yes when n is a neighbor of x.
func (g *Graph) mark(n, x int) Mark {
	if g.adj[x].has(n) {
		return Yes
	}
	return No
}

func (g *Graph) rawSignature(n int) Signature {
	var sig Signature
	onL1 := make(map[int]struct{})
	onL2 := make(map[int]struct{})
	for _, c := range g.adj[n].order {
		sig.L1 = append(sig.L1, Step{Mark: Yes, Node: c})
		onL1[c] = struct{}{}
		for _, s := range g.adj[c].order {
			if _, seen := onL1[s]; !seen {
				sig.L2 = append(sig.L2, Step{Mark: g.mark(n, s), Node: s})
				onL2[s] = struct{}{}
			}
			for _, t := range g.adj[s].order {
				if _, seen := onL2[t]; !seen {
					sig.L3 = append(sig.L3, g.mark(n, t))
				}
			}
		}
	}
	return sig
}

func (g *Graph) visitedSignature(n int) Signature {
	var sig Signature
	visited := map[int]struct{}{n: {}}
	for _, c := range g.adj[n].order {
		sig.L1 = append(sig.L1, Step{Mark: Yes, Node: c})
		visited[c] = struct{}{}
	}
	for _, c := range g.adj[n].order {
		for _, s := range g.adj[c].order {
			if _, seen := visited[s]; seen {
				continue
			}
			visited[s] = struct{}{}
			sig.L2 = append(sig.L2, Step{Mark: g.mark(n, s), Node: s})
		}
	}
	for _, st := range sig.L2 {
		for _, t := range g.adj[st.Node].order {
			if _, seen := visited[t]; seen {
				continue
			}
			visited[t] = struct{}{}
			sig.L3 = append(sig.L3, g.mark(n, t))
		}
	}
	return sig
}
