// Package matcher pairs nodes of two signature tables whose signatures have
// the same shape.
package matcher

import (
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/graph"
)

// Pair is a candidate alignment of a source segment with a target segment.
type Pair struct {
	Source int `json:"source"`
	Target int `json:"target"`
}

// Match returns every (source, target) pair whose signatures carry the same
// number of Yes markers and the same number of No markers on each of the
// three levels. Node values are not compared. Pairs are ordered by source
// then target index; the result may be many-to-many.
func Match(src, tgt graph.Table) []Pair {
	pairs := make([]Pair, 0)
	if len(src) == 0 || len(tgt) == 0 {
		return pairs
	}

	byShape := make(map[[3]graph.Counts][]int, len(tgt))
	for _, n := range tgt.Nodes() {
		shape := tgt[n].Counts()
		byShape[shape] = append(byShape[shape], n)
	}
	for _, s := range src.Nodes() {
		for _, t := range byShape[src[s].Counts()] {
			pairs = append(pairs, Pair{Source: s, Target: t})
		}
	}
	return pairs
}

// Equivalent reports whether two signatures would be paired by Match.
func Equivalent(a, b graph.Signature) bool {
	return a.Counts() == b.Counts()
}

// Invert swaps source and target of every pair, keeping the pair order.
func Invert(pairs []Pair) []Pair {
	out := make([]Pair, len(pairs))
	for i, p := range pairs {
		out[i] = Pair{Source: p.Target, Target: p.Source}
	}
	return out
}

// Group collects the candidate targets of every source index.
func Group(pairs []Pair) map[int][]int {
	groups := make(map[int][]int)
	for _, p := range pairs {
		groups[p.Source] = append(groups[p.Source], p.Target)
	}
	return groups
}

// Unique returns the pairs whose source and target each appear in exactly
// one pair.
func Unique(pairs []Pair) []Pair {
	srcSeen := make(map[int]int)
	tgtSeen := make(map[int]int)
	for _, p := range pairs {
		srcSeen[p.Source]++
		tgtSeen[p.Target]++
	}
	out := make([]Pair, 0)
	for _, p := range pairs {
		if srcSeen[p.Source] == 1 && tgtSeen[p.Target] == 1 {
			out = append(out, p)
		}
	}
	return out
}
