package benchmark

import (
	"context"
	"fmt"
	"testing"

	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/aligner"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/corpus"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/graph"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/indexer/index"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/matcher"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/config"
)

func signatureTable(b *testing.B, segments int) graph.Table {
	b.Helper()
	lists, err := index.IndexWords(syntheticCorpus(segments, 4))
	if err != nil {
		b.Fatal(err)
	}
	return graph.Build(lists).Signatures(graph.FilterRaw)
}

func BenchmarkMatch(b *testing.B) {
	for _, n := range []int{50, 200} {
		table := signatureTable(b, n)
		b.Run(fmt.Sprintf("segments_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = matcher.Match(table, table)
			}
		})
	}
}

// BenchmarkAlignExample measures a full run over the built-in corpora,
// with both pipelines sequential and in parallel.
func BenchmarkAlignExample(b *testing.B) {
	for _, parallel := range []bool{false, true} {
		cfg := config.Default()
		cfg.Align.Parallel = parallel
		a, err := aligner.New(cfg, nil)
		if err != nil {
			b.Fatal(err)
		}
		pair := corpus.Example()
		b.Run(fmt.Sprintf("parallel_%t", parallel), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := a.Align(context.Background(), pair); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
