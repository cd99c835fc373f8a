package benchmark

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/indexer/tokenizer"
)

var sampleTexts = map[string]string{
	"short": "The donkey of the master",
	"medium": `The brothers of the merchant, the merchants of the donkeys, the sons of the
        masters and the slave of the sons all lived in the house of the brothers.`,
	"long": strings.Repeat(`Ho ton hyion dulos. Hoi ton dulon cyrioi. Hoi tu emporu adelphoi.
        Hoi ton onon emporoi. Ho tu cyriu onos. Ho tu oicu cyrios. `, 20),
}

func BenchmarkTokenize(b *testing.B) {
	for name, text := range sampleTexts {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				tokens := tokenizer.Tokenize(text)
				_ = tokens
			}
		})
	}
}

func BenchmarkFragments(b *testing.B) {
	words := []string{"hyion", "adelphon", "emporoi", "cyrioi", "oicos", "distributed"}
	for _, min := range []int{2, 3, 4} {
		b.Run(fmt.Sprintf("min_%d", min), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				for _, w := range words {
					_ = tokenizer.Fragments(w, min)
				}
			}
		})
	}
}

func BenchmarkFragmentCorpus(b *testing.B) {
	corpus := tokenizer.TokenizeAll(strings.Split(sampleTexts["long"], "."))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tokenizer.FragmentCorpus(corpus, 3)
	}
}
