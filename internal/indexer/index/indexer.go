// Package index builds the recurrence table of a corpus and projects it into
// the location lists that seed the co-occurrence graph. Word corpora are
// indexed with light suffix stemming and stopword removal; fragment corpora
// are indexed verbatim.
package index

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/config"
	apperrors "github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/errors"
)

// Mode selects how a corpus is indexed.
type Mode int

const (
	// ModeWord indexes whole word tokens plus their synthesized stems.
	ModeWord Mode = iota
	// ModeFragment indexes pre-generated sub-word fragments exactly.
	ModeFragment
)

func (m Mode) String() string {
	switch m {
	case ModeWord:
		return "word"
	case ModeFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "word" or "fragment" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "word", "words", "":
		return ModeWord, nil
	case "fragment", "fragments", "ngram":
		return ModeFragment, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperrors.ErrUnknownMode, s)
	}
}

// Indexer turns tokenized corpora into filtered location-list collections.
type Indexer struct {
	stopwords Stopwords
}

// New returns an Indexer that drops the given stopwords in word mode.
func New(stopwords []string) *Indexer {
	return &Indexer{stopwords: NewStopwords(stopwords)}
}

// Stopwords returns the set dropped by IndexWords.
func (ix *Indexer) Stopwords() Stopwords {
	return ix.stopwords
}

// Default uses the built-in stopword set.
var Default = New(config.DefaultStopwords)

// IndexWords indexes a word corpus with the default stopwords.
func IndexWords(corpus [][]string) ([]LocationList, error) {
	return Default.IndexWords(corpus)
}

// IndexFragments indexes a fragment corpus.
func IndexFragments(corpus [][][]string) ([]LocationList, error) {
	return Default.IndexFragments(corpus)
}

// WordTable accumulates the full recurrence table of a word corpus. Every
// token is counted, stopwords included; filtering happens in Project.
func (ix *Indexer) WordTable(corpus [][]string) (*Table, error) {
	t := NewTable()
	for seg, tokens := range corpus {
		for pos, token := range tokens {
			if token == "" {
				return nil, apperrors.Invalid("segment %d token %d is empty", seg, pos)
			}
			t.Observe(token, seg)
			for _, s := range Stems(token) {
				t.Observe(s, seg)
			}
		}
	}
	return t, nil
}

// IndexWords returns the deduplicated location lists of every non-stopword
// token (or synthesized stem) seen more than once.
func (ix *Indexer) IndexWords(corpus [][]string) ([]LocationList, error) {
	t, err := ix.WordTable(corpus)
	if err != nil {
		return nil, err
	}
	return t.Project(ix.stopwords), nil
}

// FragmentTable accumulates the recurrence table of a fragment corpus,
// where each segment is a list of words and each word a list of fragments.
func (ix *Indexer) FragmentTable(corpus [][][]string) (*Table, error) {
	t := NewTable()
	for seg, words := range corpus {
		for w, frags := range words {
			for f, frag := range frags {
				if frag == "" {
					return nil, apperrors.Invalid("segment %d word %d fragment %d is empty", seg, w, f)
				}
				t.Observe(frag, seg)
			}
		}
	}
	return t, nil
}

// IndexFragments returns the deduplicated location lists of every fragment
// seen more than once. Fragment mode has no stopwords.
func (ix *Indexer) IndexFragments(corpus [][][]string) ([]LocationList, error) {
	t, err := ix.FragmentTable(corpus)
	if err != nil {
		return nil, err
	}
	return t.Project(nil), nil
}

// Stems returns the stems synthesized for token, in the order they are
// observed. Tokens of three characters or fewer yield none.
//
// A trailing "s" or "d" is always stripped. Independently, a two-letter
// suffix (es, ed, er) is stripped, or failing that a three-letter one
// (ing, ers, est). When the remaining stem ends in a doubled letter the
// stem minus its last letter is emitted first.
func Stems(token string) []string {
	if utf8.RuneCountInString(token) <= 3 {
		return nil
	}
	var stems []string
	if strings.HasSuffix(token, "s") || strings.HasSuffix(token, "d") {
		stems = append(stems, token[:len(token)-1])
	}
	switch {
	case hasAnySuffix(token, "es", "ed", "er"):
		stems = appendStem(stems, token[:len(token)-2])
	case hasAnySuffix(token, "ing", "ers", "est"):
		stems = appendStem(stems, token[:len(token)-3])
	}
	return stems
}

func appendStem(stems []string, stem string) []string {
	if short, ok := ungeminate(stem); ok {
		stems = append(stems, short)
	}
	return append(stems, stem)
}

// ungeminate drops the last character of stem when its final two characters
// are the same letter.
func ungeminate(stem string) (string, bool) {
	last, size := utf8.DecodeLastRuneInString(stem)
	if size == 0 {
		return "", false
	}
	rest := stem[:len(stem)-size]
	prev, psize := utf8.DecodeLastRuneInString(rest)
	if psize == 0 || prev != last {
		return "", false
	}
	return rest, true
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
