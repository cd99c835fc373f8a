// Package tokenizer turns raw segments into the token streams the occurrence
// indexer consumes. It lower-cases input, splits on runs of non-word
// characters, and can expand each word into its sub-word fragments for
// corpora written in an unknown script.
package tokenizer

import (
	"strings"
	"unicode"
)

// Tokenize breaks a segment into lowercased word tokens in their original
// order. Empty tokens are discarded.
func Tokenize(segment string) []string {
	segment = strings.ToLower(segment)
	return strings.FieldsFunc(segment, func(r rune) bool {
		return !isWordRune(r)
	})
}

// TokenizeAll tokenizes every segment of a corpus, keeping segment order.
func TokenizeAll(segments []string) [][]string {
	out := make([][]string, len(segments))
	for i, s := range segments {
		out[i] = Tokenize(s)
	}
	return out
}

// Fragments returns every contiguous substring of word whose length is at
// least min and strictly shorter than the word itself, shortest lengths
// first and, within a length, in order of starting position. Lengths are
// counted in characters.
func Fragments(word string, min int) []string {
	if min < 1 {
		min = 1
	}
	runes := []rune(word)
	n := len(runes)
	if n < min+1 {
		return nil
	}
	frags := make([]string, 0, fragmentCount(n, min))
	for size := min; size < n; size++ {
		for start := 0; start+size <= n; start++ {
			frags = append(frags, string(runes[start:start+size]))
		}
	}
	return frags
}

// FragmentCorpus expands each word of a tokenized corpus into its fragments.
// Words that yield no fragments are dropped from their segment; segments
// themselves are always kept so indices stay aligned with the input.
func FragmentCorpus(corpus [][]string, min int) [][][]string {
	out := make([][][]string, len(corpus))
	for i, words := range corpus {
		segment := make([][]string, 0, len(words))
		for _, w := range words {
			if frags := Fragments(w, min); len(frags) > 0 {
				segment = append(segment, frags)
			}
		}
		out[i] = segment
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// fragmentCount is the number of substrings Fragments yields for a word of
// n characters.
func fragmentCount(n, min int) int {
	total := 0
	for size := min; size < n; size++ {
		total += n - size + 1
	}
	return total
}
