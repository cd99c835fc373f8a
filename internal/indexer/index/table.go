package index

import (
	"strconv"
	"strings"
)

// LocationList is the sequence of segment indices at which one token was
// seen, in discovery order. An index repeats once per sighting.
type LocationList []int

// Equal reports whether two lists hold the same sequence of indices.
func (l LocationList) Equal(other LocationList) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

func (l LocationList) key() string {
	var b strings.Builder
	for i, v := range l {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// Entry is the recurrence record kept for a single token.
type Entry struct {
	Count     int
	Locations LocationList
}

// Table is the recurrence table: token -> Entry, remembering the order in
// which tokens were first seen.
type Table struct {
	entries map[string]*Entry
	order   []string
}

func NewTable() *Table {
	return &Table{
		entries: make(map[string]*Entry),
	}
}

// Observe records one sighting of token in the given segment.
func (t *Table) Observe(token string, segment int) {
	e, exists := t.entries[token]
	if !exists {
		e = &Entry{Locations: make(LocationList, 0, 2)}
		t.entries[token] = e
		t.order = append(t.order, token)
	}
	e.Count++
	e.Locations = append(e.Locations, segment)
}

// Entry returns a copy of the record for token.
func (t *Table) Entry(token string) (Entry, bool) {
	e, exists := t.entries[token]
	if !exists {
		return Entry{}, false
	}
	return Entry{
		Count:     e.Count,
		Locations: append(LocationList(nil), e.Locations...),
	}, true
}

// Tokens returns every token in first-sight order.
func (t *Table) Tokens() []string {
	return append([]string(nil), t.order...)
}

// Len is the number of distinct tokens observed.
func (t *Table) Len() int {
	return len(t.order)
}

// Project returns the filtered location-list collection: lists of tokens
// seen more than once and not in stop, deduplicated by content. The table
// itself is left untouched.
func (t *Table) Project(stop Stopwords) []LocationList {
	lists := make([]LocationList, 0, len(t.order))
	for _, token := range t.order {
		if stop.Contains(token) {
			continue
		}
		e := t.entries[token]
		if e.Count <= 1 {
			continue
		}
		lists = append(lists, append(LocationList(nil), e.Locations...))
	}
	return Dedupe(lists)
}

// Dedupe drops lists whose content equals an earlier list, keeping the
// first occurrence order.
func Dedupe(lists []LocationList) []LocationList {
	seen := make(map[string]struct{}, len(lists))
	result := make([]LocationList, 0, len(lists))
	for _, l := range lists {
		k := l.key()
		if _, exists := seen[k]; exists {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, l)
	}
	return result
}

// Stopwords is a set of tokens excluded from word-mode projections.
type Stopwords map[string]struct{}

func NewStopwords(words []string) Stopwords {
	s := make(Stopwords, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s Stopwords) Contains(token string) bool {
	_, ok := s[token]
	return ok
}
