// encode.go
// Search encoding: a state's identity for deduplication is the canonical
// pair (sorted crate list, canonical agent position). encode.go also
// provides the solver's seen-encodings store, optionally backed by a
// bounded LRU cache.
//
// The crate list is always sorted before encoding, so two states with the
// same crates built up in a different order still compare equal.

package sokoban

import (
	"sort"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/simplelru"
)

// Encoding is a state's canonical identity for deduplication: a
// comparable string built from the sorted crate indices followed by the
// canonical agent index.
type Encoding string

// Encode builds the canonical encoding of a puzzle's crate configuration
// and agent position. Call only after Canonicalize.
func Encode(p *Puzzle) Encoding {
	crates := make([]int, 0, len(p.Crates))
	for c := range p.Crates {
		crates = append(crates, c)
	}
	sort.Ints(crates)

	var sb strings.Builder
	for _, c := range crates {
		sb.WriteString(strconv.Itoa(c))
		sb.WriteByte(',')
	}
	sb.WriteByte('|')
	sb.WriteString(strconv.Itoa(p.Agent))
	return Encoding(sb.String())
}

// seenSet records which encodings the solver has already enqueued. With
// no cap it is a plain map; given a positive cap it is backed by an LRU
// cache when the caller supplies a positive capacity, trading perfect
// recall for bounded memory on puzzles whose state space would otherwise
// exhaust it.
type seenSet struct {
	plain map[Encoding]bool
	lru   *lru.LRU
}

// newSeenSet constructs a seenSet. cap <= 0 means unbounded.
func newSeenSet(cap int) *seenSet {
	if cap <= 0 {
		return &seenSet{plain: make(map[Encoding]bool)}
	}
	l, err := lru.NewLRU(cap, nil)
	if err != nil {
		// Only returns an error for a non-positive size, already excluded above.
		panic(err)
	}
	return &seenSet{lru: l}
}

func (s *seenSet) contains(e Encoding) bool {
	if s.plain != nil {
		return s.plain[e]
	}
	_, ok := s.lru.Get(e)
	return ok
}

func (s *seenSet) add(e Encoding) {
	if s.plain != nil {
		s.plain[e] = true
		return
	}
	s.lru.Add(e, true)
}

func (s *seenSet) len() int {
	if s.plain != nil {
		return len(s.plain)
	}
	return s.lru.Len()
}
