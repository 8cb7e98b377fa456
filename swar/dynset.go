package swar

// DynSet is the growable flavor of Set: same packed-word storage and
// search paths, but when no word has a free lane Add appends a fresh
// word instead of failing. Add therefore fails only on duplicates.
type DynSet struct {
	layout Layout
	words  []Word
	size   int
}

// NewDynSet returns an empty growable set of N-bit lanes.
func NewDynSet(laneBits int) *DynSet {
	return &DynSet{layout: For(laneBits)}
}

// Len returns the number of live elements.
func (s *DynSet) Len() int { return s.size }

// Empty reports whether the set has no elements.
func (s *DynSet) Empty() bool { return s.size == 0 }

// WordCount returns the number of backing words allocated so far.
// Words emptied by Del are kept and reused, never released.
func (s *DynSet) WordCount() int { return len(s.words) }

// Words exposes the backing words for inspection. The slice aliases
// the set's storage; treat it as read-only.
func (s *DynSet) Words() []Word { return s.words }

// MaxValue returns the largest value the set can store, 2^(N-1) - 1.
func (s *DynSet) MaxValue() uint64 { return s.layout.maxSafe }

// Add inserts v, growing by one word if no existing word has a free
// lane. It returns false only if v is already present.
// v must be in [1, MaxValue].
func (s *DynSet) Add(v uint64) bool {
	s.checkValue(v)

	if s.Has(v) {
		return false
	}

	for i, w := range s.words {
		if lane := s.layout.FindZero(w); lane >= 0 {
			s.words[i] = s.layout.Set(w, lane, v)
			s.size++
			return true
		}
	}

	s.words = append(s.words, s.layout.Set(0, 0, v))
	s.size++

	return true
}

// Del removes v, leaving a hole for a later Add to reuse.
// It returns whether v was present. v must be in [1, MaxValue].
func (s *DynSet) Del(v uint64) bool {
	s.checkValue(v)

	for i, w := range s.words {
		if lane := s.layout.Find(w, v); lane >= 0 {
			s.words[i] = s.layout.Set(w, lane, 0)
			s.size--
			return true
		}
	}

	return false
}

// Has reports whether v is a member. v must be in [1, MaxValue].
func (s *DynSet) Has(v uint64) bool {
	s.checkValue(v)

	for _, w := range s.words {
		if s.layout.Contains(w, v) {
			return true
		}
	}

	return false
}

func (s *DynSet) checkValue(v uint64) {
	if v < 1 || v > s.layout.maxSafe {
		panic("swar: value out of the set's range [1, MaxValue]")
	}
}
