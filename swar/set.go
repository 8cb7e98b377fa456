package swar

// Set is a fixed-capacity flat set of values in [1, MaxSafe], packed
// one value per lane. Zero marks an empty lane, so 0 itself can never
// be a member. Lookups scan the words linearly, each word searched in
// parallel with the haszero trick.
type Set struct {
	layout Layout
	words  []Word
	size   int
	cap    int
}

// NewSet returns an empty set of N-bit lanes holding at most capacity
// elements. The backing words are allocated up front;
// ceil(capacity/lanes) of them. capacity must be positive.
func NewSet(laneBits, capacity int) *Set {
	if capacity <= 0 {
		panic("swar: capacity must be positive")
	}

	layout := For(laneBits)

	return &Set{
		layout: layout,
		words:  make([]Word, (capacity+layout.lanes-1)/layout.lanes),
		cap:    capacity,
	}
}

// Len returns the number of live elements.
func (s *Set) Len() int { return s.size }

// Cap returns the capacity the set was created with.
func (s *Set) Cap() int { return s.cap }

// WordCount returns the number of backing words.
func (s *Set) WordCount() int { return len(s.words) }

// Words exposes the backing words for inspection. The slice aliases
// the set's storage; treat it as read-only.
func (s *Set) Words() []Word { return s.words }

// MaxValue returns the largest value the set can store, 2^(N-1) - 1.
func (s *Set) MaxValue() uint64 { return s.layout.maxSafe }

// Add inserts v into the set. It returns false if v is already present
// or every lane of every word is occupied, true otherwise.
// v must be in [1, MaxValue].
func (s *Set) Add(v uint64) bool {
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

	return false // all words full
}

// Del removes v from the set, leaving a hole for a later Add to reuse.
// It returns whether v was present. v must be in [1, MaxValue].
func (s *Set) Del(v uint64) bool {
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
func (s *Set) Has(v uint64) bool {
	s.checkValue(v)

	for _, w := range s.words {
		if s.layout.Contains(w, v) {
			return true
		}
	}

	return false
}

func (s *Set) checkValue(v uint64) {
	if v < 1 || v > s.layout.maxSafe {
		panic("swar: value out of the set's range [1, MaxValue]")
	}
}
