package swar

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
)

const (
	wordBits = 64

	minLaneBits = 1
	maxLaneBits = 32
)

// Word is a single 64-bit value packing floor(64/N) lanes of N bits
// each. It has value semantics: mutators return a new Word, so a Word
// handed to another goroutine can never change under it.
type Word uint64

// Layout holds the derived constants for one lane width N. It is
// computed once by For and shared by every Word of that width — the Go
// stand-in for a compile-time width parameter.
type Layout struct {
	laneBits int    // N
	lanes    int    // floor(64/N)
	laneMask uint64 // N low bits set
	ones     uint64 // bit 0 of every lane
	highBits uint64 // guard bit (MSB) of every lane
	maxSafe  uint64 // 2^(N-1) - 1
}

// For returns the Layout for N-bit lanes. N must be in [1,32];
// anything else is a programmer error and panics. Widths 5..14 are the
// intended range, smaller/larger ones are legal but degenerate (N=1
// has no usable data bits at all).
func For(laneBits int) Layout {
	if laneBits < minLaneBits || laneBits > maxLaneBits {
		panic("swar: lane width out of range [1,32]")
	}

	var (
		lanes = wordBits / laneBits
		ones  uint64
	)

	for i := 0; i < lanes; i++ {
		ones |= uint64(1) << (i * laneBits)
	}

	return Layout{
		laneBits: laneBits,
		lanes:    lanes,
		laneMask: uint64(1)<<laneBits - 1,
		ones:     ones,
		highBits: ones << (laneBits - 1),
		maxSafe:  uint64(1)<<(laneBits-1) - 1,
	}
}

// Bits returns the lane width N.
func (l Layout) Bits() int { return l.laneBits }

// Lanes returns the number of lanes per word, floor(64/N).
func (l Layout) Lanes() int { return l.lanes }

// LaneMask returns the mask of one lane's bits, 2^N - 1.
func (l Layout) LaneMask() uint64 { return l.laneMask }

// MaxSafe returns the largest value the search primitives accept:
// 2^(N-1) - 1. Storing anything larger sets the lane's guard bit and
// silently breaks every subsequent search on that word.
func (l Layout) MaxSafe() uint64 { return l.maxSafe }

// Broadcast returns a Word with every lane set to v.
// v must fit in N bits.
func (l Layout) Broadcast(v uint64) Word {
	if v > l.laneMask {
		panic("swar: value does not fit in a lane")
	}
	return Word(v * l.ones)
}

// Get extracts the value in lane i (0-indexed from the LSB).
func (l Layout) Get(w Word, i int) uint64 {
	if i < 0 || i >= l.lanes {
		panic("swar: lane index out of range")
	}
	return uint64(w) >> (i * l.laneBits) & l.laneMask
}

// Set returns a copy of w with lane i set to v. All other lanes are
// untouched. v must fit in N bits.
func (l Layout) Set(w Word, i int, v uint64) Word {
	if i < 0 || i >= l.lanes {
		panic("swar: lane index out of range")
	}
	if v > l.laneMask {
		panic("swar: value does not fit in a lane")
	}

	shift := i * l.laneBits

	return w&^Word(l.laneMask<<shift) | Word(v<<shift)
}

// ZeroLanes returns the haszero mask of w: (w - ones) & ^w & highBits.
// It is exact as an any-zero predicate and for the position of the
// lowest set bit, which is all Contains/Find/FindZero need. Above the
// lowest zero lane the borrow can falsely flag a lane holding 1, so
// the mask must not be popcounted; CountEq uses the borrow-free form
// instead. Only meaningful while the guard-bit invariant holds for
// every lane of w.
func (l Layout) ZeroLanes(w Word) uint64 {
	x := uint64(w)
	return (x - l.ones) & ^x & l.highBits
}

// Contains reports whether any lane of w equals v.
// v must be <= MaxSafe.
func (l Layout) Contains(w Word, v uint64) bool {
	if v > l.maxSafe {
		panic("swar: value exceeds the guard-bit safe range")
	}
	return l.ZeroLanes(w^l.Broadcast(v)) != 0
}

// Find returns the lowest lane index equal to v, or -1 if no lane
// matches. v must be <= MaxSafe.
func (l Layout) Find(w Word, v uint64) int {
	if v > l.maxSafe {
		panic("swar: value exceeds the guard-bit safe range")
	}

	mask := l.ZeroLanes(w ^ l.Broadcast(v))
	if mask == 0 {
		return -1
	}

	// the lowest set bit is at lane*N + N-1
	return bits.TrailingZeros64(mask) / l.laneBits
}

// FindZero returns the lowest lane index holding 0, or -1 if every
// lane is occupied. This is how the sets locate a free slot.
func (l Layout) FindZero(w Word) int {
	mask := l.ZeroLanes(w)
	if mask == 0 {
		return -1
	}
	return bits.TrailingZeros64(mask) / l.laneBits
}

// CountEq returns how many lanes of w equal v. v must be <= MaxSafe.
//
// Counting needs a per-lane exact zero mask, so this does not popcount
// ZeroLanes: with every guard bit clear, (highBits - x) subtracts
// within each lane (2^(N-1) - lane never underflows), leaving the
// guard bit set exactly for the zero lanes and borrowing nothing into
// the neighbours.
func (l Layout) CountEq(w Word, v uint64) int {
	if v > l.maxSafe {
		panic("swar: value exceeds the guard-bit safe range")
	}

	x := uint64(w ^ l.Broadcast(v))

	return int(popcount.Count((l.highBits - x) & l.highBits))
}

// Min returns the smallest value among the first count lanes.
// count must be in [1, Lanes]. A plain scan: no word-parallel trick
// computes min/max over an arbitrary lane prefix cheaply.
func (l Layout) Min(w Word, count int) uint64 {
	if count < 1 || count > l.lanes {
		panic("swar: lane count out of range")
	}

	m := l.Get(w, 0)
	for i := 1; i < count; i++ {
		if v := l.Get(w, i); v < m {
			m = v
		}
	}

	return m
}

// Max returns the largest value among the first count lanes.
// count must be in [1, Lanes].
func (l Layout) Max(w Word, count int) uint64 {
	if count < 1 || count > l.lanes {
		panic("swar: lane count out of range")
	}

	m := l.Get(w, 0)
	for i := 1; i < count; i++ {
		if v := l.Get(w, i); v > m {
			m = v
		}
	}

	return m
}
