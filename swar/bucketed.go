package swar

import "math/bits"

// BucketedSet constants. Each 64-bit bucket packs 3 lanes of 11 bits
// (10 data bits + 1 guard bit) and a 2-bit occupancy count:
//
//	[ ...unused... ] [ count:2 ] [G2] [ val2:10 ] [G1] [ val1:10 ] [G0] [ val0:10 ]
//	    63...35        34:33      32    31...22    21    20...11    10    09...00
const (
	bucketLaneBits   = 11
	bucketLanes      = 3
	bucketDataMask   = uint64(1)<<10 - 1 // 10 data bits per lane
	bucketCountShift = 33

	bucketOnes     = uint64(1) | 1<<11 | 1<<22        // bit 0 of every lane
	bucketHighBits = uint64(1)<<10 | 1<<21 | 1<<32    // guard bit of every lane
	bucketAllLanes = uint64(1)<<(bucketLanes*11) - 1  // data+guard bits of all lanes

	// MaxBucketValue is the largest value a BucketedSet can store.
	MaxBucketValue = uint16(1)<<bucketLaneBits - 1 // 2047
)

// bucketCountMasks[c] keeps only the haszero result bits of the first
// c lanes. Free lanes are not guaranteed to hold zero (Del leaves the
// swapped-out tail lane cleared but never relies on it), so the search
// result must be masked by occupancy.
var bucketCountMasks = [bucketLanes + 1]uint64{
	0,
	1 << 10,
	1<<10 | 1<<21,
	1<<10 | 1<<21 | 1<<32,
}

// BucketedSet is a fixed-capacity set of values in [1, 2047], packed
// 3 values per 64-bit bucket with an explicit occupancy count. Values
// are split by their top bit into two parallel bucket arrays, each
// storing the low 10 bits only; each array independently holds up to
// the requested capacity.
//
// Occupied lanes of a bucket are always lanes 0..count-1: Add writes
// at lane count, Del swaps the last occupied lane into the hole. The
// count-masked search depends on that contiguity.
type BucketedSet struct {
	lo   []uint64 // values 1..1023
	hi   []uint64 // values 1024..2047, top bit stripped
	size int
	cap  int
}

// NewBucketedSet returns an empty set with ceil(capacity/3) buckets
// per half. capacity must be positive.
func NewBucketedSet(capacity int) *BucketedSet {
	if capacity <= 0 {
		panic("swar: capacity must be positive")
	}

	buckets := (capacity + bucketLanes - 1) / bucketLanes

	return &BucketedSet{
		lo:  make([]uint64, buckets),
		hi:  make([]uint64, buckets),
		cap: capacity,
	}
}

// Len returns the number of live elements.
func (s *BucketedSet) Len() int { return s.size }

// Cap returns the capacity the set was created with (per half).
func (s *BucketedSet) Cap() int { return s.cap }

// Add inserts v. It returns false if v is already present or no bucket
// in v's half has a free lane. v must be in [1, 2047].
func (s *BucketedSet) Add(v uint16) bool {
	buckets, payload := s.route(v)

	for _, b := range buckets {
		if bucketHas(b, payload) {
			return false
		}
	}

	for i, b := range buckets {
		if cnt := bucketCount(b); cnt < bucketLanes {
			buckets[i] = bucketSetCount(bucketSetLane(b, cnt, payload), cnt+1)
			s.size++
			return true
		}
	}

	return false // half is full
}

// Del removes v by overwriting its lane with the last occupied lane of
// its bucket, keeping occupied lanes contiguous from lane 0. It returns
// whether v was present. v must be in [1, 2047].
func (s *BucketedSet) Del(v uint16) bool {
	buckets, payload := s.route(v)

	for i, b := range buckets {
		lane := bucketFind(b, payload)
		if lane < 0 {
			continue
		}

		cnt := bucketCount(b)
		b = bucketSetLane(b, lane, bucketGetLane(b, cnt-1))
		b = bucketSetLane(b, cnt-1, 0)
		buckets[i] = bucketSetCount(b, cnt-1)
		s.size--

		return true
	}

	return false
}

// Has reports whether v is a member. v must be in [1, 2047].
func (s *BucketedSet) Has(v uint16) bool {
	buckets, payload := s.route(v)

	for _, b := range buckets {
		if bucketHas(b, payload) {
			return true
		}
	}

	return false
}

// route picks the bucket half by v's top bit and strips it off.
func (s *BucketedSet) route(v uint16) ([]uint64, uint64) {
	if v < 1 || v > MaxBucketValue {
		panic("swar: value out of the set's range [1, 2047]")
	}

	if v>>10 != 0 {
		return s.hi, uint64(v) & bucketDataMask
	}

	return s.lo, uint64(v)
}

// bucketHas runs the 3-lane haszero search masked by the bucket's
// occupancy count.
func bucketHas(b, payload uint64) bool {
	var (
		x  = (b & bucketAllLanes) ^ payload*bucketOnes
		hz = (x - bucketOnes) & ^x & bucketHighBits
	)

	return hz&bucketCountMasks[bucketCount(b)] != 0
}

// bucketFind returns the occupied lane holding payload, or -1.
func bucketFind(b, payload uint64) int {
	var (
		x  = (b & bucketAllLanes) ^ payload*bucketOnes
		hz = (x - bucketOnes) & ^x & bucketHighBits
	)

	hz &= bucketCountMasks[bucketCount(b)]
	if hz == 0 {
		return -1
	}

	return bits.TrailingZeros64(hz) / bucketLaneBits
}

func bucketCount(b uint64) int {
	return int(b >> bucketCountShift & 3)
}

func bucketSetCount(b uint64, cnt int) uint64 {
	return b&^(3<<bucketCountShift) | uint64(cnt)<<bucketCountShift
}

func bucketGetLane(b uint64, lane int) uint64 {
	return b >> (lane * bucketLaneBits) & bucketDataMask
}

func bucketSetLane(b uint64, lane int, payload uint64) uint64 {
	shift := lane * bucketLaneBits
	return b&^(bucketDataMask<<shift) | payload<<shift
}
