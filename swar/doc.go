// Package swar implements tiny sets of bounded-width unsigned integers
// packed several-to-a-word and searched in parallel with SWAR bit tricks
// (SIMD within a register). It is meant for set sizes where a hash map's
// overhead dwarfs the data itself: tag sets, small ID dedup buffers,
// fixed membership tables of a handful of elements.
//
// Word layout (N-bit lanes, here N=8, lanes=8):
// --------------------------------------------
//
//	[ lane7 ] [ lane6 ] [ lane5 ] [ lane4 ] [ lane3 ] [ lane2 ] [ lane1 ] [ lane0 ]
//	 63...56   55...48   47...40   39...32   31...24   23...16   15...08   07...00
//
// The MSB of every lane is a guard bit that must stay 0 for all stored
// values. Searches subtract a broadcast constant from the word and read
// the borrow out of the guard-bit positions:
//
//	haszero(x) = (x - ones) & ^x & highBits
//
// where ones has bit 0 of every lane set and highBits has the guard bit
// of every lane set. A lane that is exactly zero borrows into its guard
// bit; a nonzero lane does not (as long as no stored value ever sets its
// guard bit). Matching an arbitrary value v is the same test applied to
// x XOR broadcast(v). One subtraction, three bitwise ops, no branches,
// regardless of the lane count.
//
// Three containers build on this:
//
//   - Layout/Word: the packed word itself with get/set/broadcast and the
//     SWAR search primitives (Contains, Find, FindZero, CountEq).
//   - Set and DynSet: flat sets of values in [1, MaxSafe], one lane per
//     member, zero meaning "empty lane". Set has a fixed capacity,
//     DynSet grows by appending words.
//   - BucketedSet: a set of 11-bit values [1, 2047] packed 3 lanes per
//     bucket with an explicit 2-bit occupancy count, split into two
//     bucket arrays by the value's top bit.
//
// Bucket layout (BucketedSet):
// ---------------------------
//
//	[ ...unused... ] [ count:2 ] [G2] [ val2:10 ] [G1] [ val1:10 ] [G0] [ val0:10 ]
//	    63...35        34:33      32    31...22    21    20...11    10    09...00
//
// G0..G2 are the per-lane guard bits; count is how many of the three
// lanes are occupied. Occupied lanes are always lanes 0..count-1, which
// lets the search mask out garbage in free lanes by count alone.
//
// None of the containers are safe for concurrent mutation. Word values
// are immutable (Set returns a new Word), so sharing a Word snapshot
// between readers is fine; Set, DynSet and BucketedSet mutate in place.
package swar
