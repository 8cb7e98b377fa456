package swar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAddHasDel(t *testing.T) {
	t.Parallel()

	s := NewSet(8, 10)

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 10, s.Cap())
	assert.Equal(t, 2, s.WordCount()) // ceil(10/8)
	assert.Equal(t, uint64(127), s.MaxValue())

	assert.True(t, s.Add(10))
	assert.True(t, s.Add(20))
	assert.True(t, s.Add(30))
	assert.Equal(t, 3, s.Len())

	assert.True(t, s.Has(10))
	assert.True(t, s.Has(20))
	assert.True(t, s.Has(30))
	assert.False(t, s.Has(40))

	assert.True(t, s.Del(20))
	assert.False(t, s.Has(20))
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Del(20), "already gone")
}

func TestSetNoDuplicates(t *testing.T) {
	t.Parallel()

	s := NewSet(8, 10)

	assert.True(t, s.Add(5))
	assert.False(t, s.Add(5))
	assert.Equal(t, 1, s.Len())
}

func TestSetCapacity(t *testing.T) {
	t.Parallel()

	s := NewSet(8, 10)

	// capacity 10 at N=8 means 2 words = 16 lanes; the set is only
	// full once every lane is taken
	for v := uint64(1); v <= 16; v++ {
		require.True(t, s.Add(v), "add %d", v)
	}

	assert.False(t, s.Add(17))
	assert.Equal(t, 16, s.Len())
	assert.False(t, s.Has(17))
}

func TestSetHoleReuse(t *testing.T) {
	t.Parallel()

	s := NewSet(8, 8) // one word

	for v := uint64(1); v <= 8; v++ {
		require.True(t, s.Add(v))
	}
	require.False(t, s.Add(100), "full")

	assert.True(t, s.Del(4))
	assert.True(t, s.Add(100), "reuses the hole")
	assert.True(t, s.Has(100))
	assert.Equal(t, 8, s.Len())
}

func TestSetValuePanics(t *testing.T) {
	t.Parallel()

	s := NewSet(8, 10)

	assert.Panics(t, func() { s.Add(0) })
	assert.Panics(t, func() { s.Add(128) })
	assert.Panics(t, func() { s.Has(0) })
	assert.Panics(t, func() { s.Del(200) })
	assert.Panics(t, func() { NewSet(8, 0) })
	assert.Panics(t, func() { NewSet(0, 10) })
}

func TestSetSmallBitWidth(t *testing.T) {
	t.Parallel()

	// N=5: maxSafe=15, 12 lanes per word
	s := NewSet(5, 15)

	for v := uint64(1); v <= 15; v++ {
		require.True(t, s.Add(v), "add %d", v)
	}

	assert.Equal(t, 15, s.Len())
	for v := uint64(1); v <= 15; v++ {
		assert.True(t, s.Has(v), "has %d", v)
	}
}

func TestSetWordsAliasStorage(t *testing.T) {
	t.Parallel()

	var (
		s = NewSet(8, 8)
		l = For(8)
	)

	s.Add(42)
	require.Len(t, s.Words(), 1)
	assert.Equal(t, 1, l.CountEq(s.Words()[0], 42))
}
