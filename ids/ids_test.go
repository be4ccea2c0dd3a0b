package ids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidthFor(t *testing.T) {
	assert.Equal(t, Width16, WidthFor(0))
	assert.Equal(t, Width16, WidthFor(1))
	assert.Equal(t, Width16, WidthFor(1<<16))
	assert.Equal(t, Width32, WidthFor(1<<16+1))
	assert.Equal(t, Width32, WidthFor(1<<32))
	assert.Equal(t, Width64, WidthFor(1<<32+1))
}

func TestSlice_Basics(t *testing.T) {
	for _, w := range []Width{Width16, Width32, Width64} {
		s := Make(w, 3)
		require.Equal(t, 3, s.Len())
		require.Equal(t, w, s.Width())

		s.Set(0, 30)
		s.Set(1, 10)
		s.Set(2, 20)
		assert.Equal(t, uint64(30), s.At(0))
		assert.False(t, s.IsSorted())

		s.Sort()
		assert.Equal(t, []uint64{10, 20, 30}, s.Uint64s())
		assert.True(t, s.IsSorted())

		s = s.Append(40)
		assert.Equal(t, []uint64{10, 20, 30, 40}, s.Uint64s())
	}
}

func TestSlice_Range(t *testing.T) {
	s := Range(Width16, 4)
	assert.Equal(t, []uint64{0, 1, 2, 3}, s.Uint64s())
	assert.Equal(t, 0, Range(Width32, 0).Len())
}

func TestSlice_SubIsView(t *testing.T) {
	s := Range(Width32, 5)
	sub := s.Sub(1, 4)
	assert.Equal(t, []uint64{1, 2, 3}, sub.Uint64s())

	// A view shares the backing array.
	s.Set(2, 99)
	assert.Equal(t, uint64(99), sub.At(1))

	// A clone does not.
	c := sub.Clone()
	s.Set(3, 77)
	assert.Equal(t, uint64(3), c.At(2))
}

func TestSlice_AppendSlice(t *testing.T) {
	a := Range(Width16, 2)
	b := Range(Width16, 3)
	a = a.AppendSlice(b)
	assert.Equal(t, []uint64{0, 1, 0, 1, 2}, a.Uint64s())

	assert.Panics(t, func() {
		Empty(Width16).AppendSlice(Empty(Width32))
	})
}

func TestSlice_Contains(t *testing.T) {
	s := Make(Width16, 0)
	for _, v := range []uint64{2, 5, 9} {
		s = s.Append(v)
	}
	assert.True(t, s.Contains(5))
	assert.False(t, s.Contains(4))
	// Values beyond the width can never be present.
	assert.False(t, s.Contains(1<<20))
}

func TestSlice_Empty(t *testing.T) {
	e := Empty(Width32)
	assert.Equal(t, 0, e.Len())
	assert.Equal(t, Width32, e.Width())
	assert.Empty(t, e.Uint64s())
}

func TestSlice_InvalidWidthPanics(t *testing.T) {
	assert.Panics(t, func() { Make(Width(8), 1) })
	assert.Panics(t, func() { Slice{}.Len() })
}
