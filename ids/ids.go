// Package ids implements width-tagged object identifier sequences.
//
// An identifier is a position into the external object sequence the index was
// built from. The backing integer width is the smallest that can represent
// n-1 for a collection of n objects, fixed for the lifetime of the index.
package ids

import (
	"math"
	"slices"
)

// Width is the integer width of a Slice's backing array, in bits.
type Width uint8

const (
	// Width16 backs identifiers with uint16 (collections up to 65536 objects).
	Width16 Width = 16
	// Width32 backs identifiers with uint32.
	Width32 Width = 32
	// Width64 backs identifiers with uint64.
	Width64 Width = 64
)

// WidthFor returns the smallest width that can represent n-1.
func WidthFor(n int) Width {
	switch {
	case n <= math.MaxUint16+1:
		return Width16
	case int64(n) <= math.MaxUint32+1:
		return Width32
	default:
		return Width64
	}
}

// Slice is a sequence of object identifiers stored at a fixed width.
//
// Exactly one backing array is non-nil, selected by the width. All access
// goes through the uniform uint64 API; the width is a memory layout choice,
// not a semantic one.
type Slice struct {
	width Width
	u16   []uint16
	u32   []uint32
	u64   []uint64
}

// Empty returns a zero-length slice of the given width. Callers receive a
// type-consistent empty result for "not found" instead of a null.
func Empty(w Width) Slice {
	return Make(w, 0)
}

// Make returns a slice of the given width with length n.
func Make(w Width, n int) Slice {
	s := Slice{width: w}
	switch w {
	case Width16:
		s.u16 = make([]uint16, n)
	case Width32:
		s.u32 = make([]uint32, n)
	case Width64:
		s.u64 = make([]uint64, n)
	default:
		panic("ids: invalid width")
	}
	return s
}

// Range returns the slice [0, n) at the given width.
func Range(w Width, n int) Slice {
	s := Make(w, n)
	for i := 0; i < n; i++ {
		s.Set(i, uint64(i))
	}
	return s
}

// Width returns the backing integer width.
func (s Slice) Width() Width { return s.width }

// Len returns the number of identifiers.
func (s Slice) Len() int {
	switch s.width {
	case Width16:
		return len(s.u16)
	case Width32:
		return len(s.u32)
	case Width64:
		return len(s.u64)
	default:
		panic("ids: invalid width")
	}
}

// At returns the identifier at position i.
func (s Slice) At(i int) uint64 {
	switch s.width {
	case Width16:
		return uint64(s.u16[i])
	case Width32:
		return uint64(s.u32[i])
	case Width64:
		return s.u64[i]
	default:
		panic("ids: invalid width")
	}
}

// Set stores v at position i. v must fit the configured width.
func (s Slice) Set(i int, v uint64) {
	switch s.width {
	case Width16:
		s.u16[i] = uint16(v)
	case Width32:
		s.u32[i] = uint32(v)
	case Width64:
		s.u64[i] = v
	default:
		panic("ids: invalid width")
	}
}

// Append returns the slice with v appended.
func (s Slice) Append(v uint64) Slice {
	switch s.width {
	case Width16:
		s.u16 = append(s.u16, uint16(v))
	case Width32:
		s.u32 = append(s.u32, uint32(v))
	case Width64:
		s.u64 = append(s.u64, v)
	default:
		panic("ids: invalid width")
	}
	return s
}

// AppendSlice returns the slice with all of o's identifiers appended.
// o must have the same width.
func (s Slice) AppendSlice(o Slice) Slice {
	if o.width != s.width {
		panic("ids: width mismatch")
	}
	switch s.width {
	case Width16:
		s.u16 = append(s.u16, o.u16...)
	case Width32:
		s.u32 = append(s.u32, o.u32...)
	case Width64:
		s.u64 = append(s.u64, o.u64...)
	}
	return s
}

// Sub returns the subsequence [i, j) as a view into the same backing array.
func (s Slice) Sub(i, j int) Slice {
	switch s.width {
	case Width16:
		return Slice{width: s.width, u16: s.u16[i:j:j]}
	case Width32:
		return Slice{width: s.width, u32: s.u32[i:j:j]}
	case Width64:
		return Slice{width: s.width, u64: s.u64[i:j:j]}
	default:
		panic("ids: invalid width")
	}
}

// Clone returns an independent copy.
func (s Slice) Clone() Slice {
	switch s.width {
	case Width16:
		return Slice{width: s.width, u16: slices.Clone(s.u16)}
	case Width32:
		return Slice{width: s.width, u32: slices.Clone(s.u32)}
	case Width64:
		return Slice{width: s.width, u64: slices.Clone(s.u64)}
	default:
		panic("ids: invalid width")
	}
}

// Sort sorts the identifiers ascending in place.
func (s Slice) Sort() {
	switch s.width {
	case Width16:
		slices.Sort(s.u16)
	case Width32:
		slices.Sort(s.u32)
	case Width64:
		slices.Sort(s.u64)
	default:
		panic("ids: invalid width")
	}
}

// IsSorted reports whether the identifiers are in ascending order.
func (s Slice) IsSorted() bool {
	switch s.width {
	case Width16:
		return slices.IsSorted(s.u16)
	case Width32:
		return slices.IsSorted(s.u32)
	case Width64:
		return slices.IsSorted(s.u64)
	default:
		panic("ids: invalid width")
	}
}

// Contains reports whether v is present. The slice must be sorted.
func (s Slice) Contains(v uint64) bool {
	switch s.width {
	case Width16:
		if v > math.MaxUint16 {
			return false
		}
		_, ok := slices.BinarySearch(s.u16, uint16(v))
		return ok
	case Width32:
		if v > math.MaxUint32 {
			return false
		}
		_, ok := slices.BinarySearch(s.u32, uint32(v))
		return ok
	case Width64:
		_, ok := slices.BinarySearch(s.u64, v)
		return ok
	default:
		panic("ids: invalid width")
	}
}

// Uint64s materializes the identifiers as a []uint64.
func (s Slice) Uint64s() []uint64 {
	out := make([]uint64, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}
