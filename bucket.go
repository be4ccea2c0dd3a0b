package frozenidx

import (
	"slices"

	"github.com/hupe1980/frozenidx/attr"
	"github.com/hupe1980/frozenidx/ids"
)

// objsByHash is the collision-bucketed storage region for values at or below
// the cardinality threshold.
//
// Layout: three parallel sequences of equal length — object identifiers,
// values, hashes — ordered by (hash asc, value group, identifier asc), plus a
// run-length directory over the hashes. A bucket is the span of one unique
// hash; inside a bucket each distinct value occupies one contiguous span.
//
// Invariants:
//   - objIDs.Len() == len(vals) == sum(runLengths)
//   - uniqueHashes is strictly ascending
//   - starts[i]+runLengths[i] == starts[i+1]; entry i covers exactly the
//     positions whose hash equals uniqueHashes[i]
type objsByHash struct {
	objIDs       ids.Slice
	vals         []attr.Value
	uniqueHashes []uint64
	starts       []int
	runLengths   []int
}

// newObjsByHash wraps already sorted-and-grouped parallel sequences and
// their run-length directory. The full hash sequence is not retained; the
// directory's unique hashes are enough to locate any bucket.
func newObjsByHash(vals []attr.Value, objIDs ids.Slice, starts, runLengths []int, uniqueHashes []uint64) *objsByHash {
	return &objsByHash{
		objIDs:       objIDs,
		vals:         vals,
		uniqueHashes: uniqueHashes,
		starts:       starts,
		runLengths:   runLengths,
	}
}

// len returns the number of (object, value) associations stored.
func (b *objsByHash) len() int {
	return b.objIDs.Len()
}

// get returns the identifiers whose value equals v, given v's hash.
// Returns a zero-length slice when the hash is absent or the bucket holds
// only colliding values.
func (b *objsByHash) get(v attr.Value, hash uint64) ids.Slice {
	i, ok := slices.BinarySearch(b.uniqueHashes, hash)
	if !ok {
		return ids.Empty(b.objIDs.Width())
	}

	start := b.starts[i]
	end := start + b.runLengths[i]

	// Typically the bucket holds only the value we want, but hash collisions
	// do happen. Shrink the range from both sides until it bounds exactly the
	// matching value's span; values were grouped contiguously at build time,
	// so whatever survives between the pointers is the answer.
	for start < end && !b.vals[start].Equal(v) {
		start++
	}
	for end > start && !b.vals[end-1].Equal(v) {
		end--
	}
	if end <= start {
		return ids.Empty(b.objIDs.Width())
	}

	return b.objIDs.Sub(start, end)
}
