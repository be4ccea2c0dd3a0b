// Package arrange implements the sort/group/run-length primitives the index
// is built on.
//
// All primitives operate on three parallel sequences (hashes, values, object
// identifiers) and are careful about stability: relative input order survives
// every rearrangement, which is what keeps identifiers ascending inside each
// value group without ever sorting on identifiers again.
package arrange

import (
	"sort"

	"github.com/hupe1980/frozenidx/attr"
	"github.com/hupe1980/frozenidx/ids"
)

// SortByHash stably sorts the three parallel sequences by hash ascending.
// Ties preserve the original relative order. The sort key is always the
// 64-bit hash, never the value itself, so value types need no ordering.
func SortByHash(hashes []uint64, vals []attr.Value, objIDs ids.Slice) {
	n := len(hashes)

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return hashes[perm[i]] < hashes[perm[j]]
	})

	applyPermutation(perm, hashes, vals, objIDs)
}

// applyPermutation rearranges the parallel sequences so that position i holds
// what was at position perm[i].
func applyPermutation(perm []int, hashes []uint64, vals []attr.Value, objIDs ids.Slice) {
	n := len(perm)

	srcHashes := make([]uint64, n)
	copy(srcHashes, hashes)
	srcVals := make([]attr.Value, n)
	copy(srcVals, vals)
	srcIDs := objIDs.Clone()

	for i, p := range perm {
		hashes[i] = srcHashes[p]
		vals[i] = srcVals[p]
		objIDs.Set(i, srcIDs.At(p))
	}
}

// GroupByValue reorders the parallel sequences in place so that, within every
// maximal run of equal consecutive hashes, equal values become contiguous.
// Value groups appear in first-occurrence order and identifiers keep their
// relative order within each group. Hashes are untouched: every position in a
// run shares the same hash.
//
// This is the step that makes hash collisions harmless: after it, a bucket
// holds one contiguous span per distinct value.
func GroupByValue(hashes []uint64, vals []attr.Value, objIDs ids.Slice) {
	n := len(hashes)

	for start := 0; start < n; {
		end := start + 1
		for end < n && hashes[end] == hashes[start] {
			end++
		}
		if end-start > 1 {
			groupRun(vals, objIDs, start, end)
		}
		start = end
	}
}

// groupRun regroups the half-open run [start, end) by value.
func groupRun(vals []attr.Value, objIDs ids.Slice, start, end int) {
	var order []string
	positions := make(map[string][]int, 2)
	for i := start; i < end; i++ {
		k := vals[i].Key()
		if _, ok := positions[k]; !ok {
			order = append(order, k)
		}
		positions[k] = append(positions[k], i)
	}
	if len(order) == 1 {
		return // no collision in this run
	}

	runVals := make([]attr.Value, end-start)
	copy(runVals, vals[start:end])
	runIDs := objIDs.Sub(start, end).Clone()

	dst := start
	for _, k := range order {
		for _, p := range positions[k] {
			vals[dst] = runVals[p-start]
			objIDs.Set(dst, runIDs.At(p-start))
			dst++
		}
	}
}

// RunLengthEncode compresses a sorted sequence of hashes into parallel
// (start, length, unique) sequences, one entry per maximal run.
func RunLengthEncode(hashes []uint64) (starts, lengths []int, uniques []uint64) {
	for i := 0; i < len(hashes); {
		j := i + 1
		for j < len(hashes) && hashes[j] == hashes[i] {
			j++
		}
		starts = append(starts, i)
		lengths = append(lengths, j-i)
		uniques = append(uniques, hashes[i])
		i = j
	}
	return starts, lengths, uniques
}

// RunLengthEncodeValues is RunLengthEncode over a value-grouped sequence,
// using value equality to delimit runs.
func RunLengthEncodeValues(vals []attr.Value) (starts, lengths []int, uniques []attr.Value) {
	for i := 0; i < len(vals); {
		j := i + 1
		for j < len(vals) && vals[j].Equal(vals[i]) {
			j++
		}
		starts = append(starts, i)
		lengths = append(lengths, j-i)
		uniques = append(uniques, vals[i])
		i = j
	}
	return starts, lengths, uniques
}
