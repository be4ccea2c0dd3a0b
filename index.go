package frozenidx

import (
	"hash/maphash"
	"time"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/frozenidx/attr"
	"github.com/hupe1980/frozenidx/ids"
	"github.com/hupe1980/frozenidx/internal/arrange"
)

// Extractor derives the attribute value for an object.
type Extractor[T any] func(obj T) attr.Value

// Index is an immutable single-attribute index over a fixed object
// collection. It maps attribute values to the ascending positions of the
// objects carrying them.
//
// Every object lives in exactly one of two storage regions, decided once at
// build time: values shared by more than the cardinality threshold of objects
// get a direct entry in byValue; everything else is in the hash-bucketed
// byHash region. Queries consult byValue first and fall back to byHash.
//
// An Index has no mutation operations, so all methods are safe for
// concurrent use without locking.
type Index struct {
	width  ids.Width
	hasher Hasher

	// byValue maps Value.Key to a pre-sorted identifier slice for
	// high-cardinality values. Each value's identifiers appear exactly once.
	byValue map[string]ids.Slice

	// byHash holds the remaining objects; nil when every value was
	// high-cardinality.
	byHash *objsByHash

	// size is the total number of (object, value) associations.
	size int

	metrics MetricsCollector
	logger  *Logger
}

// New builds an index over objs using extract to derive each object's
// attribute value. The returned index stores positions into objs but holds
// no reference to objs itself.
//
// Construction is synchronous and single-pass over the input; cost is
// dominated by an O(n log n) stable sort on 64-bit hashes. It fails as a
// whole if extract yields an invalid value for any object — no partially
// built index is ever returned.
func New[T any](objs []T, extract Extractor[T], optFns ...Option) (*Index, error) {
	o := applyOptions(optFns)

	start := time.Now()
	ix, err := build(objs, extract, o)
	duration := time.Since(start)

	o.metricsCollector.RecordBuild(len(objs), duration, err)
	if err != nil {
		o.logger.LogBuild(Stats{Objects: len(objs)}, duration, err)
		return nil, err
	}
	o.logger.LogBuild(ix.Stats(), duration, nil)

	return ix, nil
}

func build[T any](objs []T, extract Extractor[T], o options) (*Index, error) {
	if extract == nil {
		return nil, ErrNilExtractor
	}

	hasher := o.hasher
	if hasher == nil {
		seed := maphash.MakeSeed()
		hasher = func(v attr.Value) uint64 {
			return maphash.String(seed, v.Key())
		}
	}

	n := len(objs)
	width := ids.WidthFor(n)

	// Derive (hash, value) for every object, paired with its position.
	hashes := make([]uint64, n)
	vals := make([]attr.Value, n)
	objIDs := ids.Range(width, n)
	for i := range objs {
		v := extract(objs[i])
		if !v.Valid() {
			return nil, &UnhashableValueError{Position: i, Kind: v.Kind}
		}
		vals[i] = v
		hashes[i] = hasher(v)
	}

	// Order by hash, then regroup colliding values so each distinct value
	// occupies one contiguous span. Input identifiers are ascending and both
	// steps are stable, so identifiers stay ascending within each span.
	arrange.SortByHash(hashes, vals, objIDs)
	arrange.GroupByValue(hashes, vals, objIDs)

	valStarts, valRunLengths, uniqueVals := arrange.RunLengthEncodeValues(vals)

	// Extract high-cardinality values into the direct lookup map.
	byValue := make(map[string]ids.Slice)
	used := make([]bool, n)
	for i := range used {
		used[i] = true
	}
	nUsed := n
	for i, v := range uniqueVals {
		if valRunLengths[i] <= o.threshold {
			continue
		}
		start := valStarts[i]
		end := start + valRunLengths[i]
		for p := start; p < end; p++ {
			used[p] = false
		}
		nUsed -= valRunLengths[i]

		extracted := objIDs.Sub(start, end).Clone()
		extracted.Sort()
		byValue[v.Key()] = extracted
	}

	ix := &Index{
		width:   width,
		hasher:  hasher,
		byValue: byValue,
		metrics: o.metricsCollector,
		logger:  o.logger,
	}

	if nUsed == 0 {
		// Every value was high-cardinality; no bucketed region exists.
		ix.size = ix.computeSize()
		return ix, nil
	}

	if nUsed < n {
		// Mixed cardinalities: compact the non-extracted positions,
		// preserving relative order.
		cHashes := make([]uint64, 0, nUsed)
		cVals := make([]attr.Value, 0, nUsed)
		cIDs := ids.Make(width, 0)
		for i := 0; i < n; i++ {
			if !used[i] {
				continue
			}
			cHashes = append(cHashes, hashes[i])
			cVals = append(cVals, vals[i])
			cIDs = cIDs.Append(objIDs.At(i))
		}
		hashes, vals, objIDs = cHashes, cVals, cIDs
	}

	starts, runLengths, uniqueHashes := arrange.RunLengthEncode(hashes)
	ix.byHash = newObjsByHash(vals, objIDs, starts, runLengths, uniqueHashes)
	ix.size = ix.computeSize()

	return ix, nil
}

// computeSize sums the direct lookup entries and the bucketed region. The
// bucketed region may be absent, in which case it contributes zero.
func (ix *Index) computeSize() int {
	total := 0
	for _, s := range ix.byValue {
		total += s.Len()
	}
	if ix.byHash != nil {
		total += ix.byHash.len()
	}
	return total
}

// Get returns the ascending, duplicate-free identifiers of all objects whose
// attribute equals v. Absence is not an error: unknown values yield a
// zero-length slice.
//
// The returned slice may share storage with the index and must not be
// modified.
func (ix *Index) Get(v attr.Value) ids.Slice {
	start := time.Now()
	res := ix.get(v)
	ix.metrics.RecordGet(res.Len() > 0, time.Since(start))
	return res
}

func (ix *Index) get(v attr.Value) ids.Slice {
	if !v.Valid() {
		return ids.Empty(ix.width)
	}
	if s, ok := ix.byValue[v.Key()]; ok {
		// Stored pre-sorted at build time.
		return s
	}
	if ix.byHash != nil {
		res := ix.byHash.get(v, ix.hasher(v)).Clone()
		// The bucketed region keeps identifiers ascending, but re-sort the
		// copy anyway so the ordering guarantee never depends on which code
		// path produced the result.
		res.Sort()
		return res
	}
	return ids.Empty(ix.width)
}

// GetAll returns the ascending, duplicate-free identifiers of every object
// with this attribute. Used to answer "object has any value" queries.
func (ix *Index) GetAll() ids.Slice {
	start := time.Now()

	out := ids.Empty(ix.width)
	if ix.byHash != nil {
		out = out.AppendSlice(ix.byHash.objIDs)
	}
	for _, s := range ix.byValue {
		out = out.AppendSlice(s)
	}
	// The two regions are disjoint and each identifier appears once, so a
	// plain sort yields the deduplicated ascending result.
	out.Sort()

	ix.metrics.RecordGetAll(time.Since(start))
	return out
}

// Size returns the total number of (object, value) associations indexed.
func (ix *Index) Size() int {
	return ix.size
}

// Contains reports whether the object at position id carries the value v.
func (ix *Index) Contains(v attr.Value, id uint64) bool {
	return ix.get(v).Contains(id)
}

// GetBitmap returns Get(v) as a roaring bitmap, for callers composing
// multi-attribute set operations.
func (ix *Index) GetBitmap(v attr.Value) *roaring64.Bitmap {
	bm := roaring64.NewBitmap()
	bm.AddMany(ix.get(v).Uint64s())
	return bm
}

// GetAllBitmap returns GetAll() as a roaring bitmap.
func (ix *Index) GetAllBitmap() *roaring64.Bitmap {
	bm := roaring64.NewBitmap()
	if ix.byHash != nil {
		bm.AddMany(ix.byHash.objIDs.Uint64s())
	}
	for _, s := range ix.byValue {
		bm.AddMany(s.Uint64s())
	}
	return bm
}

// Stats describes the physical shape of an index.
type Stats struct {
	// Objects is the number of (object, value) associations indexed.
	Objects int
	// HighCardinalityValues is the number of direct lookup map entries.
	HighCardinalityValues int
	// Bucketed is the number of associations in the hash-bucketed region.
	Bucketed int
	// UniqueHashes is the number of distinct hashes in the bucketed region.
	UniqueHashes int
	// Width is the identifier width in bits.
	Width ids.Width
}

// Stats returns a snapshot of the index's storage shape.
func (ix *Index) Stats() Stats {
	s := Stats{
		Objects:               ix.size,
		HighCardinalityValues: len(ix.byValue),
		Width:                 ix.width,
	}
	if ix.byHash != nil {
		s.Bucketed = ix.byHash.len()
		s.UniqueHashes = len(ix.byHash.uniqueHashes)
	}
	return s
}
