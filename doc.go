// Package frozenidx provides an immutable single-attribute hash index.
//
// The index answers "which objects have attribute value V?" over a fixed
// collection of objects. It requires only hashing and equality of the value
// type, never ordering, so heterogeneous values (strings, ints, tuples) can
// share one attribute.
//
// # Quick Start
//
//	type user struct{ Team string }
//
//	users := []user{{"red"}, {"blue"}, {"red"}}
//	ix, _ := frozenidx.New(users, func(u user) attr.Value {
//	    return attr.String(u.Team)
//	})
//
//	ix.Get(attr.String("red"))  // [0 2]
//	ix.GetAll()                 // [0 1 2]
//	ix.Size()                   // 3
//
// # Storage Layout
//
// Construction hashes every value, stably sorts by hash, groups equal values
// within each hash bucket, and run-length encodes the result. Values shared
// by more than the cardinality threshold of objects are extracted into a
// direct value→identifiers map; the remainder lives in a hash-sorted array
// with a run-length directory and two-pointer collision resolution. The split
// keeps any single lookup near O(1) even when an unrelated value with a
// colliding hash covers most of the collection.
//
// # Immutability
//
// The index is build-once, read-many. After New returns there is no mutation
// path, so Get, GetAll and Size are safe for any number of concurrent readers
// without locking. The index holds no reference to the source object slice.
package frozenidx
