// Package attr provides the typed attribute value model used by frozenidx.
//
// Values are hashable and equality-comparable but deliberately unordered:
// the index never compares values for ordering, only for equality, so
// heterogeneous attributes (strings, ints, tuples) can share one index.
package attr
