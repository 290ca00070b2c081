// Package collectiontools provides generic helpers for transforming maps
// and sequences of maps.
//
// The helpers fall into four groups:
//
//   - Value transforms: [MapValues], [MapLeaves], [FilterValues], and the
//     in-place accumulator [AppendValues].
//   - Transpose: [ToColumns] converts a slice of uniform-key maps into a
//     map of equal-length slices, [ToRecords] converts it back. The two
//     are exact inverses as long as the shape invariants hold;
//     violations surface as a [ShapeError].
//   - Deletion-aware merge: [Union] (copy-on-write) and [Update]
//     (in place) apply patch maps whose values are [Patch] variants,
//     either [Set] to store a value or [Delete] to remove the key.
//   - Cartesian product: [Product] lazily yields one map per element of
//     the product of named [Axis] values.
//
// # Purity
//
// Every function either allocates its result or mutates exactly one
// explicitly passed-in argument (AppendValues, Update). No function
// touches hidden state, performs I/O, or locks anything; concurrent use
// is safe as long as callers do not share a mutated target.
//
// # Ordering
//
// Go maps do not preserve insertion order, so ordering guarantees apply
// to sequence positions only: record order in transposes, element order
// inside column slices, and emission order of Product. Error messages
// sort key names for determinism.
package collectiontools
