package collectiontools

import (
	"fmt"
	"slices"
	"strings"

	"collectiontools/utils"
)

//go:generate go tool stringer -type=ShapeKind -output=shapekind_string.go

// ShapeKind classifies which transpose consistency invariant was violated.
type ShapeKind int

const (
	_ ShapeKind = iota // skip zero value, use it as a default (invalid) value for ShapeKind

	// KeySetMismatch: a record's key set differs from the first record's.
	KeySetMismatch
	// LengthMismatch: column slices do not share one common length.
	LengthMismatch
	// NoColumns: an empty column map has no determinable common length.
	NoColumns
)

// ShapeError reports a violated transpose consistency invariant.
type ShapeError struct {
	Kind   ShapeKind
	Index  int // offending record position; -1 when the error is not positional
	Detail string
}

func (e *ShapeError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s at record %d: %s", e.Kind, e.Index, e.Detail)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// ToColumns transposes a slice of maps into one map of slices, where the
// slice for each key holds that key's values in record order.
//
// The first record's key set is authoritative: every later record must
// have exactly the same keys, otherwise ToColumns fails with a
// *ShapeError naming the offending record and both key sets. An empty
// input yields an empty map.
//
// ToColumns and [ToRecords] are exact inverses as long as the shape
// invariants hold.
func ToColumns[K comparable, V any](records []map[K]V) (map[K][]V, error) {
	columns := map[K][]V{}
	if len(records) == 0 {
		return columns, nil
	}

	for k := range records[0] {
		columns[k] = make([]V, 0, len(records))
	}

	for i, rec := range records {
		if len(rec) != len(columns) || !keysMatch(rec, columns) {
			return nil, &ShapeError{
				Kind:   KeySetMismatch,
				Index:  i,
				Detail: fmt.Sprintf("record has keys %v, want %v", sortedKeys(rec), sortedKeys(columns)),
			}
		}

		for k, v := range rec {
			columns[k] = append(columns[k], v)
		}
	}

	return columns, nil
}

// ToRecords transposes a map of slices into a slice of maps, where the
// map at index i holds, for every key, the value at index i of that
// key's slice.
//
// All slices must share one common length, otherwise ToRecords fails
// with a *ShapeError naming the per-key lengths. An empty column map has
// no determinable common length and is also a *ShapeError.
func ToRecords[K comparable, V any](columns map[K][]V) ([]map[K]V, error) {
	lengths := make([]int, 0, 1)
	for _, col := range columns {
		if !slices.Contains(lengths, len(col)) {
			lengths = append(lengths, len(col))
		}
	}

	if utils.IsEmpty(lengths) {
		return nil, &ShapeError{
			Kind:   NoColumns,
			Index:  -1,
			Detail: "no columns to determine a common length from",
		}
	}

	if utils.IsMultiple(lengths) {
		return nil, &ShapeError{
			Kind:   LengthMismatch,
			Index:  -1,
			Detail: "column lengths differ: " + formatLengths(columns),
		}
	}

	size, _ := utils.First(lengths)
	records := make([]map[K]V, size)

	for i := range records {
		rec := make(map[K]V, len(columns))
		for k, col := range columns {
			rec[k] = col[i]
		}

		records[i] = rec
	}

	return records, nil
}

func keysMatch[K comparable, V, U any](rec map[K]V, columns map[K]U) bool {
	for k := range rec {
		if _, ok := columns[k]; !ok {
			return false
		}
	}

	return true
}

// sortedKeys formats the keys of m and sorts them so error messages stay
// deterministic regardless of map iteration order.
func sortedKeys[K comparable, V any](m map[K]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, fmt.Sprint(k))
	}

	slices.Sort(keys)

	return keys
}

func formatLengths[K comparable, V any](columns map[K][]V) string {
	parts := make([]string, 0, len(columns))
	for k, col := range columns {
		parts = append(parts, fmt.Sprintf("%v=%d", k, len(col)))
	}

	slices.Sort(parts)

	return strings.Join(parts, " ")
}
