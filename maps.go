package collectiontools

// MapValues applies f to every value of src, allocating a new map for the
// results. The key set is preserved and src is never mutated.
func MapValues[K comparable, V, U any](src map[K]V, f func(V) U) map[K]U {
	dst := make(map[K]U, len(src))
	for k, v := range src {
		dst[k] = f(v)
	}

	return dst
}

// MapLeaves applies f to every non-mapping leaf of a nested mapping,
// recursing into values that are themselves map[K]any. Fresh maps are
// allocated at every level; src is never mutated.
//
// Only values of the exact type map[K]any count as nested mappings; any
// other value, including maps with a different key type, is a leaf.
func MapLeaves[K comparable](src map[K]any, f func(any) any) map[K]any {
	dst := make(map[K]any, len(src))
	for k, v := range src {
		if nested, ok := v.(map[K]any); ok {
			dst[k] = MapLeaves(nested, f)
			continue
		}

		dst[k] = f(v)
	}

	return dst
}

// FilterValues returns a new map holding only the pairs of src whose
// value satisfies pred.
func FilterValues[K comparable, V any](src map[K]V, pred func(V) bool) map[K]V {
	dst := make(map[K]V, len(src))
	for k, v := range src {
		if pred(v) {
			dst[k] = v
		}
	}

	return dst
}

// AppendValues appends each value of src to the slice stored at the same
// key of dst, creating the slice when the key is absent. It mutates dst
// and returns it; a nil dst is allocated first, so keep the return value.
//
// Calling it repeatedly with same-keyed maps builds up parallel per-key
// histories:
//
//	acc := AppendValues(nil, map[string]int{"a": 1})
//	acc = AppendValues(acc, map[string]int{"a": 2})
//	// acc["a"] == []int{1, 2}
func AppendValues[K comparable, V any](dst map[K][]V, src map[K]V) map[K][]V {
	if dst == nil {
		dst = make(map[K][]V, len(src))
	}

	for k, v := range src {
		dst[k] = append(dst[k], v)
	}

	return dst
}
