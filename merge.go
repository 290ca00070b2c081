package collectiontools

import "maps"

type opKind int

const (
	_ opKind = iota // skip zero value so a zero Patch is detectably invalid

	opSet
	opDelete
)

// Patch describes one merge action for a key: store a value ([Set]) or
// remove the key ([Delete]). The tagged variant replaces the classic
// deletion-sentinel trick, so an ordinary value can never be mistaken
// for a deletion marker.
//
// The zero Patch is invalid; applying it panics.
type Patch[V any] struct {
	op    opKind
	value V
}

// Set returns a patch that stores v under the patched key.
func Set[V any](v V) Patch[V] {
	return Patch[V]{op: opSet, value: v}
}

// Delete returns a patch that removes the patched key.
func Delete[V any]() Patch[V] {
	return Patch[V]{op: opDelete}
}

// Union returns a copy of base with all patch maps applied in argument
// order; on key collision between patch maps the later one wins. base
// itself is left untouched.
func Union[K comparable, V any](base map[K]V, patches ...map[K]Patch[V]) map[K]V {
	dst := make(map[K]V, len(base))
	maps.Copy(dst, base)

	return applyPatches(dst, patches)
}

// Update applies all patch maps to base in place, with the same
// precedence as [Union], and returns base.
func Update[K comparable, V any](base map[K]V, patches ...map[K]Patch[V]) map[K]V {
	return applyPatches(base, patches)
}

// applyPatches is the single merge routine shared by Union and Update;
// the two differ only in whether dst is a fresh copy.
func applyPatches[K comparable, V any](dst map[K]V, patches []map[K]Patch[V]) map[K]V {
	for _, patch := range patches {
		for k, p := range patch {
			switch p.op {
			default:
				panic("collectiontools: zero Patch applied; use Set or Delete")
			case opSet:
				dst[k] = p.value
			case opDelete:
				delete(dst, k)
			}
		}
	}

	return dst
}
