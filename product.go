package collectiontools

import "iter"

// Axis names one dimension of a Cartesian product.
type Axis[K comparable, V any] struct {
	Name   K
	Values []V
}

// Product lazily yields one map per element of the Cartesian product of
// the given axes, pairing every axis name with its chosen value. The
// last axis varies fastest, matching nested-loop ordering. Each yielded
// map is freshly allocated and owned by the consumer.
//
// With zero axes the product has exactly one element, the empty map.
// With any empty axis the product is empty. Axis names are expected to
// be distinct; if they are not, the last axis wins for the shared name.
//
// The sequence is produced on demand and stops as soon as the consumer
// breaks out of the range loop; ranging again restarts from the
// beginning.
func Product[K comparable, V any](axes ...Axis[K, V]) iter.Seq[map[K]V] {
	return func(yield func(map[K]V) bool) {
		for _, ax := range axes {
			if len(ax.Values) == 0 {
				return
			}
		}

		idx := make([]int, len(axes))

		for {
			m := make(map[K]V, len(axes))
			for i, ax := range axes {
				m[ax.Name] = ax.Values[idx[i]]
			}

			if !yield(m) {
				return
			}

			// Odometer increment, last axis fastest.
			i := len(axes) - 1
			for ; i >= 0; i-- {
				idx[i]++
				if idx[i] < len(axes[i].Values) {
					break
				}

				idx[i] = 0
			}

			if i < 0 {
				return
			}
		}
	}
}
