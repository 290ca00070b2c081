package collectiontools

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collectiontools/utils"
)

func TestMapValues(t *testing.T) {
	t.Parallel()

	src := map[string]int{"a": 1, "b": 2, "c": 3}
	got := MapValues(src, func(v int) int { return 2 * v })

	assert.Equal(t, map[string]int{"a": 2, "b": 4, "c": 6}, got)
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, src, "source must not be mutated")
}

func TestMapValues_ChangesValueType(t *testing.T) {
	t.Parallel()

	src := map[string]string{"a": "x", "b": "xy"}
	got := MapValues(src, func(v string) int { return len(v) })

	assert.Equal(t, map[string]int{"a": 1, "b": 2}, got)
}

func TestMapValues_Empty(t *testing.T) {
	t.Parallel()

	got := MapValues(map[string]int{}, func(v int) int { return v })

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMapLeaves(t *testing.T) {
	t.Parallel()

	double := func(v any) any {
		switch x := v.(type) {
		default:
			return x
		case int:
			return 2 * x
		case string:
			return x + x
		}
	}

	t.Run("nested mapping", func(t *testing.T) {
		t.Parallel()

		src := map[string]any{"a": map[string]any{"b": 3}}
		got := MapLeaves(src, double)

		assert.Equal(t, map[string]any{"a": map[string]any{"b": 6}}, got)
		assert.Equal(t, map[string]any{"a": map[string]any{"b": 3}}, src, "source must not be mutated")
	})

	t.Run("arbitrary depth", func(t *testing.T) {
		t.Parallel()

		src := map[string]any{
			"a": 1,
			"b": map[string]any{
				"c": "x",
				"d": map[string]any{"e": 5},
			},
		}
		got := MapLeaves(src, double)

		want := map[string]any{
			"a": 2,
			"b": map[string]any{
				"c": "xx",
				"d": map[string]any{"e": 10},
			},
		}
		assert.Equal(t, want, got)
	})

	t.Run("other map types are leaves", func(t *testing.T) {
		t.Parallel()

		leaf := map[int]int{1: 1}
		src := map[string]any{"a": leaf}

		seen := 0
		got := MapLeaves(src, func(v any) any {
			seen++
			return v
		})

		assert.Equal(t, 1, seen, "map[int]int value is a leaf, not a nested mapping")
		assert.Equal(t, src, got)
	})

	t.Run("allocates fresh nested maps", func(t *testing.T) {
		t.Parallel()

		src := map[string]any{"a": map[string]any{"b": 3}}
		got := MapLeaves(src, func(v any) any { return v })

		got["a"].(map[string]any)["b"] = 99
		assert.Equal(t, 3, src["a"].(map[string]any)["b"])
	})
}

func TestFilterValues(t *testing.T) {
	t.Parallel()

	t.Run("keeps satisfying pairs", func(t *testing.T) {
		t.Parallel()

		src := map[string]any{"a": 1, "b": 2, "c": "hello"}
		got := FilterValues(src, func(v any) bool {
			_, ok := v.(int)
			return ok
		})

		assert.Equal(t, map[string]any{"a": 1, "b": 2}, got)
		assert.Len(t, src, 3, "source must not be mutated")
	})

	t.Run("with predicate factory", func(t *testing.T) {
		t.Parallel()

		src := map[string]int{"lo": -3, "mid": 5, "hi": 40}
		got := FilterValues(src, utils.Between(0, 10))

		assert.Equal(t, map[string]int{"mid": 5}, got)
	})

	t.Run("nothing satisfies", func(t *testing.T) {
		t.Parallel()

		got := FilterValues(map[string]string{"a": "x"}, func(v string) bool {
			return strings.HasPrefix(v, "y")
		})

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestAppendValues(t *testing.T) {
	t.Parallel()

	t.Run("accumulates across calls", func(t *testing.T) {
		t.Parallel()

		acc := AppendValues(nil, map[string]any{"a": 1, "b": "c"})
		acc = AppendValues(acc, map[string]any{"a": 2, "b": "d"})

		want := map[string][]any{"a": {1, 2}, "b": {"c", "d"}}
		assert.Equal(t, want, acc)
	})

	t.Run("mutates and returns the target", func(t *testing.T) {
		t.Parallel()

		dst := map[string][]int{"a": {1}}
		got := AppendValues(dst, map[string]int{"a": 2, "b": 3})

		require.Equal(t, map[string][]int{"a": {1, 2}, "b": {3}}, dst)
		got["probe"] = nil
		assert.Contains(t, dst, "probe", "returned map is the target itself")
	})

	t.Run("creates missing keys", func(t *testing.T) {
		t.Parallel()

		got := AppendValues(map[string][]int{}, map[string]int{"a": 1})

		assert.Equal(t, map[string][]int{"a": {1}}, got)
	})
}
