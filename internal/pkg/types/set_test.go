package types

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSet(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		set := NewSet[string]()
		assert.Empty(t, set)
	})

	t.Run("deduplicates initial elements", func(t *testing.T) {
		set := NewSet("a", "b", "b", "c", "c", "c")
		assert.Len(t, set, 3)
		for _, v := range []string{"a", "b", "c"} {
			assert.True(t, set.Has(v))
		}
	})
}

func TestSet_Add(t *testing.T) {
	t.Run("adds new elements", func(t *testing.T) {
		set := NewSet(1, 2)
		set.Add(3, 4)

		assert.Len(t, set, 4)
		for i := 1; i <= 4; i++ {
			assert.True(t, set.Has(i))
		}
	})

	t.Run("adding duplicates does not grow the set", func(t *testing.T) {
		set := NewSet(1, 2, 3)
		set.Add(2, 3)

		assert.Len(t, set, 3)
	})

	t.Run("adding nothing is a no-op", func(t *testing.T) {
		set := NewSet(1)
		set.Add()

		assert.Len(t, set, 1)
	})
}

func TestSet_Delete(t *testing.T) {
	t.Run("removes existing elements", func(t *testing.T) {
		set := NewSet(1, 2, 3, 4)
		set.Delete(2, 4)

		assert.Len(t, set, 2)
		assert.False(t, set.Has(2))
		assert.False(t, set.Has(4))
	})

	t.Run("removing a missing element is a no-op", func(t *testing.T) {
		set := NewSet(1, 2)
		set.Delete(99)

		assert.Len(t, set, 2)
	})
}

func TestSet_Has(t *testing.T) {
	t.Run("reports membership", func(t *testing.T) {
		set := NewSet("x")

		assert.True(t, set.Has("x"))
		assert.False(t, set.Has("y"))
	})
}

func TestSet_ToIter(t *testing.T) {
	t.Run("yields every element exactly once", func(t *testing.T) {
		expected := []int{1, 2, 3, 4, 5}
		set := NewSet(expected...)

		var collected []int
		for v := range set.ToIter() {
			collected = append(collected, v)
		}

		require.Len(t, collected, len(expected))

		// Iteration order is not guaranteed
		slices.Sort(collected)
		assert.Equal(t, expected, collected)
	})
}

func TestSet_ToSlice(t *testing.T) {
	t.Run("empty set yields an empty slice", func(t *testing.T) {
		assert.Empty(t, NewSet[int]().ToSlice())
	})

	t.Run("returned slice is independent of the set", func(t *testing.T) {
		set := NewSet(1, 2, 3)
		slice := set.ToSlice()

		slice[0] = 999

		assert.False(t, set.Has(999))
	})
}
