//go:build unit

package array

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFind(t *testing.T) {
	t.Run("find on every array kind", func(t *testing.T) {
		// Prepare
		a := From(5, 6, 7)
		c := NewCompactArray(5, 6, 7)

		// Check
		assert.Equal(t, 1, Find[int](a, 6))
		assert.Equal(t, -1, Find[int](a, 8), "absent value")
		assert.True(t, IsHere[int](c, 7))
		assert.False(t, IsHere[int](c, 4))
	})
}

func TestRemove(t *testing.T) {
	t.Run("remove by value", func(t *testing.T) {
		// Prepare
		a := From(1, 2, 3, 2)

		// Execute
		removed := Remove[int](a, 2)
		missing := Remove[int](a, 9)

		// Check
		assert.True(t, removed)
		assert.False(t, missing)
		assert.Equal(t, []int{1, 3, 2}, a.Slice())
	})

	t.Run("fast remove by value", func(t *testing.T) {
		// Prepare
		a := From(1, 2, 3, 4)

		// Execute
		FastRemove[int](a, 1)

		// Check
		assert.Equal(t, []int{4, 2, 3}, a.Slice())
	})

	t.Run("subtract", func(t *testing.T) {
		// Prepare
		a := From(1, 2, 3, 4, 5)
		b := From(2, 4, 6)

		// Execute
		Subtract[int](a, b)

		// Check
		assert.Equal(t, []int{1, 3, 5}, a.Slice())
	})
}

func TestBinaryFind(t *testing.T) {
	t.Run("finds in sorted array", func(t *testing.T) {
		// Prepare
		a := From(1, 3, 5, 7, 9, 11)

		// Check
		for i, v := range a.Slice() {
			assert.Equal(t, i, BinaryFind[int](a, v))
		}
		assert.Equal(t, -1, BinaryFind[int](a, 4), "absent value")
		assert.Equal(t, -1, BinaryFind[int](&Array[int]{}, 4), "empty array")
	})

	t.Run("insert sorted keeps order and goes after equals", func(t *testing.T) {
		// Prepare
		a := &Array[int]{}

		// Execute
		for _, v := range []int{5, 1, 4, 1, 3} {
			InsertSorted[int](a, v)
		}
		pos := InsertSorted[int](a, 4)

		// Check
		assert.Equal(t, []int{1, 1, 3, 4, 4, 5}, a.Slice())
		assert.Equal(t, 4, pos, "inserted after equal element")
	})

	t.Run("sort ordered", func(t *testing.T) {
		// Prepare
		a := From("pear", "apple", "fig")

		// Execute
		SortOrdered[string](a)

		// Check
		assert.Equal(t, []string{"apple", "fig", "pear"}, a.Slice())
	})
}
