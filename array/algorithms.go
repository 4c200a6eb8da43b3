package array

import (
	"cmp"
	"golang.org/x/exp/constraints"
)

// Sequence - Read access shared by all arrays in this package
type Sequence[T any] interface {
	Size() int
	Get(i int) T
}

// Editable - Sequence that also supports positional insertion and removal
type Editable[T any] interface {
	Sequence[T]
	Insert(pos int, v T)
	EraseAt(pos int) bool
	FastRemoveAt(pos int) bool
}

// Sortable - Anything sortable with a comparison function
type Sortable[T any] interface {
	Sort(cmp func(a, b T) int)
}

// Find - Returns the index of the first element equal to v, or -1
func Find[T comparable](s Sequence[T], v T) int {
	for i, n := 0, s.Size(); i < n; i++ {
		if s.Get(i) == v {
			return i
		}
	}
	return -1
}

// IsHere - Returns true if v is an element of s
func IsHere[T comparable](s Sequence[T], v T) bool {
	return Find(s, v) >= 0
}

// Remove - Removes the first element equal to v keeping order, returns false if not found
func Remove[T comparable](s Editable[T], v T) bool {
	i := Find(s, v)
	if i < 0 {
		return false
	}
	return s.EraseAt(i)
}

// FastRemove - Removes the first element equal to v by moving the last element into its place
func FastRemove[T comparable](s Editable[T], v T) bool {
	i := Find(s, v)
	if i < 0 {
		return false
	}
	return s.FastRemoveAt(i)
}

// Subtract - Removes from a the first occurrence of every element of b
func Subtract[T comparable](a Editable[T], b Sequence[T]) {
	for i, n := 0, b.Size(); i < n; i++ {
		Remove(a, b.Get(i))
	}
}

// BinaryFind - Returns the index of an element equal to v in s sorted ascending, or -1.
// The order is not verified.
func BinaryFind[T constraints.Ordered](s Sequence[T], v T) int {
	return BinaryFindFunc(s, v, cmp.Compare[T])
}

// BinaryFindFunc - As BinaryFind with s sorted by compare
func BinaryFindFunc[T any](s Sequence[T], v T, compare func(a, b T) int) int {
	lo, hi := 0, s.Size()-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := compare(s.Get(mid), v); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid - 1
		default:
			return mid
		}
	}
	return -1
}

// InsertSorted - Inserts v in s sorted ascending after any equal elements and returns its index
func InsertSorted[T constraints.Ordered](s Editable[T], v T) int {
	return InsertSortedFunc(s, v, cmp.Compare[T])
}

// InsertSortedFunc - As InsertSorted with s sorted by compare
func InsertSortedFunc[T any](s Editable[T], v T, compare func(a, b T) int) int {
	lo, hi := 0, s.Size()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if compare(s.Get(mid), v) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	s.Insert(lo, v)
	return lo
}

// SortOrdered - Sorts s ascending by the natural order of T
func SortOrdered[T constraints.Ordered](s Sortable[T]) {
	s.Sort(cmp.Compare[T])
}
