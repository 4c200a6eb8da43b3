package array

import (
	"github.com/gostonefire/xcontainers/internal/check"
	"iter"
	"slices"
	"unsafe"
)

// CompactArray - Array whose storage always exactly fits its elements. Every operation changing the
// size reallocates, use it for data that is built once and rarely changed.
type CompactArray[T any] struct {
	data []T
}

// NewCompactArray - Returns a compact array holding a copy of values
func NewCompactArray[T any](values ...T) *CompactArray[T] {
	C := &CompactArray[T]{}
	if len(values) > 0 {
		C.data = slices.Clone(values)
	}
	return C
}

// exact returns a new buffer of n elements with the first min(n, Size()) copied over
func (C *CompactArray[T]) exact(n int) []T {
	if n == 0 {
		return nil
	}
	data := make([]T, n)
	copy(data, C.data)
	return data
}

// Size - Returns the number of elements
func (C *CompactArray[T]) Size() int {
	return len(C.data)
}

// Allocated - Returns the allocated number of elements, always equal to Size
func (C *CompactArray[T]) Allocated() int {
	return len(C.data)
}

// GetMemoryOccupation - Returns the number of bytes used by the array header and its storage
func (C *CompactArray[T]) GetMemoryOccupation() int {
	var zero T
	return int(unsafe.Sizeof(*C)) + len(C.data)*int(unsafe.Sizeof(zero))
}

// Resize - Sets the number of elements to n, new elements are zero values
func (C *CompactArray[T]) Resize(n int) {
	check.That(n >= 0, "negative size %d", n)
	if n != len(C.data) {
		C.data = C.exact(n)
	}
}

// Clear - Removes all elements and frees storage
func (C *CompactArray[T]) Clear() {
	C.data = nil
}

// PushBack - Appends v
func (C *CompactArray[T]) PushBack(v T) {
	C.Insert(len(C.data), v)
}

// PushFront - Inserts v before the first element
func (C *CompactArray[T]) PushFront(v T) {
	C.Insert(0, v)
}

// Insert - Inserts v at pos, pos == Size() appends
func (C *CompactArray[T]) Insert(pos int, v T) {
	check.That(pos >= 0 && pos <= len(C.data), "insert position %d out of range [0, %d]", pos, len(C.data))
	data := make([]T, len(C.data)+1)
	copy(data, C.data[:pos])
	data[pos] = v
	copy(data[pos+1:], C.data[pos:])
	C.data = data
}

// PopBack - Removes and returns the last element, ok is false if empty
func (C *CompactArray[T]) PopBack() (v T, ok bool) {
	return C.RemoveAt(len(C.data) - 1)
}

// PopFront - Removes and returns the first element, ok is false if empty
func (C *CompactArray[T]) PopFront() (v T, ok bool) {
	return C.RemoveAt(0)
}

// RemoveAt - Removes and returns the element at pos, ok is false if pos is out of range
func (C *CompactArray[T]) RemoveAt(pos int) (v T, ok bool) {
	if pos < 0 || pos >= len(C.data) {
		return
	}
	v, ok = C.data[pos], true
	var data []T
	if len(C.data) > 1 {
		data = make([]T, len(C.data)-1)
		copy(data, C.data[:pos])
		copy(data[pos:], C.data[pos+1:])
	}
	C.data = data
	return
}

// EraseAt - Removes the element at pos, returns false if pos is out of range
func (C *CompactArray[T]) EraseAt(pos int) bool {
	_, ok := C.RemoveAt(pos)
	return ok
}

// FastRemoveAt - Moves the last element into pos and shrinks by one
func (C *CompactArray[T]) FastRemoveAt(pos int) bool {
	n := len(C.data)
	if pos < 0 || pos >= n {
		return false
	}
	C.data[pos] = C.data[n-1]
	C.data = C.exact(n - 1)
	return true
}

// Move - Moves the element at from so it ends up just before the element currently at to
func (C *CompactArray[T]) Move(to, from int) {
	n := len(C.data)
	check.Index(from, n)
	check.That(to >= 0 && to <= n, "move target %d out of range [0, %d]", to, n)
	v := C.data[from]
	switch {
	case from < to:
		copy(C.data[from:to-1], C.data[from+1:to])
		C.data[to-1] = v
	case from > to:
		copy(C.data[to+1:from+1], C.data[to:from])
		C.data[to] = v
	}
}

// Fill - Sets every element to v
func (C *CompactArray[T]) Fill(v T) {
	for i := range C.data {
		C.data[i] = v
	}
}

// Append - Appends a copy of every element of other
func (C *CompactArray[T]) Append(other *CompactArray[T]) {
	if len(other.data) == 0 {
		return
	}
	n := len(C.data)
	data := C.exact(n + len(other.data))
	copy(data[n:], other.data)
	C.data = data
}

// At - Returns a pointer to the element at i, valid until the next size change
func (C *CompactArray[T]) At(i int) *T {
	check.Index(i, len(C.data))
	return &C.data[i]
}

// Get - Returns the element at i
func (C *CompactArray[T]) Get(i int) T {
	check.Index(i, len(C.data))
	return C.data[i]
}

// Set - Replaces the element at i
func (C *CompactArray[T]) Set(i int, v T) {
	check.Index(i, len(C.data))
	C.data[i] = v
}

// Swap - Exchanges the elements at i and j
func (C *CompactArray[T]) Swap(i, j int) {
	check.Index(i, len(C.data))
	check.Index(j, len(C.data))
	C.data[i], C.data[j] = C.data[j], C.data[i]
}

// SwapArray - Exchanges the contents of C and other
func (C *CompactArray[T]) SwapArray(other *CompactArray[T]) {
	C.data, other.data = other.data, C.data
}

// Sort - Sorts the elements with cmp
func (C *CompactArray[T]) Sort(cmp func(a, b T) int) {
	slices.SortFunc(C.data, cmp)
}

// BubbleSort - Stable in-place sort
func (C *CompactArray[T]) BubbleSort(cmp func(a, b T) int) {
	bubbleSort(C.data, cmp)
}

// Clone - Returns an independent copy
func (C *CompactArray[T]) Clone() *CompactArray[T] {
	return NewCompactArray(C.data...)
}

// Slice - Returns the elements, the slice aliases the array storage
func (C *CompactArray[T]) Slice() []T {
	return C.data
}

// All - Iterates index and element in order
func (C *CompactArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range C.data {
			if !yield(i, v) {
				return
			}
		}
	}
}
