package array

import (
	"github.com/gostonefire/xcontainers/internal/check"
	"github.com/gostonefire/xcontainers/internal/utils"
	"iter"
	"slices"
	"unsafe"
)

// policy decides what happens to a slot that no longer holds a live element
type policy[T any] interface {
	vacate(p *T)
	clear(p *T)
}

// copyPolicy leaves vacated slots untouched, elements are plain values
type copyPolicy[T any] struct{}

func (copyPolicy[T]) vacate(*T) {}

func (copyPolicy[T]) clear(*T) {}

// ownPolicy releases and clears vacated slots, elements are owned by the array
type ownPolicy[T any] struct{}

func (ownPolicy[T]) vacate(p *T) {
	utils.Release(p)
}

func (ownPolicy[T]) clear(p *T) {
	var zero T
	*p = zero
}

// buffer is the storage shared by Array and ClassArray: len(data) is the allocated capacity
// and the live elements are data[:size].
type buffer[T any, P policy[T]] struct {
	data     []T
	size     int
	attached bool
}

func (B *buffer[T, P]) vacate(p *T) {
	var pol P
	pol.vacate(p)
}

func (B *buffer[T, P]) clear(p *T) {
	var pol P
	pol.clear(p)
}

func (B *buffer[T, P]) realloc(n int) {
	data := make([]T, n)
	copy(data, B.data[:B.size])
	B.data = data
	B.attached = false
}

func (B *buffer[T, P]) grow() {
	B.realloc(utils.Grow(len(B.data)))
}

// Size - Returns the number of elements
func (B *buffer[T, P]) Size() int {
	return B.size
}

// Allocated - Returns the number of elements that fit without reallocation
func (B *buffer[T, P]) Allocated() int {
	return len(B.data)
}

// IsEmpty - Returns true if there are no elements
func (B *buffer[T, P]) IsEmpty() bool {
	return B.size == 0
}

// GetMemoryOccupation - Returns the number of bytes used by the array header and its allocated storage
func (B *buffer[T, P]) GetMemoryOccupation() int {
	var zero T
	return int(unsafe.Sizeof(*B)) + len(B.data)*int(unsafe.Sizeof(zero))
}

// Reserve - Makes room for at least n elements, never shrinks
func (B *buffer[T, P]) Reserve(n int) {
	if n > len(B.data) {
		B.realloc(n)
	}
}

// Expand - Adds e slots at the end, growing storage if needed
func (B *buffer[T, P]) Expand(e int) {
	if e <= 0 {
		return
	}
	B.Reserve(B.size + e)
	B.size += e
}

// Compress - Removes e elements from the end
func (B *buffer[T, P]) Compress(e int) {
	e = min(e, B.size)
	for i := B.size - e; i < B.size; i++ {
		B.vacate(&B.data[i])
	}
	B.size -= e
}

// Compact - Shrinks storage to exactly fit the elements
func (B *buffer[T, P]) Compact() {
	if B.size == len(B.data) && !B.attached {
		return
	}
	if B.size == 0 {
		B.data = nil
		B.attached = false
		return
	}
	B.realloc(B.size)
}

// Clear - Removes all elements and releases storage
func (B *buffer[T, P]) Clear() {
	for i := 0; i < B.size; i++ {
		B.vacate(&B.data[i])
	}
	B.data = nil
	B.size = 0
	B.attached = false
}

// PushBack - Appends v
func (B *buffer[T, P]) PushBack(v T) {
	if B.size == len(B.data) {
		B.grow()
	}
	B.data[B.size] = v
	B.size++
}

// PushFront - Inserts v before the first element
func (B *buffer[T, P]) PushFront(v T) {
	B.Insert(0, v)
}

// Insert - Inserts v at pos, shifting following elements up, pos == Size() appends
func (B *buffer[T, P]) Insert(pos int, v T) {
	check.That(pos >= 0 && pos <= B.size, "insert position %d out of range [0, %d]", pos, B.size)
	if B.size == len(B.data) {
		B.grow()
	}
	copy(B.data[pos+1:B.size+1], B.data[pos:B.size])
	B.data[pos] = v
	B.size++
}

// PopBack - Removes and returns the last element, ok is false if empty
func (B *buffer[T, P]) PopBack() (v T, ok bool) {
	if B.size == 0 {
		return
	}
	B.size--
	v, ok = B.data[B.size], true
	B.clear(&B.data[B.size])
	return
}

// PopFront - Removes and returns the first element, ok is false if empty
func (B *buffer[T, P]) PopFront() (v T, ok bool) {
	return B.RemoveAt(0)
}

// RemoveAt - Removes and returns the element at pos, ok is false if pos is out of range.
// The element is handed to the caller and is not released.
func (B *buffer[T, P]) RemoveAt(pos int) (v T, ok bool) {
	if pos < 0 || pos >= B.size {
		return
	}
	v, ok = B.data[pos], true
	copy(B.data[pos:], B.data[pos+1:B.size])
	B.size--
	B.clear(&B.data[B.size])
	return
}

// EraseAt - Removes and disposes of the element at pos, returns false if pos is out of range
func (B *buffer[T, P]) EraseAt(pos int) bool {
	if pos < 0 || pos >= B.size {
		return false
	}
	B.vacate(&B.data[pos])
	copy(B.data[pos:], B.data[pos+1:B.size])
	B.size--
	B.clear(&B.data[B.size])
	return true
}

// FastRemoveAt - Disposes of the element at pos and moves the last element into its place
func (B *buffer[T, P]) FastRemoveAt(pos int) bool {
	if pos < 0 || pos >= B.size {
		return false
	}
	B.vacate(&B.data[pos])
	B.size--
	if pos != B.size {
		B.data[pos] = B.data[B.size]
	}
	B.clear(&B.data[B.size])
	return true
}

// Move - Moves the element at from so it ends up just before the element currently at to,
// to == Size() moves it to the end
func (B *buffer[T, P]) Move(to, from int) {
	check.Index(from, B.size)
	check.That(to >= 0 && to <= B.size, "move target %d out of range [0, %d]", to, B.size)
	v := B.data[from]
	switch {
	case from < to:
		copy(B.data[from:to-1], B.data[from+1:to])
		B.data[to-1] = v
	case from > to:
		copy(B.data[to+1:from+1], B.data[to:from])
		B.data[to] = v
	}
}

// At - Returns a pointer to the element at i, valid until the next reallocation
func (B *buffer[T, P]) At(i int) *T {
	check.Index(i, B.size)
	return &B.data[i]
}

// Get - Returns the element at i
func (B *buffer[T, P]) Get(i int) T {
	check.Index(i, B.size)
	return B.data[i]
}

// Set - Replaces the element at i with v, disposing of the previous one
func (B *buffer[T, P]) Set(i int, v T) {
	check.Index(i, B.size)
	B.vacate(&B.data[i])
	B.data[i] = v
}

// Front - Returns a pointer to the first element or nil if empty
func (B *buffer[T, P]) Front() *T {
	if B.size == 0 {
		return nil
	}
	return &B.data[0]
}

// Back - Returns a pointer to the last element or nil if empty
func (B *buffer[T, P]) Back() *T {
	if B.size == 0 {
		return nil
	}
	return &B.data[B.size-1]
}

// GetPosition - Returns the index of the element p points at, or -1 if p is not inside the array
func (B *buffer[T, P]) GetPosition(p *T) int {
	for i := 0; i < B.size; i++ {
		if &B.data[i] == p {
			return i
		}
	}
	return -1
}

// IndexFunc - Returns the index of the first element satisfying pred, or -1
func (B *buffer[T, P]) IndexFunc(pred func(T) bool) int {
	return slices.IndexFunc(B.data[:B.size], pred)
}

// Swap - Exchanges the elements at i and j
func (B *buffer[T, P]) Swap(i, j int) {
	check.Index(i, B.size)
	check.Index(j, B.size)
	B.data[i], B.data[j] = B.data[j], B.data[i]
}

// Sort - Sorts the elements with cmp
func (B *buffer[T, P]) Sort(cmp func(a, b T) int) {
	slices.SortFunc(B.data[:B.size], cmp)
}

// BubbleSort - Stable in-place sort for small or nearly sorted arrays
func (B *buffer[T, P]) BubbleSort(cmp func(a, b T) int) {
	bubbleSort(B.data[:B.size], cmp)
}

// Slice - Returns the live elements, the slice aliases the array storage
func (B *buffer[T, P]) Slice() []T {
	return B.data[:B.size:B.size]
}

// All - Iterates index and element in order
func (B *buffer[T, P]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < B.size; i++ {
			if !yield(i, B.data[i]) {
				return
			}
		}
	}
}

// Values - Iterates elements in order
func (B *buffer[T, P]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < B.size; i++ {
			if !yield(B.data[i]) {
				return
			}
		}
	}
}

func bubbleSort[T any](s []T, cmp func(a, b T) int) {
	for n := len(s); n > 1; n-- {
		swapped := false
		for i := 1; i < n; i++ {
			if cmp(s[i-1], s[i]) > 0 {
				s[i-1], s[i] = s[i], s[i-1]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}
