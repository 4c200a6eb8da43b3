package array

import (
	"github.com/gostonefire/xcontainers/internal/check"
)

// Element - Constraint for ClassArray elements, Clone must return an independent copy
type Element[T any] interface {
	Clone() T
}

// ClassArray - Growable array owning its elements. The zero value is an empty array ready to use.
//
// PushBack, Insert and Set take ownership of the given value. RemoveAt, PopBack and PopFront hand the
// element back to the caller without releasing it, while EraseAt, FastRemoveAt, Compress, Resize and
// Clear release what they remove.
type ClassArray[T Element[T]] struct {
	buffer[T, ownPolicy[T]]
}

// NewClassArray - Returns an empty class array with room for capacity elements
func NewClassArray[T Element[T]](capacity int) *ClassArray[T] {
	C := &ClassArray[T]{}
	C.Reserve(capacity)
	return C
}

// Resize - Sets the number of elements to n, new elements are zero values and removed ones are released
func (C *ClassArray[T]) Resize(n int) {
	check.That(n >= 0, "negative size %d", n)
	if n < C.size {
		C.Compress(C.size - n)
		return
	}
	C.Reserve(n)
	C.size = n
}

// Fill - Releases every element and replaces it with a clone of v
func (C *ClassArray[T]) Fill(v T) {
	for i := 0; i < C.size; i++ {
		C.vacate(&C.data[i])
		C.data[i] = v.Clone()
	}
}

// Clone - Returns a deep copy, each element is cloned
func (C *ClassArray[T]) Clone() *ClassArray[T] {
	n := &ClassArray[T]{}
	n.Append(C)
	return n
}

// Assign - Releases the contents and replaces them with clones of the elements of other
func (C *ClassArray[T]) Assign(other *ClassArray[T]) {
	if C == other {
		return
	}
	C.Clear()
	C.Append(other)
}

// Append - Appends a clone of every element of other
func (C *ClassArray[T]) Append(other *ClassArray[T]) {
	n := other.size
	C.Reserve(C.size + n)
	for i := 0; i < n; i++ {
		C.data[C.size] = other.data[i].Clone()
		C.size++
	}
}

// SwapArray - Exchanges the contents of C and other
func (C *ClassArray[T]) SwapArray(other *ClassArray[T]) {
	C.buffer, other.buffer = other.buffer, C.buffer
}
