// Package array holds the engine's contiguous containers.
//
// Array copies elements as plain values. Vacated slots keep whatever they held and slots exposed by
// Resize are not initialized.
//
// ClassArray owns its elements: duplicating the array clones every element, and any element leaving
// the array through removal, truncation or Clear is released (its Release method is called when it
// has one) and its slot is cleared.
//
// CompactArray never holds more storage than its elements need and reallocates on every size change.
package array

import (
	"github.com/gostonefire/xcontainers/internal/check"
	"slices"
)

// Array - Growable array with value copy semantics. The zero value is an empty array ready to use.
type Array[T any] struct {
	buffer[T, copyPolicy[T]]
}

// New - Returns an empty array with room for capacity elements
func New[T any](capacity int) *Array[T] {
	A := &Array[T]{}
	A.Reserve(capacity)
	return A
}

// From - Returns an array holding a copy of values
func From[T any](values ...T) *Array[T] {
	A := &Array[T]{}
	if len(values) > 0 {
		A.data = slices.Clone(values)
		A.size = len(values)
	}
	return A
}

// Resize - Sets the number of elements to n. Slots exposed by growing are not initialized.
func (A *Array[T]) Resize(n int) {
	check.That(n >= 0, "negative size %d", n)
	A.Reserve(n)
	A.size = n
}

// Fill - Sets every element to v
func (A *Array[T]) Fill(v T) {
	for i := 0; i < A.size; i++ {
		A.data[i] = v
	}
}

// Clone - Returns a copy owning its own storage
func (A *Array[T]) Clone() *Array[T] {
	return From(A.data[:A.size]...)
}

// Assign - Replaces the contents with a copy of other
func (A *Array[T]) Assign(other *Array[T]) {
	if A == other {
		return
	}
	A.size = 0
	A.Reserve(other.size)
	copy(A.data, other.data[:other.size])
	A.size = other.size
}

// Append - Appends a copy of every element of other
func (A *Array[T]) Append(other *Array[T]) {
	A.AppendValues(other.data[:other.size]...)
}

// AppendValues - Appends values
func (A *Array[T]) AppendValues(values ...T) {
	if len(values) == 0 {
		return
	}
	A.Reserve(A.size + len(values))
	copy(A.data[A.size:], values)
	A.size += len(values)
}

// SwapArray - Exchanges the contents of A and other
func (A *Array[T]) SwapArray(other *Array[T]) {
	A.buffer, other.buffer = other.buffer, A.buffer
}

// Attach - Makes the array a view over ext without copying. Writes go to ext until the array needs
// to grow beyond len(ext), at which point it moves to storage of its own.
func (A *Array[T]) Attach(ext []T) {
	A.data = ext
	A.size = len(ext)
	A.attached = true
}

// Detach - Ends a view made by Attach and returns the viewed elements, the array is left empty
func (A *Array[T]) Detach() (ext []T) {
	if !A.attached {
		return
	}
	ext = A.data[:A.size]
	A.data = nil
	A.size = 0
	A.attached = false
	return
}

// IsAttached - Returns true if the array is a view over external storage
func (A *Array[T]) IsAttached() bool {
	return A.attached
}
