// Package list holds a doubly linked list built as a ring around a sentinel node.
// The sentinel is the end position: an empty list's sentinel points at itself both ways.
package list

import (
	"github.com/gostonefire/xcontainers/internal/check"
	"iter"
)

type node[T any] struct {
	prev  *node[T]
	next  *node[T]
	value T
}

// List - Doubly linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	root node[T]
	size int
}

// Iterator - Position in a list, End() is the position after the last element.
// Iterators to other elements stay valid until their element is removed.
type Iterator[T any] struct {
	n    *node[T]
	list *List[T]
}

// New - Returns an empty list
func New[T any]() *List[T] {
	return (&List[T]{}).init()
}

// From - Returns a list holding values in order
func From[T any](values ...T) *List[T] {
	L := New[T]()
	for _, v := range values {
		L.PushBack(v)
	}
	return L
}

func (L *List[T]) init() *List[T] {
	L.root.next = &L.root
	L.root.prev = &L.root
	L.size = 0
	return L
}

func (L *List[T]) lazyInit() {
	if L.root.next == nil {
		L.init()
	}
}

// Size - Returns the number of elements
func (L *List[T]) Size() int {
	return L.size
}

// Begin - Returns the position of the first element, equal to End() if the list is empty
func (L *List[T]) Begin() Iterator[T] {
	L.lazyInit()
	return Iterator[T]{n: L.root.next, list: L}
}

// End - Returns the position after the last element
func (L *List[T]) End() Iterator[T] {
	L.lazyInit()
	return Iterator[T]{n: &L.root, list: L}
}

// Front - Returns a pointer to the first element or nil if empty
func (L *List[T]) Front() *T {
	if L.size == 0 {
		return nil
	}
	return &L.root.next.value
}

// Back - Returns a pointer to the last element or nil if empty
func (L *List[T]) Back() *T {
	if L.size == 0 {
		return nil
	}
	return &L.root.prev.value
}

// insert links a new node holding v before at
func (L *List[T]) insert(at *node[T], v T) *node[T] {
	n := &node[T]{value: v, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	L.size++
	return n
}

// unlink removes n from the ring and returns the node after it
func (L *List[T]) unlink(n *node[T]) *node[T] {
	next := n.next
	n.prev.next = next
	next.prev = n.prev
	n.prev, n.next = nil, nil
	var zero T
	n.value = zero
	L.size--
	return next
}

// PushBack - Appends v
func (L *List[T]) PushBack(v T) Iterator[T] {
	L.lazyInit()
	return Iterator[T]{n: L.insert(&L.root, v), list: L}
}

// PushFront - Inserts v before the first element
func (L *List[T]) PushFront(v T) Iterator[T] {
	L.lazyInit()
	return Iterator[T]{n: L.insert(L.root.next, v), list: L}
}

// Insert - Inserts v before it and returns the position of the new element
func (L *List[T]) Insert(it Iterator[T], v T) Iterator[T] {
	L.lazyInit()
	check.That(it.list == L && it.n != nil, "iterator does not belong to list")
	return Iterator[T]{n: L.insert(it.n, v), list: L}
}

// Remove - Removes the element at it and returns the position after it. Removing End() is a no-op
// returning End().
func (L *List[T]) Remove(it Iterator[T]) Iterator[T] {
	check.That(it.list == L && it.n != nil, "iterator does not belong to list")
	if it.n == &L.root {
		return it
	}
	return Iterator[T]{n: L.unlink(it.n), list: L}
}

// PopFront - Removes and returns the first element, ok is false if empty
func (L *List[T]) PopFront() (v T, ok bool) {
	if L.size == 0 {
		return
	}
	v, ok = L.root.next.value, true
	L.unlink(L.root.next)
	return
}

// PopBack - Removes and returns the last element, ok is false if empty
func (L *List[T]) PopBack() (v T, ok bool) {
	if L.size == 0 {
		return
	}
	v, ok = L.root.prev.value, true
	L.unlink(L.root.prev)
	return
}

// Clear - Removes all elements
func (L *List[T]) Clear() {
	for L.size > 0 {
		L.unlink(L.root.next)
	}
	L.init()
}

// Swap - Exchanges the contents of L and o
func (L *List[T]) Swap(o *List[T]) {
	L.lazyInit()
	o.lazyInit()
	ln, on := L.size, o.size
	lf, ll := L.root.next, L.root.prev
	of, ol := o.root.next, o.root.prev
	L.init()
	o.init()
	if on > 0 {
		L.root.next, L.root.prev = of, ol
		of.prev, ol.next = &L.root, &L.root
		L.size = on
	}
	if ln > 0 {
		o.root.next, o.root.prev = lf, ll
		lf.prev, ll.next = &o.root, &o.root
		o.size = ln
	}
}

// Clone - Returns a list holding copies of the elements in the same order
func (L *List[T]) Clone() *List[T] {
	c := New[T]()
	for v := range L.All() {
		c.PushBack(v)
	}
	return c
}

// FindFunc - Returns the position of the first element satisfying pred at or after start, or End()
func (L *List[T]) FindFunc(start Iterator[T], pred func(T) bool) Iterator[T] {
	end := L.End()
	for it := start; it != end; it = it.Next() {
		if pred(it.n.value) {
			return it
		}
	}
	return end
}

// All - Iterates elements front to back
func (L *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if L.size == 0 {
			return
		}
		for n := L.root.next; n != &L.root; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward - Iterates elements back to front
func (L *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if L.size == 0 {
			return
		}
		for n := L.root.prev; n != &L.root; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// IsEnd - Returns true if the iterator is the end position
func (I Iterator[T]) IsEnd() bool {
	return I.n == &I.list.root
}

// Value - Returns the element at the iterator
func (I Iterator[T]) Value() T {
	check.That(!I.IsEnd(), "dereferencing end iterator")
	return I.n.value
}

// Ptr - Returns a pointer to the element at the iterator
func (I Iterator[T]) Ptr() *T {
	check.That(!I.IsEnd(), "dereferencing end iterator")
	return &I.n.value
}

// Set - Replaces the element at the iterator
func (I Iterator[T]) Set(v T) {
	check.That(!I.IsEnd(), "dereferencing end iterator")
	I.n.value = v
}

// Next - Returns the following position, the position after the last element is End() and after
// End() comes the first element again
func (I Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{n: I.n.next, list: I.list}
}

// Prev - Returns the preceding position
func (I Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{n: I.n.prev, list: I.list}
}

// Advance - Moves n steps forward, or backward for negative n
func (I Iterator[T]) Advance(n int) Iterator[T] {
	for ; n > 0; n-- {
		I = I.Next()
	}
	for ; n < 0; n++ {
		I = I.Prev()
	}
	return I
}
