package openaddressing

import "github.com/gostonefire/xcontainers/internal/model"

// Iterator - Position of an entry in a Table. Any insertion of a new key invalidates iterators.
type Iterator[K comparable, V any] struct {
	t     *Table[K, V]
	index int
}

// Begin - Returns the position of the first entry, End() if empty
func (T *Table[K, V]) Begin() Iterator[K, V] {
	return T.firstFrom(0)
}

// End - Returns the position after the last entry
func (T *Table[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{t: T, index: T.slots.Size()}
}

func (T *Table[K, V]) firstFrom(index int) Iterator[K, V] {
	for i := index; i < T.slots.Size(); i++ {
		if T.slots.At(i).state == model.RecordOccupied {
			return Iterator[K, V]{t: T, index: i}
		}
	}
	return T.End()
}

// IsEnd - Returns true if the iterator is past the last entry
func (I Iterator[K, V]) IsEnd() bool {
	return I.index >= I.t.slots.Size()
}

// Key - Returns the key of the entry
func (I Iterator[K, V]) Key() K {
	return I.t.slots.At(I.index).key
}

// Value - Returns the value of the entry
func (I Iterator[K, V]) Value() V {
	return I.t.slots.At(I.index).value
}

// ValuePtr - Returns a pointer to the value of the entry
func (I Iterator[K, V]) ValuePtr() *V {
	return &I.t.slots.At(I.index).value
}

// Next - Returns the position of the following entry
func (I Iterator[K, V]) Next() Iterator[K, V] {
	if I.IsEnd() {
		return I
	}
	return I.t.firstFrom(I.index + 1)
}
