package separatechaining

// Iterator - Position of an entry in a Table. Any insertion of a new key invalidates iterators.
type Iterator[K comparable, V any] struct {
	t      *Table[K, V]
	bucket int
	e      *entry[K, V]
}

// Begin - Returns the position of the first entry, End() if empty
func (T *Table[K, V]) Begin() Iterator[K, V] {
	return T.firstFrom(0)
}

// End - Returns the position after the last entry
func (T *Table[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{t: T, bucket: T.buckets.Size()}
}

func (T *Table[K, V]) firstFrom(bucket int) Iterator[K, V] {
	for b := bucket; b < T.buckets.Size(); b++ {
		if e := T.buckets.Get(b); e != nil {
			return Iterator[K, V]{t: T, bucket: b, e: e}
		}
	}
	return T.End()
}

// IsEnd - Returns true if the iterator is past the last entry
func (I Iterator[K, V]) IsEnd() bool {
	return I.e == nil
}

// Key - Returns the key of the entry
func (I Iterator[K, V]) Key() K {
	return I.e.key
}

// Value - Returns the value of the entry
func (I Iterator[K, V]) Value() V {
	return I.e.value
}

// ValuePtr - Returns a pointer to the value of the entry
func (I Iterator[K, V]) ValuePtr() *V {
	return &I.e.value
}

// Next - Returns the position of the following entry
func (I Iterator[K, V]) Next() Iterator[K, V] {
	if I.IsEnd() {
		return I
	}
	if I.e.next != nil {
		return Iterator[K, V]{t: I.t, bucket: I.bucket, e: I.e.next}
	}
	return I.t.firstFrom(I.bucket + 1)
}
