package pooledchaining

// Iterator - Position of an entry in a Table. Any insertion of a new key invalidates iterators.
type Iterator[K comparable, V any] struct {
	t      *Table[K, V]
	bucket int
	index  int32
}

// Begin - Returns the position of the first entry, End() if empty
func (T *Table[K, V]) Begin() Iterator[K, V] {
	return T.firstFrom(0)
}

// End - Returns the position after the last entry
func (T *Table[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{t: T, bucket: T.buckets.Size(), index: nilIndex}
}

func (T *Table[K, V]) firstFrom(bucket int) Iterator[K, V] {
	for b := bucket; b < T.buckets.Size(); b++ {
		if i := T.buckets.Get(b); i != nilIndex {
			return Iterator[K, V]{t: T, bucket: b, index: i}
		}
	}
	return T.End()
}

func (T *Table[K, V]) iterator(index int32) Iterator[K, V] {
	return Iterator[K, V]{t: T, bucket: T.bucketOf(T.pool.At(int(index)).key), index: index}
}

// IsEnd - Returns true if the iterator is past the last entry
func (I Iterator[K, V]) IsEnd() bool {
	return I.index == nilIndex
}

// Key - Returns the key of the entry
func (I Iterator[K, V]) Key() K {
	return I.t.pool.At(int(I.index)).key
}

// Value - Returns the value of the entry
func (I Iterator[K, V]) Value() V {
	return I.t.pool.At(int(I.index)).value
}

// ValuePtr - Returns a pointer to the value of the entry
func (I Iterator[K, V]) ValuePtr() *V {
	return &I.t.pool.At(int(I.index)).value
}

// Next - Returns the position of the following entry
func (I Iterator[K, V]) Next() Iterator[K, V] {
	if I.IsEnd() {
		return I
	}
	if n := I.t.pool.At(int(I.index)).next; n != nilIndex {
		return Iterator[K, V]{t: I.t, bucket: I.bucket, index: n}
	}
	return I.t.firstFrom(I.bucket + 1)
}
