// Package pooledchaining holds a separate chaining hash table whose entries all live in one contiguous
// pool. Chains link entries by pool index, and removal keeps the pool dense by moving the last entry
// into the freed slot.
package pooledchaining

import (
	"github.com/gostonefire/xcontainers/array"
	"github.com/gostonefire/xcontainers/crt"
	"github.com/gostonefire/xcontainers/hashfunc"
	"github.com/gostonefire/xcontainers/internal/conf"
	"github.com/gostonefire/xcontainers/internal/logger"
	"github.com/gostonefire/xcontainers/internal/model"
	"github.com/gostonefire/xcontainers/internal/utils"
	"iter"
	"unsafe"
)

// nilIndex terminates a chain
const nilIndex int32 = -1

type entry[K comparable, V any] struct {
	key   K
	value V
	next  int32
}

// Clone - Entries are copied as values
func (E entry[K, V]) Clone() entry[K, V] {
	return E
}

// Table - Hash table with pooled entries
type Table[K comparable, V any] struct {
	pool       array.ClassArray[entry[K, V]]
	buckets    array.Array[int32]
	threshold  int
	loadFactor float32
	hash       hashfunc.HashAlgorithm[K]
}

// New - Returns an empty table.
//   - initialBuckets is rounded up to a power of two (at least 4), zero or less selects the default
//   - loadFactor is the number of entries per bucket allowed before the bucket count is doubled, zero or less selects 0.75
//   - hashAlgorithm is optional, nil selects hashfunc.Default
func New[K comparable, V any](initialBuckets int, loadFactor float32, hashAlgorithm hashfunc.HashAlgorithm[K]) *Table[K, V] {
	if initialBuckets <= 0 {
		initialBuckets = conf.DefaultBuckets
	}
	if hashAlgorithm == nil {
		hashAlgorithm = hashfunc.NewDefault[K]()
	}
	T := &Table[K, V]{
		loadFactor: utils.LoadFactor(loadFactor),
		hash:       hashAlgorithm,
	}
	T.initBuckets(utils.BucketCount(initialBuckets))
	return T
}

func (T *Table[K, V]) initBuckets(n int) {
	T.buckets.Clear()
	T.buckets.Resize(n)
	T.buckets.Fill(nilIndex)
	T.threshold = utils.Threshold(n, T.loadFactor)
	T.pool.Reserve(T.threshold)
}

func (T *Table[K, V]) bucketOf(key K) int {
	return int(T.hash.Hash(key) & uint64(T.buckets.Size()-1))
}

// lookup returns the bucket of key and the pool index of its entry and of the entry linking to it
func (T *Table[K, V]) lookup(key K) (bucket int, prev, index int32) {
	bucket = T.bucketOf(key)
	prev = nilIndex
	for index = T.buckets.Get(bucket); index != nilIndex; index = T.pool.At(int(index)).next {
		if T.hash.Equal(T.pool.At(int(index)).key, key) {
			return
		}
		prev = index
	}
	return
}

// add appends a new entry for key, the key must not be present
func (T *Table[K, V]) add(key K, v V) int32 {
	if T.pool.Size() >= T.threshold {
		T.rehash(T.buckets.Size() * 2)
	}
	b := T.bucketOf(key)
	i := int32(T.pool.Size())
	T.pool.PushBack(entry[K, V]{key: key, value: v, next: T.buckets.Get(b)})
	T.buckets.Set(b, i)
	return i
}

// rehash relinks every entry into n buckets, pool indices do not change
func (T *Table[K, V]) rehash(n int) {
	logger.L.Debug("hash table rehash",
		"technique", crt.Name(crt.PooledChaining),
		"from", T.buckets.Size(),
		"to", n,
		"records", T.pool.Size())

	T.initBuckets(n)
	for i := 0; i < T.pool.Size(); i++ {
		e := T.pool.At(i)
		b := T.bucketOf(e.key)
		e.next = T.buckets.Get(b)
		T.buckets.Set(b, int32(i))
	}
}

// Insert - Adds key with value v. If key is present its value is replaced when override is true.
// Returns false only when key was present and override is false.
func (T *Table[K, V]) Insert(key K, v V, override bool) bool {
	if _, _, i := T.lookup(key); i != nilIndex {
		if override {
			T.pool.At(int(i)).value = v
		}
		return override
	}
	T.add(key, v)
	return true
}

// Put - Adds key with value v or replaces the value of a present key, returns the entry's position
func (T *Table[K, V]) Put(key K, v V) Iterator[K, V] {
	b, _, i := T.lookup(key)
	if i != nilIndex {
		T.pool.At(int(i)).value = v
		return Iterator[K, V]{t: T, bucket: b, index: i}
	}
	return T.iterator(T.add(key, v))
}

// InsertUnique - Adds key with value v unless present, returns the position of key's entry
func (T *Table[K, V]) InsertUnique(key K, v V) Iterator[K, V] {
	it, _ := T.TestInsert(key, v)
	return it
}

// TestInsert - As InsertUnique, inserted tells whether the key was added
func (T *Table[K, V]) TestInsert(key K, v V) (it Iterator[K, V], inserted bool) {
	b, _, i := T.lookup(key)
	if i != nilIndex {
		it = Iterator[K, V]{t: T, bucket: b, index: i}
		return
	}
	it, inserted = T.iterator(T.add(key, v)), true
	return
}

// At - Returns a pointer to the value of key, adding a zero value first if key is not present.
// The pointer is valid until the next insertion or removal.
func (T *Table[K, V]) At(key K) *V {
	_, _, i := T.lookup(key)
	if i == nilIndex {
		var zero V
		i = T.add(key, zero)
	}
	return &T.pool.At(int(i)).value
}

// Find - Returns the position of key's entry, or End()
func (T *Table[K, V]) Find(key K) Iterator[K, V] {
	b, _, i := T.lookup(key)
	if i == nilIndex {
		return T.End()
	}
	return Iterator[K, V]{t: T, bucket: b, index: i}
}

// FindPtr - Returns a pointer to the value of key, or nil
func (T *Table[K, V]) FindPtr(key K) *V {
	_, _, i := T.lookup(key)
	if i == nilIndex {
		return nil
	}
	return &T.pool.At(int(i)).value
}

// LookUp - Returns the value of key, ok is false if not present
func (T *Table[K, V]) LookUp(key K) (v V, ok bool) {
	_, _, i := T.lookup(key)
	if i == nilIndex {
		return
	}
	v, ok = T.pool.At(int(i)).value, true
	return
}

// IsHere - Returns true if key is present
func (T *Table[K, V]) IsHere(key K) bool {
	_, _, i := T.lookup(key)
	return i != nilIndex
}

// Remove - Removes key, returns false if it was not present
func (T *Table[K, V]) Remove(key K) bool {
	b, prev, i := T.lookup(key)
	if i == nilIndex {
		return false
	}
	T.remove(b, prev, i)
	return true
}

// RemoveAt - Removes the entry at it and returns the position of the entry that followed it
func (T *Table[K, V]) RemoveAt(it Iterator[K, V]) Iterator[K, V] {
	if it.IsEnd() {
		return it
	}
	next := it.Next()
	prev := nilIndex
	for i := T.buckets.Get(it.bucket); i != it.index; i = T.pool.At(int(i)).next {
		prev = i
	}
	if moved := T.remove(it.bucket, prev, it.index); next.index == moved {
		next.index = it.index
	}
	return next
}

// remove unlinks entry i of bucket b (prev links to it) and fills its pool slot with the last entry.
// It returns the pool index the last entry was moved from.
func (T *Table[K, V]) remove(b int, prev, i int32) (last int32) {
	removed := T.pool.At(int(i))
	if prev == nilIndex {
		T.buckets.Set(b, removed.next)
	} else {
		T.pool.At(int(prev)).next = removed.next
	}

	last = int32(T.pool.Size() - 1)
	if i == last {
		T.pool.EraseAt(int(last))
		return
	}

	// The unlink above already redirected the last entry if it linked to the removed one, so the
	// moved entry never links to its own slot. What links to the last entry must follow it.
	lb := T.bucketOf(T.pool.At(int(last)).key)
	if T.buckets.Get(lb) == last {
		T.buckets.Set(lb, i)
	} else {
		p := T.buckets.Get(lb)
		for T.pool.At(int(p)).next != last {
			p = T.pool.At(int(p)).next
		}
		T.pool.At(int(p)).next = i
	}

	T.pool.FastRemoveAt(int(i))
	return
}

// Size - Returns the number of entries
func (T *Table[K, V]) Size() int {
	return T.pool.Size()
}

// Clear - Removes all entries keeping the bucket count
func (T *Table[K, V]) Clear() {
	T.pool.Clear()
	T.initBuckets(T.buckets.Size())
}

// Reserve - Grows the bucket count so that n entries fit without a rehash, never shrinks
func (T *Table[K, V]) Reserve(n int) {
	buckets := utils.RoundUp2(int(float32(n)/T.loadFactor) + 1)
	if buckets > T.buckets.Size() {
		T.rehash(buckets)
	}
}

// Clone - Returns an independent copy, values are copied as values
func (T *Table[K, V]) Clone() *Table[K, V] {
	c := &Table[K, V]{
		threshold:  T.threshold,
		loadFactor: T.loadFactor,
		hash:       T.hash,
	}
	c.pool.Append(&T.pool)
	c.buckets.Assign(&T.buckets)
	return c
}

// Index - Returns the bucket key maps to
func (T *Table[K, V]) Index(key K) int {
	return T.bucketOf(key)
}

// GetOccupation - Returns a histogram where element i is the number of buckets holding i entries
func (T *Table[K, V]) GetOccupation() (histogram []int) {
	for b := 0; b < T.buckets.Size(); b++ {
		l := 0
		for i := T.buckets.Get(b); i != nilIndex; i = T.pool.At(int(i)).next {
			l++
		}
		for len(histogram) <= l {
			histogram = append(histogram, 0)
		}
		histogram[l]++
	}
	return
}

// GetStorageParameters - Returns the current sizing of the table
func (T *Table[K, V]) GetStorageParameters() model.StorageParameters {
	return model.StorageParameters{
		Technique:       crt.PooledChaining,
		NumberOfBuckets: T.buckets.Size(),
		LoadFactor:      T.loadFactor,
		Threshold:       T.threshold,
		Records:         T.pool.Size(),
		Occupation:      T.pool.Size(),
		PoolAllocated:   T.pool.Allocated(),
	}
}

// GetMemoryOccupation - Returns the number of bytes used by the table, its pool and its buckets
func (T *Table[K, V]) GetMemoryOccupation() int {
	return int(unsafe.Sizeof(*T)) + T.pool.GetMemoryOccupation() + T.buckets.GetMemoryOccupation()
}

// All - Iterates keys and values in bucket order
func (T *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := T.Begin(); !it.IsEnd(); it = it.Next() {
			e := T.pool.At(int(it.index))
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
