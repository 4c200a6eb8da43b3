// Package separatechaining holds a separate chaining hash table where every entry is its own node
// allocated from an object pool. Removal unlinks and frees a single node, other entries never move.
package separatechaining

import (
	"github.com/gostonefire/xcontainers/alloc"
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

type entry[K comparable, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// Table - Hash table with individually allocated entries
type Table[K comparable, V any] struct {
	buckets    array.Array[*entry[K, V]]
	nodes      *alloc.ObjectPool[entry[K, V]]
	count      int
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
		nodes:      alloc.NewObjectPool[entry[K, V]](false),
		loadFactor: utils.LoadFactor(loadFactor),
		hash:       hashAlgorithm,
	}
	T.initBuckets(utils.BucketCount(initialBuckets))
	return T
}

func (T *Table[K, V]) initBuckets(n int) {
	T.buckets.Clear()
	T.buckets.Resize(n)
	T.buckets.Fill(nil)
	T.threshold = utils.Threshold(n, T.loadFactor)
}

func (T *Table[K, V]) bucketOf(key K) int {
	return int(T.hash.Hash(key) & uint64(T.buckets.Size()-1))
}

// lookup returns the bucket of key, its entry and the entry linking to it
func (T *Table[K, V]) lookup(key K) (bucket int, prev, e *entry[K, V]) {
	bucket = T.bucketOf(key)
	for e = T.buckets.Get(bucket); e != nil; e = e.next {
		if T.hash.Equal(e.key, key) {
			return
		}
		prev = e
	}
	return
}

func (T *Table[K, V]) add(key K, v V) (bucket int, e *entry[K, V]) {
	if T.count >= T.threshold {
		T.rehash(T.buckets.Size() * 2)
	}
	bucket = T.bucketOf(key)
	e = T.nodes.Allocate()
	e.key, e.value, e.next = key, v, T.buckets.Get(bucket)
	T.buckets.Set(bucket, e)
	T.count++
	return
}

// rehash relinks the existing nodes into n buckets
func (T *Table[K, V]) rehash(n int) {
	logger.L.Debug("hash table rehash",
		"technique", crt.Name(crt.SeparateChaining),
		"from", T.buckets.Size(),
		"to", n,
		"records", T.count)

	old := T.buckets.Clone()
	T.initBuckets(n)
	for _, head := range old.All() {
		for e := head; e != nil; {
			next := e.next
			b := T.bucketOf(e.key)
			e.next = T.buckets.Get(b)
			T.buckets.Set(b, e)
			e = next
		}
	}
}

// Insert - Adds key with value v. If key is present its value is replaced when override is true.
// Returns false only when key was present and override is false.
func (T *Table[K, V]) Insert(key K, v V, override bool) bool {
	if _, _, e := T.lookup(key); e != nil {
		if override {
			e.value = v
		}
		return override
	}
	T.add(key, v)
	return true
}

// Put - Adds key with value v or replaces the value of a present key, returns the entry's position
func (T *Table[K, V]) Put(key K, v V) Iterator[K, V] {
	b, _, e := T.lookup(key)
	if e != nil {
		e.value = v
	} else {
		b, e = T.add(key, v)
	}
	return Iterator[K, V]{t: T, bucket: b, e: e}
}

// InsertUnique - Adds key with value v unless present, returns the position of key's entry
func (T *Table[K, V]) InsertUnique(key K, v V) Iterator[K, V] {
	it, _ := T.TestInsert(key, v)
	return it
}

// TestInsert - As InsertUnique, inserted tells whether the key was added
func (T *Table[K, V]) TestInsert(key K, v V) (it Iterator[K, V], inserted bool) {
	b, _, e := T.lookup(key)
	if e == nil {
		b, e = T.add(key, v)
		inserted = true
	}
	it = Iterator[K, V]{t: T, bucket: b, e: e}
	return
}

// At - Returns a pointer to the value of key, adding a zero value first if key is not present.
// The pointer stays valid until key is removed.
func (T *Table[K, V]) At(key K) *V {
	_, _, e := T.lookup(key)
	if e == nil {
		var zero V
		_, e = T.add(key, zero)
	}
	return &e.value
}

// Find - Returns the position of key's entry, or End()
func (T *Table[K, V]) Find(key K) Iterator[K, V] {
	b, _, e := T.lookup(key)
	if e == nil {
		return T.End()
	}
	return Iterator[K, V]{t: T, bucket: b, e: e}
}

// FindPtr - Returns a pointer to the value of key, or nil
func (T *Table[K, V]) FindPtr(key K) *V {
	if _, _, e := T.lookup(key); e != nil {
		return &e.value
	}
	return nil
}

// LookUp - Returns the value of key, ok is false if not present
func (T *Table[K, V]) LookUp(key K) (v V, ok bool) {
	if _, _, e := T.lookup(key); e != nil {
		v, ok = e.value, true
	}
	return
}

// IsHere - Returns true if key is present
func (T *Table[K, V]) IsHere(key K) bool {
	_, _, e := T.lookup(key)
	return e != nil
}

// Remove - Removes key, returns false if it was not present
func (T *Table[K, V]) Remove(key K) bool {
	b, prev, e := T.lookup(key)
	if e == nil {
		return false
	}
	T.remove(b, prev, e)
	return true
}

// RemoveAt - Removes the entry at it and returns the position of the entry that followed it
func (T *Table[K, V]) RemoveAt(it Iterator[K, V]) Iterator[K, V] {
	if it.IsEnd() {
		return it
	}
	next := it.Next()
	var prev *entry[K, V]
	for e := T.buckets.Get(it.bucket); e != it.e; e = e.next {
		prev = e
	}
	T.remove(it.bucket, prev, it.e)
	return next
}

func (T *Table[K, V]) remove(b int, prev, e *entry[K, V]) {
	if prev == nil {
		T.buckets.Set(b, e.next)
	} else {
		prev.next = e.next
	}
	// e was found through the table's own chains
	_ = T.nodes.Free(e)
	T.count--
}

// Size - Returns the number of entries
func (T *Table[K, V]) Size() int {
	return T.count
}

// Clear - Removes all entries keeping the bucket count
func (T *Table[K, V]) Clear() {
	T.nodes.Clear()
	T.count = 0
	T.initBuckets(T.buckets.Size())
}

// Reserve - Grows the bucket count so that n entries fit without a rehash, never shrinks
func (T *Table[K, V]) Reserve(n int) {
	buckets := utils.RoundUp2(int(float32(n)/T.loadFactor) + 1)
	if buckets > T.buckets.Size() {
		T.rehash(buckets)
	}
}

// Clone - Returns an independent copy with its own nodes, values are copied as values
func (T *Table[K, V]) Clone() *Table[K, V] {
	c := &Table[K, V]{
		nodes:      alloc.NewObjectPool[entry[K, V]](false),
		loadFactor: T.loadFactor,
		hash:       T.hash,
	}
	c.initBuckets(T.buckets.Size())
	for b, head := range T.buckets.All() {
		var tail *entry[K, V]
		for e := head; e != nil; e = e.next {
			n := c.nodes.Allocate()
			n.key, n.value = e.key, e.value
			if tail == nil {
				c.buckets.Set(b, n)
			} else {
				tail.next = n
			}
			tail = n
		}
	}
	c.count = T.count
	return c
}

// Index - Returns the bucket key maps to
func (T *Table[K, V]) Index(key K) int {
	return T.bucketOf(key)
}

// GetOccupation - Returns a histogram where element i is the number of buckets holding i entries
func (T *Table[K, V]) GetOccupation() (histogram []int) {
	for _, head := range T.buckets.All() {
		l := 0
		for e := head; e != nil; e = e.next {
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
		Technique:       crt.SeparateChaining,
		NumberOfBuckets: T.buckets.Size(),
		LoadFactor:      T.loadFactor,
		Threshold:       T.threshold,
		Records:         T.count,
		Occupation:      T.count,
	}
}

// GetMemoryOccupation - Returns the number of bytes used by the table, its buckets and its node chunks
func (T *Table[K, V]) GetMemoryOccupation() int {
	return int(unsafe.Sizeof(*T)) + T.buckets.GetMemoryOccupation() + T.nodes.Allocator().GetChunksTotalSize()
}

// All - Iterates keys and values in bucket order
func (T *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := T.Begin(); !it.IsEnd(); it = it.Next() {
			if !yield(it.e.key, it.e.value) {
				return
			}
		}
	}
}
