// Package openaddressing holds a hash table storing entries directly in its slot array, resolving
// collisions with linear probing. Removed entries leave a tombstone that keeps probe sequences intact
// until the next rehash.
//
// Two counters are kept: the number of live entries and the occupation, the number of slots that
// are not free (live entries plus tombstones). Rehashing is driven by the occupation.
package openaddressing

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

type entry[K comparable, V any] struct {
	key   K
	value V
	state uint8
}

// Clone - Entries are copied as values
func (E entry[K, V]) Clone() entry[K, V] {
	return E
}

// Table - Open addressing hash table
type Table[K comparable, V any] struct {
	slots      array.ClassArray[entry[K, V]]
	count      int
	occupation int
	threshold  int
	loadFactor float32
	hash       hashfunc.HashAlgorithm[K]
}

// New - Returns an empty table.
//   - initialSlots is rounded up to a power of two (at least 4), zero or less selects the default
//   - loadFactor is the fraction of slots that may be occupied before a rehash, it must be below 1,
//     zero or less as well as 1 or more select 0.75
//   - hashAlgorithm is optional, nil selects hashfunc.Default
func New[K comparable, V any](initialSlots int, loadFactor float32, hashAlgorithm hashfunc.HashAlgorithm[K]) *Table[K, V] {
	if initialSlots <= 0 {
		initialSlots = conf.DefaultOpenBuckets
	}
	if loadFactor >= 1 {
		logger.L.Warn("load factor too high for open addressing, using default",
			"loadFactor", loadFactor,
			"default", conf.DefaultLoadFactor)
		loadFactor = conf.DefaultLoadFactor
	}
	if hashAlgorithm == nil {
		hashAlgorithm = hashfunc.NewDefault[K]()
	}
	T := &Table[K, V]{
		loadFactor: utils.LoadFactor(loadFactor),
		hash:       hashAlgorithm,
	}
	T.initSlots(utils.BucketCount(initialSlots))
	return T
}

// initSlots sets up n free slots
func (T *Table[K, V]) initSlots(n int) {
	T.slots.Clear()
	T.slots.Resize(n)
	T.count = 0
	T.occupation = 0
	T.threshold = utils.Threshold(n, T.loadFactor)
}

func (T *Table[K, V]) home(key K) int {
	return int(T.hash.Hash(key) & uint64(T.slots.Size()-1))
}

// findPos probes from key's home slot. It returns the slot holding key, or else the first tombstone
// passed on the way, or else the free slot ending the probe. It returns -1 when the probe wraps
// around the whole table without meeting a free slot or a tombstone.
func (T *Table[K, V]) findPos(key K) (pos int, found bool) {
	n := T.slots.Size()
	mask := n - 1
	tomb := -1
	i := T.home(key)
	for probes := 0; probes < n; probes++ {
		e := T.slots.At(i)
		switch e.state {
		case model.RecordFree:
			if tomb >= 0 {
				return tomb, false
			}
			return i, false
		case model.RecordOccupied:
			if T.hash.Equal(e.key, key) {
				return i, true
			}
		case model.RecordDeleted:
			if tomb < 0 {
				tomb = i
			}
		}
		i = (i + 1) & mask
	}
	return tomb, false
}

// place stores a new key at pos as returned by findPos and rehashes if the occupation reached the
// threshold. It returns the slot the key ends up in.
func (T *Table[K, V]) place(pos int, key K, v V) int {
	if pos < 0 {
		panic(crt.ProbingAlgorithm{})
	}
	e := T.slots.At(pos)
	if e.state == model.RecordFree {
		T.occupation++
	}
	T.count++
	e.key, e.value, e.state = key, v, model.RecordOccupied

	if T.occupation >= T.threshold {
		T.rehash(T.slots.Size() * 2)
		pos, _ = T.findPos(key)
	}
	return pos
}

// rehash reinserts every live entry into n slots, dropping all tombstones
func (T *Table[K, V]) rehash(n int) {
	logger.L.Debug("hash table rehash",
		"technique", crt.Name(crt.LinearProbing),
		"from", T.slots.Size(),
		"to", n,
		"records", T.count,
		"tombstones", T.occupation-T.count)

	old := array.ClassArray[entry[K, V]]{}
	old.SwapArray(&T.slots)
	for {
		T.initSlots(n)
		for i := 0; i < old.Size(); i++ {
			if e := old.At(i); e.state == model.RecordOccupied {
				T.placeRaw(e.key, e.value)
			}
		}
		if T.occupation < T.threshold {
			break
		}
		n *= 2
	}
	old.Clear()
}

// placeRaw stores a key known to be absent in the first free slot of its probe sequence
func (T *Table[K, V]) placeRaw(key K, v V) {
	mask := T.slots.Size() - 1
	i := T.home(key)
	for T.slots.At(i).state != model.RecordFree {
		i = (i + 1) & mask
	}
	e := T.slots.At(i)
	e.key, e.value, e.state = key, v, model.RecordOccupied
	T.count++
	T.occupation++
}

// Insert - Adds key with value v. If key is present its value is replaced when override is true.
// Returns false only when key was present and override is false.
func (T *Table[K, V]) Insert(key K, v V, override bool) bool {
	pos, found := T.findPos(key)
	if found {
		if override {
			T.slots.At(pos).value = v
		}
		return override
	}
	T.place(pos, key, v)
	return true
}

// Put - Adds key with value v or replaces the value of a present key, returns the entry's position
func (T *Table[K, V]) Put(key K, v V) Iterator[K, V] {
	pos, found := T.findPos(key)
	if found {
		T.slots.At(pos).value = v
	} else {
		pos = T.place(pos, key, v)
	}
	return Iterator[K, V]{t: T, index: pos}
}

// InsertUnique - Adds key with value v unless present, returns the position of key's entry
func (T *Table[K, V]) InsertUnique(key K, v V) Iterator[K, V] {
	it, _ := T.TestInsert(key, v)
	return it
}

// TestInsert - As InsertUnique, inserted tells whether the key was added
func (T *Table[K, V]) TestInsert(key K, v V) (it Iterator[K, V], inserted bool) {
	pos, found := T.findPos(key)
	if !found {
		pos = T.place(pos, key, v)
		inserted = true
	}
	it = Iterator[K, V]{t: T, index: pos}
	return
}

// At - Returns a pointer to the value of key, adding a zero value first if key is not present.
// The pointer is valid until the next insertion of a new key.
func (T *Table[K, V]) At(key K) *V {
	pos, found := T.findPos(key)
	if !found {
		var zero V
		pos = T.place(pos, key, zero)
	}
	return &T.slots.At(pos).value
}

// Find - Returns the position of key's entry, or End()
func (T *Table[K, V]) Find(key K) Iterator[K, V] {
	if pos, found := T.findPos(key); found {
		return Iterator[K, V]{t: T, index: pos}
	}
	return T.End()
}

// FindPtr - Returns a pointer to the value of key, or nil
func (T *Table[K, V]) FindPtr(key K) *V {
	if pos, found := T.findPos(key); found {
		return &T.slots.At(pos).value
	}
	return nil
}

// LookUp - Returns the value of key, ok is false if not present
func (T *Table[K, V]) LookUp(key K) (v V, ok bool) {
	if pos, found := T.findPos(key); found {
		v, ok = T.slots.At(pos).value, true
	}
	return
}

// IsHere - Returns true if key is present
func (T *Table[K, V]) IsHere(key K) bool {
	_, found := T.findPos(key)
	return found
}

// Remove - Removes key leaving a tombstone, returns false if it was not present
func (T *Table[K, V]) Remove(key K) bool {
	pos, found := T.findPos(key)
	if !found {
		return false
	}
	T.bury(pos)
	return true
}

// RemoveAt - Removes the entry at it and returns the position of the next entry
func (T *Table[K, V]) RemoveAt(it Iterator[K, V]) Iterator[K, V] {
	if it.IsEnd() {
		return it
	}
	T.bury(it.index)
	return T.firstFrom(it.index + 1)
}

func (T *Table[K, V]) bury(pos int) {
	e := T.slots.At(pos)
	var zero entry[K, V]
	*e = zero
	e.state = model.RecordDeleted
	T.count--
}

// Size - Returns the number of live entries
func (T *Table[K, V]) Size() int {
	return T.count
}

// Occupation - Returns the number of slots holding a live entry or a tombstone
func (T *Table[K, V]) Occupation() int {
	return T.occupation
}

// Threshold - Returns the occupation that triggers a rehash
func (T *Table[K, V]) Threshold() int {
	return T.threshold
}

// Clear - Frees every slot keeping the slot count
func (T *Table[K, V]) Clear() {
	T.initSlots(T.slots.Size())
}

// Reserve - Grows the slot count so that n entries fit without a rehash, never shrinks
func (T *Table[K, V]) Reserve(n int) {
	slots := utils.RoundUp2(int(float32(n)/T.loadFactor) + 1)
	if slots > T.slots.Size() {
		T.rehash(slots)
	}
}

// Clone - Returns an independent copy, tombstones included
func (T *Table[K, V]) Clone() *Table[K, V] {
	c := *T
	c.slots = array.ClassArray[entry[K, V]]{}
	c.slots.Append(&T.slots)
	return &c
}

// Index - Returns the home slot of key
func (T *Table[K, V]) Index(key K) int {
	return T.home(key)
}

// GetOccupation - Returns a histogram where element d is the number of live entries stored d slots
// past their home slot
func (T *Table[K, V]) GetOccupation() (histogram []int) {
	n := T.slots.Size()
	histogram = []int{0}
	for i := 0; i < n; i++ {
		e := T.slots.At(i)
		if e.state != model.RecordOccupied {
			continue
		}
		d := (i - T.home(e.key) + n) & (n - 1)
		for len(histogram) <= d {
			histogram = append(histogram, 0)
		}
		histogram[d]++
	}
	return
}

// GetStorageParameters - Returns the current sizing of the table
func (T *Table[K, V]) GetStorageParameters() model.StorageParameters {
	return model.StorageParameters{
		Technique:       crt.LinearProbing,
		NumberOfBuckets: T.slots.Size(),
		LoadFactor:      T.loadFactor,
		Threshold:       T.threshold,
		Records:         T.count,
		Occupation:      T.occupation,
	}
}

// GetMemoryOccupation - Returns the number of bytes used by the table and its slots
func (T *Table[K, V]) GetMemoryOccupation() int {
	return int(unsafe.Sizeof(*T)) + T.slots.GetMemoryOccupation()
}

// All - Iterates keys and values in slot order
func (T *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := T.Begin(); !it.IsEnd(); it = it.Next() {
			e := T.slots.At(it.index)
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
