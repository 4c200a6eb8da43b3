// Package xcontainers is the entry point to the hash table family. It selects a table by collision
// resolution technique and wraps it in a HashMap with error returning operations.
// The containers themselves live in the sub packages.
package xcontainers

import (
	"fmt"
	"github.com/gostonefire/xcontainers/crt"
	"github.com/gostonefire/xcontainers/hashfunc"
	"github.com/gostonefire/xcontainers/internal/logger"
	"github.com/gostonefire/xcontainers/internal/model"
	"github.com/gostonefire/xcontainers/openaddressing"
	"github.com/gostonefire/xcontainers/pooledchaining"
	"github.com/gostonefire/xcontainers/separatechaining"
	"iter"
	"log/slog"
)

// StorageParameters - Current sizing of a hash table
type StorageParameters = model.StorageParameters

// HashTable - Operations shared by every hash table in the family
type HashTable[K comparable, V any] interface {
	Insert(key K, v V, override bool) bool
	At(key K) *V
	FindPtr(key K) *V
	LookUp(key K) (V, bool)
	IsHere(key K) bool
	Remove(key K) bool
	Size() int
	Clear()
	Reserve(n int)
	Index(key K) int
	All() iter.Seq2[K, V]
	GetOccupation() []int
	GetStorageParameters() StorageParameters
	GetMemoryOccupation() int
}

var (
	_ HashTable[int, int] = (*pooledchaining.Table[int, int])(nil)
	_ HashTable[int, int] = (*separatechaining.Table[int, int])(nil)
	_ HashTable[int, int] = (*openaddressing.Table[int, int])(nil)
)

// HashMapInfo - Information about a hash map created
//   - Technique is the name of the collision resolution technique
//   - NumberOfBuckets is the initial number of buckets (slots for open addressing)
//   - LoadFactor is the load factor in use
//   - Threshold is the number of entries (occupied slots for open addressing) that triggers a rehash
type HashMapInfo struct {
	Technique       string
	NumberOfBuckets int
	LoadFactor      float32
	Threshold       int
}

// HashMap - Hash table wrapper reporting missing keys as errors
type HashMap[K comparable, V any] struct {
	table     HashTable[K, V]
	technique int
}

// NewHashTable - Returns an empty hash table using the given collision resolution technique.
//   - technique is one of crt.PooledChaining, crt.SeparateChaining or crt.LinearProbing
//   - initialBuckets is rounded up to a power of two, zero or less selects the technique's default
//   - loadFactor is the fill level that triggers a rehash, zero or less selects 0.75
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface
//
// It returns:
//   - hashTable is the new table
//   - err is of type crt.UnknownTechnique if the technique is not supported
func NewHashTable[K comparable, V any](
	technique int,
	initialBuckets int,
	loadFactor float32,
	hashAlgorithm hashfunc.HashAlgorithm[K],
) (
	hashTable HashTable[K, V],
	err error,
) {
	switch technique {
	case crt.PooledChaining:
		hashTable = pooledchaining.New[K, V](initialBuckets, loadFactor, hashAlgorithm)
	case crt.SeparateChaining:
		hashTable = separatechaining.New[K, V](initialBuckets, loadFactor, hashAlgorithm)
	case crt.LinearProbing:
		hashTable = openaddressing.New[K, V](initialBuckets, loadFactor, hashAlgorithm)
	default:
		err = fmt.Errorf("technique %d: %w", technique, crt.UnknownTechnique{})
	}
	return
}

// NewHashMap - Returns an empty hash map, see NewHashTable for the parameters.
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - hashMapInfo is a HashMapInfo struct containing some data regarding the hash map created
//   - err is of type crt.UnknownTechnique if the technique is not supported
func NewHashMap[K comparable, V any](
	technique int,
	initialBuckets int,
	loadFactor float32,
	hashAlgorithm hashfunc.HashAlgorithm[K],
) (
	hashMap *HashMap[K, V],
	hashMapInfo HashMapInfo,
	err error,
) {
	var table HashTable[K, V]
	table, err = NewHashTable[K, V](technique, initialBuckets, loadFactor, hashAlgorithm)
	if err != nil {
		return
	}

	hashMap = &HashMap[K, V]{table: table, technique: technique}

	sp := table.GetStorageParameters()
	hashMapInfo = HashMapInfo{
		Technique:       crt.Name(technique),
		NumberOfBuckets: sp.NumberOfBuckets,
		LoadFactor:      sp.LoadFactor,
		Threshold:       sp.Threshold,
	}

	return
}

// Table - Returns the underlying hash table
func (H *HashMap[K, V]) Table() HashTable[K, V] {
	return H.table
}

// SetLogger - Sets the logger receiving rehash, allocator and configuration events. Nil silences logging.
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}
