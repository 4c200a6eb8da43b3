package xcontainers

import (
	"github.com/gostonefire/xcontainers/crt"
)

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - NumberOfBuckets is the current number of buckets (slots for open addressing)
//   - Occupation is the number of slots in use including tombstones, equal to Records for chaining techniques
//   - EmptyBuckets is the number of buckets without records (chaining techniques only)
//   - LongestChain is the longest bucket chain, or the longest probe distance plus one for open addressing
//   - MemoryOccupation is the number of bytes used by the table
//   - BucketDistribution is the occupation histogram, see GetOccupation of the tables
type HashMapStat struct {
	Technique          string
	Records            int
	NumberOfBuckets    int
	Occupation         int
	EmptyBuckets       int
	LongestChain       int
	MemoryOccupation   int
	BucketDistribution []int
}

// Get - Gets the value stored for key.
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type NoRecordFound is also returned.
//   - err is of type crt.NoRecordFound when key is not present
func (H *HashMap[K, V]) Get(key K) (value V, err error) {
	var ok bool
	if value, ok = H.table.LookUp(key); !ok {
		err = crt.NoRecordFound{}
	}
	return
}

// Set - Updates an existing record with new data or adds it if no existing is found with same key.
//
// It returns:
//   - err is of type crt.ProbingAlgorithm if an open addressing table found no slot for a new key
func (H *HashMap[K, V]) Set(key K, value V) (err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(crt.ProbingAlgorithm)
			if !ok {
				panic(r)
			}
			err = pe
		}
	}()

	H.table.Insert(key, value, true)
	return
}

// Pop - Returns the value stored for key and removes it from the hash map.
//
// It returns:
//   - value is the value of the matching record if found
//   - err is of type crt.NoRecordFound when key is not present
func (H *HashMap[K, V]) Pop(key K) (value V, err error) {
	if value, err = H.Get(key); err != nil {
		return
	}
	H.table.Remove(key)
	return
}

// Len - Returns the number of records
func (H *HashMap[K, V]) Len() int {
	return H.table.Size()
}

// GetBucketNo - Returns which bucket (slot for open addressing) the given key maps to
func (H *HashMap[K, V]) GetBucketNo(key K) (bucketNo int) {
	return H.table.Index(key)
}

// Stat - Produces a HashMapStat with information about the hash map. Computing it walks every bucket.
//   - includeDistribution set to true includes the occupation histogram, false sets HashMapStat.BucketDistribution to nil.
func (H *HashMap[K, V]) Stat(includeDistribution bool) (hashMapStat *HashMapStat) {
	sp := H.table.GetStorageParameters()
	histogram := H.table.GetOccupation()

	hms := HashMapStat{
		Technique:        crt.Name(H.technique),
		Records:          sp.Records,
		NumberOfBuckets:  sp.NumberOfBuckets,
		Occupation:       sp.Occupation,
		MemoryOccupation: H.table.GetMemoryOccupation(),
	}

	for l := len(histogram) - 1; l >= 0; l-- {
		if histogram[l] > 0 {
			hms.LongestChain = l
			break
		}
	}
	if H.technique == crt.LinearProbing {
		if sp.Records > 0 {
			hms.LongestChain++
		}
	} else if len(histogram) > 0 {
		hms.EmptyBuckets = histogram[0]
	}

	if includeDistribution {
		hms.BucketDistribution = histogram
	}

	hashMapStat = &hms
	return
}
