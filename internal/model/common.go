package model

// RecordFree - State indicating a slot that is not and has never been in use since the last rehash or clear
const RecordFree uint8 = 0

// RecordOccupied - State indicating a slot that is in use
const RecordOccupied uint8 = 1

// RecordDeleted - State indicating a slot that has been in use but was removed (a tombstone)
const RecordDeleted uint8 = 2

// StorageParameters - Represents the current sizing of a hash table
//   - Technique is the collision resolution technique in use (see crt constants)
//   - NumberOfBuckets is the current bucket (or slot) count, always a power of two
//   - LoadFactor is the fraction of buckets that may be used before a rehash
//   - Threshold is the entry count that triggers a rehash
//   - Records is the number of live entries
//   - Occupation is the number of slots not free, only differs from Records for open addressing
//   - PoolAllocated is the number of entries reserved in the entry pool, zero when not pooled
type StorageParameters struct {
	Technique       int
	NumberOfBuckets int
	LoadFactor      float32
	Threshold       int
	Records         int
	Occupation      int
	PoolAllocated   int
}
