package conf

// DefaultLoadFactor - Load factor used by the hash tables when none (or a non-positive one) is given
const DefaultLoadFactor float32 = 0.75

// DefaultBuckets - Initial number of buckets for the chained hash tables
const DefaultBuckets int = 16

// DefaultOpenBuckets - Initial number of slots for the open addressing hash table
const DefaultOpenBuckets int = 8

// MinBuckets - Smallest bucket count any hash table is created with
const MinBuckets int = 4

// MinArrayCapacity - First allocation made by an empty dynamic array when it needs to grow
const MinArrayCapacity int = 2

// DefaultChunkSize - Chunk size in bytes for the fixed size allocator when the OS page size is not available
const DefaultChunkSize int = 4096

// BitsPerWord - Number of bits held by each word of a bit set
const BitsPerWord int = 32

// EndOfList - Marker for the end of a free list or a chain of pool indices
const EndOfList uint32 = ^uint32(0)
