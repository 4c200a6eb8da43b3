package utils

import (
	"github.com/gostonefire/xcontainers/internal/conf"
	"math/bits"
)

// RoundUp2 - Returns the nearest bigger (or equal) power of two of a, values less than 1 return 1
func RoundUp2(a int) int {
	if a <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(a-1))
}

// IsPowerOf2 - Returns true if a is a power of two
func IsPowerOf2(a int) bool {
	return a > 0 && a&(a-1) == 0
}

// BucketCount - Returns the number of buckets a hash table should use given a requested size,
// the result is a power of two and never less than conf.MinBuckets
func BucketCount(requested int) int {
	return RoundUp2(max(requested, conf.MinBuckets))
}

// Threshold - Returns the number of entries that will trigger a rehash given buckets and load factor
func Threshold(buckets int, loadFactor float32) int {
	return max(1, int(float32(buckets)*loadFactor))
}

// LoadFactor - Returns loadFactor if positive, otherwise conf.DefaultLoadFactor
func LoadFactor(loadFactor float32) float32 {
	if loadFactor <= 0 {
		return conf.DefaultLoadFactor
	}
	return loadFactor
}

// Grow - Returns the capacity a dynamic array should grow to when it is full
func Grow(allocated int) int {
	if allocated < conf.MinArrayCapacity {
		return conf.MinArrayCapacity
	}
	return allocated * 2
}
