package alloc

import (
	"github.com/gostonefire/xcontainers/internal/utils"
)

// ObjectPool - Pool of T values backed by a FixedSizeAllocator. When release is enabled, values leaving
// the pool through Free or Clear get their Release method called if they have one.
type ObjectPool[T any] struct {
	allocator   *FixedSizeAllocator[T]
	callRelease bool
}

// NewObjectPool - Returns an empty pool with OS page sized chunks
func NewObjectPool[T any](callRelease bool) *ObjectPool[T] {
	return &ObjectPool[T]{
		allocator:   NewFixedSizeAllocator[T](0),
		callRelease: callRelease && utils.Releasable[T](),
	}
}

// Allocate - Returns a pointer to a zero value T
func (O *ObjectPool[T]) Allocate() *T {
	return O.allocator.Allocate()
}

// Free - Returns p to the pool, see FixedSizeAllocator.Free for errors. When release is enabled the
// value is released in place before its block is freed, a foreign value is left untouched.
func (O *ObjectPool[T]) Free(p *T) (err error) {
	if O.callRelease {
		return O.allocator.free(p, utils.Release[T])
	}
	return O.allocator.Free(p)
}

// Clear - Releases every value in use (when enabled) and drops all chunks
func (O *ObjectPool[T]) Clear() {
	if O.callRelease {
		O.allocator.ReleaseUsed(utils.Release[T])
	}
	O.allocator.Clear()
}

// Size - Returns the number of values in use
func (O *ObjectPool[T]) Size() int {
	return O.allocator.Used()
}

// Allocator - Returns the underlying allocator
func (O *ObjectPool[T]) Allocator() *FixedSizeAllocator[T] {
	return O.allocator
}
