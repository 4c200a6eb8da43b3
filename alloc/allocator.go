// Package alloc holds a fixed size block allocator and an object pool built on it.
//
// Blocks are carved from chunks holding a fixed number of blocks each. Every chunk keeps its own free
// list as block indices in a side table. Chunks are only released all at once by Clear.
package alloc

import (
	"fmt"
	"github.com/gostonefire/xcontainers/bitset"
	"github.com/gostonefire/xcontainers/crt"
	"github.com/gostonefire/xcontainers/internal/conf"
	"github.com/gostonefire/xcontainers/internal/logger"
	"unsafe"
)

// inUse marks the free list entry of a block that is handed out
const inUse = conf.EndOfList - 1

type chunk[T any] struct {
	blocks         []T
	next           []uint32
	firstAvailable uint32
	available      int
	base           uintptr
	end            uintptr
}

func newChunk[T any](blockCount int) *chunk[T] {
	c := &chunk[T]{
		blocks:    make([]T, blockCount),
		next:      make([]uint32, blockCount),
		available: blockCount,
	}
	for i := range c.next {
		c.next[i] = uint32(i + 1)
	}
	c.next[blockCount-1] = conf.EndOfList
	c.base = uintptr(unsafe.Pointer(&c.blocks[0]))
	c.end = c.base + uintptr(blockCount)*unsafe.Sizeof(c.blocks[0])
	return c
}

func (C *chunk[T]) contains(addr uintptr) bool {
	return addr >= C.base && addr < C.end
}

func (C *chunk[T]) allocate() *T {
	i := C.firstAvailable
	C.firstAvailable = C.next[i]
	C.next[i] = inUse
	C.available--
	return &C.blocks[i]
}

// release puts block i back on the free list
func (C *chunk[T]) release(i uint32) {
	var zero T
	C.blocks[i] = zero
	C.next[i] = C.firstAvailable
	C.firstAvailable = i
	C.available++
}

// free returns the free blocks as a bit set, or nil when the chunk has none
func (C *chunk[T]) free() (free *bitset.BitSet) {
	if C.available == 0 {
		return
	}
	free = bitset.New(len(C.blocks))
	for i := C.firstAvailable; i != conf.EndOfList; i = C.next[i] {
		free.Set(int(i))
	}
	return
}

// FixedSizeAllocator - Allocator handing out blocks that each hold one T
type FixedSizeAllocator[T any] struct {
	chunks     []*chunk[T]
	blockSize  int
	blockCount int
	pageSize   int
	alloc      *chunk[T]
	dealloc    *chunk[T]
}

// NewFixedSizeAllocator - Returns an allocator whose chunks hold pageSize bytes worth of blocks (at least
// one block). A non-positive pageSize selects the OS page size. T must not be a zero size type.
func NewFixedSizeAllocator[T any](pageSize int) *FixedSizeAllocator[T] {
	var zero T
	blockSize := int(unsafe.Sizeof(zero))
	if blockSize == 0 {
		panic(fmt.Sprintf("alloc: zero size block type %T", zero))
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize()
	}
	blockCount := max(1, pageSize/blockSize)

	return &FixedSizeAllocator[T]{
		blockSize:  blockSize,
		blockCount: blockCount,
		pageSize:   blockCount * blockSize,
	}
}

// Allocate - Returns a zeroed block
func (F *FixedSizeAllocator[T]) Allocate() *T {
	if F.alloc == nil || F.alloc.available == 0 {
		F.alloc = nil
		for _, c := range F.chunks {
			if c.available > 0 {
				F.alloc = c
				break
			}
		}
		if F.alloc == nil {
			F.alloc = newChunk[T](F.blockCount)
			F.chunks = append(F.chunks, F.alloc)
			// a new chunk is the best guess for the next free as well
			F.dealloc = F.alloc
			logger.L.Debug("allocator chunk added", "chunks", len(F.chunks), "blocks", F.blockCount, "blockSize", F.blockSize)
		}
	}
	return F.alloc.allocate()
}

// Free - Returns block p to the allocator and zeroes it. A nil p is ignored.
// A pointer that is not a block of this allocator yields crt.ForeignBlock and leaves the allocator untouched.
func (F *FixedSizeAllocator[T]) Free(p *T) (err error) {
	return F.free(p, nil)
}

// free validates p, calls release on it in place when given, then puts it back on its chunk's free list
func (F *FixedSizeAllocator[T]) free(p *T, release func(p *T)) (err error) {
	if p == nil {
		return
	}
	c, i, err := F.locate(p)
	if err != nil {
		return
	}
	if release != nil {
		release(p)
	}
	c.release(i)
	F.dealloc = c
	return
}

// locate finds the chunk and block index of a block handed out by this allocator
func (F *FixedSizeAllocator[T]) locate(p *T) (c *chunk[T], i uint32, err error) {
	addr := uintptr(unsafe.Pointer(p))

	c = F.dealloc
	if c == nil || !c.contains(addr) {
		c = nil
		for _, ch := range F.chunks {
			if ch.contains(addr) {
				c = ch
				break
			}
		}
	}
	if c == nil {
		err = fmt.Errorf("address %#x: %w", addr, crt.ForeignBlock{})
		return
	}

	offset := addr - c.base
	if offset%uintptr(F.blockSize) != 0 {
		err = fmt.Errorf("address %#x not at block boundary: %w", addr, crt.ForeignBlock{})
		return
	}
	i = uint32(offset / uintptr(F.blockSize))
	if c.next[i] != inUse {
		err = fmt.Errorf("address %#x already free: %w", addr, crt.ForeignBlock{})
	}
	return
}

// Clear - Drops all chunks, every block handed out becomes invalid
func (F *FixedSizeAllocator[T]) Clear() {
	logger.L.Debug("allocator cleared", "chunks", len(F.chunks))
	F.chunks = nil
	F.alloc = nil
	F.dealloc = nil
}

// ReleaseUsed - Calls fn on every block currently handed out
func (F *FixedSizeAllocator[T]) ReleaseUsed(fn func(p *T)) {
	for _, c := range F.chunks {
		switch c.available {
		case 0:
			for i := range c.blocks {
				fn(&c.blocks[i])
			}
		case len(c.blocks):
		default:
			free := c.free()
			for i := range c.blocks {
				if !free.IsSet(i) {
					fn(&c.blocks[i])
				}
			}
		}
	}
}

// BlockSize - Returns the size in bytes of one block
func (F *FixedSizeAllocator[T]) BlockSize() int {
	return F.blockSize
}

// BlockCount - Returns the number of blocks per chunk
func (F *FixedSizeAllocator[T]) BlockCount() int {
	return F.blockCount
}

// GetChunksCount - Returns the number of chunks
func (F *FixedSizeAllocator[T]) GetChunksCount() int {
	return len(F.chunks)
}

// GetChunksTotalSize - Returns the number of bytes held by all chunks
func (F *FixedSizeAllocator[T]) GetChunksTotalSize() int {
	return len(F.chunks) * F.pageSize
}

// GetChunksOccupation - Returns the number of bytes in blocks currently handed out
func (F *FixedSizeAllocator[T]) GetChunksOccupation() (occupation int) {
	for _, c := range F.chunks {
		occupation += (F.blockCount - c.available) * F.blockSize
	}
	return
}

// Used - Returns the number of blocks currently handed out
func (F *FixedSizeAllocator[T]) Used() (used int) {
	for _, c := range F.chunks {
		used += F.blockCount - c.available
	}
	return
}
