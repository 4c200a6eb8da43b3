//go:build unit

package alloc

import (
	"github.com/gostonefire/xcontainers/crt"
	"github.com/stretchr/testify/assert"
	"testing"
)

type block struct {
	a, b int64
}

func TestFixedSizeAllocator_Allocate(t *testing.T) {
	t.Run("blocks per chunk follow page size", func(t *testing.T) {
		// Execute
		f := NewFixedSizeAllocator[block](64)

		// Check
		assert.Equal(t, 16, f.BlockSize())
		assert.Equal(t, 4, f.BlockCount())
		assert.Equal(t, 0, f.GetChunksCount())
	})

	t.Run("page smaller than block gives one block per chunk", func(t *testing.T) {
		// Execute
		f := NewFixedSizeAllocator[block](3)

		// Check
		assert.Equal(t, 1, f.BlockCount())
	})

	t.Run("default page size", func(t *testing.T) {
		// Execute
		f := NewFixedSizeAllocator[block](0)

		// Check
		assert.GreaterOrEqual(t, f.BlockCount(), 1)
	})

	t.Run("chunks are added when full", func(t *testing.T) {
		// Prepare
		f := NewFixedSizeAllocator[block](64)
		seen := map[*block]bool{}

		// Execute
		for i := 0; i < 10; i++ {
			p := f.Allocate()
			p.a = int64(i)
			seen[p] = true
		}

		// Check
		assert.Equal(t, 10, len(seen), "distinct blocks")
		assert.Equal(t, 3, f.GetChunksCount())
		assert.Equal(t, 3*64, f.GetChunksTotalSize())
		assert.Equal(t, 10*16, f.GetChunksOccupation())
		assert.Equal(t, 10, f.Used())
	})

	t.Run("zero size type panics", func(t *testing.T) {
		assert.Panics(t, func() { NewFixedSizeAllocator[struct{}](64) })
	})
}

func TestFixedSizeAllocator_Free(t *testing.T) {
	t.Run("freed block is reused and zeroed", func(t *testing.T) {
		// Prepare
		f := NewFixedSizeAllocator[block](64)
		p := f.Allocate()
		p.a = 42

		// Execute
		err := f.Free(p)
		q := f.Allocate()

		// Check
		assert.Nil(t, err)
		assert.Same(t, p, q, "block reused")
		assert.Equal(t, block{}, *q, "block zeroed")
	})

	t.Run("free nil is a no-op", func(t *testing.T) {
		// Prepare
		f := NewFixedSizeAllocator[block](64)

		// Execute
		err := f.Free(nil)

		// Check
		assert.Nil(t, err)
	})

	t.Run("foreign pointer is rejected", func(t *testing.T) {
		// Prepare
		f := NewFixedSizeAllocator[block](64)
		f.Allocate()

		// Execute
		err := f.Free(&block{})

		// Check
		assert.ErrorIs(t, err, crt.ForeignBlock{})
		assert.Equal(t, 1, f.Used(), "state untouched")
	})

	t.Run("double free is rejected", func(t *testing.T) {
		// Prepare
		f := NewFixedSizeAllocator[block](64)
		p := f.Allocate()
		f.Allocate()
		_ = f.Free(p)

		// Execute
		err := f.Free(p)

		// Check
		assert.ErrorIs(t, err, crt.ForeignBlock{})
		assert.Equal(t, 1, f.Used())
	})

	t.Run("free across chunks", func(t *testing.T) {
		// Prepare
		f := NewFixedSizeAllocator[block](32)
		ps := make([]*block, 8)
		for i := range ps {
			ps[i] = f.Allocate()
		}

		// Execute
		for i := 0; i < len(ps); i += 2 {
			assert.Nil(t, f.Free(ps[i]))
		}

		// Check
		assert.Equal(t, 4, f.GetChunksCount())
		assert.Equal(t, 4, f.Used())

		// Execute
		for i := 0; i < 4; i++ {
			f.Allocate()
		}

		// Check
		assert.Equal(t, 4, f.GetChunksCount(), "free blocks reused before adding chunks")
		assert.Equal(t, 8, f.Used())
	})

	t.Run("clear drops all chunks", func(t *testing.T) {
		// Prepare
		f := NewFixedSizeAllocator[block](64)
		for i := 0; i < 9; i++ {
			f.Allocate()
		}

		// Execute
		f.Clear()

		// Check
		assert.Equal(t, 0, f.GetChunksCount())
		assert.Equal(t, 0, f.GetChunksOccupation())
	})
}

func TestFixedSizeAllocator_ReleaseUsed(t *testing.T) {
	t.Run("only blocks in use are visited", func(t *testing.T) {
		// Prepare
		f := NewFixedSizeAllocator[block](64)
		ps := make([]*block, 10)
		for i := range ps {
			ps[i] = f.Allocate()
			ps[i].a = int64(i + 1)
		}
		// first chunk stays full, second partially used, third emptied
		_ = f.Free(ps[5])
		_ = f.Free(ps[8])
		_ = f.Free(ps[9])

		// Execute
		var visited []int64
		f.ReleaseUsed(func(p *block) { visited = append(visited, p.a) })

		// Check
		assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5, 7, 8}, visited)
	})
}
