//go:build unit

package separatechaining

import (
	"github.com/gostonefire/xcontainers/hashfunc"
	"github.com/gostonefire/xcontainers/internal/utils"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"
)

func checkConsistent[K comparable, V any](t *testing.T, tab *Table[K, V]) {
	t.Helper()
	n := 0
	for k := range tab.All() {
		n++
		assert.True(t, tab.IsHere(k), "iterated key is findable")
		if n > tab.Size() {
			assert.Fail(t, "iteration does not terminate")
			return
		}
	}
	assert.Equal(t, tab.Size(), n, "iteration count equals size")
	assert.Equal(t, tab.Size(), tab.nodes.Size(), "one node per entry")
}

func TestTable_Insert(t *testing.T) {
	t.Run("insert honours override", func(t *testing.T) {
		// Prepare
		tab := New[string, int](0, 0, hashfunc.String{})

		// Execute
		first := tab.Insert("a", 1, false)
		again := tab.Insert("a", 2, false)
		over := tab.Insert("a", 3, true)
		v, ok := tab.LookUp("a")

		// Check
		assert.True(t, first)
		assert.False(t, again)
		assert.True(t, over)
		assert.True(t, ok)
		assert.Equal(t, 3, v)
		assert.Equal(t, 1, tab.Size())
	})

	t.Run("put insert unique test insert and at", func(t *testing.T) {
		// Prepare
		tab := New[int, string](0, 0, hashfunc.Integer[int]{})

		// Execute
		tab.Put(1, "a")
		u := tab.InsertUnique(1, "b")
		_, inserted := tab.TestInsert(1, "c")
		*tab.At(2) = "z"

		// Check
		assert.Equal(t, "a", u.Value())
		assert.False(t, inserted)
		assert.Equal(t, "z", tab.Find(2).Value())
		assert.Nil(t, tab.FindPtr(3))
		assert.True(t, tab.Find(3).IsEnd())
	})

	t.Run("value pointers survive rehash", func(t *testing.T) {
		// Prepare
		tab := New[int, int](4, 0.75, nil)
		p := tab.At(0)
		*p = 99

		// Execute
		for i := 1; i < 200; i++ {
			tab.Insert(i, i, false)
		}

		// Check
		assert.Same(t, p, tab.FindPtr(0), "node not moved")
		assert.Equal(t, 99, *p)
	})
}

func TestTable_Rehash(t *testing.T) {
	t.Run("bucket count doubles exactly at each threshold", func(t *testing.T) {
		// Prepare
		tab := New[int, int](4, 0.75, hashfunc.Integer[int]{})
		expected := []struct{ records, buckets, threshold int }{
			{1, 4, 3}, {3, 4, 3}, {4, 8, 6}, {6, 8, 6}, {7, 16, 12}, {12, 16, 12}, {13, 32, 24},
		}

		inserted := 0
		for _, e := range expected {
			// Execute
			for ; inserted < e.records; inserted++ {
				tab.Insert(inserted, inserted, false)
			}

			// Check
			sp := tab.GetStorageParameters()
			assert.Equal(t, e.buckets, sp.NumberOfBuckets, "buckets with %d records", e.records)
			assert.Equal(t, e.threshold, sp.Threshold, "threshold with %d records", e.records)
			assert.Equal(t, e.records, sp.Records)
		}
		checkConsistent(t, tab)
	})

	t.Run("rehash preserves content", func(t *testing.T) {
		// Prepare
		tab := New[int, int](4, 0.5, nil)

		// Execute
		for i := 0; i < 1000; i++ {
			tab.Insert(i, -i, false)
		}

		// Check
		sp := tab.GetStorageParameters()
		assert.True(t, utils.IsPowerOf2(sp.NumberOfBuckets))
		assert.Equal(t, 1000, sp.Records)
		for i := 0; i < 1000; i++ {
			v, ok := tab.LookUp(i)
			assert.True(t, ok)
			assert.Equal(t, -i, v)
		}
		checkConsistent(t, tab)
	})

	t.Run("reserve and occupation", func(t *testing.T) {
		// Prepare
		tab := New[int, int](4, 0.75, nil)

		// Execute
		tab.Reserve(100)
		for i := 0; i < 100; i++ {
			tab.Insert(i, i, false)
		}
		h := tab.GetOccupation()

		// Check
		assert.Equal(t, 256, tab.GetStorageParameters().NumberOfBuckets, "no rehash after reserve")
		buckets, entries := 0, 0
		for l, n := range h {
			buckets += n
			entries += l * n
		}
		assert.Equal(t, 256, buckets)
		assert.Equal(t, 100, entries)
	})
}

func TestTable_Remove(t *testing.T) {
	t.Run("removal with every key in one bucket", func(t *testing.T) {
		// Prepare
		tab := New[int, string](0, 0, hashfunc.Constant[int]{Value: 3})
		tab.Insert(1, "a", false)
		tab.Insert(2, "b", false)
		tab.Insert(3, "c", false)

		// Execute
		removed := tab.Remove(2)

		// Check
		assert.True(t, removed)
		assert.Equal(t, 2, tab.Size())
		v1, _ := tab.LookUp(1)
		v3, _ := tab.LookUp(3)
		assert.Equal(t, "a", v1)
		assert.Equal(t, "c", v3)
		assert.False(t, tab.IsHere(2))
		checkConsistent(t, tab)

		// Execute
		tab.Remove(3)
		tab.Remove(1)

		// Check
		assert.Equal(t, 0, tab.Size())
		checkConsistent(t, tab)
	})

	t.Run("remove at while iterating", func(t *testing.T) {
		// Prepare
		tab := New[int, int](8, 0.75, nil)
		for i := 0; i < 40; i++ {
			tab.Insert(i, i, false)
		}

		// Execute
		for it := tab.Begin(); it != tab.End(); {
			if it.Key()%4 == 0 {
				it = tab.RemoveAt(it)
			} else {
				*it.ValuePtr() *= 10
				it = it.Next()
			}
		}

		// Check
		assert.Equal(t, 30, tab.Size())
		for i := 0; i < 40; i++ {
			v, ok := tab.LookUp(i)
			assert.Equal(t, i%4 != 0, ok)
			if ok {
				assert.Equal(t, i*10, v)
			}
		}
		checkConsistent(t, tab)
	})

	t.Run("random operations agree with map", func(t *testing.T) {
		// Prepare
		r := rand.New(rand.NewSource(11))
		tab := New[int, int](4, 1.5, hashfunc.Func[int]{
			HashFunc:  func(k int) uint64 { return uint64(k % 17) },
			EqualFunc: func(a, b int) bool { return a == b },
		})
		ref := map[int]int{}

		// Execute
		for i := 0; i < 5000; i++ {
			k := r.Intn(400)
			if r.Intn(3) == 0 {
				assert.Equal(t, ref[k] != 0, tab.Remove(k))
				delete(ref, k)
			} else {
				tab.Insert(k, i+1, true)
				ref[k] = i + 1
			}
		}

		// Check
		assert.Equal(t, len(ref), tab.Size())
		for k, v := range ref {
			got, _ := tab.LookUp(k)
			assert.Equal(t, v, got)
		}
		checkConsistent(t, tab)
	})
}

func TestTable_Copies(t *testing.T) {
	t.Run("clone owns its nodes", func(t *testing.T) {
		// Prepare
		tab := New[int, int](0, 0, nil)
		for i := 0; i < 30; i++ {
			tab.Insert(i, i, false)
		}

		// Execute
		c := tab.Clone()
		*c.FindPtr(5) = 500
		tab.Remove(6)

		// Check
		v, _ := tab.LookUp(5)
		assert.Equal(t, 5, v)
		assert.True(t, c.IsHere(6))
		assert.Equal(t, 30, c.Size())
		checkConsistent(t, c)
		checkConsistent(t, tab)
	})

	t.Run("clear frees all nodes", func(t *testing.T) {
		// Prepare
		tab := New[int, int](0, 0, nil)
		for i := 0; i < 30; i++ {
			tab.Insert(i, i, false)
		}

		// Execute
		tab.Clear()

		// Check
		assert.Equal(t, 0, tab.Size())
		assert.Equal(t, 0, tab.nodes.Allocator().GetChunksCount())
		assert.True(t, tab.Begin().IsEnd())
		tab.Insert(1, 1, false)
		assert.True(t, tab.IsHere(1))
	})
}
