//go:build unit

package hashfunc

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"hash/maphash"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Run("equal keys hash equal", func(t *testing.T) {
		// Prepare
		type key struct {
			a int
			b string
		}
		h := NewDefault[key]()

		// Execute
		h1 := h.Hash(key{a: 1, b: "x"})
		h2 := h.Hash(key{a: 1, b: "x"})

		// Check
		assert.Equal(t, h1, h2, "same hash for same key")
		assert.True(t, h.Equal(key{1, "x"}, key{1, "x"}), "keys equal")
		assert.False(t, h.Equal(key{1, "x"}, key{2, "x"}), "keys differ")
	})

	t.Run("instances share the process seed", func(t *testing.T) {
		// Prepare
		a := NewDefault[string]()
		b := Default[string]{}

		// Check
		assert.Equal(t, a.Hash("texture"), b.Hash("texture"), "same hash from separate instances")
		assert.Equal(t, maphash.Comparable(seed, "texture"), a.Hash("texture"), "package seed in use")
	})

	t.Run("default satisfies interface", func(t *testing.T) {
		var h HashAlgorithm[string] = NewDefault[string]()
		assert.NotNil(t, h)
	})
}

func TestInteger(t *testing.T) {
	t.Run("identity hash", func(t *testing.T) {
		h := Integer[int32]{}
		assert.Equal(t, uint64(42), h.Hash(42))
		assert.True(t, h.Equal(7, 7))
	})
}

func TestString(t *testing.T) {
	t.Run("strings hash deterministically", func(t *testing.T) {
		h := String{}
		assert.Equal(t, h.Hash("key"), h.Hash("key"))
		assert.NotEqual(t, h.Hash("key1"), h.Hash("key2"))
	})
}

func TestCaseInsensitiveString(t *testing.T) {
	t.Run("keys differing in case are the same key", func(t *testing.T) {
		// Prepare
		h := NewCaseInsensitiveString()

		// Execute
		h1 := h.Hash("Texture_Main")
		h2 := h.Hash("TEXTURE_main")

		// Check
		assert.Equal(t, h1, h2, "same hash")
		assert.True(t, h.Equal("Texture_Main", "TEXTURE_main"), "equal keys")
		assert.False(t, h.Equal("Texture_Main", "Texture_Alt"), "different keys")
	})

	t.Run("full unicode folding", func(t *testing.T) {
		// Prepare
		h := NewCaseInsensitiveString()

		// Check
		assert.Equal(t, h.Hash("Straße"), h.Hash("STRASSE"))
		assert.True(t, h.Equal("Straße", "STRASSE"))
	})
}

func TestGUID(t *testing.T) {
	t.Run("guid keys", func(t *testing.T) {
		// Prepare
		h := GUID{}
		a := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
		b := uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")

		// Check
		assert.Equal(t, h.Hash(a), h.Hash(a))
		assert.NotEqual(t, h.Hash(a), h.Hash(b))
		assert.False(t, h.Equal(a, b))
	})
}

func TestPointerAndFunc(t *testing.T) {
	t.Run("pointer identity", func(t *testing.T) {
		// Prepare
		a, b := new(int), new(int)
		h := Pointer[int]{}

		// Check
		assert.Equal(t, h.Hash(a), h.Hash(a))
		assert.True(t, h.Equal(a, a))
		assert.False(t, h.Equal(a, b))
	})

	t.Run("func adapter", func(t *testing.T) {
		// Prepare
		h := Func[int]{
			HashFunc:  func(key int) uint64 { return uint64(key % 3) },
			EqualFunc: func(a, b int) bool { return a == b },
		}

		// Check
		assert.Equal(t, h.Hash(4), h.Hash(7))
		assert.False(t, h.Equal(4, 7))
	})

	t.Run("constant hash", func(t *testing.T) {
		h := Constant[int]{Value: 5}
		assert.Equal(t, uint64(5), h.Hash(1))
		assert.Equal(t, uint64(5), h.Hash(2))
	})
}
