//go:build unit

package xstring

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestICompare(t *testing.T) {
	t.Run("case is ignored", func(t *testing.T) {
		assert.Equal(t, 0, ICompare("Texture_Main", "TEXTURE_main"))
		assert.Equal(t, -1, ICompare("alpha", "BETA"))
		assert.Equal(t, 1, ICompare("Gamma", "beta"))
		assert.Equal(t, -1, ICompare("", "a"), "empty string sorts first")
	})

	t.Run("unicode folding", func(t *testing.T) {
		// Prepare
		f := NewFolder()

		// Check
		assert.True(t, f.EqualFold("Straße", "STRASSE"), "full case folding")
		assert.True(t, f.EqualFold("ΣΊΣΥΦΟΣ", "σίσυφος"))
		assert.False(t, f.EqualFold("a", "b"))
	})
}

func TestNCompare(t *testing.T) {
	t.Run("only the first n bytes count", func(t *testing.T) {
		assert.Equal(t, 0, NCompare("mesh_01", "mesh_02", 5))
		assert.Equal(t, -1, NCompare("mesh_01", "mesh_02", 7))
		assert.Equal(t, 0, NCompare("ab", "ab", 10), "n past the end")
		assert.Equal(t, -1, NCompare("ab", "abc", 3))
		assert.Equal(t, 0, NCompare("x", "y", -1))
	})
}

func TestStrip(t *testing.T) {
	t.Run("white space runs collapse to one space", func(t *testing.T) {
		assert.Equal(t, "a b c", Strip("a  \t b\n\nc"))
		assert.Equal(t, " a b ", Strip("  a\tb \n"))
		assert.Equal(t, "abc", Strip("abc"))
		assert.Equal(t, "", Strip(""))
	})
}

func TestCropCut(t *testing.T) {
	t.Run("crop keeps a range", func(t *testing.T) {
		assert.Equal(t, "lo w", Crop("hello world", 3, 4))
		assert.Equal(t, "world", Crop("hello world", 6, 100), "length clamped")
		assert.Equal(t, "", Crop("hello", 10, 2), "start past the end")
		assert.Equal(t, "he", Crop("hello", -3, 2), "negative start clamped")
	})

	t.Run("cut removes a range", func(t *testing.T) {
		assert.Equal(t, "helorld", Cut("hello world", 3, 4))
		assert.Equal(t, "hello", Cut("hello world", 5, 100), "length clamped")
		assert.Equal(t, "hello", Cut("hello", 10, 2), "start past the end")
	})
}

func TestReplace(t *testing.T) {
	t.Run("counts replacements", func(t *testing.T) {
		// Execute
		r, n := Replace("a.b.c", ".", "::")

		// Check
		assert.Equal(t, "a::b::c", r)
		assert.Equal(t, 2, n)
	})

	t.Run("no match and empty pattern", func(t *testing.T) {
		r, n := Replace("abc", "x", "y")
		assert.Equal(t, "abc", r)
		assert.Equal(t, 0, n)

		r, n = Replace("abc", "", "y")
		assert.Equal(t, "abc", r)
		assert.Equal(t, 0, n)
	})

	t.Run("non overlapping", func(t *testing.T) {
		r, n := Replace("aaaa", "aa", "b")
		assert.Equal(t, "bb", r)
		assert.Equal(t, 2, n)
	})
}
