// Package bitset holds a growable set of bits stored in 32-bit words.
//
// Setting a bit beyond the current capacity grows the set by doubling, capacity never shrinks.
// Reading or clearing bits out of range never grows it.
package bitset

import (
	"github.com/gostonefire/xcontainers/internal/conf"
	"math/bits"
	"strings"
	"unsafe"
)

// BitSet - Set of bits. The zero value is an empty set with no capacity.
type BitSet struct {
	words []uint32
}

// New - Returns a bit set with capacity for at least n bits (and at least one word)
func New(n int) *BitSet {
	words := (max(n, 1) + conf.BitsPerWord - 1) / conf.BitsPerWord
	return &BitSet{words: make([]uint32, words)}
}

// FromBits - Returns a bit set with exactly the given bits set
func FromBits(positions ...int) *BitSet {
	B := New(1)
	for _, n := range positions {
		B.Set(n)
	}
	return B
}

func locate(n int) (word int, mask uint32) {
	return n / conf.BitsPerWord, 1 << uint(n%conf.BitsPerWord)
}

// ensure grows the set by doubling until bit n fits
func (B *BitSet) ensure(n int) {
	need := n/conf.BitsPerWord + 1
	if need <= len(B.words) {
		return
	}
	size := max(len(B.words), 1)
	for size < need {
		size *= 2
	}
	words := make([]uint32, size)
	copy(words, B.words)
	B.words = words
}

// Size - Returns the capacity in bits, always a multiple of 32
func (B *BitSet) Size() int {
	return len(B.words) * conf.BitsPerWord
}

// GetMemoryOccupation - Returns the number of bytes used by the set and its words
func (B *BitSet) GetMemoryOccupation() int {
	return int(unsafe.Sizeof(*B)) + len(B.words)*4
}

// IsSet - Returns true if bit n is set, bits out of range are not set
func (B *BitSet) IsSet(n int) bool {
	if n < 0 || n >= B.Size() {
		return false
	}
	w, m := locate(n)
	return B.words[w]&m != 0
}

// Set - Sets bit n, growing if needed. Negative positions are ignored.
func (B *BitSet) Set(n int) {
	if n < 0 {
		return
	}
	B.ensure(n)
	w, m := locate(n)
	B.words[w] |= m
}

// TestSet - Sets bit n and returns true if it was not already set
func (B *BitSet) TestSet(n int) bool {
	if n < 0 || B.IsSet(n) {
		return false
	}
	B.Set(n)
	return true
}

// Unset - Clears bit n, out of range positions are ignored
func (B *BitSet) Unset(n int) {
	if n < 0 || n >= B.Size() {
		return
	}
	w, m := locate(n)
	B.words[w] &^= m
}

// TestUnset - Clears bit n and returns true if it was set
func (B *BitSet) TestUnset(n int) bool {
	if !B.IsSet(n) {
		return false
	}
	B.Unset(n)
	return true
}

// AppendBits - Writes the count low bits of v starting at bit n, least significant bit first
func (B *BitSet) AppendBits(n int, v uint32, count int) {
	for i := 0; i < count; i++ {
		if v&(1<<uint(i)) != 0 {
			B.Set(n + i)
		} else {
			B.Unset(n + i)
		}
	}
}

// Clear - Clears all bits keeping capacity
func (B *BitSet) Clear() {
	clear(B.words)
}

// Fill - Sets all bits within capacity
func (B *BitSet) Fill() {
	for i := range B.words {
		B.words[i] = ^uint32(0)
	}
}

// Invert - Flips all bits within capacity
func (B *BitSet) Invert() {
	for i := range B.words {
		B.words[i] = ^B.words[i]
	}
}

// And - Keeps only bits also set in o, bits beyond o's capacity are cleared
func (B *BitSet) And(o *BitSet) {
	n := min(len(B.words), len(o.words))
	for i := 0; i < n; i++ {
		B.words[i] &= o.words[i]
	}
	clear(B.words[n:])
}

// Or - Sets every bit set in o, growing to o's capacity first
func (B *BitSet) Or(o *BitSet) {
	B.fit(o)
	for i, w := range o.words {
		B.words[i] |= w
	}
}

// XOr - Flips every bit set in o, growing to o's capacity first
func (B *BitSet) XOr(o *BitSet) {
	B.fit(o)
	for i, w := range o.words {
		B.words[i] ^= w
	}
}

// AndNot - Clears every bit set in o
func (B *BitSet) AndNot(o *BitSet) {
	n := min(len(B.words), len(o.words))
	for i := 0; i < n; i++ {
		B.words[i] &^= o.words[i]
	}
}

// CheckCommon - Returns true if at least one bit is set in both sets
func (B *BitSet) CheckCommon(o *BitSet) bool {
	n := min(len(B.words), len(o.words))
	for i := 0; i < n; i++ {
		if B.words[i]&o.words[i] != 0 {
			return true
		}
	}
	return false
}

func (B *BitSet) fit(o *BitSet) {
	if len(o.words) > len(B.words) {
		B.ensure(o.Size() - 1)
	}
}

// Count - Returns the number of set bits
func (B *BitSet) Count() int {
	c := 0
	for _, w := range B.words {
		c += bits.OnesCount32(w)
	}
	return c
}

// GetSetBitPosition - Returns the position of the n-th (zero based) set bit, or -1 if there are not that many
func (B *BitSet) GetSetBitPosition(n int) int {
	if n < 0 {
		return -1
	}
	for i, w := range B.words {
		c := bits.OnesCount32(w)
		if n >= c {
			n -= c
			continue
		}
		for ; ; n-- {
			p := bits.TrailingZeros32(w)
			if n == 0 {
				return i*conf.BitsPerWord + p
			}
			w &^= 1 << uint(p)
		}
	}
	return -1
}

// GetUnsetBitPosition - Returns the position of the n-th (zero based) unset bit. When capacity holds
// fewer unset bits the position lies past the end, and the set grows to include it.
func (B *BitSet) GetUnsetBitPosition(n int) int {
	if n < 0 {
		return -1
	}
	for i, w := range B.words {
		inv := ^w
		c := bits.OnesCount32(inv)
		if n >= c {
			n -= c
			continue
		}
		for ; ; n-- {
			p := bits.TrailingZeros32(inv)
			if n == 0 {
				return i*conf.BitsPerWord + p
			}
			inv &^= 1 << uint(p)
		}
	}
	pos := B.Size() + n
	B.ensure(pos)
	return pos
}

// Clone - Returns an independent copy
func (B *BitSet) Clone() *BitSet {
	return &BitSet{words: append([]uint32(nil), B.words...)}
}

// String - Returns the bits as '0' and '1' characters, bit 0 first
func (B *BitSet) String() string {
	var sb strings.Builder
	sb.Grow(B.Size())
	for i := 0; i < B.Size(); i++ {
		if B.IsSet(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
