package hashfunc

import (
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/gostonefire/xcontainers/xstring"
	"golang.org/x/exp/constraints"
	"hash/maphash"
	"unsafe"
)

// seed is chosen per process, so Default hashes and the bucket indices derived from them differ between runs
var seed = maphash.MakeSeed()

// Default - Hash algorithm for any comparable key using the runtime's own hashing and ==
type Default[K comparable] struct{}

// NewDefault - Returns the hash algorithm used when none is supplied to a table
func NewDefault[K comparable]() Default[K] {
	return Default[K]{}
}

// Hash - Returns the runtime hash of key with a process wide seed, stable only within one process
func (D Default[K]) Hash(key K) uint64 {
	return maphash.Comparable(seed, key)
}

// Equal - Returns a == b
func (D Default[K]) Equal(a, b K) bool {
	return a == b
}

// Integer - Identity hash for integer identifiers
type Integer[K constraints.Integer] struct{}

// Hash - Returns the key itself
func (I Integer[K]) Hash(key K) uint64 {
	return uint64(key)
}

// Equal - Returns a == b
func (I Integer[K]) Equal(a, b K) bool {
	return a == b
}

// String - xxhash based hash for strings
type String struct{}

// Hash - Returns the xxhash of key
func (S String) Hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Equal - Returns a == b
func (S String) Equal(a, b string) bool {
	return a == b
}

// CaseInsensitiveString - Hash for strings where keys differing only in case are the same key.
// A value must not be shared between goroutines.
type CaseInsensitiveString struct {
	folder *xstring.Folder
}

// NewCaseInsensitiveString - Returns a new CaseInsensitiveString using Unicode case folding
func NewCaseInsensitiveString() *CaseInsensitiveString {
	return &CaseInsensitiveString{folder: xstring.NewFolder()}
}

// Hash - Returns the xxhash of the case folded key
func (C *CaseInsensitiveString) Hash(key string) uint64 {
	return xxhash.Sum64String(C.folder.Fold(key))
}

// Equal - Returns true if a and b are equal after case folding
func (C *CaseInsensitiveString) Equal(a, b string) bool {
	return C.folder.EqualFold(a, b)
}

// GUID - xxhash based hash for 128-bit unique identifiers
type GUID struct{}

// Hash - Returns the xxhash of the 16 bytes of key
func (G GUID) Hash(key uuid.UUID) uint64 {
	return xxhash.Sum64(key[:])
}

// Equal - Returns a == b
func (G GUID) Equal(a, b uuid.UUID) bool {
	return a == b
}

// Pointer - Identity hash on the address of pointer keys
type Pointer[T any] struct{}

// Hash - Returns the address of key with alignment bits dropped
func (P Pointer[T]) Hash(key *T) uint64 {
	return uint64(uintptr(unsafe.Pointer(key))) >> 3
}

// Equal - Returns a == b
func (P Pointer[T]) Equal(a, b *T) bool {
	return a == b
}

// Func - Adapter turning a pair of functions into a HashAlgorithm
type Func[K any] struct {
	HashFunc  func(key K) uint64
	EqualFunc func(a, b K) bool
}

// Hash - Calls HashFunc
func (F Func[K]) Hash(key K) uint64 {
	return F.HashFunc(key)
}

// Equal - Calls EqualFunc
func (F Func[K]) Equal(a, b K) bool {
	return F.EqualFunc(a, b)
}

// Constant - Degenerate hash placing every key in the same bucket, used to exercise collision handling
type Constant[K comparable] struct {
	Value uint64
}

// Hash - Returns Value regardless of key
func (C Constant[K]) Hash(key K) uint64 {
	return C.Value
}

// Equal - Returns a == b
func (C Constant[K]) Equal(a, b K) bool {
	return a == b
}
