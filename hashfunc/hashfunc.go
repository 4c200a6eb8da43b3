package hashfunc

// HashAlgorithm - Interface that permits a user of the hash tables to supply a custom hash and equality
// suited for its particular key type and distribution of keys.
//
// The tables only use the low bits of the hash (hash & (buckets - 1)) so an algorithm should spread
// entropy into them. Equal keys must produce equal hashes.
type HashAlgorithm[K any] interface {
	// Hash - Returns the hash value of key
	Hash(key K) uint64

	// Equal - Returns true if a and b are to be considered the same key
	Equal(a, b K) bool
}
