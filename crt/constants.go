package crt

// Collision resolution techniques supported by the hash table family
const (
	// PooledChaining - Separate chaining where all entries live in one contiguous pool and links are pool indices
	PooledChaining = iota + 1
	// SeparateChaining - Separate chaining where each entry is allocated on its own from an object pool
	SeparateChaining
	// LinearProbing - Open addressing with linear probing and tombstones
	LinearProbing
)

// Name - Returns a readable name of a collision resolution technique
func Name(technique int) string {
	switch technique {
	case PooledChaining:
		return "PooledChaining"
	case SeparateChaining:
		return "SeparateChaining"
	case LinearProbing:
		return "LinearProbing"
	default:
		return "Unknown"
	}
}
