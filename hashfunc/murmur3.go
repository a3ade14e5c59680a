package hashfunc

import "github.com/spaolacci/murmur3"

// Murmur3 - Alternate Hasher implementation backed by murmur3. The original C
// lineardb3 engine this package is a port of hashes keys with a seeded MurmurHash64,
// so Murmur3 is kept as a selectable Hasher for callers porting data files produced
// by that original implementation, where xxhash's different distribution would not
// reproduce the same bin/fingerprint assignment bit for bit (not that it needs to,
// since the index is always rebuilt on open, but it keeps behavior recognizable).
type Murmur3 struct{}

// NewMurmur3 - Returns a new Murmur3 Hasher
func NewMurmur3() Murmur3 {
	return Murmur3{}
}

// Hash - Computes a seeded 64-bit hash of key using murmur3. The seed is truncated to
// 32 bits, matching the width murmur3's seeded entry point accepts.
func (Murmur3) Hash(key []byte, seed uint64) uint64 {
	return murmur3.Sum64WithSeed(key, uint32(seed))
}
