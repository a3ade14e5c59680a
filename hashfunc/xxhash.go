package hashfunc

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// XXHash64 - Default Hasher implementation, backed by xxhash, a fast non-cryptographic
// 64-bit hash. The seed is mixed in ahead of the key bytes rather than passed to the
// underlying digest directly, since xxhash/v2 only exposes the unseeded variant.
type XXHash64 struct{}

// NewXXHash64 - Returns a new XXHash64 Hasher
func NewXXHash64() XXHash64 {
	return XXHash64{}
}

// Hash - Computes a seeded 64-bit hash of key using xxhash
func (XXHash64) Hash(key []byte, seed uint64) uint64 {
	var seedBuf [8]byte
	binary.LittleEndian.PutUint64(seedBuf[:], seed)

	d := xxhash.New()
	_, _ = d.Write(seedBuf[:])
	_, _ = d.Write(key)
	return d.Sum64()
}
