// Package hashfunc provides the pluggable hash-function abstraction lineardb relies
// on to turn an opaque key into a 64-bit bin/fingerprint source value.
package hashfunc

// Hasher - Interface that permits a caller of lineardb to supply a custom 64-bit hash
// function over a byte range, seeded so the same key can be rehashed with a different
// seed without colliding in the same way.
//   - Hash is given the raw key bytes and a seed, and must return a 64-bit hash value.
//     Implementations need not be cryptographically secure; lineardb only requires a
//     good distribution over the low bits used for bin and fingerprint selection.
type Hasher interface {
	Hash(key []byte, seed uint64) uint64
}
