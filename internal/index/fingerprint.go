package index

import "math"

// recomputeFingerprintMod - Sets fingerprintMod to the largest power-of-two multiple
// of hashTableSizeA that still fits in 32 bits (invariant 3 of spec §3). Doubling
// until the next step would overflow and wrap below the current value is the same
// technique the ported engine uses rather than computing a bit length up front, so
// the 32-bit-overflow edge case (hashTableSizeA itself already close to 2^32) behaves
// identically.
func (idx *Index) recomputeFingerprintMod() {
	mod := idx.hashTableSizeA
	for {
		newMod := mod * 2
		if newMod <= mod {
			// reached the 32-bit limit
			idx.fingerprintMod = mod
			return
		}
		mod = newMod
	}
}

// fingerprintAndBin - Computes the non-zero fingerprint and the bin number for key,
// per spec §4.2 (fingerprint derivation) and §4.3 (linear-hashing bin selection).
func (idx *Index) fingerprintAndBin(key []byte) (fingerprint uint32, bin uint32) {
	hashVal := idx.hasher.Hash(key, Seed)

	fingerprint = uint32(hashVal % uint64(idx.fingerprintMod))
	if fingerprint == 0 {
		// forbid a straight zero fingerprint: 0 means "empty slot". Keep the bin
		// derivation using the same adjusted hash value, so both stay consistent.
		if hashVal < math.MaxUint64 {
			hashVal++
		} else {
			hashVal--
		}
		fingerprint = uint32(hashVal % uint64(idx.fingerprintMod))
	}

	binA := hashVal % uint64(idx.hashTableSizeA)
	splitPoint := idx.hashTableSizeB - idx.hashTableSizeA

	bin = uint32(binA)
	if binA < uint64(splitPoint) {
		// bins below the split point have already been divided into two by a prior
		// split; the doubled modulus is needed to pick between the original bin and
		// its split sibling.
		bin = uint32(hashVal % (uint64(idx.hashTableSizeA) * 2))
	}

	return fingerprint, bin
}
