package index

import "math"

// CurrentSize - Returns hashTableSizeB, the size of the expanded (post-split) table.
// Since this port never advances the split point (spec §9's open question, resolved
// to preserve the fixed-size behavior), this is simply the size the table was built
// with at open.
func (idx *Index) CurrentSize() uint32 {
	return idx.hashTableSizeB
}

// MaxOverflowDepth - Returns the longest overflow chain observed so far, a diagnostic
// counter only; it does not affect get/put behavior.
func (idx *Index) MaxOverflowDepth() uint32 {
	return idx.maxOverflowDepth
}

// ShrinkSize - Returns the smallest size, reached by repeatedly halving the current
// table size while it divides evenly, that is still at least newNumRecords/maxLoad
// (spec §4.8). If not even one halving qualifies, the current size is returned
// unchanged, whether or not it reaches newNumRecords/maxLoad. Intended for a
// caller planning to rebuild a smaller database, e.g. after a compaction that drops
// the record count well below what the table was originally sized for.
func (idx *Index) ShrinkSize(newNumRecords uint32) uint32 {
	curSize := idx.hashTableSizeA
	if idx.hashTableSizeA != idx.hashTableSizeB {
		// a partially split table can hold up to double the base size without
		// violating the load factor
		curSize *= 2
	}

	if newNumRecords >= curSize {
		return curSize
	}

	minSize := uint32(math.Ceil(float64(newNumRecords) / idx.maxLoad))

	divisor := uint32(1)
	for {
		newDivisor := divisor * 2
		if curSize%newDivisor == 0 && curSize/newDivisor >= minSize {
			divisor = newDivisor
		} else {
			break
		}
	}

	return curSize / divisor
}
