package index

import (
	"bytes"

	"github.com/gostonefire/lineardb/internal/datafile"
	"github.com/gostonefire/lineardb/internal/page"
)

// outcome - The result of considering a single bucket slot (spec §4.5).
type outcome int

const (
	outcomeContinue outcome = iota
	outcomeHandled
	outcomeNotPresent
)

// getOrPut - The sole entry point for both lookup and insertion (spec §4.4). Walks the
// primary bucket for key's bin, then its overflow chain, considering one slot at a
// time. writeDataFile lets the open-time rebuild (LoadRecord) insert index entries
// without re-appending records that are already on disk.
func (idx *Index) getOrPut(df *datafile.DataFile, key, value []byte, put, writeDataFile bool) (result []byte, found bool, err error) {
	fingerprint, bin := idx.fingerprintAndBin(key)

	bucket := idx.hashTable.Get(bin)
	depth := uint32(0)

	for {
		for slot := 0; slot < page.RecordsPerBucket; slot++ {
			o, val, cErr := idx.considerSlot(df, bucket, slot, key, value, fingerprint, put, writeDataFile)
			if cErr != nil {
				return nil, false, cErr
			}
			switch o {
			case outcomeHandled:
				return val, true, nil
			case outcomeNotPresent:
				return nil, false, nil
			}
			// outcomeContinue: fingerprint filled but not a match, keep scanning
		}

		if bucket.OverflowIndex == 0 {
			break
		}

		depth++
		if depth > idx.maxOverflowDepth {
			idx.maxOverflowDepth = depth
		}
		bucket = idx.overflowBuckets.Get(bucket.OverflowIndex)
	}

	if !put {
		// walked the whole chain without an empty or matching slot
		return nil, false, nil
	}

	// terminal bucket reached without a slot being claimed: grow the overflow chain
	depth++
	if depth > idx.maxOverflowDepth {
		idx.maxOverflowDepth = depth
	}

	overflowHandle := idx.overflowBuckets.FirstEmptyBucketIndex()
	bucket.OverflowIndex = overflowHandle

	newBucket := idx.overflowBuckets.Get(overflowHandle)
	newBucket.Fingerprints[0] = fingerprint

	recordNum := idx.numRecords
	newBucket.FileIndex[0] = recordNum
	idx.numRecords++

	if writeDataFile {
		if _, err = df.Append(recordNum, key, value); err != nil {
			return nil, false, err
		}
	}

	return value, true, nil
}

// considerSlot - Implements the per-slot table of spec §4.5.
func (idx *Index) considerSlot(
	df *datafile.DataFile,
	bucket *page.FingerprintBucket,
	slot int,
	key, value []byte,
	fingerprint uint32,
	put, writeDataFile bool,
) (o outcome, result []byte, err error) {
	binFP := bucket.Fingerprints[slot]

	if binFP == 0 {
		if !put {
			return outcomeNotPresent, nil, nil
		}

		// claim the slot; the key is known not to collide with anything already
		// stored, so no read-back is needed before writing.
		bucket.Fingerprints[slot] = fingerprint
		recordNum := idx.numRecords
		bucket.FileIndex[slot] = recordNum
		idx.numRecords++

		if writeDataFile {
			if _, err = df.Append(recordNum, key, value); err != nil {
				return 0, nil, err
			}
		}
		return outcomeHandled, value, nil
	}

	if binFP == fingerprint {
		recordNum := bucket.FileIndex[slot]

		storedKey, kErr := df.ReadKey(recordNum)
		if kErr != nil {
			return 0, nil, kErr
		}
		if !bytes.Equal(storedKey, key) {
			// fingerprint collision on a genuinely different key
			return outcomeContinue, nil, nil
		}

		if put {
			if writeDataFile {
				if err = df.WriteValue(recordNum, value); err != nil {
					return 0, nil, err
				}
			}
			return outcomeHandled, value, nil
		}

		storedValue, vErr := df.ReadValue(recordNum)
		if vErr != nil {
			return 0, nil, vErr
		}
		return outcomeHandled, storedValue, nil
	}

	return outcomeContinue, nil, nil
}
