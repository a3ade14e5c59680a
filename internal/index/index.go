// Package index implements the in-memory fingerprint-bucket hash table lineardb uses
// to map keys to data file record numbers: a page-backed primary table, a page-backed
// overflow chain, and linear-hashing-style bin selection over the two.
package index

import (
	"github.com/gostonefire/lineardb/hashfunc"
	"github.com/gostonefire/lineardb/internal/datafile"
	"github.com/gostonefire/lineardb/internal/errs"
	"github.com/gostonefire/lineardb/internal/page"
)

// Seed - Fixed seed mixed into every key hash. Matches the seed the engine this
// package ports was built around; there is no reason for it to ever change, since the
// index is always rebuilt from the data file rather than persisted itself.
const Seed uint64 = 0xb9115a39

// DefaultMaxLoad - Target load factor (numRecords / (hashTableSize * RecordsPerBucket))
// the table is sized for at open. Exceeding it does not trigger a resize; excess load
// is absorbed by overflow chains (see CurrentSize).
const DefaultMaxLoad = 0.5

// Index - The fingerprint hash table: two PageManagers (primary and overflow) plus the
// linear-hashing split-point sizes, the fingerprint modulus, and running counters.
type Index struct {
	hashTable        *page.Manager
	overflowBuckets  *page.Manager
	hashTableSizeA   uint32
	hashTableSizeB   uint32
	fingerprintMod   uint32
	numRecords       uint32
	maxLoad          float64
	maxOverflowDepth uint32
	hasher           hashfunc.Hasher
}

// New - Builds an Index sized for hashTableSize buckets, with both linear-hashing
// sizes (A and B) equal: a fresh table, or one freshly rebuilt from a data file, is
// never mid-split. The overflow PageManager always starts at 2 buckets so that handle
// 0 (the "no overflow" sentinel) is never itself addressable as real storage.
func New(hashTableSize uint32, maxLoad float64, hasher hashfunc.Hasher) *Index {
	idx := &Index{
		hashTable:       page.NewManager(hashTableSize),
		overflowBuckets: page.NewManager(2),
		hashTableSizeA:  hashTableSize,
		hashTableSizeB:  hashTableSize,
		maxLoad:         maxLoad,
		hasher:          hasher,
	}
	idx.recomputeFingerprintMod()

	return idx
}

// Get - Looks up key and returns its stored value. Returns errs.ErrNotFound if no
// record for key exists.
func (idx *Index) Get(df *datafile.DataFile, key []byte) (value []byte, err error) {
	value, found, err := idx.getOrPut(df, key, nil, false, false)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.ErrNotFound
	}
	return value, nil
}

// Put - Inserts key/value, or overwrites the value of an existing key, appending the
// record to df in the process.
func (idx *Index) Put(df *datafile.DataFile, key, value []byte) error {
	_, _, err := idx.getOrPut(df, key, value, true, true)
	return err
}

// LoadRecord - Replays a record already present in the data file into the in-memory
// index without appending it again. Used by the open-time rebuild (spec §4.6): the
// data file is walked front to back and every record becomes an index entry pointing
// at its own, already-written position.
func (idx *Index) LoadRecord(df *datafile.DataFile, key, value []byte) error {
	_, _, err := idx.getOrPut(df, key, value, true, false)
	return err
}

// NumRecords - Returns the number of records represented in the index.
func (idx *Index) NumRecords() uint32 {
	return idx.numRecords
}
