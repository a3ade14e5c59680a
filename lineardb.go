// Package lineardb implements an append-only, fixed-size-record key/value storage
// engine backed by a single data file and an in-memory index: a fingerprint-bucket
// hash table with overflow chaining, a page-backed bucket allocator, and a
// linear-hashing-style bin-selection rule.
//
// The data file holds an 11-byte header followed by a dense array of fixed-width
// records; the index mapping keys to record numbers lives entirely in memory and is
// rebuilt by replaying the data file on every Open. lineardb is single-threaded: all
// operations on a DB must be serialized by the caller.
package lineardb

import (
	"fmt"
	"math"

	"github.com/gostonefire/lineardb/hashfunc"
	"github.com/gostonefire/lineardb/internal/datafile"
	"github.com/gostonefire/lineardb/internal/index"
	"github.com/gostonefire/lineardb/internal/page"
)

// DB - An open lineardb database: a data file plus its in-memory index.
type DB struct {
	df        *datafile.DataFile
	idx       *index.Index
	keySize   uint32
	valueSize uint32
}

// Option - Configures Open. The zero value of a DB's options selects xxhash as the
// Hasher and index.DefaultMaxLoad as the target load factor.
type Option func(*openConfig)

type openConfig struct {
	hasher  hashfunc.Hasher
	maxLoad float64
}

// WithHasher - Overrides the default Hasher (xxhash) used to compute fingerprints and
// bin numbers. See hashfunc.Murmur3 for porting data produced by the original
// MurmurHash64-based engine this package is a port of.
func WithHasher(h hashfunc.Hasher) Option {
	return func(c *openConfig) {
		c.hasher = h
	}
}

// WithMaxLoad - Overrides the target load factor (default index.DefaultMaxLoad, 0.5)
// the index is sized for when rebuilt from an existing data file.
func WithMaxLoad(maxLoad float64) Option {
	return func(c *openConfig) {
		c.maxLoad = maxLoad
	}
}

// Open - Opens (or creates) the data file at path and rebuilds the in-memory index
// from it, per spec §4.6:
//
//  1. open or create the data file;
//  2. if newly created, write the header and size the index to startingBuckets;
//  3. otherwise verify the header's key/value sizes match, compute the number of
//     records already on disk, and size the index for that many records at the
//     target load factor;
//  4. replay every record in the file into the index without re-appending it.
func Open(path string, startingBuckets uint32, keySize, valueSize uint32, opts ...Option) (db *DB, err error) {
	cfg := openConfig{
		hasher:  hashfunc.NewXXHash64(),
		maxLoad: index.DefaultMaxLoad,
	}
	for _, o := range opts {
		o(&cfg)
	}

	df, created, err := datafile.Open(path, keySize, valueSize)
	if err != nil {
		return nil, err
	}

	var idx *index.Index
	if created {
		idx = index.New(startingBuckets, cfg.maxLoad, cfg.hasher)
	} else {
		numRecordsInFile := df.NumRecords()
		minTableRecords := uint32(math.Ceil(float64(numRecordsInFile) / cfg.maxLoad))
		minTableBuckets := uint32(math.Ceil(float64(minTableRecords) / float64(page.RecordsPerBucket)))
		if minTableBuckets == 0 {
			minTableBuckets = 1
		}

		idx = index.New(minTableBuckets, cfg.maxLoad, cfg.hasher)

		for i := uint32(0); i < numRecordsInFile; i++ {
			key, value, rErr := df.ReadRecordAt(i)
			if rErr != nil {
				_ = df.Close()
				return nil, fmt.Errorf("lineardb: rebuilding index from data file: %w", rErr)
			}
			if lErr := idx.LoadRecord(df, key, value); lErr != nil {
				_ = df.Close()
				return nil, fmt.Errorf("lineardb: rebuilding index from data file: %w", lErr)
			}
		}
	}

	return &DB{df: df, idx: idx, keySize: keySize, valueSize: valueSize}, nil
}

// Close - Flushes the data file and releases all resources. Both PageManagers and
// their pages become garbage once db is dropped; there is no other cleanup needed on
// the Go side of this port.
func (db *DB) Close() error {
	if err := db.df.Sync(); err != nil {
		return err
	}
	return db.df.Close()
}
