package lineardb

// NumRecords - Returns the number of records currently stored.
func (db *DB) NumRecords() uint32 {
	return db.idx.NumRecords()
}

// CurrentSize - Returns the current size, in buckets, of the in-memory hash table.
func (db *DB) CurrentSize() uint32 {
	return db.idx.CurrentSize()
}

// ShrinkSize - Returns the smallest hash table size (a divisor of CurrentSize) that
// could still hold newNumRecords records at this DB's configured load factor. Intended
// for sizing a fresh DB ahead of a compaction that rewrites the data file with fewer
// records than it currently holds (spec §4.8); does not itself resize db.
func (db *DB) ShrinkSize(newNumRecords uint32) uint32 {
	return db.idx.ShrinkSize(newNumRecords)
}
