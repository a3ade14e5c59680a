package lineardb

// Iterator - Walks every record stored in a DB's data file in record-number order,
// independent of the index (spec §4.7). Safe to use concurrently with nothing else:
// like every other lineardb operation it assumes exclusive access to the DB.
type Iterator struct {
	db              *DB
	nextRecordIndex uint32
}

// Init - Returns a new Iterator positioned before the first record.
func (db *DB) Init() *Iterator {
	return &Iterator{db: db}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (it *Iterator) HasNext() bool {
	return it.nextRecordIndex < it.db.idx.NumRecords()
}

// Next - Returns the next key/value pair in record-number order. Returns ErrNotFound
// once every record has been returned.
func (it *Iterator) Next() (key, value []byte, err error) {
	if !it.HasNext() {
		return nil, nil, ErrNotFound
	}

	key, value, err = it.db.df.ReadRecordAt(it.nextRecordIndex)
	if err != nil {
		return nil, nil, err
	}

	it.nextRecordIndex++
	return key, value, nil
}
