package lineardb

// Get - Looks up key and returns its stored value. Returns ErrNotFound if no
// record for key exists, or ErrKeySizeMismatch if key is not of
// the size this DB was opened with.
func (db *DB) Get(key []byte) ([]byte, error) {
	if uint32(len(key)) != db.keySize {
		return nil, ErrKeySizeMismatch
	}

	return db.idx.Get(db.df, key)
}

// Put - Inserts key/value, or overwrites the value of an existing key. Returns
// ErrKeySizeMismatch or ErrValueSizeMismatch if either argument is not of the size
// this DB was opened with.
func (db *DB) Put(key, value []byte) error {
	if uint32(len(key)) != db.keySize {
		return ErrKeySizeMismatch
	}
	if uint32(len(value)) != db.valueSize {
		return ErrValueSizeMismatch
	}

	return db.idx.Put(db.df, key, value)
}
