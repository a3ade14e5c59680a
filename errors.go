package lineardb

import "github.com/gostonefire/lineardb/internal/errs"

// Errors returned by lineardb. Test the category of a failure with errors.Is, e.g.
// errors.Is(err, lineardb.ErrNotFound).
var (
	// ErrNotFound - Get found no record for the given key.
	ErrNotFound = errs.ErrNotFound

	// ErrKeySizeMismatch - a key argument's length did not match the configured key size.
	ErrKeySizeMismatch = errs.ErrKeySizeMismatch

	// ErrValueSizeMismatch - a value argument's length did not match the configured value size.
	ErrValueSizeMismatch = errs.ErrValueSizeMismatch

	// ErrMagicMismatch - the data file's header did not start with the expected magic bytes.
	ErrMagicMismatch = errs.ErrMagicMismatch

	// ErrSizeMismatch - the data file's header key/value size disagreed with what Open requested.
	ErrSizeMismatch = errs.ErrSizeMismatch

	// ErrCorruptFile - the data file is not a whole number of records, or the index
	// and file were observed to have diverged.
	ErrCorruptFile = errs.ErrCorruptFile

	// ErrIO - a seek, read, or write did not move or transfer the requested amount.
	ErrIO = errs.ErrIO
)
