// Package errs holds the sentinel errors shared between datafile, index and the
// root lineardb package, so a caller can test the category of a failure with
// errors.Is regardless of which layer returned it. The root package re-exports each
// of these under a public name.
package errs

import "errors"

var (
	// ErrNotFound - A get found no record for the given key.
	ErrNotFound = errors.New("lineardb: record not found")

	// ErrKeySizeMismatch - A caller supplied a key whose length does not match the
	// key size the database was opened with.
	ErrKeySizeMismatch = errors.New("lineardb: key length does not match configured key size")

	// ErrValueSizeMismatch - A caller supplied a value whose length does not match
	// the value size the database was opened with.
	ErrValueSizeMismatch = errors.New("lineardb: value length does not match configured value size")

	// ErrMagicMismatch - The data file's header does not start with the expected
	// magic bytes.
	ErrMagicMismatch = errors.New("lineardb: data file header magic mismatch")

	// ErrSizeMismatch - The data file's header key/value size disagrees with what
	// the caller requested at open.
	ErrSizeMismatch = errors.New("lineardb: data file header size mismatch")

	// ErrCorruptFile - The data file's size is not an exact multiple of the record
	// size, or the index and file have otherwise been observed to diverge (a failed
	// append-offset assertion). Spec treats this the same as any other I/O failure:
	// it indicates file corruption or concurrent external modification rather than
	// a programming assertion.
	ErrCorruptFile = errors.New("lineardb: data file is corrupt or has diverged from its index")

	// ErrIO - A seek, read, or write did not move or transfer the requested amount.
	ErrIO = errors.New("lineardb: I/O error")
)
