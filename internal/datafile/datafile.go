// Package datafile implements the append-only record store lineardb persists its
// key/value pairs to: a small fixed header followed by a dense array of fixed-width
// records, addressed by a zero-based record number.
package datafile

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/gostonefire/lineardb/internal/errs"
)

// Magic - The three magic bytes every lineardb data file starts with. No null
// terminator is stored; the field is exactly three bytes.
const Magic = "Ld2"

// HeaderSize - Magic (3 bytes) plus keySize and valueSize as 32-bit integers.
const HeaderSize = 11

// DataFile - A seekable, appendable byte stream holding the header and record array.
// Record offsets and the running record count are derived entirely from file size;
// DataFile keeps no other persisted state.
type DataFile struct {
	file       *os.File
	keySize    uint32
	valueSize  uint32
	recordSize int64
	numRecords uint32
}

// Open - Opens path read/write, creating it if absent. If the file is new (shorter
// than HeaderSize) a fresh header is written for keySize/valueSize and created is
// true. Otherwise the existing header is read back and checked against the caller's
// keySize/valueSize, and the file size is checked for an exact multiple of the record
// size; created is false.
func Open(path string, keySize, valueSize uint32) (df *DataFile, created bool, err error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0644)
	if err != nil {
		f, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
		if err != nil {
			return nil, false, fmt.Errorf("lineardb: unable to open data file %q: %w", path, err)
		}
	}

	df = &DataFile{
		file:       f,
		keySize:    keySize,
		valueSize:  valueSize,
		recordSize: int64(keySize) + int64(valueSize),
	}

	fileSize, err := df.size()
	if err != nil {
		_ = f.Close()
		return nil, false, err
	}

	if fileSize < HeaderSize {
		if err = df.writeHeader(); err != nil {
			_ = f.Close()
			return nil, false, err
		}
		return df, true, nil
	}

	if err = df.checkHeader(keySize, valueSize); err != nil {
		_ = f.Close()
		return nil, false, err
	}

	body := fileSize - HeaderSize
	if body%df.recordSize != 0 {
		_ = f.Close()
		return nil, false, fmt.Errorf("%w: lineardb data file does not contain a whole number of %d-byte records", errs.ErrCorruptFile, df.recordSize)
	}
	df.numRecords = uint32(body / df.recordSize)

	return df, false, nil
}

func (df *DataFile) size() (int64, error) {
	fi, err := df.file.Stat()
	if err != nil {
		return 0, fmt.Errorf("lineardb: unable to stat data file: %w", err)
	}
	return fi.Size(), nil
}

func (df *DataFile) writeHeader() error {
	buf := make([]byte, HeaderSize)
	copy(buf, Magic)
	binary.LittleEndian.PutUint32(buf[3:7], df.keySize)
	binary.LittleEndian.PutUint32(buf[7:11], df.valueSize)

	if _, err := df.file.WriteAt(buf, 0); err != nil {
		return fmt.Errorf("lineardb: unable to write data file header: %w", err)
	}
	return nil
}

func (df *DataFile) checkHeader(wantKeySize, wantValueSize uint32) error {
	buf := make([]byte, HeaderSize)
	if _, err := df.file.ReadAt(buf, 0); err != nil {
		return fmt.Errorf("lineardb: unable to read data file header: %w", err)
	}

	if string(buf[0:3]) != Magic {
		return fmt.Errorf("%w: lineardb magic string %q not found at start of data file header", errs.ErrMagicMismatch, Magic)
	}

	keySize := binary.LittleEndian.Uint32(buf[3:7])
	if keySize != wantKeySize {
		return fmt.Errorf("%w: requested key size of %d does not match size of %d in data file header", errs.ErrSizeMismatch, wantKeySize, keySize)
	}

	valueSize := binary.LittleEndian.Uint32(buf[7:11])
	if valueSize != wantValueSize {
		return fmt.Errorf("%w: requested value size of %d does not match size of %d in data file header", errs.ErrSizeMismatch, wantValueSize, valueSize)
	}

	return nil
}

// NumRecords - Returns the number of records the data file currently holds.
func (df *DataFile) NumRecords() uint32 {
	return df.numRecords
}

// KeySize - Returns the fixed key width in bytes.
func (df *DataFile) KeySize() uint32 {
	return df.keySize
}

// ValueSize - Returns the fixed value width in bytes.
func (df *DataFile) ValueSize() uint32 {
	return df.valueSize
}

// RecordSize - Returns keySize+valueSize in bytes.
func (df *DataFile) RecordSize() int64 {
	return df.recordSize
}

func (df *DataFile) offset(recordNum uint32) int64 {
	return HeaderSize + int64(recordNum)*df.recordSize
}

// ReadKey - Reads the stored key for recordNum, used to disambiguate a fingerprint
// collision before trusting a bucket slot.
func (df *DataFile) ReadKey(recordNum uint32) ([]byte, error) {
	buf := make([]byte, df.keySize)
	if _, err := df.file.ReadAt(buf, df.offset(recordNum)); err != nil {
		return nil, fmt.Errorf("%w: unable to read key for record %d: %s", errs.ErrIO, recordNum, err)
	}
	return buf, nil
}

// ReadValue - Reads the stored value for recordNum.
func (df *DataFile) ReadValue(recordNum uint32) ([]byte, error) {
	buf := make([]byte, df.valueSize)
	if _, err := df.file.ReadAt(buf, df.offset(recordNum)+int64(df.keySize)); err != nil {
		return nil, fmt.Errorf("%w: unable to read value for record %d: %s", errs.ErrIO, recordNum, err)
	}
	return buf, nil
}

// WriteValue - Overwrites the value portion of an already-written record in place.
// Keys are fixed width and records are never deleted, so this never needs to touch
// the key or shift any other record.
func (df *DataFile) WriteValue(recordNum uint32, value []byte) error {
	if _, err := df.file.WriteAt(value, df.offset(recordNum)+int64(df.keySize)); err != nil {
		return fmt.Errorf("%w: unable to write value for record %d: %s", errs.ErrIO, recordNum, err)
	}
	return nil
}

// Append - Appends a new (key, value) record to the end of the file and returns the
// record number it was assigned. expectedRecordNum must equal the data file's current
// record count; a mismatch signals the in-memory index and the on-disk file have
// diverged, which is treated as corruption rather than silently overwritten (mirrors
// the source's ftell-equals-computed-offset assertion around every append).
func (df *DataFile) Append(expectedRecordNum uint32, key, value []byte) (recordNum uint32, err error) {
	if expectedRecordNum != df.numRecords {
		return 0, fmt.Errorf("%w: data file expected to hold %d records but index expected record number %d", errs.ErrCorruptFile, df.numRecords, expectedRecordNum)
	}

	fileSize, err := df.size()
	if err != nil {
		return 0, err
	}
	if fileSize != df.offset(df.numRecords) {
		return 0, fmt.Errorf("%w: data file size %d does not match computed append offset %d", errs.ErrCorruptFile, fileSize, df.offset(df.numRecords))
	}

	buf := make([]byte, 0, df.recordSize)
	buf = append(buf, key...)
	buf = append(buf, value...)

	if _, err = df.file.WriteAt(buf, fileSize); err != nil {
		return 0, fmt.Errorf("%w: unable to append record: %s", errs.ErrIO, err)
	}

	recordNum = df.numRecords
	df.numRecords++

	return recordNum, nil
}

// ReadRecordAt - Reads the key and value for a record, for use by an Iterator. The
// positional read at the record's own offset on every call (rather than tracking a
// running file position)
// is what makes iteration safe to interleave with arbitrary gets and puts.
func (df *DataFile) ReadRecordAt(recordNum uint32) (key, value []byte, err error) {
	buf := make([]byte, df.recordSize)
	if _, err = df.file.ReadAt(buf, df.offset(recordNum)); err != nil {
		if err == io.EOF {
			err = fmt.Errorf("%w: unexpected end of data file reading record %d", errs.ErrCorruptFile, recordNum)
		} else {
			err = fmt.Errorf("%w: unable to read record %d: %s", errs.ErrIO, recordNum, err)
		}
		return
	}

	key = buf[:df.keySize]
	value = buf[df.keySize:]
	return
}

// Sync - Flushes the data file to stable storage.
func (df *DataFile) Sync() error {
	return df.file.Sync()
}

// Close - Closes the underlying file descriptor.
func (df *DataFile) Close() error {
	return df.file.Close()
}

// Size - Returns the current total file size in bytes (header plus all records).
func (df *DataFile) Size() (int64, error) {
	return df.size()
}
