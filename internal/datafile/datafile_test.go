package datafile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostonefire/lineardb/internal/errs"
)

func TestOpenNewFileWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.bin")

	df, created, err := Open(path, 4, 4)
	require.NoError(t, err)
	defer df.Close()

	assert.True(t, created)
	assert.Equal(t, uint32(0), df.NumRecords())

	size, err := df.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(HeaderSize), size)
}

func TestAppendAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.bin")
	df, _, err := Open(path, 4, 4)
	require.NoError(t, err)
	defer df.Close()

	n, err := df.Append(0, []byte("AAAA"), []byte("1111"))
	require.NoError(t, err)
	assert.Equal(t, uint32(0), n)

	n, err = df.Append(1, []byte("BBBB"), []byte("2222"))
	require.NoError(t, err)
	assert.Equal(t, uint32(1), n)

	key, err := df.ReadKey(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("AAAA"), key)

	value, err := df.ReadValue(1)
	require.NoError(t, err)
	assert.Equal(t, []byte("2222"), value)

	k, v, err := df.ReadRecordAt(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("AAAA"), k)
	assert.Equal(t, []byte("1111"), v)
}

func TestAppendRejectsDivergedExpectedRecordNum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.bin")
	df, _, err := Open(path, 4, 4)
	require.NoError(t, err)
	defer df.Close()

	_, err = df.Append(5, []byte("AAAA"), []byte("1111"))
	require.ErrorIs(t, err, errs.ErrCorruptFile)
}

func TestWriteValueOverwritesInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.bin")
	df, _, err := Open(path, 4, 4)
	require.NoError(t, err)
	defer df.Close()

	_, err = df.Append(0, []byte("AAAA"), []byte("1111"))
	require.NoError(t, err)

	require.NoError(t, df.WriteValue(0, []byte("9999")))

	value, err := df.ReadValue(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("9999"), value)

	size, err := df.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(HeaderSize)+df.RecordSize(), size)
}

func TestReopenRecoversNumRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.bin")
	df, created, err := Open(path, 4, 4)
	require.NoError(t, err)
	require.True(t, created)

	for i := 0; i < 3; i++ {
		_, err = df.Append(uint32(i), []byte{byte(i), 0, 0, 0}, []byte{0, 0, 0, byte(i)})
		require.NoError(t, err)
	}
	require.NoError(t, df.Close())

	df2, created2, err := Open(path, 4, 4)
	require.NoError(t, err)
	defer df2.Close()

	assert.False(t, created2)
	assert.Equal(t, uint32(3), df2.NumRecords())
}

func TestReopenMismatchedKeySizeFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.bin")
	df, _, err := Open(path, 4, 4)
	require.NoError(t, err)
	require.NoError(t, df.Close())

	_, _, err = Open(path, 8, 4)
	require.ErrorIs(t, err, errs.ErrSizeMismatch)
}

func TestReopenNonIntegralFileLengthFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.bin")
	df, _, err := Open(path, 4, 4)
	require.NoError(t, err)
	_, err = df.Append(0, []byte("AAAA"), []byte("1111"))
	require.NoError(t, err)
	require.NoError(t, df.Close())

	// cut the single record down to its first byte, breaking the whole-record invariant
	raw, _, err := Open(path, 4, 4)
	require.NoError(t, err)
	require.NoError(t, raw.file.Truncate(HeaderSize+1))
	require.NoError(t, raw.Close())

	_, _, err = Open(path, 4, 4)
	require.ErrorIs(t, err, errs.ErrCorruptFile)
}
