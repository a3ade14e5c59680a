package lineardb

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostonefire/lineardb/internal/datafile"
)

func TestOpenWritesExpectedHeaderBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.bin")

	db, err := Open(path, 4, 4, 4)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	df, created, err := datafile.Open(path, 4, 4)
	require.NoError(t, err)
	defer df.Close()

	assert.False(t, created)
	assert.Equal(t, uint32(0), df.NumRecords())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{'L', 'd', '2', 4, 0, 0, 0, 4, 0, 0, 0}, raw)
}

func TestPutGetMultipleKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.bin")
	db, err := Open(path, 4, 4, 4)
	require.NoError(t, err)
	defer db.Close()

	keys := [][]byte{[]byte("AAAA"), []byte("BBBB"), []byte("CCCC"), []byte("DDDD")}
	values := [][]byte{[]byte("1111"), []byte("2222"), []byte("3333"), []byte("4444")}

	for i := range keys {
		require.NoError(t, db.Put(keys[i], values[i]))
	}

	for i := range keys {
		v, err := db.Get(keys[i])
		require.NoError(t, err)
		assert.Equal(t, values[i], v)
	}

	_, err = db.Get([]byte("ZZZZ"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPutOverwriteLeavesNumRecordsAndFileSizeUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.bin")
	db, err := Open(path, 4, 4, 4)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Put([]byte("AAAA"), []byte("1111")))
	require.NoError(t, db.Put([]byte("AAAA"), []byte("9999")))

	assert.Equal(t, uint32(1), db.NumRecords())

	v, err := db.Get([]byte("AAAA"))
	require.NoError(t, err)
	assert.Equal(t, []byte("9999"), v)

	size, err := db.df.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(datafile.HeaderSize)+db.df.RecordSize(), size)
}

func TestForcedCollisionsBuildOverflowChainAndIterateAll(t *testing.T) {
	const n = 10000
	path := filepath.Join(t.TempDir(), "db.bin")
	db, err := Open(path, 2, 8, 4, WithHasher(constantHasher{}))
	require.NoError(t, err)
	defer db.Close()

	for i := 0; i < n; i++ {
		key := make([]byte, 8)
		binary.LittleEndian.PutUint64(key, uint64(i))
		value := make([]byte, 4)
		binary.LittleEndian.PutUint32(value, uint32(i))
		require.NoError(t, db.Put(key, value))
	}

	assert.Equal(t, uint32(n), db.NumRecords())
	assert.Greater(t, db.idx.MaxOverflowDepth(), uint32(0))

	seen := make(map[uint32]bool, n)
	it := db.Init()
	for it.HasNext() {
		key, value, err := it.Next()
		require.NoError(t, err)
		i := binary.LittleEndian.Uint64(key)
		v := binary.LittleEndian.Uint32(value)
		assert.Equal(t, uint32(i), v)
		seen[uint32(i)] = true
	}
	assert.Len(t, seen, n)

	_, _, err = it.Next()
	require.ErrorIs(t, err, ErrNotFound)
}

// constantHasher forces every key into the same bin, exercising the overflow chain at
// volume the way the teacher's stress tests exercise normal-case distribution.
type constantHasher struct{}

func (constantHasher) Hash(key []byte, seed uint64) uint64 {
	return 777
}

func TestCloseReopenPersistsAllRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.bin")

	db, err := Open(path, 4, 4, 4)
	require.NoError(t, err)

	keys := [][]byte{[]byte("AAAA"), []byte("BBBB"), []byte("CCCC")}
	values := [][]byte{[]byte("1111"), []byte("2222"), []byte("3333")}
	for i := range keys {
		require.NoError(t, db.Put(keys[i], values[i]))
	}
	require.NoError(t, db.Close())

	db2, err := Open(path, 4, 4, 4)
	require.NoError(t, err)
	defer db2.Close()

	assert.Equal(t, uint32(len(keys)), db2.NumRecords())
	for i := range keys {
		v, err := db2.Get(keys[i])
		require.NoError(t, err)
		assert.Equal(t, values[i], v)
	}
}

func TestReopenWithMismatchedKeySizeFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.bin")

	db, err := Open(path, 4, 4, 4)
	require.NoError(t, err)
	require.NoError(t, db.Put([]byte("AAAA"), []byte("1111")))
	require.NoError(t, db.Close())

	_, err = Open(path, 4, 8, 4)
	require.ErrorIs(t, err, ErrSizeMismatch)
}

func TestGetPutRejectMismatchedArgumentSizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.bin")
	db, err := Open(path, 4, 4, 4)
	require.NoError(t, err)
	defer db.Close()

	err = db.Put([]byte("TOO_LONG_KEY"), []byte("1111"))
	require.ErrorIs(t, err, ErrKeySizeMismatch)

	err = db.Put([]byte("AAAA"), []byte("TOO_LONG_VALUE"))
	require.ErrorIs(t, err, ErrValueSizeMismatch)

	_, err = db.Get([]byte("TOO_LONG_KEY"))
	require.ErrorIs(t, err, ErrKeySizeMismatch)
}
