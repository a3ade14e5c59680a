// Package page implements the page-backed bucket allocator the index uses for both
// its primary hash table and its overflow chain. Buckets are issued stable, densely
// numbered handles that survive growth, so overflow chains can store plain integers
// instead of pointers.
package page

// RecordsPerBucket - R, the number of record slots carried by each FingerprintBucket.
const RecordsPerBucket = 4

// BucketsPerPage - P, the number of buckets packed into a single allocated page.
const BucketsPerPage = 4096

// FingerprintBucket - One bucket's worth of slots plus its overflow link.
//   - Fingerprints holds a non-zero fingerprint per occupied slot; zero means empty.
//   - FileIndex holds the data file record number for each occupied slot; meaningful
//     only where the matching Fingerprints entry is non-zero.
//   - OverflowIndex is a bucket handle into the overflow PageManager, or zero if this
//     bucket has no overflow continuation.
type FingerprintBucket struct {
	Fingerprints  [RecordsPerBucket]uint32
	FileIndex     [RecordsPerBucket]uint32
	OverflowIndex uint32
}

// BucketPage - A contiguous block of BucketsPerPage buckets, zero-initialized on
// allocation so every slot in it starts out logically empty.
type BucketPage struct {
	Buckets [BucketsPerPage]FingerprintBucket
}

// Manager - Issues stable bucket handles (0, 1, 2, ...) over an append-only sequence
// of pages, and resolves a handle back to its backing bucket. Manager owns its pages
// for its entire lifetime; nothing is ever freed short of discarding the Manager
// itself.
type Manager struct {
	pages      []*BucketPage
	numBuckets uint32
}

// NewManager - Allocates a Manager preloaded with startingBuckets worth of zeroed
// buckets. Mirrors the source's initPageManager: ⌈startingBuckets/P⌉+1 pages are
// allocated up front, with a page-slice capacity reserved at twice that, so early
// growth from addBucket does not immediately force a reallocation of the page list
// itself.
func NewManager(startingBuckets uint32) *Manager {
	numPages := 1 + (int(startingBuckets)+BucketsPerPage-1)/BucketsPerPage

	m := &Manager{
		pages:      make([]*BucketPage, numPages, 2*numPages),
		numBuckets: startingBuckets,
	}
	for i := range m.pages {
		m.pages[i] = &BucketPage{}
	}

	return m
}

// AddBucket - Allocates a new page if the existing pages are fully issued, then
// returns the handle of a freshly zeroed bucket at the end of the issued range.
func (m *Manager) AddBucket() uint32 {
	if len(m.pages)*BucketsPerPage == int(m.numBuckets) {
		m.pages = append(m.pages, &BucketPage{})
	}

	newIndex := m.numBuckets
	m.numBuckets++

	return newIndex
}

// Get - Returns the bucket at the given handle. Callers must not pass a handle
// greater than or equal to NumBuckets; there is no bounds check.
func (m *Manager) Get(index uint32) *FingerprintBucket {
	pageNumber := index / BucketsPerPage
	bucketNumber := index % BucketsPerPage
	return &m.pages[pageNumber].Buckets[bucketNumber]
}

// NumBuckets - Returns the number of buckets ever issued by this Manager.
func (m *Manager) NumBuckets() uint32 {
	return m.numBuckets
}

// FirstEmptyBucketIndex - Scans all issued buckets for one whose slot 0 fingerprint
// is zero, skipping handle 0 (reserved as the "no overflow" sentinel for callers using
// this Manager as an overflow arena). If none is found, a new bucket is allocated and
// its handle returned. Used to recycle drained overflow buckets instead of growing the
// overflow arena without bound; the scan is linear in the number of issued buckets,
// which the original source notes could become a hot-path cost and recommends a
// free-list for (not implemented here, since nothing in this port exercises deletion).
func (m *Manager) FirstEmptyBucketIndex() uint32 {
	for i := uint32(1); i < m.numBuckets; i++ {
		if m.Get(i).Fingerprints[0] == 0 {
			return i
		}
	}

	return m.AddBucket()
}
