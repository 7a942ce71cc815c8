// Package container implements a read-only view over an encoded binary
// document (Dto) and an Iterator for walking and looking up its entries
// without decoding the whole document up front.
package container

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/dmsovetov/libdto/endian"
)

// Dto is a read-only view over an in-memory binary document. It borrows
// data; it never copies or mutates it.
type Dto struct {
	data []byte
}

// New wraps data as a Dto view. data must begin at the document's own
// length prefix (spec §3): either a whole encoded document, or the slice
// an Iterator exposes for a nested composite entry.
func New(data []byte) Dto {
	return Dto{data: data}
}

// Valid reports whether the view has a data pointer and a length prefix
// long enough to be a well-formed document (at minimum the 5-byte empty
// document: a 4-byte length plus a terminating End byte).
func (d Dto) Valid() bool {
	return len(d.data) >= 5 && d.Length() >= 5 && int(d.Length()) <= len(d.data)
}

// Capacity returns the view's backing buffer size.
func (d Dto) Capacity() int {
	return len(d.data)
}

// Length reads the document's leading int32 length prefix: the byte count
// from the start of the length field through the terminating End byte,
// inclusive.
func (d Dto) Length() int32 {
	if len(d.data) < 4 {
		return 0
	}
	return int32(endian.GetLittleEndianEngine().Uint32(d.data)) //nolint:gosec
}

// Data returns the view's backing bytes.
func (d Dto) Data() []byte {
	return d.data
}

// Iter returns an iterator positioned before the first top-level entry.
func (d Dto) Iter() *Iterator {
	return newIterator(d.data)
}

// Find performs a linear scan of top-level entries and returns an
// iterator positioned at the first entry whose key equals key. The
// returned iterator is invalid (IsValid reports false) if no entry
// matches.
func (d Dto) Find(key string) *Iterator {
	it := d.Iter()
	for it.Next() {
		if it.Key().EqualString(key) {
			return it
		}
	}
	return invalidIterator()
}

// FindDescendant splits path on "." and descends into nested KeyValue or
// Sequence children by segment; for sequences the segment is the decimal
// index as a string. It returns an invalid iterator if any segment is
// missing or traverses a non-composite value.
func (d Dto) FindDescendant(path string) *Iterator {
	segments := strings.Split(path, ".")
	cur := d
	for i, seg := range segments {
		it := cur.Find(seg)
		if !it.IsValid() {
			return invalidIterator()
		}
		if i == len(segments)-1 {
			return it
		}
		if !it.Tag().IsComposite() {
			return invalidIterator()
		}
		cur = it.ToDto()
	}
	return invalidIterator()
}

// EntryCount returns the number of top-level entries.
func (d Dto) EntryCount() int {
	count := 0
	it := d.Iter()
	for it.Next() {
		count++
	}
	return count
}

// Checksum returns the xxHash64 of the view's encoded bytes, a convenience
// for callers wanting cheap change detection or dedup of whole documents
// without a byte-for-byte comparison.
func (d Dto) Checksum() uint64 {
	return xxhash.Sum64(d.data)
}
