package container

import (
	"github.com/dmsovetov/libdto/blob"
	"github.com/dmsovetov/libdto/codec"
	"github.com/dmsovetov/libdto/cursor"
	"github.com/dmsovetov/libdto/errs"
	"github.com/dmsovetov/libdto/format"
	"github.com/dmsovetov/libdto/stringview"
	"github.com/dmsovetov/libdto/value"
)

// Iterator walks the entries of one composite level of a Dto, one at a
// time, exposing the last-decoded key and value. For a composite entry,
// ToDto returns a nested view over the subtree's bytes rather than
// recursing automatically — the caller decides whether to descend.
//
// The iterator's tag is format.TagEnd before the first call to Next and
// after Next returns false, signaling end-of-iteration either way (spec
// §9's resolution of the source's inconsistent initial-tag behavior).
type Iterator struct {
	in         *cursor.InputCursor
	key        stringview.View
	tag        format.Tag
	val        value.Value
	valDecoded bool
	payload    []byte
	composite  []byte
	validEntry bool
	exhausted  bool
}

func newIterator(data []byte) *Iterator {
	// Entries begin immediately after the 4-byte length prefix; the
	// terminating End byte is part of the same slice, so no separate
	// bound is needed beyond recognizing it as we read.
	var body []byte
	if len(data) >= 4 {
		body = data[4:]
	}
	return &Iterator{in: cursor.NewInputCursor(body), tag: format.TagEnd}
}

func invalidIterator() *Iterator {
	it := &Iterator{in: cursor.NewInputCursor(nil), tag: format.TagEnd, exhausted: true}
	return it
}

// IsValid reports whether the iterator is currently positioned at a
// decoded entry (as opposed to being exhausted, or the result of a failed
// Find/FindDescendant lookup).
func (it *Iterator) IsValid() bool {
	return it.validEntry
}

// Key returns the current entry's key.
func (it *Iterator) Key() stringview.View {
	return it.key
}

// Tag returns the current entry's value tag, or format.TagEnd before the
// first Next call or once iteration is finished.
func (it *Iterator) Tag() format.Tag {
	return it.tag
}

// Next advances to the next sibling entry and reports whether one was
// found. A composite entry's body is skipped by exactly its declared
// subtree length, giving O(1) advance past arbitrarily large children.
func (it *Iterator) Next() bool {
	if it.exhausted {
		it.validEntry = false
		return false
	}

	tagByte := it.in.ReadU8()
	if format.Tag(tagByte) == format.TagEnd {
		it.tag = format.TagEnd
		it.exhausted = true
		it.validEntry = false
		return false
	}

	tag := format.Tag(tagByte)
	it.key = it.in.ReadStringView()
	it.tag = tag
	it.validEntry = true

	if tag.IsComposite() {
		start := it.in.Position()
		length := it.in.ReadI32()
		if length < 4 {
			panic(errs.ErrInvariant)
		}
		end := start + int(length)
		it.composite = it.in.Bytes()[start:end]
		it.in.SeekAbsolute(end)
		it.val = value.Value{}
		return true
	}

	it.composite = nil
	it.valDecoded = false
	start := it.in.Position()
	codec.SkipValuePayload(tag, it.in)
	it.payload = it.in.Bytes()[start:it.in.Position()]
	return true
}

func (it *Iterator) requireTag(want format.Tag) {
	if it.tag != want {
		panic(errs.ErrType)
	}
}

// decoded lazily decodes the current leaf entry's payload on first access,
// so a scan that only compares keys (Dto.Find, EntryCount) never pays for
// decoding values it skips past.
func (it *Iterator) decoded() value.Value {
	if !it.valDecoded {
		it.val = codec.DecodeValue(it.tag, cursor.NewInputCursor(it.payload))
		it.valDecoded = true
	}
	return it.val
}

// ToBool returns the current Bool value. Panics if the current tag is not
// Bool.
func (it *Iterator) ToBool() bool {
	it.requireTag(format.TagBool)
	return it.decoded().Bool
}

// ToString returns the current String value.
func (it *Iterator) ToString() stringview.View {
	it.requireTag(format.TagString)
	return it.decoded().String
}

// ToDouble returns the current Double value.
func (it *Iterator) ToDouble() float64 {
	it.requireTag(format.TagDouble)
	return it.decoded().Double
}

// ToInt32 returns the current Int32 value. As the sole implicit numeric
// coercion in the read path (spec §4.8), it also accepts a Double value,
// narrowing it to int32.
func (it *Iterator) ToInt32() int32 {
	if it.tag == format.TagDouble {
		return int32(it.decoded().Double) //nolint:gosec
	}
	it.requireTag(format.TagInt32)
	return it.decoded().Int32
}

// ToInt64 returns the current Int64 value.
func (it *Iterator) ToInt64() int64 {
	it.requireTag(format.TagInt64)
	return it.decoded().Int64
}

// ToTimestamp returns the current Timestamp value.
func (it *Iterator) ToTimestamp() uint64 {
	it.requireTag(format.TagTimestamp)
	return it.decoded().Uint64
}

// ToDate returns the current Date value (UTC milliseconds since epoch).
func (it *Iterator) ToDate() int64 {
	it.requireTag(format.TagDate)
	return it.decoded().Date
}

// ToBinary returns the current Binary value.
func (it *Iterator) ToBinary() value.Binary {
	it.requireTag(format.TagBinary)
	return it.decoded().Binary
}

// ToDecompressedBinary returns the current Binary value's payload, run
// through blob.Decompress. For a value written by Encoder.Binary (subtype
// format.BinarySubtypeGeneric), this is the same bytes ToBinary().Data
// would give; it only does real work for a payload written through
// Encoder.CompressedBinary or blob.Compress directly.
func (it *Iterator) ToDecompressedBinary() ([]byte, error) {
	return blob.Decompress(it.decoded())
}

// ToUUID returns the current UUID value.
func (it *Iterator) ToUUID() [16]byte {
	it.requireTag(format.TagUUID)
	return it.decoded().UUID
}

// ToDto returns a nested view over the current composite entry's bytes.
// Panics if the current tag is not KeyValue or Sequence.
func (it *Iterator) ToDto() Dto {
	if !it.tag.IsComposite() {
		panic(errs.ErrType)
	}
	return Dto{data: it.composite}
}
