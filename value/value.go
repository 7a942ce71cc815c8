// Package value defines the tagged-union scalar/composite value carried by
// events and by the container's typed accessors.
package value

import (
	"github.com/dmsovetov/libdto/format"
	"github.com/dmsovetov/libdto/stringview"
)

// Binary is an opaque byte blob value with a one-byte subtype.
type Binary struct {
	Data    []byte
	Subtype format.BinarySubtype
}

// Value is a tagged union of every scalar type the container can carry.
// Only the field matching Tag is meaningful; the others are zero.
//
// Composite tags (KeyValue, Sequence) never appear as a Value — they are
// represented structurally by Start/End event pairs instead, per the event
// model in the event package.
type Value struct {
	Tag    format.Tag
	Bool   bool
	Double float64
	Int32  int32
	Int64  int64
	Uint64 uint64 // Timestamp
	Date   int64  // UTC ms since epoch
	String stringview.View
	Binary Binary
	UUID   [16]byte
	RegEx  RegEx
}

// RegEx carries a pattern/options pair. The binary codec encodes and
// decodes it; the JSON and YAML readers never produce it.
type RegEx struct {
	Pattern stringview.View
	Options stringview.View
}

// Null is the Null-tagged value.
func Null() Value { return Value{Tag: format.TagNull} }

// NewBool constructs a Bool-tagged value.
func NewBool(b bool) Value { return Value{Tag: format.TagBool, Bool: b} }

// NewDouble constructs a Double-tagged value.
func NewDouble(f float64) Value { return Value{Tag: format.TagDouble, Double: f} }

// NewInt32 constructs an Int32-tagged value.
func NewInt32(i int32) Value { return Value{Tag: format.TagInt32, Int32: i} }

// NewInt64 constructs an Int64-tagged value.
func NewInt64(i int64) Value { return Value{Tag: format.TagInt64, Int64: i} }

// NewTimestamp constructs a Timestamp-tagged value.
func NewTimestamp(u uint64) Value { return Value{Tag: format.TagTimestamp, Uint64: u} }

// NewDate constructs a Date-tagged value (UTC milliseconds since epoch).
func NewDate(ms int64) Value { return Value{Tag: format.TagDate, Date: ms} }

// NewString constructs a String-tagged value from a borrowed view.
func NewString(v stringview.View) Value { return Value{Tag: format.TagString, String: v} }

// NewStringBytes constructs a String-tagged value wrapping data directly.
func NewStringBytes(data []byte) Value {
	return Value{Tag: format.TagString, String: stringview.Of(data)}
}

// NewBinary constructs a Binary-tagged value.
func NewBinary(data []byte, subtype format.BinarySubtype) Value {
	return Value{Tag: format.TagBinary, Binary: Binary{Data: data, Subtype: subtype}}
}

// NewUUID constructs a UUID-tagged value from 16 raw bytes.
func NewUUID(b [16]byte) Value { return Value{Tag: format.TagUUID, UUID: b} }

// NewRegEx constructs a RegEx-tagged value.
func NewRegEx(pattern, options stringview.View) Value {
	return Value{Tag: format.TagRegEx, RegEx: RegEx{Pattern: pattern, Options: options}}
}
