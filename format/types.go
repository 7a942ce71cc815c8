// Package format defines the wire-level constants shared by the value,
// event, codec, json, and yaml packages: value tags and their byte codes,
// and binary blob subtypes.
package format

// Tag is the one-byte discriminator written before every entry's key in
// the binary container format.
type Tag uint8

const (
	TagEnd        Tag = 0x00 // terminator marker
	TagDouble     Tag = 0x01 // 64-bit IEEE-754
	TagString     Tag = 0x02 // UTF-8, length-prefixed, zero-terminated
	TagKeyValue   Tag = 0x03 // nested object
	TagSequence   Tag = 0x04 // nested ordered list
	TagBinary     Tag = 0x05 // opaque byte blob with 1-byte subtype
	TagUUID       Tag = 0x07 // 16 raw bytes
	TagBool       Tag = 0x08 // 1 byte (0/1)
	TagDate       Tag = 0x09 // 64-bit signed, UTC ms since epoch
	TagNull       Tag = 0x0A // no payload
	TagRegEx      Tag = 0x0B // two zero-terminated strings
	TagInt32      Tag = 0x10 // 32-bit signed, little-endian
	TagTimestamp  Tag = 0x11 // 64-bit unsigned
	TagInt64      Tag = 0x12 // 64-bit signed
	TagDecimal128 Tag = 0x13 // 16 raw bytes
)

// String renders the tag's symbolic name for diagnostics.
func (t Tag) String() string {
	switch t {
	case TagEnd:
		return "End"
	case TagDouble:
		return "Double"
	case TagString:
		return "String"
	case TagKeyValue:
		return "KeyValue"
	case TagSequence:
		return "Sequence"
	case TagBinary:
		return "Binary"
	case TagUUID:
		return "UUID"
	case TagBool:
		return "Bool"
	case TagDate:
		return "Date"
	case TagNull:
		return "Null"
	case TagRegEx:
		return "RegEx"
	case TagInt32:
		return "Int32"
	case TagTimestamp:
		return "Timestamp"
	case TagInt64:
		return "Int64"
	case TagDecimal128:
		return "Decimal128"
	default:
		return "Unknown"
	}
}

// IsComposite reports whether the tag introduces a nested subtree (a
// KeyValue or Sequence) rather than a leaf value.
func (t Tag) IsComposite() bool {
	return t == TagKeyValue || t == TagSequence
}

// BinarySubtype is the single byte following a Binary value's length
// prefix; subtype 0x00 means the payload is opaque caller bytes. Subtypes
// 0x80+ are reserved by this module for optional transparent compression
// of the payload (see the blob package) — a caller that never opts into
// compression never sees them.
type BinarySubtype uint8

const (
	BinarySubtypeGeneric         BinarySubtype = 0x00
	BinarySubtypeCompressedZstd  BinarySubtype = 0x80
	BinarySubtypeCompressedLZ4   BinarySubtype = 0x81
	BinarySubtypeCompressedS2    BinarySubtype = 0x82
)
