package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTag_String(t *testing.T) {
	cases := map[Tag]string{
		TagEnd:        "End",
		TagDouble:     "Double",
		TagString:     "String",
		TagKeyValue:   "KeyValue",
		TagSequence:   "Sequence",
		TagBinary:     "Binary",
		TagUUID:       "UUID",
		TagBool:       "Bool",
		TagDate:       "Date",
		TagNull:       "Null",
		TagRegEx:      "RegEx",
		TagInt32:      "Int32",
		TagTimestamp:  "Timestamp",
		TagInt64:      "Int64",
		TagDecimal128: "Decimal128",
		Tag(0xFF):     "Unknown",
	}
	for tag, want := range cases {
		assert.Equal(t, want, tag.String())
	}
}

func TestTag_IsComposite(t *testing.T) {
	assert.True(t, TagKeyValue.IsComposite())
	assert.True(t, TagSequence.IsComposite())
	assert.False(t, TagDouble.IsComposite())
	assert.False(t, TagBinary.IsComposite())
}

func TestBinarySubtype_Values(t *testing.T) {
	assert.Equal(t, BinarySubtype(0x00), BinarySubtypeGeneric)
	assert.Equal(t, BinarySubtype(0x80), BinarySubtypeCompressedZstd)
	assert.Equal(t, BinarySubtype(0x81), BinarySubtypeCompressedLZ4)
	assert.Equal(t, BinarySubtype(0x82), BinarySubtypeCompressedS2)
}
