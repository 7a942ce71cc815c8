package codec

import (
	"github.com/dmsovetov/libdto/cursor"
	"github.com/dmsovetov/libdto/errs"
	"github.com/dmsovetov/libdto/format"
	"github.com/dmsovetov/libdto/stringview"
	"github.com/dmsovetov/libdto/value"
)

// DecodeValue reads one leaf value's payload for tag from in. It panics
// with errs.ErrInvariant on an unknown tag or a composite tag, since
// composites are decoded structurally by the reader/iterator, not as a
// Value (spec §9, event model).
//
// Exported for reuse by the container package's iterator, which decodes
// the same leaf payload shapes while walking a Dto view.
func DecodeValue(tag format.Tag, in *cursor.InputCursor) value.Value {
	switch tag {
	case format.TagDouble:
		return value.NewDouble(in.ReadF64())
	case format.TagString:
		return value.NewString(decodeStringPayload(in))
	case format.TagBinary:
		length := in.ReadI32()
		if length < 0 {
			panic(errs.ErrInvariant)
		}
		subtype := format.BinarySubtype(in.ReadU8())
		data := in.ReadBytes(int(length))
		return value.NewBinary(data, subtype)
	case format.TagUUID:
		var id [16]byte
		copy(id[:], in.ReadBytes(16))
		return value.NewUUID(id)
	case format.TagBool:
		return value.NewBool(in.ReadU8() != 0)
	case format.TagDate:
		return value.NewDate(in.ReadI64())
	case format.TagNull:
		return value.Null()
	case format.TagRegEx:
		pattern := in.ReadStringView()
		options := in.ReadStringView()
		return value.NewRegEx(pattern, options)
	case format.TagInt32:
		return value.NewInt32(in.ReadI32())
	case format.TagTimestamp:
		return value.NewTimestamp(in.ReadU64())
	case format.TagInt64:
		return value.NewInt64(in.ReadI64())
	case format.TagDecimal128:
		var d [16]byte
		copy(d[:], in.ReadBytes(16))
		return value.Value{Tag: format.TagDecimal128, Binary: value.Binary{Data: d[:]}}
	default:
		panic(errs.ErrInvariant)
	}
}

// decodeStringPayload reads a String value's "[length_including_null]
// [bytes] [0x00]" payload, exposing the length without the terminator.
func decodeStringPayload(in *cursor.InputCursor) stringview.View {
	length := in.ReadI32()
	if length < 1 {
		panic(errs.ErrInvariant)
	}
	content := in.ReadBytes(int(length) - 1)
	terminator := in.ReadU8()
	if terminator != 0 {
		panic(errs.ErrInvariant)
	}
	return stringview.Of(content)
}

// SkipValuePayload advances in past tag's leaf payload without decoding
// it, used by the container iterator to step over a value it is not
// inspecting. Composite tags are not handled here; callers use the
// subtree length prefix to skip those in O(1).
func SkipValuePayload(tag format.Tag, in *cursor.InputCursor) {
	switch tag {
	case format.TagDouble:
		in.ReadBytes(8)
	case format.TagString:
		length := in.ReadI32()
		if length < 1 {
			panic(errs.ErrInvariant)
		}
		in.ReadBytes(int(length))
	case format.TagBinary:
		length := in.ReadI32()
		if length < 0 {
			panic(errs.ErrInvariant)
		}
		in.ReadBytes(1 + int(length))
	case format.TagUUID:
		in.ReadBytes(16)
	case format.TagBool:
		in.ReadBytes(1)
	case format.TagDate:
		in.ReadBytes(8)
	case format.TagNull:
		// no payload
	case format.TagRegEx:
		in.ReadStringView()
		in.ReadStringView()
	case format.TagInt32:
		in.ReadBytes(4)
	case format.TagTimestamp:
		in.ReadBytes(8)
	case format.TagInt64:
		in.ReadBytes(8)
	case format.TagDecimal128:
		in.ReadBytes(16)
	default:
		panic(errs.ErrInvariant)
	}
}
