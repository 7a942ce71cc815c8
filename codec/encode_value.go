package codec

import (
	"github.com/dmsovetov/libdto/cursor"
	"github.com/dmsovetov/libdto/format"
	"github.com/dmsovetov/libdto/value"
)

// EncodeValue writes v's payload (not its tag or key) to out, the inverse
// of DecodeValue. Exported for reuse by the container package and by any
// writer that accumulates a Value out of band before emitting it.
func EncodeValue(out *cursor.OutputCursor, v value.Value) {
	switch v.Tag {
	case format.TagDouble:
		out.WriteF64(v.Double)
	case format.TagString:
		b := v.String.Bytes()
		out.WriteI32(int32(len(b) + 1)) //nolint:gosec
		out.WriteBytes(b)
		out.WriteU8(0)
	case format.TagBinary:
		out.WriteI32(int32(len(v.Binary.Data))) //nolint:gosec
		out.WriteU8(uint8(v.Binary.Subtype))
		out.WriteBytes(v.Binary.Data)
	case format.TagUUID:
		out.WriteBytes(v.UUID[:])
	case format.TagBool:
		if v.Bool {
			out.WriteU8(1)
		} else {
			out.WriteU8(0)
		}
	case format.TagDate:
		out.WriteI64(v.Date)
	case format.TagNull:
		// no payload
	case format.TagRegEx:
		out.WriteStringView(v.RegEx.Pattern.Bytes())
		out.WriteStringView(v.RegEx.Options.Bytes())
	case format.TagInt32:
		out.WriteI32(v.Int32)
	case format.TagTimestamp:
		out.WriteU64(v.Uint64)
	case format.TagInt64:
		out.WriteI64(v.Int64)
	case format.TagDecimal128:
		out.WriteBytes(v.Binary.Data[:16])
	}
}
