package blob

import (
	"github.com/dmsovetov/libdto/errs"
	"github.com/dmsovetov/libdto/format"
	"github.com/dmsovetov/libdto/value"
)

// Compress produces a Binary value holding data compressed under subtype's
// scheme. Passing format.BinarySubtypeGeneric stores data unchanged, kept
// symmetric with Decompress so callers never special-case "no compression".
func Compress(data []byte, subtype format.BinarySubtype) (value.Value, error) {
	codec, err := CodecFor(subtype)
	if err != nil {
		return value.Value{}, err
	}
	out, err := codec.Compress(data)
	if err != nil {
		return value.Value{}, err
	}
	return value.NewBinary(out, subtype), nil
}

// Decompress reverses Compress, reading the codec to use from v's subtype.
// Panics if v is not a Binary value, matching the rest of the container
// package's typed-accessor contract.
func Decompress(v value.Value) ([]byte, error) {
	if v.Tag != format.TagBinary {
		panic(errs.ErrType)
	}
	codec, err := CodecFor(v.Binary.Subtype)
	if err != nil {
		return nil, err
	}
	return codec.Decompress(v.Binary.Data)
}
