package blob

import (
	"fmt"

	"github.com/dmsovetov/libdto/errs"
	"github.com/dmsovetov/libdto/format"
)

// Compressor compresses a Binary value's payload bytes.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor, given the same subtype's codec.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. Every built-in codec is safe for
// concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.BinarySubtype]Codec{
	format.BinarySubtypeGeneric:        NoOpCodec{},
	format.BinarySubtypeCompressedZstd: NewZstdCodec(),
	format.BinarySubtypeCompressedLZ4:  NewLZ4Codec(),
	format.BinarySubtypeCompressedS2:   NewS2Codec(),
}

// CodecFor returns the built-in codec for subtype, or
// errs.ErrUnsupportedCompression if subtype names no known scheme.
func CodecFor(subtype format.BinarySubtype) (Codec, error) {
	if c, ok := builtinCodecs[subtype]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: subtype 0x%02x", errs.ErrUnsupportedCompression, uint8(subtype))
}
