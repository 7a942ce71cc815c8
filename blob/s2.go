package blob

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/dmsovetov/libdto/errs"
)

// S2Codec sits between Zstd and LZ4: a faster compressor than Zstd with a
// better ratio than LZ4, suited to payloads under steady read/write load.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec creates an S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Compress encodes into a pooled scratch buffer sized to s2's worst-case
// bound, copying out the trimmed result before releasing the buffer.
func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	scratch := getScratch(s2.MaxEncodedLen(len(data)))
	defer putScratch(scratch)

	encoded := s2.Encode(scratch, data)
	return ownedCopy(encoded), nil
}

// Decompress sizes a pooled scratch buffer exactly via s2.DecodedLen
// before decoding into it, since s2.Decode requires a destination of the
// exact decoded size rather than a growable one.
func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("%w: s2 decoded length: %v", errs.ErrCompression, err)
	}

	scratch := getScratch(n)
	defer putScratch(scratch)

	decoded, err := s2.Decode(scratch, data)
	if err != nil {
		return nil, fmt.Errorf("%w: s2 decompress: %v", errs.ErrCompression, err)
	}
	return ownedCopy(decoded), nil
}
