package blob

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/dmsovetov/libdto/errs"
)

// lz4CompressorPool pools lz4.Compressor instances, which carry internal
// hash-table state worth reusing across calls.
var lz4CompressorPool = sync.Pool{
	New: func() any { return &lz4.Compressor{} },
}

// LZ4Codec trades compression ratio for decompression speed: the fastest
// of the three built-in schemes to read back, at a moderate ratio. Good
// for payloads read far more often than written.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4Codec creates an LZ4 codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Compress block-compresses data through a pooled lz4.Compressor into a
// pooled scratch buffer sized to the worst-case bound, then copies out
// only the trimmed result so scratchPool's buffer can be reused.
func (c LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	scratch := getScratch(lz4.CompressBlockBound(len(data)))
	defer putScratch(scratch)

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, scratch)
	if err != nil {
		return nil, fmt.Errorf("%w: lz4 compress: %v", errs.ErrCompression, err)
	}
	return ownedCopy(scratch[:n]), nil
}

// Decompress grows a pooled scratch buffer until lz4 stops reporting it
// as too small, since the block format does not store the decompressed
// size. The scratch buffer is drawn from scratchPool on every attempt so
// steady-state traffic at a stable ratio settles into reusing a single
// correctly sized buffer instead of reallocating per call.
func (c LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4
	const maxSize = 128 * 1024 * 1024

	for bufSize <= maxSize {
		scratch := getScratch(bufSize)
		n, err := lz4.UncompressBlock(data, scratch)
		if err != nil {
			putScratch(scratch)
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}
			return nil, fmt.Errorf("%w: lz4 decompress: %v", errs.ErrCompression, err)
		}

		out := ownedCopy(scratch[:n])
		putScratch(scratch)
		return out, nil
	}

	return nil, fmt.Errorf("%w: lz4 decompress exceeded %d byte buffer", errs.ErrCompression, maxSize)
}
