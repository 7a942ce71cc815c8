//go:build !cgo

package blob

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/dmsovetov/libdto/errs"
)

// zstdDecoderPool pools decoders: klauspost/compress/zstd is built to run
// allocation-free after a warmup, so reuse matters.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		d, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("blob: failed to create zstd decoder: %v", err))
		}
		return d
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		e, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("blob: failed to create zstd encoder: %v", err))
		}
		return e
	},
}

// Compress appends into a pooled scratch buffer rather than the nil
// destination EncodeAll would otherwise allocate fresh, copying out the
// trimmed result and recycling whatever capacity the append grew into.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	enc := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(enc)

	scratch := enc.EncodeAll(data, getScratch(0))
	out := ownedCopy(scratch)
	putScratch(scratch)
	return out, nil
}

func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dec := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)

	scratch, err := dec.DecodeAll(data, getScratch(0))
	if err != nil {
		putScratch(scratch)
		return nil, fmt.Errorf("%w: zstd decompress: %v", errs.ErrCompression, err)
	}
	out := ownedCopy(scratch)
	putScratch(scratch)
	return out, nil
}
