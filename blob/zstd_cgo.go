//go:build cgo

package blob

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/dmsovetov/libdto/errs"
)

// Compress uses gozstd's cgo binding at level 3, the same default level
// most zstd CLI tools use, appending into a pooled scratch buffer instead
// of letting gozstd allocate fresh on every call.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	scratch := gozstd.CompressLevel(getScratch(0), data, 3)
	out := ownedCopy(scratch)
	putScratch(scratch)
	return out, nil
}

func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	scratch, err := gozstd.Decompress(getScratch(0), data)
	if err != nil {
		putScratch(scratch)
		return nil, fmt.Errorf("%w: zstd decompress: %v", errs.ErrCompression, err)
	}
	out := ownedCopy(scratch)
	putScratch(scratch)
	return out, nil
}
