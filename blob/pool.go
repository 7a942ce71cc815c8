package blob

import "github.com/dmsovetov/libdto/internal/pool"

// scratchPool holds the working buffers the zstd/lz4/s2 codecs compress
// and decompress into. Each of those codecs returns a freshly allocated,
// caller-owned slice, so a pooled buffer is always copied out of and
// released back to scratchPool before the call returns — never handed to
// the caller directly.
var scratchPool = pool.NewSlicePool[byte](64 * 1024)

// getScratch returns a pooled buffer with length exactly n, reusing a
// pooled buffer with sufficient capacity when one is available.
func getScratch(n int) []byte {
	buf := scratchPool.Get()
	if cap(buf) < n {
		return make([]byte, n)
	}
	return buf[:n]
}

// putScratch returns buf to the pool. Callers must not use buf after
// calling putScratch.
func putScratch(buf []byte) {
	scratchPool.Put(buf)
}

// ownedCopy returns a freshly allocated copy of data, sized exactly to
// len(data), suitable for handing to a Codec caller.
func ownedCopy(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out
}
