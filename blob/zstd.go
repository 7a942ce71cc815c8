package blob

// ZstdCodec compresses with Zstandard: the best ratio of the three built-in
// schemes, at the cost of being the slowest to compress. Good for payloads
// that are written once and read rarely (cold archival, network transfer).
//
// Its Compress/Decompress methods are implemented per build: zstd_cgo.go
// (the cgo path through valyala/gozstd, built whenever cgo is enabled — it
// trades the pure-Go build's portability for a lower-overhead C
// implementation) or zstd_pure.go (the pure-Go klauspost/compress/zstd
// path, built when cgo is disabled).
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
