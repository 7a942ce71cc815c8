// Package blob provides optional transparent compression for Binary value
// payloads. A Binary value's subtype byte (format.BinarySubtype) records
// which codec, if any, produced its bytes, so a reader never needs to be
// told out of band how to get back the original payload.
//
// Three algorithms are wired, chosen for the same reasons a time-series
// store picks between them: Zstd for the best ratio, S2 for a fast
// balanced middle ground, and LZ4 for the fastest decompression. Compress
// picks a codec by subtype and compresses data into a Binary value;
// Decompress reverses it.
package blob
