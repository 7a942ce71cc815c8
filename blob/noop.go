package blob

// NoOpCodec is the codec for format.BinarySubtypeGeneric: it passes the
// payload through unchanged, returning the input slice itself. Compress
// uses it when the caller asks for no compression but still wants the
// Compress/Decompress symmetry.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func (NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
