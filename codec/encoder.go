// Package codec implements the binary container format: a fluent builder
// (Encoder) that writes the canonical binary form directly into a
// caller-supplied buffer, a pull-style event producer (Reader), and an
// event-consuming Writer. All three write into a fixed buffer that they
// never grow or replace, mirroring the byte-cursor contract in the cursor
// package; Encoder.CompressedBinary is the one path that allocates, for
// the compressed payload only.
package codec

import (
	"strconv"

	"github.com/dmsovetov/libdto/blob"
	"github.com/dmsovetov/libdto/cursor"
	"github.com/dmsovetov/libdto/errs"
	"github.com/dmsovetov/libdto/format"
	"github.com/dmsovetov/libdto/internal/options"
)

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithBlobCompression makes CompressedBinary compress through subtype's
// codec by default; Binary itself is unaffected and always writes its
// argument bytes as given.
func WithBlobCompression(subtype format.BinarySubtype) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.blobSubtype = subtype
	})
}

const lengthPrefixSize = 4

// frame tracks one open composite on the encoder's builder stack: the
// byte offset of its length placeholder, and its sequence index (negative
// marks an object context, per spec §4.5).
type frame struct {
	start    int
	seqIndex int
}

func (f frame) isObject() bool { return f.seqIndex < 0 }

// Encoder is a stateful fluent builder that writes the canonical binary
// form into the caller's buffer. The caller alternates Key and value
// emissions in object context; in sequence context, indices are
// synthesized automatically.
//
// Encoder is not safe for concurrent use, and is not reusable once Finish
// has been called.
type Encoder struct {
	out    *cursor.OutputCursor
	frames []frame

	pendingKey    string
	hasPendingKey bool

	blobSubtype format.BinarySubtype
}

// NewEncoder wraps buf and opens the implicit root object frame.
func NewEncoder(buf []byte, opts ...EncoderOption) *Encoder {
	e := &Encoder{out: cursor.NewOutputCursor(buf)}
	start := e.out.Skip(lengthPrefixSize)
	e.frames = append(e.frames, frame{start: start, seqIndex: -1})
	// NewEncoder has no error return (spec §4.5's fluent contract reports
	// failures through Finish/panics instead), so a WithBlobCompression
	// option can never fail here — options.Apply's error is unreachable.
	_ = options.Apply(e, opts...)
	return e
}

// Consumed returns the number of bytes written into the buffer so far.
func (e *Encoder) Consumed() int { return e.out.Len() }

func (e *Encoder) top() *frame {
	return &e.frames[len(e.frames)-1]
}

// Key stashes a pending key for the next value emission. Valid only in
// object context; panics otherwise, matching the cursor layer's
// precondition-violation behavior for programmer errors.
func (e *Encoder) Key(key string) *Encoder {
	f := e.top()
	if !f.isObject() {
		panic(errs.ErrNoKey)
	}
	e.pendingKey = key
	e.hasPendingKey = true
	return e
}

// entryKey resolves the key for the next entry: the stashed Key in object
// context, or the synthesized decimal index in sequence context.
func (e *Encoder) entryKey() string {
	f := e.top()
	if f.isObject() {
		if !e.hasPendingKey {
			panic(errs.ErrNoKey)
		}
		key := e.pendingKey
		e.hasPendingKey = false
		return key
	}
	key := strconv.Itoa(f.seqIndex)
	f.seqIndex++
	return key
}

func (e *Encoder) writeEntryHeader(tag format.Tag) {
	key := e.entryKey()
	e.out.WriteU8(uint8(tag))
	e.out.WriteStringView([]byte(key))
}

// Null emits a Null-tagged value.
func (e *Encoder) Null() *Encoder {
	e.writeEntryHeader(format.TagNull)
	return e
}

// Bool emits a Bool-tagged value.
func (e *Encoder) Bool(v bool) *Encoder {
	e.writeEntryHeader(format.TagBool)
	if v {
		e.out.WriteU8(1)
	} else {
		e.out.WriteU8(0)
	}
	return e
}

// Double emits a Double-tagged value.
func (e *Encoder) Double(v float64) *Encoder {
	e.writeEntryHeader(format.TagDouble)
	e.out.WriteF64(v)
	return e
}

// Int32 emits an Int32-tagged value.
func (e *Encoder) Int32(v int32) *Encoder {
	e.writeEntryHeader(format.TagInt32)
	e.out.WriteI32(v)
	return e
}

// Int64 emits an Int64-tagged value.
func (e *Encoder) Int64(v int64) *Encoder {
	e.writeEntryHeader(format.TagInt64)
	e.out.WriteI64(v)
	return e
}

// Timestamp emits a Timestamp-tagged value.
func (e *Encoder) Timestamp(v uint64) *Encoder {
	e.writeEntryHeader(format.TagTimestamp)
	e.out.WriteU64(v)
	return e
}

// Date emits a Date-tagged value (UTC milliseconds since epoch).
func (e *Encoder) Date(ms int64) *Encoder {
	e.writeEntryHeader(format.TagDate)
	e.out.WriteI64(ms)
	return e
}

// String emits a String-tagged value.
func (e *Encoder) String(s string) *Encoder {
	e.writeEntryHeader(format.TagString)
	b := []byte(s)
	e.out.WriteI32(int32(len(b) + 1)) //nolint:gosec
	e.out.WriteBytes(b)
	e.out.WriteU8(0)
	return e
}

// UUID emits a UUID-tagged value.
func (e *Encoder) UUID(v [16]byte) *Encoder {
	e.writeEntryHeader(format.TagUUID)
	e.out.WriteBytes(v[:])
	return e
}

// RegEx emits a RegEx-tagged value: two zero-terminated strings.
func (e *Encoder) RegEx(pattern, options string) *Encoder {
	e.writeEntryHeader(format.TagRegEx)
	e.out.WriteStringView([]byte(pattern))
	e.out.WriteStringView([]byte(options))
	return e
}

// Binary emits a Binary-tagged value: a length-prefixed blob with a
// one-byte subtype.
func (e *Encoder) Binary(data []byte, subtype format.BinarySubtype) *Encoder {
	e.writeEntryHeader(format.TagBinary)
	e.out.WriteI32(int32(len(data))) //nolint:gosec
	e.out.WriteU8(uint8(subtype))
	e.out.WriteBytes(data)
	return e
}

// CompressedBinary compresses data through the codec installed by
// WithBlobCompression (format.BinarySubtypeGeneric, i.e. no compression,
// if the encoder was built without one) and emits the result as a Binary
// value. Unlike Binary, which writes its argument bytes untouched, this
// method allocates — acceptable here since the allocation is confined to
// this one entry's payload, not the caller's fixed codec buffer.
func (e *Encoder) CompressedBinary(data []byte) (*Encoder, error) {
	v, err := blob.Compress(data, e.blobSubtype)
	if err != nil {
		return nil, err
	}
	return e.Binary(v.Binary.Data, v.Binary.Subtype), nil
}

// StartKeyValue opens a nested KeyValue composite under the pending key
// (object context) or the next synthesized index (sequence context).
func (e *Encoder) StartKeyValue() *Encoder {
	e.writeEntryHeader(format.TagKeyValue)
	start := e.out.Skip(lengthPrefixSize)
	e.frames = append(e.frames, frame{start: start, seqIndex: -1})
	return e
}

// StartSequence opens a nested Sequence composite under the pending key
// (object context) or the next synthesized index (sequence context).
func (e *Encoder) StartSequence() *Encoder {
	e.writeEntryHeader(format.TagSequence)
	start := e.out.Skip(lengthPrefixSize)
	e.frames = append(e.frames, frame{start: start, seqIndex: 0})
	return e
}

// End closes the innermost open composite, writing its End terminator and
// patching its length placeholder. Panics if called with only the root
// frame open; use Finish to close the root.
func (e *Encoder) End() *Encoder {
	if len(e.frames) <= 1 {
		panic(errs.ErrUnbalanced)
	}
	e.closeTop()
	return e
}

func (e *Encoder) closeTop() {
	e.out.WriteU8(uint8(format.TagEnd))
	f := e.frames[len(e.frames)-1]
	length := e.out.Len() - f.start
	e.out.PatchU32(f.start, uint32(length)) //nolint:gosec
	e.frames = e.frames[:len(e.frames)-1]
}

// AppendEncoder splices a completed sub-encoder's bytes in as a nested
// KeyValue entry under the pending key (object context) or the next
// synthesized index (sequence context). sub must be complete: its Finish
// must have already succeeded, leaving its frame stack empty. Passing a
// sub-encoder with any frame still open, including its root, returns
// ErrIncomplete.
func (e *Encoder) AppendEncoder(sub *Encoder) error {
	if len(sub.frames) != 0 {
		return errs.ErrIncomplete
	}
	e.writeEntryHeader(format.TagKeyValue)
	e.out.WriteBytes(sub.out.Written())
	return nil
}

// Finish closes the root frame and returns the complete encoded document.
// It returns ErrIncomplete if any nested composite was left open.
func (e *Encoder) Finish() ([]byte, error) {
	if len(e.frames) != 1 {
		return nil, errs.ErrIncomplete
	}
	e.closeTop()
	return e.out.Written(), nil
}
