// Package cursor provides typed, fixed-capacity read/write heads over a
// caller-supplied byte buffer: OutputCursor and InputCursor for the binary
// container format, and TextCursor for the text-format writers.
//
// Every cursor borrows its buffer for the duration of one encode or decode
// operation; none of them grow, copy, or otherwise own memory. Writing
// past capacity or reading past the available bytes is a precondition
// violation and panics, matching the reference implementation's assertion
// behavior for programming errors (spec §7).
package cursor

import (
	"github.com/dmsovetov/libdto/endian"
	"github.com/dmsovetov/libdto/errs"
)

// OutputCursor is a mutable, fixed-capacity byte buffer with a write head.
type OutputCursor struct {
	buf    []byte
	pos    int
	engine endian.Engine
}

// NewOutputCursor wraps buf for writing. The cursor never grows buf; the
// caller is responsible for sizing it.
func NewOutputCursor(buf []byte) *OutputCursor {
	return NewOutputCursorEngine(buf, endian.GetLittleEndianEngine())
}

// NewOutputCursorEngine is like NewOutputCursor but with an explicit byte
// order, for interoperating with a foreign big-endian source.
func NewOutputCursorEngine(buf []byte, engine endian.Engine) *OutputCursor {
	return &OutputCursor{buf: buf, engine: engine}
}

// Bytes returns the full backing buffer.
func (c *OutputCursor) Bytes() []byte { return c.buf }

// Len returns the number of bytes written so far.
func (c *OutputCursor) Len() int { return c.pos }

// Position returns the current write offset, equivalent to Len.
func (c *OutputCursor) Position() int { return c.pos }

// Written returns the slice of bytes written so far.
func (c *OutputCursor) Written() []byte { return c.buf[:c.pos] }

func (c *OutputCursor) require(n int) {
	if c.pos+n > len(c.buf) {
		panic(errs.ErrCapacity)
	}
}

// WriteU8 writes a single byte.
func (c *OutputCursor) WriteU8(v uint8) {
	c.require(1)
	c.buf[c.pos] = v
	c.pos++
}

// WriteI32 writes a 32-bit signed integer.
func (c *OutputCursor) WriteI32(v int32) {
	c.require(4)
	c.engine.PutUint32(c.buf[c.pos:], uint32(v))
	c.pos += 4
}

// WriteU32 writes a 32-bit unsigned integer.
func (c *OutputCursor) WriteU32(v uint32) {
	c.require(4)
	c.engine.PutUint32(c.buf[c.pos:], v)
	c.pos += 4
}

// WriteI64 writes a 64-bit signed integer.
func (c *OutputCursor) WriteI64(v int64) {
	c.require(8)
	c.engine.PutUint64(c.buf[c.pos:], uint64(v))
	c.pos += 8
}

// WriteU64 writes a 64-bit unsigned integer.
func (c *OutputCursor) WriteU64(v uint64) {
	c.require(8)
	c.engine.PutUint64(c.buf[c.pos:], v)
	c.pos += 8
}

// WriteF64 writes a 64-bit IEEE-754 double.
func (c *OutputCursor) WriteF64(v float64) {
	c.WriteU64(float64bits(v))
}

// WriteBytes writes raw bytes with no length prefix.
func (c *OutputCursor) WriteBytes(b []byte) {
	c.require(len(b))
	copy(c.buf[c.pos:], b)
	c.pos += len(b)
}

// WriteSized writes len(b) as an int32 size token followed by the bytes of
// b, so the declared size and the byte run always agree. Panics with
// ErrCapacity if len(b) does not fit in an int32.
func (c *OutputCursor) WriteSized(b []byte) {
	if len(b) > 0x7fffffff {
		panic(errs.ErrCapacity)
	}
	c.WriteI32(int32(len(b))) //nolint:gosec
	c.WriteBytes(b)
}

// WriteStringView emits the view's bytes followed by a single zero
// terminator.
func (c *OutputCursor) WriteStringView(b []byte) {
	c.WriteBytes(b)
	c.WriteU8(0)
}

// PatchU32 overwrites the 4 bytes at offset with v. Used to back-patch a
// placeholder length once a composite subtree's extent is known.
func (c *OutputCursor) PatchU32(offset int, v uint32) {
	if offset < 0 || offset+4 > len(c.buf) {
		panic(errs.ErrCapacity)
	}
	c.engine.PutUint32(c.buf[offset:], v)
}

// Skip reserves n bytes without writing to them, advancing the write head.
// Used to leave a placeholder length to be patched later.
func (c *OutputCursor) Skip(n int) int {
	c.require(n)
	start := c.pos
	c.pos += n
	return start
}
