package cursor

import (
	"github.com/dmsovetov/libdto/endian"
	"github.com/dmsovetov/libdto/errs"
	"github.com/dmsovetov/libdto/stringview"
)

// InputCursor is an immutable, fixed-extent byte slice with a read head.
type InputCursor struct {
	buf    []byte
	pos    int
	engine endian.Engine
}

// NewInputCursor wraps buf for reading.
func NewInputCursor(buf []byte) *InputCursor {
	return NewInputCursorEngine(buf, endian.GetLittleEndianEngine())
}

// NewInputCursorEngine is like NewInputCursor but with an explicit byte
// order.
func NewInputCursorEngine(buf []byte, engine endian.Engine) *InputCursor {
	return &InputCursor{buf: buf, engine: engine}
}

// Consumed returns the number of bytes read so far.
func (c *InputCursor) Consumed() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *InputCursor) Remaining() int { return len(c.buf) - c.pos }

// Position returns the current read offset.
func (c *InputCursor) Position() int { return c.pos }

// Len returns the total buffer length.
func (c *InputCursor) Len() int { return len(c.buf) }

// Bytes returns the full backing buffer.
func (c *InputCursor) Bytes() []byte { return c.buf }

func (c *InputCursor) require(n int) {
	if c.pos+n > len(c.buf) {
		panic(errs.ErrUnderflow)
	}
}

// ReadU8 reads a single byte.
func (c *InputCursor) ReadU8() uint8 {
	c.require(1)
	v := c.buf[c.pos]
	c.pos++
	return v
}

// PeekU8 returns the next byte without advancing the read head.
func (c *InputCursor) PeekU8() uint8 {
	c.require(1)
	return c.buf[c.pos]
}

// ReadI32 reads a 32-bit signed integer.
func (c *InputCursor) ReadI32() int32 {
	return int32(c.ReadU32()) //nolint:gosec
}

// ReadU32 reads a 32-bit unsigned integer.
func (c *InputCursor) ReadU32() uint32 {
	c.require(4)
	v := c.engine.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v
}

// ReadI64 reads a 64-bit signed integer.
func (c *InputCursor) ReadI64() int64 {
	return int64(c.ReadU64()) //nolint:gosec
}

// ReadU64 reads a 64-bit unsigned integer.
func (c *InputCursor) ReadU64() uint64 {
	c.require(8)
	v := c.engine.Uint64(c.buf[c.pos:])
	c.pos += 8
	return v
}

// ReadF64 reads a 64-bit IEEE-754 double.
func (c *InputCursor) ReadF64() float64 {
	return float64frombits(c.ReadU64())
}

// ReadBytes reads exactly n raw bytes.
func (c *InputCursor) ReadBytes(n int) []byte {
	c.require(n)
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b
}

// ReadSized reads an int32 size token followed by exactly that many bytes,
// mirroring OutputCursor.WriteSized.
func (c *InputCursor) ReadSized() []byte {
	n := c.ReadI32()
	if n < 0 {
		panic(errs.ErrInvariant)
	}
	return c.ReadBytes(int(n))
}

// ReadStringView reads bytes up to and including a zero terminator,
// returning a view over the content with the terminator excluded.
func (c *InputCursor) ReadStringView() stringview.View {
	start := c.pos
	for {
		c.require(1)
		if c.buf[c.pos] == 0 {
			view := stringview.Of(c.buf[start:c.pos])
			c.pos++
			return view
		}
		c.pos++
	}
}

// Skip advances the read head by n bytes without returning them. Panics
// with ErrUnderflow if fewer than n bytes remain.
func (c *InputCursor) Skip(n int) {
	c.require(n)
	c.pos += n
}

// SeekAbsolute moves the read head to an absolute offset. Used by the
// container iterator, which computes sibling offsets directly rather than
// accumulating relative skips.
func (c *InputCursor) SeekAbsolute(offset int) {
	if offset < 0 || offset > len(c.buf) {
		panic(errs.ErrUnderflow)
	}
	c.pos = offset
}
