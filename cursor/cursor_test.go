package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmsovetov/libdto/errs"
)

func TestOutputCursor_WriteAndWritten(t *testing.T) {
	buf := make([]byte, 16)
	c := NewOutputCursor(buf)
	c.WriteU8(0x2a)
	c.WriteI32(-1)
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, byte(0x2a), c.Written()[0])
}

func TestOutputCursor_CapacityPanics(t *testing.T) {
	c := NewOutputCursor(make([]byte, 1))
	assert.PanicsWithValue(t, errs.ErrCapacity, func() {
		c.WriteI32(1)
	})
}

func TestOutputCursor_SkipAndPatch(t *testing.T) {
	buf := make([]byte, 8)
	c := NewOutputCursor(buf)
	start := c.Skip(4)
	c.WriteU8(1)
	c.PatchU32(start, uint32(c.Len()-start))

	in := NewInputCursor(c.Written())
	assert.Equal(t, uint32(5), in.ReadU32())
	assert.Equal(t, uint8(1), in.ReadU8())
}

func TestOutputCursor_WriteStringView(t *testing.T) {
	buf := make([]byte, 16)
	c := NewOutputCursor(buf)
	c.WriteStringView([]byte("key"))

	in := NewInputCursor(c.Written())
	assert.Equal(t, "key", in.ReadStringView().String())
}

func TestInputCursor_ReadUnderflowPanics(t *testing.T) {
	in := NewInputCursor([]byte{1, 2})
	assert.PanicsWithValue(t, errs.ErrUnderflow, func() {
		in.ReadU32()
	})
}

func TestInputCursor_RoundTripIntegers(t *testing.T) {
	buf := make([]byte, 32)
	out := NewOutputCursor(buf)
	out.WriteI32(-7)
	out.WriteU32(42)
	out.WriteI64(-123456789)
	out.WriteU64(987654321)
	out.WriteF64(3.14159)

	in := NewInputCursor(out.Written())
	assert.Equal(t, int32(-7), in.ReadI32())
	assert.Equal(t, uint32(42), in.ReadU32())
	assert.Equal(t, int64(-123456789), in.ReadI64())
	assert.Equal(t, uint64(987654321), in.ReadU64())
	assert.InDelta(t, 3.14159, in.ReadF64(), 1e-12)
}

func TestInputCursor_SeekAbsoluteAndSkip(t *testing.T) {
	in := NewInputCursor([]byte{1, 2, 3, 4, 5})
	in.Skip(2)
	assert.Equal(t, 2, in.Position())
	in.SeekAbsolute(4)
	assert.Equal(t, uint8(5), in.ReadU8())

	assert.PanicsWithValue(t, errs.ErrUnderflow, func() {
		in.SeekAbsolute(100)
	})
}

func TestInputCursor_ReadSized(t *testing.T) {
	out := NewOutputCursor(make([]byte, 16))
	out.WriteSized([]byte("abc"))

	in := NewInputCursor(out.Written())
	assert.Equal(t, []byte("abc"), in.ReadSized())
}

func TestTextCursor_WriteBoolIntDouble(t *testing.T) {
	c := NewTextCursor(make([]byte, 64))
	c.WriteBool(true)
	c.WriteRaw(" ")
	c.WriteIntDecimal(-42)
	c.WriteRaw(" ")
	c.WriteUintDecimal(42)
	c.WriteRaw(" ")
	c.WriteDouble(1.5)

	assert.Equal(t, "true -42 42 1.5", string(c.Written()))
}

func TestTextCursor_QuoteNextStringLatchesOnce(t *testing.T) {
	c := NewTextCursor(make([]byte, 32))
	c.QuoteNextString()
	c.WriteQuoted("a")
	c.WriteRaw(",")
	c.WriteQuoted("b")

	assert.Equal(t, `"a",b`, string(c.Written()))
}

func TestTextCursor_TrimTrailingComma(t *testing.T) {
	c := NewTextCursor(make([]byte, 16))
	c.WriteRaw("a,")
	c.TrimTrailingComma()
	assert.Equal(t, "a", string(c.Written()))

	c.TrimTrailingComma() // no trailing comma, no-op
	assert.Equal(t, "a", string(c.Written()))
}

func TestTextCursor_WriteTerminator(t *testing.T) {
	c := NewTextCursor(make([]byte, 4))
	c.WriteRaw("x")
	c.WriteTerminator()
	require.Len(t, c.Written(), 2)
	assert.Equal(t, byte(0), c.Written()[1])
}
