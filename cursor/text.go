package cursor

import "strconv"

// TextCursor extends OutputCursor with the formatted emission primitives
// the JSON and YAML writers need: booleans, base-10 integers, shortest
// round-trip doubles, a one-shot quoted-string latch, and a rewind
// operation used to erase a trailing comma before a closing bracket.
type TextCursor struct {
	*OutputCursor
	quoteNext bool
}

// NewTextCursor wraps buf for formatted text writing.
func NewTextCursor(buf []byte) *TextCursor {
	return &TextCursor{OutputCursor: NewOutputCursor(buf)}
}

// WriteRaw writes bytes verbatim — punctuation, indentation, literal
// keywords.
func (c *TextCursor) WriteRaw(s string) {
	c.WriteBytes([]byte(s))
}

// WriteBool writes the literal "true" or "false".
func (c *TextCursor) WriteBool(b bool) {
	if b {
		c.WriteRaw("true")
	} else {
		c.WriteRaw("false")
	}
}

// WriteIntDecimal writes v in base-10.
func (c *TextCursor) WriteIntDecimal(v int64) {
	c.WriteRaw(strconv.FormatInt(v, 10))
}

// WriteUintDecimal writes v in base-10.
func (c *TextCursor) WriteUintDecimal(v uint64) {
	c.WriteRaw(strconv.FormatUint(v, 10))
}

// WriteDouble writes v using the shortest decimal representation that
// round-trips exactly, the "%g"-shortest form called for by spec §4.2.
func (c *TextCursor) WriteDouble(v float64) {
	c.WriteRaw(strconv.FormatFloat(v, 'g', -1, 64))
}

// QuoteNextString latches quoted-string mode for exactly the next call to
// WriteQuoted.
func (c *TextCursor) QuoteNextString() {
	c.quoteNext = true
}

// WriteQuoted writes s as a double-quoted string if QuoteNextString was
// called since the last emission, or bare otherwise. The latch is cleared
// either way.
func (c *TextCursor) WriteQuoted(s string) {
	if c.quoteNext {
		c.WriteU8('"')
		c.WriteRaw(s)
		c.WriteU8('"')
		c.quoteNext = false
		return
	}
	c.WriteRaw(s)
}

// Rewind erases the last n bytes written, moving the write head backward.
// Used to delete a trailing comma before emitting a closing bracket.
func (c *TextCursor) Rewind(n int) {
	if n < 0 || n > c.pos {
		n = c.pos
	}
	c.pos -= n
}

// LastByte returns the most recently written byte, or 0 if nothing has
// been written yet.
func (c *TextCursor) LastByte() byte {
	if c.pos == 0 {
		return 0
	}
	return c.buf[c.pos-1]
}

// TrimTrailingComma removes a trailing "," if present, the pattern every
// composite-closing event in the JSON writer uses.
func (c *TextCursor) TrimTrailingComma() {
	if c.LastByte() == ',' {
		c.Rewind(1)
	}
}

// WriteTerminator emits a single zero byte, marking the end of a text
// document the way the binary format ends a composite with 0x00.
func (c *TextCursor) WriteTerminator() {
	c.WriteU8(0)
}
