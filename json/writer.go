// Package json implements JSON reader and writer event codecs riding on
// top of the tokenizer and text cursor: a compact or indented Writer
// consuming the structural event stream, and a Reader driving a
// continuation-stack state machine over the tokenizer.
package json

import (
	"github.com/dmsovetov/libdto/cursor"
	"github.com/dmsovetov/libdto/errs"
	"github.com/dmsovetov/libdto/event"
	"github.com/dmsovetov/libdto/format"
	"github.com/dmsovetov/libdto/internal/options"
)

// WriterOption configures a Writer.
type WriterOption = options.Option[*Writer]

// WithIndent switches the writer into styled mode, repeating indent once
// per nesting depth before every event and a newline after it. Passing an
// empty string keeps the writer compact (the default).
func WithIndent(indent string) WriterOption {
	return options.NoError(func(w *Writer) {
		w.indent = indent
		w.styled = indent != ""
	})
}

// Writer is an event consumer producing JSON text: compact by default, or
// indented when constructed WithIndent.
type Writer struct {
	out    *cursor.TextCursor
	stack  []format.Tag
	indent string
	styled bool
}

// NewWriter wraps buf for JSON writing.
func NewWriter(buf []byte, opts ...WriterOption) (*Writer, error) {
	w := &Writer{out: cursor.NewTextCursor(buf)}
	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}
	return w, nil
}

// Bytes returns the text written so far.
func (w *Writer) Bytes() []byte { return w.out.Written() }

func (w *Writer) inObjectContext() bool {
	if len(w.stack) == 0 {
		return false
	}
	return w.stack[len(w.stack)-1] == format.TagKeyValue
}

func (w *Writer) writeIndent(depth int) {
	if !w.styled {
		return
	}
	for i := 0; i < depth; i++ {
		w.out.WriteRaw(w.indent)
	}
}

func (w *Writer) writeNewline() {
	if w.styled {
		w.out.WriteRaw("\n")
	}
}

func (w *Writer) writeKeyPrefix(key string) {
	if !w.inObjectContext() {
		return
	}
	w.out.WriteU8('"')
	w.out.WriteRaw(key)
	w.out.WriteU8('"')
	w.out.WriteRaw(":")
	if w.styled {
		w.out.WriteRaw(" ")
	}
}

// Consume handles one event, returning the number of bytes written.
func (w *Writer) Consume(ev event.Event) (int, error) {
	before := w.out.Len()

	switch ev.Kind {
	case event.StreamStart:
		w.writeIndent(len(w.stack))
		w.out.WriteRaw("{")
		w.writeNewline()
		w.stack = append(w.stack, format.TagKeyValue)

	case event.StreamEnd:
		if len(w.stack) == 0 {
			return 0, errs.ErrUnbalanced
		}
		w.out.TrimTrailingComma()
		w.writeIndent(len(w.stack) - 1)
		w.out.WriteRaw("}")
		w.stack = w.stack[:len(w.stack)-1]
		w.out.WriteTerminator()

	case event.KeyValueStart:
		if len(w.stack) == 0 {
			return 0, errs.ErrUnbalanced
		}
		w.writeIndent(len(w.stack))
		w.writeKeyPrefix(ev.Key)
		w.out.WriteRaw("{")
		w.writeNewline()
		w.stack = append(w.stack, format.TagKeyValue)

	case event.KeyValueEnd:
		if len(w.stack) == 0 {
			return 0, errs.ErrUnbalanced
		}
		w.out.TrimTrailingComma()
		w.writeIndent(len(w.stack) - 1)
		w.out.WriteRaw("},")
		w.writeNewline()
		w.stack = w.stack[:len(w.stack)-1]

	case event.SequenceStart:
		if len(w.stack) == 0 {
			return 0, errs.ErrUnbalanced
		}
		w.writeIndent(len(w.stack))
		w.writeKeyPrefix(ev.Key)
		w.out.WriteRaw("[")
		w.writeNewline()
		w.stack = append(w.stack, format.TagSequence)

	case event.SequenceEnd:
		if len(w.stack) == 0 {
			return 0, errs.ErrUnbalanced
		}
		w.out.TrimTrailingComma()
		w.writeIndent(len(w.stack) - 1)
		w.out.WriteRaw("],")
		w.writeNewline()
		w.stack = w.stack[:len(w.stack)-1]

	case event.Entry:
		if len(w.stack) == 0 {
			return 0, errs.ErrUnbalanced
		}
		w.writeIndent(len(w.stack))
		w.writeKeyPrefix(ev.Key)
		w.writeValue(ev)
		w.out.WriteRaw(",")
		w.writeNewline()

	case event.Error:
		return 0, &textWriterError{message: ev.Message}
	}

	return w.out.Len() - before, nil
}

func (w *Writer) writeValue(ev event.Event) {
	switch ev.Value.Tag {
	case format.TagBool:
		w.out.WriteBool(ev.Value.Bool)
	case format.TagDouble:
		w.out.WriteDouble(ev.Value.Double)
	case format.TagInt32:
		w.out.WriteIntDecimal(int64(ev.Value.Int32))
	case format.TagInt64:
		w.out.WriteIntDecimal(ev.Value.Int64)
	case format.TagTimestamp:
		w.out.WriteUintDecimal(ev.Value.Uint64)
	case format.TagDate:
		w.out.WriteIntDecimal(ev.Value.Date)
	case format.TagString:
		w.out.QuoteNextString()
		w.out.WriteQuoted(ev.Value.String.String())
	case format.TagNull:
		w.out.WriteRaw("null")
	case format.TagUUID:
		w.out.QuoteNextString()
		w.out.WriteQuoted(uuidString(ev.Value.UUID))
	case format.TagBinary:
		w.out.WriteRaw("<binary>")
	default:
		w.out.WriteRaw("<binary>")
	}
}

func uuidString(b [16]byte) string {
	const hex = "0123456789abcdef"
	out := make([]byte, 0, 36)
	appendByte := func(v byte) {
		out = append(out, hex[v>>4], hex[v&0xf])
	}
	for i, bb := range b {
		if i == 4 || i == 6 || i == 8 || i == 10 {
			out = append(out, '-')
		}
		appendByte(bb)
	}
	return string(out)
}

type textWriterError struct{ message string }

func (e *textWriterError) Error() string { return e.message }
