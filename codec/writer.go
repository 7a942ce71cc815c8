package codec

import (
	"github.com/dmsovetov/libdto/cursor"
	"github.com/dmsovetov/libdto/errs"
	"github.com/dmsovetov/libdto/event"
	"github.com/dmsovetov/libdto/format"
)

// Writer is an event consumer that produces the canonical binary form.
// It mirrors Reader: StreamStart/KeyValueStart/SequenceStart push a
// length placeholder, the matching End event patches it.
type Writer struct {
	out   *cursor.OutputCursor
	stack []int
}

// NewWriter wraps buf for writing. Unlike Encoder, Writer has no implicit
// root frame — it is opened by the first StreamStart event it consumes,
// matching the symmetry with Reader.Next's own StreamStart production.
func NewWriter(buf []byte) *Writer {
	return &Writer{out: cursor.NewOutputCursor(buf)}
}

// Bytes returns the bytes written so far.
func (w *Writer) Bytes() []byte { return w.out.Written() }

// Consume handles one event, returning the number of bytes written.
func (w *Writer) Consume(ev event.Event) (int, error) {
	before := w.out.Len()

	switch ev.Kind {
	case event.StreamStart:
		if len(w.stack) != 0 {
			return 0, errs.ErrUnbalanced
		}
		w.pushFrame()
	case event.KeyValueStart:
		if err := w.openComposite(format.TagKeyValue, ev); err != nil {
			return 0, err
		}
	case event.SequenceStart:
		if err := w.openComposite(format.TagSequence, ev); err != nil {
			return 0, err
		}
	case event.KeyValueEnd, event.SequenceEnd:
		if len(w.stack) < 2 {
			return 0, errs.ErrUnbalanced
		}
		w.closeFrame()
	case event.StreamEnd:
		if len(w.stack) != 1 {
			return 0, errs.ErrUnbalanced
		}
		w.closeFrame()
	case event.Entry:
		if len(w.stack) == 0 {
			return 0, errs.ErrUnbalanced
		}
		w.out.WriteU8(uint8(ev.Value.Tag))
		w.out.WriteStringView([]byte(ev.Key))
		EncodeValue(w.out, ev.Value)
	case event.Error:
		return 0, &writerReportedError{message: ev.Message}
	}

	return w.out.Len() - before, nil
}

func (w *Writer) pushFrame() {
	start := w.out.Skip(lengthPrefixSize)
	w.stack = append(w.stack, start)
}

func (w *Writer) openComposite(tag format.Tag, ev event.Event) error {
	if len(w.stack) == 0 {
		return errs.ErrUnbalanced
	}
	w.out.WriteU8(uint8(tag))
	w.out.WriteStringView([]byte(ev.Key))
	w.pushFrame()
	return nil
}

func (w *Writer) closeFrame() {
	w.out.WriteU8(uint8(format.TagEnd))
	n := len(w.stack)
	start := w.stack[n-1]
	w.stack = w.stack[:n-1]
	length := w.out.Len() - start
	w.out.PatchU32(start, uint32(length)) //nolint:gosec
}

type writerReportedError struct{ message string }

func (e *writerReportedError) Error() string { return e.message }
