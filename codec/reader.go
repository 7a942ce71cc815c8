package codec

import (
	"io"

	"github.com/dmsovetov/libdto/cursor"
	"github.com/dmsovetov/libdto/errs"
	"github.com/dmsovetov/libdto/event"
	"github.com/dmsovetov/libdto/format"
)

// readerFrame tracks one open composite the Reader has descended into:
// its tag (to pick the matching *End event kind) and the absolute offset
// one past its terminating End byte, used to detect truncated input.
type readerFrame struct {
	tag       format.Tag
	endOffset int
}

// Reader is a pull-style event producer over a binary container document.
// Calling Next repeatedly yields exactly one StreamStart, a balanced
// sequence of Start/End and Entry events in document order, and one
// StreamEnd.
type Reader struct {
	in     *cursor.InputCursor
	stack  []readerFrame
	done   bool
}

// NewReader wraps a binary document for reading. data must begin with the
// document's length prefix (spec §3).
func NewReader(data []byte) *Reader {
	return &Reader{in: cursor.NewInputCursor(data)}
}

// Consumed returns the number of input bytes processed so far.
func (r *Reader) Consumed() int { return r.in.Consumed() }

// Next returns the next structural event, or io.EOF once the stream has
// been fully consumed.
func (r *Reader) Next() (event.Event, error) {
	if r.done {
		return event.Event{}, io.EOF
	}

	if len(r.stack) == 0 {
		return r.openRoot(), nil
	}

	tag := format.Tag(r.in.ReadU8())
	if tag == format.TagEnd {
		return r.closeComposite(), nil
	}

	key := r.in.ReadStringView()

	if tag.IsComposite() {
		return r.openComposite(tag, key.String()), nil
	}

	val := DecodeValue(tag, r.in)
	return event.Event{Kind: event.Entry, Key: key.String(), HasKey: true, Value: val}, nil
}

func (r *Reader) openRoot() event.Event {
	start := r.in.Position()
	length := r.in.ReadI32()
	if length < lengthPrefixSize {
		panic(errs.ErrInvariant)
	}
	r.stack = append(r.stack, readerFrame{tag: format.TagKeyValue, endOffset: start + int(length)})
	return event.Event{Kind: event.StreamStart}
}

func (r *Reader) openComposite(tag format.Tag, key string) event.Event {
	start := r.in.Position()
	length := r.in.ReadI32()
	if length < lengthPrefixSize {
		panic(errs.ErrInvariant)
	}
	r.stack = append(r.stack, readerFrame{tag: tag, endOffset: start + int(length)})

	kind := event.KeyValueStart
	if tag == format.TagSequence {
		kind = event.SequenceStart
	}
	return event.Event{Kind: kind, Key: key, HasKey: true}
}

func (r *Reader) closeComposite() event.Event {
	n := len(r.stack)
	popped := r.stack[n-1]
	r.stack = r.stack[:n-1]

	if r.in.Position() != popped.endOffset {
		panic(errs.ErrInvariant)
	}

	if len(r.stack) == 0 {
		r.done = true
		return event.Event{Kind: event.StreamEnd}
	}

	kind := event.KeyValueEnd
	if popped.tag == format.TagSequence {
		kind = event.SequenceEnd
	}
	return event.Event{Kind: kind}
}
