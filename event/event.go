// Package event defines the structural events that glue together readers
// and writers across the binary, JSON, and YAML codecs: a
// convert(reader, writer) loop is parametric over any pair implementing
// Reader and Writer.
package event

import "github.com/dmsovetov/libdto/value"

// Kind discriminates the structural role of an Event.
type Kind uint8

const (
	StreamStart Kind = iota
	StreamEnd
	KeyValueStart
	KeyValueEnd
	SequenceStart
	SequenceEnd
	Entry
	Error
)

// String renders the kind's symbolic name for diagnostics.
func (k Kind) String() string {
	switch k {
	case StreamStart:
		return "StreamStart"
	case StreamEnd:
		return "StreamEnd"
	case KeyValueStart:
		return "KeyValueStart"
	case KeyValueEnd:
		return "KeyValueEnd"
	case SequenceStart:
		return "SequenceStart"
	case SequenceEnd:
		return "SequenceEnd"
	case Entry:
		return "Entry"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

// Event is a single structural notification emitted by a Reader and
// consumed by a Writer. Key is empty (HasKey false) for StreamStart,
// StreamEnd and the *End events. Entries and Start events inside a
// sequence carry their synthesized decimal index ("0", "1", ...) as Key,
// the same way the binary format stores them.
type Event struct {
	Kind    Kind
	Key     string
	HasKey  bool
	Value   value.Value
	Message string // set on Kind == Error
}

// Reader is a pull-style producer of structural events.
type Reader interface {
	// Next returns the next event in document order. Once it returns a
	// StreamEnd or Error event, the reader is exhausted.
	Next() (Event, error)

	// Consumed returns the number of input bytes processed so far.
	Consumed() int
}

// Writer is a structural event consumer.
type Writer interface {
	// Consume handles one event and returns the number of bytes written
	// as a result.
	Consume(Event) (int, error)
}

// WithKey returns a copy of e carrying key as its associated key.
func WithKey(e Event, key string) Event {
	e.Key = key
	e.HasKey = true
	return e
}
