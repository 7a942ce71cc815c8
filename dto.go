// Package dto implements a polyglot data-object codec: a compact binary
// container plus reversible text bridges (JSON, an indented JSON-like text
// form, and YAML). A single in-memory binary form is canonical; text
// formats are reader/writer pairs that convert to and from it.
//
// # Design
//
// Every encode or decode operates against a caller-supplied byte buffer of
// known capacity — this module never allocates on behalf of the codec's
// hot path. Readers are pull-style producers of structural events
// (package event); writers are consumers of the same event stream. Convert
// composes any reader/writer pair in O(N) time and O(depth) auxiliary
// state.
//
// # Basic usage
//
// Encoding a binary document and converting it to compact JSON:
//
//	enc := codec.NewEncoder(make([]byte, 256))
//	enc.Key("a").Int32(1)
//	enc.Key("b").Bool(true)
//	doc, _ := enc.Finish()
//
//	w, _ := json.NewWriter(make([]byte, 256))
//	_ = dto.Convert(codec.NewReader(doc), w)
//	fmt.Println(string(w.Bytes()))
//
// See the codec, json, yaml, and container packages for the individual
// reader/writer implementations.
package dto

import "github.com/dmsovetov/libdto/event"

// Convert drives reader to completion, forwarding every event to writer.
// It stops at the first error returned by either side, or at an Error
// event emitted by the reader, which is itself forwarded to writer before
// Convert returns a non-nil error.
func Convert(r event.Reader, w event.Writer) error {
	for {
		ev, err := r.Next()
		if err != nil {
			return err
		}

		if _, err := w.Consume(ev); err != nil {
			return err
		}

		switch ev.Kind {
		case event.Error:
			return errorFromEvent(ev)
		case event.StreamEnd:
			return nil
		}
	}
}

func errorFromEvent(ev event.Event) error {
	return &ConversionError{Message: ev.Message}
}

// ConversionError wraps a textual parse failure surfaced as an Error
// event during conversion.
type ConversionError struct {
	Message string
}

func (e *ConversionError) Error() string {
	return e.Message
}
