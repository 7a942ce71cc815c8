// Package errs collects the sentinel errors this module returns or panics
// with. Callers should compare against these with errors.Is rather than
// matching error strings.
package errs

import (
	"errors"
	"strconv"
)

var (
	// ErrCapacity is the panic value when an output cursor cannot hold the
	// bytes a caller is asking it to write.
	ErrCapacity = errors.New("dto: buffer capacity exceeded")

	// ErrUnderflow is the panic value when an input cursor is asked to
	// read more bytes than remain.
	ErrUnderflow = errors.New("dto: buffer underflow")

	// ErrInvariant marks malformed binary input: an unknown tag, a
	// truncated subtree, or a length prefix that does not fit the buffer.
	ErrInvariant = errors.New("dto: malformed binary document")

	// ErrType is the panic value of a typed accessor used against a value
	// of a different tag than the one requested.
	ErrType = errors.New("dto: value has a different type")

	// ErrIncomplete is returned when Encoder.Finish is called while a
	// nested composite is still open or after the encoder was already
	// finished, or when an incomplete sub-encoder is appended to another
	// encoder.
	ErrIncomplete = errors.New("dto: encoder is not complete")

	// ErrNoKey is the panic value when a value is emitted in object
	// context without a preceding key, or a key is given in sequence
	// context.
	ErrNoKey = errors.New("dto: no pending key")

	// ErrUnbalanced is returned by a writer when it observes a stream of
	// events whose Start/End events do not nest correctly.
	ErrUnbalanced = errors.New("dto: unbalanced event stream")

	// ErrSyntax marks a textual parse failure: an unexpected or missing
	// token. Reported through the process error handler, if any, and
	// surfaced to the caller as an Error event.
	ErrSyntax = errors.New("dto: syntax error")

	// ErrUnsupportedCompression is returned by blob.CodecFor (and so by
	// blob.Compress and blob.Decompress) for a Binary subtype that names
	// no built-in compression scheme.
	ErrUnsupportedCompression = errors.New("dto: unsupported compression scheme")

	// ErrCompression is returned by a blob.Codec implementation when the
	// underlying library rejects data during a compress or decompress
	// call, as opposed to ErrUnsupportedCompression's scheme-selection
	// failure.
	ErrCompression = errors.New("dto: compression operation failed")
)

// Handler is a process-wide error reporting hook. It is the only piece of
// process-wide state in this module (spec §6, "Error handler").
type Handler func(message string)

var handler Handler

// SetHandler installs the process-wide error handler. Passing nil disables
// reporting. Not safe to call concurrently with Report; callers are
// expected to set it once during initialization, as mebo's option
// configuration is applied once per encoder before use.
func SetHandler(h Handler) {
	handler = h
}

// Report formats and forwards a message to the installed handler, if any.
// Readers call this for recoverable syntax errors; it is a no-op when no
// handler is installed.
func Report(line, col int, detail string) {
	if handler == nil {
		return
	}
	handler(formatMessage(line, col, detail))
}

func formatMessage(line, col int, detail string) string {
	return "error: " + strconv.Itoa(line) + ":" + strconv.Itoa(col) + " : " + detail
}
