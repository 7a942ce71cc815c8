package json

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dmsovetov/libdto/errs"
	"github.com/dmsovetov/libdto/event"
	"github.com/dmsovetov/libdto/internal/pool"
	"github.com/dmsovetov/libdto/token"
	"github.com/dmsovetov/libdto/value"
)

// contKind enumerates the Reader's continuation-stack states. The source
// this is ported from pushes member-function pointers onto a stack; the
// portable rendering recommended by spec §9 is this enum plus a dispatch
// switch in Reader.Next.
type contKind uint8

const (
	contParseStream contKind = iota
	contParseKeyValue
	contContinueKeyValue
	contParseItem
	contContinueSequence
	contExpectObjectEnd
	contExpectArrayEnd
)

type cont struct {
	kind     contKind
	seqIndex int
	isRoot   bool
}

// Reader drives a continuation-stack state machine over the tokenizer,
// turning a JSON document into the same structural event stream the
// binary reader produces.
type Reader struct {
	tok   *token.Tokenizer
	stack []cont
	done  bool

	stackPool *pool.SlicePool[cont]
}

// NewReader wraps input for JSON reading.
func NewReader(input []byte) *Reader {
	r := &Reader{
		tok:       token.New(input),
		stackPool: readerStackPool,
	}
	r.stack = r.stackPool.Get()
	r.push(cont{kind: contParseStream})
	return r
}

var readerStackPool = pool.NewSlicePool[cont](8)

// Consumed returns the number of input bytes the tokenizer has read.
func (r *Reader) Consumed() int {
	return r.tok.Pos()
}

func (r *Reader) push(c cont) {
	r.stack = append(r.stack, c)
}

func (r *Reader) pop() cont {
	n := len(r.stack)
	c := r.stack[n-1]
	r.stack = r.stack[:n-1]
	return c
}

// Next returns the next structural event, or io.EOF once the stream has
// been fully consumed (mirroring codec.Reader's contract).
func (r *Reader) Next() (event.Event, error) {
	if r.done {
		return event.Event{}, io.EOF
	}

	for {
		if len(r.stack) == 0 {
			r.done = true
			r.stackPool.Put(r.stack)
			return event.Event{}, io.EOF
		}

		c := r.pop()

		ev, produced, err := r.dispatch(c)
		if err != nil {
			r.done = true
			r.stackPool.Put(r.stack)
			return errorEvent(err), nil
		}
		if produced {
			if ev.Kind == event.StreamEnd {
				r.done = true
				r.stackPool.Put(r.stack)
			}
			return ev, nil
		}
		// Pure-dispatch frames (continueSequence/continueKeyValue with no
		// comma) produce no event of their own; loop to run the frame
		// beneath them, per spec §4.10's "recurse to let the matching
		// expect*End run".
	}
}

func errorEvent(err error) event.Event {
	return event.Event{Kind: event.Error, Message: err.Error()}
}

// dispatch executes one continuation frame. produced reports whether ev
// is a real event to return from Next, or whether the frame was a
// pass-through that pushed a follow-up frame (or nothing) for the loop in
// Next to continue with.
func (r *Reader) dispatch(c cont) (ev event.Event, produced bool, err error) {
	switch c.kind {
	case contParseStream:
		return r.parseStream()
	case contParseKeyValue:
		return r.parseKeyValue()
	case contContinueKeyValue:
		return r.continueKeyValue()
	case contParseItem:
		return r.parseItem(c.seqIndex)
	case contContinueSequence:
		return r.continueSequence(c.seqIndex)
	case contExpectObjectEnd:
		return r.expectObjectEnd(c.isRoot)
	case contExpectArrayEnd:
		return r.expectArrayEnd(c.isRoot)
	default:
		return event.Event{}, false, fmt.Errorf("%w: unknown continuation", errs.ErrSyntax)
	}
}

func (r *Reader) parseStream() (event.Event, bool, error) {
	tok := r.tok.NextNonSpace()
	switch tok.Kind {
	case token.BraceOpen:
		r.push(cont{kind: contExpectObjectEnd, isRoot: true})
		if r.tok.PeekNonSpace().Kind != token.BraceClose {
			r.push(cont{kind: contParseKeyValue})
		}
		return event.Event{Kind: event.StreamStart}, true, nil
	case token.BracketOpen:
		r.push(cont{kind: contExpectArrayEnd, isRoot: true})
		if r.tok.PeekNonSpace().Kind != token.BracketClose {
			r.push(cont{kind: contParseItem, seqIndex: 0})
		}
		return event.Event{Kind: event.StreamStart}, true, nil
	default:
		return event.Event{}, false, r.syntaxErr(tok, "expected '{' or '[' at start of document")
	}
}

func (r *Reader) parseKeyValue() (event.Event, bool, error) {
	keyTok := r.tok.NextNonSpace()
	if keyTok.Kind != token.DoubleQuotedString {
		return event.Event{}, false, r.syntaxErr(keyTok, "expected a quoted key")
	}
	if _, err := r.tok.Expect(token.Colon); err != nil {
		return event.Event{}, false, err
	}
	// Pushed before parsePrimitive so that a composite value's own frames
	// sit above it and run first.
	r.push(cont{kind: contContinueKeyValue})
	ev, err := r.parsePrimitive(keyTok.Text.String())
	if err != nil {
		return event.Event{}, false, err
	}
	return ev, true, nil
}

func (r *Reader) continueKeyValue() (event.Event, bool, error) {
	tok := r.tok.PeekNonSpace()
	if tok.Kind == token.Comma {
		r.tok.Next()
		r.push(cont{kind: contParseKeyValue})
	}
	return event.Event{}, false, nil
}

func (r *Reader) parseItem(seqIndex int) (event.Event, bool, error) {
	key := strconv.Itoa(seqIndex)
	r.push(cont{kind: contContinueSequence, seqIndex: seqIndex + 1})
	ev, err := r.parsePrimitive(key)
	if err != nil {
		return event.Event{}, false, err
	}
	return ev, true, nil
}

func (r *Reader) continueSequence(seqIndex int) (event.Event, bool, error) {
	tok := r.tok.PeekNonSpace()
	if tok.Kind == token.Comma {
		r.tok.Next()
		r.push(cont{kind: contParseItem, seqIndex: seqIndex})
	}
	return event.Event{}, false, nil
}

func (r *Reader) expectObjectEnd(isRoot bool) (event.Event, bool, error) {
	if _, err := r.tok.Expect(token.BraceClose); err != nil {
		return event.Event{}, false, err
	}
	if isRoot {
		return event.Event{Kind: event.StreamEnd}, true, nil
	}
	return event.Event{Kind: event.KeyValueEnd}, true, nil
}

func (r *Reader) expectArrayEnd(isRoot bool) (event.Event, bool, error) {
	if _, err := r.tok.Expect(token.BracketClose); err != nil {
		return event.Event{}, false, err
	}
	if isRoot {
		return event.Event{Kind: event.StreamEnd}, true, nil
	}
	return event.Event{Kind: event.SequenceEnd}, true, nil
}

// parsePrimitive consumes the next non-space token and returns the Entry
// or *Start event it introduces, pushing follow-up continuations for
// composite values.
func (r *Reader) parsePrimitive(key string) (event.Event, error) {
	tok := r.tok.NextNonSpace()
	switch tok.Kind {
	case token.BraceOpen:
		r.push(cont{kind: contExpectObjectEnd, isRoot: false})
		if r.tok.PeekNonSpace().Kind != token.BraceClose {
			r.push(cont{kind: contParseKeyValue})
		}
		return event.Event{Kind: event.KeyValueStart, Key: key, HasKey: true}, nil
	case token.BracketOpen:
		r.push(cont{kind: contExpectArrayEnd, isRoot: false})
		if r.tok.PeekNonSpace().Kind != token.BracketClose {
			r.push(cont{kind: contParseItem, seqIndex: 0})
		}
		return event.Event{Kind: event.SequenceStart, Key: key, HasKey: true}, nil
	case token.DoubleQuotedString:
		return event.Event{Kind: event.Entry, Key: key, HasKey: true, Value: value.NewStringBytes(tok.Text.Bytes())}, nil
	case token.Number:
		v, perr := strconv.ParseFloat(tok.Text.String(), 64)
		if perr != nil {
			return event.Event{}, r.syntaxErr(tok, "invalid number")
		}
		return event.Event{Kind: event.Entry, Key: key, HasKey: true, Value: value.NewDouble(v)}, nil
	case token.Minus:
		numTok, err := r.tok.Expect(token.Number)
		if err != nil {
			return event.Event{}, err
		}
		v, perr := strconv.ParseFloat(numTok.Text.String(), 64)
		if perr != nil {
			return event.Event{}, r.syntaxErr(numTok, "invalid number")
		}
		return event.Event{Kind: event.Entry, Key: key, HasKey: true, Value: value.NewDouble(-v)}, nil
	case token.True:
		return event.Event{Kind: event.Entry, Key: key, HasKey: true, Value: value.NewBool(true)}, nil
	case token.False:
		return event.Event{Kind: event.Entry, Key: key, HasKey: true, Value: value.NewBool(false)}, nil
	default:
		return event.Event{}, r.syntaxErr(tok, "expected a value")
	}
}

func (r *Reader) syntaxErr(tok token.Token, detail string) error {
	errs.Report(tok.Line, tok.Column, detail)
	return fmt.Errorf("%w: %s", errs.ErrSyntax, detail)
}
