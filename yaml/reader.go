package yaml

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/dmsovetov/libdto/errs"
	"github.com/dmsovetov/libdto/event"
	"github.com/dmsovetov/libdto/format"
	"github.com/dmsovetov/libdto/token"
	"github.com/dmsovetov/libdto/value"
)

// rawLine is one non-blank physical line, already split from its
// terminator, with its leading-whitespace column count and its content
// starting at the first non-whitespace byte.
type rawLine struct {
	line    int
	indent  int
	content []byte
}

// lineScanner splits input into non-blank lines, with one line of
// lookahead — the line-level analogue of token.Tokenizer's Peek/Next,
// needed because YAML's block structure is decided by comparing a line's
// indentation against frames already on the stack before deciding what
// to do with it.
type lineScanner struct {
	input  []byte
	pos    int
	lineNo int

	hasPeek bool
	peek    rawLine
	peekOK  bool
}

func newLineScanner(input []byte) *lineScanner {
	return &lineScanner{input: input, lineNo: 1}
}

func (s *lineScanner) peekLine() (rawLine, bool) {
	if !s.hasPeek {
		s.peek, s.peekOK = s.scanNextLine()
		s.hasPeek = true
	}
	return s.peek, s.peekOK
}

func (s *lineScanner) nextLine() (rawLine, bool) {
	ln, ok := s.peekLine()
	s.hasPeek = false
	return ln, ok
}

func (s *lineScanner) scanNextLine() (rawLine, bool) {
	for {
		if s.pos >= len(s.input) {
			return rawLine{}, false
		}

		start := s.pos
		end := start
		for end < len(s.input) && s.input[end] != '\n' {
			end++
		}
		bs := s.input[start:end]
		if n := len(bs); n > 0 && bs[n-1] == '\r' {
			bs = bs[:n-1]
		}

		if end < len(s.input) {
			s.pos = end + 1
		} else {
			s.pos = end
		}
		lineNo := s.lineNo
		s.lineNo++

		indent := 0
		for indent < len(bs) && (bs[indent] == ' ' || bs[indent] == '\t') {
			indent++
		}
		content := bs[indent:]
		if len(content) == 0 {
			continue
		}
		return rawLine{line: lineNo, indent: indent, content: content}, true
	}
}

// frame tracks one open composite: the indentation column its entries
// live at, its kind, and (for sequences) the next synthesized index.
type frame struct {
	indent    int
	tag       format.Tag
	itemIndex int
}

// Reader drives an indentation-aware state machine over lines of YAML
// block style, the rules spec'd in the absence of a working reference
// implementation: a composite opens when a line's indentation exceeds
// its parent's, its kind decided by whether that line starts a sequence
// item or a key, and composites close on an indentation decrease or EOF.
//
// The root document is always treated as KeyValue-shaped, mirroring the
// binary format's fixed KeyValue root and the JSON reader's root
// handling — a top-level sequence item line is a syntax error.
type Reader struct {
	lines   *lineScanner
	frames  []frame
	pending []event.Event
	started bool
	done    bool
}

// NewReader wraps input for YAML reading.
func NewReader(input []byte) *Reader {
	return &Reader{lines: newLineScanner(input)}
}

// Consumed returns the number of input bytes scanned so far.
func (r *Reader) Consumed() int { return r.lines.pos }

// Next returns the next structural event, or io.EOF once the stream has
// been fully consumed.
func (r *Reader) Next() (event.Event, error) {
	if r.done {
		return event.Event{}, io.EOF
	}
	if len(r.pending) == 0 {
		r.step()
	}
	if len(r.pending) == 0 {
		r.done = true
		return event.Event{}, io.EOF
	}

	ev := r.pending[0]
	r.pending = r.pending[1:]
	if ev.Kind == event.StreamEnd || ev.Kind == event.Error {
		r.done = true
	}
	return ev, nil
}

func (r *Reader) enqueue(ev event.Event) {
	r.pending = append(r.pending, ev)
}

func (r *Reader) fail(ln rawLine, detail string) {
	errs.Report(ln.line, ln.indent+1, detail)
	r.enqueue(event.Event{Kind: event.Error, Message: fmt.Errorf("%w: %s", errs.ErrSyntax, detail).Error()})
}

func closeEventFor(tag format.Tag) event.Event {
	if tag == format.TagSequence {
		return event.Event{Kind: event.SequenceEnd}
	}
	return event.Event{Kind: event.KeyValueEnd}
}

// step runs one round of the state machine, enqueueing one or more
// events (e.g. several End events followed by the line they make room
// for, or an inline composite's Start/End pair).
func (r *Reader) step() {
	if !r.started {
		r.started = true
		r.frames = append(r.frames, frame{indent: -1, tag: format.TagKeyValue})
		r.enqueue(event.Event{Kind: event.StreamStart})
		return
	}

	for {
		ln, ok := r.lines.peekLine()
		top := &r.frames[len(r.frames)-1]
		if !ok {
			for len(r.frames) > 1 {
				popped := r.frames[len(r.frames)-1]
				r.frames = r.frames[:len(r.frames)-1]
				r.enqueue(closeEventFor(popped.tag))
			}
			r.frames = r.frames[:0]
			r.enqueue(event.Event{Kind: event.StreamEnd})
			return
		}
		if ln.indent < top.indent {
			r.frames = r.frames[:len(r.frames)-1]
			r.enqueue(closeEventFor(top.tag))
			continue
		}
		break
	}

	ln, _ := r.lines.nextLine()
	top := &r.frames[len(r.frames)-1]

	if top.tag == format.TagSequence {
		r.parseSequenceItem(ln, top)
	} else {
		r.parseKeyLine(ln)
	}
}

func (r *Reader) parseSequenceItem(ln rawLine, top *frame) {
	t := token.New(ln.content)
	if _, ok := t.Consume(token.Minus); !ok {
		r.fail(ln, "expected '-' introducing a sequence item")
		return
	}
	rest := bytes.TrimSpace(ln.content[t.Pos():])

	key := strconv.Itoa(top.itemIndex)
	top.itemIndex++
	r.emitValueOrComposite(ln, key, rest)
}

func (r *Reader) parseKeyLine(ln rawLine) {
	t := token.New(ln.content)
	keyTok := t.NextNonSpace()
	if keyTok.Kind != token.Identifier {
		r.fail(ln, "expected a key")
		return
	}
	if colonTok := t.NextNonSpace(); colonTok.Kind != token.Colon {
		r.fail(ln, "expected ':' after key")
		return
	}
	rest := bytes.TrimSpace(ln.content[t.Pos():])
	r.emitValueOrComposite(ln, keyTok.Text.String(), rest)
}

// emitValueOrComposite handles everything that can follow a key or a
// sequence dash on the same line: an inline empty composite, a scalar,
// or — when rest is empty — a composite body whose kind and indentation
// are decided by peeking at the next line.
func (r *Reader) emitValueOrComposite(ln rawLine, key string, rest []byte) {
	switch {
	case len(rest) == 0:
		nextLn, ok := r.lines.peekLine()
		if ok && nextLn.indent > ln.indent {
			tag := format.TagKeyValue
			if nextLn.content[0] == '-' {
				tag = format.TagSequence
			}
			r.frames = append(r.frames, frame{indent: nextLn.indent, tag: tag})
			kind := event.KeyValueStart
			if tag == format.TagSequence {
				kind = event.SequenceStart
			}
			r.enqueue(event.Event{Kind: kind, Key: key, HasKey: true})
			return
		}
		r.enqueue(event.Event{Kind: event.KeyValueStart, Key: key, HasKey: true})
		r.enqueue(event.Event{Kind: event.KeyValueEnd})

	case bytes.Equal(rest, []byte("{}")):
		r.enqueue(event.Event{Kind: event.KeyValueStart, Key: key, HasKey: true})
		r.enqueue(event.Event{Kind: event.KeyValueEnd})

	case bytes.Equal(rest, []byte("[]")):
		r.enqueue(event.Event{Kind: event.SequenceStart, Key: key, HasKey: true})
		r.enqueue(event.Event{Kind: event.SequenceEnd})

	default:
		v := parseScalar(rest)
		r.enqueue(event.Event{Kind: event.Entry, Key: key, HasKey: true, Value: v})
	}
}

// parseScalar classifies rest per spec §4.12: a bool or double literal
// that consumes the whole run, otherwise the bytes stand as a string
// verbatim (unquoted YAML scalars may contain internal spaces that no
// single token can represent).
func parseScalar(rest []byte) value.Value {
	t := token.New(rest)
	tok := t.NextNonSpace()

	switch tok.Kind {
	case token.True:
		if exhausted(t) {
			return value.NewBool(true)
		}
	case token.False:
		if exhausted(t) {
			return value.NewBool(false)
		}
	case token.Number:
		if exhausted(t) {
			if f, err := strconv.ParseFloat(tok.Text.String(), 64); err == nil {
				return value.NewDouble(f)
			}
		}
	case token.Minus:
		num := t.NextNonSpace()
		if num.Kind == token.Number && exhausted(t) {
			if f, err := strconv.ParseFloat(num.Text.String(), 64); err == nil {
				return value.NewDouble(-f)
			}
		}
	}

	return value.NewStringBytes(rest)
}

func exhausted(t *token.Tokenizer) bool {
	return t.NextNonSpace().Kind == token.End
}
