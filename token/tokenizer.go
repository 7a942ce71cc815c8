package token

import (
	"fmt"

	"github.com/dmsovetov/libdto/errs"
	"github.com/dmsovetov/libdto/stringview"
)

// Tokenizer classifies a text byte buffer into a lazy sequence of Tokens.
// It never buffers more than the current lookahead token and never copies
// the input; every Token.Text view borrows directly into it.
type Tokenizer struct {
	input []byte
	pos   int
	line  int
	col   int

	hasPeek   bool
	peek      Token
	peekStart int
}

// New constructs a Tokenizer over input.
func New(input []byte) *Tokenizer {
	return &Tokenizer{input: input, line: 1, col: 1}
}

// Pos returns the tokenizer's current byte offset into input, counting a
// cached lookahead token (if any) as not yet consumed.
func (t *Tokenizer) Pos() int {
	if t.hasPeek {
		return t.peekStart
	}
	return t.pos
}

// Next consumes and returns the next token.
func (t *Tokenizer) Next() Token {
	if t.hasPeek {
		tok := t.peek
		t.hasPeek = false
		return tok
	}
	return t.scan()
}

// Peek returns the next token without consuming it.
func (t *Tokenizer) Peek() Token {
	if !t.hasPeek {
		t.peekStart = t.pos
		t.peek = t.scan()
		t.hasPeek = true
	}
	return t.peek
}

// Check reports whether the next token has the given kind, without
// consuming it.
func (t *Tokenizer) Check(k Kind) bool {
	return t.Peek().Kind == k
}

// Consume advances past the next token and reports true if it had the
// given kind; otherwise it leaves the tokenizer positioned at that token
// and returns false.
func (t *Tokenizer) Consume(k Kind) (Token, bool) {
	tok := t.Peek()
	if tok.Kind != k {
		return Token{}, false
	}
	t.hasPeek = false
	return tok, true
}

// Expect consumes the next token, requiring it to have the given kind. It
// reports a syntax error through errs.Report and returns a non-nil error
// on mismatch.
func (t *Tokenizer) Expect(k Kind) (Token, error) {
	tok := t.Next()
	if tok.Kind != k {
		detail := fmt.Sprintf("expected %s, got %s", k, tok.Kind)
		errs.Report(tok.Line, tok.Column, detail)
		return tok, fmt.Errorf("%w: %s", errs.ErrSyntax, detail)
	}
	return tok, nil
}

// NextNonSpace consumes and discards NewLine, Space, and Tab tokens,
// returning the first token that is none of those.
func (t *Tokenizer) NextNonSpace() Token {
	for {
		tok := t.Next()
		switch tok.Kind {
		case NewLine, Space, Tab:
			continue
		default:
			return tok
		}
	}
}

// PeekNonSpace returns the first non-whitespace token without consuming
// any tokens other than the whitespace run leading to it.
func (t *Tokenizer) PeekNonSpace() Token {
	for {
		tok := t.Peek()
		switch tok.Kind {
		case NewLine, Space, Tab:
			t.hasPeek = false
			continue
		default:
			return tok
		}
	}
}

func (t *Tokenizer) scan() Token {
	if t.pos >= len(t.input) {
		return Token{Kind: End, Line: t.line, Column: t.col}
	}

	line, col := t.line, t.col
	b := t.input[t.pos]

	switch b {
	case ' ':
		t.advance(1)
		return Token{Kind: Space, Line: line, Column: col, Text: stringview.Of(t.input[t.pos-1 : t.pos])}
	case '\t':
		t.advance(1)
		return Token{Kind: Tab, Line: line, Column: col, Text: stringview.Of(t.input[t.pos-1 : t.pos])}
	case '\n':
		t.advanceNewLine(1)
		return Token{Kind: NewLine, Line: line, Column: col}
	case '\r':
		n := 1
		if t.pos+1 < len(t.input) && t.input[t.pos+1] == '\n' {
			n = 2
		}
		t.advanceNewLine(n)
		return Token{Kind: NewLine, Line: line, Column: col}
	case '{':
		t.advance(1)
		return Token{Kind: BraceOpen, Line: line, Column: col}
	case '}':
		t.advance(1)
		return Token{Kind: BraceClose, Line: line, Column: col}
	case '[':
		t.advance(1)
		return Token{Kind: BracketOpen, Line: line, Column: col}
	case ']':
		t.advance(1)
		return Token{Kind: BracketClose, Line: line, Column: col}
	case ':':
		t.advance(1)
		return Token{Kind: Colon, Line: line, Column: col}
	case ',':
		t.advance(1)
		return Token{Kind: Comma, Line: line, Column: col}
	case '-':
		t.advance(1)
		return Token{Kind: Minus, Line: line, Column: col}
	case '"':
		return t.scanQuoted(line, col, '"', DoubleQuotedString)
	case '\'':
		return t.scanQuoted(line, col, '\'', SingleQuotedString)
	}

	if isDigit(b) {
		return t.scanNumber(line, col)
	}
	if isAlpha(b) {
		return t.scanIdentifier(line, col)
	}

	t.advance(1)
	return Token{Kind: Nonterminal, Line: line, Column: col, Text: stringview.Of(t.input[t.pos-1 : t.pos])}
}

func (t *Tokenizer) scanQuoted(line, col int, quote byte, kind Kind) Token {
	start := t.pos + 1
	t.advance(1)
	for t.pos < len(t.input) && t.input[t.pos] != quote {
		t.advance(1)
	}
	text := stringview.Of(t.input[start:t.pos])
	if t.pos < len(t.input) {
		t.advance(1) // closing quote
	}
	return Token{Kind: kind, Line: line, Column: col, Text: text}
}

func (t *Tokenizer) scanNumber(line, col int) Token {
	start := t.pos
	for t.pos < len(t.input) && isDigit(t.input[t.pos]) {
		t.advance(1)
	}
	if t.pos < len(t.input) && t.input[t.pos] == '.' {
		// Only consume the dot if at least one digit follows, so "1." at
		// end of input still yields a Number token for "1" and leaves the
		// dot as its own Nonterminal for the caller to reject.
		if t.pos+1 < len(t.input) && isDigit(t.input[t.pos+1]) {
			t.advance(1)
			for t.pos < len(t.input) && isDigit(t.input[t.pos]) {
				t.advance(1)
			}
		}
	}
	return Token{Kind: Number, Line: line, Column: col, Text: stringview.Of(t.input[start:t.pos])}
}

func (t *Tokenizer) scanIdentifier(line, col int) Token {
	start := t.pos
	t.advance(1)
	for t.pos < len(t.input) && (isAlnum(t.input[t.pos]) || t.input[t.pos] == '_') {
		t.advance(1)
	}
	text := t.input[start:t.pos]
	switch string(text) {
	case "true":
		return Token{Kind: True, Line: line, Column: col, Text: stringview.Of(text)}
	case "false":
		return Token{Kind: False, Line: line, Column: col, Text: stringview.Of(text)}
	default:
		return Token{Kind: Identifier, Line: line, Column: col, Text: stringview.Of(text)}
	}
}

func (t *Tokenizer) advance(n int) {
	t.pos += n
	t.col += n
}

func (t *Tokenizer) advanceNewLine(n int) {
	t.pos += n
	t.line++
	t.col = 1
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isAlnum(b byte) bool { return isAlpha(b) || isDigit(b) }
