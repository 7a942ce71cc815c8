// Package token implements the UTF-8 byte stream tokenizer shared by the
// JSON and YAML readers: a lazy sequence of classified tokens with
// line/column positions, produced one at a time with no backing buffer
// beyond the caller's input.
package token

import "github.com/dmsovetov/libdto/stringview"

// Kind classifies a single token.
type Kind uint8

const (
	End Kind = iota
	NewLine
	Space
	Tab
	Identifier
	DoubleQuotedString
	SingleQuotedString
	Number
	True
	False
	Colon
	Minus
	BraceOpen
	BraceClose
	BracketOpen
	BracketClose
	Comma
	Nonterminal
)

// String renders the kind's symbolic name for diagnostics.
func (k Kind) String() string {
	switch k {
	case End:
		return "End"
	case NewLine:
		return "NewLine"
	case Space:
		return "Space"
	case Tab:
		return "Tab"
	case Identifier:
		return "Identifier"
	case DoubleQuotedString:
		return "DoubleQuotedString"
	case SingleQuotedString:
		return "SingleQuotedString"
	case Number:
		return "Number"
	case True:
		return "True"
	case False:
		return "False"
	case Colon:
		return "Colon"
	case Minus:
		return "Minus"
	case BraceOpen:
		return "BraceOpen"
	case BraceClose:
		return "BraceClose"
	case BracketOpen:
		return "BracketOpen"
	case BracketClose:
		return "BracketClose"
	case Comma:
		return "Comma"
	case Nonterminal:
		return "Nonterminal"
	default:
		return "Unknown"
	}
}

// Token carries one classified lexeme along with its source position.
type Token struct {
	Kind   Kind
	Line   int
	Column int
	Text   stringview.View
}
