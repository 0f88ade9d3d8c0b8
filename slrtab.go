package slrtab

import "fmt"

// --- Tokens of grammar sources ---------------------------------------------

// TokType is a category type for a Token. Scanners define their own constants.
type TokType int

// Token represents an input token of a grammar source, as produced by a
// scanner.
//
// An example would be a token for a quoted terminal:
//
//    TokType = Quoted      // identifier for this kind of tokens
//    Lexeme  = "\";\""     // lexeme how it appeared in the input
//    Value   = ";"         // the unquoted terminal name
//    Span    = 12…15       // occured from column 12 in the current line
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
	Line() int
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input positions. A span
// denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
