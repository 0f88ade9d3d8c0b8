/*
Package scanner defines an interface for scanners of grammar sources, together
with an adapter for lexmachine.

Grammar sources are tokenized line by line. The token categories are bare
symbols, quoted terminals, the rule arrow "->", the alternatives bar "|" and
newlines. Comments starting with "//" and blanks are skipped.

    sc, err := scanner.GrammarScanner(`S -> A ";" #`)
    if err != nil {
        // do error handling
    }
    for tok := sc.NextToken(); tok.TokType() != scanner.EOF; tok = sc.NextToken() {
        …
    }

Clients wanting other token sets may use NewLMAdapter directly.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/slrtab"
)

// tracer traces with key 'slrtab.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("slrtab.scanner")
}

// EOF is the token type signalling the end of input.
const EOF slrtab.TokType = -1

// Token types of grammar sources.
const (
	Symbol  slrtab.TokType = iota + 1 // bare symbol name
	Quoted                            // quoted terminal, Value() is unquoted
	Arrow                             // "->"
	Bar                               // "|"
	Newline                           // end of a line
)

// TokenName returns a readable name for a token type of grammar sources.
func TokenName(t slrtab.TokType) string {
	switch t {
	case EOF:
		return "end of input"
	case Symbol:
		return "symbol"
	case Quoted:
		return "quoted terminal"
	case Arrow:
		return `"->"`
	case Bar:
		return `"|"`
	case Newline:
		return "end of line"
	}
	return fmt.Sprintf("token(%d)", t)
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() slrtab.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the lexmachine
// scanner.
type DefaultToken struct {
	kind   slrtab.TokType
	lexeme string
	Val    interface{}
	span   slrtab.Span
	line   int
}

var _ slrtab.Token = DefaultToken{}

// MakeDefaultToken creates a token. Its value is the lexeme.
func MakeDefaultToken(typ slrtab.TokType, lexeme string, line int, span slrtab.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		Val:    lexeme,
		span:   span,
		line:   line,
	}
}

func (t DefaultToken) TokType() slrtab.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

// Span returns the columns of the token within its line.
func (t DefaultToken) Span() slrtab.Span {
	return t.span
}

// Line returns the 1-based line of the token, or 0 for EOF.
func (t DefaultToken) Line() int {
	return t.line
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%s %q @%d:%d>", TokenName(t.kind), t.lexeme, t.line, t.span.From())
}
