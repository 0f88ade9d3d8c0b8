package scanner

import (
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/slrtab"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives an init function
// to add patterns, a list of literals ("->", "|", …) and a map for
// translating literals to their token types. Literals are added after
// the patterns of init.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, tokenIds map[string]slrtab.TokType) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	if init != nil {
		init(adapter.Lexer)
	}
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(tokenIds[lit]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface.
//
// Unconsumed input is reported to the error handler and skipped. Other
// errors are reported and end the input.
func (lms *LMScanner) NextToken() slrtab.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		ui, is := err.(*machines.UnconsumedInput)
		if !is {
			return MakeDefaultToken(EOF, "", 0, slrtab.Span{})
		}
		lms.scanner.TC = ui.FailTC
		if ui.FailTC <= ui.StartTC { // skip at least one byte
			lms.scanner.TC = ui.StartTC + 1
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return MakeDefaultToken(EOF, "", 0, slrtab.Span{})
	}
	token := tok.(*lexmachine.Token)
	t := MakeDefaultToken(
		slrtab.TokType(token.Type),
		string(token.Lexeme),
		token.StartLine,
		slrtab.Span{uint64(token.StartColumn), uint64(token.EndColumn + 1)},
	)
	t.Val = token.Value
	tracer().Debugf("token %v", t)
	return t
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
// The value of the token is its lexeme.
func MakeToken(id slrtab.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(id), string(m.Bytes), m), nil
	}
}

// makeQuoted is an action for quoted terminals. The value of the token is
// the terminal without quotes.
func makeQuoted(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	name, err := strconv.Unquote(string(m.Bytes))
	if err != nil { // no escapes inside quotes
		name = strings.Trim(string(m.Bytes), `"`)
	}
	return s.Token(int(Quoted), name, m), nil
}

// --- Grammar sources -------------------------------------------------------

var grammarLexer struct {
	once    sync.Once
	adapter *LMAdapter
	err     error
}

// GrammarLexer returns the adapter for grammar sources. The DFA is compiled
// once and shared; scanners created from it are independent.
//
// On matches of equal length the pattern added first wins, therefore the
// arrow is recognized before the symbol pattern. A bare symbol extends up to
// the next blank, bar or quote, so arrows have to be separated by blanks.
func GrammarLexer() (*LMAdapter, error) {
	grammarLexer.once.Do(func() {
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`//[^\n]*`), Skip)
			lexer.Add([]byte(`( |\t|\r)+`), Skip)
			lexer.Add([]byte(`\n`), MakeToken(Newline))
			lexer.Add([]byte(`\->`), MakeToken(Arrow))
			lexer.Add([]byte(`\|`), MakeToken(Bar))
			lexer.Add([]byte(`"[^"\n]*"`), makeQuoted)
			lexer.Add([]byte(`[^ \t\r\n\|"]+`), MakeToken(Symbol))
		}
		grammarLexer.adapter, grammarLexer.err = NewLMAdapter(init, nil, nil)
	})
	return grammarLexer.adapter, grammarLexer.err
}

// GrammarScanner creates a scanner for a grammar source.
func GrammarScanner(input string) (*LMScanner, error) {
	lm, err := GrammarLexer()
	if err != nil {
		return nil, err
	}
	return lm.Scanner(input)
}
