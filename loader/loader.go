/*
Package loader reads grammars from a line-based text notation.

Every line holds a group of rules for one left-hand side:

    // statements
    S    -> List #
    List -> List ";" Stmt | Stmt
    Stmt -> id ":=" Expr
         | print Expr

Alternatives are separated by "|"; a line starting with "|" continues the
group of the line before. Symbols may be written bare or in double quotes.
Quoting keeps a symbol intact but does not make it a terminal: every
symbol with productions is a non-terminal, quoted or not. "#" denotes the
end of input. Bare names starting with an upper-case letter are declared
non-terminals by notation: automaton.Strict will reject them if they lack
productions. The first rule
is the start production.

The arrow and bars have to be separated from bare symbols by blanks.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/slrtab"
	"github.com/npillmayer/slrtab/grammar"
	"github.com/npillmayer/slrtab/scanner"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'slrtab.loader'.
func tracer() tracing.Trace {
	return tracing.Select("slrtab.loader")
}

// ErrSyntax is wrapped by every SyntaxError.
var ErrSyntax = errors.New("syntax error")

// SyntaxError reports a malformed grammar source.
type SyntaxError struct {
	Source string // name of the grammar source
	Line   int    // 1-based line
	Column int    // 1-based column, 0 if unknown
	Msg    string
}

func (e *SyntaxError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.Source, e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Msg)
}

// Unwrap makes SyntaxError match ErrSyntax.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// Load reads a grammar from a file. The grammar is named after the file,
// without extension.
func Load(path string) (*grammar.Grammar, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load grammar: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(name, string(src))
}

// Parse reads a grammar from src. The result carries direction symbols and
// has passed lenient validation.
func Parse(name, src string) (*grammar.Grammar, error) {
	sc, err := scanner.GrammarScanner(src)
	if err != nil {
		return nil, err
	}
	p := &parser{name: name, sc: sc, declared: make(map[string]bool)}
	sc.SetErrorHandler(p.scanError)
	if err := p.parse(); err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	if len(p.rules) == 0 {
		return nil, fmt.Errorf("%s: %w", name, grammar.ErrEmptyGrammar)
	}
	g := grammar.New(name, p.rules...)
	for _, n := range p.order {
		g.Declare(n)
	}
	grammar.ComputeDirectionSymbols(g)
	if err := g.Validate(false); err != nil {
		return nil, err
	}
	tracer().Infof("loaded grammar %s with %d rules", name, g.Size())
	g.Dump()
	return g, nil
}

// --- Parser ----------------------------------------------------------------

type parser struct {
	name     string
	sc       scanner.Tokenizer
	tok      slrtab.Token
	lhs      string // LHS of the current rule group
	rules    []*grammar.Rule
	declared map[string]bool
	order    []string // declared names in order of appearance
	line     int      // last line seen
	err      error    // first scanner error
}

func (p *parser) scanError(e error) {
	if p.err != nil {
		return
	}
	if ui, ok := e.(*machines.UnconsumedInput); ok {
		p.err = &SyntaxError{
			Source: p.name,
			Line:   ui.StartLine,
			Column: ui.StartColumn,
			Msg:    "unrecognized input (unterminated quote?)",
		}
		return
	}
	p.err = fmt.Errorf("%s: %w: %v", p.name, ErrSyntax, e)
}

func (p *parser) next() slrtab.TokType {
	p.tok = p.sc.NextToken()
	if p.tok.Line() > 0 {
		p.line = p.tok.Line()
	}
	return p.tok.TokType()
}

func (p *parser) errorf(format string, args ...interface{}) error {
	if p.err != nil {
		return p.err
	}
	return &SyntaxError{
		Source: p.name,
		Line:   p.line,
		Column: int(p.tok.Span().From()),
		Msg:    fmt.Sprintf(format, args...),
	}
}

func (p *parser) parse() error {
	for {
		t := p.next()
		if p.err != nil {
			return p.err
		}
		switch t {
		case scanner.EOF:
			return nil
		case scanner.Newline:
			continue
		case scanner.Symbol:
			p.lhs = p.tok.Lexeme()
			if p.next() != scanner.Arrow {
				return p.errorf("expected %s after %s, found %s",
					scanner.TokenName(scanner.Arrow), p.lhs, scanner.TokenName(p.tok.TokType()))
			}
		case scanner.Bar:
			if p.lhs == "" {
				return p.errorf("alternative without a rule to continue")
			}
		default:
			return p.errorf("expected a left-hand side, found %s", scanner.TokenName(t))
		}
		if err := p.alternatives(); err != nil {
			return err
		}
		if p.tok.TokType() == scanner.EOF {
			return nil
		}
	}
}

// alternatives reads right-hand sides up to the end of the line.
func (p *parser) alternatives() error {
	var rhs []string
	for {
		t := p.next()
		switch t {
		case scanner.Symbol:
			rhs = append(rhs, p.symbol(p.tok.Lexeme()))
			continue
		case scanner.Quoted:
			name, _ := p.tok.Value().(string)
			if name == "" {
				return p.errorf("empty quoted symbol")
			}
			rhs = append(rhs, name)
			continue
		case scanner.Arrow:
			return p.errorf("unexpected %s; one rule group per line", scanner.TokenName(t))
		}
		// bar, newline or end of input complete an alternative
		if len(rhs) == 0 {
			return p.errorf("empty right-hand side for %s", p.lhs)
		}
		p.rules = append(p.rules, grammar.NewRule(p.lhs, rhs...))
		rhs = nil
		if t != scanner.Bar {
			return p.err
		}
	}
}

// symbol records names which are non-terminals by notation.
func (p *parser) symbol(name string) string {
	if r, _ := utf8.DecodeRuneInString(name); unicode.IsUpper(r) && !p.declared[name] {
		p.declared[name] = true
		p.order = append(p.order, name)
	}
	return name
}
