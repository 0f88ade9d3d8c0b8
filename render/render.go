/*
Package render prints the tables of an SLR automaton.

WriteTSV produces the tab-separated row format consumed by downstream
tools, one line per state:

    index  symbol  directionSymbols  shift  error  pointer  stack  end
    1      S       A | a | b | S     +      -      2        +      +
    2      A       ";"               +      -      5        -      -

Pretty renders the same rows as a terminal table, WriteDot exports the
automaton for Graphviz and WriteHTML prints the GOTO and ACTION tables.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/slrtab/automaton"
)

// tracer traces with key 'slrtab.render'.
func tracer() tracing.Trace {
	return tracing.Select("slrtab.render")
}

// Header is the first line of the TSV format.
var Header = []string{"index", "symbol", "directionSymbols", "shift", "error", "pointer", "stack", "end"}

// DefaultLiteral is the symbol which is quoted on output.
const DefaultLiteral = ";"

// Option configures the renderers.
type Option func(*options)

type options struct {
	literal string
}

// QuoteLiteral sets the symbol which is quoted on output, as it would
// otherwise be mistaken for a separator by consumers of the table.
// An empty marker disables quoting.
func QuoteLiteral(marker string) Option {
	return func(o *options) {
		o.literal = marker
	}
}

func makeOptions(opts []Option) options {
	o := options{literal: DefaultLiteral}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) quote(sym string) string {
	if o.literal != "" && sym == o.literal {
		return `"` + sym + `"`
	}
	return sym
}

// Cells converts a row into the cells of the TSV format.
func Cells(row automaton.Row, opts ...Option) []string {
	return makeOptions(opts).cells(row)
}

func (o options) cells(row automaton.Row) []string {
	labels := make([]string, len(row.DirectionSymbols))
	for i, l := range row.DirectionSymbols {
		labels[i] = o.quote(l)
	}
	pointer := "NULL"
	if row.Pointer > 0 {
		pointer = strconv.Itoa(row.Pointer)
	}
	return []string{
		strconv.Itoa(row.Number),
		o.quote(row.Symbol),
		strings.Join(labels, " | "),
		flag(row.Shift),
		flag(row.Error),
		pointer,
		flag(row.Stack),
		flag(row.End),
	}
}

func flag(b bool) string {
	if b {
		return "+"
	}
	return "-"
}

// WriteTSV writes the rows of T in tab-separated format, headed by Header.
func WriteTSV(w io.Writer, T *automaton.Table, opts ...Option) error {
	o := makeOptions(opts)
	var b strings.Builder
	b.WriteString(strings.Join(Header, "\t"))
	b.WriteString("\n")
	for _, row := range T.Rows() {
		b.WriteString(strings.Join(o.cells(row), "\t"))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("cannot write table: %v", err)
	}
	return err
}
