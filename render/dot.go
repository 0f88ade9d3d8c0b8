package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/slrtab/automaton"
	"github.com/npillmayer/slrtab/grammar"
)

// WriteDot exports the automaton to the Graphviz Dot format. Nodes show the
// item set of a state, edges are labelled with the shifted symbol. Reduce
// markers are listed within the node.
func WriteDot(w io.Writer, T *automaton.Table) error {
	var b strings.Builder
	b.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range T.States() {
		fmt.Fprintf(&b, "s%03d [fillcolor=%s label=\"{%03d | %s%s}\"]\n",
			s.Number(), nodecolor(s), s.Number(), forGraphviz(itemsString(s.Items())), reduces(s))
	}
	for _, s := range T.States() {
		for _, label := range s.Labels() {
			if target, ok := s.Successor(label); ok {
				fmt.Fprintf(&b, "s%03d -> s%03d [label=\"%s\"]\n",
					s.Number(), target+1, forGraphviz(label))
			}
		}
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func nodecolor(s *automaton.State) string {
	for _, label := range s.Labels() {
		for _, a := range s.Actions(label) {
			if a.Kind == automaton.Accept {
				return "lightgray"
			}
		}
	}
	return "white"
}

func reduces(s *automaton.State) string {
	var b strings.Builder
	for _, label := range s.Labels() {
		for _, a := range s.Actions(label) {
			if a.Kind == automaton.Reduce {
				fmt.Fprintf(&b, " | %s: %s", forGraphviz(label), grammar.Reduce{Rule: a.Rule}.Name())
			}
		}
	}
	return b.String()
}

func itemsString(items []grammar.Symbol) string {
	names := make([]string, len(items))
	for i, sym := range items {
		names[i] = sym.String()
	}
	return strings.Join(names, " ")
}

var graphvizEscapes = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
)

// forGraphviz escapes characters with a meaning in record labels.
func forGraphviz(s string) string {
	return graphvizEscapes.Replace(s)
}
