/*
Package automaton constructs the states of an SLR-style shift-reduce
automaton from a grammar.

Parser Construction

A grammar (see package grammar) with precomputed direction symbols is
subjected to Build, which returns a Table:

    b := grammar.NewBuilder("G")
    b.LHS("S").N("A").T(";").EOF()  // S  ➞  A ; #
    b.LHS("A").T("a").End()         // A  ➞  a
    b.LHS("A").T("b").End()         // A  ➞  b
    g, _ := b.Grammar()
    T, err := automaton.Build(g)

Every state of the table is a set of dotted items. States are created
breadth-first: the start state holds the start symbol and the direction
symbols of the start production. For each state in turn, the items
reachable by advancing past a symbol form the item set of a successor
state, which is appended unless a state with an equal item set exists.
The list of states grows until the processing index catches up with its
length.

Completed rules do not lead to successor states. Instead the state
records a reduce marker (R1, R2, …, numbered 1-based by rule) under every
symbol which may follow the rule's left-hand side. The start state
carries the accept label OK under the start symbol.

After construction, transitions are resolved into a GOTO table and an
ACTION table. Shift entries are represented as -1, accept as -2; reduce
entries hold the 1-based number of the rule to reduce.

Build does not compute LR(1) lookaheads and does not resolve conflicts:
colliding actions are stored side by side.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package automaton

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slrtab.automaton'.
func tracer() tracing.Trace {
	return tracing.Select("slrtab.automaton")
}
