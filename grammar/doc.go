/*
Package grammar implements the grammar model for building SLR automata.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals.

Example:

    b := grammar.NewBuilder("G")
    b.LHS("S").N("A").T(";").EOF()  // S  ➞  A ; #
    b.LHS("A").T("a").End()         // A  ➞  a
    b.LHS("A").T("b").End()         // A  ➞  b
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: S ➞ A ; #
   1: A ➞ a
   2: A ➞ b

Rule order matters: the serial of a rule is its identity throughout the
construction of the automaton, and rule 0 is the start production.

Symbols

A symbol name is a non-terminal if and only if it is the left-hand side of
a rule. Every other name is a terminal. Occurrences of symbols within the
right parts of rules are addressed by positions (rule, offset); a symbol
together with a position is a dotted item.

Every rule carries a set of direction symbols, the items which may start
it. They are precomputed with ComputeDirectionSymbols (Builder.Grammar does
this automatically) and seed the transitions of the automaton whenever a
non-terminal is entered.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slrtab.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("slrtab.grammar")
}
