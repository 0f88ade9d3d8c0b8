/*
Package slrtab builds SLR-style parser automata from context-free grammars.

Given a grammar of named productions, slrtab computes the states of a
shift-reduce automaton (sets of dotted grammar positions), the transitions
between them and the points where productions are reduced. Package
structure is as follows:

■ grammar: Package grammar holds the in-memory grammar model, a builder for
grammars, symbol classification and the precomputation of direction symbols.

■ automaton: Package automaton constructs the parser states and resolves
their transitions into GOTO and ACTION tables.

■ loader: Package loader reads grammars from a small textual notation.

■ render: Package render prints tables as tab-separated rows, as pretty
terminal tables or as Graphviz graphs.

The base package contains data types which are used by the scanner and the
grammar loader.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slrtab
