/*
Command slrtab builds SLR automata from grammar files and prints their tables.

    slrtab table expr.grammar                  # TSV rows, one per state
    slrtab table --format pretty expr.grammar
    slrtab table --format dot -o expr.dot expr.grammar
    slrtab states expr.grammar                 # item sets and transitions
    slrtab repl                                # enter rules interactively

Flags may be set in a configuration file slrtab.yaml (current directory or
$HOME/.config/slrtab) or by environment variables prefixed with SLRTAB_,
e.g. SLRTAB_TRACE=Debug.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
