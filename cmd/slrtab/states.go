package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/slrtab/automaton"
	"github.com/npillmayer/slrtab/grammar"
	"github.com/npillmayer/slrtab/loader"
	"github.com/spf13/cobra"
)

var statesCmd = &cobra.Command{
	Use:   "states <grammar>",
	Short: "List the item sets and transitions of all states",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loader.Load(args[0])
		if err != nil {
			return err
		}
		T, err := buildTable(g)
		if err != nil {
			return err
		}
		writeRules(cmd.OutOrStdout(), g)
		return writeStates(cmd.OutOrStdout(), T)
	},
}

func init() {
	rootCmd.AddCommand(statesCmd)
}

func writeRules(w io.Writer, g *grammar.Grammar) {
	for _, r := range g.Rules() {
		fmt.Fprintf(w, "%3d: %s\n", r.Serial, r)
	}
	fmt.Fprintln(w)
}

// writeStates prints every state with its items, followed by one line per
// transition label:
//
//    state 2 {A@0.0}
//        ;        ;@0.1              <shift 5>
func writeStates(w io.Writer, T *automaton.Table) error {
	var b strings.Builder
	for _, s := range T.States() {
		fmt.Fprintf(&b, "state %d %s\n", s.Number(), symbols(s.Items()))
		for _, label := range s.Labels() {
			actions := make([]string, len(s.Actions(label)))
			for i, a := range s.Actions(label) {
				actions[i] = a.String()
			}
			fmt.Fprintf(&b, "    %-8s %-18s %s\n", label, symbols(s.Targets(label)), strings.Join(actions, " "))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func symbols(syms []grammar.Symbol) string {
	names := make([]string, len(syms))
	for i, sym := range syms {
		names[i] = sym.String()
	}
	return "{" + strings.Join(names, " ") + "}"
}
