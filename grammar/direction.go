package grammar

// ComputeDirectionSymbols precomputes the direction symbols of every rule
// of g, replacing existing ones.
//
// The direction symbols of a rule are the items which may start it: the
// item for the first RHS symbol and, if that symbol is a non-terminal, the
// direction symbols of each of its rules. Left recursion is cut off by
// visiting every non-terminal only once per rule.
//
//    S ➞ A ;        dir = { A@0.0, a@1.0, b@2.0 }
//    A ➞ a          dir = { a@1.0 }
//    A ➞ b          dir = { b@2.0 }
//
func ComputeDirectionSymbols(g *Grammar) {
	for _, r := range g.rules {
		acc := newSymbolList()
		g.collectStart(r, acc, map[string]bool{})
		r.DirectionSymbols = acc.symbols()
		tracer().Debugf("dir(%d) = %s", r.Serial, symbolsString(r.DirectionSymbols))
	}
}

func (g *Grammar) collectStart(r *Rule, acc *symbolList, visited map[string]bool) {
	if len(r.RHS) == 0 {
		return
	}
	first := r.ItemAt(0)
	acc.add(first)
	if visited[first.Name()] {
		return
	}
	visited[first.Name()] = true
	for _, nr := range g.NonTerminalRules(first.Name()) {
		g.collectStart(nr, acc, visited)
	}
}
