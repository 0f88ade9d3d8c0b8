package grammar

import "github.com/emirpasic/gods/sets/linkedhashset"

// --- Symbol classification -------------------------------------------------

// IsNonTerminal is true iff name is the left-hand side of some rule.
// Names not matching any LHS are terminals, whether or not they are
// declared.
func (g *Grammar) IsNonTerminal(name string) bool {
	_, ok := g.lhs[name]
	return ok
}

// IsTerminal is the opposite of IsNonTerminal.
func (g *Grammar) IsTerminal(name string) bool {
	return !g.IsNonTerminal(name)
}

// IsDeclared is true if name has been declared a non-terminal by notation.
func (g *Grammar) IsDeclared(name string) bool {
	_, ok := g.declared[name]
	return ok
}

// NonTerminalRules returns all rules with LHS name, in grammar order. For
// names without productions the result is empty.
func (g *Grammar) NonTerminalRules(name string) []*Rule {
	return g.lhs[name]
}

// DirectionSymbolsAfter returns the symbols which may follow any use of
// the non-terminal name. For an occurrence of name at (r,k) this is the
// item at (r,k+1) together with the direction symbols of its rules, if it is
// a non-terminal itself. If name is the last symbol of rule r, the symbols
// after r's LHS are included. Duplicates are removed, the order of first
// discovery is kept.
func (g *Grammar) DirectionSymbolsAfter(name string) []Symbol {
	acc := newSymbolList()
	g.collectAfter(name, acc, map[string]bool{})
	return acc.symbols()
}

func (g *Grammar) collectAfter(name string, acc *symbolList, visited map[string]bool) {
	if visited[name] {
		return
	}
	visited[name] = true
	for _, r := range g.rules {
		for k, sym := range r.RHS {
			if sym != name {
				continue
			}
			if k < r.Last() {
				next := r.ItemAt(k + 1)
				acc.add(next)
				for _, nr := range g.NonTerminalRules(next.Name()) {
					acc.add(nr.DirectionSymbols...)
				}
			} else {
				g.collectAfter(r.LHS, acc, visited)
			}
		}
	}
}

// symbolList collects distinct symbols in order of first insertion.
type symbolList struct {
	set *linkedhashset.Set
}

func newSymbolList() *symbolList {
	return &symbolList{set: linkedhashset.New()}
}

func (l *symbolList) add(syms ...Symbol) {
	for _, sym := range syms {
		l.set.Add(sym)
	}
}

func (l *symbolList) symbols() []Symbol {
	if l.set.Empty() {
		return nil
	}
	values := l.set.Values()
	syms := make([]Symbol, len(values))
	for i, v := range values {
		syms[i] = v.(Symbol)
	}
	return syms
}
