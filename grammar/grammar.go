package grammar

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Rule is a production LHS ➞ RHS. DirectionSymbols holds the symbols which
// may start this rule; it is usually precomputed with
// ComputeDirectionSymbols.
type Rule struct {
	Serial           int      // 0-based index within the grammar
	LHS              string   // name of the non-terminal
	RHS              []string // ordered right part, never empty in a valid grammar
	DirectionSymbols []Symbol // precomputed direction symbols
}

// NewRule creates a rule without direction symbols. The serial is set when
// the rule is added to a grammar.
func NewRule(lhs string, rhs ...string) *Rule {
	return &Rule{LHS: lhs, RHS: rhs}
}

// Last returns the offset of the last RHS symbol, or -1 for an empty RHS.
func (r *Rule) Last() int {
	return len(r.RHS) - 1
}

// ItemAt returns the dotted item for the RHS symbol at offset.
func (r *Rule) ItemAt(offset int) Item {
	return NewItem(r.RHS[offset], Position{Rule: r.Serial, Offset: offset})
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s ➞ %s", r.LHS, strings.Join(r.RHS, " "))
}

// Grammar is an ordered sequence of rules. Rule order is significant: the
// serial of a rule is its identity, and rule 0 is the start production.
//
// Grammars are created by a Builder, by the loader package, or from a slice
// of rules with New. They are treated as immutable afterwards.
type Grammar struct {
	Name     string
	rules    []*Rule
	lhs      map[string][]*Rule  // rules by LHS
	declared map[string]struct{} // names declared as non-terminals by notation
}

// New creates a grammar from rules, in order. Rule serials are set to their
// position. Direction symbols are left as they are.
func New(name string, rules ...*Rule) *Grammar {
	g := &Grammar{
		Name:     name,
		lhs:      make(map[string][]*Rule),
		declared: make(map[string]struct{}),
	}
	for _, r := range rules {
		g.add(r)
	}
	return g
}

func (g *Grammar) add(r *Rule) {
	r.Serial = len(g.rules)
	g.rules = append(g.rules, r)
	g.lhs[r.LHS] = append(g.lhs[r.LHS], r)
}

// Declare marks names as non-terminals by notation. Declared names without
// productions are reported by strict validation.
func (g *Grammar) Declare(names ...string) {
	for _, n := range names {
		g.declared[n] = struct{}{}
	}
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns rule no. i (0-based), or nil.
func (g *Grammar) Rule(i int) *Rule {
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// Rules returns all rules in grammar order.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// Start returns the start production, or nil for an empty grammar.
func (g *Grammar) Start() *Rule {
	return g.Rule(0)
}

// Symbols returns the set of all symbol names occuring in the grammar,
// left-hand sides included, sorted by name.
func (g *Grammar) Symbols() *treeset.Set {
	S := treeset.NewWith(utils.StringComparator)
	for _, r := range g.rules {
		S.Add(r.LHS)
		for _, name := range r.RHS {
			S.Add(name)
		}
	}
	return S
}

// EachSymbol iterates over all symbols in name order.
func (g *Grammar) EachSymbol(f func(name string)) {
	for _, x := range g.Symbols().Values() {
		f(x.(string))
	}
}

// Dump is a debugging helper, tracing the rules of a grammar.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s ----------------------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
		if len(r.DirectionSymbols) > 0 {
			tracer().Debugf("     dir = %s", symbolsString(r.DirectionSymbols))
		}
	}
	tracer().Debugf("-------------------------------------------------")
}

func symbolsString(syms []Symbol) string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, sym := range syms {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(sym.String())
	}
	b.WriteString(" }")
	return b.String()
}
