package automaton

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/slrtab/grammar"
	"github.com/npillmayer/slrtab/sparse"
)

// ErrStateLimit is returned if construction exceeds the maximum number of
// states.
var ErrStateLimit = errors.New("state limit exceeded")

// Table is the complete automaton for a grammar: all grammar symbols plus
// all states with their transitions. State order is order of creation.
//
// A Table is read-only after Build returned and may be shared between
// goroutines.
type Table struct {
	G       *grammar.Grammar
	symbols *treeset.Set                // all grammar symbols
	columns map[string]int              // symbol -> column in GOTO/ACTION
	states  []*State                    // append-only
	index   map[string]int              // item set key -> state ID
	after   map[string][]grammar.Symbol // cache for DirectionSymbolsAfter
	limit   int                         // maximum number of states
	gotoT   *sparse.IntMatrix
	actionT *sparse.IntMatrix
}

// Build constructs the automaton for grammar g. Rule 0 of g is the start
// production. g has to carry direction symbols for its rules (see
// grammar.ComputeDirectionSymbols).
//
// Build validates g first and returns an error wrapping
// grammar.ErrInvalidGrammar for defective grammars.
func Build(g *grammar.Grammar, opts ...Option) (*Table, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := g.Validate(cfg.strict); err != nil {
		return nil, err
	}
	tracer().Debugf("=== build automaton for %s ==========================", g.Name)
	T := newTable(g, cfg)
	T.addState(T.startState())
	for i := 0; i < len(T.states); i++ { // states grow while we iterate
		if err := T.discover(T.states[i]); err != nil {
			tracer().Errorf("%v", err)
			return nil, err
		}
	}
	T.resolve()
	tracer().Infof("automaton for %s has %d states", g.Name, len(T.states))
	return T, nil
}

func newTable(g *grammar.Grammar, cfg config) *Table {
	T := &Table{
		G:       g,
		symbols: g.Symbols(),
		columns: make(map[string]int),
		index:   make(map[string]int),
		after:   make(map[string][]grammar.Symbol),
		limit:   stateLimit(g, cfg.maxStates),
	}
	for i, x := range T.symbols.Values() {
		T.columns[x.(string)] = i
	}
	return T
}

// stateLimit returns min(2^P + 1, max), P being the number of RHS positions.
// Every state but the start state is a distinct subset of positions.
func stateLimit(g *grammar.Grammar, max int) int {
	P := 0
	for _, r := range g.Rules() {
		P += len(r.RHS)
	}
	if P < 30 && 1<<P+1 < max {
		return 1<<P + 1
	}
	return max
}

// startState creates the state for the start symbol, seeded with the
// direction symbols of the start production and the accept label.
func (T *Table) startState() *State {
	start := T.G.Start()
	s := newState()
	s.items = []grammar.Symbol{grammar.Label(start.LHS)}
	s.key = itemSetKey(start.LHS, nil)
	s.next.addEach(start.DirectionSymbols...)
	s.next.add(start.LHS, grammar.Label(grammar.AcceptLabel))
	return s
}

func (T *Table) addState(s *State) {
	s.ID = len(T.states)
	T.states = append(T.states, s)
	T.index[s.key] = s.ID
	s.Dump()
}

// discover creates the successor states of s which are not yet present.
func (T *Table) discover(s *State) error {
	for _, label := range s.Labels() {
		items := positioned(s.Targets(label))
		if len(items) == 0 { // reduce markers or accept only
			continue
		}
		key := itemSetKey("", items)
		if _, exists := T.index[key]; exists {
			continue
		}
		if len(T.states) >= T.limit {
			return fmt.Errorf("%w: grammar %s needs more than %d states", ErrStateLimit, T.G.Name, T.limit)
		}
		snew := T.expand(items)
		snew.key = key
		T.addState(snew)
		tracer().Debugf("%v --%s--> %v", s, label, snew)
	}
	return nil
}

// expand creates a state from a set of items and computes its transitions.
func (T *Table) expand(items []grammar.Item) *State {
	s := newState()
	for _, item := range items {
		s.items = append(s.items, item)
		r := T.G.Rule(item.Pos.Rule)
		if item.Pos.Offset == r.Last() { // end of rule
			T.addReduce(s, r.LHS, r.Serial)
			continue
		}
		T.defineNext(s, r.ItemAt(item.Pos.Offset+1))
	}
	return s
}

// defineNext adds the transitions for the symbol just after the dot.
func (T *Table) defineNext(s *State, item grammar.Item) {
	name := item.Name()
	switch {
	case T.G.IsNonTerminal(name):
		s.next.add(name, item)
		for _, r := range T.G.NonTerminalRules(name) {
			s.next.addEach(r.DirectionSymbols...)
		}
	case name == grammar.EndOfInput:
		s.next.add(name, grammar.Reduce{Rule: item.Pos.Rule})
	default:
		s.next.add(name, item)
	}
}

// addReduce registers a reduce marker for rule under every symbol which may
// follow lhs.
func (T *Table) addReduce(s *State, lhs string, rule int) {
	for _, sym := range T.directionSymbolsAfter(lhs) {
		s.next.add(sym.Name(), grammar.Reduce{Rule: rule})
	}
}

func (T *Table) directionSymbolsAfter(lhs string) []grammar.Symbol {
	syms, ok := T.after[lhs]
	if !ok {
		syms = T.G.DirectionSymbolsAfter(lhs)
		T.after[lhs] = syms
	}
	return syms
}

// --- Accessors -------------------------------------------------------------

// Symbols returns all grammar symbols, sorted by name.
func (T *Table) Symbols() []string {
	values := T.symbols.Values()
	names := make([]string, len(values))
	for i, x := range values {
		names[i] = x.(string)
	}
	return names
}

// HasSymbol is true if name is a symbol of the grammar.
func (T *Table) HasSymbol(name string) bool {
	return T.symbols.Contains(name)
}

// States returns all states in order of creation.
func (T *Table) States() []*State {
	return T.states
}

// State returns the state with ID id (0-based), or nil.
func (T *Table) State(id int) *State {
	if id < 0 || id >= len(T.states) {
		return nil
	}
	return T.states[id]
}

// Size returns the number of states.
func (T *Table) Size() int {
	return len(T.states)
}

// Start returns the start state.
func (T *Table) Start() *State {
	return T.states[0]
}

// Find returns the state holding exactly the given items, if any.
func (T *Table) Find(items ...grammar.Item) (*State, bool) {
	id, ok := T.index[itemSetKey("", items)]
	if !ok {
		return nil, false
	}
	return T.states[id], true
}
