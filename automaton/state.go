package automaton

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/cnf/structhash"
	"github.com/npillmayer/slrtab/grammar"
)

// State is a node of the automaton. Its identity is its item set: two
// states are equal iff they hold the same items, regardless of the order in
// which the items have been added.
//
// The items of a state always share a symbol name, as they are the targets
// of a single transition label. The start state is the only state holding
// a bare label (the start symbol) instead of dotted items.
type State struct {
	ID      int                 // 0-based serial ID of this state
	items   []grammar.Symbol    // items in order of insertion
	key     string              // canonical key of the item set
	next    *transitions        // label -> targets, before goto resolution
	actions map[string][]Action // label -> resolved actions
}

func newState() *State {
	return &State{
		next:    newTransitions(),
		actions: make(map[string][]Action),
	}
}

// Number returns the externally visible, 1-based state number.
func (s *State) Number() int {
	return s.ID + 1
}

// Items returns the items of this state in order of insertion.
func (s *State) Items() []grammar.Symbol {
	return s.items
}

// Symbol returns the symbol name all items of this state share.
func (s *State) Symbol() string {
	if len(s.items) == 0 {
		return ""
	}
	return s.items[0].Name()
}

// IsStart is true for the start state.
func (s *State) IsStart() bool {
	return len(s.items) > 0 && !grammar.IsItem(s.items[0])
}

// Contains is true if the state holds an item at position pos.
func (s *State) Contains(pos grammar.Position) bool {
	for _, sym := range s.items {
		if item, ok := sym.(grammar.Item); ok && item.Pos == pos {
			return true
		}
	}
	return false
}

// Labels returns the transition labels of this state, in order of first
// insertion.
func (s *State) Labels() []string {
	return s.next.labels()
}

// Targets returns the symbols reachable from this state by advancing past
// label: dotted items, reduce markers and the accept label.
func (s *State) Targets(label string) []grammar.Symbol {
	return s.next.targets(label)
}

// Actions returns the resolved actions for label.
func (s *State) Actions(label string) []Action {
	return s.actions[label]
}

// Successor returns the ID of the state reached by shifting label, if any.
func (s *State) Successor(label string) (int, bool) {
	for _, a := range s.actions[label] {
		if a.Kind == Shift {
			return a.Target, true
		}
	}
	return 0, false
}

// Equals compares the item sets of two states.
func (s *State) Equals(other *State) bool {
	return other != nil && s.key == other.key
}

func (s *State) String() string {
	return fmt.Sprintf("(state %d | %s | [%d])", s.Number(), s.Symbol(), len(s.items))
}

// Dump is a debugging helper
func (s *State) Dump() {
	tracer().Debugf("--- state %03d -----------", s.Number())
	tracer().Debugf("items = %s", symbolsString(s.items))
	for _, label := range s.Labels() {
		tracer().Debugf("   %-6s --> %s", label, symbolsString(s.Targets(label)))
	}
	tracer().Debugf("-------------------------")
}

// --- Canonical item sets ---------------------------------------------------

// canonical is the normalized form of an item set used for hashing.
// Positions are sorted by (rule, offset); Start is set for the start state.
type canonical struct {
	Start     string
	Positions []grammar.Position
}

// itemSetKey computes a key which is equal for equal item sets.
func itemSetKey(start string, items []grammar.Item) string {
	c := canonical{Start: start, Positions: make([]grammar.Position, len(items))}
	for i, item := range items {
		c.Positions[i] = item.Pos
	}
	sort.Slice(c.Positions, func(i, j int) bool {
		return c.Positions[i].Less(c.Positions[j])
	})
	key, err := structhash.Hash(c, 1)
	if err != nil { // cannot happen for plain structs
		panic(fmt.Sprintf("cannot hash item set: %v", err))
	}
	return key
}

func symbolsString(syms []grammar.Symbol) string {
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
