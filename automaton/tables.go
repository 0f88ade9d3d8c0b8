package automaton

import (
	"fmt"

	"github.com/npillmayer/slrtab/grammar"
	"github.com/npillmayer/slrtab/sparse"
)

// Actions for parser action tables. Reduce entries hold the 1-based number
// of the rule to reduce.
const (
	ShiftAction  = -1
	AcceptAction = -2
)

// ActionKind tells shift, reduce and accept actions apart.
type ActionKind int

const (
	Shift ActionKind = iota
	Reduce
	Accept
)

func (k ActionKind) String() string {
	switch k {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	}
	return "?"
}

// Action is a resolved transition of a state.
type Action struct {
	Kind   ActionKind
	Target int // ID of the successor state, for shifts
	Rule   int // 0-based serial of the rule, for reduces
}

func (a Action) String() string {
	switch a.Kind {
	case Shift:
		return fmt.Sprintf("<shift %d>", a.Target+1)
	case Reduce:
		return fmt.Sprintf("<reduce %d>", a.Rule+1)
	}
	return "<accept>"
}

// value encodes an action for the ACTION table.
func (a Action) value() int32 {
	switch a.Kind {
	case Shift:
		return ShiftAction
	case Reduce:
		return int32(a.Rule + 1)
	}
	return AcceptAction
}

// resolve turns the transitions of every state into actions and fills the
// GOTO and ACTION tables.
//
// The dotted items under a label make up the item set of the successor
// state, which is present after construction. Reduce markers become reduce
// actions, the accept label an accept action.
func (T *Table) resolve() {
	m, n := len(T.states), T.symbols.Size()
	T.gotoT = sparse.NewIntMatrix(m, n, sparse.DefaultNullValue)
	T.actionT = sparse.NewIntMatrix(m, n, sparse.DefaultNullValue)
	tracer().Infof("GOTO/ACTION tables of size %d x %d", m, n)
	for _, s := range T.states {
		for _, label := range s.Labels() {
			targets := s.Targets(label)
			if items := positioned(targets); len(items) > 0 {
				id, ok := T.index[itemSetKey("", items)]
				if !ok {
					tracer().Errorf("no state for %s in %v", label, s)
					continue
				}
				s.actions[label] = append(s.actions[label], Action{Kind: Shift, Target: id})
			}
			for _, sym := range targets {
				switch x := sym.(type) {
				case grammar.Reduce:
					s.actions[label] = append(s.actions[label], Action{Kind: Reduce, Rule: x.Rule})
				case grammar.Label:
					if x == grammar.AcceptLabel {
						s.actions[label] = append(s.actions[label], Action{Kind: Accept})
					}
				}
			}
			T.enter(s, label)
		}
	}
}

func (T *Table) enter(s *State, label string) {
	col, ok := T.columns[label]
	if !ok {
		tracer().Errorf("label %q of %v is not a grammar symbol", label, s)
		return
	}
	for i, a := range s.actions[label] {
		if a.Kind == Shift {
			T.gotoT.Set(s.ID, col, int32(a.Target))
		}
		if i >= 2 {
			tracer().Errorf("ACTION[%d,%s] holds two actions, dropping %v", s.ID, label, a)
			continue
		}
		T.actionT.Add(s.ID, col, a.value())
	}
}

// GotoTable returns the GOTO table: rows are state IDs, columns are symbols
// in the order of Symbols(), values are IDs of successor states.
func (T *Table) GotoTable() *sparse.IntMatrix {
	return T.gotoT
}

// ActionTable returns the ACTION table. Every entry holds up to two values:
// ShiftAction, AcceptAction, or a 1-based rule number to reduce. Further
// actions of a cell are kept by State.Actions only.
func (T *Table) ActionTable() *sparse.IntMatrix {
	return T.actionT
}

// Column returns the table column for a symbol.
func (T *Table) Column(symbol string) (int, bool) {
	col, ok := T.columns[symbol]
	return col, ok
}

// Goto returns the ID of the state reached from state id on symbol.
func (T *Table) Goto(id int, symbol string) (int, bool) {
	col, ok := T.columns[symbol]
	if !ok || T.State(id) == nil {
		return 0, false
	}
	v := T.gotoT.Value(id, col)
	if v == T.gotoT.NullValue() {
		return 0, false
	}
	return int(v), true
}

// --- Rows ------------------------------------------------------------------

// Row holds the facts about a state which a table renderer displays.
type Row struct {
	Number           int      // 1-based state number
	Symbol           string   // symbol name shared by the items of the state
	DirectionSymbols []string // transition labels
	Shift            bool     // some label leads to a successor state
	Error            bool     // no action at all: input reaching here is an error
	Pointer          int      // 1-based number of the first successor state, 0 for none
	Stack            bool     // some successor is entered on a non-terminal
	End              bool     // the state accepts
}

// Rows returns one row per state, in state order.
func (T *Table) Rows() []Row {
	rows := make([]Row, len(T.states))
	for i, s := range T.states {
		row := Row{
			Number:           s.Number(),
			Symbol:           s.Symbol(),
			DirectionSymbols: s.Labels(),
			Error:            true,
		}
		for _, label := range row.DirectionSymbols {
			for _, a := range s.actions[label] {
				row.Error = false
				switch a.Kind {
				case Shift:
					row.Shift = true
					if row.Pointer == 0 {
						row.Pointer = a.Target + 1
					}
					if T.G.IsNonTerminal(label) {
						row.Stack = true
					}
				case Accept:
					row.End = true
				}
			}
		}
		rows[i] = row
	}
	return rows
}
