package grammar

import (
	"fmt"
	"strconv"
)

// Names with a special meaning for the automaton.
const (
	EndOfInput   = "#"  // designated end-of-input symbol
	AcceptLabel  = "OK" // label of the accept transition in the start state
	ReducePrefix = "R"  // reduce markers are named R1, R2, …
)

// Position identifies an occurrence of a symbol within the right part of a
// rule. Offset is 0-based and always within the bounds of the rule's RHS.
type Position struct {
	Rule   int // 0-based serial of the rule
	Offset int // index into the RHS of the rule
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Rule, p.Offset)
}

// Less orders positions by rule, then by offset.
func (p Position) Less(q Position) bool {
	return p.Rule < q.Rule || p.Rule == q.Rule && p.Offset < q.Offset
}

// Symbol is a tagged variant for everything the automaton uses as a
// transition target:
//
//    Item    a dotted item: a symbol occurrence with a position
//    Label   a bare transition label without position (accept, start)
//    Reduce  a synthetic marker for "rule N is complete here"
//
// The set of variants is closed. Symbols are comparable values and may be
// used as map keys.
type Symbol interface {
	Name() string
	fmt.Stringer
	isSymbol()
}

// Item is a symbol occurrence at a grammar position, i.e. the cursor of the
// automaton sitting just before that occurrence.
type Item struct {
	name string
	Pos  Position
}

var _ Symbol = Item{}

// NewItem creates a dotted item for a symbol at position pos.
func NewItem(name string, pos Position) Item {
	return Item{name: name, Pos: pos}
}

// Name returns the name of the grammar symbol.
func (i Item) Name() string { return i.name }

func (i Item) String() string {
	return fmt.Sprintf("%s@%d.%d", i.name, i.Pos.Rule, i.Pos.Offset)
}

func (Item) isSymbol() {}

// Label is a pure transition label without a position.
type Label string

var _ Symbol = Label("")

// Name returns the label text.
func (l Label) Name() string { return string(l) }

func (l Label) String() string { return string(l) }

func (Label) isSymbol() {}

// Reduce marks the completion of a rule. Rule is the 0-based serial of the
// completed rule, the marker's name uses the 1-based number.
type Reduce struct {
	Rule int
}

var _ Symbol = Reduce{}

// Name returns the marker name, derived from the 1-based rule number.
func (r Reduce) Name() string {
	return ReducePrefix + strconv.Itoa(r.Rule+1)
}

func (r Reduce) String() string { return r.Name() }

func (Reduce) isSymbol() {}

// IsItem is a predicate for positioned symbols.
func IsItem(sym Symbol) bool {
	_, ok := sym.(Item)
	return ok
}
