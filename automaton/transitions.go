package automaton

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/slrtab/grammar"
)

// transitions is an ordered multimap from a symbol name to the symbols
// reachable by advancing past it. Labels and their targets keep the order
// of first insertion; adding a target already present is a no-op.
type transitions struct {
	m *linkedhashmap.Map // string -> *linkedhashset.Set of grammar.Symbol
}

func newTransitions() *transitions {
	return &transitions{m: linkedhashmap.New()}
}

// add registers targets under label.
func (tr *transitions) add(label string, targets ...grammar.Symbol) {
	var set *linkedhashset.Set
	if x, found := tr.m.Get(label); found {
		set = x.(*linkedhashset.Set)
	} else {
		set = linkedhashset.New()
		tr.m.Put(label, set)
	}
	for _, sym := range targets {
		set.Add(sym)
	}
}

// addEach registers every symbol under its own name.
func (tr *transitions) addEach(syms ...grammar.Symbol) {
	for _, sym := range syms {
		tr.add(sym.Name(), sym)
	}
}

func (tr *transitions) labels() []string {
	keys := tr.m.Keys()
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = k.(string)
	}
	return labels
}

func (tr *transitions) targets(label string) []grammar.Symbol {
	x, found := tr.m.Get(label)
	if !found {
		return nil
	}
	values := x.(*linkedhashset.Set).Values()
	syms := make([]grammar.Symbol, len(values))
	for i, v := range values {
		syms[i] = v.(grammar.Symbol)
	}
	return syms
}

func (tr *transitions) size() int {
	return tr.m.Size()
}

// positioned filters the dotted items from a list of targets.
func positioned(syms []grammar.Symbol) []grammar.Item {
	var items []grammar.Item
	for _, sym := range syms {
		if item, ok := sym.(grammar.Item); ok {
			items = append(items, item)
		}
	}
	return items
}
