package grammar

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errors reported for malformed grammars. All of them wrap ErrInvalidGrammar.
var (
	ErrInvalidGrammar     = errors.New("invalid grammar")
	ErrEmptyGrammar       = fmt.Errorf("%w: grammar has no rules", ErrInvalidGrammar)
	ErrEmptyLHS           = fmt.Errorf("%w: rule without left-hand side", ErrInvalidGrammar)
	ErrEmptyRHS           = fmt.Errorf("%w: rule with empty right part", ErrInvalidGrammar)
	ErrReservedSymbol     = fmt.Errorf("%w: end of input used as left-hand side", ErrInvalidGrammar)
	ErrBadDirection       = fmt.Errorf("%w: invalid direction symbol", ErrInvalidGrammar)
	ErrMissingProductions = fmt.Errorf("%w: non-terminal without productions", ErrInvalidGrammar)
)

// ValidationError collects all defects found in a grammar. It matches
// ErrInvalidGrammar and every contained sentinel with errors.Is.
type ValidationError struct {
	Grammar string
	Defects []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Defects))
	for i, d := range e.Defects {
		msgs[i] = d.Error()
	}
	return fmt.Sprintf("grammar %q: %s", e.Grammar, strings.Join(msgs, "; "))
}

// Is matches ErrInvalidGrammar and the sentinels of the defects.
func (e *ValidationError) Is(target error) bool {
	if target == ErrInvalidGrammar {
		return true
	}
	for _, d := range e.Defects {
		if errors.Is(d, target) {
			return true
		}
	}
	return false
}

// Validate checks a grammar for structural defects which would otherwise
// lead to invalid item positions during automaton construction. With strict
// set, names declared as non-terminals must have productions.
//
// Validate does not check for ambiguity or left recursion.
func (g *Grammar) Validate(strict bool) error {
	if g == nil || len(g.rules) == 0 {
		return ErrEmptyGrammar
	}
	var defects []error
	for _, r := range g.rules {
		if r.LHS == "" {
			defects = append(defects, fmt.Errorf("rule %d: %w", r.Serial, ErrEmptyLHS))
		} else if r.LHS == EndOfInput {
			defects = append(defects, fmt.Errorf("rule %d: %w", r.Serial, ErrReservedSymbol))
		}
		if len(r.RHS) == 0 {
			defects = append(defects, fmt.Errorf("rule %d (%s): %w", r.Serial, r.LHS, ErrEmptyRHS))
		}
		for _, sym := range r.DirectionSymbols {
			if err := g.checkSymbol(sym); err != nil {
				defects = append(defects, fmt.Errorf("rule %d: %w", r.Serial, err))
			}
		}
	}
	if strict {
		var missing []error
		for name := range g.declared {
			if !g.IsNonTerminal(name) {
				missing = append(missing, fmt.Errorf("%q: %w", name, ErrMissingProductions))
			}
		}
		sortErrors(missing)
		defects = append(defects, missing...)
	}
	if len(defects) == 0 {
		return nil
	}
	err := &ValidationError{Grammar: g.Name, Defects: defects}
	tracer().Errorf("%v", err)
	return err
}

// checkSymbol tests that an item denotes an existing RHS occurrence.
func (g *Grammar) checkSymbol(sym Symbol) error {
	item, ok := sym.(Item)
	if !ok {
		return nil
	}
	r := g.Rule(item.Pos.Rule)
	if r == nil || item.Pos.Offset < 0 || item.Pos.Offset > r.Last() {
		return fmt.Errorf("%w: %v out of range", ErrBadDirection, item)
	}
	if r.RHS[item.Pos.Offset] != item.Name() {
		return fmt.Errorf("%w: %v does not match %q", ErrBadDirection, item, r.RHS[item.Pos.Offset])
	}
	return nil
}

// map iteration makes the order of strict-mode defects random
func sortErrors(errs []error) {
	sort.SliceStable(errs, func(i, j int) bool {
		return errs[i].Error() < errs[j].Error()
	})
}
