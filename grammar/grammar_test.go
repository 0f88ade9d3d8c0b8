package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//  0: S ➞ A ;
//  1: A ➞ a
//  2: A ➞ b
func makeSimpleGrammar(t *testing.T) *Grammar {
	b := NewBuilder("Simple")
	b.LHS("S").N("A").T(";").End()
	b.LHS("A").T("a").End()
	b.LHS("A").T("b").End()
	g, err := b.Grammar()
	require.NoError(t, err)
	return g
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.grammar")
	defer teardown()
	//
	g := makeSimpleGrammar(t)
	require.Equal(t, 3, g.Size())
	for i, r := range g.Rules() {
		assert.Equal(t, i, r.Serial)
	}
	assert.Equal(t, "S", g.Start().LHS)
	assert.Equal(t, []string{"A", ";"}, g.Rule(0).RHS)
	assert.Nil(t, g.Rule(3))
	assert.Nil(t, g.Rule(-1))
	assert.True(t, g.IsDeclared("A"))
	assert.False(t, g.IsDeclared("a"))
}

func TestBuilderEOF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	r := b.LHS("S").T("x").EOF()
	assert.Equal(t, []string{"x", EndOfInput}, r.RHS)
}

func TestClassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.grammar")
	defer teardown()
	//
	g := makeSimpleGrammar(t)
	assert.True(t, g.IsNonTerminal("S"))
	assert.True(t, g.IsNonTerminal("A"))
	assert.False(t, g.IsNonTerminal("a"))
	assert.False(t, g.IsNonTerminal(";"))
	assert.True(t, g.IsTerminal("unknown"))
	rules := g.NonTerminalRules("A")
	require.Len(t, rules, 2)
	assert.Equal(t, 1, rules[0].Serial)
	assert.Equal(t, 2, rules[1].Serial)
	assert.Empty(t, g.NonTerminalRules("a"))
}

func TestSymbolSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.grammar")
	defer teardown()
	//
	g := makeSimpleGrammar(t)
	var names []string
	g.EachSymbol(func(name string) {
		names = append(names, name)
	})
	assert.Equal(t, []string{";", "A", "S", "a", "b"}, names)
}

func TestDirectionSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.grammar")
	defer teardown()
	//
	g := makeSimpleGrammar(t)
	assert.Equal(t, []Symbol{
		NewItem("A", Position{0, 0}),
		NewItem("a", Position{1, 0}),
		NewItem("b", Position{2, 0}),
	}, g.Rule(0).DirectionSymbols)
	assert.Equal(t, []Symbol{NewItem("a", Position{1, 0})}, g.Rule(1).DirectionSymbols)
	assert.Equal(t, []Symbol{NewItem("b", Position{2, 0})}, g.Rule(2).DirectionSymbols)
}

func TestDirectionSymbolsLeftRecursive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.grammar")
	defer teardown()
	//
	b := NewBuilder("LeftRec")
	b.LHS("S").N("A").EOF()        // 0: S ➞ A #
	b.LHS("A").N("A").T("a").End() // 1: A ➞ A a
	b.LHS("A").T("b").End()        // 2: A ➞ b
	g, err := b.Grammar()
	require.NoError(t, err)
	assert.Equal(t, []Symbol{
		NewItem("A", Position{1, 0}),
		NewItem("b", Position{2, 0}),
	}, g.Rule(1).DirectionSymbols)
}

func TestDirectionSymbolsAfter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.grammar")
	defer teardown()
	//
	b := NewBuilder("Follow")
	b.LHS("S").N("A").N("B").EOF() // 0: S ➞ A B #
	b.LHS("A").T("a").End()        // 1: A ➞ a
	b.LHS("B").T("b").N("C").End() // 2: B ➞ b C
	b.LHS("C").T("c").End()        // 3: C ➞ c
	g, err := b.Grammar()
	require.NoError(t, err)
	// A is followed by B, which starts with b
	assert.Equal(t, []Symbol{
		NewItem("B", Position{0, 1}),
		NewItem("b", Position{2, 0}),
	}, g.DirectionSymbolsAfter("A"))
	// C ends B, B is followed by #
	assert.Equal(t, []Symbol{NewItem("#", Position{0, 2})}, g.DirectionSymbolsAfter("C"))
	assert.Empty(t, g.DirectionSymbolsAfter("S"))
	assert.Empty(t, g.DirectionSymbolsAfter("nowhere"))
}

func TestDirectionSymbolsAfterCycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.grammar")
	defer teardown()
	//
	b := NewBuilder("Cycle")
	b.LHS("S").N("A").T(";").End() // 0: S ➞ A ;
	b.LHS("A").T("x").N("B").End() // 1: A ➞ x B
	b.LHS("B").T("y").N("A").End() // 2: B ➞ y A
	b.LHS("B").T("z").End()        // 3: B ➞ z
	g, err := b.Grammar()
	require.NoError(t, err)
	assert.Equal(t, []Symbol{NewItem(";", Position{0, 1})}, g.DirectionSymbolsAfter("A"))
	assert.Equal(t, []Symbol{NewItem(";", Position{0, 1})}, g.DirectionSymbolsAfter("B"))
}

func TestSymbolVariants(t *testing.T) {
	item := NewItem("a", Position{Rule: 1, Offset: 0})
	assert.Equal(t, "a", item.Name())
	assert.Equal(t, "a@1.0", item.String())
	assert.True(t, IsItem(item))
	assert.False(t, IsItem(Label(AcceptLabel)))
	assert.Equal(t, "OK", Label(AcceptLabel).Name())
	assert.Equal(t, "R1", Reduce{Rule: 0}.Name())
	assert.Equal(t, "R12", Reduce{Rule: 11}.Name())
	assert.NotEqual(t, Symbol(Label("R1")), Symbol(Reduce{Rule: 0}))
	assert.True(t, Position{1, 2}.Less(Position{1, 3}))
	assert.True(t, Position{0, 5}.Less(Position{1, 0}))
	assert.False(t, Position{1, 0}.Less(Position{1, 0}))
}

func TestValidateEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.grammar")
	defer teardown()
	//
	err := New("empty").Validate(false)
	assert.True(t, errors.Is(err, ErrEmptyGrammar))
	assert.True(t, errors.Is(err, ErrInvalidGrammar))
	_, err = NewBuilder("empty").Grammar()
	assert.True(t, errors.Is(err, ErrEmptyGrammar))
}

func TestValidateEmptyRHS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.grammar")
	defer teardown()
	//
	b := NewBuilder("Eps")
	b.LHS("S").N("B").End()
	b.LHS("B").End()
	_, err := b.Grammar()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyRHS))
	assert.True(t, errors.Is(err, ErrInvalidGrammar))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Defects, 1)
}

func TestValidateDirectionSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.grammar")
	defer teardown()
	//
	r0 := NewRule("S", "a", "b")
	r0.DirectionSymbols = []Symbol{NewItem("a", Position{0, 2})}
	err := New("G", r0).Validate(false)
	assert.True(t, errors.Is(err, ErrBadDirection))
	r0.DirectionSymbols = []Symbol{NewItem("x", Position{0, 0})}
	err = New("G", r0).Validate(false)
	assert.True(t, errors.Is(err, ErrBadDirection))
	r0.DirectionSymbols = []Symbol{NewItem("a", Position{0, 0}), Label("OK")}
	assert.NoError(t, New("G", r0).Validate(false))
}

func TestValidateStrict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.grammar")
	defer teardown()
	//
	b := NewBuilder("Missing")
	b.LHS("S").N("X").T("a").End() // X has no productions
	g, err := b.Grammar()
	require.NoError(t, err, "lenient validation accepts missing productions")
	err = g.Validate(true)
	assert.True(t, errors.Is(err, ErrMissingProductions))
	assert.Contains(t, err.Error(), `"X"`)
}

func TestValidateReservedLHS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.grammar")
	defer teardown()
	//
	b := NewBuilder("Reserved")
	b.LHS("S").T("a").EOF()
	b.LHS(EndOfInput).T("x").End()
	_, err := b.Grammar()
	assert.True(t, errors.Is(err, ErrReservedSymbol))
}
