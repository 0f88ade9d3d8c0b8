package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slrtab/automaton"
	"github.com/npillmayer/slrtab/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exprSource = `// expressions
S -> E #
E -> E "+" T | T
T -> T "*" F
   | F
F -> "(" E ")" | n
`

func TestParseSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.loader")
	defer teardown()
	//
	g, err := Parse("simple", "S -> A \";\"\nA -> a | b\n")
	require.NoError(t, err)
	require.Equal(t, 3, g.Size())
	assert.Equal(t, "simple", g.Name)
	assert.Equal(t, []string{"A", ";"}, g.Rule(0).RHS)
	assert.Equal(t, []string{"a"}, g.Rule(1).RHS)
	assert.Equal(t, []string{"b"}, g.Rule(2).RHS)
	assert.True(t, g.IsDeclared("A"))
	assert.False(t, g.IsDeclared("a"))
	assert.Equal(t, []grammar.Symbol{
		grammar.NewItem("A", grammar.Position{Rule: 0, Offset: 0}),
		grammar.NewItem("a", grammar.Position{Rule: 1, Offset: 0}),
		grammar.NewItem("b", grammar.Position{Rule: 2, Offset: 0}),
	}, g.Rule(0).DirectionSymbols)
	T, err := automaton.Build(g)
	require.NoError(t, err)
	assert.Equal(t, 5, T.Size())
}

func TestParseLikeBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.loader")
	defer teardown()
	//
	g1, err := Parse("expr", exprSource)
	require.NoError(t, err)
	require.Equal(t, 7, g1.Size())
	b := grammar.NewBuilder("expr")
	b.LHS("S").N("E").EOF()
	b.LHS("E").N("E").T("+").N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("T").T("*").N("F").End()
	b.LHS("T").N("F").End()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("n").End()
	g2, err := b.Grammar()
	require.NoError(t, err)
	for i, r := range g1.Rules() {
		assert.Equal(t, g2.Rule(i).String(), r.String())
		assert.Equal(t, g2.Rule(i).DirectionSymbols, r.DirectionSymbols)
	}
	T1, err := automaton.Build(g1)
	require.NoError(t, err)
	T2, err := automaton.Build(g2)
	require.NoError(t, err)
	assert.Equal(t, T2.Rows(), T1.Rows())
}

func TestParseCommentsAndBlankLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.loader")
	defer teardown()
	//
	g, err := Parse("c", "\n// comment\n\nS -> a // trailing\n\n   | b\n// end")
	require.NoError(t, err)
	require.Equal(t, 2, g.Size())
	assert.Equal(t, "S", g.Rule(1).LHS)
	assert.Equal(t, []string{"b"}, g.Rule(1).RHS)
}

func TestSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.loader")
	defer teardown()
	//
	for _, c := range []struct {
		src  string
		line int
	}{
		{"S A\n", 1},
		{"S -> a\nB ->\n", 2},
		{"S -> a | | b", 1},
		{"-> a", 1},
		{"| a", 1},
		{"S -> a -> b", 1},
		{"S -> a\n\"S\" -> b", 2},
		{`S -> ""`, 1},
		{`S -> "abc`, 1},
	} {
		_, err := Parse("bad", c.src)
		require.Error(t, err, "source %q", c.src)
		assert.True(t, errors.Is(err, ErrSyntax), "source %q: %v", c.src, err)
		var serr *SyntaxError
		if assert.True(t, errors.As(err, &serr), "source %q", c.src) {
			assert.Equal(t, c.line, serr.Line, "source %q: %v", c.src, err)
			assert.Equal(t, "bad", serr.Source)
		}
	}
}

func TestGrammarErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.loader")
	defer teardown()
	//
	_, err := Parse("empty", "// nothing here\n")
	assert.True(t, errors.Is(err, grammar.ErrEmptyGrammar))
	_, err = Parse("reserved", "S -> a #\n# -> x\n")
	assert.True(t, errors.Is(err, grammar.ErrReservedSymbol))
	assert.False(t, errors.Is(err, ErrSyntax))
}

func TestDeclaredByNotation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.loader")
	defer teardown()
	//
	g, err := Parse("missing", `S -> X "a"`)
	require.NoError(t, err)
	assert.True(t, g.IsDeclared("X"))
	assert.False(t, g.IsNonTerminal("X"))
	_, err = automaton.Build(g)
	assert.NoError(t, err)
	_, err = automaton.Build(g, automaton.Strict())
	assert.True(t, errors.Is(err, grammar.ErrMissingProductions))
	//
	g, err = Parse("quoted", `S -> "X" a`)
	require.NoError(t, err)
	assert.False(t, g.IsDeclared("X"), "quoted symbols are terminals")
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.loader")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "expr.grammar")
	require.NoError(t, os.WriteFile(path, []byte(exprSource), 0644))
	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "expr", g.Name)
	assert.Equal(t, 7, g.Size())
	_, err = Load(filepath.Join(t.TempDir(), "nothing.grammar"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestQuotedNonTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrtab.loader")
	defer teardown()
	//
	g, err := Parse("quoted", "S -> \"A\" \";\"\nA -> a\n")
	require.NoError(t, err)
	assert.True(t, g.IsNonTerminal("A"), "quoted name with productions")
	assert.True(t, g.IsTerminal(";"))
	assert.False(t, g.IsDeclared(";"))
	assert.Equal(t, []grammar.Symbol{
		grammar.NewItem("A", grammar.Position{Rule: 0, Offset: 0}),
		grammar.NewItem("a", grammar.Position{Rule: 1, Offset: 0}),
	}, g.Rule(0).DirectionSymbols)
}
