package grammar

// Builder is a fluent interface for constructing grammars.
//
//    b := grammar.NewBuilder("G")
//    b.LHS("S").N("A").T(";").EOF()  // S ➞ A ; #
//    b.LHS("A").T("a").End()         // A ➞ a
//    b.LHS("A").T("b").End()         // A ➞ b
//    g, err := b.Grammar()
//
// The first rule added is the start production.
type Builder struct {
	name     string
	rules    []*Rule
	declared []string
}

// NewBuilder creates a builder for a grammar with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// RuleBuilder collects the right part of a single rule.
type RuleBuilder struct {
	b    *Builder
	rule *Rule
}

// LHS starts a new rule for non-terminal name.
func (b *Builder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{b: b, rule: NewRule(name)}
}

// N appends a non-terminal to the right part. The name is declared a
// non-terminal, which strict validation will check for productions.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.b.declared = append(rb.b.declared, name)
	rb.rule.RHS = append(rb.rule.RHS, name)
	return rb
}

// T appends a terminal to the right part.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rule.RHS = append(rb.rule.RHS, name)
	return rb
}

// End finishes the rule.
func (rb *RuleBuilder) End() *Rule {
	rb.b.rules = append(rb.b.rules, rb.rule)
	return rb.rule
}

// EOF appends the end-of-input symbol and finishes the rule.
func (rb *RuleBuilder) EOF() *Rule {
	return rb.T(EndOfInput).End()
}

// Grammar returns the grammar built so far, with direction symbols
// computed. It returns an error if the grammar is structurally invalid.
// A rule still under construction is not included.
func (b *Builder) Grammar() (*Grammar, error) {
	g := New(b.name, b.rules...)
	g.Declare(b.declared...)
	ComputeDirectionSymbols(g)
	if err := g.Validate(false); err != nil {
		return nil, err
	}
	g.Dump()
	return g, nil
}
