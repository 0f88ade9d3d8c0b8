package automaton

// DefaultMaxStates is the default upper limit for the number of states.
const DefaultMaxStates = 1 << 20

// Option configures Build.
type Option func(*config)

type config struct {
	maxStates int
	strict    bool
}

func defaultConfig() config {
	return config{maxStates: DefaultMaxStates}
}

// MaxStates sets an upper limit for the number of states. Build fails with
// ErrStateLimit if construction exceeds it. Values < 1 are ignored.
func MaxStates(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxStates = n
		}
	}
}

// Strict makes Build reject grammars referencing declared non-terminals
// without productions. By default, such references are treated as
// terminals.
func Strict() Option {
	return func(c *config) {
		c.strict = true
	}
}
