package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/slrtab/automaton"
	"github.com/npillmayer/slrtab/grammar"
	"github.com/npillmayer/slrtab/loader"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl [grammar]",
	Short: "Enter grammar rules interactively",
	Long: `repl reads grammar rules line by line, in the notation of grammar files.
Lines starting with a colon are commands; enter :help to list them.
An optional grammar file is loaded first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	initDisplay()
	s := &session{name: "repl", out: cmd.OutOrStdout()}
	if len(args) > 0 {
		if err := s.load(args[0]); err != nil {
			return err
		}
	}
	rl, err := readline.New("slrtab> ")
	if err != nil {
		tracer().Errorf("%v", err)
		return err
	}
	defer rl.Close()
	pterm.Info.Println("Welcome to slrtab. Quit with :quit or <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		quit, err := s.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	fmt.Fprintln(s.out, "Good bye!")
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// session collects grammar lines entered in the REPL.
type session struct {
	name  string
	lines []string
	out   io.Writer
}

const replHelp = `Enter rules like  S -> A ";" | b  or one of the commands
  :table    print the parser table
  :tsv      print the parser table as tab-separated values
  :states   list item sets and transitions
  :rules    list the rules entered so far
  :load F   add the rules of grammar file F
  :reset    forget all rules
  :quit     leave the REPL`

// Eval processes one line of input. Rules are checked for syntax errors
// and grammar defects before they are accepted.
func (s *session) Eval(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	if !strings.HasPrefix(line, ":") {
		src := strings.Join(append(s.lines, line), "\n")
		if _, err := loader.Parse(s.name, src); rejects(err) {
			return false, err
		}
		s.lines = append(s.lines, line)
		return false, nil
	}
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q":
		return true, nil
	case ":help", ":h":
		fmt.Fprintln(s.out, replHelp)
	case ":reset":
		s.lines = nil
	case ":load":
		if len(fields) != 2 {
			return false, errors.New("usage: :load <grammar file>")
		}
		return false, s.load(fields[1])
	case ":rules":
		g, err := s.grammar()
		if err != nil {
			return false, err
		}
		writeRules(s.out, g)
	case ":table", ":tsv", ":states":
		T, err := s.table()
		if err != nil {
			return false, err
		}
		switch fields[0] {
		case ":table":
			return false, writeTable(s.out, T, "pretty")
		case ":tsv":
			return false, writeTable(s.out, T, "tsv")
		}
		return false, writeStates(s.out, T)
	default:
		return false, fmt.Errorf("unknown command %s, try :help", fields[0])
	}
	return false, nil
}

// rejects is true for errors which no later line could repair.
func rejects(err error) bool {
	if errors.Is(err, loader.ErrSyntax) {
		return true
	}
	return errors.Is(err, grammar.ErrInvalidGrammar) && !errors.Is(err, grammar.ErrEmptyGrammar)
}

func (s *session) load(path string) error {
	g, err := loader.Load(path)
	if err != nil {
		return err
	}
	for _, r := range g.Rules() {
		s.lines = append(s.lines, ruleLine(g, r))
	}
	tracer().Infof("loaded %d rules from %s", g.Size(), path)
	return nil
}

// ruleLine writes a rule in grammar notation. Terminals are quoted, which
// keeps symbols like "|" intact.
func ruleLine(g *grammar.Grammar, r *grammar.Rule) string {
	rhs := make([]string, len(r.RHS))
	for i, sym := range r.RHS {
		if g.IsNonTerminal(sym) || g.IsDeclared(sym) {
			rhs[i] = sym
		} else {
			rhs[i] = fmt.Sprintf("%q", sym)
		}
	}
	return r.LHS + " -> " + strings.Join(rhs, " ")
}

func (s *session) grammar() (*grammar.Grammar, error) {
	return loader.Parse(s.name, strings.Join(s.lines, "\n"))
}

func (s *session) table() (*automaton.Table, error) {
	g, err := s.grammar()
	if err != nil {
		return nil, err
	}
	return buildTable(g)
}
