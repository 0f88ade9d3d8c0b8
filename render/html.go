package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/npillmayer/slrtab/automaton"
)

// WriteHTML exports the GOTO and ACTION tables of T in HTML format.
// GOTO cells hold 1-based state numbers. ACTION cells hold "s" for shift,
// "acc" for accept and "r<n>" for reducing rule n; conflicting actions are
// separated by a slash. ACTION cells list every action of a state, even
// where the ACTION table itself is limited to two.
func WriteHTML(w io.Writer, T *automaton.Table) error {
	var b strings.Builder
	b.WriteString("<html><body>\n")
	gotoT := T.GotoTable()
	tableAsHTML(&b, T, "GOTO", gotoT.ValueCount(), func(s *automaton.State, j int) string {
		v := gotoT.Value(s.ID, j)
		if v == gotoT.NullValue() {
			return ""
		}
		return fmt.Sprintf("%d", v+1)
	})
	symbols := T.Symbols()
	tableAsHTML(&b, T, "ACTION", T.ActionTable().ValueCount(), func(s *automaton.State, j int) string {
		actions := s.Actions(symbols[j])
		cell := make([]string, len(actions))
		for i, a := range actions {
			cell[i] = actionString(a)
		}
		return strings.Join(cell, "/")
	})
	b.WriteString("</body></html>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func tableAsHTML(b *strings.Builder, T *automaton.Table, tname string, size int,
	cell func(*automaton.State, int) string) {
	//
	fmt.Fprintf(b, "<p>%s table of size = %d</p>\n", tname, size)
	b.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	b.WriteString("<tr bgcolor=#cccccc><td></td>")
	for _, sym := range T.Symbols() {
		fmt.Fprintf(b, "<td>%s</td>", html.EscapeString(sym))
	}
	b.WriteString("</tr>\n")
	for _, s := range T.States() {
		fmt.Fprintf(b, "<tr><td>state %d</td>", s.Number())
		for j := range T.Symbols() {
			td := cell(s, j)
			if td == "" {
				td = "&nbsp;"
			}
			fmt.Fprintf(b, "<td>%s</td>", td)
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")
}

func actionString(a automaton.Action) string {
	switch a.Kind {
	case automaton.Shift:
		return "s"
	case automaton.Accept:
		return "acc"
	}
	return fmt.Sprintf("r%d", a.Rule+1)
}
