package render

import (
	"github.com/npillmayer/slrtab/automaton"
	"github.com/pterm/pterm"
)

// Pretty renders the rows of T as a table for terminals.
func Pretty(T *automaton.Table, opts ...Option) (string, error) {
	o := makeOptions(opts)
	data := pterm.TableData{Header}
	for _, row := range T.Rows() {
		data = append(data, o.cells(row))
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
