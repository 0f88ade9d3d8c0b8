package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/slrtab/automaton"
	"github.com/npillmayer/slrtab/loader"
	"github.com/npillmayer/slrtab/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var tableCmd = &cobra.Command{
	Use:     "table <grammar>",
	Short:   "Print the parser table of a grammar",
	Example: `  slrtab table --format pretty expr.grammar`,
	Args:    cobra.ExactArgs(1),
	RunE:    runTable,
}

func init() {
	tableCmd.Flags().StringP("format", "f", "tsv", "Output format [tsv|pretty|dot|html]")
	tableCmd.Flags().StringP("output", "o", "", "Output file path (default stdout)")
	tableCmd.Flags().String("literal", ";", "Symbol to quote in table output")

	_ = viper.BindPFlag("format", tableCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("literal", tableCmd.Flags().Lookup("literal"))

	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) (err error) {
	g, err := loader.Load(args[0])
	if err != nil {
		return err
	}
	T, err := buildTable(g)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, ferr := os.Create(path)
		if ferr != nil {
			return fmt.Errorf("cannot create output file: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	return writeTable(w, T, viper.GetString("format"), render.QuoteLiteral(viper.GetString("literal")))
}

func writeTable(w io.Writer, T *automaton.Table, format string, opts ...render.Option) error {
	switch format {
	case "tsv":
		return render.WriteTSV(w, T, opts...)
	case "pretty":
		out, err := render.Pretty(T, opts...)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case "dot":
		return render.WriteDot(w, T)
	case "html":
		return render.WriteHTML(w, T)
	}
	return fmt.Errorf("unknown output format %q", format)
}
