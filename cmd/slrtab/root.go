package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/slrtab/automaton"
	"github.com/npillmayer/slrtab/grammar"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// tracer traces with key 'slrtab.cli'.
func tracer() tracing.Trace {
	return tracing.Select("slrtab.cli")
}

// traceKeys are the tracing keys of all packages of slrtab.
var traceKeys = []string{
	"slrtab.cli",
	"slrtab.grammar",
	"slrtab.automaton",
	"slrtab.scanner",
	"slrtab.loader",
	"slrtab.render",
}

var rootCmd = &cobra.Command{
	Use:   "slrtab",
	Short: "Build SLR automata and parser tables from grammars",
	Long: `slrtab derives the states of an SLR shift-reduce parser from a context-free
grammar and prints them as a table, a Graphviz graph or a listing of item sets.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupTracing(viper.GetString("trace"))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default ./slrtab.yaml)")
	rootCmd.PersistentFlags().String("trace", "Error", "Trace level [Debug|Info|Error]")
	rootCmd.PersistentFlags().Int("max-states", automaton.DefaultMaxStates, "Upper limit for the number of states")
	rootCmd.PersistentFlags().Bool("strict", false, "Reject non-terminals without productions")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("trace", rootCmd.PersistentFlags().Lookup("trace"))
	_ = viper.BindPFlag("max_states", rootCmd.PersistentFlags().Lookup("max-states"))
	_ = viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {
	viper.SetEnvPrefix("SLRTAB")
	viper.AutomaticEnv()
	if cfg := viper.GetString("config"); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.SetConfigName("slrtab")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "slrtab"))
		}
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			tracer().Errorf("cannot read config: %v", err)
		}
		return
	}
	tracer().Infof("using config file %s", viper.ConfigFileUsed())
}

func setupTracing(level string) {
	gtrace.SyntaxTracer = gologadapter.New()
	l := tracing.TraceLevelFromString(level)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
}

// buildOptions collects the automaton options from the configuration.
func buildOptions() []automaton.Option {
	opts := []automaton.Option{automaton.MaxStates(viper.GetInt("max_states"))}
	if viper.GetBool("strict") {
		opts = append(opts, automaton.Strict())
	}
	return opts
}

func buildTable(g *grammar.Grammar) (*automaton.Table, error) {
	return automaton.Build(g, buildOptions()...)
}
