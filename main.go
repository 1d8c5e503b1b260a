package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	u "github.com/araddon/gou"

	"github.com/rfielding/automata/suite"
)

// CLI is the automata command line. Every flag can also be set from the
// environment.
type CLI struct {
	LogLevel    string `name:"log-level" default:"info" enum:"debug,info,warn,error" env:"AUTOMATA_LOG_LEVEL" help:"Log level (${enum})"`
	MetricsFile string `name:"metrics-file" placeholder:"PATH" env:"AUTOMATA_METRICS_FILE" help:"Write evaluation counters to this file on exit"`

	Build    buildCmd    `cmd:"" help:"Build an automaton interactively and save it as JSON"`
	Check    checkCmd    `cmd:"" help:"Test strings against an automaton document"`
	Suite    suiteCmd    `cmd:"" help:"Run a YAML test suite"`
	Watch    watchCmd    `cmd:"" help:"Re-run a test suite whenever it or its document changes"`
	Render   renderCmd   `cmd:"" help:"Draw an automaton as Graphviz DOT or Mermaid"`
	Analyze  analyzeCmd  `cmd:"" help:"Report unreachable, dead and missing parts of an automaton"`
	Examples examplesCmd `cmd:"" help:"Write the bundled example automata and their suites"`
}

// Env is bound into every command's Run method.
type Env struct {
	In      io.Reader
	Out     io.Writer
	Metrics *suite.Metrics
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("automata"),
		kong.Description("Build deterministic finite automata and test strings against them."),
		kong.UsageOnError(),
	)

	u.SetupLogging(cli.LogLevel)
	u.SetColorIfTerminal()

	env := &Env{In: os.Stdin, Out: os.Stdout, Metrics: suite.NewMetrics()}
	err := ctx.Run(env)

	if cli.MetricsFile != "" {
		if werr := env.Metrics.WriteTextfile(cli.MetricsFile); werr != nil {
			u.Errorf("writing metrics: %v", werr)
		}
	}
	ctx.FatalIfErrorf(err)
}
