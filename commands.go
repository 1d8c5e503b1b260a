package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	u "github.com/araddon/gou"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/rfielding/automata/automaton"
	"github.com/rfielding/automata/models"
	"github.com/rfielding/automata/suite"
)

// load reads a document and counts the attempt.
func load(env *Env, path string) (*automaton.Document, error) {
	doc, err := automaton.LoadFile(path)
	env.Metrics.ObserveLoad(err)
	return doc, err
}

// maxInputLine bounds a single string read from stdin by check.
const maxInputLine = 16 << 20

type checkCmd struct {
	Document string   `arg:"" help:"Automaton document (.json)"`
	Inputs   []string `arg:"" optional:"" help:"Strings to test; when none are given they are read from stdin, one per line"`
	Strict   bool     `help:"Report automata that get stuck as malformed instead of rejected"`
	Trace    bool     `help:"Print every transition taken"`
}

func (c *checkCmd) Run(env *Env) error {
	doc, err := load(env, c.Document)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}

	if len(c.Inputs) > 0 {
		for _, in := range c.Inputs {
			c.report(env, doc, in)
		}
		return nil
	}

	fmt.Fprintf(env.Out, "Enter strings for %s, one per line:\n", doc.Name)
	scanner := bufio.NewScanner(env.In)
	scanner.Buffer(make([]byte, 0, 64*1024), maxInputLine)
	for scanner.Scan() {
		c.report(env, doc, scanner.Text())
	}
	return scanner.Err()
}

func (c *checkCmd) report(env *Env, doc *automaton.Document, input string) {
	v := automaton.Evaluate(doc, input)
	if c.Strict {
		v = automaton.EvaluateStrict(doc, input)
	}
	env.Metrics.ObserveEvaluation(v)
	fmt.Fprintf(env.Out, "%q: %v\n", input, v)

	if !c.Trace {
		return
	}
	run := automaton.Trace(doc, input)
	for _, st := range run.Steps {
		fmt.Fprintf(env.Out, "  %s --%s--> %s\n", st.From, st.Symbol, st.To)
	}
	if run.Stuck >= 0 {
		fmt.Fprintf(env.Out, "  %s --%s--> (no transition)\n", run.Final, string([]rune(input)[run.Stuck]))
	}
}

type suiteCmd struct {
	Suite string `arg:"" type:"existingfile" help:"Suite file (.yaml)"`
}

func (c *suiteCmd) Run(env *Env) error {
	rep, err := runSuite(env, c.Suite)
	if err != nil {
		return err
	}
	if !rep.OK() {
		return errors.Errorf("%d of %d cases failed", rep.Failed, len(rep.Results))
	}
	return nil
}

// runSuite loads a suite and its document, runs it and prints the results.
func runSuite(env *Env, path string) (suite.Report, error) {
	s, err := suite.Load(path)
	if err != nil {
		return suite.Report{}, err
	}
	doc, err := s.LoadDocument(env.Metrics)
	if err != nil {
		return suite.Report{}, err
	}

	rep := s.Run(doc, env.Metrics)
	for _, r := range rep.Results {
		status := "PASS"
		if !r.Passed() {
			status = "FAIL"
		}
		fmt.Fprintf(env.Out, "%s %v: want %v, got %v\n", status, r.Case, r.Want, r.Got)
	}
	fmt.Fprintf(env.Out, "%s: %d passed, %d failed\n", doc.Name, rep.Passed, rep.Failed)
	return rep, nil
}

type watchCmd struct {
	Suite string `arg:"" type:"existingfile" help:"Suite file (.yaml)"`
}

func (c *watchCmd) Run(env *Env) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return c.watch(ctx, env)
}

func (c *watchCmd) watch(ctx context.Context, env *Env) error {
	s, err := suite.Load(c.Suite)
	if err != nil {
		return err
	}
	docPath := s.DocumentPath()
	w, err := c.newWatcher(docPath)
	if err != nil {
		return err
	}
	defer func() { w.Close() }()

	rerun := func() {
		if _, err := runSuite(env, c.Suite); err != nil {
			// A half-saved file is common while editing; wait for the next change.
			u.Warnf("%v", err)
			fmt.Fprintf(env.Out, "Error: %v\n", err)
		}
	}
	rerun()

	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return nil
			}
			u.Infof("%s changed, running suite again", filepath.Base(name))
			// Follow the suite to a different document before running it,
			// so changes made after the run are already watched.
			if s, err := suite.Load(c.Suite); err == nil && s.DocumentPath() != docPath {
				next, err := c.newWatcher(s.DocumentPath())
				if err != nil {
					u.Errorf("watching %s: %v", s.DocumentPath(), err)
				} else {
					w.Close()
					w, docPath = next, s.DocumentPath()
					u.Infof("now watching %s", docPath)
				}
			}
			rerun()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			u.Errorf("watch: %v", err)
		case <-ctx.Done():
			return nil
		}
	}
}

// newWatcher watches the suite file and, when the suite names one, its
// document.
func (c *watchCmd) newWatcher(docPath string) (*suite.Watcher, error) {
	if docPath == "" {
		return suite.NewWatcher(c.Suite)
	}
	return suite.NewWatcher(c.Suite, docPath)
}

type renderCmd struct {
	Document string `arg:"" help:"Automaton document (.json)"`
	Format   string `short:"f" default:"dot" enum:"dot,mermaid" help:"Output format (${enum})"`
}

func (c *renderCmd) Run(env *Env) error {
	doc, err := load(env, c.Document)
	if err != nil || doc == nil {
		return err
	}
	if c.Format == "mermaid" {
		return automaton.WriteMermaid(doc, env.Out)
	}
	return automaton.WriteGraphviz(doc, env.Out)
}

type analyzeCmd struct {
	Document string `arg:"" help:"Automaton document (.json)"`
}

func (c *analyzeCmd) Run(env *Env) error {
	doc, err := load(env, c.Document)
	if err != nil || doc == nil {
		return err
	}
	r := automaton.Analyze(doc)

	fmt.Fprintf(env.Out, "=== %s ===\n", doc.Name)
	fmt.Fprintf(env.Out, "States: %d, symbols: %d, start: %s, accept: %v\n",
		doc.StateCount, doc.AlphabetSize, doc.StartState, doc.AcceptStates)
	fmt.Fprintf(env.Out, "Reachable: %v\n", r.Reachable)
	if len(r.Unreachable) > 0 {
		fmt.Fprintf(env.Out, "Unreachable: %v\n", r.Unreachable)
	}
	if len(r.Dead) > 0 {
		fmt.Fprintf(env.Out, "Dead (no way to accept): %v\n", r.Dead)
	}
	for _, cell := range r.Missing {
		fmt.Fprintf(env.Out, "Missing: %s on %q\n", cell.From, cell.Symbol.String())
	}
	for _, cell := range r.InvalidTargets {
		fmt.Fprintf(env.Out, "Invalid target: %s on %q goes to %q\n", cell.From, cell.Symbol.String(), cell.To)
	}
	if r.UnknownSymbols > 0 {
		fmt.Fprintf(env.Out, "Symbols never used in the table: %d\n", r.UnknownSymbols)
	}
	fmt.Fprintf(env.Out, "Complete: %v\n", r.Complete)

	switch {
	case r.Empty:
		fmt.Fprintln(env.Out, "Language: empty (no string is accepted)")
	case r.Universal:
		fmt.Fprintln(env.Out, "Language: every string over the alphabet")
	default:
		fmt.Fprintln(env.Out, "Language: non-empty")
	}
	return nil
}

type examplesCmd struct {
	Names []string `arg:"" optional:"" help:"Models to write; all of them when none are given"`
	Out   string   `default:"." type:"existingdir" help:"Directory the examples are written to"`
}

func (c *examplesCmd) Run(env *Env) error {
	selected := models.All()
	if len(c.Names) > 0 {
		selected = selected[:0]
		for _, name := range c.Names {
			m, ok := models.Lookup(name)
			if !ok {
				return errors.Errorf("no bundled model named %q", name)
			}
			selected = append(selected, m)
		}
	}
	for _, m := range selected {
		doc, err := m.Build()
		if err != nil {
			return errors.Wrapf(err, "building %s", m.Name())
		}
		docPath := filepath.Join(c.Out, automaton.FileName(m.Name()))
		if err := automaton.SaveFile(docPath, doc); err != nil {
			return err
		}

		suitePath := strings.TrimSuffix(docPath, ".json") + ".suite.yaml"
		if err := writeSuite(suitePath, m); err != nil {
			return err
		}
		fmt.Fprintf(env.Out, "%s: %s\n  %s\n  %s\n", m.Name(), m.Description(), docPath, suitePath)
	}
	return nil
}

func writeSuite(path string, m suite.ModelSpec) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(suite.FromModel(m)); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %s", path)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
