// Package suite runs YAML lists of input strings and expected verdicts
// against automaton documents.
package suite

import (
	"os"
	"path/filepath"

	u "github.com/araddon/gou"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/rfielding/automata/automaton"
)

// ErrBadExpectation is returned for an expect value that is not a verdict.
var ErrBadExpectation = errors.New("unknown expected verdict")

// Case is one input string and the verdict it should get.
type Case struct {
	Name   string `yaml:"name,omitempty"`
	Input  string `yaml:"input"`
	Expect string `yaml:"expect"`
}

// Expect builds a case from a verdict.
func Expect(input string, v automaton.Verdict) Case {
	return Case{Input: input, Expect: v.String()}
}

// Want returns the expected verdict.
func (c Case) Want() (automaton.Verdict, error) {
	v, ok := automaton.ParseVerdict(c.Expect)
	if !ok {
		return v, errors.Wrapf(ErrBadExpectation, "%q for input %q", c.Expect, c.Input)
	}
	return v, nil
}

func (c Case) String() string {
	if c.Name != "" {
		return c.Name
	}
	return "\"" + c.Input + "\""
}

type Suite struct {
	// Document is the path of the automaton, relative to the suite file.
	Document string `yaml:"document"`
	// Strict selects EvaluateStrict, which tells stuck automata apart.
	Strict bool   `yaml:"strict,omitempty"`
	Cases  []Case `yaml:"cases"`

	dir string
}

// Parse decodes a suite and checks every expectation.
func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "parsing suite")
	}
	for _, c := range s.Cases {
		if _, err := c.Want(); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func Load(path string) (*Suite, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading suite %q", path)
	}
	s, err := Parse(bs)
	if err != nil {
		return nil, errors.Wrapf(err, "suite %q", path)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// DocumentPath resolves Document against the directory of the suite file.
func (s *Suite) DocumentPath() string {
	if s.Document == "" || filepath.IsAbs(s.Document) {
		return s.Document
	}
	return filepath.Join(s.dir, s.Document)
}

// LoadDocument reads the document the suite refers to.
func (s *Suite) LoadDocument(m *Metrics) (*automaton.Document, error) {
	path := s.DocumentPath()
	if path == "" {
		return nil, errors.New("suite names no document")
	}
	doc, err := automaton.LoadFile(path)
	m.ObserveLoad(err)
	return doc, err
}

// Result is the outcome of one case.
type Result struct {
	Case Case
	Want automaton.Verdict
	Got  automaton.Verdict
}

func (r Result) Passed() bool { return r.Want == r.Got }

type Report struct {
	Results []Result
	Passed  int
	Failed  int
}

func (r Report) OK() bool { return r.Failed == 0 }

// Run evaluates every case against doc. m may be nil.
func (s *Suite) Run(doc *automaton.Document, m *Metrics) Report {
	evaluate := automaton.Evaluate
	if s.Strict {
		evaluate = automaton.EvaluateStrict
	}

	var rep Report
	for _, c := range s.Cases {
		// Parse already rejected bad expectations.
		want, _ := c.Want()
		res := Result{Case: c, Want: want, Got: evaluate(doc, c.Input)}
		m.ObserveEvaluation(res.Got)
		m.ObserveCase(res.Passed())
		if res.Passed() {
			rep.Passed++
		} else {
			rep.Failed++
			u.Debugf("case %v: want %v, got %v", c, res.Want, res.Got)
		}
		rep.Results = append(rep.Results, res)
	}
	return rep
}
