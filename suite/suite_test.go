package suite

import (
	"os"
	"path/filepath"
	"testing"

	u "github.com/araddon/gou"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/automata/automaton"
)

func init() {
	u.SetupLogging("debug")
	u.SetColorOutput()
}

const parityJSON = `{
    "Nombre": "even-ones",
    "total-caracteres": 2,
    "total-estados": 2,
    "estado-inicio": "q0",
    "estados-finales": ["q0"],
    "q0": {"0": "q0", "1": "q1"},
    "q1": {"0": "q1", "1": "q0"}
}`

const paritySuite = `
document: even-ones.json
cases:
  - input: ""
    expect: accepted
  - input: "11"
    expect: accepted
  - name: single one
    input: "1"
    expect: rejected
  - input: "0110"
    expect: accepted
  - input: "2"
    expect: rejected
`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte(paritySuite))
	require.NoError(t, err)

	assert.Equal(t, "even-ones.json", s.Document)
	assert.False(t, s.Strict)
	require.Len(t, s.Cases, 5)
	assert.Equal(t, "single one", s.Cases[2].String())
	assert.Equal(t, `"11"`, s.Cases[1].String())
}

func TestParseBadExpectation(t *testing.T) {
	_, err := Parse([]byte("cases:\n  - input: a\n    expect: maybe\n"))
	assert.True(t, errors.Is(err, ErrBadExpectation), "got %v", err)

	_, err = Parse([]byte("cases: [\n"))
	assert.Error(t, err)
}

func TestLoadAndRun(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"even-ones.json": parityJSON,
		"suite.yaml":     paritySuite,
	})

	s, err := Load(filepath.Join(dir, "suite.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "even-ones.json"), s.DocumentPath())

	m := NewMetrics()
	doc, err := s.LoadDocument(m)
	require.NoError(t, err)

	rep := s.Run(doc, m)
	assert.True(t, rep.OK())
	assert.Equal(t, 5, rep.Passed)
	assert.Equal(t, 0, rep.Failed)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.evaluations.WithLabelValues("accepted")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.evaluations.WithLabelValues("rejected")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.cases.WithLabelValues("passed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues("success")))
}

func TestRunReportsFailures(t *testing.T) {
	doc, err := automaton.ParseDocument([]byte(parityJSON))
	require.NoError(t, err)

	s := &Suite{Cases: []Case{
		Expect("1", automaton.Accepted),
		Expect("0", automaton.Accepted),
	}}
	rep := s.Run(doc, nil)

	assert.False(t, rep.OK())
	assert.Equal(t, 1, rep.Passed)
	assert.Equal(t, 1, rep.Failed)
	assert.False(t, rep.Results[0].Passed())
	assert.Equal(t, automaton.Rejected, rep.Results[0].Got)
}

func TestRunStrict(t *testing.T) {
	doc, err := automaton.ParseDocument([]byte(`{"total-caracteres":2,"total-estados":1,"estado-inicio":"q0","estados-finales":["q0"],"q0":{"a":"q0","b":""}}`))
	require.NoError(t, err)

	lax := &Suite{Cases: []Case{Expect("ab", automaton.Rejected), Expect("c", automaton.Rejected)}}
	assert.True(t, lax.Run(doc, nil).OK())

	strict := &Suite{Strict: true, Cases: []Case{
		Expect("ab", automaton.Malformed),
		Expect("c", automaton.Malformed),
		Expect("aa", automaton.Accepted),
	}}
	assert.True(t, strict.Run(doc, nil).OK())
}

func TestLoadDocumentErrors(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"broken.json": `{"Nombre": 1}`,
		"suite.yaml":  "document: broken.json\n",
		"empty.yaml":  "cases: []\n",
	})
	m := NewMetrics()

	s, err := Load(filepath.Join(dir, "suite.yaml"))
	require.NoError(t, err)
	_, err = s.LoadDocument(m)
	assert.True(t, errors.Is(err, automaton.ErrMalformedDocument), "got %v", err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues("failure")))

	s, err = Load(filepath.Join(dir, "empty.yaml"))
	require.NoError(t, err)
	_, err = s.LoadDocument(m)
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestWriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.ObserveEvaluation(automaton.Accepted)
	m.ObserveCase(false)

	path := filepath.Join(t.TempDir(), "automata.prom")
	require.NoError(t, m.WriteTextfile(path))

	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(bs), `automata_evaluations_total{verdict="accepted"} 1`)
	assert.Contains(t, string(bs), `automata_suite_cases_total{result="failed"} 1`)

	var none *Metrics
	none.ObserveLoad(nil)
	assert.NoError(t, none.WriteTextfile(path))
}
