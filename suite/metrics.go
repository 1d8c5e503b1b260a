package suite

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rfielding/automata/automaton"
)

// Metrics counts evaluations, suite cases and document loads. All methods
// are no-ops on a nil *Metrics.
type Metrics struct {
	registry    *prometheus.Registry
	evaluations *prometheus.CounterVec
	cases       *prometheus.CounterVec
	loads       *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "automata",
			Name:      "evaluations_total",
			Help:      "Number of input strings evaluated, by verdict.",
		}, []string{"verdict"}),
		cases: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "automata",
			Subsystem: "suite",
			Name:      "cases_total",
			Help:      "Number of suite cases run, by result.",
		}, []string{"result"}),
		loads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "automata",
			Name:      "documents_loaded_total",
			Help:      "Number of document loads, by result.",
		}, []string{"result"}),
	}
}

func (m *Metrics) ObserveEvaluation(v automaton.Verdict) {
	if m == nil {
		return
	}
	m.evaluations.WithLabelValues(v.String()).Inc()
}

func (m *Metrics) ObserveCase(passed bool) {
	if m == nil {
		return
	}
	result := "failed"
	if passed {
		result = "passed"
	}
	m.cases.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveLoad(err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.loads.WithLabelValues(result).Inc()
}

// WriteTextfile dumps the counters in the text exposition format, for the
// node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
