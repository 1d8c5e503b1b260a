package automaton

import (
	"testing"

	"github.com/d4l3k/messagediff"
)

func TestAnalyzeComplete(t *testing.T) {
	r := Analyze(containsA(t))

	if !r.Complete || r.Empty || r.Universal {
		t.Errorf("Expected complete, non-empty, non-universal automaton, got %+v", r)
	}
	if len(r.Unreachable) != 0 || len(r.Dead) != 0 {
		t.Errorf("Expected no unreachable or dead states, got %v %v", r.Unreachable, r.Dead)
	}
	if diff, equal := messagediff.PrettyDiff([]StateID{"q0", "q1"}, r.Reachable); !equal {
		t.Errorf("Unexpected reachable states, diff:\n%s", diff)
	}
}

func TestAnalyzeProblems(t *testing.T) {
	doc := &Document{
		AlphabetSize: 3,
		StateCount:   4,
		StartState:   "q0",
		AcceptStates: []StateID{"q3"},
		Alphabet:     []Symbol{'a', 'b'},
		Transitions: Table{
			"q0": {'a': "q1", 'b': "q7"},
			"q1": {'a': "q1", 'b': ""},
			"q2": {'a': "q3", 'b': "q3"},
			"q3": {'a': "q3"},
		},
	}
	r := Analyze(doc)

	if r.Complete {
		t.Error("Expected incomplete automaton")
	}
	if !r.Empty {
		t.Error("Expected empty language: q3 is unreachable")
	}
	if r.UnknownSymbols != 1 {
		t.Errorf("Expected 1 unknown symbol, got %d", r.UnknownSymbols)
	}
	if diff, equal := messagediff.PrettyDiff([]StateID{"q2", "q3"}, r.Unreachable); !equal {
		t.Errorf("Unexpected unreachable states, diff:\n%s", diff)
	}
	if diff, equal := messagediff.PrettyDiff([]StateID{"q0", "q1"}, r.Dead); !equal {
		t.Errorf("Unexpected dead states, diff:\n%s", diff)
	}
	wantMissing := []Cell{{From: "q1", Symbol: 'b'}, {From: "q3", Symbol: 'b'}}
	if diff, equal := messagediff.PrettyDiff(wantMissing, r.Missing); !equal {
		t.Errorf("Unexpected missing cells, diff:\n%s", diff)
	}
	wantInvalid := []Cell{{From: "q0", Symbol: 'b', To: "q7"}}
	if diff, equal := messagediff.PrettyDiff(wantInvalid, r.InvalidTargets); !equal {
		t.Errorf("Unexpected invalid targets, diff:\n%s", diff)
	}
}

func TestAnalyzeUniversal(t *testing.T) {
	doc := containsA(t)
	doc.AcceptStates = []StateID{"q0", "q1"}
	if r := Analyze(doc); !r.Universal {
		t.Errorf("Expected universal language, got %+v", r)
	}

	// Accepting everything reachable is not enough when a cell is missing.
	doc.Transitions["q1"]['b'] = ""
	if r := Analyze(doc); r.Universal {
		t.Error("Expected incomplete automaton not to be universal")
	}
}

func TestEF(t *testing.T) {
	// States: q0 -> q1 -> q2 -> q2 (self-loop), q3 isolated
	g := &Graph{
		States: []StateID{"q0", "q1", "q2", "q3"},
		Succ: map[StateID][]StateID{
			"q0": {"q1"},
			"q1": {"q2"},
			"q2": {"q2"},
		},
	}
	ef := EF{F: Atom{States: NewStateSet("q2")}}
	for _, s := range []StateID{"q0", "q1", "q2"} {
		if !SatIn(ef, g, s) {
			t.Errorf("Expected %s |= EF q2", s)
		}
	}
	if SatIn(ef, g, "q3") {
		t.Error("Expected q3 not to satisfy EF q2")
	}

	ag := AG{F: Atom{States: NewStateSet("q1", "q2")}}
	if !SatIn(ag, g, "q1") || SatIn(ag, g, "q0") {
		t.Error("Expected AG {q1,q2} to hold in q1 only among q0, q1")
	}
}

func TestNewGraphDropsBadEdges(t *testing.T) {
	doc := &Document{
		AlphabetSize: 2,
		StateCount:   2,
		StartState:   "q0",
		Alphabet:     []Symbol{'a', 'b'},
		Transitions: Table{
			"q0": {'a': "q1", 'b': "q1"},
			"q1": {'a': "x", 'b': ""},
		},
	}
	g := NewGraph(doc)
	if diff, equal := messagediff.PrettyDiff([]StateID{"q1"}, g.Succ["q0"]); !equal {
		t.Errorf("Expected one deduplicated edge, diff:\n%s", diff)
	}
	if len(g.Succ["q1"]) != 0 {
		t.Errorf("Expected no edges out of q1, got %v", g.Succ["q1"])
	}
	if !Reachable(g, "q9").Equals(NewStateSet()) {
		t.Error("Expected nothing reachable from a non-state")
	}
}
