package automaton

import (
	"testing"

	"github.com/d4l3k/messagediff"
)

func TestRekeySymbol(t *testing.T) {
	in := Table{
		"q0": {'a': "q1", 'b': "q0"},
		"q1": {'a': "q1"},
		"q2": {'b': "q2"},
	}
	out := RekeySymbol(in, 'a', 'c')

	want := Table{
		"q0": {'c': "q1", 'b': "q0"},
		"q1": {'c': "q1"},
		"q2": {'b': "q2"},
	}
	if diff, equal := messagediff.PrettyDiff(want, out); !equal {
		t.Errorf("Unexpected table, diff:\n%s", diff)
	}
	if in["q0"]['a'] != "q1" || len(in["q1"]) != 1 {
		t.Error("Expected input table to be left unchanged")
	}
}

func TestRekeySymbolOverwrites(t *testing.T) {
	out := RekeySymbol(Table{"q0": {'a': "q1", 'b': "q0"}}, 'a', 'b')
	if diff, equal := messagediff.PrettyDiff(Table{"q0": {'b': "q1"}}, out); !equal {
		t.Errorf("Expected renamed entry to win, diff:\n%s", diff)
	}
}

func TestRekeySymbolDrop(t *testing.T) {
	out := RekeySymbol(Table{"q0": {'a': "q1", 'b': "q0"}}, 'a', NoSymbol)
	if diff, equal := messagediff.PrettyDiff(Table{"q0": {'b': "q0"}}, out); !equal {
		t.Errorf("Expected entry to be dropped, diff:\n%s", diff)
	}
}

func TestRekeySymbolSame(t *testing.T) {
	in := Table{"q0": {'a': "q1"}}
	out := RekeySymbol(in, 'a', 'a')
	if diff, equal := messagediff.PrettyDiff(in, out); !equal {
		t.Errorf("Expected identical table, diff:\n%s", diff)
	}
	out["q0"]['a'] = "q9"
	if in["q0"]['a'] != "q1" {
		t.Error("Expected a copy even when nothing is renamed")
	}
}
