package automaton

import (
	"testing"

	u "github.com/araddon/gou"
)

func init() {
	u.SetupLogging("debug")
	u.SetColorOutput()
}

func check(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// containsA accepts the strings over {a,b} that contain at least one a.
func containsA(t *testing.T) *Document {
	t.Helper()
	b := NewBuilder()
	b.SetName("contains-a")
	check(t, b.SetAlphabetSize(2))
	check(t, b.SetStateCount(2))
	check(t, b.SetAlphabetSymbol(0, "a"))
	check(t, b.SetAlphabetSymbol(1, "b"))
	check(t, b.SetTransition("q0", 'a', "q1"))
	check(t, b.SetTransition("q0", 'b', "q0"))
	check(t, b.SetTransition("q1", 'a', "q1"))
	check(t, b.SetTransition("q1", 'b', "q0"))
	b.ToggleAcceptState("q1")
	doc, err := b.Build()
	check(t, err)
	return doc
}

// allStrings returns every string over alphabet up to length n.
func allStrings(alphabet string, n int) []string {
	out := []string{""}
	level := []string{""}
	for i := 0; i < n; i++ {
		var next []string
		for _, prefix := range level {
			for _, c := range alphabet {
				next = append(next, prefix+string(c))
			}
		}
		out = append(out, next...)
		level = next
	}
	return out
}
