package containsa

import (
	"github.com/rfielding/automata/automaton"
	"github.com/rfielding/automata/suite"
)

// Model accepts the strings over {a, b} containing at least one a.
type Model struct{}

func (Model) Name() string { return "contains-a" }

func (Model) Description() string {
	return "Strings over {a, b} that contain at least one a. q1 remembers that an a was read; reading b from q1 goes back to q0."
}

func (Model) Build() (*automaton.Document, error) {
	b := automaton.NewBuilder()
	b.SetName("contains-a")
	steps := []error{
		b.SetAlphabetSize(2),
		b.SetStateCount(2),
		b.SetAlphabetSymbol(0, "a"),
		b.SetAlphabetSymbol(1, "b"),
		b.SetTransition("q0", 'a', "q1"),
		b.SetTransition("q0", 'b', "q0"),
		b.SetTransition("q1", 'a', "q1"),
		b.SetTransition("q1", 'b', "q0"),
	}
	for _, err := range steps {
		if err != nil {
			return nil, err
		}
	}
	b.ToggleAcceptState("q1")
	return b.Build()
}

func (Model) Cases() []suite.Case {
	return []suite.Case{
		suite.Expect("", automaton.Rejected),
		suite.Expect("b", automaton.Rejected),
		suite.Expect("ba", automaton.Accepted),
		suite.Expect("bbbb", automaton.Rejected),
		suite.Expect("abba", automaton.Accepted),
	}
}
