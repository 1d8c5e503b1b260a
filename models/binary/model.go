package binary

import (
	"strconv"

	"github.com/rfielding/automata/automaton"
	"github.com/rfielding/automata/suite"
)

// Divisor is the number the accepted binary numerals are multiples of.
const Divisor = 3

// Model accepts binary numerals, most significant bit first, whose value is
// a multiple of Divisor. State qr means "remainder r so far".
type Model struct{}

func (Model) Name() string { return "numerosBinarios" }

func (Model) Description() string {
	return "Binary numerals divisible by " + strconv.Itoa(Divisor) + "; the empty numeral counts as zero."
}

func (Model) Build() (*automaton.Document, error) {
	b := automaton.NewBuilder()
	b.SetName("numerosBinarios")
	if err := b.SetAlphabetSize(2); err != nil {
		return nil, err
	}
	if err := b.SetStateCount(Divisor); err != nil {
		return nil, err
	}
	for i, c := range []string{"0", "1"} {
		if err := b.SetAlphabetSymbol(i, c); err != nil {
			return nil, err
		}
	}
	for r := 0; r < Divisor; r++ {
		for d, c := range []automaton.Symbol{'0', '1'} {
			to := automaton.StateName((2*r + d) % Divisor)
			if err := b.SetTransition(automaton.StateName(r), c, to); err != nil {
				return nil, err
			}
		}
	}
	b.ToggleAcceptState(automaton.StateName(0))
	return b.Build()
}

func (Model) Cases() []suite.Case {
	var cases []suite.Case
	for n := 0; n <= 12; n++ {
		v := automaton.Rejected
		if n%Divisor == 0 {
			v = automaton.Accepted
		}
		cases = append(cases, suite.Expect(strconv.FormatInt(int64(n), 2), v))
	}
	return append(cases, suite.Expect("", automaton.Accepted), suite.Expect("12", automaton.Rejected))
}
