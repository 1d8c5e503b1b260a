package automaton

import "sort"

// DefaultName is used when an automaton is saved without a name.
const DefaultName = "Untitled Automaton"

// Row maps each symbol to the destination state.
type Row map[Symbol]StateID

// Table is the transition function, one row per state.
type Table map[StateID]Row

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for s, row := range t {
		r := make(Row, len(row))
		for c, to := range row {
			r[c] = to
		}
		out[s] = r
	}
	return out
}

// Document is the frozen, serializable form of an automaton. It is never
// mutated by the evaluator.
type Document struct {
	Name         string
	AlphabetSize int
	StateCount   int
	StartState   StateID
	AcceptStates []StateID
	// Alphabet keeps the symbol order used when writing rows.
	Alphabet    []Symbol
	Transitions Table
}

// States returns q0..q{n-1}.
func (d *Document) States() []StateID {
	out := make([]StateID, d.StateCount)
	for i := range out {
		out[i] = StateName(i)
	}
	return out
}

// HasState reports whether s is one of the declared states.
func (d *Document) HasState(s StateID) bool {
	return inRange(s, d.StateCount)
}

func (d *Document) IsAccept(s StateID) bool {
	for _, a := range d.AcceptStates {
		if a == s {
			return true
		}
	}
	return false
}

// Next looks up the transition for (s, c). Missing rows and missing
// entries both report false.
func (d *Document) Next(s StateID, c Symbol) (StateID, bool) {
	row, ok := d.Transitions[s]
	if !ok {
		return "", false
	}
	to, ok := row[c]
	return to, ok
}

// Symbols returns the alphabet in row order: the declared Alphabet first,
// then any symbol only found in the table, sorted.
func (d *Document) Symbols() []Symbol {
	seen := make(map[Symbol]bool, len(d.Alphabet))
	out := make([]Symbol, 0, len(d.Alphabet))
	for _, c := range d.Alphabet {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	var extra []Symbol
	for _, row := range d.Transitions {
		for c := range row {
			if !seen[c] {
				seen[c] = true
				extra = append(extra, c)
			}
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

func (d *Document) Clone() *Document {
	out := *d
	out.AcceptStates = append([]StateID(nil), d.AcceptStates...)
	out.Alphabet = append([]Symbol(nil), d.Alphabet...)
	out.Transitions = d.Transitions.Clone()
	return &out
}
