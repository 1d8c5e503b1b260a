package automaton

import "github.com/pkg/errors"

// Builder holds the editing state of an automaton. Callers own it; nothing
// is shared between builders. Build freezes the current state into a
// Document without touching the builder.
type Builder struct {
	name     string
	alphabet []Symbol
	states   int
	table    Table
	start    StateID
	accept   []StateID
}

// NewBuilder returns a builder for one symbol and one state.
func NewBuilder() *Builder {
	b := &Builder{}
	b.reset(1, 1)
	return b
}

// reset discards every alphabet slot and transition and restores the
// default start and accept selection.
func (b *Builder) reset(symbols, states int) {
	b.alphabet = make([]Symbol, symbols)
	b.states = states
	b.table = make(Table, states)
	for i := 0; i < states; i++ {
		b.table[StateName(i)] = make(Row)
	}
	b.start = StateName(0)
	b.accept = nil
}

func (b *Builder) SetName(name string) { b.name = name }

// SetAlphabetSize changes the number of symbols. Any change is destructive:
// the alphabet, the table and the start and accept selection are reset.
func (b *Builder) SetAlphabetSize(n int) error {
	if n < 1 {
		return errors.Wrapf(ErrInvalidDimension, "alphabet size %d", n)
	}
	if n != len(b.alphabet) {
		b.reset(n, b.states)
	}
	return nil
}

// SetStateCount changes the number of states, with the same reset rules as
// SetAlphabetSize.
func (b *Builder) SetStateCount(n int) error {
	if n < 1 {
		return errors.Wrapf(ErrInvalidDimension, "state count %d", n)
	}
	if n != b.states {
		b.reset(len(b.alphabet), n)
	}
	return nil
}

// SetAlphabetSymbol fills slot index with the last character of value.
// Renaming a symbol that was already set moves its transitions in every
// row to the new symbol, or drops them when the slot is cleared. A value
// ending in U+0000 is refused and leaves the slot unchanged.
func (b *Builder) SetAlphabetSymbol(index int, value string) error {
	if index < 0 || index >= len(b.alphabet) {
		return errors.Wrapf(ErrSymbolIndex, "slot %d of %d", index, len(b.alphabet))
	}
	c := ParseSymbol(value)
	if c == NoSymbol && value != "" {
		return errors.Wrapf(ErrNoSymbol, "slot %d: U+0000 is reserved", index)
	}
	old := b.alphabet[index]
	b.alphabet[index] = c
	if old != c && old != NoSymbol {
		b.table = RekeySymbol(b.table, old, c)
	}
	return nil
}

// SetTransition records one cell. Neither state is checked here; Analyze
// reports bad targets.
func (b *Builder) SetTransition(from StateID, c Symbol, to StateID) error {
	if c == NoSymbol {
		return errors.Wrapf(ErrNoSymbol, "from %s", from)
	}
	row, ok := b.table[from]
	if !ok {
		row = make(Row)
		b.table[from] = row
	}
	row[c] = to
	return nil
}

func (b *Builder) SetStartState(s StateID) { b.start = s }

// ToggleAcceptState adds s to the accept states, or removes it when it is
// already there.
func (b *Builder) ToggleAcceptState(s StateID) {
	for i, a := range b.accept {
		if a == s {
			b.accept = append(b.accept[:i:i], b.accept[i+1:]...)
			return
		}
	}
	b.accept = append(b.accept, s)
}

func (b *Builder) Name() string            { return b.name }
func (b *Builder) AlphabetSize() int       { return len(b.alphabet) }
func (b *Builder) StateCount() int         { return b.states }
func (b *Builder) StartState() StateID     { return b.start }
func (b *Builder) Alphabet() []Symbol      { return append([]Symbol(nil), b.alphabet...) }
func (b *Builder) AcceptStates() []StateID { return append([]StateID(nil), b.accept...) }

// Transition returns the destination recorded for (from, c), "" when unset.
func (b *Builder) Transition(from StateID, c Symbol) StateID {
	return b.table[from][c]
}

// Build validates the alphabet and emits a document with one entry per
// declared state and symbol. Unset cells are written as "". Transitions left
// under symbols that are no longer in the alphabet are not carried over.
func (b *Builder) Build() (*Document, error) {
	for i, c := range b.alphabet {
		if c == NoSymbol {
			return nil, errors.Wrapf(ErrIncompleteAlphabet, "slot %d is empty", i)
		}
	}
	slot := make(map[Symbol]int, len(b.alphabet))
	for i, c := range b.alphabet {
		if j, dup := slot[c]; dup {
			return nil, errors.Wrapf(ErrDuplicateSymbol, "%q in slots %d and %d", c.String(), j, i)
		}
		slot[c] = i
	}

	doc := &Document{
		Name:         b.name,
		AlphabetSize: len(b.alphabet),
		StateCount:   b.states,
		StartState:   b.start,
		AcceptStates: b.AcceptStates(),
		Alphabet:     b.Alphabet(),
		Transitions:  make(Table, b.states),
	}
	if doc.Name == "" {
		doc.Name = DefaultName
	}
	for i := 0; i < b.states; i++ {
		s := StateName(i)
		row := make(Row, len(b.alphabet))
		for _, c := range b.alphabet {
			row[c] = b.table[s][c]
		}
		doc.Transitions[s] = row
	}
	return doc, nil
}
