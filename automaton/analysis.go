package automaton

// Cell is one (state, symbol) entry of the transition table.
type Cell struct {
	From   StateID
	Symbol Symbol
	To     StateID
}

// Report summarizes structural problems of a document. It is diagnostic
// only: evaluation does not depend on it.
type Report struct {
	Reachable   []StateID
	Unreachable []StateID
	// Dead states are reachable but can never lead to an accept state.
	Dead []StateID
	// Missing cells are absent or hold the empty placeholder.
	Missing        []Cell
	InvalidTargets []Cell
	// UnknownSymbols counts declared symbols that appear in no row.
	UnknownSymbols int
	Complete       bool
	// Empty is true when no string is accepted.
	Empty bool
	// Universal is true when every string over the alphabet is accepted.
	Universal bool
}

func Analyze(doc *Document) Report {
	var r Report
	states := doc.States()
	symbols := doc.Symbols()

	for _, s := range states {
		for _, c := range symbols {
			to, ok := doc.Next(s, c)
			switch {
			case !ok || to == "":
				r.Missing = append(r.Missing, Cell{From: s, Symbol: c})
			case !doc.HasState(to):
				r.InvalidTargets = append(r.InvalidTargets, Cell{From: s, Symbol: c, To: to})
			}
		}
	}
	if n := doc.AlphabetSize - len(symbols); n > 0 {
		r.UnknownSymbols = n
	}
	r.Complete = len(r.Missing) == 0 && len(r.InvalidTargets) == 0 && r.UnknownSymbols == 0

	g := NewGraph(doc)
	accepting := Atom{States: NewStateSet(doc.AcceptStates...)}
	reachable := Reachable(g, doc.StartState)
	live := EF{F: accepting}.Sat(g)

	r.Reachable = reachable.Ordered(states)
	r.Unreachable = Universe(g).Difference(reachable).Ordered(states)
	r.Dead = reachable.Difference(live).Ordered(states)
	r.Empty = !live.Has(doc.StartState)
	r.Universal = r.Complete && SatIn(AG{F: accepting}, g, doc.StartState)
	return r
}
