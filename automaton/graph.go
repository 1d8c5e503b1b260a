package automaton

// CTL fixpoints over the successor graph of a document. The symbols on the
// edges are irrelevant here; only which states can follow which.

// Graph is a finite Kripke structure: states + successor relation.
type Graph struct {
	States []StateID
	Succ   map[StateID][]StateID // R(s) = Succ[s]
}

// NewGraph builds the successor graph of doc. Destinations that are not
// states of doc are left out, as are duplicate edges.
func NewGraph(doc *Document) *Graph {
	g := &Graph{
		States: doc.States(),
		Succ:   make(map[StateID][]StateID, doc.StateCount),
	}
	symbols := doc.Symbols()
	for _, s := range g.States {
		seen := NewStateSet()
		for _, c := range symbols {
			to, ok := doc.Next(s, c)
			if !ok || !doc.HasState(to) || seen.Has(to) {
				continue
			}
			seen.Add(to)
			g.Succ[s] = append(g.Succ[s], to)
		}
	}
	return g
}

// ----- State sets -----

type StateSet map[StateID]struct{}

func NewStateSet(ids ...StateID) StateSet {
	s := make(StateSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s StateSet) Has(id StateID) bool { _, ok := s[id]; return ok }
func (s StateSet) Add(id StateID)      { s[id] = struct{}{} }

func (s StateSet) Copy() StateSet {
	out := NewStateSet()
	for k := range s {
		out.Add(k)
	}
	return out
}

func (s StateSet) Equals(other StateSet) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if !other.Has(k) {
			return false
		}
	}
	return true
}

func (s StateSet) Intersect(other StateSet) StateSet {
	out := NewStateSet()
	for k := range s {
		if other.Has(k) {
			out.Add(k)
		}
	}
	return out
}

func (s StateSet) Union(other StateSet) StateSet {
	out := s.Copy()
	for k := range other {
		out.Add(k)
	}
	return out
}

func (s StateSet) Difference(other StateSet) StateSet {
	out := NewStateSet()
	for k := range s {
		if !other.Has(k) {
			out.Add(k)
		}
	}
	return out
}

// Ordered returns the members of s in the order they appear in states.
func (s StateSet) Ordered(states []StateID) []StateID {
	var out []StateID
	for _, id := range states {
		if s.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// Universe builds a set containing all states in the graph.
func Universe(g *Graph) StateSet {
	return NewStateSet(g.States...)
}

// PreE returns predecessors with SOME successor in W:
// PreE(W) = { s | ∃ s' . R(s,s') ∧ s' ∈ W }
func PreE(W StateSet, g *Graph) StateSet {
	out := NewStateSet()
	for s, succs := range g.Succ {
		for _, s2 := range succs {
			if W.Has(s2) {
				out.Add(s)
				break
			}
		}
	}
	return out
}

// ----- CTL Formula AST -----

// Formula is a CTL state formula.
// Sat(g) returns the set of states satisfying the formula in graph g.
type Formula interface {
	Sat(g *Graph) StateSet
}

// Atom is the set of states where a proposition holds, e.g. "accepting".
type Atom struct {
	States StateSet
}

func (a Atom) Sat(g *Graph) StateSet { return a.States.Intersect(Universe(g)) }

// Not: ¬φ
type Not struct {
	F Formula
}

func (n Not) Sat(g *Graph) StateSet {
	return Universe(g).Difference(n.F.Sat(g))
}

// EU(p, q): "there exists a path where p holds UNTIL q holds"
type EU struct {
	P, Q Formula
}

func (eu EU) Sat(g *Graph) StateSet {
	satP := eu.P.Sat(g)

	// Least fixpoint:
	// W0 = Sat(Q)
	// W_{i+1} = W_i ∪ (Sat(P) ∩ PreE(W_i))
	W := eu.Q.Sat(g)
	for {
		next := W.Union(PreE(W, g).Intersect(satP))
		if next.Equals(W) {
			return W
		}
		W = next
	}
}

// EF φ ≡ E[ true U φ ]
type EF struct {
	F Formula
}

func (ef EF) Sat(g *Graph) StateSet {
	return EU{P: Atom{States: Universe(g)}, Q: ef.F}.Sat(g)
}

// AG φ ≡ ¬EF ¬φ
type AG struct {
	F Formula
}

func (ag AG) Sat(g *Graph) StateSet {
	return Not{F: EF{F: Not{F: ag.F}}}.Sat(g)
}

// SatIn evaluates a formula and asks if a given state satisfies it.
func SatIn(f Formula, g *Graph, s StateID) bool {
	return f.Sat(g).Has(s)
}

// Reachable returns the states reachable from start, start included when it
// is a state of g.
func Reachable(g *Graph, start StateID) StateSet {
	out := NewStateSet()
	if !Universe(g).Has(start) {
		return out
	}
	out.Add(start)
	queue := []StateID{start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, next := range g.Succ[s] {
			if !out.Has(next) {
				out.Add(next)
				queue = append(queue, next)
			}
		}
	}
	return out
}
