package suite

import "github.com/rfielding/automata/automaton"

// ModelSpec is the small API that bundled example automata implement.
type ModelSpec interface {
	Name() string
	Description() string
	Build() (*automaton.Document, error)
	Cases() []Case
}

// FromModel returns a suite with the model's own cases. The document path
// is the file name the model is saved under.
func FromModel(m ModelSpec) *Suite {
	return &Suite{
		Document: automaton.FileName(m.Name()),
		Cases:    m.Cases(),
	}
}
