package automaton

// Step is one transition taken while reading the input.
type Step struct {
	From   StateID
	Symbol Symbol
	To     StateID
}

// Run records a whole walk.
type Run struct {
	Steps []Step
	Final StateID
	// Stuck is the index (in characters) of the input character that had
	// no transition, or -1 when the whole input was read.
	Stuck   int
	Verdict Verdict
}

// Trace walks doc like Evaluate and keeps every step taken. Its verdict
// always equals Evaluate(doc, input).
func Trace(doc *Document, input string) Run {
	run := Run{Stuck: -1}
	if doc == nil {
		return run
	}
	current := doc.StartState
	i := 0
	for _, c := range input {
		next, ok := doc.Next(current, Symbol(c))
		if !ok {
			run.Final = current
			run.Stuck = i
			return run
		}
		run.Steps = append(run.Steps, Step{From: current, Symbol: Symbol(c), To: next})
		current = next
		i++
	}
	run.Final = current
	if doc.IsAccept(current) {
		run.Verdict = Accepted
	}
	return run
}
