package automaton

// Verdict classifies an input string.
type Verdict int

const (
	Rejected Verdict = iota
	Accepted
	// Malformed is only returned by EvaluateStrict.
	Malformed
)

func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	case Malformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// ParseVerdict is the inverse of Verdict.String.
func ParseVerdict(s string) (Verdict, bool) {
	switch s {
	case "accepted":
		return Accepted, true
	case "rejected":
		return Rejected, true
	case "malformed":
		return Malformed, true
	}
	return Rejected, false
}

// Evaluate walks doc over the characters of input. A missing row or a
// missing entry for the current character rejects the string right away,
// exactly like an ordinary dead end. Evaluate never fails.
func Evaluate(doc *Document, input string) Verdict {
	if doc == nil {
		return Rejected
	}
	current := doc.StartState
	for _, c := range input {
		next, ok := doc.Next(current, Symbol(c))
		if !ok {
			return Rejected
		}
		current = next
	}
	if doc.IsAccept(current) {
		return Accepted
	}
	return Rejected
}

// EvaluateStrict is Evaluate with a separate verdict for automata that get
// stuck: a start state that is not a state, a step with no entry, or a step
// into something that is not a state yields Malformed. Walks that consume
// the whole input still end in Accepted or Rejected.
func EvaluateStrict(doc *Document, input string) Verdict {
	if doc == nil || !doc.HasState(doc.StartState) {
		return Malformed
	}
	current := doc.StartState
	for _, c := range input {
		next, ok := doc.Next(current, Symbol(c))
		if !ok || !doc.HasState(next) {
			return Malformed
		}
		current = next
	}
	if doc.IsAccept(current) {
		return Accepted
	}
	return Rejected
}
