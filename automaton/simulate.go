package automaton

// Accepts reports whether a accepts input. It works on any automaton, following epsilon edges as needed.
func Accepts(a *Automaton, input string) bool {
	if !a.exists(a.start) {
		return false
	}
	current := EpsilonClosure(a, NewStateSet(a.start))
	for _, c := range input {
		current = EpsilonClosure(a, Move(a, current, Symbol(c)))
		if current.Len() == 0 {
			return false
		}
	}
	for _, s := range current.Set() {
		if a.states[s].accepting {
			return true
		}
	}
	return false
}
