package automaton

// EpsilonClosure returns the states reachable from the states of set through zero or more epsilon edges.
func EpsilonClosure(a *Automaton, set *StateSet) *StateSet {
	closure := NewStateSet()
	visited := map[StateID]struct{}{}
	stack := append([]StateID{}, set.Set()...)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[s]; ok {
			continue
		}
		visited[s] = struct{}{}
		closure.Add(s)
		if !a.exists(s) {
			continue
		}
		stack = append(stack, a.states[s].trans[Epsilon]...)
	}
	return closure
}

// Move returns the states reached from the states of set by one edge labeled l.
func Move(a *Automaton, set *StateSet, l Label) *StateSet {
	next := NewStateSet()
	for _, s := range set.Set() {
		if !a.exists(s) {
			continue
		}
		for _, to := range a.states[s].trans[l] {
			next.Add(to)
		}
	}
	return next
}
