package automaton

// Trim returns a copy of a without the states unreachable from the start state. The states of the copy
// are numbered in breadth-first order from the start, visiting labels and destinations in ascending
// order, so automata that differ only in numbering and unreachable parts trim to the same result.
// An automaton without a start state is returned as a copy.
func Trim(a *Automaton) *Automaton {
	if !a.exists(a.start) {
		return a.Clone()
	}

	old2New := map[StateID]StateID{
		a.start: 0,
	}
	order := []StateID{a.start}
	for i := 0; i < len(order); i++ {
		s := order[i]
		for _, l := range a.Labels(s) {
			for _, to := range a.states[s].trans[l] {
				if _, ok := old2New[to]; ok {
					continue
				}
				old2New[to] = StateID(len(order))
				order = append(order, to)
			}
		}
	}

	return rebuild(a, order, old2New)
}

// CoTrim returns a copy of a without the states from which no accepting state is reachable.
// The start state is always kept. The remaining states keep their relative order.
func CoTrim(a *Automaton) *Automaton {
	reverse := make([][]StateID, len(a.states))
	for from, s := range a.states {
		for _, dests := range s.trans {
			for _, to := range dests {
				reverse[to] = append(reverse[to], StateID(from))
			}
		}
	}

	live := make([]bool, len(a.states))
	stack := a.Accepting()
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if live[s] {
			continue
		}
		live[s] = true
		stack = append(stack, reverse[s]...)
	}
	if a.exists(a.start) {
		live[a.start] = true
	}

	old2New := map[StateID]StateID{}
	var order []StateID
	for i, ok := range live {
		if !ok {
			continue
		}
		old2New[StateID(i)] = StateID(len(order))
		order = append(order, StateID(i))
	}

	return rebuild(a, order, old2New)
}

// rebuild copies the states listed in order. Edges to states missing from old2New are dropped.
func rebuild(a *Automaton, order []StateID, old2New map[StateID]StateID) *Automaton {
	b := New()
	for _, s := range order {
		b.AddState(a.states[s].accepting)
	}
	for _, s := range order {
		from := old2New[s]
		for l, dests := range a.states[s].trans {
			for _, to := range dests {
				newTo, ok := old2New[to]
				if !ok {
					continue
				}
				if err := b.AddTransition(from, l, newTo); err != nil {
					// Both ends were added above.
					panic(err)
				}
			}
		}
	}
	if start, ok := old2New[a.start]; ok {
		b.start = start
	}
	return b
}
