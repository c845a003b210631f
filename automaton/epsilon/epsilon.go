// Package epsilon removes epsilon edges from an automaton.
package epsilon

import "github.com/nihei9/autore/automaton"

// Eliminate returns an NFA without epsilon edges accepting the same language as a.
// A state of the result is accepting iff its epsilon-closure contains an accepting state of a, and its
// destinations on a symbol are the closure of the symbol's successors of the closure. The start state is
// kept and unreachable states are trimmed.
func Eliminate(a *automaton.Automaton) (*automaton.Automaton, error) {
	if err := automaton.Validate(a, automaton.KindNFA); err != nil {
		return nil, err
	}

	closures := make([]*automaton.StateSet, a.NumStates())
	for _, s := range a.States() {
		closures[s] = automaton.EpsilonClosure(a, automaton.NewStateSet(s))
	}

	alphabet := a.Alphabet()
	b := automaton.New()
	for _, s := range a.States() {
		accepting := false
		for _, t := range closures[s].Set() {
			if a.IsAccepting(t) {
				accepting = true
				break
			}
		}
		b.AddState(accepting)
	}
	for _, s := range a.States() {
		for _, sym := range alphabet {
			dests := automaton.EpsilonClosure(a, automaton.Move(a, closures[s], automaton.Symbol(sym)))
			for _, to := range dests.Set() {
				if err := b.AddTransition(s, automaton.Symbol(sym), to); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := b.SetStart(a.Start()); err != nil {
		return nil, err
	}

	return automaton.Trim(b), nil
}
