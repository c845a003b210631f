package automaton

import "fmt"

type Kind string

const (
	// KindNFA permits epsilon edges and multiple destinations.
	KindNFA Kind = "nfa"
	KindDFA Kind = "dfa"
)

// Validate checks that a is well formed as an automaton of the given kind.
func Validate(a *Automaton, kind Kind) error {
	if a.start == StateIDNil {
		return &MalformedAutomatonError{
			Cause: ErrNoStart,
			State: StateIDNil,
		}
	}
	if !a.exists(a.start) {
		return &MalformedAutomatonError{
			Cause:  ErrUnknownState,
			State:  a.start,
			Detail: "the start state does not exist",
		}
	}
	for _, from := range a.States() {
		for _, l := range a.Labels(from) {
			dests := a.states[from].trans[l]
			for _, to := range dests {
				if !a.exists(to) {
					return &MalformedAutomatonError{
						Cause:  ErrUnknownState,
						State:  from,
						Detail: fmt.Sprintf("destination %v of %v", to, l),
					}
				}
			}
			if kind != KindDFA {
				continue
			}
			if l.IsEpsilon() {
				return &MalformedAutomatonError{
					Cause: ErrEpsilonInDFA,
					State: from,
				}
			}
			if len(dests) > 1 {
				return &MalformedAutomatonError{
					Cause:  ErrNondeterministic,
					State:  from,
					Detail: fmt.Sprintf("%v has %v destinations", l, len(dests)),
				}
			}
		}
	}
	return nil
}
