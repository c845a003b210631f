// Package subset converts NFAs into DFAs by the subset construction.
package subset

import (
	"github.com/nihei9/autore/automaton"
)

type Option func(c *constructor)

// Total makes Determinize produce a total transition function. A single non-accepting sink state
// absorbs every undefined transition and loops on every symbol. The sink is only added when some
// transition is undefined.
func Total() Option {
	return func(c *constructor) {
		c.total = true
	}
}

type constructor struct {
	total bool
}

// Determinize returns a DFA accepting the same language as a. a may have epsilon edges.
// DFA states are numbered in discovery order, visiting symbols in ascending order.
func Determinize(a *automaton.Automaton, opts ...Option) (*automaton.Automaton, error) {
	c := &constructor{}
	for _, opt := range opts {
		opt(c)
	}

	if err := automaton.Validate(a, automaton.KindNFA); err != nil {
		return nil, err
	}

	alphabet := a.Alphabet()
	dfa := automaton.New()
	hash2ID := map[string]automaton.StateID{}
	var queue []*automaton.StateSet

	addState := func(set *automaton.StateSet) automaton.StateID {
		h := set.Hash()
		if id, ok := hash2ID[h]; ok {
			return id
		}
		accepting := false
		for _, s := range set.Set() {
			if a.IsAccepting(s) {
				accepting = true
				break
			}
		}
		id := dfa.AddState(accepting)
		hash2ID[h] = id
		queue = append(queue, set)
		return id
	}

	start := addState(automaton.EpsilonClosure(a, automaton.NewStateSet(a.Start())))
	if err := dfa.SetStart(start); err != nil {
		return nil, err
	}
	for len(queue) > 0 {
		set := queue[0]
		queue = queue[1:]
		from := hash2ID[set.Hash()]
		for _, sym := range alphabet {
			next := automaton.EpsilonClosure(a, automaton.Move(a, set, automaton.Symbol(sym)))
			if next.Len() == 0 {
				continue
			}
			to := addState(next)
			if err := dfa.AddTransition(from, automaton.Symbol(sym), to); err != nil {
				return nil, err
			}
		}
	}

	if c.total {
		return complete(dfa, alphabet)
	}
	return dfa, nil
}

// Complete returns a total copy of the DFA a over its own alphabet.
func Complete(a *automaton.Automaton) (*automaton.Automaton, error) {
	if err := automaton.Validate(a, automaton.KindDFA); err != nil {
		return nil, err
	}
	return complete(a.Clone(), a.Alphabet())
}

// complete adds a sink state to a when some transition over alphabet is undefined. It modifies a.
func complete(a *automaton.Automaton, alphabet []rune) (*automaton.Automaton, error) {
	sink := automaton.StateIDNil
	for _, s := range a.States() {
		for _, sym := range alphabet {
			if len(a.Destinations(s, automaton.Symbol(sym))) > 0 {
				continue
			}
			if sink == automaton.StateIDNil {
				sink = a.AddState(false)
				for _, sym := range alphabet {
					if err := a.AddTransition(sink, automaton.Symbol(sym), sink); err != nil {
						return nil, err
					}
				}
			}
			if err := a.AddTransition(s, automaton.Symbol(sym), sink); err != nil {
				return nil, err
			}
		}
	}
	return a, nil
}

// Complement returns a total DFA accepting exactly the strings over the alphabet of a that a rejects.
func Complement(a *automaton.Automaton) (*automaton.Automaton, error) {
	b, err := Complete(a)
	if err != nil {
		return nil, err
	}
	for _, s := range b.States() {
		if err := b.SetAccepting(s, !b.IsAccepting(s)); err != nil {
			return nil, err
		}
	}
	return b, nil
}
