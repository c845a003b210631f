package spec

import (
	"fmt"
	"unicode/utf8"

	"github.com/nihei9/autore/automaton"
	verr "github.com/nihei9/autore/error"
)

const (
	KindENFA = "enfa"
	KindNFA  = "nfa"
	KindDFA  = "dfa"
)

// Automaton is the JSON description of an automaton. It is what the export of every pipeline stage
// consists of, and it can be read back with Build.
type Automaton struct {
	Kind        string        `json:"kind"`
	Start       int           `json:"start"`
	States      []*State      `json:"states"`
	Transitions []*Transition `json:"transitions"`
}

type State struct {
	ID        int  `json:"id"`
	Accepting bool `json:"accepting"`
}

// Transition is an edge of an automaton. Label holds exactly one symbol unless Epsilon is true.
type Transition struct {
	From    int    `json:"from"`
	To      int    `json:"to"`
	Label   string `json:"label,omitempty"`
	Epsilon bool   `json:"epsilon,omitempty"`
}

// Describe returns the description of a. Kind is the most specific of enfa, nfa, and dfa that a satisfies.
func Describe(a *automaton.Automaton) *Automaton {
	kind := KindENFA
	switch {
	case a.IsDeterministic():
		kind = KindDFA
	case !a.HasEpsilon():
		kind = KindNFA
	}

	states := make([]*State, a.NumStates())
	for i, s := range a.States() {
		states[i] = &State{
			ID:        s.Int(),
			Accepting: a.IsAccepting(s),
		}
	}
	var trans []*Transition
	for _, t := range a.Transitions() {
		tr := &Transition{
			From: t.From.Int(),
			To:   t.To.Int(),
		}
		if sym, ok := t.Label.Rune(); ok {
			tr.Label = string(sym)
		} else {
			tr.Epsilon = true
		}
		trans = append(trans, tr)
	}

	return &Automaton{
		Kind:        kind,
		Start:       a.Start().Int(),
		States:      states,
		Transitions: trans,
	}
}

// Build constructs the automaton d describes. State IDs must be 0, 1, ... in order.
func (d *Automaton) Build() (*automaton.Automaton, error) {
	switch d.Kind {
	case KindENFA, KindNFA, KindDFA:
	default:
		return nil, &verr.SpecError{
			Cause:  semErrInvalidKind,
			Detail: d.Kind,
		}
	}

	a := automaton.New()
	for i, s := range d.States {
		if s.ID != i {
			return nil, &verr.SpecError{
				Cause:  semErrUnknownState,
				Detail: fmt.Sprintf("state #%v has ID %v", i, s.ID),
			}
		}
		a.AddState(s.Accepting)
	}
	if err := a.SetStart(automaton.StateID(d.Start)); err != nil {
		return nil, &verr.SpecError{
			Cause:  semErrUnknownState,
			Detail: fmt.Sprintf("start %v", d.Start),
		}
	}
	for _, t := range d.Transitions {
		label := automaton.Epsilon
		if !t.Epsilon {
			sym, size := utf8.DecodeRuneInString(t.Label)
			if sym == utf8.RuneError || size != len(t.Label) {
				return nil, &verr.SpecError{
					Cause:  semErrInvalidLabel,
					Detail: fmt.Sprintf("%q", t.Label),
				}
			}
			label = automaton.Symbol(sym)
		}
		if err := a.AddTransition(automaton.StateID(t.From), label, automaton.StateID(t.To)); err != nil {
			return nil, &verr.SpecError{
				Cause:  semErrUnknownState,
				Detail: fmt.Sprintf("transition %v -> %v", t.From, t.To),
			}
		}
	}

	kind := automaton.KindNFA
	if d.Kind == KindDFA {
		kind = automaton.KindDFA
	}
	if err := automaton.Validate(a, kind); err != nil {
		return nil, err
	}
	return a, nil
}
