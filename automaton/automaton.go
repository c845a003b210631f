package automaton

import (
	"fmt"
	"sort"
)

type StateID int

const StateIDNil = StateID(-1)

func (id StateID) Int() int {
	return int(id)
}

type state struct {
	accepting bool

	// trans maps a label to its destinations. Each destination slice is sorted and has no duplicates.
	trans map[Label][]StateID
}

// Automaton is a finite automaton whose states are identified by dense indices 0..n-1.
// The same type represents epsilon-NFAs, NFAs, and DFAs; IsDeterministic and HasEpsilon tell them apart.
type Automaton struct {
	states []*state
	start  StateID
}

func New() *Automaton {
	return &Automaton{
		start: StateIDNil,
	}
}

// Transition is a single edge of an automaton.
type Transition struct {
	From  StateID
	Label Label
	To    StateID
}

func (t Transition) String() string {
	return fmt.Sprintf("%v -%v-> %v", t.From, t.Label, t.To)
}

func (a *Automaton) AddState(accepting bool) StateID {
	a.states = append(a.states, &state{
		accepting: accepting,
		trans:     map[Label][]StateID{},
	})
	return StateID(len(a.states) - 1)
}

func (a *Automaton) exists(s StateID) bool {
	return s >= 0 && int(s) < len(a.states)
}

func (a *Automaton) SetStart(s StateID) error {
	if !a.exists(s) {
		return fmt.Errorf("%w: %v", ErrUnknownState, s)
	}
	a.start = s
	return nil
}

func (a *Automaton) SetAccepting(s StateID, accepting bool) error {
	if !a.exists(s) {
		return fmt.Errorf("%w: %v", ErrUnknownState, s)
	}
	a.states[s].accepting = accepting
	return nil
}

// AddTransition adds an edge from `from` to `to`. Adding an existing edge is a no-op.
func (a *Automaton) AddTransition(from StateID, l Label, to StateID) error {
	if !a.exists(from) {
		return fmt.Errorf("%w: %v", ErrUnknownState, from)
	}
	if !a.exists(to) {
		return fmt.Errorf("%w: %v", ErrUnknownState, to)
	}
	dests := a.states[from].trans[l]
	i := sort.Search(len(dests), func(i int) bool {
		return dests[i] >= to
	})
	if i < len(dests) && dests[i] == to {
		return nil
	}
	dests = append(dests, StateIDNil)
	copy(dests[i+1:], dests[i:])
	dests[i] = to
	a.states[from].trans[l] = dests
	return nil
}

func (a *Automaton) NumStates() int {
	return len(a.states)
}

// States returns every state in ascending order.
func (a *Automaton) States() []StateID {
	ids := make([]StateID, len(a.states))
	for i := range a.states {
		ids[i] = StateID(i)
	}
	return ids
}

// Start returns the start state, or StateIDNil when none is set.
func (a *Automaton) Start() StateID {
	return a.start
}

func (a *Automaton) IsAccepting(s StateID) bool {
	if !a.exists(s) {
		return false
	}
	return a.states[s].accepting
}

// Accepting returns the accepting states in ascending order.
func (a *Automaton) Accepting() []StateID {
	var ids []StateID
	for i, s := range a.states {
		if s.accepting {
			ids = append(ids, StateID(i))
		}
	}
	return ids
}

// Alphabet returns the symbols used by the transitions in ascending order.
func (a *Automaton) Alphabet() []rune {
	seen := map[rune]struct{}{}
	var syms []rune
	for _, s := range a.states {
		for l := range s.trans {
			sym, ok := l.Rune()
			if !ok {
				continue
			}
			if _, ok := seen[sym]; ok {
				continue
			}
			seen[sym] = struct{}{}
			syms = append(syms, sym)
		}
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}

// Labels returns the labels of the edges leaving s in the order defined by Label.Less.
func (a *Automaton) Labels(s StateID) []Label {
	if !a.exists(s) {
		return nil
	}
	ls := make([]Label, 0, len(a.states[s].trans))
	for l := range a.states[s].trans {
		ls = append(ls, l)
	}
	sort.Slice(ls, func(i, j int) bool {
		return ls[i].Less(ls[j])
	})
	return ls
}

// Destinations returns the states reached from s by an edge labeled l in ascending order.
func (a *Automaton) Destinations(s StateID, l Label) []StateID {
	if !a.exists(s) {
		return nil
	}
	dests := a.states[s].trans[l]
	if len(dests) == 0 {
		return nil
	}
	return append([]StateID{}, dests...)
}

// Transitions returns every edge ordered by source, label, and destination.
func (a *Automaton) Transitions() []Transition {
	var ts []Transition
	for _, from := range a.States() {
		for _, l := range a.Labels(from) {
			for _, to := range a.states[from].trans[l] {
				ts = append(ts, Transition{
					From:  from,
					Label: l,
					To:    to,
				})
			}
		}
	}
	return ts
}

func (a *Automaton) NumTransitions() int {
	n := 0
	for _, s := range a.states {
		for _, dests := range s.trans {
			n += len(dests)
		}
	}
	return n
}

func (a *Automaton) HasEpsilon() bool {
	for _, s := range a.states {
		if len(s.trans[Epsilon]) > 0 {
			return true
		}
	}
	return false
}

// IsDeterministic reports whether a has no epsilon edge and at most one destination per state and symbol.
func (a *Automaton) IsDeterministic() bool {
	for _, s := range a.states {
		for l, dests := range s.trans {
			if l.IsEpsilon() || len(dests) > 1 {
				return false
			}
		}
	}
	return true
}

// IsTotal reports whether a is deterministic and every state has an edge for every symbol of its alphabet.
func (a *Automaton) IsTotal() bool {
	if !a.IsDeterministic() {
		return false
	}
	alphabet := a.Alphabet()
	for _, s := range a.states {
		for _, sym := range alphabet {
			if len(s.trans[Symbol(sym)]) == 0 {
				return false
			}
		}
	}
	return true
}

func (a *Automaton) Clone() *Automaton {
	b := &Automaton{
		states: make([]*state, len(a.states)),
		start:  a.start,
	}
	for i, s := range a.states {
		trans := make(map[Label][]StateID, len(s.trans))
		for l, dests := range s.trans {
			trans[l] = append([]StateID{}, dests...)
		}
		b.states[i] = &state{
			accepting: s.accepting,
			trans:     trans,
		}
	}
	return b
}

// Equal reports whether a and b are identical including state numbering.
func (a *Automaton) Equal(b *Automaton) bool {
	if a.start != b.start || len(a.states) != len(b.states) {
		return false
	}
	for i, s := range a.states {
		t := b.states[i]
		if s.accepting != t.accepting || len(s.trans) != len(t.trans) {
			return false
		}
		for l, dests := range s.trans {
			tDests := t.trans[l]
			if len(dests) != len(tDests) {
				return false
			}
			for j, d := range dests {
				if tDests[j] != d {
					return false
				}
			}
		}
	}
	return true
}
