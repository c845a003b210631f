package automaton

import (
	"errors"
	"fmt"
)

var (
	ErrNoStart          = errors.New("the automaton has no start state")
	ErrUnknownState     = errors.New("unknown state")
	ErrEpsilonInDFA     = errors.New("a DFA must not have epsilon transitions")
	ErrNondeterministic = errors.New("a DFA must have at most one destination per state and symbol")
)

// MalformedAutomatonError reports an automaton that violates the structural requirements of a stage.
type MalformedAutomatonError struct {
	Cause  error
	State  StateID
	Detail string
}

func (e *MalformedAutomatonError) Error() string {
	var s string
	if e.State == StateIDNil {
		s = fmt.Sprintf("malformed automaton: %v", e.Cause)
	} else {
		s = fmt.Sprintf("malformed automaton: state %v: %v", e.State, e.Cause)
	}
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	return s
}

func (e *MalformedAutomatonError) Unwrap() error {
	return e.Cause
}
