package spec

import (
	"io"

	"github.com/nihei9/autore/automaton"
	verr "github.com/nihei9/autore/error"
)

// Build constructs the automaton a description denotes. States are numbered in order of first appearance.
func Build(root *RootNode) (*automaton.Automaton, error) {
	a := automaton.New()
	name2ID := map[string]automaton.StateID{}
	stateOf := func(s *StateNode) automaton.StateID {
		if id, ok := name2ID[s.Name]; ok {
			return id
		}
		id := a.AddState(false)
		name2ID[s.Name] = id
		return id
	}

	var start *StatementNode
	for _, stmt := range root.Statements {
		switch stmt.Kind {
		case StatementKindStart:
			if start != nil {
				return nil, &verr.SpecError{
					Cause:  semErrDuplicateStart,
					Detail: stmt.States[0].Name,
					Row:    stmt.Pos.Row,
					Col:    stmt.Pos.Col,
				}
			}
			start = stmt
			stateOf(stmt.States[0])
		case StatementKindAccept:
			for _, s := range stmt.States {
				if err := a.SetAccepting(stateOf(s), true); err != nil {
					return nil, err
				}
			}
		case StatementKindState:
			for _, s := range stmt.States {
				stateOf(s)
			}
		case StatementKindTransition:
			from := stateOf(stmt.States[0])
			to := stateOf(stmt.States[1])
			for _, l := range stmt.Labels {
				label := automaton.Symbol(l.Symbol)
				if l.Epsilon {
					label = automaton.Epsilon
				}
				if err := a.AddTransition(from, label, to); err != nil {
					return nil, err
				}
			}
		}
	}
	if start == nil {
		return nil, &verr.SpecError{
			Cause: semErrNoStart,
		}
	}
	if err := a.SetStart(name2ID[start.States[0].Name]); err != nil {
		return nil, err
	}
	return a, nil
}

// ParseAutomaton parses a text description and builds the automaton it denotes.
func ParseAutomaton(src io.Reader) (*automaton.Automaton, error) {
	root, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return Build(root)
}
