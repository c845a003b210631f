package automaton

import "fmt"

// Label is the label of a transition: either the epsilon label or a single symbol.
type Label struct {
	epsilon bool
	sym     rune
}

// Epsilon labels a transition that consumes no input.
var Epsilon = Label{
	epsilon: true,
}

// Symbol returns the label consuming sym.
func Symbol(sym rune) Label {
	return Label{
		sym: sym,
	}
}

func (l Label) IsEpsilon() bool {
	return l.epsilon
}

// Rune returns the symbol of l. ok is false for the epsilon label.
func (l Label) Rune() (sym rune, ok bool) {
	if l.epsilon {
		return 0, false
	}
	return l.sym, true
}

// Less orders labels: epsilon first, then symbols in ascending order.
func (l Label) Less(m Label) bool {
	if l.epsilon != m.epsilon {
		return l.epsilon
	}
	return l.sym < m.sym
}

func (l Label) String() string {
	if l.epsilon {
		return "ε"
	}
	return fmt.Sprintf("%q", l.sym)
}
