package spec

import (
	"fmt"
	"io"
	"strings"

	"github.com/nihei9/autore/automaton"
)

func stateName(s automaton.StateID) string {
	return fmt.Sprintf("q%v", s)
}

// WriteText writes a as a text description. Parsing the output yields an automaton equal to a.
// Transitions between the same pair of states share one statement.
func WriteText(w io.Writer, a *automaton.Automaton) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %v states, %v transitions\n", a.NumStates(), a.NumTransitions())
	if a.NumStates() > 0 {
		names := make([]string, a.NumStates())
		for i, s := range a.States() {
			names[i] = stateName(s)
		}
		fmt.Fprintf(&b, "state %v;\n", strings.Join(names, ", "))
	}
	if a.Start() != automaton.StateIDNil {
		fmt.Fprintf(&b, "start %v;\n", stateName(a.Start()))
	}
	if acc := a.Accepting(); len(acc) > 0 {
		names := make([]string, len(acc))
		for i, s := range acc {
			names[i] = stateName(s)
		}
		fmt.Fprintf(&b, "accept %v;\n", strings.Join(names, ", "))
	}
	for _, e := range a.Edges() {
		labels := make([]string, len(e.Labels))
		for i, l := range e.Labels {
			labels[i] = formatLabel(l)
		}
		fmt.Fprintf(&b, "%v -> %v %v;\n", stateName(e.From), stateName(e.To), strings.Join(labels, ", "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func formatLabel(l automaton.Label) string {
	sym, ok := l.Rune()
	if !ok {
		return "eps"
	}
	return quoteSymbol(sym)
}
