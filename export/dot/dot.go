package dot

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/nihei9/autore/automaton"
)

// Write writes a as a Graphviz digraph. Transitions between the same pair of states share one edge.
func Write(w io.Writer, a *automaton.Automaton) error {
	var b strings.Builder
	fmt.Fprintln(&b, "digraph automaton {")
	fmt.Fprintln(&b, "    rankdir=LR;")
	for _, s := range a.States() {
		shape := "circle"
		if a.IsAccepting(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "    q%v [shape=%v];\n", s, shape)
	}
	if a.Start() != automaton.StateIDNil {
		fmt.Fprintf(&b, "    _start [shape=point];\n")
		fmt.Fprintf(&b, "    _start -> q%v;\n", a.Start())
	}
	for _, e := range a.Edges() {
		labels := make([]string, len(e.Labels))
		for i, l := range e.Labels {
			labels[i] = labelText(l)
		}
		fmt.Fprintf(&b, "    q%v -> q%v [label=\"%v\"];\n", e.From, e.To, escape(strings.Join(labels, ",")))
	}
	fmt.Fprintln(&b, "}")
	_, err := io.WriteString(w, b.String())
	return err
}

func labelText(l automaton.Label) string {
	sym, ok := l.Rune()
	if !ok {
		return "ε"
	}
	// Spaces and commas would be indistinguishable from the separator.
	if !unicode.IsPrint(sym) || sym == ' ' || sym == ',' {
		return fmt.Sprintf("U+%04X", sym)
	}
	return string(sym)
}

func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
