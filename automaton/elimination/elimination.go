// Package elimination converts automata back into regular expressions by state elimination.
package elimination

import (
	"fmt"
	"sort"

	"github.com/nihei9/autore/automaton"
	"github.com/nihei9/autore/regex"
)

type Option func(c *converter)

// WithStepCallback registers f to be called after the graph is normalized and after each state is
// eliminated. remaining is the number of states still to be eliminated.
func WithStepCallback(f func(step string, remaining int)) Option {
	return func(c *converter) {
		c.stepCallback = f
	}
}

type converter struct {
	stepCallback func(step string, remaining int)
}

// graph is a generalized transition graph whose edges are labeled with regular expressions.
// Between two nodes there is at most one edge.
type graph struct {
	out []map[int]regex.Node
}

func newGraph(n int) *graph {
	out := make([]map[int]regex.Node, n)
	for i := range out {
		out[i] = map[int]regex.Node{}
	}
	return &graph{
		out: out,
	}
}

// addEdge adds an edge from `from` to `to`, joining it with an existing edge by union.
func (g *graph) addEdge(from, to int, label regex.Node) {
	if l, ok := g.out[from][to]; ok {
		label = regex.NewUnion(l, label)
	}
	g.out[from][to] = label
}

func (g *graph) predecessors(q int) []int {
	var ps []int
	for p, es := range g.out {
		if p == q {
			continue
		}
		if _, ok := es[q]; ok {
			ps = append(ps, p)
		}
	}
	return ps
}

func (g *graph) successors(q int) []int {
	var rs []int
	for r := range g.out[q] {
		if r == q {
			continue
		}
		rs = append(rs, r)
	}
	sort.Ints(rs)
	return rs
}

// eliminate removes q, rerouting every path p -> q -> r through a direct edge p -> r.
func (g *graph) eliminate(q int) {
	loop := regex.NewStar(regex.Empty{})
	if l, ok := g.out[q][q]; ok {
		loop = regex.NewStar(l)
	}
	preds := g.predecessors(q)
	succs := g.successors(q)
	for _, p := range preds {
		for _, r := range succs {
			g.addEdge(p, r, regex.NewConcat(g.out[p][q], loop, g.out[q][r]))
		}
	}
	for _, p := range preds {
		delete(g.out[p], q)
	}
	g.out[q] = map[int]regex.Node{}
}

// ToRegex returns a regular expression accepting the same language as a. States are eliminated in
// ascending order, so the same automaton always yields the same expression. When a accepts nothing,
// the result is regex.Empty.
func ToRegex(a *automaton.Automaton, opts ...Option) (regex.Node, error) {
	c := &converter{}
	for _, opt := range opts {
		opt(c)
	}

	if err := automaton.Validate(a, automaton.KindNFA); err != nil {
		return nil, err
	}

	n := a.NumStates()
	start := n
	accept := n + 1
	g := newGraph(n + 2)
	for _, t := range a.Transitions() {
		var label regex.Node = regex.EmptyString{}
		if sym, ok := t.Label.Rune(); ok {
			label = regex.NewLiteral(sym)
		}
		g.addEdge(t.From.Int(), t.To.Int(), label)
	}
	g.addEdge(start, a.Start().Int(), regex.EmptyString{})
	for _, s := range a.Accepting() {
		g.addEdge(s.Int(), accept, regex.EmptyString{})
	}
	c.step("normalize", n)

	for q := 0; q < n; q++ {
		g.eliminate(q)
		c.step(fmt.Sprintf("eliminate state %v", q), n-q-1)
	}

	if l, ok := g.out[start][accept]; ok {
		return l, nil
	}
	return regex.Empty{}, nil
}

func (c *converter) step(name string, remaining int) {
	if c.stepCallback == nil {
		return
	}
	c.stepCallback(name, remaining)
}
