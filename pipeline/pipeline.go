// Package pipeline chains the conversion stages between regular expressions and automata.
package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nihei9/autore/automaton"
	"github.com/nihei9/autore/automaton/elimination"
	"github.com/nihei9/autore/automaton/epsilon"
	"github.com/nihei9/autore/automaton/minimize"
	"github.com/nihei9/autore/automaton/subset"
	"github.com/nihei9/autore/automaton/thompson"
	"github.com/nihei9/autore/regex"
	"github.com/nihei9/autore/regex/parser"
)

type Representation string

const (
	RepresentationRegex      Representation = "regex"
	RepresentationENFA       Representation = "enfa"
	RepresentationNFA        Representation = "nfa"
	RepresentationDFA        Representation = "dfa"
	RepresentationTotalDFA   Representation = "total-dfa"
	RepresentationMinDFA     Representation = "min-dfa"
	RepresentationComplement Representation = "complement"
)

var representations = []Representation{
	RepresentationRegex,
	RepresentationENFA,
	RepresentationNFA,
	RepresentationDFA,
	RepresentationTotalDFA,
	RepresentationMinDFA,
	RepresentationComplement,
}

var ErrUnknownRepresentation = errors.New("unknown representation")

// Representations returns every representation in pipeline order.
func Representations() []Representation {
	return append([]Representation{}, representations...)
}

func ParseRepresentation(name string) (Representation, error) {
	for _, r := range representations {
		if string(r) == name {
			return r, nil
		}
	}
	names := make([]string, len(representations))
	for i, r := range representations {
		names[i] = string(r)
	}
	return "", fmt.Errorf("%w: %v (available: %v)", ErrUnknownRepresentation, name, strings.Join(names, ", "))
}

// Result holds the outcome of a conversion. Exactly one of the fields is set.
type Result struct {
	Regex     regex.Node
	Automaton *automaton.Automaton
}

type Option func(p *pipeline)

// WithStepCallback registers f to observe the automaton produced by every stage. f must not modify it.
func WithStepCallback(f func(stage string, a *automaton.Automaton)) Option {
	return func(p *pipeline) {
		p.stepCallback = f
	}
}

// WithParserOptions passes opts to the regex parser.
func WithParserOptions(opts ...parser.Option) Option {
	return func(p *pipeline) {
		p.parserOpts = append(p.parserOpts, opts...)
	}
}

// WithUniverse sets the alphabet negated character classes are complemented within.
func WithUniverse(syms []rune) Option {
	return func(p *pipeline) {
		p.buildOpts = append(p.buildOpts, thompson.WithUniverse(syms))
	}
}

type pipeline struct {
	stepCallback func(stage string, a *automaton.Automaton)
	parserOpts   []parser.Option
	buildOpts    []thompson.Option
}

func newPipeline(opts []Option) *pipeline {
	p := &pipeline{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FromRegex parses src and converts it into target. Converting into RepresentationRegex yields the
// expression regenerated from the minimal DFA of src.
func FromRegex(src string, target Representation, opts ...Option) (*Result, error) {
	p := newPipeline(opts)
	ast, err := parser.Parse(src, p.parserOpts...)
	if err != nil {
		return nil, err
	}
	return p.fromAST(ast, target)
}

// FromAST converts the tree n into target.
func FromAST(n regex.Node, target Representation, opts ...Option) (*Result, error) {
	return newPipeline(opts).fromAST(n, target)
}

func (p *pipeline) fromAST(n regex.Node, target Representation) (*Result, error) {
	enfa, err := thompson.Build(n, p.buildOpts...)
	if err != nil {
		return nil, err
	}
	p.step(string(RepresentationENFA), enfa)
	if target == RepresentationRegex {
		nfa, err := p.eliminate(enfa)
		if err != nil {
			return nil, err
		}
		dfa, err := p.determinize(nfa, RepresentationDFA)
		if err != nil {
			return nil, err
		}
		minDFA, err := p.minimize(dfa)
		if err != nil {
			return nil, err
		}
		return p.toRegex(minDFA)
	}
	return p.fromENFA(enfa, target)
}

// FromAutomaton converts a into target. a may be any automaton; converting into RepresentationENFA
// returns a copy of a.
func FromAutomaton(a *automaton.Automaton, target Representation, opts ...Option) (*Result, error) {
	p := newPipeline(opts)
	if err := automaton.Validate(a, automaton.KindNFA); err != nil {
		return nil, err
	}
	if target == RepresentationRegex {
		return p.toRegex(a)
	}
	return p.fromENFA(a, target)
}

func (p *pipeline) fromENFA(enfa *automaton.Automaton, target Representation) (*Result, error) {
	if target == RepresentationENFA {
		return &Result{
			Automaton: enfa.Clone(),
		}, nil
	}

	nfa, err := p.eliminate(enfa)
	if err != nil {
		return nil, err
	}
	var a *automaton.Automaton
	switch target {
	case RepresentationNFA:
		a = nfa
	case RepresentationDFA:
		a, err = p.determinize(nfa, RepresentationDFA)
	case RepresentationTotalDFA:
		a, err = p.determinize(nfa, RepresentationTotalDFA, subset.Total())
	case RepresentationMinDFA:
		var total *automaton.Automaton
		total, err = p.determinize(nfa, RepresentationTotalDFA, subset.Total())
		if err != nil {
			return nil, err
		}
		a, err = p.minimize(total)
	case RepresentationComplement:
		var dfa *automaton.Automaton
		dfa, err = p.determinize(nfa, RepresentationDFA)
		if err != nil {
			return nil, err
		}
		a, err = subset.Complement(dfa)
		if err == nil {
			p.step(string(RepresentationComplement), a)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownRepresentation, target)
	}
	if err != nil {
		return nil, err
	}
	return &Result{
		Automaton: a,
	}, nil
}

func (p *pipeline) eliminate(enfa *automaton.Automaton) (*automaton.Automaton, error) {
	nfa, err := epsilon.Eliminate(enfa)
	if err != nil {
		return nil, err
	}
	p.step(string(RepresentationNFA), nfa)
	return nfa, nil
}

func (p *pipeline) determinize(nfa *automaton.Automaton, stage Representation, opts ...subset.Option) (*automaton.Automaton, error) {
	dfa, err := subset.Determinize(nfa, opts...)
	if err != nil {
		return nil, err
	}
	p.step(string(stage), dfa)
	return dfa, nil
}

func (p *pipeline) minimize(dfa *automaton.Automaton) (*automaton.Automaton, error) {
	minDFA, err := minimize.Minimize(dfa)
	if err != nil {
		return nil, err
	}
	p.step(string(RepresentationMinDFA), minDFA)
	return minDFA, nil
}

func (p *pipeline) toRegex(a *automaton.Automaton) (*Result, error) {
	n, err := elimination.ToRegex(a)
	if err != nil {
		return nil, err
	}
	return &Result{
		Regex: n,
	}, nil
}

func (p *pipeline) step(stage string, a *automaton.Automaton) {
	if p.stepCallback == nil {
		return
	}
	p.stepCallback(stage, a)
}
