// Package thompson compiles a regular expression tree into an epsilon-NFA.
package thompson

import (
	"errors"
	"fmt"

	"github.com/nihei9/autore/automaton"
	"github.com/nihei9/autore/regex"
)

var ErrInvalidNode = errors.New("invalid regex node")

// DefaultUniverse is the alphabet a negated character class is complemented within:
// printable ASCII, tab, and newline.
var DefaultUniverse = func() []rune {
	syms := []rune{'\t', '\n'}
	for c := rune(0x20); c <= 0x7e; c++ {
		syms = append(syms, c)
	}
	return syms
}()

type Option func(b *builder)

// WithUniverse sets the alphabet negated character classes are complemented within.
func WithUniverse(syms []rune) Option {
	return func(b *builder) {
		b.universe = append([]rune{}, syms...)
	}
}

type builder struct {
	a        *automaton.Automaton
	universe []rune
}

// fragment is a piece of an automaton with one start and one accept state. No edge enters start from
// outside the fragment and no edge leaves accept.
type fragment struct {
	start  automaton.StateID
	accept automaton.StateID
}

// Build compiles n into an epsilon-NFA accepting the language of n. The result is trimmed.
func Build(n regex.Node, opts ...Option) (*automaton.Automaton, error) {
	b := &builder{
		a:        automaton.New(),
		universe: DefaultUniverse,
	}
	for _, opt := range opts {
		opt(b)
	}

	frag, err := b.build(n)
	if err != nil {
		return nil, err
	}
	if err := b.a.SetStart(frag.start); err != nil {
		return nil, err
	}
	if err := b.a.SetAccepting(frag.accept, true); err != nil {
		return nil, err
	}
	return automaton.Trim(b.a), nil
}

func (b *builder) newFragment() fragment {
	return fragment{
		start:  b.a.AddState(false),
		accept: b.a.AddState(false),
	}
}

func (b *builder) link(from automaton.StateID, l automaton.Label, to automaton.StateID) {
	err := b.a.AddTransition(from, l, to)
	if err != nil {
		// Fragments only link states they created.
		panic(err)
	}
}

func (b *builder) build(n regex.Node) (fragment, error) {
	if n == nil {
		return fragment{}, ErrInvalidNode
	}

	switch m := n.(type) {
	case regex.Empty:
		return b.newFragment(), nil
	case regex.EmptyString:
		frag := b.newFragment()
		b.link(frag.start, automaton.Epsilon, frag.accept)
		return frag, nil
	case *regex.Literal:
		frag := b.newFragment()
		b.link(frag.start, automaton.Symbol(m.Symbol), frag.accept)
		return frag, nil
	case *regex.CharClass:
		frag := b.newFragment()
		for _, sym := range b.classSymbols(m) {
			b.link(frag.start, automaton.Symbol(sym), frag.accept)
		}
		return frag, nil
	case *regex.Concat:
		left, err := b.build(m.Left)
		if err != nil {
			return fragment{}, err
		}
		right, err := b.build(m.Right)
		if err != nil {
			return fragment{}, err
		}
		b.link(left.accept, automaton.Epsilon, right.start)
		return fragment{
			start:  left.start,
			accept: right.accept,
		}, nil
	case *regex.Union:
		left, err := b.build(m.Left)
		if err != nil {
			return fragment{}, err
		}
		right, err := b.build(m.Right)
		if err != nil {
			return fragment{}, err
		}
		return b.union(left, right), nil
	case *regex.Star:
		inner, err := b.build(m.Inner)
		if err != nil {
			return fragment{}, err
		}
		return b.star(inner), nil
	case *regex.Plus:
		return b.build(&regex.Concat{
			Left: m.Inner,
			Right: &regex.Star{
				Inner: m.Inner,
			},
		})
	case *regex.Optional:
		return b.build(&regex.Union{
			Left:  m.Inner,
			Right: regex.EmptyString{},
		})
	default:
		panic(fmt.Errorf("unknown node type: %T", n))
	}
}

func (b *builder) union(left, right fragment) fragment {
	frag := b.newFragment()
	b.link(frag.start, automaton.Epsilon, left.start)
	b.link(frag.start, automaton.Epsilon, right.start)
	b.link(left.accept, automaton.Epsilon, frag.accept)
	b.link(right.accept, automaton.Epsilon, frag.accept)
	return frag
}

func (b *builder) star(inner fragment) fragment {
	frag := b.newFragment()
	b.link(frag.start, automaton.Epsilon, inner.start)
	b.link(frag.start, automaton.Epsilon, frag.accept)
	b.link(inner.accept, automaton.Epsilon, inner.start)
	b.link(inner.accept, automaton.Epsilon, frag.accept)
	return frag
}

// classSymbols returns the symbols a class matches. A negated class matches the symbols of the universe
// it does not contain.
func (b *builder) classSymbols(c *regex.CharClass) []rune {
	if !c.Negated {
		return c.Symbols
	}
	var syms []rune
	for _, sym := range b.universe {
		if c.Contains(sym) {
			syms = append(syms, sym)
		}
	}
	return syms
}
