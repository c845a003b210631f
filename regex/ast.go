package regex

import (
	"fmt"
	"sort"
)

// Node is a node of a regular expression tree. The set of node types is closed;
// consumers switch over the concrete types below.
type Node interface {
	fmt.Stringer

	// node seals the interface so that only this package can define node types.
	node()
}

var (
	_ Node = Empty{}
	_ Node = EmptyString{}
	_ Node = &Literal{}
	_ Node = &Concat{}
	_ Node = &Union{}
	_ Node = &Star{}
	_ Node = &Plus{}
	_ Node = &Optional{}
	_ Node = &CharClass{}
)

// Empty matches nothing.
type Empty struct{}

// EmptyString matches only the empty string.
type EmptyString struct{}

type Literal struct {
	Symbol rune
}

type Concat struct {
	Left  Node
	Right Node
}

type Union struct {
	Left  Node
	Right Node
}

type Star struct {
	Inner Node
}

type Plus struct {
	Inner Node
}

type Optional struct {
	Inner Node
}

// CharClass matches one symbol of Symbols, or, when Negated is true, one symbol not in Symbols.
// Symbols is sorted in ascending order and contains no duplicates.
type CharClass struct {
	Symbols []rune
	Negated bool
}

func (Empty) node() {}
func (EmptyString) node() {}
func (*Literal) node() {}
func (*Concat) node() {}
func (*Union) node() {}
func (*Star) node() {}
func (*Plus) node() {}
func (*Optional) node() {}
func (*CharClass) node() {}

func NewLiteral(sym rune) *Literal {
	return &Literal{
		Symbol: sym,
	}
}

// NewCharClass returns a character class. syms may be unsorted and may contain duplicates.
func NewCharClass(syms []rune, negated bool) *CharClass {
	return &CharClass{
		Symbols: normalizeSymbols(syms),
		Negated: negated,
	}
}

func normalizeSymbols(syms []rune) []rune {
	if len(syms) == 0 {
		return nil
	}
	s := make([]rune, len(syms))
	copy(s, syms)
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
	n := 1
	for _, c := range s[1:] {
		if c == s[n-1] {
			continue
		}
		s[n] = c
		n++
	}
	return s[:n]
}

// Contains reports whether the class matches sym.
func (n *CharClass) Contains(sym rune) bool {
	i := sort.Search(len(n.Symbols), func(i int) bool {
		return n.Symbols[i] >= sym
	})
	found := i < len(n.Symbols) && n.Symbols[i] == sym
	if n.Negated {
		return !found
	}
	return found
}

// NewConcat concatenates nodes, simplifying with the identities of concatenation:
// Empty annihilates and EmptyString is the identity.
func NewConcat(nodes ...Node) Node {
	var result Node = EmptyString{}
	for _, n := range nodes {
		switch n.(type) {
		case Empty:
			return Empty{}
		case EmptyString:
			continue
		}
		if _, ok := result.(EmptyString); ok {
			result = n
			continue
		}
		result = &Concat{
			Left:  result,
			Right: n,
		}
	}
	return result
}

// NewUnion unions nodes. Empty is the identity, an EmptyString operand turns the rest into an Optional,
// structurally equal operands collapse, and literals and non-negated classes merge into one class.
func NewUnion(nodes ...Node) Node {
	var alts []Node
	var syms []rune
	hasSyms := false
	nullable := false
	queue := append([]Node{}, nodes...)
	for len(queue) > 0 {
		alt := queue[0]
		queue = queue[1:]
		switch a := alt.(type) {
		case *Union:
			queue = append([]Node{a.Left, a.Right}, queue...)
			continue
		case Empty:
			continue
		case EmptyString:
			nullable = true
			continue
		case *Optional:
			nullable = true
			queue = append([]Node{a.Inner}, queue...)
			continue
		case *Literal:
			syms = append(syms, a.Symbol)
			hasSyms = true
			continue
		case *CharClass:
			if !a.Negated {
				syms = append(syms, a.Symbols...)
				hasSyms = true
				continue
			}
		}
		if !containsNode(alts, alt) {
			alts = append(alts, alt)
		}
	}
	if hasSyms {
		switch ss := normalizeSymbols(syms); len(ss) {
		case 0:
		case 1:
			alts = append([]Node{NewLiteral(ss[0])}, alts...)
		default:
			alts = append([]Node{&CharClass{Symbols: ss}}, alts...)
		}
	}

	var result Node
	for _, alt := range alts {
		if result == nil {
			result = alt
			continue
		}
		result = &Union{
			Left:  result,
			Right: alt,
		}
	}
	if result == nil {
		if nullable {
			return EmptyString{}
		}
		return Empty{}
	}
	if nullable {
		return NewOptional(result)
	}
	return result
}

func containsNode(ns []Node, n Node) bool {
	for _, m := range ns {
		if Equal(m, n) {
			return true
		}
	}
	return false
}

// NewStar returns the Kleene closure of n. The closure of Empty and EmptyString is EmptyString.
func NewStar(n Node) Node {
	switch m := n.(type) {
	case Empty, EmptyString:
		return EmptyString{}
	case *Star:
		return m
	case *Plus:
		return &Star{
			Inner: m.Inner,
		}
	case *Optional:
		return NewStar(m.Inner)
	}
	return &Star{
		Inner: n,
	}
}

// NewOptional returns n?. Nullable operands are returned as they are.
func NewOptional(n Node) Node {
	switch m := n.(type) {
	case Empty, EmptyString:
		return EmptyString{}
	case *Star, *Optional:
		return m
	case *Plus:
		return &Star{
			Inner: m.Inner,
		}
	}
	return &Optional{
		Inner: n,
	}
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case Empty:
		_, ok := b.(Empty)
		return ok
	case EmptyString:
		_, ok := b.(EmptyString)
		return ok
	case *Literal:
		y, ok := b.(*Literal)
		return ok && x.Symbol == y.Symbol
	case *Concat:
		y, ok := b.(*Concat)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Union:
		y, ok := b.(*Union)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Star:
		y, ok := b.(*Star)
		return ok && Equal(x.Inner, y.Inner)
	case *Plus:
		y, ok := b.(*Plus)
		return ok && Equal(x.Inner, y.Inner)
	case *Optional:
		y, ok := b.(*Optional)
		return ok && Equal(x.Inner, y.Inner)
	case *CharClass:
		y, ok := b.(*CharClass)
		if !ok || x.Negated != y.Negated || len(x.Symbols) != len(y.Symbols) {
			return false
		}
		for i, c := range x.Symbols {
			if y.Symbols[i] != c {
				return false
			}
		}
		return true
	default:
		panic(fmt.Errorf("unknown node type: %T", a))
	}
}

// Size returns the number of nodes in the tree rooted at n.
func Size(n Node) int {
	switch m := n.(type) {
	case Empty, EmptyString, *Literal, *CharClass:
		return 1
	case *Concat:
		return 1 + Size(m.Left) + Size(m.Right)
	case *Union:
		return 1 + Size(m.Left) + Size(m.Right)
	case *Star:
		return 1 + Size(m.Inner)
	case *Plus:
		return 1 + Size(m.Inner)
	case *Optional:
		return 1 + Size(m.Inner)
	default:
		panic(fmt.Errorf("unknown node type: %T", n))
	}
}
