package regex

import "fmt"

// Match reports whether n matches the whole input. It interprets the tree directly, so it serves as the
// reference semantics against which compiled automata are checked. A negated class matches any symbol it
// does not contain; use MatchIn to compare with an automaton built within a universe.
func Match(n Node, input string) bool {
	return (&matcher{}).matchAll(n, input)
}

// MatchIn is like Match except that a negated class matches only symbols of universe it does not contain.
func MatchIn(n Node, input string, universe []rune) bool {
	m := &matcher{
		universe: map[rune]struct{}{},
	}
	for _, sym := range universe {
		m.universe[sym] = struct{}{}
	}
	return m.matchAll(n, input)
}

// matcher restricts negated classes to universe unless universe is nil.
type matcher struct {
	universe map[rune]struct{}
}

func (mt *matcher) matchAll(n Node, input string) bool {
	syms := []rune(input)
	starts := make(positionSet, len(syms)+1)
	starts[0] = true
	return mt.match(n, syms, starts)[len(syms)]
}

func (mt *matcher) classMatches(c *CharClass, sym rune) bool {
	if !c.Contains(sym) {
		return false
	}
	if !c.Negated || mt.universe == nil {
		return true
	}
	_, ok := mt.universe[sym]
	return ok
}

// positionSet[i] is true when a match can be in progress at offset i.
type positionSet []bool

func (s positionSet) empty() bool {
	for _, ok := range s {
		if ok {
			return false
		}
	}
	return true
}

func (mt *matcher) match(n Node, syms []rune, starts positionSet) positionSet {
	ends := make(positionSet, len(starts))
	switch m := n.(type) {
	case Empty:
	case EmptyString:
		copy(ends, starts)
	case *Literal:
		for i, ok := range starts[:len(syms)] {
			if ok && syms[i] == m.Symbol {
				ends[i+1] = true
			}
		}
	case *CharClass:
		for i, ok := range starts[:len(syms)] {
			if ok && mt.classMatches(m, syms[i]) {
				ends[i+1] = true
			}
		}
	case *Concat:
		ends = mt.match(m.Right, syms, mt.match(m.Left, syms, starts))
	case *Union:
		l := mt.match(m.Left, syms, starts)
		r := mt.match(m.Right, syms, starts)
		for i := range ends {
			ends[i] = l[i] || r[i]
		}
	case *Star:
		copy(ends, starts)
		frontier := starts
		for {
			next := mt.match(m.Inner, syms, frontier)
			for i, ok := range next {
				if ok && ends[i] {
					next[i] = false
				}
			}
			if next.empty() {
				break
			}
			for i, ok := range next {
				if ok {
					ends[i] = true
				}
			}
			frontier = next
		}
	case *Plus:
		ends = mt.match(&Star{Inner: m.Inner}, syms, mt.match(m.Inner, syms, starts))
	case *Optional:
		copy(ends, starts)
		for i, ok := range mt.match(m.Inner, syms, starts) {
			if ok {
				ends[i] = true
			}
		}
	default:
		panic(fmt.Errorf("unknown node type: %T", n))
	}
	return ends
}
