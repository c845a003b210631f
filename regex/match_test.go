package regex

import (
	"fmt"
	"testing"
)

func TestMatch(t *testing.T) {
	a := NewLiteral('a')
	b := NewLiteral('b')
	c := NewLiteral('c')
	d := NewLiteral('d')
	tests := []struct {
		node   Node
		accept []string
		reject []string
	}{
		{
			node:   Empty{},
			reject: []string{"", "a"},
		},
		{
			node:   EmptyString{},
			accept: []string{""},
			reject: []string{"a"},
		},
		{
			// a(b|c)*d
			node: &Concat{
				Left: &Concat{
					Left:  a,
					Right: &Star{Inner: &Union{Left: b, Right: c}},
				},
				Right: d,
			},
			accept: []string{"ad", "abd", "acbcd"},
			reject: []string{"", "a", "abc", "ddd"},
		},
		{
			node:   &Plus{Inner: &Concat{Left: a, Right: b}},
			accept: []string{"ab", "abab"},
			reject: []string{"", "a", "aba"},
		},
		{
			node:   &Star{Inner: &Star{Inner: a}},
			accept: []string{"", "a", "aaa"},
			reject: []string{"b"},
		},
		{
			node:   &Star{Inner: EmptyString{}},
			accept: []string{""},
			reject: []string{"a"},
		},
		{
			node:   &Concat{Left: &Optional{Inner: a}, Right: b},
			accept: []string{"b", "ab"},
			reject: []string{"aab", ""},
		},
		{
			node:   NewCharClass([]rune{'a', 'b'}, true),
			accept: []string{"c", "z"},
			reject: []string{"a", "", "cc"},
		},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("#%v %v", i, tt.node), func(t *testing.T) {
			for _, s := range tt.accept {
				if !Match(tt.node, s) {
					t.Errorf("%v must match %q", tt.node, s)
				}
			}
			for _, s := range tt.reject {
				if Match(tt.node, s) {
					t.Errorf("%v must not match %q", tt.node, s)
				}
			}
		})
	}
}

func TestMatchIn(t *testing.T) {
	notAB := NewCharClass([]rune{'a', 'b'}, true)
	universe := []rune{'a', 'b', 'c'}
	if !MatchIn(notAB, "c", universe) {
		t.Errorf("%v must match %q within %q", notAB, "c", string(universe))
	}
	for _, s := range []string{"a", "z", "あ"} {
		if MatchIn(notAB, s, universe) {
			t.Errorf("%v must not match %q within %q", notAB, s, string(universe))
		}
	}
	if !Match(notAB, "あ") {
		t.Errorf("%v must match %q without a universe", notAB, "あ")
	}

	ab := NewCharClass([]rune{'a', 'z'}, false)
	if !MatchIn(ab, "z", universe) {
		t.Errorf("%v must match %q regardless of the universe", ab, "z")
	}
}
