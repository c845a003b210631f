package minimize

import (
	"testing"

	"github.com/nihei9/autore/automaton"
	"github.com/nihei9/autore/automaton/subset"
	"github.com/nihei9/autore/automaton/thompson"
	"github.com/nihei9/autore/regex/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func determinize(t *testing.T, pattern string, opts ...subset.Option) *automaton.Automaton {
	t.Helper()
	ast, err := parser.Parse(pattern)
	require.NoError(t, err)
	enfa, err := thompson.Build(ast)
	require.NoError(t, err)
	dfa, err := subset.Determinize(enfa, opts...)
	require.NoError(t, err)
	return dfa
}

func TestMinimize(t *testing.T) {
	tests := []struct {
		pattern string
		total   bool
		states  int
		accept  []string
		reject  []string
	}{
		{
			pattern: "a(b|c)*d",
			total:   true,
			states:  4,
			accept:  []string{"ad", "abd", "acbcd"},
			reject:  []string{"a", "abc", "ddd"},
		},
		{
			pattern: "a(b|c)*d",
			states:  3,
			accept:  []string{"ad", "abd", "acbcd"},
			reject:  []string{"a", "abc", "ddd"},
		},
		{
			pattern: "(a|b)*abb",
			states:  4,
			accept:  []string{"abb", "aabb", "babb"},
			reject:  []string{"", "ab", "abba"},
		},
		{
			pattern: "a*|a*a",
			states:  1,
			accept:  []string{"", "a", "aaa"},
		},
		{
			pattern: "[]",
			states:  1,
			reject:  []string{""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			var opts []subset.Option
			if tt.total {
				opts = append(opts, subset.Total())
			}
			dfa := determinize(t, tt.pattern, opts...)
			minDFA, err := Minimize(dfa)
			require.NoError(t, err)
			assert.Equal(t, tt.states, minDFA.NumStates())
			assert.LessOrEqual(t, minDFA.NumStates(), dfa.NumStates())
			if tt.total {
				assert.True(t, minDFA.IsTotal())
			}
			for _, s := range tt.accept {
				assert.True(t, automaton.Accepts(minDFA, s), "%q must be accepted", s)
			}
			for _, s := range tt.reject {
				assert.False(t, automaton.Accepts(minDFA, s), "%q must be rejected", s)
			}

			again, err := Minimize(minDFA)
			require.NoError(t, err)
			assert.True(t, minDFA.Equal(again), "minimization must be idempotent")
		})
	}
}

func TestMinimize_TrimsUnreachableStates(t *testing.T) {
	a := automaton.New()
	s0 := a.AddState(false)
	s1 := a.AddState(true)
	unreachable := a.AddState(true)
	require.NoError(t, a.SetStart(s0))
	require.NoError(t, a.AddTransition(s0, automaton.Symbol('a'), s1))
	require.NoError(t, a.AddTransition(unreachable, automaton.Symbol('b'), s0))

	minDFA, err := Minimize(a)
	require.NoError(t, err)
	assert.Equal(t, 2, minDFA.NumStates())
	assert.Equal(t, []rune{'a'}, minDFA.Alphabet())
	assert.Equal(t, 3, a.NumStates(), "the input must not be mutated")
}

func TestMinimize_RejectsNFA(t *testing.T) {
	a := automaton.New()
	s0 := a.AddState(false)
	s1 := a.AddState(true)
	require.NoError(t, a.SetStart(s0))
	require.NoError(t, a.AddTransition(s0, automaton.Symbol('a'), s0))
	require.NoError(t, a.AddTransition(s0, automaton.Symbol('a'), s1))

	_, err := Minimize(a)
	assert.ErrorIs(t, err, automaton.ErrNondeterministic)
}
