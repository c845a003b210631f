package elimination

import (
	"testing"

	"github.com/nihei9/autore/automaton"
	"github.com/nihei9/autore/automaton/epsilon"
	"github.com/nihei9/autore/automaton/minimize"
	"github.com/nihei9/autore/automaton/subset"
	"github.com/nihei9/autore/automaton/thompson"
	"github.com/nihei9/autore/regex"
	"github.com/nihei9/autore/regex/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalDFA(t *testing.T, pattern string) *automaton.Automaton {
	t.Helper()
	ast, err := parser.Parse(pattern)
	require.NoError(t, err)
	enfa, err := thompson.Build(ast)
	require.NoError(t, err)
	dfa, err := subset.Determinize(enfa)
	require.NoError(t, err)
	minDFA, err := minimize.Minimize(dfa)
	require.NoError(t, err)
	return minDFA
}

func TestToRegex_Rendering(t *testing.T) {
	tests := []struct {
		pattern  string
		expected string
	}{
		{
			pattern:  "ab",
			expected: "ab",
		},
		{
			pattern:  "a*",
			expected: "a*",
		},
		{
			pattern:  "a|b",
			expected: "[ab]",
		},
		{
			pattern:  "",
			expected: "()",
		},
		{
			pattern:  "[]",
			expected: "[]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n, err := ToRegex(minimalDFA(t, tt.pattern))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n.String())
		})
	}
}

func TestToRegex_Language(t *testing.T) {
	tests := []struct {
		pattern string
		accept  []string
		reject  []string
	}{
		{
			pattern: "a(b|c)*d",
			accept:  []string{"ad", "abd", "acbcd"},
			reject:  []string{"a", "abc", "ddd"},
		},
		{
			pattern: "(a|b)*abb",
			accept:  []string{"abb", "babb", "abababb"},
			reject:  []string{"", "ab", "abba"},
		},
		{
			pattern: "(ab|a)*b?",
			accept:  []string{"", "a", "ab", "aab", "abb"},
			reject:  []string{"bb", "ba"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			ast, err := parser.Parse(tt.pattern)
			require.NoError(t, err)
			enfa, err := thompson.Build(ast)
			require.NoError(t, err)
			nfa, err := epsilon.Eliminate(enfa)
			require.NoError(t, err)
			dfa, err := subset.Determinize(nfa)
			require.NoError(t, err)

			// Every stage can be converted back, including those with epsilon edges.
			for _, a := range []*automaton.Automaton{enfa, nfa, dfa} {
				n, err := ToRegex(a)
				require.NoError(t, err)
				for _, s := range tt.accept {
					assert.True(t, regex.Match(n, s), "%v must match %q", n, s)
				}
				for _, s := range tt.reject {
					assert.False(t, regex.Match(n, s), "%v must not match %q", n, s)
				}

				// The result renders as source text denoting the same language.
				reparsed, err := parser.Parse(n.String())
				require.NoError(t, err)
				for _, s := range tt.accept {
					assert.True(t, regex.Match(reparsed, s), "%v must match %q", reparsed, s)
				}
			}
		})
	}
}

func TestToRegex_Deterministic(t *testing.T) {
	a := minimalDFA(t, "(a|b)*abb")
	n1, err := ToRegex(a)
	require.NoError(t, err)
	n2, err := ToRegex(a.Clone())
	require.NoError(t, err)
	assert.Equal(t, n1.String(), n2.String())
}

func TestToRegex_StepCallback(t *testing.T) {
	a := minimalDFA(t, "a(b|c)*d")
	var steps []string
	var remaining []int
	_, err := ToRegex(a, WithStepCallback(func(step string, r int) {
		steps = append(steps, step)
		remaining = append(remaining, r)
	}))
	require.NoError(t, err)
	require.Len(t, steps, a.NumStates()+1)
	assert.Equal(t, "normalize", steps[0])
	assert.Equal(t, "eliminate state 0", steps[1])
	assert.Equal(t, 0, remaining[len(remaining)-1])
}

func TestToRegex_Malformed(t *testing.T) {
	_, err := ToRegex(automaton.New())
	assert.ErrorIs(t, err, automaton.ErrNoStart)
}
