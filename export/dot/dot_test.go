package dot

import (
	"bytes"
	"testing"

	"github.com/nihei9/autore/automaton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	a := automaton.New()
	s0 := a.AddState(false)
	s1 := a.AddState(true)
	require.NoError(t, a.SetStart(s0))
	require.NoError(t, a.AddTransition(s0, automaton.Symbol('a'), s1))
	require.NoError(t, a.AddTransition(s0, automaton.Epsilon, s1))
	require.NoError(t, a.AddTransition(s1, automaton.Symbol('"'), s1))
	require.NoError(t, a.AddTransition(s1, automaton.Symbol('\n'), s0))
	require.NoError(t, a.AddTransition(s1, automaton.Symbol(' '), s0))

	var b bytes.Buffer
	require.NoError(t, Write(&b, a))
	assert.Equal(t, `digraph automaton {
    rankdir=LR;
    q0 [shape=circle];
    q1 [shape=doublecircle];
    _start [shape=point];
    _start -> q0;
    q0 -> q1 [label="ε,a"];
    q1 -> q0 [label="U+000A,U+0020"];
    q1 -> q1 [label="\""];
}
`, b.String())
}

func TestWrite_NoStart(t *testing.T) {
	a := automaton.New()
	a.AddState(false)

	var b bytes.Buffer
	require.NoError(t, Write(&b, a))
	assert.NotContains(t, b.String(), "_start")
}
