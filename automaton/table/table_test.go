package table

import (
	"encoding/json"
	"testing"

	"github.com/nihei9/autore/automaton"
	"github.com/nihei9/autore/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enumerate(alphabet []rune, maxLen int) []string {
	inputs := []string{""}
	frontier := []string{""}
	for i := 0; i < maxLen; i++ {
		var next []string
		for _, prefix := range frontier {
			for _, sym := range alphabet {
				next = append(next, prefix+string(sym))
			}
		}
		inputs = append(inputs, next...)
		frontier = next
	}
	return inputs
}

func TestCompile(t *testing.T) {
	patterns := []string{
		"a(b|c)*d",
		"(a|b)*abb",
		"[a-d]*x",
		"a*",
		"()",
		"[]",
	}
	for _, pattern := range patterns {
		for _, target := range []pipeline.Representation{pipeline.RepresentationDFA, pipeline.RepresentationMinDFA} {
			t.Run(pattern+" "+string(target), func(t *testing.T) {
				res, err := pipeline.FromRegex(pattern, target)
				require.NoError(t, err)
				tab, err := Compile(res.Automaton)
				require.NoError(t, err)
				for _, in := range enumerate([]rune{'a', 'b', 'c', 'd', 'x'}, 5) {
					assert.Equal(t, automaton.Accepts(res.Automaton, in), tab.Accepts(in), "input: %q", in)
				}
			})
		}
	}
}

func TestCompile_Compression(t *testing.T) {
	res, err := pipeline.FromRegex("a(b|c)*d", pipeline.RepresentationDFA)
	require.NoError(t, err)
	tab, err := Compile(res.Automaton)
	require.NoError(t, err)

	// The DFA has 5 states over 4 symbols.
	orig, comp := tab.Size()
	assert.Equal(t, 20, orig)
	assert.Less(t, comp, orig)
	assert.Equal(t, []rune{'a', 'b', 'c', 'd'}, tab.Symbols)

	next, ok := tab.Next(tab.Start, 'a')
	assert.True(t, ok)
	_, ok = tab.Next(next, 'a')
	assert.False(t, ok)
	_, ok = tab.Next(tab.Start, 'z')
	assert.False(t, ok)
	_, ok = tab.Next(-1, 'a')
	assert.False(t, ok)
}

func TestCompile_JSON(t *testing.T) {
	res, err := pipeline.FromRegex("(a|b)*abb", pipeline.RepresentationMinDFA)
	require.NoError(t, err)
	tab, err := Compile(res.Automaton)
	require.NoError(t, err)

	b, err := json.Marshal(tab)
	require.NoError(t, err)
	decoded := &Table{}
	require.NoError(t, json.Unmarshal(b, decoded))
	assert.Equal(t, tab, decoded)
	assert.True(t, decoded.Accepts("babb"))
	assert.False(t, decoded.Accepts("abba"))
}

func TestCompile_NFA(t *testing.T) {
	res, err := pipeline.FromRegex("a|ab", pipeline.RepresentationNFA)
	require.NoError(t, err)
	if res.Automaton.IsDeterministic() {
		t.Skip("the NFA happens to be deterministic")
	}
	_, err = Compile(res.Automaton)
	assert.ErrorIs(t, err, automaton.ErrNondeterministic)
}

func TestDisplaceRows(t *testing.T) {
	entries := []int{
		1, -1, -1,
		-1, 2, -1,
		-1, -1, 3,
		-1, -1, -1,
	}
	displaced, owners, displacement := displaceRows(entries, 3)
	// Each row is displaced by one slot from the previous one.
	assert.Equal(t, []int{0, 1, 2, 0}, displacement)
	assert.Len(t, displaced, 5)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			i := displacement[row] + col
			e := emptyEntry
			if i < len(owners) && owners[i] == row {
				e = displaced[i]
			}
			assert.Equal(t, entries[row*3+col], e, "row: %v, col: %v", row, col)
		}
	}
}

func TestUniqueRows(t *testing.T) {
	unique, rowNums := uniqueRows([]int{
		1, 2,
		-1, 2,
		1, 2,
	}, 2)
	assert.Equal(t, []int{1, 2, -1, 2}, unique)
	assert.Equal(t, []int{0, 1, 0}, rowNums)
}
