package table

import (
	"fmt"
	"sort"

	"github.com/nihei9/autore/automaton"
)

// Table is a DFA compiled into a compressed transition table. States sharing the same transitions share
// one row, and the rows are overlaid by row displacement. A Table holds only exported fields, so it can
// be serialized as JSON and matched against without the automaton package.
type Table struct {
	// Symbols maps a column to its symbol in ascending order.
	Symbols   []rune `json:"symbols"`
	Start     int    `json:"start"`
	Accepting []bool `json:"accepting"`
	// RowNums maps a state to its row.
	RowNums         []int `json:"row_nums"`
	Entries         []int `json:"entries"`
	Owners          []int `json:"owners"`
	RowDisplacement []int `json:"row_displacement"`
}

// Compile compiles the DFA a into a table.
func Compile(a *automaton.Automaton) (*Table, error) {
	if err := automaton.Validate(a, automaton.KindDFA); err != nil {
		return nil, err
	}

	syms := a.Alphabet()
	accepting := make([]bool, a.NumStates())
	for _, s := range a.States() {
		accepting[s] = a.IsAccepting(s)
	}
	if len(syms) == 0 {
		return &Table{
			Symbols:   []rune{},
			Start:     a.Start().Int(),
			Accepting: accepting,
			RowNums:   make([]int, a.NumStates()),
		}, nil
	}

	entries := make([]int, a.NumStates()*len(syms))
	for _, s := range a.States() {
		for col, sym := range syms {
			e := emptyEntry
			if dests := a.Destinations(s, automaton.Symbol(sym)); len(dests) > 0 {
				e = dests[0].Int()
			}
			entries[s.Int()*len(syms)+col] = e
		}
	}
	unique, rowNums := uniqueRows(entries, len(syms))
	displaced, owners, displacement := displaceRows(unique, len(syms))

	return &Table{
		Symbols:         syms,
		Start:           a.Start().Int(),
		Accepting:       accepting,
		RowNums:         rowNums,
		Entries:         displaced,
		Owners:          owners,
		RowDisplacement: displacement,
	}, nil
}

// Next returns the state reached from s by sym. ok is false when s has no such transition.
func (t *Table) Next(s int, sym rune) (next int, ok bool) {
	if s < 0 || s >= len(t.RowNums) {
		return 0, false
	}
	col := sort.Search(len(t.Symbols), func(i int) bool {
		return t.Symbols[i] >= sym
	})
	if col >= len(t.Symbols) || t.Symbols[col] != sym {
		return 0, false
	}
	row := t.RowNums[s]
	i := t.RowDisplacement[row] + col
	if i >= len(t.Owners) || t.Owners[i] != row {
		return 0, false
	}
	return t.Entries[i], true
}

// Accepts reports whether the table accepts the whole input.
func (t *Table) Accepts(input string) bool {
	s := t.Start
	for _, sym := range input {
		next, ok := t.Next(s, sym)
		if !ok {
			return false
		}
		s = next
	}
	return t.Accepting[s]
}

// Size returns the number of entries of the uncompressed and the compressed table.
func (t *Table) Size() (original int, compressed int) {
	return len(t.RowNums) * len(t.Symbols), len(t.Entries)
}

func (t *Table) String() string {
	orig, comp := t.Size()
	return fmt.Sprintf("%v states, %v symbols, %v/%v entries", len(t.RowNums), len(t.Symbols), comp, orig)
}
