// Package minimize reduces DFAs to their minimal form by partition refinement.
package minimize

import (
	"encoding/binary"

	"github.com/nihei9/autore/automaton"
)

// Minimize returns a DFA with the fewest states accepting the same language as a.
//
// Unreachable states are trimmed first. When a is partial, states that cannot reach an accepting state
// are removed too, because they behave like the implicit reject. A total DFA keeps a single dead state so
// that the result stays total. The states of the result are numbered in breadth-first order from the
// start, so minimizing the result again yields an identical automaton.
func Minimize(a *automaton.Automaton) (*automaton.Automaton, error) {
	if err := automaton.Validate(a, automaton.KindDFA); err != nil {
		return nil, err
	}

	dfa := automaton.Trim(a)
	if !dfa.IsTotal() {
		dfa = automaton.Trim(automaton.CoTrim(dfa))
	}

	blocks := refine(dfa)

	blockCount := 0
	for _, b := range blocks {
		if b+1 > blockCount {
			blockCount = b + 1
		}
	}
	reps := make([]automaton.StateID, blockCount)
	for i := range reps {
		reps[i] = automaton.StateIDNil
	}
	for _, s := range dfa.States() {
		if reps[blocks[s]] == automaton.StateIDNil {
			reps[blocks[s]] = s
		}
	}

	minDFA := automaton.New()
	for _, rep := range reps {
		minDFA.AddState(dfa.IsAccepting(rep))
	}
	for b, rep := range reps {
		for _, l := range dfa.Labels(rep) {
			for _, to := range dfa.Destinations(rep, l) {
				if err := minDFA.AddTransition(automaton.StateID(b), l, automaton.StateID(blocks[to])); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := minDFA.SetStart(automaton.StateID(blocks[dfa.Start()])); err != nil {
		return nil, err
	}

	return automaton.Trim(minDFA), nil
}

// refine returns the block of every state of the coarsest partition in which states of the same block
// agree on acceptance and move into the same blocks on every symbol.
func refine(dfa *automaton.Automaton) []int {
	alphabet := dfa.Alphabet()
	blocks := make([]int, dfa.NumStates())
	count := 0
	{
		acc := -1
		rej := -1
		for _, s := range dfa.States() {
			if dfa.IsAccepting(s) {
				if acc < 0 {
					acc = count
					count++
				}
				blocks[s] = acc
			} else {
				if rej < 0 {
					rej = count
					count++
				}
				blocks[s] = rej
			}
		}
	}

	for {
		sig2Block := map[string]int{}
		next := make([]int, len(blocks))
		for _, s := range dfa.States() {
			sig := signature(dfa, alphabet, blocks, s)
			b, ok := sig2Block[sig]
			if !ok {
				b = len(sig2Block)
				sig2Block[sig] = b
			}
			next[s] = b
		}
		blocks = next
		// A refinement step never merges blocks, so an unchanged count means a fixed point.
		if len(sig2Block) == count {
			return blocks
		}
		count = len(sig2Block)
	}
}

// signature encodes the block of s followed by the block of its successor on each symbol (-1 when undefined).
func signature(dfa *automaton.Automaton, alphabet []rune, blocks []int, s automaton.StateID) string {
	buf := binary.AppendVarint(nil, int64(blocks[s]))
	for _, sym := range alphabet {
		to := -1
		if dests := dfa.Destinations(s, automaton.Symbol(sym)); len(dests) > 0 {
			to = blocks[dests[0]]
		}
		buf = binary.AppendVarint(buf, int64(to))
	}
	return string(buf)
}
