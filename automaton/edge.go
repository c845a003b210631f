package automaton

import "sort"

// Edge gathers the transitions between one pair of states.
type Edge struct {
	From   StateID
	To     StateID
	Labels []Label
}

// Edges returns the transitions of a grouped by source and destination, ordered by source, then destination.
// The labels of an edge are in the order defined by Label.Less.
func (a *Automaton) Edges() []*Edge {
	var edges []*Edge
	for _, from := range a.States() {
		byTo := map[StateID]*Edge{}
		var tos []StateID
		for _, l := range a.Labels(from) {
			for _, to := range a.states[from].trans[l] {
				e, ok := byTo[to]
				if !ok {
					e = &Edge{
						From: from,
						To:   to,
					}
					byTo[to] = e
					tos = append(tos, to)
				}
				e.Labels = append(e.Labels, l)
			}
		}
		sort.Slice(tos, func(i, j int) bool {
			return tos[i] < tos[j]
		})
		for _, to := range tos {
			edges = append(edges, byTo[to])
		}
	}
	return edges
}
