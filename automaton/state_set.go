package automaton

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
)

// StateSet is a set of states. Right after an addition the elements may be unsorted and duplicated;
// Set returns the canonical sorted form without duplicates.
type StateSet struct {
	s      []StateID
	sorted bool
}

func NewStateSet(ids ...StateID) *StateSet {
	s := &StateSet{
		s: make([]StateID, 0, len(ids)),
	}
	s.s = append(s.s, ids...)
	return s
}

func (s *StateSet) String() string {
	ids := s.Set()
	if len(ids) == 0 {
		return "{}"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "{")
	for i, id := range ids {
		if i == 0 {
			fmt.Fprintf(&b, "%v", id)
			continue
		}
		fmt.Fprintf(&b, ", %v", id)
	}
	fmt.Fprintf(&b, "}")
	return b.String()
}

func (s *StateSet) Add(id StateID) *StateSet {
	s.s = append(s.s, id)
	s.sorted = false
	return s
}

func (s *StateSet) Merge(t *StateSet) *StateSet {
	s.s = append(s.s, t.s...)
	s.sorted = false
	return s
}

// Set returns the elements in ascending order. The caller must not modify the returned slice.
func (s *StateSet) Set() []StateID {
	return s.sortAndRemoveDuplicates()
}

func (s *StateSet) Len() int {
	return len(s.sortAndRemoveDuplicates())
}

func (s *StateSet) Contains(id StateID) bool {
	ids := s.sortAndRemoveDuplicates()
	i := sort.Search(len(ids), func(i int) bool {
		return ids[i] >= id
	})
	return i < len(ids) && ids[i] == id
}

// Hash returns a key identifying the set. Two sets have the same hash iff they have the same elements.
func (s *StateSet) Hash() string {
	ids := s.sortAndRemoveDuplicates()
	if len(ids) == 0 {
		return ""
	}
	var buf []byte
	for _, id := range ids {
		buf = binary.AppendUvarint(buf, uint64(id))
	}
	// The byte sequence is made of varints, so it is not a well-formed UTF-8 sequence.
	// It is only used as a map key.
	return string(buf)
}

func (s *StateSet) sortAndRemoveDuplicates() []StateID {
	if s.sorted || len(s.s) == 0 {
		return s.s
	}

	sort.Slice(s.s, func(i, j int) bool {
		return s.s[i] < s.s[j]
	})

	lastV := s.s[0]
	nextIdx := 1
	for _, v := range s.s[1:] {
		if v == lastV {
			continue
		}
		s.s[nextIdx] = v
		nextIdx++
		lastV = v
	}
	s.s = s.s[:nextIdx]
	s.sorted = true

	return s.s
}
