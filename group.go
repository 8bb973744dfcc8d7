// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import "sort"

// pinSet is a set of pin identities.
type pinSet map[PinID]struct{}

func (s pinSet) add(p PinID)        { s[p] = struct{}{} }
func (s pinSet) has(p PinID) bool   { _, ok := s[p]; return ok }
func (s pinSet) sortedSlice() []PinID {
	out := make([]PinID, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sortPinIDs(out)
	return out
}

func (s pinSet) intersects(o pinSet) bool {
	// scan the smaller set against the larger one.
	if len(o) < len(s) {
		s, o = o, s
	}
	for p := range s {
		if o.has(p) {
			return true
		}
	}
	return false
}

// computeGroups takes an undirected adjacency list (each key mapped to
// the pins it was directly declared shorted to) and returns the
// connected components: the equivalence classes of the "shorted to"
// relation, closed transitively.
//
// Algorithm: seed one set per adjacency entry (the key plus its declared
// neighbours), then repeatedly pop one set and
// merge every remaining set that shares at least one pin with it, until
// nothing merges further; emit the result and repeat with what remains.
// This is O(n²) in the number of adjacency entries, which is acceptable
// since groups are small and this only runs at description time. Merge
// order does not affect the result because set union is commutative.
func computeGroups(adjacency map[PinID][]PinID) []pinSet {
	working := make([]pinSet, 0, len(adjacency))
	for k, vs := range adjacency {
		s := pinSet{}
		s.add(k)
		for _, v := range vs {
			s.add(v)
		}
		working = append(working, s)
	}

	var groups []pinSet
	for len(working) > 0 {
		cur := working[len(working)-1]
		working = working[:len(working)-1]

		for {
			merged := false
			for i := 0; i < len(working); {
				if cur.intersects(working[i]) {
					for p := range working[i] {
						cur.add(p)
					}
					working[i] = working[len(working)-1]
					working = working[:len(working)-1]
					merged = true
					continue
				}
				i++
			}
			if !merged {
				break
			}
		}
		groups = append(groups, cur)
	}
	return groups
}

// groupOf returns the shorted group containing p, or nil if p has no
// declared connections (and is therefore not part of any group).
func groupOf(groups []pinSet, p PinID) pinSet {
	for _, g := range groups {
		if g.has(p) {
			return g
		}
	}
	return nil
}

func sortPinIDs(ps []PinID) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Chip != ps[j].Chip {
			return ps[i].Chip < ps[j].Chip
		}
		return ps[i].Pin < ps[j].Pin
	})
}
