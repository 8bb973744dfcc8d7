// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import "github.com/pkg/errors"

// PlanEntry is one classified, lowered shorted group. The concrete type
// is one of PairEntry, BroadcastEntry or TristatedEntry.
type PlanEntry interface {
	planEntry()
}

// PairEntry connects exactly one producer to exactly one consumer.
type PairEntry struct {
	Source      PinID
	Destination PinID
}

func (PairEntry) planEntry() {}

// BroadcastEntry connects one producer to any number of consumers.
type BroadcastEntry struct {
	Source       PinID
	Destinations []PinID
}

func (BroadcastEntry) planEntry() {}

// TristatedEntry connects several potential (tristatable) producers to
// any number of consumers, with at most one producer active per tick.
type TristatedEntry struct {
	Sources      []PinID
	Destinations []PinID
}

func (TristatedEntry) planEntry() {}

// planGroup classifies one shorted group into a PlanEntry, given the
// metadata of every pin in the group.
func planGroup(group []PinID, meta map[PinID]PinMetadata) (PlanEntry, error) {
	var inputs, outputs []PinID
	for _, p := range group {
		m := meta[p]
		if m.Type == Input || m.Type == IO {
			inputs = append(inputs, p)
		}
		if m.Type == Output || m.Type == IO {
			outputs = append(outputs, p)
		}
	}

	if len(inputs) == 1 && len(outputs) == 1 && inputs[0] != outputs[0] {
		return PairEntry{Source: outputs[0], Destination: inputs[0]}, nil
	}

	if len(outputs) > 1 {
		if !allTristatable(group, meta) {
			return nil, errors.Errorf("multiple drivers in a non-tristated group: %s", pinList(group))
		}
	}
	if mixedTristate(group, meta) {
		return nil, errors.Errorf("mixed tristate discipline in group: %s", pinList(group))
	}

	if len(outputs) == 1 {
		src := outputs[0]
		var dsts []PinID
		for _, p := range inputs {
			if p != src {
				dsts = append(dsts, p)
			}
		}
		return BroadcastEntry{Source: src, Destinations: dsts}, nil
	}

	return TristatedEntry{Sources: outputs, Destinations: inputs}, nil
}

func allTristatable(group []PinID, meta map[PinID]PinMetadata) bool {
	for _, p := range group {
		if !meta[p].Tristatable {
			return false
		}
	}
	return true
}

func mixedTristate(group []PinID, meta map[PinID]PinMetadata) bool {
	tri := 0
	for _, p := range group {
		if meta[p].Tristatable {
			tri++
		}
	}
	return tri != 0 && tri != len(group)
}

func pinList(group []PinID) string {
	var b []byte
	for i, p := range group {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = append(b, p.String()...)
	}
	return string(b)
}
