// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import "github.com/pkg/errors"

// BoardBuilder accumulates chip instances against a Description and
// assembles a Board once every roster member has been supplied and the
// build-time validation pipeline passes.
type BoardBuilder struct {
	desc  *Description
	chips map[string]ChipInterface
}

// NewBoardBuilder starts assembling a board from a parsed description.
func NewBoardBuilder(desc *Description) *BoardBuilder {
	return &BoardBuilder{desc: desc, chips: make(map[string]ChipInterface, len(desc.roster))}
}

// Add binds a chip instance to the roster entry name. name must have
// been declared ("chip name;") in the description.
func (b *BoardBuilder) Add(name string, c ChipInterface) error {
	if !b.desc.hasChip(name) {
		return errors.Errorf("chip %q was not declared in the board description", name)
	}
	if _, ok := b.chips[name]; ok {
		return errors.Errorf("chip %q already added", name)
	}
	b.chips[name] = c
	return nil
}

// Build runs the build-time validation pipeline and returns the
// assembled board. The first violation aborts the build with a
// diagnostic naming the offending chip or pin.
func (b *BoardBuilder) Build() (*Board, error) {
	for _, name := range b.desc.roster {
		if _, ok := b.chips[name]; !ok {
			return nil, errors.Errorf("chip %q was never added", name)
		}
	}

	meta := make(map[PinID]PinMetadata)
	lookup := func(p PinID) (PinMetadata, error) {
		if m, ok := meta[p]; ok {
			return m, nil
		}
		pins := b.chips[p.Chip].ListPins()
		m, ok := pins[p.Pin]
		if !ok {
			return PinMetadata{}, errors.Errorf("chip %q has no pin %q", p.Chip, p.Pin)
		}
		meta[p] = m
		return m, nil
	}

	for p := range b.desc.adjacency {
		if _, err := lookup(p); err != nil {
			return nil, err
		}
	}
	for _, e := range b.desc.exposes {
		for _, p := range e.Pins {
			if _, err := lookup(p); err != nil {
				return nil, err
			}
		}
	}

	for _, c := range b.desc.conns {
		if !meta[c.A].IsConnectable(meta[c.B]) {
			return nil, errors.Errorf("%s and %s are not connectable", c.A, c.B)
		}
	}

	exposeMeta := make(map[string]PinMetadata, len(b.desc.exposes))
	for _, e := range b.desc.exposes {
		first := meta[e.Pins[0]]
		if e.IsFanIn() {
			if first.Type != Input {
				return nil, errors.Errorf("fan-in expose %q: %s is not an Input pin", e.Name, e.Pins[0])
			}
			for _, p := range e.Pins[1:] {
				m := meta[p]
				if m.Type != Input {
					return nil, errors.Errorf("fan-in expose %q: %s is not an Input pin", e.Name, p)
				}
				if m.DataType != first.DataType {
					return nil, errors.Errorf("fan-in expose %q: %s has type %q, expected %q", e.Name, p, m.DataType, first.DataType)
				}
			}
		}
		exposeMeta[e.Name] = first
	}

	groups := b.desc.Groups()
	if err := b.desc.checkExposeOverlap(groups); err != nil {
		return nil, err
	}

	plan := make([]PlanEntry, 0, len(groups))
	for _, g := range groups {
		entry, err := planGroup(g.sortedSlice(), meta)
		if err != nil {
			return nil, err
		}
		plan = append(plan, entry)
	}

	exposeIndex := make(map[string]ExposeEntry, len(b.desc.exposes))
	for _, e := range b.desc.exposes {
		exposeIndex[e.Name] = e
	}

	return &Board{
		name:       b.desc.Name,
		roster:     append([]string(nil), b.desc.roster...),
		chips:      b.chips,
		plan:       plan,
		exposes:    exposeIndex,
		exposeMeta: exposeMeta,
	}, nil
}

// Board is an assembled chip-of-chips: a roster of chip instances plus
// an ordered connection plan and an exposed-pin table. After assembly
// only its chips' pin values mutate; the roster and plan never change.
//
// Board itself satisfies Chip, so boards nest inside larger boards
// without special-casing.
type Board struct {
	name   string
	roster []string
	chips  map[string]ChipInterface
	plan   []PlanEntry

	exposes    map[string]ExposeEntry
	exposeMeta map[string]PinMetadata
}

// Name returns the board's external identifier.
func (b *Board) Name() string { return b.name }

// Tick advances the simulation by one discrete step: every chip in the
// roster is evaluated against the pin values as they stood at the start
// of the step, and only then are values propagated across the
// connection plan, in the plan's stored order.
func (b *Board) Tick() {
	for _, name := range b.roster {
		if t, ok := b.chips[name].(Chip); ok {
			t.Tick()
		}
	}
	for _, entry := range b.plan {
		switch e := entry.(type) {
		case PairEntry:
			v, _ := b.read(e.Source)
			b.write(e.Destination, v)
		case BroadcastEntry:
			v, _ := b.read(e.Source)
			for _, d := range e.Destinations {
				if d == e.Source {
					continue
				}
				b.write(d, v)
			}
		case TristatedEntry:
			b.propagateTristated(e)
		}
	}
}

func (b *Board) propagateTristated(e TristatedEntry) {
	var active *PinID
	for i, s := range e.Sources {
		c := b.chips[s.Chip]
		if c.IsPinTristated(s.Pin) || c.InInputMode(s.Pin) {
			continue
		}
		if active != nil {
			panic(errors.Errorf("bus contention: %s and %s are both active drivers", *active, s))
		}
		active = &e.Sources[i]
	}
	if active == nil {
		// quiescent: no active driver this tick, destinations keep their
		// prior value.
		return
	}
	v, _ := b.read(*active)
	for _, d := range e.Destinations {
		if d == *active {
			continue
		}
		if b.chips[d.Chip].IsPinTristated(d.Pin) {
			continue
		}
		b.write(d, v)
	}
}

func (b *Board) read(p PinID) (Value, bool) {
	return b.chips[p.Chip].ReadPin(p.Pin)
}

func (b *Board) write(p PinID, v Value) {
	b.chips[p.Chip].WritePin(p.Pin, v)
}

// GetChip returns the chip instance bound to name.
func (b *Board) GetChip(name string) (ChipInterface, bool) {
	c, ok := b.chips[name]
	return c, ok
}

// GetChipAs returns the chip instance bound to name, downcast to T. ok is
// false if no chip was added under that name or it does not implement T.
func GetChipAs[T ChipInterface](b *Board, name string) (T, bool) {
	var zero T
	c, ok := b.chips[name]
	if !ok {
		return zero, false
	}
	t, ok := c.(T)
	return t, ok
}

// ListPins implements ChipInterface: one entry per expose, keyed by its
// external name.
func (b *Board) ListPins() map[string]PinMetadata {
	out := make(map[string]PinMetadata, len(b.exposeMeta))
	for k, v := range b.exposeMeta {
		out[k] = v
	}
	return out
}

// ReadPin implements ChipInterface. For a fan-in expose it reads the
// first underlying pin, which is legal because all fan-in members are
// Input pins of the same type.
func (b *Board) ReadPin(name string) (Value, bool) {
	e, ok := b.exposes[name]
	if !ok {
		return Value{}, false
	}
	return b.read(e.Pins[0])
}

// WritePin implements ChipInterface. A fan-in expose forwards the write
// to every underlying pin that is not currently tristated (a no-op check
// for non-tristatable pins, which always report not-tristated).
func (b *Board) WritePin(name string, v Value) {
	e, ok := b.exposes[name]
	if !ok {
		return
	}
	for _, p := range e.Pins {
		if b.chips[p.Chip].IsPinTristated(p.Pin) {
			continue
		}
		b.write(p, v)
	}
}

// IsPinTristated implements ChipInterface: forwards directly for
// passthrough exposes, always false for fan-in exposes.
func (b *Board) IsPinTristated(name string) bool {
	e, ok := b.exposes[name]
	if !ok || e.IsFanIn() {
		return false
	}
	p := e.Pins[0]
	return b.chips[p.Chip].IsPinTristated(p.Pin)
}

// InInputMode implements ChipInterface: forwards directly for
// passthrough exposes, always true for fan-in exposes (their members are
// all Input pins by construction).
func (b *Board) InInputMode(name string) bool {
	e, ok := b.exposes[name]
	if !ok {
		return false
	}
	if e.IsFanIn() {
		return true
	}
	p := e.Pins[0]
	return b.chips[p.Chip].InInputMode(p.Pin)
}
