// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import "github.com/pkg/errors"

// ExposeEntry binds an external board-boundary name to one or more
// internal pins. A single pin is a passthrough expose; two or more pins
// is a fan-in expose.
type ExposeEntry struct {
	Name string
	Pins []PinID
}

// IsFanIn reports whether this expose binds more than one internal pin.
func (e ExposeEntry) IsFanIn() bool { return len(e.Pins) > 1 }

// connPair is one declared connection between two pins, in declaration
// order. Kept around (independently of the shorted groups it contributes
// to) for the per-connection connectability cross-check at build time.
type connPair struct {
	A, B PinID
}

// Description is the validated intermediate form produced by compiling a
// board description: the ordered chip roster, the undirected pin
// adjacency implied by declared shortings, and the exposed-pin table.
//
// A Description knows nothing about chip instances: pin existence and
// direction/type compatibility are facts only available once instances
// are supplied, and are checked later by BoardBuilder.Build.
type Description struct {
	Name string

	roster    []string
	rosterSet map[string]bool

	adjacency map[PinID][]PinID
	conns     []connPair

	exposes []ExposeEntry
	exposed map[PinID]string // internal pin -> external name it is already exposed under
}

// NewDescription starts a new, empty board description named name.
func NewDescription(name string) *Description {
	return &Description{
		Name:      name,
		rosterSet: make(map[string]bool),
		adjacency: make(map[PinID][]PinID),
		exposed:   make(map[PinID]string),
	}
}

// Roster returns the chip names in declaration order.
func (d *Description) Roster() []string {
	return d.roster
}

func (d *Description) hasChip(name string) bool { return d.rosterSet[name] }

// AddChip declares a chip named name as part of the board. Declaring the
// same name twice is a fatal duplicate-chip error.
func (d *Description) AddChip(name string) error {
	if d.rosterSet[name] {
		return errors.Errorf("duplicate chip declaration %q", name)
	}
	d.rosterSet[name] = true
	d.roster = append(d.roster, name)
	return nil
}

// Connect declares that pins a and b are electrically shorted together.
func (d *Description) Connect(a, b PinID) error {
	if !d.hasChip(a.Chip) {
		return errors.Errorf("connection refers to undeclared chip %q", a.Chip)
	}
	if !d.hasChip(b.Chip) {
		return errors.Errorf("connection refers to undeclared chip %q", b.Chip)
	}
	if a == b {
		return errors.Errorf("self-connection on pin %s", a)
	}
	d.adjacency[a] = append(d.adjacency[a], b)
	d.adjacency[b] = append(d.adjacency[b], a)
	d.conns = append(d.conns, connPair{a, b})
	return nil
}

// Expose declares that pins are re-exported on the board's own boundary
// under the external name name.
func (d *Description) Expose(name string, pins ...PinID) error {
	if len(pins) == 0 {
		return errors.Errorf("expose %q names no pins", name)
	}
	for _, p := range pins {
		if !d.hasChip(p.Chip) {
			return errors.Errorf("expose refers to undeclared chip %q", p.Chip)
		}
		if other, ok := d.exposed[p]; ok {
			return errors.Errorf("pin %s exposed under both %q and %q", p, other, name)
		}
	}
	for _, p := range pins {
		d.exposed[p] = name
	}
	cp := append([]PinID(nil), pins...)
	d.exposes = append(d.exposes, ExposeEntry{Name: name, Pins: cp})
	return nil
}

// Exposes returns the declared expose table in declaration order.
func (d *Description) Exposes() []ExposeEntry {
	return d.exposes
}

// Groups computes the shorted groups implied by every declared
// connection.
func (d *Description) Groups() []pinSet {
	return computeGroups(d.adjacency)
}

// Validate runs the static checks that do not require chip instances.
// Chip-existence, self-connection and duplicate-expose checks are
// enforced incrementally by AddChip/Connect/Expose above; the one check
// left for here is requiring a non-empty roster.
func (d *Description) Validate() error {
	if len(d.roster) == 0 {
		return errors.New("board description declares no chips")
	}
	return nil
}

// checkExposeOverlap re-checks, given the shorted groups computed by the
// planner, that no fan-in expose's internal pins sit inside a shorted
// group that also contains a pin that expose does not itself name.
func (d *Description) checkExposeOverlap(groups []pinSet) error {
	for _, e := range d.exposes {
		if !e.IsFanIn() {
			continue
		}
		members := pinSet{}
		for _, p := range e.Pins {
			members.add(p)
		}
		touched := pinSet{}
		for _, p := range e.Pins {
			if g := groupOf(groups, p); g != nil {
				for m := range g {
					touched.add(m)
				}
			}
		}
		for m := range touched {
			if !members.has(m) {
				return errors.Errorf("fan-in expose %q overlaps an internal-only short at pin %s", e.Name, m)
			}
		}
	}
	return nil
}
