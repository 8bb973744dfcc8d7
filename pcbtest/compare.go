// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pcbtest provides utility chips and functions for testing
// boards and chips.
package pcbtest

import (
	"math/rand"
	"testing"

	"github.com/circuitry/pcb"
)

// CompareChips ticks both a and b through n random assignments of their
// (identical) Input pins and fails t if any Output pin ever disagrees.
// Both chips must expose the same pin names, directions and data types.
func CompareChips(t *testing.T, a, b pcb.Chip, n int) {
	t.Helper()

	pa, pb := a.ListPins(), b.ListPins()
	if len(pa) != len(pb) {
		t.Fatalf("pin count mismatch: %d vs %d", len(pa), len(pb))
	}
	var inputs, outputs []string
	for name, m := range pa {
		mb, ok := pb[name]
		if !ok {
			t.Fatalf("chip b has no pin %q", name)
		}
		if m.Type != mb.Type || m.DataType != mb.DataType {
			t.Fatalf("pin %q differs between chips: %+v vs %+v", name, m, mb)
		}
		if m.Type == pcb.Input {
			inputs = append(inputs, name)
		} else {
			outputs = append(outputs, name)
		}
	}

	for i := 0; i < n; i++ {
		for _, name := range inputs {
			v := pcb.NewValue(pa[name].DataType, rand.Int63()&1 == 1)
			a.WritePin(name, v)
			b.WritePin(name, v)
		}
		a.Tick()
		b.Tick()
		for _, name := range outputs {
			va, _ := a.ReadPin(name)
			vb, _ := b.ReadPin(name)
			if va != vb {
				t.Fatalf("output %q differs on iteration %d: %+v vs %+v", name, i, va, vb)
			}
		}
	}
}

// Fixture is a scriptable stimulus chip: each Tick it drives the next
// value from script onto its single "out" pin, holding the last value
// once the script is exhausted.
type Fixture struct {
	dataType string
	script   []interface{}
	i        int
	out      pcb.Value
}

// NewFixture returns a fixture driving the given scripted values, tagged
// dataType, one per Tick.
func NewFixture(dataType string, script ...interface{}) *Fixture {
	return &Fixture{dataType: dataType, script: script, out: pcb.None(dataType)}
}

func (f *Fixture) ListPins() map[string]pcb.PinMetadata {
	return map[string]pcb.PinMetadata{"out": {Type: pcb.Output, DataType: f.dataType}}
}

func (f *Fixture) ReadPin(name string) (pcb.Value, bool) {
	if name != "out" {
		return pcb.Value{}, false
	}
	return f.out, true
}

func (f *Fixture) WritePin(name string, v pcb.Value) {}

func (f *Fixture) IsPinTristated(name string) bool { return false }

func (f *Fixture) InInputMode(name string) bool { return false }

func (f *Fixture) Tick() {
	if f.i < len(f.script) {
		f.out = pcb.NewValue(f.dataType, f.script[f.i])
		f.i++
	}
}
