// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chiplib

import (
	"testing"

	"github.com/circuitry/pcb"
)

func TestDFFDelaysByOneTick(t *testing.T) {
	d := NewDFF(bitType)
	d.WritePin("in", pcb.NewValue(bitType, true))
	v, _ := d.ReadPin("out")
	if v.V != nil {
		t.Fatalf("out before any Tick = %v, want the tristate-sentinel zero value", v.V)
	}
	d.Tick()
	v, _ = d.ReadPin("out")
	if v.V != true {
		t.Errorf("out after one Tick = %v, want true", v.V)
	}
}

func TestBusDriverEnable(t *testing.T) {
	d := NewBusDriver(bitType)
	d.WritePin("in", pcb.NewValue(bitType, true))
	d.WritePin("enable", pcb.NewValue(bitType, false))
	d.Tick()
	v, _ := d.ReadPin("out")
	if !v.IsNone() {
		t.Errorf("out with enable=false = %+v, want the inactive sentinel", v)
	}
	if !d.IsPinTristated("out") {
		t.Error("IsPinTristated(out) = false, want true while disabled")
	}

	d.WritePin("enable", pcb.NewValue(bitType, true))
	d.Tick()
	v, _ = d.ReadPin("out")
	if v.V != true {
		t.Errorf("out with enable=true = %v, want true", v.V)
	}
	if d.IsPinTristated("out") {
		t.Error("IsPinTristated(out) = true, want false while enabled")
	}
}

func TestBusSinkReportsActiveDriver(t *testing.T) {
	var got pcb.Value
	s := NewBusSink(bitType, func(v pcb.Value) { got = v })
	s.WritePin("in", pcb.NewValue(bitType, true))
	s.Tick()
	if got.V != true {
		t.Errorf("BusSink reported %v, want true", got.V)
	}
}
