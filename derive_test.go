// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import "testing"

type derivedAnd struct {
	A, B Value `pcb:"in"`
	Sum  Value `pcb:"out,out" type:"bit"`
}

func (d *derivedAnd) Update() {
	a, _ := d.A.V.(bool)
	b, _ := d.B.V.(bool)
	d.Sum = NewValue("bit", a && b)
}

func TestDeriveBasic(t *testing.T) {
	c := Derive(&derivedAnd{})
	pins := c.ListPins()
	if len(pins) != 3 {
		t.Fatalf("ListPins() = %v, want 3 entries", pins)
	}
	if m := pins["a"]; m.Type != Input {
		t.Errorf(`pins["a"].Type = %v, want Input`, m.Type)
	}
	if m := pins["out"]; m.Type != Output || m.DataType != "bit" {
		t.Errorf(`pins["out"] = %+v, want Output/bit`, m)
	}

	c.WritePin("a", NewValue("a", true))
	c.WritePin("b", NewValue("b", true))
	c.Tick()
	v, ok := c.ReadPin("out")
	if !ok || v.V != true {
		t.Errorf("ReadPin(out) = %+v, ok=%v, want true", v, ok)
	}
}

type badField struct {
	X int `pcb:"in"`
}

func (b *badField) Update() {}

func TestDerivePanicsOnWrongFieldType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Derive: want panic for a pcb-tagged field that is not of type Value")
		}
	}()
	Derive(&badField{})
}

type dupPins struct {
	A Value `pcb:"in,shared"`
	B Value `pcb:"in,shared"`
}

func (d *dupPins) Update() {}

func TestDerivePanicsOnDuplicatePinName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Derive: want panic for duplicate pin name across fields")
		}
	}()
	Derive(&dupPins{})
}
