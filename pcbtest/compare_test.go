// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pcbtest

import (
	"testing"

	"github.com/circuitry/pcb/chiplib"
)

func TestCompareChipsAgree(t *testing.T) {
	CompareChips(t, chiplib.And(), chiplib.And(), 32)
}

func TestFixtureSequence(t *testing.T) {
	f := NewFixture("bit", true, false, true)

	if v, _ := f.ReadPin("out"); !v.IsNone() {
		t.Fatalf("before any Tick, out = %+v, want the inactive sentinel", v)
	}

	want := []bool{true, false, true, true} // holds the last scripted value once exhausted
	for i, w := range want {
		f.Tick()
		v, ok := f.ReadPin("out")
		if !ok {
			t.Fatalf("tick %d: ReadPin(out): ok = false", i)
		}
		if v.V != w {
			t.Errorf("tick %d: out = %v, want %v", i, v.V, w)
		}
	}
}
