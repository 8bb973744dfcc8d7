// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import "testing"

func TestPlanGroupPair(t *testing.T) {
	a, b := p("g1", "out"), p("c1", "in")
	meta := map[PinID]PinMetadata{
		a: {Type: Output, DataType: "bit"},
		b: {Type: Input, DataType: "bit"},
	}
	entry, err := planGroup([]PinID{a, b}, meta)
	if err != nil {
		t.Fatal(err)
	}
	pe, ok := entry.(PairEntry)
	if !ok {
		t.Fatalf("planGroup returned %T, want PairEntry", entry)
	}
	if pe.Source != a || pe.Destination != b {
		t.Errorf("PairEntry = %+v, want source %s destination %s", pe, a, b)
	}
}

func TestPlanGroupBroadcast(t *testing.T) {
	src := p("g1", "out")
	d1, d2 := p("c1", "in"), p("c2", "in")
	meta := map[PinID]PinMetadata{
		src: {Type: Output, DataType: "bit"},
		d1:  {Type: Input, DataType: "bit"},
		d2:  {Type: Input, DataType: "bit"},
	}
	entry, err := planGroup([]PinID{src, d1, d2}, meta)
	if err != nil {
		t.Fatal(err)
	}
	be, ok := entry.(BroadcastEntry)
	if !ok {
		t.Fatalf("planGroup returned %T, want BroadcastEntry", entry)
	}
	if be.Source != src || len(be.Destinations) != 2 {
		t.Errorf("BroadcastEntry = %+v", be)
	}
}

func TestPlanGroupTristated(t *testing.T) {
	o1, o2 := p("d1", "out"), p("d2", "out")
	in := p("bus", "in")
	meta := map[PinID]PinMetadata{
		o1: {Type: Output, DataType: "bit", Tristatable: true},
		o2: {Type: Output, DataType: "bit", Tristatable: true},
		in: {Type: Input, DataType: "bit", Tristatable: true},
	}
	entry, err := planGroup([]PinID{o1, o2, in}, meta)
	if err != nil {
		t.Fatal(err)
	}
	te, ok := entry.(TristatedEntry)
	if !ok {
		t.Fatalf("planGroup returned %T, want TristatedEntry", entry)
	}
	if len(te.Sources) != 2 || len(te.Destinations) != 1 {
		t.Errorf("TristatedEntry = %+v", te)
	}
}

func TestPlanGroupMultipleDriversNotTristatedIsFatal(t *testing.T) {
	o1, o2 := p("d1", "out"), p("d2", "out")
	in := p("bus", "in")
	meta := map[PinID]PinMetadata{
		o1: {Type: Output, DataType: "bit"},
		o2: {Type: Output, DataType: "bit"},
		in: {Type: Input, DataType: "bit"},
	}
	if _, err := planGroup([]PinID{o1, o2, in}, meta); err == nil {
		t.Fatal("planGroup: want error for multiple non-tristated drivers")
	}
}

func TestPlanGroupMixedTristateDisciplineIsFatal(t *testing.T) {
	o1, o2 := p("d1", "out"), p("d2", "out")
	meta := map[PinID]PinMetadata{
		o1: {Type: Output, DataType: "bit", Tristatable: true},
		o2: {Type: Output, DataType: "bit", Tristatable: false},
	}
	if _, err := planGroup([]PinID{o1, o2}, meta); err == nil {
		t.Fatal("planGroup: want error for mixed tristate discipline")
	}
}

func TestPlanGroupSingleIOSelfLoop(t *testing.T) {
	io := p("chip1", "bidir")
	meta := map[PinID]PinMetadata{
		io: {Type: IO, DataType: "bit"},
	}
	entry, err := planGroup([]PinID{io}, meta)
	if err != nil {
		t.Fatal(err)
	}
	be, ok := entry.(BroadcastEntry)
	if !ok {
		t.Fatalf("planGroup returned %T, want BroadcastEntry", entry)
	}
	if be.Source != io || len(be.Destinations) != 0 {
		t.Errorf("degenerate single-pin group: %+v", be)
	}
}
