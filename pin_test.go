// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import "testing"

func TestPinTypeString(t *testing.T) {
	tests := []struct {
		in   PinType
		want string
	}{
		{Input, "Input"},
		{Output, "Output"},
		{IO, "IO"},
		{PinType(99), "PinType(99)"},
	}
	for _, tc := range tests {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPinIDString(t *testing.T) {
	p := PinID{Chip: "a1", Pin: "out"}
	if got, want := p.String(), "a1::out"; got != want {
		t.Errorf("PinID.String() = %q, want %q", got, want)
	}
}

func TestIsConnectable(t *testing.T) {
	in := PinMetadata{Type: Input, DataType: "bit"}
	out := PinMetadata{Type: Output, DataType: "bit"}
	io := PinMetadata{Type: IO, DataType: "bit"}
	outWord := PinMetadata{Type: Output, DataType: "word"}
	triOut := PinMetadata{Type: Output, DataType: "bit", Tristatable: true}
	triIn := PinMetadata{Type: Input, DataType: "bit", Tristatable: true}

	tests := []struct {
		name string
		a, b PinMetadata
		want bool
	}{
		{"input-output ok", in, out, true},
		{"output-input ok", out, in, true},
		{"input-input rejected", in, in, false},
		{"output-output rejected", out, out, false},
		{"io-io ok", io, io, true},
		{"io-input ok", io, in, true},
		{"io-output ok", io, out, true},
		{"type mismatch rejected", out, outWord, false},
		{"tristate mismatch rejected", out, triOut, false},
		{"tristate discipline mismatch with plain input rejected", triOut, in, false},
		{"tristate agreement ok", triOut, triIn, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.IsConnectable(tc.b); got != tc.want {
				t.Errorf("IsConnectable(%+v, %+v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestValueNone(t *testing.T) {
	v := None("bit")
	if !v.IsNone() {
		t.Error("None(...).IsNone() = false, want true")
	}
	if got := NewValue("bit", false); got.IsNone() {
		t.Error("NewValue(bit, false).IsNone() = true, want false (false is a real value, not the tristate sentinel)")
	}
}
