// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package chiplib provides a library of reusable chips: logic gates, a
// clocked register, a tristatable bus driver, and function-backed
// input/output probes.
package chiplib

import "github.com/circuitry/pcb"

// common pin names shared across the chip library.
const (
	pA      = "a"
	pB      = "b"
	pIn     = "in"
	pOut    = "out"
	pEnable = "enable"
)

const bitType = "bit"

// binaryGate is the shared implementation behind the two-input gates: a
// combinational part with no internal state, recomputing out from a and
// b on every Tick.
type binaryGate struct {
	fn      func(a, b bool) bool
	a, b, out pcb.Value
}

func newBinaryGate(fn func(a, b bool) bool) *binaryGate {
	return &binaryGate{fn: fn, a: pcb.None(bitType), b: pcb.None(bitType), out: pcb.None(bitType)}
}

func (g *binaryGate) ListPins() map[string]pcb.PinMetadata {
	return map[string]pcb.PinMetadata{
		pA:   {Type: pcb.Input, DataType: bitType},
		pB:   {Type: pcb.Input, DataType: bitType},
		pOut: {Type: pcb.Output, DataType: bitType},
	}
}

func (g *binaryGate) ReadPin(name string) (pcb.Value, bool) {
	switch name {
	case pA:
		return g.a, true
	case pB:
		return g.b, true
	case pOut:
		return g.out, true
	}
	return pcb.Value{}, false
}

func (g *binaryGate) WritePin(name string, v pcb.Value) {
	switch name {
	case pA:
		g.a = v
	case pB:
		g.b = v
	}
}

func (g *binaryGate) IsPinTristated(name string) bool { return false }

func (g *binaryGate) InInputMode(name string) bool { return name == pA || name == pB }

func (g *binaryGate) Tick() {
	a, _ := g.a.V.(bool)
	b, _ := g.b.V.(bool)
	g.out = pcb.NewValue(bitType, g.fn(a, b))
}

// And returns a two-input AND gate (out = a && b).
func And() pcb.Chip { return newBinaryGate(func(a, b bool) bool { return a && b }) }

// Nand returns a two-input NAND gate (out = !(a && b)). NAND is
// functionally complete: every other gate in this package can be built
// from NAND alone.
func Nand() pcb.Chip { return newBinaryGate(func(a, b bool) bool { return !(a && b) }) }

// Or returns a two-input OR gate (out = a || b).
func Or() pcb.Chip { return newBinaryGate(func(a, b bool) bool { return a || b }) }

// Nor returns a two-input NOR gate (out = !(a || b)).
func Nor() pcb.Chip { return newBinaryGate(func(a, b bool) bool { return !(a || b) }) }

// Xor returns a two-input XOR gate (out = a != b).
func Xor() pcb.Chip { return newBinaryGate(func(a, b bool) bool { return a != b }) }

// Xnor returns a two-input XNOR gate (out = a == b).
func Xnor() pcb.Chip { return newBinaryGate(func(a, b bool) bool { return a == b }) }

// notGate is a one-input NOT gate (out = !in).
type notGate struct {
	in, out pcb.Value
}

// Not returns a NOT gate.
func Not() pcb.Chip {
	return &notGate{in: pcb.None(bitType), out: pcb.None(bitType)}
}

func (g *notGate) ListPins() map[string]pcb.PinMetadata {
	return map[string]pcb.PinMetadata{
		pIn:  {Type: pcb.Input, DataType: bitType},
		pOut: {Type: pcb.Output, DataType: bitType},
	}
}

func (g *notGate) ReadPin(name string) (pcb.Value, bool) {
	switch name {
	case pIn:
		return g.in, true
	case pOut:
		return g.out, true
	}
	return pcb.Value{}, false
}

func (g *notGate) WritePin(name string, v pcb.Value) {
	if name == pIn {
		g.in = v
	}
}

func (g *notGate) IsPinTristated(name string) bool { return false }

func (g *notGate) InInputMode(name string) bool { return name == pIn }

func (g *notGate) Tick() {
	in, _ := g.in.V.(bool)
	g.out = pcb.NewValue(bitType, !in)
}
