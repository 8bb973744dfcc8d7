// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chiplib

import "github.com/circuitry/pcb"

// Input is a one-pin probe chip whose out value is recomputed from a
// Go callback on every Tick, for driving board-external stimuli from
// test code.
type Input struct {
	f   func() bool
	out pcb.Value
}

// NewInput returns an input probe driven by f.
func NewInput(f func() bool) *Input {
	return &Input{f: f, out: pcb.None(bitType)}
}

func (c *Input) ListPins() map[string]pcb.PinMetadata {
	return map[string]pcb.PinMetadata{pOut: {Type: pcb.Output, DataType: bitType}}
}

func (c *Input) ReadPin(name string) (pcb.Value, bool) {
	if name != pOut {
		return pcb.Value{}, false
	}
	return c.out, true
}

func (c *Input) WritePin(name string, v pcb.Value) {}

func (c *Input) IsPinTristated(name string) bool { return false }

func (c *Input) InInputMode(name string) bool { return false }

func (c *Input) Tick() { c.out = pcb.NewValue(bitType, c.f()) }

// Output is a one-pin probe chip that forwards its in value to a Go
// callback on every Tick, for observing board-internal signals from
// test code.
type Output struct {
	f  func(bool)
	in pcb.Value
}

// NewOutput returns an output probe reporting to f.
func NewOutput(f func(bool)) *Output {
	return &Output{f: f, in: pcb.None(bitType)}
}

func (c *Output) ListPins() map[string]pcb.PinMetadata {
	return map[string]pcb.PinMetadata{pIn: {Type: pcb.Input, DataType: bitType}}
}

func (c *Output) ReadPin(name string) (pcb.Value, bool) {
	if name != pIn {
		return pcb.Value{}, false
	}
	return c.in, true
}

func (c *Output) WritePin(name string, v pcb.Value) {
	if name == pIn {
		c.in = v
	}
}

func (c *Output) IsPinTristated(name string) bool { return false }

func (c *Output) InInputMode(name string) bool { return name == pIn }

func (c *Output) Tick() {
	v, _ := c.in.V.(bool)
	c.f(v)
}
