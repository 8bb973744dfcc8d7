// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import "periph.io/x/periph/conn/gpio"

// GPIOInput bridges a physical input pin into the simulation: from the
// board's point of view it is a single-pin Output chip, since it is the
// one driving a value onto the boundary. ReadPin samples the hardware
// pin directly; Tick is a no-op since the value is driven externally,
// not computed.
type GPIOInput struct {
	pin  gpio.PinIn
	name string
}

// NewGPIOInput wraps pin as a chip exposing a single Output pin named
// name, of data type "bit".
func NewGPIOInput(name string, pin gpio.PinIn) *GPIOInput {
	return &GPIOInput{pin: pin, name: name}
}

func (g *GPIOInput) ListPins() map[string]PinMetadata {
	return map[string]PinMetadata{g.name: {Type: Output, DataType: "bit"}}
}

func (g *GPIOInput) ReadPin(name string) (Value, bool) {
	if name != g.name {
		return Value{}, false
	}
	return NewValue("bit", g.pin.Read() == gpio.High), true
}

func (g *GPIOInput) WritePin(name string, v Value) {}

func (g *GPIOInput) IsPinTristated(name string) bool { return false }

func (g *GPIOInput) InInputMode(name string) bool { return false }

// Tick is a no-op: the hardware pin is sampled fresh on every ReadPin.
func (g *GPIOInput) Tick() {}

// GPIOOutput bridges a simulated signal out to a physical output pin:
// WritePin drives the hardware pin immediately. From the board's point
// of view it is a single-pin Input chip.
type GPIOOutput struct {
	pin   gpio.PinOut
	name  string
	level Value
}

// NewGPIOOutput wraps pin as a chip exposing a single Input pin named
// name, of data type "bit".
func NewGPIOOutput(name string, pin gpio.PinOut) *GPIOOutput {
	return &GPIOOutput{pin: pin, name: name, level: NewValue("bit", false)}
}

func (g *GPIOOutput) ListPins() map[string]PinMetadata {
	return map[string]PinMetadata{g.name: {Type: Input, DataType: "bit"}}
}

func (g *GPIOOutput) ReadPin(name string) (Value, bool) {
	if name != g.name {
		return Value{}, false
	}
	return g.level, true
}

func (g *GPIOOutput) WritePin(name string, v Value) {
	if name != g.name {
		return
	}
	level := gpio.Low
	if b, ok := v.V.(bool); ok && b {
		level = gpio.High
	}
	_ = g.pin.Out(level)
	g.level = v
}

func (g *GPIOOutput) IsPinTristated(name string) bool { return false }

func (g *GPIOOutput) InInputMode(name string) bool { return name == g.name }

// Tick is a no-op: the write happens synchronously in WritePin.
func (g *GPIOOutput) Tick() {}
