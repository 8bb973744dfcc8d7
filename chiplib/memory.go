// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chiplib

import "github.com/circuitry/pcb"

// DFF is a clocked data flip-flop: out(t) = in(t-1). Tick samples in at
// the start of the step; the new value only becomes visible to the rest
// of the board once propagation runs and other chips' ReadPin is called
// on the next step.
type DFF struct {
	in, out pcb.Value
}

// NewDFF returns a register carrying values tagged dataType.
func NewDFF(dataType string) *DFF {
	return &DFF{in: pcb.None(dataType), out: pcb.None(dataType)}
}

func (d *DFF) ListPins() map[string]pcb.PinMetadata {
	return map[string]pcb.PinMetadata{
		pIn:  {Type: pcb.Input, DataType: d.in.Tag},
		pOut: {Type: pcb.Output, DataType: d.in.Tag},
	}
}

func (d *DFF) ReadPin(name string) (pcb.Value, bool) {
	switch name {
	case pIn:
		return d.in, true
	case pOut:
		return d.out, true
	}
	return pcb.Value{}, false
}

func (d *DFF) WritePin(name string, v pcb.Value) {
	if name == pIn {
		d.in = v
	}
}

func (d *DFF) IsPinTristated(name string) bool { return false }

func (d *DFF) InInputMode(name string) bool { return name == pIn }

func (d *DFF) Tick() { d.out = d.in }

// BusDriver is a tristatable output buffer: while enable holds true it
// drives in onto out; otherwise out reports the inactive (high
// impedance) sentinel. Several BusDriver outputs may be shorted onto the
// same bus provided at most one has its enable held true on any given
// tick.
type BusDriver struct {
	dataType        string
	in, enable, out pcb.Value
}

// NewBusDriver returns a bus driver carrying values tagged dataType.
func NewBusDriver(dataType string) *BusDriver {
	return &BusDriver{
		dataType: dataType,
		in:       pcb.None(dataType),
		enable:   pcb.None(bitType),
		out:      pcb.None(dataType),
	}
}

func (d *BusDriver) ListPins() map[string]pcb.PinMetadata {
	return map[string]pcb.PinMetadata{
		pIn:     {Type: pcb.Input, DataType: d.dataType},
		pEnable: {Type: pcb.Input, DataType: bitType},
		pOut:    {Type: pcb.Output, DataType: d.dataType, Tristatable: true},
	}
}

func (d *BusDriver) ReadPin(name string) (pcb.Value, bool) {
	switch name {
	case pIn:
		return d.in, true
	case pEnable:
		return d.enable, true
	case pOut:
		return d.out, true
	}
	return pcb.Value{}, false
}

func (d *BusDriver) WritePin(name string, v pcb.Value) {
	switch name {
	case pIn:
		d.in = v
	case pEnable:
		d.enable = v
	}
}

func (d *BusDriver) IsPinTristated(name string) bool {
	return name == pOut && d.out.IsNone()
}

func (d *BusDriver) InInputMode(name string) bool {
	return name == pIn || name == pEnable
}

func (d *BusDriver) Tick() {
	if en, _ := d.enable.V.(bool); en {
		d.out = d.in
	} else {
		d.out = pcb.None(d.dataType)
	}
}

// BusSink is a tristatable listener: a single Input pin, itself marked
// Tristatable so it may terminate a tristated bus alongside driving
// BusDrivers without breaking the group's tristate-discipline uniformity
// check. On every Tick it reports the value its pin holds. The pin starts
// out holding the inactive sentinel, and a board does not write a bus
// value to a destination that reports itself tristated, so the pin takes
// values off the bus only once it holds a real value; while no driver is
// active it keeps its last value.
type BusSink struct {
	dataType string
	in       pcb.Value
	f        func(pcb.Value)
}

// NewBusSink returns a bus listener reporting to f on every Tick.
func NewBusSink(dataType string, f func(pcb.Value)) *BusSink {
	return &BusSink{dataType: dataType, in: pcb.None(dataType), f: f}
}

func (s *BusSink) ListPins() map[string]pcb.PinMetadata {
	return map[string]pcb.PinMetadata{pIn: {Type: pcb.Input, DataType: s.dataType, Tristatable: true}}
}

func (s *BusSink) ReadPin(name string) (pcb.Value, bool) {
	if name != pIn {
		return pcb.Value{}, false
	}
	return s.in, true
}

func (s *BusSink) WritePin(name string, v pcb.Value) {
	if name == pIn {
		s.in = v
	}
}

func (s *BusSink) IsPinTristated(name string) bool {
	return name == pIn && s.in.IsNone()
}

func (s *BusSink) InInputMode(name string) bool { return name == pIn }

func (s *BusSink) Tick() { s.f(s.in) }
