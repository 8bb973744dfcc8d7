// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import "strconv"

// PinType is the direction of a pin.
type PinType int

// Pin directions.
const (
	Input PinType = iota
	Output
	IO
)

func (t PinType) String() string {
	switch t {
	case Input:
		return "Input"
	case Output:
		return "Output"
	case IO:
		return "IO"
	default:
		return "PinType(" + strconv.Itoa(int(t)) + ")"
	}
}

// PinMetadata describes one pin of one chip: its direction, the type tag
// of the value it carries, and whether it admits a tristated (high
// impedance) state. Metadata is immutable once a board is assembled.
type PinMetadata struct {
	Type        PinType
	DataType    string
	Tristatable bool
}

// IsConnectable reports whether two pins may be shorted together: same
// data type, not both Input, not both Output, and in agreement on
// tristatability.
func (m PinMetadata) IsConnectable(o PinMetadata) bool {
	bothInput := m.Type == Input && o.Type == Input
	bothOutput := m.Type == Output && o.Type == Output
	tristateMismatch := m.Tristatable != o.Tristatable
	return !bothInput && !bothOutput && !tristateMismatch && m.DataType == o.DataType
}

// PinID identifies a single pin of a single chip within a board.
type PinID struct {
	Chip string
	Pin  string
}

func (p PinID) String() string {
	return p.Chip + "::" + p.Pin
}

// Value is an opaque, type-tagged snapshot of a pin's value. Propagation
// never interprets V or checks Tag; the build step has already certified
// that a connection's source and destination share a data type.
//
// A Value with V == nil represents the tristated "inactive" state for a
// tristatable pin.
type Value struct {
	Tag string
	V   interface{}
}

// NewValue wraps v with the given type tag.
func NewValue(tag string, v interface{}) Value {
	return Value{Tag: tag, V: v}
}

// None returns the inactive/tristated sentinel value for the given tag.
func None(tag string) Value {
	return Value{Tag: tag}
}

// IsNone reports whether v is the tristated sentinel (no active driver).
func (v Value) IsNone() bool {
	return v.V == nil
}
