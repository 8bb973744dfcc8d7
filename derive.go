// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Updater is implemented by components whose per-tick behaviour is
// hand-written Go rather than composed from other chips. Update reads
// the struct's input-tagged fields and sets its output-tagged fields;
// Derive wires the result up to ChipInterface/Chip.
type Updater interface {
	Update()
}

var valueType = reflect.TypeOf(Value{})

// Derive builds a Chip from a pointer to a struct whose fields are
// tagged `pcb:"in[,name]"`, `pcb:"out[,name]"` or `pcb:"io[,name]"`.
// Every tagged field must be of type Value. By default the pin name is
// the field name lower-cased; a specific name can be forced as the tag's
// second element. A `type:"..."` tag overrides the inferred data type
// (default: the pin name); `tristate:"true"` marks the pin tristatable.
// An io pin always reports InInputMode as false.
//
// This builds a Chip implementation by reflection instead of requiring
// every user-defined chip to hand-write ListPins/ReadPin/WritePin.
func Derive(u Updater) Chip {
	v := reflect.ValueOf(u)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		panic(errors.Errorf("pcb.Derive: %T is not a pointer to struct", u))
	}
	elem := v.Elem()
	typ := elem.Type()

	d := &derivedChip{updater: u, value: elem, pins: make(map[string]derivedPin)}

	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("pcb")
		if !ok {
			continue
		}
		if f.Type != valueType {
			panic(errors.Errorf("pcb.Derive: field %q tagged pcb but not of type pcb.Value", f.Name))
		}

		tv := strings.Split(tag, ",")
		var dir PinType
		switch tv[0] {
		case "in":
			dir = Input
		case "out":
			dir = Output
		case "io":
			dir = IO
		default:
			panic(errors.Errorf("pcb.Derive: unsupported pin direction %q on field %q", tv[0], f.Name))
		}

		name := strings.ToLower(f.Name)
		if len(tv) > 1 && tv[1] != "" {
			name = tv[1]
		}
		if _, dup := d.pins[name]; dup {
			panic(errors.Errorf("pcb.Derive: duplicate pin name %q on %s", name, typ.Name()))
		}

		dataType := f.Tag.Get("type")
		if dataType == "" {
			dataType = name
		}

		d.pins[name] = derivedPin{
			field: i,
			meta: PinMetadata{
				Type:        dir,
				DataType:    dataType,
				Tristatable: f.Tag.Get("tristate") == "true",
			},
		}
	}
	return d
}

type derivedPin struct {
	field int
	meta  PinMetadata
}

// derivedChip adapts a tagged struct to Chip via reflection. Tick calls
// the wrapped Updater's Update once per simulation step, consistent with
// Board.Tick's evaluate-then-propagate contract; purely combinational
// components simply recompute their output fields from their input
// fields on every call.
type derivedChip struct {
	updater Updater
	value   reflect.Value
	pins    map[string]derivedPin
}

func (d *derivedChip) ListPins() map[string]PinMetadata {
	out := make(map[string]PinMetadata, len(d.pins))
	for name, p := range d.pins {
		out[name] = p.meta
	}
	return out
}

func (d *derivedChip) ReadPin(name string) (Value, bool) {
	p, ok := d.pins[name]
	if !ok {
		return Value{}, false
	}
	return d.value.Field(p.field).Interface().(Value), true
}

func (d *derivedChip) WritePin(name string, v Value) {
	p, ok := d.pins[name]
	if !ok {
		return
	}
	d.value.Field(p.field).Set(reflect.ValueOf(v))
}

func (d *derivedChip) IsPinTristated(name string) bool {
	p, ok := d.pins[name]
	if !ok || !p.meta.Tristatable {
		return false
	}
	return d.value.Field(p.field).Interface().(Value).IsNone()
}

func (d *derivedChip) InInputMode(name string) bool {
	p, ok := d.pins[name]
	if !ok {
		return false
	}
	return p.meta.Type == Input
}

func (d *derivedChip) Tick() { d.updater.Update() }
