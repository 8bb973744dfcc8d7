// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

// ChipInterface is the capability contract every chip satisfies. It is
// deliberately minimal: the board never copies between statically typed
// representations, it only transfers opaque Value snapshots whose Tag
// equality is certified at build time by the planner.
//
// Implementations are expected to be safe to use from a single goroutine
// only; the runtime never calls these methods concurrently.
type ChipInterface interface {
	// ListPins returns this chip's pin metadata, keyed by pin name. The
	// result must be identical across the chip's lifetime.
	ListPins() map[string]PinMetadata

	// ReadPin returns a freshly copied snapshot of the named pin's
	// current value. ok is false only when name is not one of this
	// chip's pins.
	ReadPin(name string) (v Value, ok bool)

	// WritePin sets the named pin's value from v. v.Tag must match the
	// pin's DataType; a mismatch is a programmer error and WritePin may
	// panic. Unknown pin names are silently ignored, since the
	// connection plan only ever presents valid names.
	WritePin(name string, v Value)

	// IsPinTristated reports whether the named pin is tristatable and
	// currently holds the inactive (high impedance) sentinel. It always
	// returns false for non-tristatable pins.
	IsPinTristated(name string) bool

	// InInputMode reports, for an IO pin, whether it is currently
	// oriented to consume rather than produce. Input pins report true and
	// Output pins report false.
	InInputMode(name string) bool
}

// Chip is a ChipInterface with a clock. Stateful components implement
// Tick to advance their internal state and update their output pins;
// purely combinational components may implement Tick as a no-op and
// recompute outputs lazily from ReadPin, provided they still satisfy the
// evaluate-then-propagate contract described in Board.Tick.
type Chip interface {
	ChipInterface
	// Tick advances the chip by one discrete simulation step. It must
	// only read pin values as they stood at the start of the step (the
	// board guarantees this by running every chip's Tick before
	// propagating any of them).
	Tick()
}
