// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// yamlBoard mirrors the textual board grammar as a nested YAML
// document: one struct per section, each with its own Validate.
type yamlBoard struct {
	Name        string           `yaml:"name"`
	Chips       []string         `yaml:"chips"`
	Connections []yamlConnection `yaml:"connections"`
	Exposes     []yamlExpose     `yaml:"exposes"`
}

func (b *yamlBoard) Validate() error {
	if b.Name == "" {
		return errors.New("board: name is required")
	}
	if len(b.Chips) == 0 {
		return errors.New("board: at least one chip is required")
	}
	for _, c := range b.Connections {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	for _, e := range b.Exposes {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// yamlConnection is one "a - b" shorting declaration, each side a
// "chip::pin" reference.
type yamlConnection struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

func (c yamlConnection) Validate() error {
	if c.A == "" || c.B == "" {
		return errors.New("connection: both a and b are required")
	}
	return nil
}

// yamlExpose is one "expose pins... as name" declaration.
type yamlExpose struct {
	Pins []string `yaml:"pins"`
	As   string   `yaml:"as"`
}

func (e yamlExpose) Validate() error {
	if e.As == "" {
		return errors.New("expose: as is required")
	}
	if len(e.Pins) == 0 {
		return errors.Errorf("expose %q: pins must name at least one pin", e.As)
	}
	return nil
}

// LoadYAML parses a YAML board description - an alternate front end to
// the textual grammar ParseBoard reads, covering identical Description
// semantics - into a Description ready for BoardBuilder.Build.
func LoadYAML(r io.Reader) (*Description, error) {
	var yb yamlBoard
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&yb); err != nil {
		return nil, errors.Wrap(err, "decoding yaml board description")
	}
	if err := yb.Validate(); err != nil {
		return nil, err
	}

	d := NewDescription(yb.Name)
	for _, c := range yb.Chips {
		if err := d.AddChip(c); err != nil {
			return nil, err
		}
	}
	for _, c := range yb.Connections {
		a, err := parsePinString(c.A)
		if err != nil {
			return nil, err
		}
		b, err := parsePinString(c.B)
		if err != nil {
			return nil, err
		}
		if err := d.Connect(a, b); err != nil {
			return nil, err
		}
	}
	for _, e := range yb.Exposes {
		pins := make([]PinID, len(e.Pins))
		for i, raw := range e.Pins {
			p, err := parsePinString(raw)
			if err != nil {
				return nil, err
			}
			pins[i] = p
		}
		if err := d.Expose(e.As, pins...); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func parsePinString(s string) (PinID, error) {
	chip, pin, ok := strings.Cut(s, "::")
	if !ok {
		return PinID{}, errors.Errorf("invalid pin reference %q, expected chip::pin", s)
	}
	return PinID{Chip: chip, Pin: pin}, nil
}
