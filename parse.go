// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import (
	"github.com/circuitry/pcb/internal/hdl"
	"github.com/circuitry/pcb/internal/lex"
	"github.com/pkg/errors"
)

// ParseBoard parses a textual board description into a Description
// ready for BoardBuilder.Build. Every static check that does not require chip
// instances is applied as the description is built; the first
// violation aborts parsing.
func ParseBoard(input string) (*Description, error) {
	p := &boardParser{lx: hdl.NewLexer(input)}
	p.next()
	return p.parse()
}

type boardParser struct {
	lx  *hdl.Lexer
	tok hdl.Token
}

func (p *boardParser) next() hdl.Token {
	p.tok = p.lx.Next()
	return p.tok
}

func (p *boardParser) expect(t lex.Type) (hdl.Token, error) {
	if p.tok.Type != t {
		return hdl.Token{}, errors.Errorf("at pos %d: expected %s, found %s", p.tok.Pos, hdl.TypeName(t), hdl.TypeName(p.tok.Type))
	}
	tok := p.tok
	p.next()
	return tok, nil
}

func (p *boardParser) parse() (*Description, error) {
	name, err := p.expect(hdl.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(hdl.LBrace); err != nil {
		return nil, err
	}

	d := NewDescription(name.Value)

	for p.tok.Type == hdl.KwChip {
		p.next()
		id, err := p.expect(hdl.Ident)
		if err != nil {
			return nil, err
		}
		if err := d.AddChip(id.Value); err != nil {
			return nil, err
		}
		if _, err := p.expect(hdl.Semi); err != nil {
			return nil, err
		}
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	for p.tok.Type == hdl.Ident {
		a, err := p.parsePinRef()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(hdl.Dash); err != nil {
			return nil, err
		}
		b, err := p.parsePinRef()
		if err != nil {
			return nil, err
		}
		if err := d.Connect(a, b); err != nil {
			return nil, err
		}
		if _, err := p.expect(hdl.Semi); err != nil {
			return nil, err
		}
	}

	for p.tok.Type == hdl.KwExpose {
		p.next()
		var pins []PinID
		for {
			ref, err := p.parsePinRef()
			if err != nil {
				return nil, err
			}
			pins = append(pins, ref)
			if p.tok.Type != hdl.Comma {
				break
			}
			p.next()
		}
		if _, err := p.expect(hdl.KwAs); err != nil {
			return nil, err
		}
		extName, err := p.expect(hdl.Ident)
		if err != nil {
			return nil, err
		}
		if err := d.Expose(extName.Value, pins...); err != nil {
			return nil, err
		}
		if _, err := p.expect(hdl.Semi); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(hdl.RBrace); err != nil {
		return nil, err
	}
	if _, err := p.expect(hdl.EOF); err != nil {
		return nil, err
	}
	return d, nil
}

func (p *boardParser) parsePinRef() (PinID, error) {
	chip, err := p.expect(hdl.Ident)
	if err != nil {
		return PinID{}, err
	}
	if _, err := p.expect(hdl.DColon); err != nil {
		return PinID{}, err
	}
	pin, err := p.expect(hdl.Ident)
	if err != nil {
		return PinID{}, err
	}
	return PinID{Chip: chip.Value, Pin: pin.Value}, nil
}
