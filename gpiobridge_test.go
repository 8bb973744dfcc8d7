// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import (
	"testing"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpiotest"
)

func TestGPIOInputSamplesLiveLevel(t *testing.T) {
	fake := &gpiotest.Pin{N: "FAKE0", Num: 0, L: gpio.Low}
	g := NewGPIOInput("sense", fake)

	v, ok := g.ReadPin("sense")
	if !ok || v.V != false {
		t.Fatalf("ReadPin(sense) = %+v, ok=%v, want false", v, ok)
	}

	fake.L = gpio.High
	v, ok = g.ReadPin("sense")
	if !ok || v.V != true {
		t.Errorf("ReadPin(sense) after flipping the line high = %+v, ok=%v, want true", v, ok)
	}
}

func TestGPIOOutputDrivesLine(t *testing.T) {
	fake := &gpiotest.Pin{N: "FAKE1", Num: 1}
	g := NewGPIOOutput("drive", fake)

	g.WritePin("drive", NewValue("bit", true))
	if fake.Read() != gpio.High {
		t.Errorf("fake line = %v, want High after writing true", fake.Read())
	}

	g.WritePin("drive", NewValue("bit", false))
	if fake.Read() != gpio.Low {
		t.Errorf("fake line = %v, want Low after writing false", fake.Read())
	}
}

func TestGPIOBridgeRoundTripsThroughBoard(t *testing.T) {
	src := `
	loopback {
		chip sense;
		chip drive;

		sense::sense - drive::drive;
	}
	`
	fake := &gpiotest.Pin{N: "FAKE2", Num: 2, L: gpio.High}
	desc, err := ParseBoard(src)
	if err != nil {
		t.Fatal(err)
	}
	bb := NewBoardBuilder(desc)
	if err := bb.Add("sense", NewGPIOInput("sense", fake)); err != nil {
		t.Fatal(err)
	}
	driven := &gpiotest.Pin{N: "FAKE3", Num: 3}
	if err := bb.Add("drive", NewGPIOOutput("drive", driven)); err != nil {
		t.Fatal(err)
	}
	board, err := bb.Build()
	if err != nil {
		t.Fatal(err)
	}

	// GPIOOutput.WritePin drives the physical pin synchronously, so a
	// single tick carries the sampled level all the way through.
	board.Tick()
	if driven.Read() != gpio.High {
		t.Errorf("driven line = %v, want High (mirroring the fake sense line)", driven.Read())
	}
}
