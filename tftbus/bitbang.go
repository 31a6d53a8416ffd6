// Copyright 2026 The SPITFT Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tftbus

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// BitBangOpts is the configuration for a software SPI connection.
type BitBangOpts struct {
	// MISO is the data-in line. Leave nil for write-only displays;
	// ReadByte then returns 0.
	MISO gpio.PinIn
	// CS is the chip-select line, optional.
	CS gpio.PinOut
}

// BitBang is a software (bit-banged) SPI connection.
//
// Every bit is shifted out individually, most-significant bit first:
// MOSI is set, then SCK pulsed high and back low. The clock idles low
// and data is presented before the rising edge (mode 0). There is no
// batching; cost is linear in the bit count.
type BitBang struct {
	mosi gpio.PinOut
	sck  gpio.PinOut
	miso gpio.PinIn
	dc   gpio.PinOut
	cs   gpio.PinOut
}

// NewBitBang opens a software SPI connection on the given GPIO lines.
//
// mosi, sck and dc are required. opts can be nil. The pins are driven
// to their idle state: MOSI and SCK low, CS high, D/C high (data mode).
func NewBitBang(mosi, sck, dc gpio.PinOut, opts *BitBangOpts) (*BitBang, error) {
	if mosi == nil || sck == nil {
		return nil, fmt.Errorf("tftbus: mosi and sck pins are required")
	}
	if dc == nil || dc == gpio.INVALID {
		return nil, fmt.Errorf("tftbus: dc pin is required")
	}
	if opts == nil {
		opts = &BitBangOpts{}
	}
	b := &BitBang{
		mosi: mosi,
		sck:  sck,
		miso: opts.MISO,
		dc:   dc,
		cs:   opts.CS,
	}
	if b.cs != nil {
		if err := b.cs.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("tftbus: %w", err)
		}
	}
	if err := b.dc.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("tftbus: %w", err)
	}
	if err := b.mosi.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("tftbus: %w", err)
	}
	if err := b.sck.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("tftbus: %w", err)
	}
	if b.miso != nil {
		if err := b.miso.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("tftbus: %w", err)
		}
	}
	return b, nil
}

func (b *BitBang) String() string {
	return fmt.Sprintf("tftbus.BitBang{%s, %s}", b.mosi, b.sck)
}

// StartWrite implements Conn. There is no shared-bus arbitration for a
// bit-banged bus; only the chip-select is asserted.
func (b *BitBang) StartWrite() error {
	if b.cs != nil {
		return b.cs.Out(gpio.Low)
	}
	return nil
}

// EndWrite implements Conn.
func (b *BitBang) EndWrite() error {
	if b.cs != nil {
		return b.cs.Out(gpio.High)
	}
	return nil
}

// shiftOut clocks the low `bits` bits of v out MSB-first.
func (b *BitBang) shiftOut(v uint32, bits uint) error {
	mask := uint32(1) << (bits - 1)
	for i := uint(0); i < bits; i++ {
		l := gpio.Low
		if v&mask != 0 {
			l = gpio.High
		}
		if err := b.mosi.Out(l); err != nil {
			return err
		}
		if err := b.sck.Out(gpio.High); err != nil {
			return err
		}
		if err := b.sck.Out(gpio.Low); err != nil {
			return err
		}
		v <<= 1
	}
	return nil
}

// Command implements Conn.
func (b *BitBang) Command(cmd byte) error {
	if err := b.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := b.shiftOut(uint32(cmd), 8); err != nil {
		return err
	}
	return b.dc.Out(gpio.High)
}

// WriteByte implements Conn.
func (b *BitBang) WriteByte(v byte) error {
	return b.shiftOut(uint32(v), 8)
}

// WriteWord implements Conn.
func (b *BitBang) WriteWord(w uint16) error {
	return b.shiftOut(uint32(w), 16)
}

// WriteLong implements Conn.
func (b *BitBang) WriteLong(l uint32) error {
	return b.shiftOut(l, 32)
}

// ReadByte implements Conn. It clocks in 8 bits MSB-first when a MISO
// line is configured and returns 0 otherwise.
func (b *BitBang) ReadByte() (byte, error) {
	if b.miso == nil {
		return 0, nil
	}
	var v byte
	for i := 0; i < 8; i++ {
		if err := b.sck.Out(gpio.High); err != nil {
			return 0, err
		}
		v <<= 1
		if b.miso.Read() == gpio.High {
			v++
		}
		if err := b.sck.Out(gpio.Low); err != nil {
			return 0, err
		}
	}
	return v, nil
}

// WriteColor implements Conn. Each pixel's 16 bits are shifted out
// individually; there is no batching benefit on a bit-banged bus.
func (b *BitBang) WriteColor(c uint16, n int) error {
	for ; n > 0; n-- {
		if err := b.shiftOut(uint32(c), 16); err != nil {
			return err
		}
	}
	return nil
}

// WritePixels implements Conn.
func (b *BitBang) WritePixels(px []uint16) error {
	for _, c := range px {
		if err := b.shiftOut(uint32(c), 16); err != nil {
			return err
		}
	}
	return nil
}

var _ Conn = &BitBang{}
