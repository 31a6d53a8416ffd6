// Copyright 2026 The SPITFT Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tftbus

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// ParallelOpts is the configuration for an 8-bit parallel bus
// connection.
type ParallelOpts struct {
	// RD is the read strobe, optional.
	RD gpio.PinOut
	// CS is the chip-select line, optional.
	CS gpio.PinOut
}

// Parallel is a placeholder for an 8-bit parallel bus connection.
//
// The write-strobe timing and data-line packing are not specified yet,
// so every operation fails with ErrUnsupported rather than guessing at
// a protocol. Construction succeeds so that configuration surfaces can
// be exercised; failures happen loudly at first use instead of being
// masked as silent no-ops.
type Parallel struct {
	d0 gpio.PinOut
	wr gpio.PinOut
	rd gpio.PinOut
	dc gpio.PinOut
	cs gpio.PinOut
}

// NewParallel records the pin assignment for a parallel bus connection.
//
// d0 is the lowest data line (the remaining seven are consecutive), wr
// is the write strobe and dc the data/command line.
func NewParallel(d0, wr, dc gpio.PinOut, opts *ParallelOpts) (*Parallel, error) {
	if d0 == nil || wr == nil {
		return nil, fmt.Errorf("tftbus: d0 and wr pins are required")
	}
	if dc == nil || dc == gpio.INVALID {
		return nil, fmt.Errorf("tftbus: dc pin is required")
	}
	if opts == nil {
		opts = &ParallelOpts{}
	}
	return &Parallel{d0: d0, wr: wr, rd: opts.RD, dc: dc, cs: opts.CS}, nil
}

func (p *Parallel) String() string {
	return fmt.Sprintf("tftbus.Parallel{%s, %s}", p.d0, p.wr)
}

// StartWrite implements Conn.
func (p *Parallel) StartWrite() error { return ErrUnsupported }

// EndWrite implements Conn.
func (p *Parallel) EndWrite() error { return ErrUnsupported }

// Command implements Conn.
func (p *Parallel) Command(cmd byte) error { return ErrUnsupported }

// WriteByte implements Conn.
func (p *Parallel) WriteByte(b byte) error { return ErrUnsupported }

// WriteWord implements Conn.
func (p *Parallel) WriteWord(w uint16) error { return ErrUnsupported }

// WriteLong implements Conn.
func (p *Parallel) WriteLong(l uint32) error { return ErrUnsupported }

// ReadByte implements Conn.
func (p *Parallel) ReadByte() (byte, error) { return 0, ErrUnsupported }

// WriteColor implements Conn.
func (p *Parallel) WriteColor(c uint16, n int) error { return ErrUnsupported }

// WritePixels implements Conn.
func (p *Parallel) WritePixels(px []uint16) error { return ErrUnsupported }

var _ Conn = &Parallel{}
