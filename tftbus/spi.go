// Copyright 2026 The SPITFT Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tftbus

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// DefaultBufferSize is the scratch buffer capacity used when
// SPIOpts.BufferSize is zero. Larger buffers amortize per-transfer
// overhead on long fills at the cost of memory.
const DefaultBufferSize = 1024

// SPIOpts is the configuration for a hardware SPI connection.
type SPIOpts struct {
	// CS is the chip-select line. Leave nil when the select line is
	// handled by the SPI port itself or tied low.
	CS gpio.PinOut
	// Frequency is the bus clock. Defaults to 16MHz, a conservative
	// rate most TFT controllers accept.
	Frequency physic.Frequency
	// Mode is the SPI clock polarity and phase. Defaults to Mode0.
	Mode spi.Mode
	// Bits is the word size. Defaults to 8.
	Bits int
	// BufferSize is the scratch buffer capacity in bytes, rounded up to
	// an even count so batched 16-bit pixels never split across flushes.
	BufferSize int
}

// SPI is a hardware SPI connection to a display controller.
//
// Each SPI owns its scratch buffer; two instances never share batching
// state. A single instance must still be used from one goroutine at a
// time.
type SPI struct {
	c   conn.Conn
	dc  gpio.PinOut
	cs  gpio.PinOut
	buf []byte
}

// NewSPI opens a hardware SPI connection on the given port.
//
// The dc (data/command) pin is required. opts can be nil for defaults.
//
// The pins are driven to their idle state: CS high (deselected) and D/C
// high (data mode).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *SPIOpts) (*SPI, error) {
	if dc == nil || dc == gpio.INVALID {
		return nil, fmt.Errorf("tftbus: dc pin is required")
	}
	if opts == nil {
		opts = &SPIOpts{}
	}
	f := opts.Frequency
	if f == 0 {
		f = 16 * physic.MegaHertz
	}
	bits := opts.Bits
	if bits == 0 {
		bits = 8
	}
	size := opts.BufferSize
	if size <= 0 {
		size = DefaultBufferSize
	}
	if size&1 != 0 {
		size++
	}
	c, err := p.Connect(f, opts.Mode, bits)
	if err != nil {
		return nil, fmt.Errorf("tftbus: %w", err)
	}
	s := &SPI{
		c:   c,
		dc:  dc,
		cs:  opts.CS,
		buf: make([]byte, size),
	}
	if s.cs != nil {
		if err := s.cs.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("tftbus: %w", err)
		}
	}
	if err := s.dc.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("tftbus: %w", err)
	}
	return s, nil
}

func (s *SPI) String() string {
	return fmt.Sprintf("tftbus.SPI{%s}", s.c)
}

// StartWrite implements Conn.
//
// The underlying port arbitrates bus access per transfer; the
// transaction here scopes the chip-select assertion.
func (s *SPI) StartWrite() error {
	if s.cs != nil {
		return s.cs.Out(gpio.Low)
	}
	return nil
}

// EndWrite implements Conn.
func (s *SPI) EndWrite() error {
	if s.cs != nil {
		return s.cs.Out(gpio.High)
	}
	return nil
}

// Command implements Conn.
func (s *SPI) Command(cmd byte) error {
	if err := s.dc.Out(gpio.Low); err != nil {
		return err
	}
	s.buf[0] = cmd
	if err := s.c.Tx(s.buf[:1], nil); err != nil {
		return err
	}
	return s.dc.Out(gpio.High)
}

// WriteByte implements Conn.
func (s *SPI) WriteByte(b byte) error {
	s.buf[0] = b
	return s.c.Tx(s.buf[:1], nil)
}

// WriteWord implements Conn.
func (s *SPI) WriteWord(w uint16) error {
	s.buf[0] = byte(w >> 8)
	s.buf[1] = byte(w)
	return s.c.Tx(s.buf[:2], nil)
}

// WriteLong implements Conn.
func (s *SPI) WriteLong(l uint32) error {
	s.buf[0] = byte(l >> 24)
	s.buf[1] = byte(l >> 16)
	s.buf[2] = byte(l >> 8)
	s.buf[3] = byte(l)
	return s.c.Tx(s.buf[:4], nil)
}

// ReadByte implements Conn. It issues a zero byte and returns the byte
// clocked back.
func (s *SPI) ReadByte() (byte, error) {
	var r [1]byte
	if err := s.c.Tx([]byte{0}, r[:]); err != nil {
		return 0, err
	}
	return r[0], nil
}

// WriteColor implements Conn.
//
// The scratch buffer is filled once with the repeated color pattern and
// flushed in chunks no larger than its capacity until n pixels are out.
// When the color's two bytes are equal a plain byte fill suffices.
func (s *SPI) WriteColor(c uint16, n int) error {
	if n <= 0 {
		return nil
	}
	hi, lo := byte(c>>8), byte(c)
	if hi == lo {
		for i := range s.buf {
			s.buf[i] = hi
		}
	} else {
		for i := 0; i < len(s.buf); i += 2 {
			s.buf[i] = hi
			s.buf[i+1] = lo
		}
	}
	for remaining := 2 * n; remaining > 0; {
		chunk := remaining
		if chunk > len(s.buf) {
			chunk = len(s.buf)
		}
		if err := s.c.Tx(s.buf[:chunk], nil); err != nil {
			return err
		}
		remaining -= chunk
	}
	return nil
}

// WritePixels implements Conn.
//
// Pixels are byte-swapped into the scratch buffer and flushed whenever
// it fills; order is preserved across flushes.
func (s *SPI) WritePixels(px []uint16) error {
	n := 0
	for _, c := range px {
		s.buf[n] = byte(c >> 8)
		s.buf[n+1] = byte(c)
		n += 2
		if n == len(s.buf) {
			if err := s.c.Tx(s.buf[:n], nil); err != nil {
				return err
			}
			n = 0
		}
	}
	if n > 0 {
		return s.c.Tx(s.buf[:n], nil)
	}
	return nil
}

var _ Conn = &SPI{}
