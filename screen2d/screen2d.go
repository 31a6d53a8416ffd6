// Copyright 2026 The SPITFT Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen2d implements an in-memory display controller that
// renders to the terminal (stdout) using ANSI color codes.
//
// It implements both halves of the spitft contract, tftbus.Conn and
// spitft.Display, so the whole drawing engine can run and be inspected
// without any hardware attached.
package screen2d

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"

	"github.com/samsondw/spitft"
	"github.com/samsondw/spitft/image16"
	"github.com/samsondw/spitft/tftbus"
)

// Opts represents the options available for this display.
type Opts struct {
	// W and H are the emulated panel size in pixels.
	W, H int
	// Palette converts colors to ANSI codes. Defaults to
	// ansi256.Default.
	Palette *ansi256.Palette
}

// Dev is a 2D display emulator that accepts the controller wire
// protocol and renders its framebuffer to the console.
//
// The address window and cursor follow RAM-write semantics of common
// TFT controllers: pixel writes fill the window in row-major order and
// wrap back to the window origin when it is full.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette
	fb      *image16.Image

	// Commands records every command byte received, in order. Useful
	// for inspecting what a device implementation sent.
	Commands []byte

	// Address window in pixel coordinates, inclusive.
	wx0, wy0, wx1, wy1 int
	// Write cursor within the window.
	cx, cy int
	// Pending high byte of a partially received pixel.
	pending     byte
	havePending bool

	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
//
// Permits local testing of drawing code while the panel is in the mail.
func New(opts *Opts) (*Dev, error) {
	if opts == nil || opts.W <= 0 || opts.H <= 0 {
		return nil, fmt.Errorf("screen2d: display dimensions must be positive")
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	d := &Dev{
		w:       colorable.NewColorableStdout(),
		palette: *p,
		fb:      image16.New(image.Rect(0, 0, opts.W, opts.H)),
	}
	d.resetWindow()
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("screen2d.Dev{%dx%d}", d.fb.Rect.Dx(), d.fb.Rect.Dy())
}

// Framebuffer returns the emulated panel RAM.
func (d *Dev) Framebuffer() *image16.Image {
	return d.fb
}

func (d *Dev) resetWindow() {
	d.wx0, d.wy0 = 0, 0
	d.wx1, d.wy1 = d.fb.Rect.Dx()-1, d.fb.Rect.Dy()-1
	d.cx, d.cy = 0, 0
	d.havePending = false
}

// Begin implements spitft.Display. It clears the panel RAM and resets
// the address window to the full screen.
func (d *Dev) Begin() error {
	for i := range d.fb.Pix {
		d.fb.Pix[i] = 0
	}
	d.resetWindow()
	return nil
}

// SetAddrWindow implements spitft.Display.
func (d *Dev) SetAddrWindow(x, y, w, h int16) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("screen2d: empty address window %dx%d", w, h)
	}
	if x < 0 || y < 0 || int(x)+int(w) > d.fb.Rect.Dx() || int(y)+int(h) > d.fb.Rect.Dy() {
		return fmt.Errorf("screen2d: address window (%d,%d)+%dx%d outside %s", x, y, w, h, d)
	}
	d.wx0, d.wy0 = int(x), int(y)
	d.wx1, d.wy1 = int(x)+int(w)-1, int(y)+int(h)-1
	d.cx, d.cy = d.wx0, d.wy0
	d.havePending = false
	return nil
}

// StartWrite implements tftbus.Conn. The emulator has no bus to claim.
func (d *Dev) StartWrite() error { return nil }

// EndWrite implements tftbus.Conn.
func (d *Dev) EndWrite() error { return nil }

// Command implements tftbus.Conn. Command bytes are recorded, not
// interpreted; the emulator's device behavior lives in Begin and
// SetAddrWindow.
func (d *Dev) Command(cmd byte) error {
	d.Commands = append(d.Commands, cmd)
	return nil
}

func (d *Dev) placePixel(c image16.RGB565) {
	d.fb.SetRGB565(d.cx, d.cy, c)
	d.cx++
	if d.cx > d.wx1 {
		d.cx = d.wx0
		d.cy++
		if d.cy > d.wy1 {
			d.cy = d.wy0
		}
	}
}

// WriteByte implements tftbus.Conn. Data bytes pair up into big-endian
// pixels, exactly as a 16-bit panel latches them.
func (d *Dev) WriteByte(b byte) error {
	if !d.havePending {
		d.pending = b
		d.havePending = true
		return nil
	}
	d.havePending = false
	d.placePixel(image16.RGB565(uint16(d.pending)<<8 | uint16(b)))
	return nil
}

// WriteWord implements tftbus.Conn.
func (d *Dev) WriteWord(w uint16) error {
	if err := d.WriteByte(byte(w >> 8)); err != nil {
		return err
	}
	return d.WriteByte(byte(w))
}

// WriteLong implements tftbus.Conn.
func (d *Dev) WriteLong(l uint32) error {
	if err := d.WriteWord(uint16(l >> 16)); err != nil {
		return err
	}
	return d.WriteWord(uint16(l))
}

// ReadByte implements tftbus.Conn.
func (d *Dev) ReadByte() (byte, error) { return 0, nil }

// WriteColor implements tftbus.Conn.
func (d *Dev) WriteColor(c uint16, n int) error {
	for ; n > 0; n-- {
		if err := d.WriteWord(c); err != nil {
			return err
		}
	}
	return nil
}

// WritePixels implements tftbus.Conn.
func (d *Dev) WritePixels(px []uint16) error {
	for _, c := range px {
		if err := d.WriteWord(c); err != nil {
			return err
		}
	}
	return nil
}

// Render writes the framebuffer to the console, one colored block per
// pixel.
func (d *Dev) Render() error {
	// Minimize allocations per call.
	d.buf.Reset()
	w, h := d.fb.Rect.Dx(), d.fb.Rect.Dy()
	for y := 0; y < h; y++ {
		_, _ = d.buf.WriteString("\033[0m")
		for x := 0; x < w; x++ {
			_, _ = io.WriteString(&d.buf, d.palette.Block(color.NRGBAModel.Convert(d.fb.At(x, y)).(color.NRGBA)))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

// Halt implements conn.Resource. It resets the terminal colors so the
// console is not left corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

var _ fmt.Stringer = &Dev{}
var _ tftbus.Conn = &Dev{}
var _ spitft.Display = &Dev{}
