// Copyright 2026 The SPITFT Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package spitft

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3/display"

	"github.com/samsondw/spitft/clip"
	"github.com/samsondw/spitft/image16"
	"github.com/samsondw/spitft/tftbus"
)

// Display is the device-specific capability the drawing engine drives.
//
// Implementations own the controller's command set; the engine knows
// nothing about it beyond these two operations.
type Display interface {
	// Begin initializes the display controller. It must be called
	// exactly once, before any drawing operation.
	Begin() error
	// SetAddrWindow configures the controller so that the next w*h
	// pixel writes land in row-major order starting at (x, y). The
	// window must lie within the current bounds; violating that is
	// undefined.
	SetAddrWindow(x, y, w, h int16) error
}

// Opts is the configuration for the drawing engine.
type Opts struct {
	// W and H are the addressable size in pixels at the default
	// rotation. Both are required.
	W, H int16
	// InvertOn and InvertOff are the controller's single-byte commands
	// toggling inverted color mode, used by InvertDisplay. Zero values
	// are fine for displays without the feature.
	InvertOn  byte
	InvertOff byte
}

// Dev is the clipped, transaction-scoped drawing engine for a
// pixel-addressable display.
//
// Two API tiers exist. The Write* tier assumes the caller holds a
// transaction (StartWrite/EndWrite) and, where pixels are streamed, has
// already positioned the address window. The Draw*/Fill*/Push* tier is
// self-contained: it clips first, and a rejected request returns nil
// without any bus activity at all.
//
// A Dev must be used from a single goroutine; see the tftbus package
// for the locking discipline.
type Dev struct {
	bus       tftbus.Conn
	disp      Display
	bounds    clip.Bounds
	invertOn  byte
	invertOff byte

	// row batches expanded scanlines and converted pixel streams into
	// bounded transport writes. Lazily sized.
	row []uint16
}

// New wires a transport and a device implementation into a drawing
// engine. opts is required.
func New(bus tftbus.Conn, disp Display, opts *Opts) (*Dev, error) {
	if bus == nil || disp == nil {
		return nil, fmt.Errorf("spitft: bus and display are required")
	}
	if opts == nil || opts.W <= 0 || opts.H <= 0 {
		return nil, fmt.Errorf("spitft: display dimensions must be positive")
	}
	return &Dev{
		bus:       bus,
		disp:      disp,
		bounds:    clip.Bounds{W: opts.W, H: opts.H},
		invertOn:  opts.InvertOn,
		invertOff: opts.InvertOff,
	}, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("spitft.Dev{%s, %dx%d}", d.bus, d.bounds.W, d.bounds.H)
}

// Init runs the device's one-time initialization sequence.
func (d *Dev) Init() error {
	return d.disp.Begin()
}

// SetBounds updates the addressable size after a rotation change. The
// device implementation is responsible for reprogramming the controller;
// this only adjusts the clipping viewport.
func (d *Dev) SetBounds(w, h int16) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("spitft: display dimensions must be positive")
	}
	d.bounds = clip.Bounds{W: w, H: h}
	return nil
}

// StartWrite begins a transaction for a run of Write* calls.
func (d *Dev) StartWrite() error {
	return d.bus.StartWrite()
}

// EndWrite ends the transaction begun by StartWrite.
func (d *Dev) EndWrite() error {
	return d.bus.EndWrite()
}

// rowBuf returns a scratch slice of at least n pixels.
func (d *Dev) rowBuf(n int) []uint16 {
	if len(d.row) < n {
		d.row = make([]uint16, n)
	}
	return d.row[:n]
}

// writePixels streams colors through the row buffer in bounded chunks,
// preserving pixel order.
func (d *Dev) writePixels(px []image16.RGB565) error {
	const chunk = 512
	n := len(px)
	if n > chunk {
		n = chunk
	}
	row := d.rowBuf(n)
	for len(px) > 0 {
		n = len(px)
		if n > len(row) {
			n = len(row)
		}
		for i := 0; i < n; i++ {
			row[i] = uint16(px[i])
		}
		if err := d.bus.WritePixels(row[:n]); err != nil {
			return err
		}
		px = px[n:]
	}
	return nil
}

// Lower-level drawing operations. These require a transaction around
// them via StartWrite/EndWrite; composite primitives start a single
// transaction and make multiple calls before ending it, which is cheaper
// than one transaction per call.

// WritePixel draws one pixel, clipped to the bounds.
func (d *Dev) WritePixel(x, y int16, c image16.RGB565) error {
	if !clip.Pixel(d.bounds, x, y) {
		return nil
	}
	if err := d.disp.SetAddrWindow(x, y, 1, 1); err != nil {
		return err
	}
	return d.bus.WriteWord(uint16(c))
}

// WritePixels streams packed colors to the current address window.
func (d *Dev) WritePixels(px []image16.RGB565) error {
	return d.writePixels(px)
}

// WriteColor issues n pixels of one color to the current address window.
func (d *Dev) WriteColor(c image16.RGB565, n int) error {
	return d.bus.WriteColor(uint16(c), n)
}

// WriteFillRect fills a rectangle, performing edge clipping and
// rejection.
func (d *Dev) WriteFillRect(x, y, w, h int16, c image16.RGB565) error {
	r, ok := clip.FillRect(d.bounds, x, y, w, h)
	if !ok {
		return nil
	}
	return d.fillPreclipped(r, c)
}

// WriteFastHLine draws a horizontal line, performing edge clipping and
// rejection.
func (d *Dev) WriteFastHLine(x, y, w int16, c image16.RGB565) error {
	r, ok := clip.HLine(d.bounds, x, y, w)
	if !ok {
		return nil
	}
	return d.fillPreclipped(r, c)
}

// WriteFastVLine draws a vertical line, performing edge clipping and
// rejection.
func (d *Dev) WriteFastVLine(x, y, h int16, c image16.RGB565) error {
	r, ok := clip.VLine(d.bounds, x, y, h)
	if !ok {
		return nil
	}
	return d.fillPreclipped(r, c)
}

// WriteFillRectPreclipped is the unchecked fast path of WriteFillRect:
// the rectangle MUST be fully on-screen with positive extents. No
// clipping or rejection is performed; callers that have already clipped
// use this to skip redundant work. Violating the precondition is
// undefined.
func (d *Dev) WriteFillRectPreclipped(x, y, w, h int16, c image16.RGB565) error {
	return d.fillPreclipped(clip.Rect{X: x, Y: y, W: w, H: h}, c)
}

func (d *Dev) fillPreclipped(r clip.Rect, c image16.RGB565) error {
	if err := d.disp.SetAddrWindow(r.X, r.Y, r.W, r.H); err != nil {
		return err
	}
	return d.bus.WriteColor(uint16(c), int(r.W)*int(r.H))
}

// Self-contained drawing operations. Each provides its own transaction.
// Clipping happens before the transaction is set up, so a rejected
// request costs zero bus activity.

// DrawPixel draws one pixel in its own transaction.
func (d *Dev) DrawPixel(x, y int16, c image16.RGB565) error {
	if !clip.Pixel(d.bounds, x, y) {
		return nil
	}
	t := txn{d: d}
	t.start()
	t.window(x, y, 1, 1)
	t.word(uint16(c))
	t.end()
	return t.err
}

// FillRect fills a rectangle in its own transaction, with edge clipping
// and rejection.
func (d *Dev) FillRect(x, y, w, h int16, c image16.RGB565) error {
	r, ok := clip.FillRect(d.bounds, x, y, w, h)
	if !ok {
		return nil
	}
	t := txn{d: d}
	t.start()
	t.window(r.X, r.Y, r.W, r.H)
	t.color(c, int(r.W)*int(r.H))
	t.end()
	return t.err
}

// FillScreen fills the whole viewport with one color.
func (d *Dev) FillScreen(c image16.RGB565) error {
	return d.FillRect(0, 0, d.bounds.W, d.bounds.H, c)
}

// DrawFastHLine draws a horizontal line in its own transaction.
func (d *Dev) DrawFastHLine(x, y, w int16, c image16.RGB565) error {
	r, ok := clip.HLine(d.bounds, x, y, w)
	if !ok {
		return nil
	}
	t := txn{d: d}
	t.start()
	t.window(r.X, r.Y, r.W, r.H)
	t.color(c, int(r.W))
	t.end()
	return t.err
}

// DrawFastVLine draws a vertical line in its own transaction.
func (d *Dev) DrawFastVLine(x, y, h int16, c image16.RGB565) error {
	r, ok := clip.VLine(d.bounds, x, y, h)
	if !ok {
		return nil
	}
	t := txn{d: d}
	t.start()
	t.window(r.X, r.Y, r.W, r.H)
	t.color(c, int(r.H))
	t.end()
	return t.err
}

// PushColor issues a single pixel of the given color to the current
// address window, in its own transaction.
func (d *Dev) PushColor(c image16.RGB565) error {
	t := txn{d: d}
	t.start()
	t.word(uint16(c))
	t.end()
	return t.err
}

// DrawRGBBitmap draws a w×h packed RGB565 bitmap at (x, y) in its own
// transaction, with edge clipping and rejection.
//
// Horizontally clipped rows index into the full source buffer: each
// scanline write covers the clipped width while the source advances by
// the original stride.
func (d *Dev) DrawRGBBitmap(x, y int16, pix []image16.RGB565, w, h int16) error {
	r, bx, by, ok := clip.Bitmap(d.bounds, x, y, w, h)
	if !ok {
		return nil
	}
	off := int(by)*int(w) + int(bx) // clipped top-left within the source
	t := txn{d: d}
	t.start()
	t.window(r.X, r.Y, r.W, r.H)
	for row := 0; row < int(r.H); row++ {
		t.pixels(pix[off : off+int(r.W)])
		off += int(w)
	}
	t.end()
	return t.err
}

// DrawXBitmap draws a monochrome, row-byte-padded bitmap (XBM bit order:
// LSB first within each byte, left to right) at (x, y), expanding set
// bits to fg and clear bits to bg. One scanline is expanded and written
// per row, all inside one transaction.
//
// No clipping is performed; the bitmap MUST lie within the bounds.
func (d *Dev) DrawXBitmap(x, y int16, bitmap []byte, w, h int16, fg, bg image16.RGB565) error {
	byteWidth := (int(w) + 7) / 8
	row := d.rowBuf(int(w))
	t := txn{d: d}
	t.start()
	for j := 0; j < int(h); j++ {
		var b byte
		for i := 0; i < int(w); i++ {
			if i&7 != 0 {
				b >>= 1
			} else {
				b = bitmap[j*byteWidth+i/8]
			}
			if b&0x01 != 0 {
				row[i] = uint16(fg)
			} else {
				row[i] = uint16(bg)
			}
		}
		t.window(x, y+int16(j), w, 1)
		t.rawPixels(row[:w])
	}
	t.end()
	return t.err
}

// InvertDisplay toggles inverted color mode using the command bytes
// supplied at construction, in its own transaction.
func (d *Dev) InvertDisplay(invert bool) error {
	cmd := d.invertOff
	if invert {
		cmd = d.invertOn
	}
	t := txn{d: d}
	t.start()
	t.command(cmd)
	t.end()
	return t.err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image16.RGB565Model
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(d.bounds.W), int(d.bounds.H))
}

// Draw implements display.Drawer.
//
// It draws synchronously; once it returns the display is updated. A
// source that is already a full-coverage *image16.Image is streamed
// directly, anything else is converted through a temporary buffer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.Bounds())
	if r.Empty() {
		return nil
	}
	if img, ok := src.(*image16.Image); ok && sp == (image.Point{}) &&
		img.Rect.Min == (image.Point{}) && img.Stride == img.Rect.Dx() &&
		img.Rect.Dx() == r.Dx() && img.Rect.Dy() == r.Dy() {
		return d.DrawRGBBitmap(int16(r.Min.X), int16(r.Min.Y), img.Pix, int16(r.Dx()), int16(r.Dy()))
	}
	buf := image16.New(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(buf, buf.Rect, src, sp, draw.Src)
	return d.DrawRGBBitmap(int16(r.Min.X), int16(r.Min.Y), buf.Pix, int16(r.Dx()), int16(r.Dy()))
}

// Halt implements conn.Resource. The engine holds no device power
// state; turning the panel off is the Display implementation's concern.
func (d *Dev) Halt() error {
	return nil
}

var _ display.Drawer = &Dev{}
