// Copyright 2026 The SPITFT Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package image16 implements the packed 16-bit RGB565 color format used
// by SPI-connected TFT and color OLED controllers, along with an
// in-memory image.Image in that format.
package image16

import (
	"image"
	"image/color"
)

// RGB565 is a packed 16-bit color: 5 bits red, 6 bits green, 5 bits blue.
//
// The value is in host order; the wire order (big-endian) is the
// transport's concern.
type RGB565 uint16

// Color565 packs 8-bit red, green and blue channels into an RGB565 value.
func Color565(r, g, b uint8) RGB565 {
	return RGB565(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3)
}

// RGBA implements color.Color.
//
// The truncated channels are expanded by replicating their high bits, so
// that full-scale 565 values map back to full-scale 8-bit channels.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c >> 11)
	g6 := uint32(c>>5) & 0x3F
	b5 := uint32(c) & 0x1F
	r8 := r5<<3 | r5>>2
	g8 := g6<<2 | g6>>4
	b8 := b5<<3 | b5>>2
	return r8 | r8<<8, g8 | g8<<8, b8 | b8<<8, 0xFFFF
}

// RGB565Model converts any color.Color to the closest RGB565 value.
var RGB565Model = color.ModelFunc(convert)

func convert(c color.Color) color.Color {
	if c, ok := c.(RGB565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color565(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Image is an in-memory RGB565 image.
//
// Pix holds one host-order RGB565 value per pixel in row-major order,
// Stride values apart row to row.
type Image struct {
	Pix    []RGB565
	Stride int
	Rect   image.Rectangle
}

// New returns an initialized (all black) Image of the given bounds.
func New(r image.Rectangle) *Image {
	return &Image{
		Pix:    make([]RGB565, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

// ColorModel implements image.Image.
func (p *Image) ColorModel() color.Model {
	return RGB565Model
}

// Bounds implements image.Image.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}).In(p.Rect) {
		return RGB565(0)
	}
	return p.Pix[p.PixOffset(x, y)]
}

// Set implements draw.Image.
func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = convert(c).(RGB565)
}

// SetRGB565 stores a raw RGB565 value without color model conversion.
func (p *Image) SetRGB565(x, y int, c RGB565) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = c
}

// PixOffset returns the index of the pixel at (x, y) in Pix.
func (p *Image) PixOffset(x, y int) int {
	off := image.Pt(x, y).Sub(p.Rect.Min)
	return off.Y*p.Stride + off.X
}

var _ image.Image = &Image{}
