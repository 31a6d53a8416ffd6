// Copyright 2026 The SPITFT Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package clip reduces drawing requests against a display viewport.
//
// All functions are pure. A request is either rejected (fully off-screen
// or empty) or reduced to a Rect that is guaranteed fully on-screen with
// positive extents, safe for unchecked address-window fills.
//
// Coordinates and extents are signed 16-bit, matching the address range
// of the display controllers this supports. Inputs whose intermediate
// arithmetic exceeds that range are undefined.
package clip

// Bounds is the addressable pixel region at the active rotation.
// Both fields must be > 0.
type Bounds struct {
	W, H int16
}

// Rect is a clipped rectangle: X, Y >= 0, W, H > 0, X+W-1 < bounds width
// and Y+H-1 < bounds height.
type Rect struct {
	X, Y, W, H int16
}

// Pixel reports whether the pixel at (x, y) is on-screen.
func Pixel(b Bounds, x, y int16) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// FillRect reduces a rectangle request of any sign and magnitude.
//
// Negative extents grow left/up from the origin: the origin shifts so
// that the extent becomes positive before clipping. Zero-extent requests
// are rejected.
func FillRect(b Bounds, x, y, w, h int16) (Rect, bool) {
	if w == 0 || h == 0 {
		return Rect{}, false
	}
	if w < 0 {
		x += w + 1
		w = -w
	}
	if x >= b.W { // off right
		return Rect{}, false
	}
	if h < 0 {
		y += h + 1
		h = -h
	}
	if y >= b.H { // off bottom
		return Rect{}, false
	}
	x2 := x + w - 1
	if x2 < 0 { // off left
		return Rect{}, false
	}
	y2 := y + h - 1
	if y2 < 0 { // off top
		return Rect{}, false
	}
	if x < 0 {
		x = 0
		w = x2 + 1
	}
	if y < 0 {
		y = 0
		h = y2 + 1
	}
	if x2 >= b.W {
		w = b.W - x
	}
	if y2 >= b.H {
		h = b.H - y
	}
	return Rect{X: x, Y: y, W: w, H: h}, true
}

// HLine is FillRect specialized to a height-1 horizontal line.
func HLine(b Bounds, x, y, w int16) (Rect, bool) {
	if y < 0 || y >= b.H || w == 0 {
		return Rect{}, false
	}
	if w < 0 {
		x += w + 1
		w = -w
	}
	if x >= b.W {
		return Rect{}, false
	}
	x2 := x + w - 1
	if x2 < 0 {
		return Rect{}, false
	}
	if x < 0 {
		x = 0
		w = x2 + 1
	}
	if x2 >= b.W {
		w = b.W - x
	}
	return Rect{X: x, Y: y, W: w, H: 1}, true
}

// VLine is FillRect specialized to a width-1 vertical line.
func VLine(b Bounds, x, y, h int16) (Rect, bool) {
	if x < 0 || x >= b.W || h == 0 {
		return Rect{}, false
	}
	if h < 0 {
		y += h + 1
		h = -h
	}
	if y >= b.H {
		return Rect{}, false
	}
	y2 := y + h - 1
	if y2 < 0 {
		return Rect{}, false
	}
	if y < 0 {
		y = 0
		h = y2 + 1
	}
	if y2 >= b.H {
		h = b.H - y
	}
	return Rect{X: x, Y: y, W: 1, H: h}, true
}

// Bitmap clips the bounding box of a w×h source placed at (x, y).
//
// On acceptance it also returns the source-space offset (bx, by) of the
// clipped region's top-left corner, so a caller can index into the full
// source buffer with the original row stride. Extents must be positive;
// negative extents are not normalized for bitmaps.
func Bitmap(b Bounds, x, y, w, h int16) (r Rect, bx, by int16, ok bool) {
	if w <= 0 || h <= 0 {
		return Rect{}, 0, 0, false
	}
	if x >= b.W || y >= b.H {
		return Rect{}, 0, 0, false
	}
	x2 := x + w - 1
	y2 := y + h - 1
	if x2 < 0 || y2 < 0 {
		return Rect{}, 0, 0, false
	}
	if x < 0 {
		w += x
		bx = -x
		x = 0
	}
	if y < 0 {
		h += y
		by = -y
		y = 0
	}
	if x2 >= b.W {
		w = b.W - x
	}
	if y2 >= b.H {
		h = b.H - y
	}
	return Rect{X: x, Y: y, W: w, H: h}, bx, by, true
}
