// Copyright 2026 The SPITFT Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clip

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFillRect(t *testing.T) {
	vp := Bounds{W: 240, H: 320}
	for _, tc := range []struct {
		name       string
		x, y, w, h int16
		want       Rect
		wantOK     bool
	}{
		{name: "fully inside is unchanged", x: 10, y: 20, w: 30, h: 40, want: Rect{10, 20, 30, 40}, wantOK: true},
		{name: "full screen is unchanged", x: 0, y: 0, w: 240, h: 320, want: Rect{0, 0, 240, 320}, wantOK: true},
		{name: "single pixel", x: 239, y: 319, w: 1, h: 1, want: Rect{239, 319, 1, 1}, wantOK: true},
		{name: "off right", x: 240, y: 0, w: 10, h: 10},
		{name: "off bottom", x: 0, y: 320, w: 10, h: 10},
		{name: "off above-left", x: -20, y: -20, w: 10, h: 10},
		{name: "zero width", x: 0, y: 0, w: 0, h: 5},
		{name: "zero height", x: 0, y: 0, w: 5, h: 0},
		{name: "partial clip left and bottom", x: -5, y: 300, w: 20, h: 30, want: Rect{0, 300, 15, 20}, wantOK: true},
		{name: "partial clip top and right", x: 230, y: -10, w: 20, h: 30, want: Rect{230, 0, 10, 20}, wantOK: true},
		{name: "oversized clips to full screen", x: -5, y: -5, w: 250, h: 330, want: Rect{0, 0, 240, 320}, wantOK: true},
		{name: "negative extents normalize", x: 50, y: 50, w: -10, h: -10, want: Rect{41, 41, 10, 10}, wantOK: true},
		{name: "negative extent off screen", x: 5, y: 5, w: -20, h: 10, want: Rect{0, 5, 6, 10}, wantOK: true},
		{name: "negative extent fully left", x: -1, y: 0, w: -10, h: 10},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FillRect(vp, tc.x, tc.y, tc.w, tc.h)
			if ok != tc.wantOK {
				t.Fatalf("FillRect(%d,%d,%d,%d) ok = %t, want %t", tc.x, tc.y, tc.w, tc.h, ok, tc.wantOK)
			}
			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Errorf("FillRect(%d,%d,%d,%d) difference (-got +want):\n%s", tc.x, tc.y, tc.w, tc.h, diff)
			}
		})
	}
}

func TestFillRectIdempotent(t *testing.T) {
	vp := Bounds{W: 240, H: 320}
	r, ok := FillRect(vp, -5, 300, 20, 30)
	if !ok {
		t.Fatal("first clip rejected")
	}
	r2, ok := FillRect(vp, r.X, r.Y, r.W, r.H)
	if !ok {
		t.Fatal("second clip rejected")
	}
	if r2 != r {
		t.Errorf("clipping a preclipped rect changed it: %+v -> %+v", r, r2)
	}
}

func TestHLine(t *testing.T) {
	vp := Bounds{W: 240, H: 320}
	for _, tc := range []struct {
		name    string
		x, y, w int16
		want    Rect
		wantOK  bool
	}{
		{name: "inside", x: 10, y: 20, w: 30, want: Rect{10, 20, 30, 1}, wantOK: true},
		{name: "y above screen", x: 10, y: -1, w: 30},
		{name: "y below screen", x: 10, y: 320, w: 30},
		{name: "zero width", x: 10, y: 20, w: 0},
		{name: "off right", x: 240, y: 20, w: 5},
		{name: "off left", x: -10, y: 20, w: 5},
		{name: "clip both ends", x: -5, y: 20, w: 300, want: Rect{0, 20, 240, 1}, wantOK: true},
		{name: "negative width normalizes", x: 50, y: 20, w: -10, want: Rect{41, 20, 10, 1}, wantOK: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := HLine(vp, tc.x, tc.y, tc.w)
			if ok != tc.wantOK {
				t.Fatalf("HLine(%d,%d,%d) ok = %t, want %t", tc.x, tc.y, tc.w, ok, tc.wantOK)
			}
			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Errorf("HLine(%d,%d,%d) difference (-got +want):\n%s", tc.x, tc.y, tc.w, diff)
			}
		})
	}
}

func TestVLine(t *testing.T) {
	vp := Bounds{W: 240, H: 320}
	for _, tc := range []struct {
		name    string
		x, y, h int16
		want    Rect
		wantOK  bool
	}{
		{name: "inside", x: 10, y: 20, h: 30, want: Rect{10, 20, 1, 30}, wantOK: true},
		{name: "x left of screen", x: -1, y: 20, h: 30},
		{name: "x right of screen", x: 240, y: 20, h: 30},
		{name: "zero height", x: 10, y: 20, h: 0},
		{name: "off bottom", x: 10, y: 320, h: 5},
		{name: "off top", x: 10, y: -10, h: 5},
		{name: "clip both ends", x: 10, y: -5, h: 400, want: Rect{10, 0, 1, 320}, wantOK: true},
		{name: "negative height normalizes", x: 10, y: 50, h: -10, want: Rect{10, 41, 1, 10}, wantOK: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := VLine(vp, tc.x, tc.y, tc.h)
			if ok != tc.wantOK {
				t.Fatalf("VLine(%d,%d,%d) ok = %t, want %t", tc.x, tc.y, tc.h, ok, tc.wantOK)
			}
			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Errorf("VLine(%d,%d,%d) difference (-got +want):\n%s", tc.x, tc.y, tc.h, diff)
			}
		})
	}
}

func TestPixel(t *testing.T) {
	vp := Bounds{W: 240, H: 320}
	for _, tc := range []struct {
		x, y int16
		want bool
	}{
		{0, 0, true},
		{239, 319, true},
		{-1, 0, false},
		{0, -1, false},
		{240, 0, false},
		{0, 320, false},
	} {
		if got := Pixel(vp, tc.x, tc.y); got != tc.want {
			t.Errorf("Pixel(%d,%d) = %t, want %t", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestBitmap(t *testing.T) {
	vp := Bounds{W: 240, H: 320}
	for _, tc := range []struct {
		name       string
		x, y, w, h int16
		want       Rect
		wantBX     int16
		wantBY     int16
		wantOK     bool
	}{
		{name: "inside", x: 10, y: 20, w: 16, h: 8, want: Rect{10, 20, 16, 8}, wantOK: true},
		{name: "clip top", x: 0, y: -3, w: 16, h: 8, want: Rect{0, 0, 16, 5}, wantBY: 3, wantOK: true},
		{name: "clip left", x: -4, y: 0, w: 16, h: 8, want: Rect{0, 0, 12, 8}, wantBX: 4, wantOK: true},
		{name: "clip right and bottom", x: 230, y: 316, w: 16, h: 8, want: Rect{230, 316, 10, 4}, wantOK: true},
		{name: "off screen", x: 240, y: 0, w: 16, h: 8},
		{name: "fully above", x: 0, y: -8, w: 16, h: 8},
		{name: "zero size", x: 0, y: 0, w: 0, h: 8},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, bx, by, ok := Bitmap(vp, tc.x, tc.y, tc.w, tc.h)
			if ok != tc.wantOK {
				t.Fatalf("Bitmap(%d,%d,%d,%d) ok = %t, want %t", tc.x, tc.y, tc.w, tc.h, ok, tc.wantOK)
			}
			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Errorf("Bitmap rect difference (-got +want):\n%s", diff)
			}
			if bx != tc.wantBX || by != tc.wantBY {
				t.Errorf("Bitmap source offset = (%d,%d), want (%d,%d)", bx, by, tc.wantBX, tc.wantBY)
			}
		})
	}
}
