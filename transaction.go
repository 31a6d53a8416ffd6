// Copyright 2026 The SPITFT Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package spitft

import "github.com/samsondw/spitft/image16"

// txn is a wrapper for error management across the bus calls of one
// transaction. After the first failure the remaining calls are skipped
// and the error is reported once at the end.
type txn struct {
	d   *Dev
	err error
}

func (t *txn) start() {
	if t.err != nil {
		return
	}
	t.err = t.d.bus.StartWrite()
}

func (t *txn) end() {
	if t.err != nil {
		return
	}
	t.err = t.d.bus.EndWrite()
}

func (t *txn) window(x, y, w, h int16) {
	if t.err != nil {
		return
	}
	t.err = t.d.disp.SetAddrWindow(x, y, w, h)
}

func (t *txn) command(cmd byte) {
	if t.err != nil {
		return
	}
	t.err = t.d.bus.Command(cmd)
}

func (t *txn) word(w uint16) {
	if t.err != nil {
		return
	}
	t.err = t.d.bus.WriteWord(w)
}

func (t *txn) color(c image16.RGB565, n int) {
	if t.err != nil {
		return
	}
	t.err = t.d.bus.WriteColor(uint16(c), n)
}

func (t *txn) pixels(px []image16.RGB565) {
	if t.err != nil {
		return
	}
	t.err = t.d.writePixels(px)
}

func (t *txn) rawPixels(px []uint16) {
	if t.err != nil {
		return
	}
	t.err = t.d.bus.WritePixels(px)
}
