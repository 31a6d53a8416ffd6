// Copyright 2026 The SPITFT Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tftbus

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestParallelRequiresPins(t *testing.T) {
	if _, err := NewParallel(nil, &gpiotest.Pin{}, &gpiotest.Pin{}, nil); err == nil {
		t.Error("NewParallel without d0 should fail")
	}
	if _, err := NewParallel(&gpiotest.Pin{}, nil, &gpiotest.Pin{}, nil); err == nil {
		t.Error("NewParallel without wr should fail")
	}
	if _, err := NewParallel(&gpiotest.Pin{}, &gpiotest.Pin{}, nil, nil); err == nil {
		t.Error("NewParallel without dc should fail")
	}
}

func TestParallelUnsupported(t *testing.T) {
	p, err := NewParallel(&gpiotest.Pin{N: "D0"}, &gpiotest.Pin{N: "WR"}, &gpiotest.Pin{N: "DC"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	ops := map[string]func() error{
		"StartWrite":  p.StartWrite,
		"EndWrite":    p.EndWrite,
		"Command":     func() error { return p.Command(0x2C) },
		"WriteByte":   func() error { return p.WriteByte(1) },
		"WriteWord":   func() error { return p.WriteWord(1) },
		"WriteLong":   func() error { return p.WriteLong(1) },
		"ReadByte":    func() error { _, err := p.ReadByte(); return err },
		"WriteColor":  func() error { return p.WriteColor(0xF800, 4) },
		"WritePixels": func() error { return p.WritePixels([]uint16{1, 2}) },
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, ErrUnsupported) {
			t.Errorf("%s: err = %v, want ErrUnsupported", name, err)
		}
	}
}
