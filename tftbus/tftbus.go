// Copyright 2026 The SPITFT Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tftbus abstracts the wire protocol between a host and a
// pixel-addressable display controller.
//
// Three transports exist: hardware SPI, bit-banged software SPI, and an
// 8-bit parallel bus that is declared but not implemented. All of them
// expose the same byte/word-level write surface so the drawing core
// never dispatches on the transport kind.
//
// Multi-byte values are always emitted most-significant byte first,
// regardless of host byte order.
//
// The package performs no locking. A transaction (StartWrite/EndWrite)
// asserts the chip-select line, if one is configured, for the duration
// of a composite operation; callers must pair each StartWrite with
// exactly one EndWrite and serialize all use of a Conn.
package tftbus

import "errors"

// ErrUnsupported is returned by operations the transport does not
// implement, such as any use of the parallel bus.
var ErrUnsupported = errors.New("tftbus: operation not implemented for this transport")

// Conn is a connection to a display controller.
//
// The command/data line rests high (data mode); Command is the only
// operation that drives it low.
type Conn interface {
	// StartWrite begins a bus transaction and asserts chip-select low
	// if a CS line is configured.
	StartWrite() error
	// EndWrite deasserts chip-select and ends the transaction.
	EndWrite() error
	// Command issues a single command byte: D/C low, one byte, D/C high.
	Command(cmd byte) error
	// WriteByte issues one byte.
	WriteByte(b byte) error
	// WriteWord issues a 16-bit value, most-significant byte first.
	WriteWord(w uint16) error
	// WriteLong issues a 32-bit value, most-significant byte first.
	WriteLong(l uint32) error
	// ReadByte clocks one byte in from the controller. Transports
	// without a data-in line return 0.
	ReadByte() (byte, error)
	// WriteColor issues n repetitions of a 16-bit value, each
	// most-significant byte first, preserving order across any internal
	// batching.
	WriteColor(c uint16, n int) error
	// WritePixels issues each element most-significant byte first, in
	// slice order.
	WritePixels(px []uint16) error
	// String returns a description of the connection.
	String() string
}
