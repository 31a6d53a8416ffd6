// Copyright 2026 The SPITFT Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package spitft implements the transport and drawing core shared by
// SPI-connected TFT and color OLED display controllers.
//
// The package splits the driver problem in two. A tftbus.Conn carries
// bytes to the controller over hardware SPI, bit-banged SPI or (one day)
// a parallel bus, and scopes bus transactions. A Display implementation
// owns the controller's command set: initialization and the address
// window command. Dev composes the two with exact-edge clipping so that
// arbitrary, possibly off-screen drawing requests become a minimal
// sequence of address-window and color-stream operations.
//
// Pixels are 16-bit RGB565 values (see package image16) and are always
// emitted in big-endian wire order.
//
// Use with a real panel:
//
//	bus, err := tftbus.NewSPI(port, dcPin, nil)
//	if err != nil { ... }
//	dev, err := spitft.New(bus, panel, &spitft.Opts{W: 240, H: 320})
//	if err != nil { ... }
//	if err := dev.Init(); err != nil { ... }
//	err = dev.FillRect(10, 10, 100, 50, image16.Color565(255, 0, 0))
//
// where panel is the device-specific Display implementation issuing its
// controller's commands through the same bus. Package screen2d provides
// a terminal-backed implementation for development without hardware.
package spitft
