// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package termgrid renders I²C scan results as a fixed-width address grid
// on a terminal (stdout), optionally using ANSI color codes.
//
// The layout is the classic bring-up scanner output: a header row of low
// nibbles, one row per 16-address band, one marker per address, and a
// trailing summary line listing every detected address.
package termgrid

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/GermanBionicSystems/i2cscan"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Markers used in monochrome mode. Two characters plus a trailing space,
// so cells line up with the header columns.
const (
	markDetected = "[] "
	markAbsent   = ".. "
	markReserved = "   "
)

var (
	detectedColor = color.NRGBA{R: 0x00, G: 0xC0, B: 0x00, A: 255}
	absentColor   = color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 255}
)

// Opts represents the options available for the renderer.
type Opts struct {
	// Color switches the per-address markers to ANSI color blocks.
	Color   bool
	Palette *ansi256.Palette

	_ struct{}
}

// Grid writes scan results to a terminal.
type Grid struct {
	w       io.Writer
	color   bool
	palette ansi256.Palette

	buf bytes.Buffer
}

// New returns a Grid that renders to the console.
func New(opts *Opts) *Grid {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Grid that renders to w.
func NewWriter(w io.Writer, opts *Opts) *Grid {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	return &Grid{w: w, color: opts.Color, palette: *p}
}

// Render writes the address grid: a header row of low-nibble labels and
// one row per 16-address band.
func (g *Grid) Render(r *i2cscan.Result) error {
	g.buf.Reset()
	g.buf.WriteString("     ")
	for low := uint16(0); low < 0x10; low++ {
		fmt.Fprintf(&g.buf, "%02X ", low)
	}
	g.buf.WriteByte('\n')
	for high := uint16(0); high <= i2cscan.MaxAddr; high += 0x10 {
		fmt.Fprintf(&g.buf, "0x%02X ", high)
		for low := uint16(0); low < 0x10; low++ {
			g.buf.WriteString(g.cell(r.Status(high | low)))
		}
		if g.color {
			g.buf.WriteString("\033[0m")
		}
		g.buf.WriteByte('\n')
	}
	_, err := g.buf.WriteTo(g.w)
	return err
}

// Summary writes the trailing one-line summary of detected addresses, or
// an explicit notice when the pass found nothing.
func (g *Grid) Summary(r *i2cscan.Result) error {
	g.buf.Reset()
	g.buf.WriteString("\n *** I2C devices detected at: ")
	detected := r.Detected()
	for _, addr := range detected {
		fmt.Fprintf(&g.buf, "0x%02X ", addr)
	}
	if len(detected) == 0 {
		g.buf.WriteString("NO DEVICES DETECTED")
	}
	g.buf.WriteString("\n\n")
	_, err := g.buf.WriteTo(g.w)
	return err
}

func (g *Grid) cell(s i2cscan.Status) string {
	switch s {
	case i2cscan.Present:
		if g.color {
			b := g.palette.Block(detectedColor)
			return b + b + " "
		}
		return markDetected
	case i2cscan.Absent:
		if g.color {
			b := g.palette.Block(absentColor)
			return b + b + " "
		}
		return markAbsent
	default:
		return markReserved
	}
}
