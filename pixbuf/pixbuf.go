// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pixbuf provides typed pixel buffers for framebuffer readback.
//
// Each buffer type pairs a flat sample slice with explicit dimensions and
// bounds-checked row and element access. The GPU delivers rows bottom-up;
// buffers do not track orientation themselves, callers flip with
// FlipVertical before handing a frame to an image encoder.
package pixbuf

import "fmt"

// RGB8 is a tightly packed 3x8-bit color buffer (3 bytes per pixel, no
// alpha, no row padding).
type RGB8 struct {
	width  int
	height int
	pix    []uint8
}

// NewRGB8 creates an RGB8 buffer with the given dimensions.
// It panics if either dimension is not positive.
func NewRGB8(width, height int) *RGB8 {
	checkDims(width, height)
	return &RGB8{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
	}
}

// Width returns the width in pixels.
func (p *RGB8) Width() int { return p.width }

// Height returns the height in pixels.
func (p *RGB8) Height() int { return p.height }

// Stride returns the length of one row in bytes.
func (p *RGB8) Stride() int { return p.width * 3 }

// Pix returns the raw sample slice, rows in storage order.
// Its length is always Width*Height*3.
func (p *RGB8) Pix() []uint8 { return p.pix }

// Row returns the samples of row y as a slice sharing the buffer's storage.
// It panics if y is outside [0, Height).
func (p *RGB8) Row(y int) []uint8 {
	checkRow(y, p.height)
	return p.pix[y*p.width*3 : (y+1)*p.width*3]
}

// At returns the color of the pixel at (x, y).
// It panics if the coordinates are out of range.
func (p *RGB8) At(x, y int) (r, g, b uint8) {
	checkPixel(x, y, p.width, p.height)
	i := (y*p.width + x) * 3
	return p.pix[i], p.pix[i+1], p.pix[i+2]
}

// Set sets the color of the pixel at (x, y).
// It panics if the coordinates are out of range.
func (p *RGB8) Set(x, y int, r, g, b uint8) {
	checkPixel(x, y, p.width, p.height)
	i := (y*p.width + x) * 3
	p.pix[i] = r
	p.pix[i+1] = g
	p.pix[i+2] = b
}

// FlipVertical returns a new buffer with the row order reversed.
// Rows are copied byte for byte; samples within a row keep their order.
func (p *RGB8) FlipVertical() *RGB8 {
	q := NewRGB8(p.width, p.height)
	stride := p.width * 3
	for y := 0; y < p.height; y++ {
		copy(q.pix[(p.height-1-y)*stride:(p.height-y)*stride], p.pix[y*stride:(y+1)*stride])
	}
	return q
}

// checkDims validates buffer dimensions at construction time.
func checkDims(width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("pixbuf: invalid dimensions %dx%d", width, height))
	}
}

// checkRow validates a row index against the buffer height.
func checkRow(y, height int) {
	if y < 0 || y >= height {
		panic(fmt.Sprintf("pixbuf: row %d out of range [0, %d)", y, height))
	}
}

// checkPixel validates pixel coordinates against the buffer dimensions.
func checkPixel(x, y, width, height int) {
	if x < 0 || x >= width || y < 0 || y >= height {
		panic(fmt.Sprintf("pixbuf: pixel (%d, %d) out of range %dx%d", x, y, width, height))
	}
}
