// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixbuf

// Float32 is a single-channel float32 buffer (4 bytes per pixel). It holds
// depth planes between readback and conversion and is never written to an
// image file directly.
type Float32 struct {
	width  int
	height int
	pix    []float32
}

// NewFloat32 creates a Float32 buffer with the given dimensions.
// It panics if either dimension is not positive.
func NewFloat32(width, height int) *Float32 {
	checkDims(width, height)
	return &Float32{
		width:  width,
		height: height,
		pix:    make([]float32, width*height),
	}
}

// Width returns the width in pixels.
func (p *Float32) Width() int { return p.width }

// Height returns the height in pixels.
func (p *Float32) Height() int { return p.height }

// Stride returns the length of one row in bytes.
func (p *Float32) Stride() int { return p.width * 4 }

// Pix returns the raw sample slice, rows in storage order.
// Its length is always Width*Height.
func (p *Float32) Pix() []float32 { return p.pix }

// Row returns the samples of row y as a slice sharing the buffer's storage.
// It panics if y is outside [0, Height).
func (p *Float32) Row(y int) []float32 {
	checkRow(y, p.height)
	return p.pix[y*p.width : (y+1)*p.width]
}

// At returns the sample at (x, y).
// It panics if the coordinates are out of range.
func (p *Float32) At(x, y int) float32 {
	checkPixel(x, y, p.width, p.height)
	return p.pix[y*p.width+x]
}

// Set sets the sample at (x, y).
// It panics if the coordinates are out of range.
func (p *Float32) Set(x, y int, v float32) {
	checkPixel(x, y, p.width, p.height)
	p.pix[y*p.width+x] = v
}

// FlipVertical returns a new buffer with the row order reversed.
func (p *Float32) FlipVertical() *Float32 {
	q := NewFloat32(p.width, p.height)
	for y := 0; y < p.height; y++ {
		copy(q.pix[(p.height-1-y)*p.width:(p.height-y)*p.width], p.pix[y*p.width:(y+1)*p.width])
	}
	return q
}
