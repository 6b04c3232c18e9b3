// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixbuf

// Gray16 is a single-channel 16-bit buffer (2 bytes per pixel). Samples are
// stored as native uint16 values; byte order is decided at encode time.
type Gray16 struct {
	width  int
	height int
	pix    []uint16
}

// NewGray16 creates a Gray16 buffer with the given dimensions.
// It panics if either dimension is not positive.
func NewGray16(width, height int) *Gray16 {
	checkDims(width, height)
	return &Gray16{
		width:  width,
		height: height,
		pix:    make([]uint16, width*height),
	}
}

// Width returns the width in pixels.
func (p *Gray16) Width() int { return p.width }

// Height returns the height in pixels.
func (p *Gray16) Height() int { return p.height }

// Stride returns the length of one row in bytes.
func (p *Gray16) Stride() int { return p.width * 2 }

// Pix returns the raw sample slice, rows in storage order.
// Its length is always Width*Height.
func (p *Gray16) Pix() []uint16 { return p.pix }

// Row returns the samples of row y as a slice sharing the buffer's storage.
// It panics if y is outside [0, Height).
func (p *Gray16) Row(y int) []uint16 {
	checkRow(y, p.height)
	return p.pix[y*p.width : (y+1)*p.width]
}

// At returns the sample at (x, y).
// It panics if the coordinates are out of range.
func (p *Gray16) At(x, y int) uint16 {
	checkPixel(x, y, p.width, p.height)
	return p.pix[y*p.width+x]
}

// Set sets the sample at (x, y).
// It panics if the coordinates are out of range.
func (p *Gray16) Set(x, y int, v uint16) {
	checkPixel(x, y, p.width, p.height)
	p.pix[y*p.width+x] = v
}

// FlipVertical returns a new buffer with the row order reversed.
func (p *Gray16) FlipVertical() *Gray16 {
	q := NewGray16(p.width, p.height)
	for y := 0; y < p.height; y++ {
		copy(q.pix[(p.height-1-y)*p.width:(p.height-y)*p.width], p.pix[y*p.width:(y+1)*p.width])
	}
	return q
}
