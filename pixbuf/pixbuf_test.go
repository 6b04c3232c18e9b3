// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixbuf

import (
	"bytes"
	"testing"
)

// TestBufferShapes verifies that every buffer type allocates exactly
// width*height samples at its fixed bytes-per-pixel.
func TestBufferShapes(t *testing.T) {
	const w, h = 7, 5

	rgb := NewRGB8(w, h)
	if got, want := len(rgb.Pix()), w*h*3; got != want {
		t.Errorf("RGB8 sample count: got %d, want %d", got, want)
	}
	if got, want := rgb.Stride()*rgb.Height(), w*h*3; got != want {
		t.Errorf("RGB8 byte size: got %d, want %d", got, want)
	}

	g16 := NewGray16(w, h)
	if got, want := len(g16.Pix()), w*h; got != want {
		t.Errorf("Gray16 sample count: got %d, want %d", got, want)
	}
	if got, want := g16.Stride()*g16.Height(), w*h*2; got != want {
		t.Errorf("Gray16 byte size: got %d, want %d", got, want)
	}

	f32 := NewFloat32(w, h)
	if got, want := len(f32.Pix()), w*h; got != want {
		t.Errorf("Float32 sample count: got %d, want %d", got, want)
	}
	if got, want := f32.Stride()*f32.Height(), w*h*4; got != want {
		t.Errorf("Float32 byte size: got %d, want %d", got, want)
	}
}

// TestNewPanicsOnBadDims verifies constructors reject non-positive dimensions.
func TestNewPanicsOnBadDims(t *testing.T) {
	dims := []struct{ w, h int }{
		{0, 10}, {10, 0}, {-1, 10}, {10, -1}, {0, 0},
	}
	for _, d := range dims {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewRGB8(%d, %d) did not panic", d.w, d.h)
				}
			}()
			NewRGB8(d.w, d.h)
		}()
	}
}

// TestRowBounds verifies Row panics outside [0, Height).
func TestRowBounds(t *testing.T) {
	p := NewRGB8(4, 3)
	for _, y := range []int{-1, 3, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Row(%d) did not panic", y)
				}
			}()
			p.Row(y)
		}()
	}
	// In-range rows must not panic and must have the row stride.
	for y := 0; y < 3; y++ {
		if got, want := len(p.Row(y)), p.Stride(); got != want {
			t.Errorf("Row(%d) length: got %d, want %d", y, got, want)
		}
	}
}

// TestSetAtRoundTrip verifies Set followed by At returns the same values.
func TestSetAtRoundTrip(t *testing.T) {
	p := NewRGB8(4, 4)
	p.Set(2, 1, 10, 20, 30)
	r, g, b := p.At(2, 1)
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("At(2, 1) = (%d, %d, %d), want (10, 20, 30)", r, g, b)
	}

	g16 := NewGray16(4, 4)
	g16.Set(3, 2, 32767)
	if got := g16.At(3, 2); got != 32767 {
		t.Errorf("Gray16 At(3, 2) = %d, want 32767", got)
	}

	f32 := NewFloat32(4, 4)
	f32.Set(0, 3, 0.5)
	if got := f32.At(0, 3); got != 0.5 {
		t.Errorf("Float32 At(0, 3) = %v, want 0.5", got)
	}
}

// TestFlipVerticalRows verifies row y moves to row Height-1-y.
func TestFlipVerticalRows(t *testing.T) {
	const w, h = 3, 4
	p := NewRGB8(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.Set(x, y, uint8(y), uint8(x), uint8(y*w+x))
		}
	}

	q := p.FlipVertical()
	for y := 0; y < h; y++ {
		if !bytes.Equal(q.Row(y), p.Row(h-1-y)) {
			t.Errorf("flipped row %d does not match source row %d", y, h-1-y)
		}
	}
}

// TestFlipVerticalTwiceIsIdentity verifies the double flip restores the
// original byte sequence exactly.
func TestFlipVerticalTwiceIsIdentity(t *testing.T) {
	p := NewRGB8(5, 7)
	for i := range p.Pix() {
		p.Pix()[i] = uint8(i * 31)
	}

	q := p.FlipVertical().FlipVertical()
	if !bytes.Equal(q.Pix(), p.Pix()) {
		t.Error("double FlipVertical changed buffer contents")
	}

	f := NewFloat32(5, 7)
	for i := range f.Pix() {
		f.Pix()[i] = float32(i) / 3
	}
	g := f.FlipVertical().FlipVertical()
	for i, v := range g.Pix() {
		if v != f.Pix()[i] {
			t.Fatalf("double FlipVertical changed Float32 sample %d: got %v, want %v", i, v, f.Pix()[i])
		}
	}
}

// TestRGB8Image verifies the RGBA conversion copies channels and is fully opaque.
func TestRGB8Image(t *testing.T) {
	p := NewRGB8(3, 2)
	p.Set(1, 0, 100, 150, 200)

	img := p.Image()
	if got := img.Bounds(); got.Dx() != 3 || got.Dy() != 2 {
		t.Fatalf("image bounds: got %v, want 3x2", got)
	}
	c := img.RGBAAt(1, 0)
	if c.R != 100 || c.G != 150 || c.B != 200 || c.A != 255 {
		t.Errorf("RGBAAt(1, 0) = %v, want {100 150 200 255}", c)
	}
	// Every pixel must be opaque for the PNG encoder to emit truecolor.
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			t.Fatalf("alpha at byte %d = %d, want 255", i, img.Pix[i])
		}
	}
}

// TestGray16ImageByteOrder verifies samples are repacked big-endian.
func TestGray16ImageByteOrder(t *testing.T) {
	p := NewGray16(2, 1)
	p.Set(0, 0, 0x1234)
	p.Set(1, 0, 0x00ff)

	img := p.Image()
	if img.Pix[0] != 0x12 || img.Pix[1] != 0x34 {
		t.Errorf("sample 0 bytes = %#x %#x, want 0x12 0x34", img.Pix[0], img.Pix[1])
	}
	if got := img.Gray16At(1, 0).Y; got != 0x00ff {
		t.Errorf("Gray16At(1, 0) = %#x, want 0x00ff", got)
	}
}

// TestRGB8FromImage verifies the conversion round-trips through image.RGBA.
func TestRGB8FromImage(t *testing.T) {
	p := NewRGB8(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			p.Set(x, y, uint8(x*60), uint8(y*80), uint8(x+y))
		}
	}

	q := RGB8FromImage(p.Image())
	if !bytes.Equal(q.Pix(), p.Pix()) {
		t.Error("RGB8FromImage(p.Image()) differs from p")
	}
}
