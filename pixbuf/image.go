// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixbuf

import "image"

// Image converts the buffer to an image.RGBA with every pixel opaque.
// A fully opaque RGBA image is encoded by image/png as 8-bit truecolor
// without an alpha channel.
func (p *RGB8) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		src := p.Row(y)
		dst := img.Pix[y*img.Stride : y*img.Stride+p.width*4]
		si := 0
		for x := 0; x < p.width; x++ {
			dst[x*4+0] = src[si+0]
			dst[x*4+1] = src[si+1]
			dst[x*4+2] = src[si+2]
			dst[x*4+3] = 0xff
			si += 3
		}
	}
	return img
}

// Image converts the buffer to an image.Gray16, repacking the native
// samples into the big-endian byte order image.Gray16 stores.
func (p *Gray16) Image() *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		row := p.Row(y)
		off := y * img.Stride
		for x, v := range row {
			img.Pix[off+2*x] = uint8(v >> 8)
			img.Pix[off+2*x+1] = uint8(v)
		}
	}
	return img
}

// RGB8FromImage copies an image into a new RGB8 buffer, discarding alpha.
func RGB8FromImage(img image.Image) *RGB8 {
	bounds := img.Bounds()
	p := NewRGB8(bounds.Dx(), bounds.Dy())
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			p.Set(x, y, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
	return p
}
