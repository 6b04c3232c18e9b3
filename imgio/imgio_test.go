// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imgio

import (
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/gogpu/glview/pixbuf"
)

// TestFormatForPath verifies the extension mapping, including case
// handling and the typed error for unknown extensions.
func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.png", PNG},
		{"a.PNG", PNG},
		{"dir/b.jpg", JPEG},
		{"b.jpeg", JPEG},
		{"c.tif", TIFF},
		{"c.tiff", TIFF},
		{"d.bmp", BMP},
	}
	for _, tt := range tests {
		got, err := FormatForPath(tt.path)
		if err != nil {
			t.Errorf("FormatForPath(%q): %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatForPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}

	_, err := FormatForPath("depth.exr")
	var uf *UnsupportedFormatError
	if !errors.As(err, &uf) {
		t.Fatalf("got %v, want *UnsupportedFormatError", err)
	}
	if uf.Ext != ".exr" {
		t.Errorf("error ext = %q, want .exr", uf.Ext)
	}
}

// TestSaveGray16PNGRoundTrip verifies 16-bit samples survive a PNG write
// and read unchanged.
func TestSaveGray16PNGRoundTrip(t *testing.T) {
	p := pixbuf.NewGray16(3, 2)
	p.Set(0, 0, 0)
	p.Set(1, 0, 200)
	p.Set(2, 0, 32767)
	p.Set(0, 1, 1)
	p.Set(1, 1, 65535)
	p.Set(2, 1, 0x1234)

	path := filepath.Join(t.TempDir(), "depth.png")
	if err := Save(path, p.Image()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	g16, ok := img.(*image.Gray16)
	if !ok {
		t.Fatalf("decoded type %T, want *image.Gray16", img)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got, want := g16.Gray16At(x, y).Y, p.At(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

// TestSaveRGBPNGRoundTrip verifies color frames survive a PNG write.
func TestSaveRGBPNGRoundTrip(t *testing.T) {
	p := pixbuf.NewRGB8(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			p.Set(x, y, uint8(40*x), uint8(70*y), uint8(x*y))
		}
	}

	path := filepath.Join(t.TempDir(), "screen.png")
	if err := Save(path, p.Image()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := pixbuf.RGB8FromImage(img)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			gr, gg, gb := got.At(x, y)
			wr, wg, wb := p.At(x, y)
			if gr != wr || gg != wg || gb != wb {
				t.Errorf("pixel (%d, %d) = (%d, %d, %d), want (%d, %d, %d)", x, y, gr, gg, gb, wr, wg, wb)
			}
		}
	}
}

// TestSaveGray16TIFFRoundTrip verifies the TIFF encoder also keeps 16-bit
// samples intact.
func TestSaveGray16TIFFRoundTrip(t *testing.T) {
	p := pixbuf.NewGray16(2, 2)
	p.Set(0, 0, 500)
	p.Set(1, 1, 32767)

	path := filepath.Join(t.TempDir(), "depth.tiff")
	if err := Save(path, p.Image()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	g16, ok := img.(*image.Gray16)
	if !ok {
		t.Fatalf("decoded type %T, want *image.Gray16", img)
	}
	if got := g16.Gray16At(0, 0).Y; got != 500 {
		t.Errorf("pixel (0, 0) = %d, want 500", got)
	}
	if got := g16.Gray16At(1, 1).Y; got != 32767 {
		t.Errorf("pixel (1, 1) = %d, want 32767", got)
	}
}

// TestSaveUnknownExtension verifies Save refuses paths it cannot encode.
func TestSaveUnknownExtension(t *testing.T) {
	p := pixbuf.NewRGB8(1, 1)
	err := Save(filepath.Join(t.TempDir(), "frame.webp"), p.Image())
	var uf *UnsupportedFormatError
	if !errors.As(err, &uf) {
		t.Errorf("got %v, want *UnsupportedFormatError", err)
	}
}

// TestFormatString verifies the canonical names.
func TestFormatString(t *testing.T) {
	tests := []struct {
		f    Format
		want string
	}{
		{PNG, "png"},
		{JPEG, "jpeg"},
		{TIFF, "tiff"},
		{BMP, "bmp"},
		{FormatUnknown, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", int(tt.f), got, tt.want)
		}
	}
}
