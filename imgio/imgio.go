// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package imgio writes captured frames to image files, choosing the
// encoder from the file extension.
//
// PNG is the primary format: an opaque image.RGBA encodes as 8-bit
// truecolor and an image.Gray16 as a single 16-bit channel, which are the
// two layouts the capture pipelines produce. TIFF stores 16-bit depth
// losslessly as well; JPEG and BMP are available for color frames.
package imgio

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format identifies an image file format.
type Format int

// Supported formats.
const (
	FormatUnknown Format = iota
	PNG
	JPEG
	TIFF
	BMP
)

// jpegQuality is the encoder quality for JPEG output.
const jpegQuality = 90

// String returns the canonical lower-case name of the format.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case TIFF:
		return "tiff"
	case BMP:
		return "bmp"
	default:
		return "unknown"
	}
}

// UnsupportedFormatError indicates a path whose extension maps to no
// supported encoder.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("imgio: unsupported image format %q", e.Ext)
}

// FormatForPath maps a file path to its format by extension,
// case-insensitively.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".bmp":
		return BMP, nil
	default:
		return FormatUnknown, &UnsupportedFormatError{Ext: ext}
	}
}

// Save writes img to path with the encoder selected by the extension.
func Save(path string, img image.Image) error {
	f, err := FormatForPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()
	return Encode(file, img, f)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case BMP:
		return bmp.Encode(w, img)
	default:
		return &UnsupportedFormatError{Ext: f.String()}
	}
}

// Load reads an image back from path. The decoder is picked by content,
// not extension; all formats Save can write are registered.
func Load(path string) (image.Image, error) {
	file, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("imgio: decode %s: %w", path, err)
	}
	return img, nil
}
