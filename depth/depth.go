// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package depth converts normalized depth-buffer samples into calibrated
// metric values.
//
// A perspective projection stores depth non-linearly: a sample d in [0, 1]
// encodes the eye-space distance z through the near/far clip planes.
// Linearize inverts that encoding, Quantize scales the result into the
// 16-bit integer range used by depth image files. A sample of exactly 1.0
// is the cleared far plane, meaning the pixel was never covered by
// geometry; it converts to 0 rather than to the far distance.
package depth

import (
	"errors"
	"math"

	"github.com/gogpu/glview/pixbuf"
)

// MaxOutput is the largest quantized depth value. Keeping the encoded
// range within a signed 16-bit integer lets consumers read the files with
// either signed or unsigned single-channel loaders.
const MaxOutput = 32767

// ErrSizeMismatch is returned when a conversion's source and destination
// buffers do not share the same dimensions.
var ErrSizeMismatch = errors.New("depth: source and destination sizes differ")

// Linearize maps a normalized depth sample d back to the eye-space
// distance it encodes under a perspective projection with the given clip
// planes. d=0 maps to near and d=1 maps to far.
func Linearize(d, near, far float64) float64 {
	return 2 * near * far / (far + near - (2*d-1)*(far-near))
}

// Project maps an eye-space distance z in [near, far] to the normalized
// depth sample a perspective projection would store for it. It is the
// inverse of Linearize.
func Project(z, near, far float64) float64 {
	return 0.5 * ((far+near-2*near*far/z)/(far-near) + 1)
}

// Quantize scales a metric depth by scale and rounds to the nearest
// integer, saturating at MaxOutput. Values that round to zero or below,
// including NaN, return 0.
func Quantize(z, scale float64) uint16 {
	v := math.Round(scale * z)
	if !(v > 0) {
		return 0
	}
	if v > MaxOutput {
		return MaxOutput
	}
	return uint16(v)
}

// ReconstructInto fills dst top-down from the bottom-up normalized samples
// in raw, linearizing each covered pixel and quantizing with the given
// scale. Samples of exactly 1.0 carry no geometry and leave the output at
// zero. Flip and conversion happen in a single pass.
func ReconstructInto(dst *pixbuf.Gray16, raw *pixbuf.Float32, near, far float32, scale float64) error {
	w, h := raw.Width(), raw.Height()
	if dst.Width() != w || dst.Height() != h {
		return ErrSizeMismatch
	}
	n, f := float64(near), float64(far)
	for y := 0; y < h; y++ {
		src := raw.Row(y)
		out := dst.Row(h - 1 - y)
		for x, d := range src {
			if d == 1 {
				continue
			}
			out[x] = Quantize(Linearize(float64(d), n, f), scale)
		}
	}
	return nil
}

// LinearizeInto fills dst top-down with metric float depth from the
// bottom-up normalized samples in raw. Samples of exactly 1.0 stay zero.
func LinearizeInto(dst, raw *pixbuf.Float32, near, far float32) error {
	w, h := raw.Width(), raw.Height()
	if dst.Width() != w || dst.Height() != h {
		return ErrSizeMismatch
	}
	n, f := float64(near), float64(far)
	for y := 0; y < h; y++ {
		src := raw.Row(y)
		out := dst.Row(h - 1 - y)
		for x, d := range src {
			if d == 1 {
				continue
			}
			out[x] = float32(Linearize(float64(d), n, f))
		}
	}
	return nil
}
