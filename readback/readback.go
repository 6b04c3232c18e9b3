// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package readback selects how depth planes are transferred out of the GPU.
//
// A full-frame glReadPixels of the depth attachment is the fast path, but
// some platforms return distorted planes for multi-row depth reads (see the
// known-defect table in this package). Strategies wrap the transfer loop so
// the choice is made once, when a session is configured, instead of being
// branched on at every capture.
package readback

import (
	"errors"
	"fmt"
)

// ErrPlaneSize is returned when a destination slice does not match the
// requested plane dimensions.
var ErrPlaneSize = errors.New("readback: destination length does not match plane size")

// DepthSource reads a rectangular block of normalized depth samples into
// dst, rows bottom-up, dst length width*height. (0, 0) is the bottom-left
// corner of the framebuffer.
type DepthSource interface {
	ReadDepthBlock(x, y, width, height int, dst []float32) error
}

// Strategy transfers a full width-by-height depth plane from src into dst.
// Implementations differ only in how they slice the transfer; the
// assembled plane is identical.
type Strategy interface {
	// Name returns the strategy identifier (e.g. "bulk", "columnwise").
	Name() string

	// ReadDepth fills dst, rows bottom-up, dst length width*height.
	ReadDepth(src DepthSource, width, height int, dst []float32) error
}

// Bulk transfers the whole plane in a single block read. This is the
// default on platforms without a known depth readback defect.
type Bulk struct{}

// Name returns "bulk".
func (Bulk) Name() string { return "bulk" }

// ReadDepth performs one full-frame block read.
func (Bulk) ReadDepth(src DepthSource, width, height int, dst []float32) error {
	if len(dst) != width*height {
		return ErrPlaneSize
	}
	return src.ReadDepthBlock(0, 0, width, height, dst)
}

// ColumnWise transfers the plane one column at a time (width 1, full
// height) and scatters the samples into the destination. It is the
// workaround for the block-read defect and costs one driver round trip per
// column, typically 15 to 30 times slower than Bulk.
type ColumnWise struct{}

// Name returns "columnwise".
func (ColumnWise) Name() string { return "columnwise" }

// ReadDepth performs width single-column reads.
func (ColumnWise) ReadDepth(src DepthSource, width, height int, dst []float32) error {
	if len(dst) != width*height {
		return ErrPlaneSize
	}
	col := make([]float32, height)
	for x := 0; x < width; x++ {
		if err := src.ReadDepthBlock(x, 0, 1, height, col); err != nil {
			return fmt.Errorf("readback: column %d: %w", x, err)
		}
		for y := 0; y < height; y++ {
			dst[y*width+x] = col[y]
		}
	}
	return nil
}
