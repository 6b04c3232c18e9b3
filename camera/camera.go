// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package camera models the pinhole calibration recorded next to captured
// frames.
//
// An Intrinsic holds the 3x3 projection of a distortion-free pinhole
// camera; Parameters pairs it with a world-to-camera pose. A Trajectory is
// one intrinsic shared by a sequence of poses, which is also the sidecar
// format written for a single capture (a sequence of length one).
//
// Poses use the computer-vision frame: +X right, +Y down, +Z forward.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Intrinsic is a pinhole projection matrix with the sensor size it applies
// to. The matrix is stored row-major:
//
//	fx  0 cx
//	 0 fy cy
//	 0  0  1
type Intrinsic struct {
	Width  int
	Height int
	Matrix [9]float64
}

// IntrinsicFromFOV derives the intrinsic for a symmetric perspective
// projection with the given vertical field of view in degrees. The focal
// length is the same on both axes and the principal point sits at the
// window center.
func IntrinsicFromFOV(width, height int, fovDeg float64) Intrinsic {
	f := float64(height) / (2 * math.Tan(fovDeg*math.Pi/360))
	cx := float64(width-1) / 2
	cy := float64(height-1) / 2
	return Intrinsic{
		Width:  width,
		Height: height,
		Matrix: [9]float64{
			f, 0, cx,
			0, f, cy,
			0, 0, 1,
		},
	}
}

// FocalLength returns the focal lengths in pixels.
func (in Intrinsic) FocalLength() (fx, fy float64) {
	return in.Matrix[0], in.Matrix[4]
}

// PrincipalPoint returns the principal point in pixels.
func (in Intrinsic) PrincipalPoint() (cx, cy float64) {
	return in.Matrix[2], in.Matrix[5]
}

// Parameters couples an intrinsic with a world-to-camera pose.
type Parameters struct {
	Intrinsic Intrinsic
	Extrinsic mgl64.Mat4
}

// Trajectory is a camera path: one intrinsic and a pose per frame.
type Trajectory struct {
	Intrinsic  Intrinsic
	Extrinsics []mgl64.Mat4
}

// NewTrajectory builds a trajectory from per-frame parameters. All frames
// share the intrinsic of the first one.
func NewTrajectory(params ...Parameters) *Trajectory {
	t := &Trajectory{}
	for i, p := range params {
		if i == 0 {
			t.Intrinsic = p.Intrinsic
		}
		t.Extrinsics = append(t.Extrinsics, p.Extrinsic)
	}
	return t
}
