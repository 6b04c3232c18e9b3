// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
)

// trajectoryClassName tags trajectory files so readers can reject
// unrelated JSON documents.
const trajectoryClassName = "PinholeCameraTrajectory"

const (
	versionMajor = 1
	versionMinor = 0
)

// Matrices are serialized column-major, matching the in-memory layout of
// mgl64.Mat4 and the convention of the C++ visualization tools this format
// interoperates with.
type trajectoryJSON struct {
	ClassName    string        `json:"class_name"`
	Intrinsic    intrinsicJSON `json:"intrinsic"`
	Extrinsic    [][]float64   `json:"extrinsic"`
	VersionMajor int           `json:"version_major"`
	VersionMinor int           `json:"version_minor"`
}

type intrinsicJSON struct {
	Width           int       `json:"width"`
	Height          int       `json:"height"`
	IntrinsicMatrix []float64 `json:"intrinsic_matrix"`
}

// MarshalJSON implements json.Marshaler.
func (t *Trajectory) MarshalJSON() ([]byte, error) {
	doc := trajectoryJSON{
		ClassName: trajectoryClassName,
		Intrinsic: intrinsicJSON{
			Width:           t.Intrinsic.Width,
			Height:          t.Intrinsic.Height,
			IntrinsicMatrix: columnMajor3(t.Intrinsic.Matrix),
		},
		Extrinsic:    make([][]float64, len(t.Extrinsics)),
		VersionMajor: versionMajor,
		VersionMinor: versionMinor,
	}
	for i, ext := range t.Extrinsics {
		m := make([]float64, 16)
		copy(m, ext[:])
		doc.Extrinsic[i] = m
	}
	return json.Marshal(doc)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Trajectory) UnmarshalJSON(data []byte) error {
	var doc trajectoryJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.ClassName != trajectoryClassName {
		return fmt.Errorf("camera: class_name %q, want %q", doc.ClassName, trajectoryClassName)
	}
	if len(doc.Intrinsic.IntrinsicMatrix) != 9 {
		return fmt.Errorf("camera: intrinsic matrix has %d elements, want 9", len(doc.Intrinsic.IntrinsicMatrix))
	}

	t.Intrinsic = Intrinsic{
		Width:  doc.Intrinsic.Width,
		Height: doc.Intrinsic.Height,
		Matrix: rowMajor3(doc.Intrinsic.IntrinsicMatrix),
	}
	t.Extrinsics = make([]mgl64.Mat4, len(doc.Extrinsic))
	for i, m := range doc.Extrinsic {
		if len(m) != 16 {
			return fmt.Errorf("camera: extrinsic %d has %d elements, want 16", i, len(m))
		}
		copy(t.Extrinsics[i][:], m)
	}
	return nil
}

// WriteFile writes the trajectory as indented JSON.
func (t *Trajectory) WriteFile(path string) error {
	data, err := json.MarshalIndent(t, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// ReadFile reads a trajectory written by WriteFile.
func ReadFile(path string) (*Trajectory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t := &Trajectory{}
	if err := json.Unmarshal(data, t); err != nil {
		return nil, err
	}
	return t, nil
}

// columnMajor3 converts the row-major intrinsic storage to the
// column-major wire order.
func columnMajor3(m [9]float64) []float64 {
	out := make([]float64, 9)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[c*3+r] = m[r*3+c]
		}
	}
	return out
}

// rowMajor3 converts the column-major wire order back to row-major storage.
func rowMajor3(m []float64) [9]float64 {
	var out [9]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m[c*3+r]
		}
	}
	return out
}
