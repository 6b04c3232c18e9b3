// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"errors"

	"github.com/gogpu/glview"
)

// Backend name constants.
const (
	// BackendOpenGL is the name of the GLFW-backed OpenGL backend.
	// It is registered by importing github.com/gogpu/glview/backend/opengl.
	BackendOpenGL = "opengl"

	// BackendNull is the name of the GPU-free fallback backend.
	// It renders nothing and reads back cleared buffers, which is enough
	// for view-state tests and dry runs on machines without a display.
	BackendNull = "null"
)

// Options configures context creation.
type Options struct {
	// Width is the drawable width in pixels.
	Width int

	// Height is the drawable height in pixels.
	Height int

	// Title is the window title for windowed backends.
	Title string

	// Visible shows the window. Leave false for headless capture runs;
	// windowed backends then create a hidden window.
	Visible bool

	// Samples is the multisampling sample count. Zero disables
	// multisampling. Capture reads expect a single-sample framebuffer,
	// so leave this zero when the context is used for readback.
	Samples int
}

// DefaultOptions returns Options with default values.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:   width,
		Height:  height,
		Title:   "glview",
		Visible: true,
	}
}

// Factory creates a new rendering context with the given options.
// Implementations should validate options and return descriptive errors.
type Factory func(opts Options) (glview.Context, error)

// Entry represents a registered context backend.
type Entry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: hardware-backed contexts (OpenGL)
	//   - 10: GPU-free fallbacks (null)
	Priority int

	// Factory creates context instances.
	Factory Factory

	// Available reports if the backend is usable on this system.
	Available func() bool
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no context backends are
	// registered or available on the current system.
	ErrNoBackendAvailable = errors.New("backend: no backend available")
)

// NotFoundError indicates a named backend is not registered.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "backend: not found: " + e.Name
}

// UnavailableError indicates a backend exists but is not usable here.
type UnavailableError struct {
	Name string
}

func (e *UnavailableError) Error() string {
	return "backend: unavailable: " + e.Name
}
