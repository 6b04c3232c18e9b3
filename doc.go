// Package glview renders OpenGL frames and captures them as calibrated
// images.
//
// # Overview
//
// glview is the rendering front end of an interactive 3D visualization
// tool. A Visualizer owns a GPU context, a camera (ViewControl), a frame
// style (RenderOption), and an ordered list of drawables (Renderer). It
// draws complete frames and turns the framebuffer into artifacts suitable
// for computer-vision work: 8-bit color captures and 16-bit depth captures
// carrying metric distances, each with an optional pinhole calibration
// sidecar.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glview"
//	    "github.com/gogpu/glview/backend"
//	    _ "github.com/gogpu/glview/backend/opengl"
//	)
//
//	// Open a window-backed GL context (main thread).
//	ctx, err := backend.New(1280, 720)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v := glview.New(glview.WithContext(ctx))
//	defer v.Close()
//
//	v.AddRenderer(myRenderer)
//	v.Render()
//
//	// Auto-named capture with a camera calibration sidecar.
//	if err := v.CaptureScreenImage(""); err != nil {
//	    log.Fatal(err)
//	}
//	// Depth capture in millimeters.
//	if err := v.CaptureDepthImage("depth.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// The library is organized into:
//   - Public API: Visualizer, ViewControl, RenderOption, Context, Renderer
//   - pixbuf: typed pixel buffers with bounds-checked views
//   - depth: normalized-to-metric depth conversion and quantization
//   - readback: depth transfer strategies and the platform defect list
//   - camera: pinhole calibration model and trajectory files
//   - imgio: image file encoders selected by extension
//   - backend, backend/opengl: pluggable GPU context creation
//
// # Threading
//
// OpenGL contexts are bound to the thread that created them. Create the
// context and drive the Visualizer from one locked OS thread (see
// runtime.LockOSThread); none of the session types are safe for
// concurrent use.
//
// # Coordinate System
//
// GL framebuffers are read bottom-up; captured buffers and files are
// top-down with the origin at the top-left. Camera calibration uses the
// computer-vision frame: +X right, +Y down, +Z forward.
package glview

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
