// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package opengl provides a GLFW-backed OpenGL context backend.
//
// The backend creates a window (visible or hidden) with an OpenGL 4.1
// core profile context and configures the state the glview render and
// capture pipelines rely on: depth testing, byte-tight pixel packing,
// and front-buffer reads.
//
// # Registration and Selection
//
// The backend is registered when this package is imported:
//
//	import _ "github.com/gogpu/glview/backend/opengl"
//
// It is preferred over the null backend. If window or context creation
// fails (no display, missing GL drivers), backend.New falls back to the
// null backend.
//
// # Threading
//
// GLFW and OpenGL require all context calls on the thread the context
// was created on. Lock the main goroutine before creating a context and
// keep every Context call on it:
//
//	func main() {
//	    runtime.LockOSThread()
//	    ctx, err := backend.NewByName("opengl", 1280, 720)
//	    ...
//	}
//
// # Basic Usage
//
//	ctx, err := backend.NewByNameWithOptions("opengl", backend.Options{
//	    Width:   1280,
//	    Height:  720,
//	    Title:   "capture",
//	    Visible: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer opengl.Terminate()
//
//	v := glview.New(glview.WithContext(ctx))
//	defer v.Close()
package opengl
