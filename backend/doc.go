// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package backend provides a pluggable rendering context abstraction.
//
// The backend package lets glview drive multiple context implementations.
// The OpenGL backend creates a real window and GPU context; the built-in
// null backend serves tests and display-free machines.
//
// # Backend Registration
//
// Backends register themselves via init() functions and are selected at
// runtime. The OpenGL backend is registered by a blank import:
//
//	import _ "github.com/gogpu/glview/backend/opengl"
//
// The null backend is always registered.
//
// # Backend Selection
//
// Use New to get a context from the best available backend, or NewByName
// to request a specific one:
//
//	// Best available (opengl when imported and usable, else null)
//	ctx, err := backend.New(1280, 720)
//
//	// A specific backend
//	ctx, err := backend.NewByName("opengl", 1280, 720)
//
// # Usage with Visualizer
//
// The returned context plugs straight into a capture session:
//
//	ctx, err := backend.NewWithOptions(backend.Options{
//		Width:  1280,
//		Height: 720,
//		Title:  "capture",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	v := glview.New(glview.WithContext(ctx))
//	defer v.Close()
//
// # Available Backends
//
// - "opengl": GLFW window with an OpenGL 4.1 core context
// - "null": GPU-free context for tests (always available)
package backend
