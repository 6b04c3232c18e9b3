// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/glview"
	"github.com/gogpu/glview/backend"
)

// Name is the registry identifier for this backend.
const Name = "opengl"

// init registers the backend on package import.
func init() {
	backend.Register(Name, 100, func(opts backend.Options) (glview.Context, error) {
		return NewContext(opts)
	}, nil)
}

// glfwReady tracks process-wide GLFW initialization. GLFW calls are
// main-thread only, so a plain bool is enough.
var glfwReady bool

// initGLFW initializes GLFW once per process.
func initGLFW() error {
	if glfwReady {
		return nil
	}
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("opengl: glfw init: %w", err)
	}
	glfwReady = true
	return nil
}

// Terminate shuts GLFW down and destroys any remaining windows. Call it
// at process end, after every Context has been released. Must be called
// from the main thread.
func Terminate() {
	if glfwReady {
		glfw.Terminate()
		glfwReady = false
	}
}

// PollEvents processes pending window events. Interactive programs call
// this once per frame; headless capture runs can skip it. Must be called
// from the main thread.
func PollEvents() {
	glfw.PollEvents()
}

// Context is a GLFW window with an OpenGL 4.1 core profile context.
type Context struct {
	window *glfw.Window
}

var _ glview.Context = (*Context)(nil)

// NewContext creates a window and an OpenGL context configured for the
// render and capture pipelines. Must be called from the main thread.
func NewContext(opts backend.Options) (*Context, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, fmt.Errorf("opengl: bad window size %dx%d", opts.Width, opts.Height)
	}
	if err := initGLFW(); err != nil {
		return nil, err
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	// Required for core profiles on macOS.
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if !opts.Visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}
	if opts.Samples > 0 {
		glfw.WindowHint(glfw.Samples, opts.Samples)
	}

	title := opts.Title
	if title == "" {
		title = "glview"
	}
	window, err := glfw.CreateWindow(opts.Width, opts.Height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("opengl: create window: %w", err)
	}
	window.MakeContextCurrent()
	if opts.Visible {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("opengl: load functions: %w", err)
	}

	// Core profile has no default vertex array object.
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearDepth(1)

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	gl.Enable(gl.CULL_FACE)

	// Reads always come from the presented frame.
	gl.ReadBuffer(gl.FRONT)

	glview.Logger().Info("opengl context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"device", gl.GoStr(gl.GetString(gl.RENDERER)))

	return &Context{window: window}, nil
}

// MakeCurrent binds the context to the calling thread.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Clear resets the color buffer to bg and the depth buffer to the far
// plane.
func (c *Context) Clear(bg mgl32.Vec4) {
	gl.ClearColor(bg.X(), bg.Y(), bg.Z(), bg.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers presents the back buffer.
func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

// Finish blocks until every issued GPU command has fully executed.
func (c *Context) Finish() {
	gl.Finish()
}

// FramebufferSize returns the drawable size in pixels.
func (c *Context) FramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// ReadColorBlock reads 3x8-bit color samples from the front buffer into
// dst, rows bottom-up.
func (c *Context) ReadColorBlock(x, y, width, height int, dst []uint8) error {
	if width < 1 || height < 1 {
		return nil
	}
	if len(dst) < width*height*3 {
		return fmt.Errorf("opengl: color buffer too small: %d < %d", len(dst), width*height*3)
	}
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height),
		gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(dst))
	return glError("read color block")
}

// ReadDepthBlock reads normalized float32 depth samples into dst, rows
// bottom-up.
func (c *Context) ReadDepthBlock(x, y, width, height int, dst []float32) error {
	if width < 1 || height < 1 {
		return nil
	}
	if len(dst) < width*height {
		return fmt.Errorf("opengl: depth buffer too small: %d < %d", len(dst), width*height)
	}
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height),
		gl.DEPTH_COMPONENT, gl.FLOAT, gl.Ptr(dst))
	return glError("read depth block")
}

// ShouldClose reports whether the user asked to close the window.
func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

// Release destroys the window and context. Safe to call more than once.
func (c *Context) Release() {
	if c.window != nil {
		c.window.Destroy()
		c.window = nil
	}
}

// glError drains the GL error flag after a readback.
func glError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("opengl: %s: gl error 0x%04x", op, code)
	}
	return nil
}
