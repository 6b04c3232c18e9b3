package glview

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/glview/readback"
)

// Context is the GPU window and context a Visualizer renders into. It is
// the narrow surface the render and capture pipelines need; everything
// else about window management stays with the backend.
//
// All methods must be called from the thread the context was created on.
type Context interface {
	// MakeCurrent binds the context to the calling thread.
	MakeCurrent()

	// Clear resets the color buffer to bg and the depth buffer to its
	// maximum value (the far plane).
	Clear(bg mgl32.Vec4)

	// SwapBuffers presents the finished frame.
	SwapBuffers()

	// Finish blocks until every previously issued GPU command has fully
	// executed. Capture calls this before reading pixels so the
	// framebuffer is complete and stable.
	Finish()

	// FramebufferSize returns the drawable size in pixels. On HiDPI
	// displays this is larger than the window size in screen
	// coordinates.
	FramebufferSize() (width, height int)

	// ReadColorBlock reads a block of 3x8-bit color samples into dst,
	// rows bottom-up, dst length width*height*3. (0, 0) is the
	// bottom-left corner of the framebuffer.
	ReadColorBlock(x, y, width, height int, dst []uint8) error

	// DepthSource reads blocks of normalized depth samples.
	readback.DepthSource

	// Release destroys the context and its window.
	Release()
}

// nullContext is a Context without a GPU behind it.
type nullContext struct {
	width  int
	height int
}

// NullContext returns a Context that draws nothing: color reads come back
// zero-filled and depth reads return the cleared far plane. It lets the
// render and capture pipelines run in environments without a GPU.
func NullContext(width, height int) Context {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &nullContext{width: width, height: height}
}

var _ Context = (*nullContext)(nil)

func (c *nullContext) MakeCurrent()     {}
func (c *nullContext) Clear(mgl32.Vec4) {}
func (c *nullContext) SwapBuffers()     {}
func (c *nullContext) Finish()          {}
func (c *nullContext) Release()         {}

func (c *nullContext) FramebufferSize() (int, int) {
	return c.width, c.height
}

func (c *nullContext) ReadColorBlock(x, y, width, height int, dst []uint8) error {
	for i := range dst {
		dst[i] = 0
	}
	return nil
}

func (c *nullContext) ReadDepthBlock(x, y, width, height int, dst []float32) error {
	for i := range dst {
		dst[i] = 1
	}
	return nil
}
