package glview

import "github.com/go-gl/mathgl/mgl32"

// RenderOption carries the frame-level drawing style shared by every
// registered renderer: the clear color and the primitive sizes renderers
// should apply. Fields are plain values so callers can adjust them between
// frames.
type RenderOption struct {
	// BackgroundColor is the clear color of each frame.
	BackgroundColor mgl32.Vec4

	// PointSize is the point primitive size in pixels.
	PointSize float32

	// LineWidth is the line primitive width in pixels.
	LineWidth float32
}

// DefaultRenderOption returns the standard style: white background,
// 5 pixel points, 1 pixel lines.
func DefaultRenderOption() *RenderOption {
	return &RenderOption{
		BackgroundColor: mgl32.Vec4{1, 1, 1, 1},
		PointSize:       5,
		LineWidth:       1,
	}
}
