package glview

import "github.com/go-gl/mathgl/mgl32"

// Renderer draws one registered drawable for the current frame. The
// Visualizer invokes renderers in registration order after the frame has
// been cleared; implementations issue their own GL calls against the
// context that is current.
type Renderer interface {
	// Draw renders the drawable using the frame style and camera state.
	// Returns an error if the drawable could not be rendered; the frame
	// continues with the remaining renderers.
	Draw(opt *RenderOption, view *ViewControl) error
}

// BoundsProvider is optionally implemented by renderers whose content has
// a known bounding sphere. AddRenderer uses it to fit the view and clip
// planes to the scene.
type BoundsProvider interface {
	// Bounds returns the bounding sphere of the renderer's content.
	Bounds() (center mgl32.Vec3, radius float32)
}
