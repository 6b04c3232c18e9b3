package glview

import (
	"errors"
	"runtime"
	"time"

	"github.com/gogpu/glview/readback"
)

// ErrNoContext is returned by capture operations on a Visualizer that has
// no rendering context.
var ErrNoContext = errors.New("glview: no rendering context")

// Visualizer owns one rendering session: a GPU context, the camera state,
// the frame style, and the drawables registered for rendering. It drives
// full-frame draw passes and calibrated captures of their output.
//
// A Visualizer is not safe for concurrent use. Drive it from the thread
// that owns the GL context.
type Visualizer struct {
	ctx       Context
	view      *ViewControl
	opt       *RenderOption
	renderers []Renderer

	// redrawNeeded records that content or view changed since the last
	// completed frame.
	redrawNeeded bool

	depthReadback readback.Strategy
	now           func() time.Time
}

// New creates a Visualizer. Without options it has no context and a
// default view; see WithContext and the other options.
func New(opts ...Option) *Visualizer {
	var cfg visualizerOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	v := &Visualizer{
		ctx:           cfg.ctx,
		view:          cfg.view,
		opt:           cfg.renderOption,
		depthReadback: cfg.depthReadback,
		now:           cfg.now,
		redrawNeeded:  true,
	}
	if v.view == nil {
		w, h := 640, 480
		if v.ctx != nil {
			if cw, ch := v.ctx.FramebufferSize(); cw > 0 && ch > 0 {
				w, h = cw, ch
			}
		}
		v.view = NewViewControl(w, h)
	}
	if v.opt == nil {
		v.opt = DefaultRenderOption()
	}
	if v.depthReadback == nil {
		v.depthReadback = readback.ForPlatform(runtime.GOOS)
	}
	if v.now == nil {
		v.now = time.Now
	}

	Logger().Info("visualizer created",
		"width", v.view.WindowWidth(),
		"height", v.view.WindowHeight(),
		"depth_readback", v.depthReadback.Name())
	return v
}

// AddRenderer registers a drawable. Renderers draw in registration order.
// If the renderer reports its bounds, the view is fitted to them.
func (v *Visualizer) AddRenderer(r Renderer) {
	v.renderers = append(v.renderers, r)
	if bp, ok := r.(BoundsProvider); ok {
		center, radius := bp.Bounds()
		v.view.FitBounds(center, radius)
	}
	v.redrawNeeded = true
}

// ResetViewPoint restores the default camera pose and requests a redraw.
func (v *Visualizer) ResetViewPoint() {
	v.view.Reset()
	v.redrawNeeded = true
}

// MarkDirty requests a redraw on the next frame.
func (v *Visualizer) MarkDirty() {
	v.redrawNeeded = true
}

// NeedsRedraw reports whether content or view changed since the last
// completed frame.
func (v *Visualizer) NeedsRedraw() bool {
	return v.redrawNeeded
}

// ViewControl returns the camera state of this session.
func (v *Visualizer) ViewControl() *ViewControl {
	return v.view
}

// RenderOption returns the frame style of this session.
func (v *Visualizer) RenderOption() *RenderOption {
	return v.opt
}

// Context returns the rendering context, or nil if none is attached.
func (v *Visualizer) Context() Context {
	return v.ctx
}

// Close releases the rendering context. The Visualizer must not be used
// afterwards.
func (v *Visualizer) Close() {
	if v.ctx != nil {
		v.ctx.Release()
		v.ctx = nil
	}
}
