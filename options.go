package glview

import (
	"time"

	"github.com/gogpu/glview/readback"
)

// Option configures a Visualizer during creation.
//
// Example:
//
//	// Headless session over a GPU-free context
//	v := glview.New(glview.WithContext(glview.NullContext(640, 480)))
//
//	// Real session with an explicit readback strategy
//	v := glview.New(glview.WithContext(ctx), glview.WithDepthReadback(readback.Bulk{}))
type Option func(*visualizerOptions)

// visualizerOptions holds optional configuration for Visualizer creation.
// Zero fields are filled with defaults by New.
type visualizerOptions struct {
	ctx           Context
	view          *ViewControl
	renderOption  *RenderOption
	depthReadback readback.Strategy
	now           func() time.Time
}

// WithContext attaches the GPU context the Visualizer renders into and
// captures from. Without it the Visualizer manages view state only and
// captures fail with ErrNoContext.
func WithContext(ctx Context) Option {
	return func(o *visualizerOptions) {
		o.ctx = ctx
	}
}

// WithViewControl supplies a pre-configured camera instead of the default
// view.
func WithViewControl(view *ViewControl) Option {
	return func(o *visualizerOptions) {
		o.view = view
	}
}

// WithRenderOption supplies a pre-configured frame style instead of
// DefaultRenderOption.
func WithRenderOption(opt *RenderOption) Option {
	return func(o *visualizerOptions) {
		o.renderOption = opt
	}
}

// WithDepthReadback overrides the depth readback strategy. By default the
// strategy is selected from the platform known-defect list; see
// readback.ForPlatform.
func WithDepthReadback(s readback.Strategy) Option {
	return func(o *visualizerOptions) {
		o.depthReadback = s
	}
}

// WithClock overrides the time source used to name automatic captures.
func WithClock(now func() time.Time) Option {
	return func(o *visualizerOptions) {
		o.now = now
	}
}

// CaptureOption configures a single capture request.
type CaptureOption func(*captureConfig)

// captureConfig holds the per-request capture settings.
type captureConfig struct {
	render     bool
	depthScale float64
}

// applyCaptureOptions builds the settings for one capture request.
func applyCaptureOptions(opts []CaptureOption) captureConfig {
	cfg := captureConfig{
		render:     true,
		depthScale: DefaultDepthScale,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithoutRender captures whatever the framebuffer currently holds instead
// of drawing a fresh frame first. The pending redraw state is left
// untouched.
func WithoutRender() CaptureOption {
	return func(c *captureConfig) {
		c.render = false
	}
}

// WithDepthScale sets the meters-to-file multiplier for a depth capture.
// Non-positive scales keep DefaultDepthScale. Color captures ignore it.
func WithDepthScale(scale float64) CaptureOption {
	return func(c *captureConfig) {
		if scale > 0 {
			c.depthScale = scale
		}
	}
}
