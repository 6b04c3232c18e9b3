package glview

import (
	"testing"
	"time"

	"github.com/gogpu/glview/readback"
)

// TestVisualizerOptions verifies each Option lands on its field.
func TestVisualizerOptions(t *testing.T) {
	ctx := newFakeContext(4, 4)
	view := NewViewControl(12, 34)
	style := DefaultRenderOption()
	strategy := readback.ColumnWise{}
	clock := func() time.Time { return time.Unix(42, 0) }

	var o visualizerOptions
	for _, opt := range []Option{
		WithContext(ctx),
		WithViewControl(view),
		WithRenderOption(style),
		WithDepthReadback(strategy),
		WithClock(clock),
	} {
		opt(&o)
	}

	if o.ctx != Context(ctx) {
		t.Error("WithContext did not set the context")
	}
	if o.view != view {
		t.Error("WithViewControl did not set the view")
	}
	if o.renderOption != style {
		t.Error("WithRenderOption did not set the style")
	}
	if o.depthReadback != readback.Strategy(strategy) {
		t.Error("WithDepthReadback did not set the strategy")
	}
	if o.now == nil || !o.now().Equal(time.Unix(42, 0)) {
		t.Error("WithClock did not set the time source")
	}
}

// TestCaptureDefaults verifies a request with no options renders a fresh
// frame and uses the default depth scale.
func TestCaptureDefaults(t *testing.T) {
	cfg := applyCaptureOptions(nil)
	if !cfg.render {
		t.Error("default capture should render a fresh frame")
	}
	if cfg.depthScale != DefaultDepthScale {
		t.Errorf("depth scale = %v, want %v", cfg.depthScale, DefaultDepthScale)
	}
}

func TestWithoutRender(t *testing.T) {
	cfg := applyCaptureOptions([]CaptureOption{WithoutRender()})
	if cfg.render {
		t.Error("WithoutRender left the render flag set")
	}
}

func TestWithDepthScale(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		want  float64
	}{
		{"positive", 100, 100},
		{"zero keeps default", 0, DefaultDepthScale},
		{"negative keeps default", -5, DefaultDepthScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := applyCaptureOptions([]CaptureOption{WithDepthScale(tt.scale)})
			if cfg.depthScale != tt.want {
				t.Errorf("depth scale = %v, want %v", cfg.depthScale, tt.want)
			}
		})
	}
}
