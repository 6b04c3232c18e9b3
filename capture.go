package glview

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/glview/camera"
	"github.com/gogpu/glview/depth"
	"github.com/gogpu/glview/imgio"
	"github.com/gogpu/glview/pixbuf"
)

// captureTimeFormat names automatic captures down to the millisecond so
// consecutive captures in one process get distinct files.
const captureTimeFormat = "2006-01-02-15-04-05.000"

// DefaultDepthScale is the meters-to-file multiplier for depth captures:
// millimeter resolution across the signed 16-bit range.
const DefaultDepthScale = 1000.0

func (v *Visualizer) timestamp() string {
	return v.now().Format(captureTimeFormat)
}

// CaptureScreenBuffer returns the frame as a top-down RGB buffer. By
// default a fresh frame is rendered first; use WithoutRender to read
// whatever the framebuffer currently holds.
func (v *Visualizer) CaptureScreenBuffer(opts ...CaptureOption) (*pixbuf.RGB8, error) {
	return v.captureScreen(applyCaptureOptions(opts))
}

// CaptureScreenImage writes the frame to an image file. With an empty
// filename the capture is named ScreenCapture_<timestamp>.png and a
// ScreenCamera_<timestamp>.json sidecar records the pinhole calibration;
// an explicit filename produces the image only, in the format its
// extension selects.
func (v *Visualizer) CaptureScreenImage(filename string, opts ...CaptureOption) error {
	buf, err := v.captureScreen(applyCaptureOptions(opts))
	if err != nil {
		return err
	}

	meta := ""
	if filename == "" {
		ts := v.timestamp()
		filename = "ScreenCapture_" + ts + ".png"
		meta = "ScreenCamera_" + ts + ".json"
	}

	Logger().Debug("screen capture", "file", filename)
	if err := imgio.Save(filename, buf.Image()); err != nil {
		return fmt.Errorf("glview: screen capture: %w", err)
	}
	if meta != "" {
		if err := v.writeCameraTrajectory(meta); err != nil {
			return fmt.Errorf("glview: camera metadata: %w", err)
		}
	}
	return nil
}

// CaptureDepthBuffer returns the depth buffer as a top-down buffer of
// metric float32 distances. Pixels never covered by geometry are 0. By
// default a fresh frame is rendered first.
func (v *Visualizer) CaptureDepthBuffer(opts ...CaptureOption) (*pixbuf.Float32, error) {
	raw, err := v.captureDepthRaw(applyCaptureOptions(opts))
	if err != nil {
		return nil, err
	}
	out := pixbuf.NewFloat32(raw.Width(), raw.Height())
	if err := depth.LinearizeInto(out, raw, v.view.ZNear(), v.view.ZFar()); err != nil {
		return nil, err
	}
	return out, nil
}

// CaptureDepthImage writes the depth buffer to a 16-bit image file, with
// each metric depth scaled (see WithDepthScale), rounded, and saturated at
// depth.MaxOutput. Pixels never covered by geometry store 0. Naming and
// the calibration sidecar follow the same rules as CaptureScreenImage,
// with the DepthCapture_/DepthCamera_ prefixes.
func (v *Visualizer) CaptureDepthImage(filename string, opts ...CaptureOption) error {
	cfg := applyCaptureOptions(opts)
	raw, err := v.captureDepthRaw(cfg)
	if err != nil {
		return err
	}

	img := pixbuf.NewGray16(raw.Width(), raw.Height())
	if err := depth.ReconstructInto(img, raw, v.view.ZNear(), v.view.ZFar(), cfg.depthScale); err != nil {
		return err
	}

	meta := ""
	if filename == "" {
		ts := v.timestamp()
		filename = "DepthCapture_" + ts + ".png"
		meta = "DepthCamera_" + ts + ".json"
	}

	Logger().Debug("depth capture", "file", filename, "scale", cfg.depthScale)
	if err := imgio.Save(filename, img.Image()); err != nil {
		return fmt.Errorf("glview: depth capture: %w", err)
	}
	if meta != "" {
		if err := v.writeCameraTrajectory(meta); err != nil {
			return fmt.Errorf("glview: camera metadata: %w", err)
		}
	}
	return nil
}

// captureScreen renders if requested, drains the GPU, and reads the color
// plane, returning it flipped top-down.
func (v *Visualizer) captureScreen(cfg captureConfig) (*pixbuf.RGB8, error) {
	w, h, err := v.prepareCapture(cfg)
	if err != nil {
		return nil, err
	}

	raw := pixbuf.NewRGB8(w, h)
	if err := v.ctx.ReadColorBlock(0, 0, w, h, raw.Pix()); err != nil {
		return nil, fmt.Errorf("glview: color readback: %w", err)
	}
	return raw.FlipVertical(), nil
}

// captureDepthRaw renders if requested, drains the GPU, and reads the
// normalized depth plane through the session's readback strategy. The
// result is bottom-up and unconverted.
func (v *Visualizer) captureDepthRaw(cfg captureConfig) (*pixbuf.Float32, error) {
	w, h, err := v.prepareCapture(cfg)
	if err != nil {
		return nil, err
	}

	raw := pixbuf.NewFloat32(w, h)
	if err := v.depthReadback.ReadDepth(v.ctx, w, h, raw.Pix()); err != nil {
		return nil, fmt.Errorf("glview: depth readback: %w", err)
	}
	return raw, nil
}

// prepareCapture runs the shared front half of every capture: optional
// render, pipeline drain, and framebuffer size validation.
func (v *Visualizer) prepareCapture(cfg captureConfig) (w, h int, err error) {
	if v.ctx == nil {
		return 0, 0, ErrNoContext
	}
	if cfg.render {
		v.Render()
	}
	v.ctx.Finish()

	w, h = v.ctx.FramebufferSize()
	if w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("glview: empty framebuffer %dx%d", w, h)
	}
	return w, h, nil
}

// writeCameraTrajectory records the current calibration as a one-pose
// trajectory file.
func (v *Visualizer) writeCameraTrajectory(path string) error {
	p := v.view.PinholeParameters()
	traj := &camera.Trajectory{
		Intrinsic:  p.Intrinsic,
		Extrinsics: []mgl64.Mat4{p.Extrinsic},
	}
	return traj.WriteFile(path)
}
