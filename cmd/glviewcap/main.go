// Command glviewcap renders a frame offscreen and captures it as color
// and depth images, with camera parameter sidecars when the filenames
// are auto-generated.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/glview"
	"github.com/gogpu/glview/backend"
	"github.com/gogpu/glview/backend/opengl"
	"github.com/gogpu/glview/readback"
)

func main() {
	// GLFW and OpenGL require the main thread.
	runtime.LockOSThread()

	var (
		width    = flag.Int("width", 1280, "framebuffer width")
		height   = flag.Int("height", 720, "framebuffer height")
		name     = flag.String("backend", "", "context backend (default: best available)")
		color    = flag.String("color", "", "color capture file (default: ScreenCapture_<timestamp>.png)")
		depth    = flag.String("depth", "", "depth capture file (default: DepthCapture_<timestamp>.png)")
		scale    = flag.Float64("depth-scale", glview.DefaultDepthScale, "depth meters-to-file multiplier")
		strategy = flag.String("readback", "", "depth readback strategy (default: per platform)")
		bg       = flag.String("bg", "", "background color as R,G,B in [0,1]")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		glview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := backend.Options{
		Width:  *width,
		Height: *height,
		Title:  "glviewcap",
	}
	var (
		ctx glview.Context
		err error
	)
	if *name != "" {
		ctx, err = backend.NewByNameWithOptions(*name, opts)
	} else {
		ctx, err = backend.NewWithOptions(opts)
	}
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}
	defer opengl.Terminate()

	vopts := []glview.Option{glview.WithContext(ctx)}
	if *strategy != "" {
		s, err := readback.Get(*strategy)
		if err != nil {
			log.Fatalf("Failed to select readback strategy: %v (have: %v)",
				err, readback.Available())
		}
		vopts = append(vopts, glview.WithDepthReadback(s))
	}

	v := glview.New(vopts...)
	defer v.Close()

	if *bg != "" {
		r, g, b, err := parseColor(*bg)
		if err != nil {
			log.Fatalf("Failed to parse -bg: %v", err)
		}
		v.RenderOption().BackgroundColor = mgl32.Vec4{r, g, b, 1}
	}

	if err := v.CaptureScreenImage(*color); err != nil {
		log.Fatalf("Failed to capture color image: %v", err)
	}
	if err := v.CaptureDepthImage(*depth, glview.WithDepthScale(*scale)); err != nil {
		log.Fatalf("Failed to capture depth image: %v", err)
	}

	w, h := v.ViewControl().WindowWidth(), v.ViewControl().WindowHeight()
	log.Printf("Captured %dx%d frame", w, h)
}

// parseColor reads "R,G,B" with components in [0, 1].
func parseColor(s string) (r, g, b float32, err error) {
	if _, err = fmt.Sscanf(s, "%f,%f,%f", &r, &g, &b); err != nil {
		return 0, 0, 0, fmt.Errorf("want R,G,B in [0,1], got %q", s)
	}
	for _, c := range []float32{r, g, b} {
		if c < 0 || c > 1 {
			return 0, 0, 0, fmt.Errorf("component %v out of [0,1]", c)
		}
	}
	return r, g, b, nil
}
