package glview

// Render draws one full frame: it makes the context current, synchronizes
// the camera with the drawable size, recomputes the view matrices, clears
// color and depth, invokes every registered renderer in registration
// order, and presents the result. A completed frame satisfies any pending
// redraw request.
//
// A renderer that fails is logged at Warn and skipped; the frame still
// completes with the remaining renderers. Render does nothing on a
// Visualizer without a context.
func (v *Visualizer) Render() {
	if v.ctx == nil {
		return
	}

	v.ctx.MakeCurrent()
	if w, h := v.ctx.FramebufferSize(); w > 0 && h > 0 {
		v.view.SetSize(w, h)
	}
	v.view.SetViewMatrices()

	v.ctx.Clear(v.opt.BackgroundColor)
	for _, r := range v.renderers {
		if err := r.Draw(v.opt, v.view); err != nil {
			Logger().Warn("renderer draw failed", "error", err)
		}
	}
	v.ctx.SwapBuffers()

	v.redrawNeeded = false
}
