package glview

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/glview/camera"
)

// Field of view bounds in degrees. SetFieldOfView clamps into this range.
const (
	FieldOfViewMin     float32 = 5
	FieldOfViewMax     float32 = 90
	DefaultFieldOfView float32 = 60
)

const (
	defaultNear     float32 = 0.1
	defaultFar      float32 = 1000
	minZoomDistance float32 = 1e-3
)

// ViewControl holds the camera state of a Visualizer: pose, vertical field
// of view, clip planes, and window size. SetViewMatrices derives the view
// and projection matrices consumed by renderers; PinholeParameters derives
// the calibration recorded next to captures.
//
// A ViewControl is not safe for concurrent use.
type ViewControl struct {
	width  int
	height int

	eye    mgl32.Vec3
	target mgl32.Vec3
	up     mgl32.Vec3

	fov  float32 // vertical, degrees
	near float32
	far  float32

	view mgl32.Mat4
	proj mgl32.Mat4
}

// NewViewControl creates a view control with the default pose looking at
// the origin from +Z. Dimensions are clamped to at least 1.
func NewViewControl(width, height int) *ViewControl {
	v := &ViewControl{}
	v.SetSize(width, height)
	v.Reset()
	return v
}

// Reset restores the default pose, field of view, and clip planes. The
// window size is kept.
func (v *ViewControl) Reset() {
	v.eye = mgl32.Vec3{0, 0, 3}
	v.target = mgl32.Vec3{0, 0, 0}
	v.up = mgl32.Vec3{0, 1, 0}
	v.fov = DefaultFieldOfView
	v.near = defaultNear
	v.far = defaultFar
	v.SetViewMatrices()
}

// SetSize updates the window size in pixels. Non-positive dimensions are
// clamped to 1.
func (v *ViewControl) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.width = width
	v.height = height
}

// WindowWidth returns the window width in pixels.
func (v *ViewControl) WindowWidth() int { return v.width }

// WindowHeight returns the window height in pixels.
func (v *ViewControl) WindowHeight() int { return v.height }

// ZNear returns the near clip plane distance.
func (v *ViewControl) ZNear() float32 { return v.near }

// ZFar returns the far clip plane distance.
func (v *ViewControl) ZFar() float32 { return v.far }

// FieldOfView returns the vertical field of view in degrees.
func (v *ViewControl) FieldOfView() float32 { return v.fov }

// Eye returns the camera position.
func (v *ViewControl) Eye() mgl32.Vec3 { return v.eye }

// Target returns the point the camera looks at.
func (v *ViewControl) Target() mgl32.Vec3 { return v.target }

// Up returns the camera up direction.
func (v *ViewControl) Up() mgl32.Vec3 { return v.up }

// SetFieldOfView sets the vertical field of view in degrees, clamped to
// [FieldOfViewMin, FieldOfViewMax].
func (v *ViewControl) SetFieldOfView(deg float32) {
	v.fov = math32.Min(math32.Max(deg, FieldOfViewMin), FieldOfViewMax)
}

// SetClipPlanes sets the near and far clip plane distances. Pairs with
// near <= 0 or far <= near are ignored.
func (v *ViewControl) SetClipPlanes(near, far float32) {
	if near <= 0 || far <= near {
		return
	}
	v.near = near
	v.far = far
}

// LookAt places the camera at eye looking toward target with the given up
// direction.
func (v *ViewControl) LookAt(eye, target, up mgl32.Vec3) {
	v.eye = eye
	v.target = target
	v.up = up
}

// Orbit rotates the camera around the target: yaw degrees about the up
// axis, then pitch degrees about the camera's right axis. The distance to
// the target is preserved.
func (v *ViewControl) Orbit(yawDeg, pitchDeg float32) {
	offset := v.eye.Sub(v.target)
	front := offset.Mul(-1).Normalize()
	right := front.Cross(v.up)
	if right.Len() < 1e-6 {
		// Looking along up; fall back to the X axis.
		right = mgl32.Vec3{1, 0, 0}
	} else {
		right = right.Normalize()
	}

	rot := mgl32.QuatRotate(mgl32.DegToRad(-yawDeg), v.up)
	rot = rot.Mul(mgl32.QuatRotate(mgl32.DegToRad(-pitchDeg), right))
	v.eye = v.target.Add(rot.Rotate(offset))
}

// Pan translates the camera and target together in the view plane by the
// given window-space deltas in pixels.
func (v *ViewControl) Pan(dx, dy float32) {
	offset := v.eye.Sub(v.target)
	dist := offset.Len()
	front := offset.Mul(-1).Normalize()
	right := front.Cross(v.up).Normalize()
	upv := right.Cross(front)

	// World units covered by one pixel at the target distance.
	perPixel := 2 * dist * math32.Tan(mgl32.DegToRad(v.fov)/2) / float32(v.height)
	delta := right.Mul(-dx * perPixel).Add(upv.Mul(dy * perPixel))
	v.eye = v.eye.Add(delta)
	v.target = v.target.Add(delta)
}

// Zoom scales the distance between camera and target by factor. Factors
// at or below zero are ignored; the distance never drops below a small
// minimum.
func (v *ViewControl) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	offset := v.eye.Sub(v.target)
	dist := math32.Max(offset.Len()*factor, minZoomDistance)
	v.eye = v.target.Add(offset.Normalize().Mul(dist))
}

// FitBounds retargets the camera at the bounding sphere of the scene,
// keeping the current view direction, and derives clip planes that
// enclose the sphere with margin. Non-positive radii are ignored.
func (v *ViewControl) FitBounds(center mgl32.Vec3, radius float32) {
	if radius <= 0 {
		return
	}
	dir := v.eye.Sub(v.target)
	if dir.Len() < 1e-6 {
		dir = mgl32.Vec3{0, 0, 1}
	} else {
		dir = dir.Normalize()
	}

	dist := radius / math32.Tan(mgl32.DegToRad(v.fov)/2)
	v.target = center
	v.eye = center.Add(dir.Mul(dist))
	v.near = math32.Max(0.01*dist, dist-3*radius)
	v.far = dist + 3*radius
}

// SetViewMatrices recomputes the view and projection matrices from the
// current pose, field of view, clip planes, and window size.
func (v *ViewControl) SetViewMatrices() {
	v.view = mgl32.LookAtV(v.eye, v.target, v.up)
	aspect := float32(v.width) / float32(v.height)
	v.proj = mgl32.Perspective(mgl32.DegToRad(v.fov), aspect, v.near, v.far)
}

// ViewMatrix returns the world-to-camera matrix from the last
// SetViewMatrices call.
func (v *ViewControl) ViewMatrix() mgl32.Mat4 { return v.view }

// ProjectionMatrix returns the projection matrix from the last
// SetViewMatrices call.
func (v *ViewControl) ProjectionMatrix() mgl32.Mat4 { return v.proj }

// PinholeParameters derives the pinhole calibration of the current view.
// The intrinsic follows from the field of view and window size; the
// extrinsic is the world-to-camera pose in the computer-vision frame
// (+X right, +Y down, +Z forward), in doubles.
func (v *ViewControl) PinholeParameters() camera.Parameters {
	in := camera.IntrinsicFromFOV(v.width, v.height, float64(v.fov))

	glView := mgl64.LookAtV(vec64(v.eye), vec64(v.target), vec64(v.up))
	flip := mgl64.Diag4(mgl64.Vec4{1, -1, -1, 1})
	return camera.Parameters{
		Intrinsic: in,
		Extrinsic: flip.Mul4(glView),
	}
}

// vec64 widens a float32 vector for double-precision camera math.
func vec64(v mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}
