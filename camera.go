package bramble

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera component. Its view is taken from the global
// transform of the object it is attached to.
type Camera struct {
	// FovY is the vertical field of view in radians.
	FovY float64
	// Aspect is width / height of the viewport.
	Aspect float64
	// Near and Far are the clip plane distances.
	Near, Far float64
	// ClearColor is the background color the renderer clears to.
	ClearColor Color
}

// NewCamera returns a camera with a 60° field of view, 16:9 aspect and clip
// planes at 0.1 and 1000.
func NewCamera() Camera {
	return Camera{
		FovY:       mgl64.DegToRad(60),
		Aspect:     16.0 / 9.0,
		Near:       0.1,
		Far:        1000,
		ClearColor: Color{0, 0, 0, 1},
	}
}

// Projection returns the perspective projection matrix.
func (c Camera) Projection() mgl64.Mat4 {
	aspect := c.Aspect
	if aspect <= 0 || math.IsNaN(aspect) {
		aspect = 1
	}
	return mgl64.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// CameraView is a snapshot of the current camera for one frame.
type CameraView struct {
	Object     *GameObject
	Camera     Camera
	View       mgl64.Mat4
	Projection mgl64.Mat4
}

// ViewProjection returns Projection * View.
func (v CameraView) ViewProjection() mgl64.Mat4 {
	return v.Projection.Mul4(v.View)
}

// viewMatrix is the inverse of the camera object's global matrix.
func viewMatrix(obj *GameObject) mgl64.Mat4 {
	return obj.GlobalMatrix().Inv()
}
