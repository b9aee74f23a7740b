package render

import (
	"github.com/orbcast/orbcast/pkg/math3d"
)

// Viewport describes the image plane in camera space: the NDC corners
// the pixel grid is stretched over, and the z-plane step count.
type Viewport struct {
	LowerLeft  math3d.Vec4 // NDC corner mapped to pixel (0, H)
	UpperRight math3d.Vec4 // NDC corner mapped to pixel (W, 0)
	ZSteps     float64     // z-plane granularity; only one plane is addressed
}

// DefaultViewport returns the fixed viewport: x in [-2,2], y in [-1,1],
// image plane at z=-1. The 2:1 aspect is baked in, not derived from the
// framebuffer dimensions.
func DefaultViewport() Viewport {
	return Viewport{
		LowerLeft:  math3d.P4(-2, -1, -1),
		UpperRight: math3d.P4(2, 1, -1),
		ZSteps:     100,
	}
}

// transform builds the pixel-to-NDC matrix for a w×h grid: a per-axis
// scale with the lower-left corner as translation, composed with a
// Y flip so that row index increasing downward maps to NDC y increasing
// upward. No validation: w=0 or h=0 yields non-finite spacings that
// propagate into every downstream coordinate.
func (v Viewport) transform(w, h int) math3d.Mat4 {
	rng := v.UpperRight.Sub(v.LowerLeft)
	spacing := math3d.V3(
		rng.X/float64(w),
		rng.Y/float64(h),
		rng.Z/v.ZSteps,
	)
	return math3d.FlipY().Mul(math3d.ScaleTranslate(spacing, v.LowerLeft.Vec3()))
}

// Camera is a pinhole camera at a fixed origin. It owns the pixel-to-NDC
// transform for one framebuffer size, computed once and reused for every
// pixel of a render pass.
type Camera struct {
	Origin    math3d.Vec4
	viewport  Viewport
	transform math3d.Mat4
}

// NewCamera creates a camera at the world origin with the default
// viewport, sized for a w×h pixel grid.
func NewCamera(w, h int) *Camera {
	return NewCameraViewport(w, h, DefaultViewport())
}

// NewCameraViewport creates a camera with an explicit viewport.
func NewCameraViewport(w, h int, vp Viewport) *Camera {
	return &Camera{
		Origin:    math3d.P4(0, 0, 0),
		viewport:  vp,
		transform: vp.transform(w, h),
	}
}

// Transform returns the pixel-to-NDC matrix.
func (c *Camera) Transform() math3d.Mat4 {
	return c.transform
}

// RayThrough builds the ray for pixel (x, y): the homogeneous image
// point (x, y, 0, 1) is mapped onto the image plane and the direction is
// the difference from the camera origin. The two W=1 components cancel,
// leaving a direction with W=0. The direction is left unnormalized.
func (c *Camera) RayThrough(x, y int) Ray {
	pNDC := c.transform.MulVec4(math3d.P4(float64(x), float64(y), 0))
	return Ray{
		Origin: c.Origin,
		Dir:    pNDC.Sub(c.Origin),
	}
}
