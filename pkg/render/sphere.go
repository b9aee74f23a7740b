package render

import (
	"image/color"

	"github.com/orbcast/orbcast/pkg/math3d"
)

// Primitive is a shape that can answer a ray with a color. Shade
// returns the primitive's color and true on a hit, or false to let the
// background show through.
type Primitive interface {
	Shade(r Ray) (color.RGBA, bool)
}

// Sphere is an analytic sphere with a flat, unshaded color. Immutable
// scene data once constructed.
type Sphere struct {
	Center math3d.Vec4 // point, W=1
	Radius float64
	Color  color.RGBA
}

// NewSphere creates a sphere from a spatial center.
func NewSphere(center math3d.Vec3, radius float64, c color.RGBA) *Sphere {
	return &Sphere{
		Center: math3d.P4(center.X, center.Y, center.Z),
		Radius: radius,
		Color:  c,
	}
}

// Intersects reports whether the infinite line through r crosses the
// sphere surface. Substituting the ray equation into the sphere
// equation gives a quadratic in t:
//
//	t²·(d·d) + 2t·(d·oc) + (oc·oc − r²) = 0
//
// Two real roots mean the line crosses the surface; the hit is decided
// by the discriminant alone, without solving for t. A tangent ray
// (discriminant exactly zero) counts as a miss. Both origin and center
// carry W=1, so oc has W=0 and the 4-component dots reduce to spatial
// ones.
func (s *Sphere) Intersects(r Ray) bool {
	oc := r.Origin.Sub(s.Center)
	a := r.Dir.Dot(r.Dir)
	b := 2 * oc.Dot(r.Dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := b*b - 4*a*c
	return discriminant > 0
}

// Shade implements Primitive.
func (s *Sphere) Shade(r Ray) (color.RGBA, bool) {
	if s.Intersects(r) {
		return s.Color, true
	}
	return color.RGBA{}, false
}
