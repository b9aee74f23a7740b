package math3d

import "math"

// Vec4 represents a homogeneous coordinate: a point when W=1, a
// direction when W=0. Subtracting two points yields a direction, since
// the W components cancel.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 creates a new Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// P4 creates a point (W=1).
func P4(x, y, z float64) Vec4 {
	return Vec4{x, y, z, 1}
}

// D4 creates a direction (W=0).
func D4(x, y, z float64) Vec4 {
	return Vec4{x, y, z, 0}
}

// Vec3 returns the spatial portion, dropping W.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Add returns the vector sum.
//
//nolint:st1016 // a+b naming convention is clearer for vector operations
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the vector difference.
//
//nolint:st1016 // a-b naming convention is clearer for vector operations
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Scale returns the scalar product.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the dot product over all four components. Directions
// carry W=0, so for them this equals the 3D dot product.
//
//nolint:st1016 // a·b naming convention is clearer for vector operations
func (a Vec4) Dot(b Vec4) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Len returns the L2 norm over all four components.
func (v Vec4) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector. The norm runs over all four
// components; callers normalizing a spatial 3-vector must hold W at zero.
func (v Vec4) Normalize() Vec4 {
	l := v.Len()
	if l == 0 {
		return Vec4{}
	}
	return Vec4{v.X / l, v.Y / l, v.Z / l, v.W / l}
}

// Lerp returns linear interpolation.
//
//nolint:st1016 // a,b naming convention is clearer for interpolation
func (a Vec4) Lerp(b Vec4, t float64) Vec4 {
	return Vec4{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
		a.W + (b.W-a.W)*t,
	}
}
