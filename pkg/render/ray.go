package render

import "github.com/orbcast/orbcast/pkg/math3d"

// Ray is a half-line in homogeneous coordinates: a point origin (W=1)
// and a direction (W=0). Directions are not normalized; the
// intersection test is scale-invariant so unit length is never needed.
type Ray struct {
	Origin math3d.Vec4
	Dir    math3d.Vec4
}

// At returns the point Origin + t*Dir.
func (r Ray) At(t float64) math3d.Vec4 {
	return r.Origin.Add(r.Dir.Scale(t))
}
