package math3d

// Mat4 is a 4x4 matrix stored in column-major order.
// This matches OpenGL conventions for easier reasoning about transforms.
//
// Memory layout (indices):
// | 0  4  8  12 |
// | 1  5  9  13 |
// | 2  6  10 14 |
// | 3  7  11 15 |
//
// For an affine transform:
// | Sx 0  0  Tx |   S = per-axis scale
// | 0  Sy 0  Ty |   T = translation
// | 0  0  Sz Tz |
// | 0  0  0  1  |
type Mat4 [16]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scale creates a per-axis scaling matrix.
func Scale(v Vec3) Mat4 {
	return Mat4{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// Translate creates a translation matrix.
func Translate(v Vec3) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		v.X, v.Y, v.Z, 1,
	}
}

// ScaleTranslate creates a combined scale-then-translate matrix: the
// diagonal carries the per-axis scale and the last column the offset.
// Equivalent to Translate(t).Mul(Scale(s)) without the extra multiply.
func ScaleTranslate(s, t Vec3) Mat4 {
	return Mat4{
		s.X, 0, 0, 0,
		0, s.Y, 0, 0,
		0, 0, s.Z, 0,
		t.X, t.Y, t.Z, 1,
	}
}

// FlipY creates a matrix negating the Y axis. Composed onto a viewport
// transform it reconciles image coordinates (Y down) with camera
// coordinates (Y up).
func FlipY() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, -1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for col := range 4 {
		for row := range 4 {
			var sum float64
			for k := range 4 {
				sum += a[row+k*4] * b[k+col*4]
			}
			m[row+col*4] = sum
		}
	}
	return m
}

// MulVec4 transforms a Vec4.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Get returns the element at (row, col).
func (m Mat4) Get(row, col int) float64 {
	return m[row+col*4]
}

// Set sets the element at (row, col).
func (m *Mat4) Set(row, col int, val float64) {
	m[row+col*4] = val
}
