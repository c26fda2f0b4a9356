package bindless

import "github.com/chewxy/math32"

// Mat4 is a 4x4 float32 matrix stored in row-major order:
// element (row, col) lives at index row*4+col.
type Mat4 [16]float32

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns the matrix product m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * n[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// MulVec4 returns the product m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		W: m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// MulPoint transforms a position (w=1) and performs the perspective divide.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	out := m.MulVec4(Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1})
	if out.W != 0 && out.W != 1 {
		return Vec3{X: out.X / out.W, Y: out.Y / out.W, Z: out.Z / out.W}
	}
	return out.XYZ()
}

// MulDir transforms a direction (w=0). No perspective divide is applied.
func (m Mat4) MulDir(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col*4+row] = m[row*4+col]
		}
	}
	return out
}

// LookAt builds a world-to-view matrix for a camera at eye looking at
// target. View space is right-handed with +Z pointing from the eye
// toward the target. up only fixes the roll; it is re-orthogonalized.
func LookAt(eye, target, up Vec3) Mat4 {
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward)

	return Mat4{
		right.X, right.Y, right.Z, -right.Dot(eye),
		trueUp.X, trueUp.Y, trueUp.Z, -trueUp.Dot(eye),
		forward.X, forward.Y, forward.Z, -forward.Dot(eye),
		0, 0, 0, 1,
	}
}

// LookAtInverse builds the view-to-world matrix for the same camera.
//
// The inverse is expressed analytically rather than by matrix inversion:
// the rotation block is orthonormal, so its inverse is its transpose and
// the translation column is simply the eye position.
func LookAtInverse(eye, target, up Vec3) Mat4 {
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward)

	return Mat4{
		right.X, trueUp.X, forward.X, eye.X,
		right.Y, trueUp.Y, forward.Y, eye.Y,
		right.Z, trueUp.Z, forward.Z, eye.Z,
		0, 0, 0, 1,
	}
}

// PerspectiveInfinite builds a reversed-Z perspective projection with an
// infinite far plane from a vertical field of view (radians), an aspect
// ratio (width/height) and a near plane distance. Depth maps to near/z,
// so it approaches 0 at infinity and 1 at the near plane.
func PerspectiveInfinite(fovY, aspect, near float32) Mat4 {
	focal := 1 / math32.Tan(fovY/2)
	return Mat4{
		focal / aspect, 0, 0, 0,
		0, focal, 0, 0,
		0, 0, 0, near,
		0, 0, 1, 0,
	}
}

// PerspectiveInfiniteInverse builds the analytic inverse of
// [PerspectiveInfinite] with the same parameters. Used to reconstruct
// view-space ray directions from screen UVs without a general 4x4
// inverse.
func PerspectiveInfiniteInverse(fovY, aspect, near float32) Mat4 {
	focal := 1 / math32.Tan(fovY/2)
	return Mat4{
		aspect / focal, 0, 0, 0,
		0, 1 / focal, 0, 0,
		0, 0, 0, 1,
		0, 0, 1 / near, 0,
	}
}
