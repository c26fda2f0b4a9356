package march

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/bindless"
)

// orbitRate is the camera's angular rate in radians per second.
const orbitRate = 0.4

// Camera bundles the view and projection transforms with their analytic
// inverses. The inverses come from re-derivation (orthonormal transpose
// for the view, reciprocal diagonal for the projection), never from a
// general 4x4 inversion.
type Camera struct {
	Eye bindless.Vec3

	View        bindless.Mat4
	ViewInverse bindless.Mat4

	Proj        bindless.Mat4
	ProjInverse bindless.Mat4
}

// OrbitCamera positions the camera on a horizontal circle of the given
// radius at the given height, orbiting the origin at orbitRate, looking
// at the origin.
func OrbitCamera(t, radius, height, fovY, aspect, near float32) Camera {
	angle := t * orbitRate
	eye := bindless.V3(radius*math32.Cos(angle), height, radius*math32.Sin(angle))
	target := bindless.Vec3{}
	up := bindless.V3(0, 1, 0)

	return Camera{
		Eye:         eye,
		View:        bindless.LookAt(eye, target, up),
		ViewInverse: bindless.LookAtInverse(eye, target, up),
		Proj:        bindless.PerspectiveInfinite(fovY, aspect, near),
		ProjInverse: bindless.PerspectiveInfiniteInverse(fovY, aspect, near),
	}
}

// Ray reconstructs the world-space ray through a pixel. uv is the pixel
// center in unit screen coordinates, (0,0) top-left. The direction comes
// from pushing the clip-space point through the analytic projection
// inverse, then rotating into world space with the view inverse.
func (c Camera) Ray(uv bindless.Vec2) (origin, dir bindless.Vec3) {
	ndc := bindless.V2(uv.X*2-1, 1-uv.Y*2)

	v := c.ProjInverse.MulVec4(bindless.V4(ndc.X, ndc.Y, 1, 1))
	viewDir := bindless.V3(v.X/v.W, v.Y/v.W, v.Z/v.W).Normalize()

	return c.Eye, c.ViewInverse.MulDir(viewDir).Normalize()
}
