package bindless

import "github.com/chewxy/math32"

// Signed distance functions shared by the rect compositor (2D) and the
// raymarcher scene (3D). Negative distances are inside the surface.

// SDRoundedBox2 returns the signed distance from p to an axis-aligned
// rounded box centered at the origin with half-extents b and corner
// radius r. With r=0 it reduces exactly to [SDBox2].
func SDRoundedBox2(p, b Vec2, r float32) float32 {
	q := p.Abs().Sub(b).Add(Vec2{X: r, Y: r})
	outside := q.Max(Vec2{}).Length()
	inside := math32.Min(q.MaxComponent(), 0)
	return outside + inside - r
}

// SDBox2 returns the signed distance from p to an axis-aligned box
// centered at the origin with half-extents b.
func SDBox2(p, b Vec2) float32 {
	d := p.Abs().Sub(b)
	outside := d.Max(Vec2{}).Length()
	inside := math32.Min(d.MaxComponent(), 0)
	return outside + inside
}

// SDSphere returns the signed distance from pos to a sphere.
func SDSphere(pos, center Vec3, radius float32) float32 {
	return pos.Sub(center).Length() - radius
}

// SDPlane returns the signed distance from pos to a plane with unit
// normal n and origin offset h (the plane satisfies dot(p, n) + h = 0).
func SDPlane(pos, n Vec3, h float32) float32 {
	return pos.Dot(n) + h
}

// RepeatPos folds pos into a cell of size c centered at the origin,
// tiling space infinitely. Feeding the folded position to a distance
// function repeats its surface across every cell.
func RepeatPos(pos, c Vec3) Vec3 {
	return Vec3{
		X: floorMod(pos.X+0.5*c.X, c.X) - 0.5*c.X,
		Y: floorMod(pos.Y+0.5*c.Y, c.Y) - 0.5*c.Y,
		Z: floorMod(pos.Z+0.5*c.Z, c.Z) - 0.5*c.Z,
	}
}

// floorMod is the GLSL mod: the result has the sign of the divisor.
func floorMod(x, y float32) float32 {
	m := math32.Mod(x, y)
	if m != 0 && (m < 0) != (y < 0) {
		m += y
	}
	return m
}
