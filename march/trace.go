package march

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/bindless"
)

// Sphere-tracing termination caps. Both are invariant guarantees: a ray
// never loops forever, it either converges, walks past Far, or runs out
// of steps.
const (
	// MaxSteps caps the number of sphere-trace iterations per ray.
	MaxSteps = 500

	// Far is the distance limit in world units; anything beyond is a miss.
	Far = 100.0
)

// TraceConfig carries the per-ray adaptive threshold. The hit threshold
// grows linearly with distance as ConeRadius*t, matching the pixel's
// cone footprint: a surface counts as hit once it is smaller than the
// pixel that sees it. That beats a flat epsilon for banding at grazing
// angles.
type TraceConfig struct {
	ConeRadius float32
}

// ConfigFor derives the cone radius from the vertical resolution and
// field of view: the half-height of one pixel at unit distance.
func ConfigFor(heightPx uint32, fovY float32) TraceConfig {
	return TraceConfig{
		ConeRadius: math32.Tan(fovY/2) / float32(heightPx),
	}
}

// Hit is the result of a primary trace.
type Hit struct {
	// Hit is false when the ray escaped past Far or ran out of steps.
	Hit bool

	// T is the distance along the ray at termination.
	T float32

	// Steps is the number of iterations taken.
	Steps int

	// Threshold is the cone footprint at termination, kept for the
	// footprint debug view.
	Threshold float32
}

// Trace sphere-traces f from origin along dir.
func Trace(f Field, origin, dir bindless.Vec3, cfg TraceConfig) Hit {
	t := float32(0)
	for steps := 0; steps < MaxSteps; steps++ {
		if t > Far {
			return Hit{T: t, Steps: steps, Threshold: cfg.ConeRadius * t}
		}
		d := f(origin.Add(dir.Mul(t)))
		threshold := cfg.ConeRadius * t
		if d <= threshold {
			return Hit{Hit: true, T: t, Steps: steps, Threshold: threshold}
		}
		t += d
	}
	return Hit{T: t, Steps: MaxSteps, Threshold: cfg.ConeRadius * t}
}

// normalEps is the central-difference offset for gradient estimation.
const normalEps = 1e-3

// Normal estimates the surface normal at p as the normalized
// central-difference gradient of f.
func Normal(f Field, p bindless.Vec3) bindless.Vec3 {
	dx := bindless.V3(normalEps, 0, 0)
	dy := bindless.V3(0, normalEps, 0)
	dz := bindless.V3(0, 0, normalEps)
	return bindless.V3(
		f(p.Add(dx))-f(p.Sub(dx)),
		f(p.Add(dy))-f(p.Sub(dy)),
		f(p.Add(dz))-f(p.Sub(dz))).Normalize()
}

// Shadow-trace bounds. The start offset keeps the ray from immediately
// re-hitting the surface it leaves.
const (
	shadowStart = 0.02
	shadowEps   = 1e-3
)

// SoftShadow traces from p toward the light and returns a visibility
// factor in [0,1]. Any sub-threshold hit returns exactly 0. Otherwise
// visibility shrinks as the ray grazes near-miss geometry, using the
// previous-distance/current-distance penumbra width estimate; k sets
// how hard the penumbra edge is.
func SoftShadow(f Field, p, lightDir bindless.Vec3, k float32) float32 {
	res := float32(1)
	prev := float32(1e10)

	t := float32(shadowStart)
	for steps := 0; steps < MaxSteps && t < Far; steps++ {
		d := f(p.Add(lightDir.Mul(t)))
		if d <= shadowEps {
			return 0
		}
		// The width estimate needs d <= 2*prev; a discontinuous field
		// (the repetition fold at cell borders) can jump past that, where
		// d*d - y*y goes negative and the root would inject NaN into the
		// visibility. Skip the update there, the estimate is meaningless.
		if d <= 2*prev {
			y := d * d / (2 * prev)
			w := math32.Sqrt(d*d - y*y)
			res = math32.Min(res, k*w/math32.Max(t-y, 1e-6))
		}
		prev = d
		t += d
	}
	return bindless.Saturate(res)
}

// Occlusion estimates ambient occlusion at p by sampling the field a few
// steps along the normal: each sample compares the actual clearance to
// the unoccluded distance, with closer samples weighted heavier.
func Occlusion(f Field, p, n bindless.Vec3) float32 {
	const samples = 5
	occ := float32(0)
	weight := float32(1)
	for i := 1; i <= samples; i++ {
		h := 0.08 * float32(i)
		occ += weight * (h - f(p.Add(n.Mul(h))))
		weight *= 0.6
	}
	return bindless.Saturate(1 - 2*occ)
}
