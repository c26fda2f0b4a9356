package march

import (
	"github.com/gogpu/bindless"
)

// DebugMode selects what the demo pass writes per pixel.
type DebugMode int

const (
	// DebugSteps false-colors the sphere-trace step count through the
	// turbo colormap. This is the default view: banding and hot spots
	// in it expose marching cost directly.
	DebugSteps DebugMode = iota

	// DebugFootprint visualizes the cone footprint at the hit point.
	DebugFootprint

	// DebugFraction visualizes the fractional part of the hit position,
	// making the tiling cells visible.
	DebugFraction

	// DebugShaded is the lit output: lambert shading with soft shadows
	// and ambient occlusion.
	DebugShaded
)

func (m DebugMode) String() string {
	switch m {
	case DebugSteps:
		return "steps"
	case DebugFootprint:
		return "footprint"
	case DebugFraction:
		return "fraction"
	case DebugShaded:
		return "shaded"
	default:
		return "unknown"
	}
}

// Turbo maps t in [0,1] through the turbo colormap's fourth-order
// polynomial fit. Out-of-range inputs are clamped.
func Turbo(t float32) bindless.Vec3 {
	t = bindless.Saturate(t)

	r := 0.13572138 + t*(4.61539260+t*(-42.66032258+t*(132.13108234+t*(-152.94239396+t*59.28637943))))
	g := 0.09140261 + t*(2.19418839+t*(4.84296658+t*(-14.18503333+t*(4.27729857+t*2.82956604))))
	b := 0.10667330 + t*(12.64194608+t*(-60.58204836+t*(110.36276771+t*(-89.90310912+t*27.34824973))))

	return bindless.V3(bindless.Saturate(r), bindless.Saturate(g), bindless.Saturate(b))
}
