package march

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/bindless"
)

// Field is a signed distance function over world space: negative inside
// geometry, zero on the surface.
type Field func(p bindless.Vec3) float32

// SphereField returns the field of a single static sphere.
func SphereField(center bindless.Vec3, radius float32) Field {
	return func(p bindless.Vec3) float32 {
		return bindless.SDSphere(p, center, radius)
	}
}

// PlaneField returns the field of a plane with unit normal n offset h
// along it.
func PlaneField(n bindless.Vec3, h float32) Field {
	return func(p bindless.Vec3) float32 {
		return bindless.SDPlane(p, n, h)
	}
}

// Union combines fields by minimum distance.
func Union(fields ...Field) Field {
	return func(p bindless.Vec3) float32 {
		d := math32.Inf(1)
		for _, f := range fields {
			d = math32.Min(d, f(p))
		}
		return d
	}
}

// Scene parameters for the demo field.
const (
	sceneCellSize     = 10.0
	sceneSphereRadius = 1.0
	sceneOrbitRadius  = 2.0
	sceneSphereCount  = 3
	scenePlaneHeight  = 2.0
)

// DemoScene builds the demo field at elapsed time t: a group of spheres
// orbiting inside an infinitely tiled cell, over a ground plane. The
// tiling folds each axis with a signed modulo, so one cell's geometry
// repeats through all of space above and below the plane cut.
func DemoScene(t float32) Field {
	cell := bindless.V3(sceneCellSize, sceneCellSize, sceneCellSize)

	var centers [sceneSphereCount]bindless.Vec3
	for i := range centers {
		phase := t*0.8 + float32(i)*2*math32.Pi/sceneSphereCount
		centers[i] = bindless.V3(
			sceneOrbitRadius*math32.Cos(phase),
			0.6*math32.Sin(t*1.3+float32(i)),
			sceneOrbitRadius*math32.Sin(phase))
	}

	return func(p bindless.Vec3) float32 {
		q := bindless.RepeatPos(p, cell)
		d := math32.Inf(1)
		for _, c := range centers {
			d = math32.Min(d, bindless.SDSphere(q, c, sceneSphereRadius))
		}
		return math32.Min(d, bindless.SDPlane(p, bindless.V3(0, 1, 0), scenePlaneHeight))
	}
}
