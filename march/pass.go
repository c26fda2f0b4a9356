package march

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/bindless"
	"github.com/gogpu/bindless/render"
)

// PassOptions parameterizes one demo frame.
type PassOptions struct {
	// Mode selects the output visualization.
	Mode DebugMode

	// Time is the elapsed time in seconds; it drives the camera orbit
	// and the sphere animation.
	Time float32

	// DT is the delta since the previous frame and Frame the frame
	// index. Both travel in the pass uniforms for shader parity and
	// frame-rate diagnostics.
	DT    float32
	Frame uint64

	// Camera parameters.
	FovY        float32
	OrbitRadius float32
	OrbitHeight float32
	Near        float32

	// LightDir is the unit direction toward the light.
	LightDir bindless.Vec3
}

// DefaultPassOptions returns the demo's stock parameters.
func DefaultPassOptions() PassOptions {
	return PassOptions{
		Mode:        DebugSteps,
		FovY:        1.1,
		OrbitRadius: 14,
		OrbitHeight: 5,
		Near:        0.1,
		LightDir:    bindless.V3(0.5, 0.8, -0.3).Normalize(),
	}
}

// Render runs the demo pass over the target with the animated demo
// scene.
func Render(target render.StorageTarget, opts PassOptions) {
	RenderField(target, DemoScene(opts.Time), opts)
}

// RenderField runs the pass with an explicit field. One compute-style
// invocation shades each pixel; out-of-extent invocations from the
// rounded-up workgroup count are dropped by the frame writer.
func RenderField(target render.StorageTarget, f Field, opts PassOptions) {
	width, height := target.Extent()
	if width == 0 || height == 0 {
		return
	}

	aspect := float32(width) / float32(height)
	cam := OrbitCamera(opts.Time, opts.OrbitRadius, opts.OrbitHeight, opts.FovY, aspect, opts.Near)
	cfg := ConfigFor(height, opts.FovY)
	writer := render.FrameWriter{Target: target}

	render.Dispatch(render.GroupsFor(width), render.GroupsFor(height), func(x, y uint32) {
		uv := bindless.V2(
			(float32(x)+0.5)/float32(width),
			(float32(y)+0.5)/float32(height))
		writer.Write(x, y, shade(f, cam, cfg, opts, uv))
	})
}

func shade(f Field, cam Camera, cfg TraceConfig, opts PassOptions, uv bindless.Vec2) bindless.Vec4 {
	origin, dir := cam.Ray(uv)
	hit := Trace(f, origin, dir, cfg)

	switch opts.Mode {
	case DebugFootprint:
		v := bindless.Saturate(hit.Threshold / (cfg.ConeRadius * Far))
		return bindless.V4(v, v, v, 1)

	case DebugFraction:
		if !hit.Hit {
			return background(dir)
		}
		p := origin.Add(dir.Mul(hit.T))
		frac := bindless.RepeatPos(p, bindless.V3(1, 1, 1)).Add(bindless.V3(0.5, 0.5, 0.5))
		return bindless.V4(frac.X, frac.Y, frac.Z, 1)

	case DebugShaded:
		if !hit.Hit {
			return background(dir)
		}
		p := origin.Add(dir.Mul(hit.T))
		n := Normal(f, p)
		lambert := math32.Max(n.Dot(opts.LightDir), 0)
		shadow := SoftShadow(f, p, opts.LightDir, 8)
		ao := Occlusion(f, p, n)
		lit := 0.1*ao + 0.9*lambert*shadow
		return bindless.V4(lit, lit*0.97, lit*0.92, 1)

	default: // DebugSteps
		c := Turbo(float32(hit.Steps) / MaxSteps)
		return bindless.V4(c.X, c.Y, c.Z, 1)
	}
}

// background is the miss color: a dim vertical gradient.
func background(dir bindless.Vec3) bindless.Vec4 {
	v := 0.05 + 0.1*bindless.Saturate(dir.Y+0.5)
	return bindless.V4(v, v, v*1.3, 1)
}
