package march

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/gogpu/bindless"
)

func TestOrbitCamera_LooksAtOrigin(t *testing.T) {
	for _, time := range []float32{0, 1.7, 10, 33.3} {
		cam := OrbitCamera(time, 12, 4, 1.1, 16.0/9.0, 0.1)

		// Eye stays on the orbit circle at the configured height.
		r := math32.Hypot(cam.Eye.X, cam.Eye.Z)
		if math32.Abs(r-12) > 1e-4 {
			t.Errorf("t=%v: orbit radius = %v, want 12", time, r)
		}
		if cam.Eye.Y != 4 {
			t.Errorf("t=%v: eye height = %v, want 4", time, cam.Eye.Y)
		}

		// The center ray points from the eye at the origin.
		origin, dir := cam.Ray(bindless.V2(0.5, 0.5))
		if !origin.Approx(cam.Eye, 1e-5) {
			t.Errorf("t=%v: ray origin = %v, want eye %v", time, origin, cam.Eye)
		}
		want := cam.Eye.Neg().Normalize()
		if !dir.Approx(want, 1e-4) {
			t.Errorf("t=%v: center ray dir = %v, want %v", time, dir, want)
		}
	}
}

func TestOrbitCamera_AnalyticInversesAgree(t *testing.T) {
	cam := OrbitCamera(2.5, 10, 3, 1.0, 1.5, 0.1)

	ident := bindless.Mat4Identity()
	for name, prod := range map[string]bindless.Mat4{
		"view":       cam.View.Mul(cam.ViewInverse),
		"projection": cam.Proj.Mul(cam.ProjInverse),
	} {
		for i := range prod {
			if math32.Abs(prod[i]-ident[i]) > 1e-4 {
				t.Fatalf("%s * inverse deviates from identity at %d: %v", name, i, prod[i])
			}
		}
	}
}

func TestCamera_RayDirectionsSpanFrustum(t *testing.T) {
	cam := OrbitCamera(0, 10, 0, 1.2, 1.0, 0.1)

	_, left := cam.Ray(bindless.V2(0.1, 0.5))
	_, right := cam.Ray(bindless.V2(0.9, 0.5))
	_, top := cam.Ray(bindless.V2(0.5, 0.1))
	_, bottom := cam.Ray(bindless.V2(0.5, 0.9))

	if left.Approx(right, 1e-3) {
		t.Error("left and right rays coincide")
	}
	// Screen-up rays point higher in world space.
	if top.Y <= bottom.Y {
		t.Errorf("top ray y=%v not above bottom ray y=%v", top.Y, bottom.Y)
	}

	for _, d := range []bindless.Vec3{left, right, top, bottom} {
		if math32.Abs(d.Length()-1) > 1e-4 {
			t.Errorf("ray direction %v not unit length", d)
		}
	}
}
