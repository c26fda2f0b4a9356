package bindless

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestMat4_MulIdentity(t *testing.T) {
	m := LookAt(V3(1, 2, 3), V3(0, 0, 0), V3(0, 1, 0))
	if got := m.Mul(Mat4Identity()); got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
	if got := Mat4Identity().Mul(m); got != m {
		t.Errorf("I * m = %v, want %v", got, m)
	}
}

func TestLookAt_Inverse(t *testing.T) {
	tests := []struct {
		name        string
		eye, target Vec3
	}{
		{"axis aligned", V3(0, 0, -5), V3(0, 0, 0)},
		{"diagonal", V3(3, 4, 5), V3(0, 1, 0)},
		{"close", V3(0.5, 0.1, 0.5), V3(0, 0, 0)},
	}

	up := V3(0, 1, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := LookAt(tt.eye, tt.target, up)
			inv := LookAtInverse(tt.eye, tt.target, up)

			// view * inv must be the identity.
			prod := view.Mul(inv)
			ident := Mat4Identity()
			for i := range prod {
				if math32.Abs(prod[i]-ident[i]) > 1e-5 {
					t.Fatalf("view*inv[%d] = %v, want %v", i, prod[i], ident[i])
				}
			}

			// The eye maps to the view-space origin.
			if got := view.MulPoint(tt.eye); !got.Approx(Vec3{}, 1e-5) {
				t.Errorf("view * eye = %v, want origin", got)
			}

			// The target lies on the +Z view axis.
			vt := view.MulPoint(tt.target)
			if math32.Abs(vt.X) > 1e-5 || math32.Abs(vt.Y) > 1e-5 || vt.Z <= 0 {
				t.Errorf("view * target = %v, want on +Z axis", vt)
			}
		})
	}
}

func TestPerspectiveInfinite_Inverse(t *testing.T) {
	const (
		fovY   = 1.2
		aspect = 16.0 / 9.0
		near   = 0.1
	)

	proj := PerspectiveInfinite(fovY, aspect, near)
	inv := PerspectiveInfiniteInverse(fovY, aspect, near)

	points := []Vec4{
		{X: 1, Y: 2, Z: 5, W: 1},
		{X: -3, Y: 0.5, Z: 10, W: 1},
		{X: 0, Y: 0, Z: 1, W: 1},
	}

	for _, p := range points {
		clip := proj.MulVec4(p)
		back := inv.MulVec4(clip)
		// The round trip recovers the point up to a scale factor.
		if back.W == 0 {
			t.Fatalf("round trip of %v produced w=0", p)
		}
		got := V3(back.X/back.W, back.Y/back.W, back.Z/back.W)
		if !got.Approx(p.XYZ(), 1e-4) {
			t.Errorf("inv(proj(%v)) = %v, want %v", p, got, p.XYZ())
		}
	}
}

func TestPerspectiveInfinite_DepthRange(t *testing.T) {
	proj := PerspectiveInfinite(1.0, 1.0, 0.1)

	// Reversed-Z: depth 1 at the near plane, approaching 0 at infinity.
	nearClip := proj.MulVec4(V4(0, 0, 0.1, 1))
	if d := nearClip.Z / nearClip.W; math32.Abs(d-1) > 1e-5 {
		t.Errorf("depth at near plane = %v, want 1", d)
	}
	farClip := proj.MulVec4(V4(0, 0, 1e6, 1))
	if d := farClip.Z / farClip.W; d > 1e-3 {
		t.Errorf("depth at distance = %v, want near 0", d)
	}
}

func TestMat4_Transpose(t *testing.T) {
	m := Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	mt := m.Transpose()
	if mt[1] != 5 || mt[4] != 2 || mt[14] != 12 {
		t.Errorf("Transpose() = %v", mt)
	}
	if m.Transpose().Transpose() != m {
		t.Error("double transpose should be identity")
	}
}
