package bindless

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestSDRoundedBox2_ZeroRadiusIsBox(t *testing.T) {
	// With r=0 the rounded box must reduce to the exact sharp box
	// distance for all sampled points.
	b := V2(3, 2)
	for _, p := range []Vec2{
		V2(0, 0), V2(3, 2), V2(4, 2), V2(3, 3), V2(-5, -5),
		V2(1.5, 0), V2(0, 1.5), V2(2.99, 1.99), V2(10, 0.5),
	} {
		rounded := SDRoundedBox2(p, b, 0)
		sharp := SDBox2(p, b)
		if math32.Abs(rounded-sharp) > 1e-6 {
			t.Errorf("at %v: rounded=%v sharp=%v", p, rounded, sharp)
		}
	}
}

func TestSDRoundedBox2_Signs(t *testing.T) {
	b := V2(2, 2)
	tests := []struct {
		name string
		p    Vec2
		r    float32
		sign int // -1 inside, 0 surface, +1 outside
	}{
		{"center inside", V2(0, 0), 0.5, -1},
		{"edge", V2(2, 0), 0, 0},
		{"outside right", V2(3, 0), 0.5, 1},
		{"sharp corner rounded off", V2(2, 2), 1, 1},
		{"deep outside diagonal", V2(5, 5), 0.25, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := SDRoundedBox2(tt.p, b, tt.r)
			switch {
			case tt.sign < 0 && d >= 0:
				t.Errorf("distance %v, want negative", d)
			case tt.sign > 0 && d <= 0:
				t.Errorf("distance %v, want positive", d)
			case tt.sign == 0 && math32.Abs(d) > 1e-6:
				t.Errorf("distance %v, want 0", d)
			}
		})
	}
}

func TestSDSphere(t *testing.T) {
	center := V3(1, 2, 3)
	if d := SDSphere(center, center, 2); math32.Abs(d+2) > 1e-6 {
		t.Errorf("distance at center = %v, want -2", d)
	}
	if d := SDSphere(V3(4, 2, 3), center, 2); math32.Abs(d-1) > 1e-6 {
		t.Errorf("distance outside = %v, want 1", d)
	}
}

func TestSDPlane(t *testing.T) {
	// Ground plane y=0 with upward normal.
	n := V3(0, 1, 0)
	if d := SDPlane(V3(0, 3, 0), n, 0); math32.Abs(d-3) > 1e-6 {
		t.Errorf("distance above plane = %v, want 3", d)
	}
	if d := SDPlane(V3(5, -1, 2), n, 0); math32.Abs(d+1) > 1e-6 {
		t.Errorf("distance below plane = %v, want -1", d)
	}
	// Offset plane y = -2.
	if d := SDPlane(V3(0, 0, 0), n, 2); math32.Abs(d-2) > 1e-6 {
		t.Errorf("distance to offset plane = %v, want 2", d)
	}
}

func TestRepeatPos(t *testing.T) {
	c := V3(4, 4, 4)

	// The fold is periodic: the same cell-relative position repeats
	// every cell size along each axis.
	p := V3(0.5, -1, 2.3)
	folded := RepeatPos(p, c)
	shifted := RepeatPos(p.Add(V3(4, -8, 12)), c)
	if !folded.Approx(shifted, 1e-5) {
		t.Errorf("fold not periodic: %v vs %v", folded, shifted)
	}

	// Folded positions stay inside the centered cell.
	for _, p := range []Vec3{V3(0, 0, 0), V3(100.7, -33.3, 2), V3(-2, -2, -2)} {
		f := RepeatPos(p, c)
		if math32.Abs(f.X) > 2 || math32.Abs(f.Y) > 2 || math32.Abs(f.Z) > 2 {
			t.Errorf("RepeatPos(%v) = %v escapes the cell", p, f)
		}
	}
}
