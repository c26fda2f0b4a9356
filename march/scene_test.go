package march

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/gogpu/bindless"
)

func TestUnion_TakesMinimum(t *testing.T) {
	f := Union(
		SphereField(bindless.V3(0, 0, 0), 1),
		SphereField(bindless.V3(10, 0, 0), 1),
	)

	// Near the first sphere the second is irrelevant.
	if d := f(bindless.V3(2, 0, 0)); math32.Abs(d-1) > 1e-6 {
		t.Errorf("union distance = %v, want 1", d)
	}
	// Midway, the closer sphere wins.
	if d := f(bindless.V3(7, 0, 0)); math32.Abs(d-2) > 1e-6 {
		t.Errorf("union distance = %v, want 2", d)
	}
}

func TestDemoScene_GroundPlane(t *testing.T) {
	f := DemoScene(0)

	// Far from any sphere cell center, the plane dominates. The plane
	// sits at y = -2; a point high above it but sphere-free measures
	// its height against the nearest repeated sphere or the plane.
	d := f(bindless.V3(5, 1000, 5))
	if d <= 0 {
		t.Errorf("distance far above the scene = %v, want positive", d)
	}

	// Below the plane is inside.
	if d := f(bindless.V3(5, -1000, 5)); d >= 0 {
		t.Errorf("distance far below the plane = %v, want negative", d)
	}
}

func TestDemoScene_TilingRepeats(t *testing.T) {
	f := DemoScene(1.5)

	p := bindless.V3(1.3, 0.4, -0.7)
	shifted := p.Add(bindless.V3(sceneCellSize, 0, sceneCellSize))

	// Away from the plane both points see the same folded sphere group.
	dp := f(p)
	ds := f(shifted)
	if math32.Abs(dp-ds) > 1e-4 {
		t.Errorf("field not periodic: %v vs %v", dp, ds)
	}
}

func TestDemoScene_Animates(t *testing.T) {
	p := bindless.V3(2, 0, 0)
	if d0, d1 := DemoScene(0)(p), DemoScene(1)(p); d0 == d1 {
		t.Error("sphere positions did not move over time")
	}
}
