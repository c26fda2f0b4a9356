package march

import "testing"

func TestTurbo_Range(t *testing.T) {
	for _, v := range []float32{-1, 0, 0.25, 0.5, 0.75, 1, 2} {
		c := Turbo(v)
		for _, ch := range []float32{c.X, c.Y, c.Z} {
			if ch < 0 || ch > 1 {
				t.Errorf("Turbo(%v) = %v out of range", v, c)
			}
		}
	}
}

func TestTurbo_Endpoints(t *testing.T) {
	// Turbo runs blue to red.
	lo := Turbo(0)
	if lo.Z <= lo.X {
		t.Errorf("Turbo(0) = %v, want blue dominant", lo)
	}
	hi := Turbo(1)
	if hi.X <= hi.Z {
		t.Errorf("Turbo(1) = %v, want red dominant", hi)
	}
	// Clamped inputs pin to the endpoints.
	if Turbo(-5) != lo || Turbo(5) != hi {
		t.Error("out-of-range inputs not clamped to the endpoints")
	}
}

func TestDebugMode_String(t *testing.T) {
	modes := map[DebugMode]string{
		DebugSteps:     "steps",
		DebugFootprint: "footprint",
		DebugFraction:  "fraction",
		DebugShaded:    "shaded",
		DebugMode(99):  "unknown",
	}
	for m, want := range modes {
		if got := m.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(m), got, want)
		}
	}
}
