package primitive

import (
	"testing"

	"github.com/gogpu/bindless"
)

func TestScreenOptions_Mapping(t *testing.T) {
	o := ScreenOptions(800, 600, 2, 128, 4)

	// Pixel (0,0) maps to NDC (-1,-1) and (w,h) to (1,1).
	origin := bindless.Vec2{}.MulV(o.Scale).Add(o.Translation)
	if !origin.Approx(bindless.V2(-1, -1), 1e-6) {
		t.Errorf("origin maps to %v, want (-1,-1)", origin)
	}
	corner := bindless.V2(800, 600).MulV(o.Scale).Add(o.Translation)
	if !corner.Approx(bindless.V2(1, 1), 1e-6) {
		t.Errorf("far corner maps to %v, want (1,1)", corner)
	}
	center := bindless.V2(400, 300).MulV(o.Scale).Add(o.Translation)
	if !center.Approx(bindless.Vec2{}, 1e-6) {
		t.Errorf("center maps to %v, want origin", center)
	}
}

func TestOptions_MarshalRoundTrip(t *testing.T) {
	o := Options{
		Scale:                bindless.V2(0.0025, 1.0/300),
		Translation:          bindless.V2(-1, -1),
		VerticesDescriptor:   3,
		PrimitiveBytesOffset: 96,
		GlyphAtlasDescriptor: 11,
	}

	b := o.Marshal()
	if len(b) != SizeofOptions {
		t.Fatalf("marshaled size = %d, want %d", len(b), SizeofOptions)
	}
	if got := UnmarshalOptions(b); got != o {
		t.Errorf("round trip = %+v, want %+v", got, o)
	}
}
