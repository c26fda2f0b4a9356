package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func testFace(t *testing.T, size float32) *Face {
	t.Helper()
	face, err := NewFace(goregular.TTF, size)
	if err != nil {
		t.Fatalf("NewFace: %v", err)
	}
	return face
}

func TestNewFace(t *testing.T) {
	face := testFace(t, 16)
	if face.Size() != 16 {
		t.Errorf("Size() = %v, want 16", face.Size())
	}

	m, err := face.Metrics()
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	if m.Ascent <= 0 || m.Descent <= 0 || m.LineHeight < m.Ascent+m.Descent {
		t.Errorf("implausible metrics: %+v", m)
	}
}

func TestNewFace_Invalid(t *testing.T) {
	if _, err := NewFace([]byte("not a font"), 16); err == nil {
		t.Error("NewFace on garbage data succeeded")
	}
	if _, err := NewFace(goregular.TTF, 0); err == nil {
		t.Error("NewFace with size 0 succeeded")
	}
}

func TestShaper_Shape(t *testing.T) {
	face := testFace(t, 16)
	shaper := NewShaper()

	run := shaper.Shape(face, "Hello")
	if len(run.Glyphs) != 5 {
		t.Fatalf("glyph count = %d, want 5", len(run.Glyphs))
	}
	if run.Width <= 0 {
		t.Errorf("run width = %v, want positive", run.Width)
	}
	for i, g := range run.Glyphs {
		if g.XAdvance <= 0 {
			t.Errorf("glyph %d advance = %v, want positive", i, g.XAdvance)
		}
	}
}

func TestShaper_ShapeEmpty(t *testing.T) {
	shaper := NewShaper()
	if run := shaper.Shape(testFace(t, 16), ""); len(run.Glyphs) != 0 || run.Width != 0 {
		t.Errorf("empty shape = %+v, want zero run", run)
	}
	if run := shaper.Shape(nil, "x"); len(run.Glyphs) != 0 {
		t.Errorf("nil face shape = %+v, want zero run", run)
	}
}

func TestShaper_KerningShortensRun(t *testing.T) {
	face := testFace(t, 32)
	shaper := NewShaper()

	// "AV" kerns tighter than the two glyphs side by side.
	av := shaper.Shape(face, "AV").Width
	a := shaper.Shape(face, "A").Width
	v := shaper.Shape(face, "V").Width
	if av >= a+v {
		t.Errorf("kerned width %v not below %v", av, a+v)
	}
}

func TestShaper_DistinctFaceIDs(t *testing.T) {
	f1 := testFace(t, 16)
	f2 := testFace(t, 24)
	if f1.id == f2.id {
		t.Error("two faces share an ID")
	}
}
