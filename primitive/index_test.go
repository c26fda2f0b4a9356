package primitive

import (
	"testing"

	"github.com/gogpu/bindless"
)

func TestIndex_RoundTrip(t *testing.T) {
	prims := []uint32{0, 1, 255, 4096, 1 << 20, MaxPrimitiveIndex}
	types := []Type{TypeColor, TypeTextured, TypeClip, TypeSDFCircle, Type(63)}

	for _, typ := range types {
		for _, prim := range prims {
			for corner := uint32(0); corner < 4; corner++ {
				idx := MakeIndex(typ, prim, corner)
				if idx.Type() != typ || idx.Primitive() != prim || idx.Corner() != corner {
					t.Fatalf("MakeIndex(%v, %d, %d) decoded to (%v, %d, %d)",
						typ, prim, corner, idx.Type(), idx.Primitive(), idx.Corner())
				}
			}
		}
	}
}

func TestIndex_FieldsDoNotOverlap(t *testing.T) {
	// Overflowing one field must never leak into its neighbors.
	idx := MakeIndex(TypeTextured, MaxPrimitiveIndex+1, 0)
	if idx.Primitive() != 0 {
		t.Errorf("overflowed primitive = %d, want 0", idx.Primitive())
	}
	if idx.Type() != TypeTextured {
		t.Errorf("type corrupted by primitive overflow: %v", idx.Type())
	}

	idx = MakeIndex(TypeColor, 0, 7)
	if idx.Corner() != 3 {
		t.Errorf("corner = %d, want masked to 3", idx.Corner())
	}
}

func TestType_Valid(t *testing.T) {
	for typ := Type(0); typ < 64; typ++ {
		want := typ == TypeColor || typ == TypeTextured
		if got := typ.Valid(); got != want {
			t.Errorf("Type(%d).Valid() = %v, want %v", typ, got, want)
		}
	}
}

func TestQuadCorners_CoverRect(t *testing.T) {
	// The 6-vertex sequence must visit all 4 corners, sharing the 0-2
	// diagonal between the two triangles.
	seen := map[uint32]int{}
	for _, c := range QuadCorners {
		seen[c]++
	}
	if len(seen) != 4 {
		t.Fatalf("corner sequence covers %d distinct corners, want 4", len(seen))
	}
	if seen[0] != 2 || seen[2] != 2 {
		t.Errorf("diagonal corners 0 and 2 seen (%d, %d) times, want twice each", seen[0], seen[2])
	}
}

func TestCornerSchema(t *testing.T) {
	size := bindless.V2(40, 20)

	tests := []struct {
		corner uint32
		offset bindless.Vec2
		uv     bindless.Vec2
	}{
		{0, bindless.V2(0, 20), bindless.V2(0, 1)},
		{1, bindless.V2(0, 0), bindless.V2(0, 0)},
		{2, bindless.V2(40, 0), bindless.V2(1, 0)},
		{3, bindless.V2(40, 20), bindless.V2(1, 1)},
	}

	for _, tt := range tests {
		if got := CornerOffset(tt.corner, size); !got.Approx(tt.offset, 0) {
			t.Errorf("CornerOffset(%d) = %v, want %v", tt.corner, got, tt.offset)
		}
		if got := CornerUV(tt.corner); !got.Approx(tt.uv, 0) {
			t.Errorf("CornerUV(%d) = %v, want %v", tt.corner, got, tt.uv)
		}
	}
}
