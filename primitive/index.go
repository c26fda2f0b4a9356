package primitive

import (
	"fmt"

	"github.com/gogpu/bindless"
)

// Bit layout of the packed 32-bit wire index. The vertex and fragment
// stages both decode from these constants so the two sites cannot drift.
const (
	cornerShift = 30
	typeShift   = 24
	typeMask    = 0x3F

	// MaxPrimitiveIndex is the largest record slot addressable by the
	// 24-bit primitive index field.
	MaxPrimitiveIndex = 0x00FFFFFF
)

// Type identifies the record kind a wire index refers to.
type Type uint8

const (
	// TypeColor is a flat-colored rounded rect backed by a ColorRect record.
	TypeColor Type = 0

	// TypeTextured is a textured rect backed by a TexturedRect record.
	TypeTextured Type = 1

	// TypeClip is reserved for clip-rect records. Decoders treat it as
	// invalid until the record format lands.
	TypeClip Type = 2

	// TypeSDFCircle is reserved for analytic circle records.
	TypeSDFCircle Type = 0b100000
)

// Valid reports whether t is a type the pipeline can resolve.
// Reserved and out-of-range values decode to the invalid sentinel.
func (t Type) Valid() bool {
	return t == TypeColor || t == TypeTextured
}

func (t Type) String() string {
	switch t {
	case TypeColor:
		return "color"
	case TypeTextured:
		return "textured"
	case TypeClip:
		return "clip"
	case TypeSDFCircle:
		return "sdf-circle"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Index is one packed per-vertex wire index.
type Index uint32

// MakeIndex packs a (type, primitive slot, corner) triple into a wire index.
// prim must be at most MaxPrimitiveIndex and corner at most 3; higher bits
// are masked off.
func MakeIndex(t Type, prim uint32, corner uint32) Index {
	return Index((corner&0x3)<<cornerShift |
		uint32(t&typeMask)<<typeShift |
		prim&MaxPrimitiveIndex)
}

// Corner returns the quad corner selector, 0..3.
func (i Index) Corner() uint32 { return uint32(i) >> cornerShift }

// Type returns the primitive type field.
func (i Index) Type() Type { return Type(uint32(i) >> typeShift & typeMask) }

// Primitive returns the 24-bit record slot within the draw's sub-array.
func (i Index) Primitive() uint32 { return uint32(i) & MaxPrimitiveIndex }

func (i Index) String() string {
	return fmt.Sprintf("%s[%d]c%d", i.Type(), i.Primitive(), i.Corner())
}

// QuadCorners is the corner sequence of one quad as two triangles.
// Six vertices cover the four corners with 0 and 2 shared along the
// diagonal.
var QuadCorners = [6]uint32{0, 1, 2, 0, 2, 3}

// CornerOffset returns the position offset of a corner within a rect of
// the given size. Corner 1 is the top-left origin; y grows downward.
//
//	1 ---- 2
//	|      |
//	0 ---- 3
func CornerOffset(corner uint32, size bindless.Vec2) bindless.Vec2 {
	switch corner & 0x3 {
	case 0:
		return bindless.V2(0, size.Y)
	case 2:
		return bindless.V2(size.X, 0)
	case 3:
		return size
	default: // corner 1, the origin
		return bindless.Vec2{}
	}
}

// CornerUV returns the unit UV of a corner under the same convention as
// CornerOffset: v grows downward together with y.
func CornerUV(corner uint32) bindless.Vec2 {
	switch corner & 0x3 {
	case 0:
		return bindless.V2(0, 1)
	case 2:
		return bindless.V2(1, 0)
	case 3:
		return bindless.V2(1, 1)
	default:
		return bindless.Vec2{}
	}
}
