package primitive

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/bindless"
)

// SizeofOptions is the byte size of the serialized Options block:
// 7 consecutive 32-bit fields.
const SizeofOptions = 28

// Options is the per-draw uniform block consumed by both shader stages.
//
// This struct must match the Options struct in the WGSL shaders: scale and
// translation as vec2<f32> followed by three u32 fields, no padding.
type Options struct {
	// Scale and Translation map rect-space positions to normalized
	// device coordinates: ndc = pos*Scale + Translation.
	Scale       bindless.Vec2
	Translation bindless.Vec2

	// VerticesDescriptor names the bindless buffer holding this draw's
	// record sub-array.
	VerticesDescriptor uint32

	// PrimitiveBytesOffset is the byte offset of the sub-array within
	// that buffer. Must be a multiple of the record size.
	PrimitiveBytesOffset uint32

	// GlyphAtlasDescriptor names the glyph atlas texture. A textured
	// rect whose descriptor equals this value is composited as an alpha
	// mask instead of sampled directly.
	GlyphAtlasDescriptor uint32
}

// ScreenOptions builds an Options block that maps pixel coordinates in a
// width-by-height viewport onto the full NDC range: (0,0) to (-1,-1) and
// (w,h) to (1,1).
func ScreenOptions(width, height uint32, verticesDescriptor, bytesOffset, atlasDescriptor uint32) Options {
	return Options{
		Scale:                bindless.V2(2/float32(width), 2/float32(height)),
		Translation:          bindless.V2(-1, -1),
		VerticesDescriptor:   verticesDescriptor,
		PrimitiveBytesOffset: bytesOffset,
		GlyphAtlasDescriptor: atlasDescriptor,
	}
}

// Marshal serializes the block in the shader's little-endian layout.
func (o Options) Marshal() []byte {
	b := make([]byte, SizeofOptions)
	le := binary.LittleEndian
	le.PutUint32(b[0:], math.Float32bits(o.Scale.X))
	le.PutUint32(b[4:], math.Float32bits(o.Scale.Y))
	le.PutUint32(b[8:], math.Float32bits(o.Translation.X))
	le.PutUint32(b[12:], math.Float32bits(o.Translation.Y))
	le.PutUint32(b[16:], o.VerticesDescriptor)
	le.PutUint32(b[20:], o.PrimitiveBytesOffset)
	le.PutUint32(b[24:], o.GlyphAtlasDescriptor)
	return b
}

// UnmarshalOptions decodes a serialized Options block.
func UnmarshalOptions(b []byte) Options {
	le := binary.LittleEndian
	return Options{
		Scale:                bindless.V2(math.Float32frombits(le.Uint32(b[0:])), math.Float32frombits(le.Uint32(b[4:]))),
		Translation:          bindless.V2(math.Float32frombits(le.Uint32(b[8:])), math.Float32frombits(le.Uint32(b[12:]))),
		VerticesDescriptor:   le.Uint32(b[16:]),
		PrimitiveBytesOffset: le.Uint32(b[20:]),
		GlyphAtlasDescriptor: le.Uint32(b[24:]),
	}
}
