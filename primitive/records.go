package primitive

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/bindless"
)

// Record byte sizes. The shaders index storage buffers with
// bytes_offset/sizeof + primitive_index, so these must match the WGSL
// struct layouts exactly, padding included.
const (
	SizeofRect         = 16
	SizeofColorRect    = 32
	SizeofTexturedRect = 48
)

// Rect is a position/size pair, one 16-byte float4 on the wire.
// Pos is the top-left corner; Size components are non-negative.
type Rect struct {
	Pos  bindless.Vec2
	Size bindless.Vec2
}

// Contains reports whether p lies within the rect, edges inclusive.
func (r Rect) Contains(p bindless.Vec2) bool {
	return p.X >= r.Pos.X && p.X <= r.Pos.X+r.Size.X &&
		p.Y >= r.Pos.Y && p.Y <= r.Pos.Y+r.Size.Y
}

// ColorRect is a flat-colored rounded rect record.
//
// Wire layout, 32 bytes little-endian:
//
//	0   Rect      rect
//	16  u32       packed RGBA color
//	20  u32       clip rect index
//	24  f32       border radius
//	28  u32       padding
//
// The host writes the record array once per frame; the shader stages only
// read it.
type ColorRect struct {
	Rect         Rect
	Color        bindless.ColorU32
	ClipIndex    uint32
	BorderRadius float32
}

// TexturedRect is a textured rect record. UV is a sub-rectangle of the
// referenced texture in unit coordinates.
//
// Wire layout, 48 bytes little-endian:
//
//	0   Rect      screen rect
//	16  Rect      uv sub-rect
//	32  u32       texture descriptor index
//	36  u32       clip rect index
//	40  f32       border radius
//	44  u32       packed RGBA base color
type TexturedRect struct {
	Rect              Rect
	UV                Rect
	TextureDescriptor uint32
	ClipIndex         uint32
	BorderRadius      float32
	Color             bindless.ColorU32
}

func putRect(b []byte, r Rect) {
	le := binary.LittleEndian
	le.PutUint32(b[0:], math.Float32bits(r.Pos.X))
	le.PutUint32(b[4:], math.Float32bits(r.Pos.Y))
	le.PutUint32(b[8:], math.Float32bits(r.Size.X))
	le.PutUint32(b[12:], math.Float32bits(r.Size.Y))
}

func rectAt(b []byte) Rect {
	le := binary.LittleEndian
	return Rect{
		Pos:  bindless.V2(math.Float32frombits(le.Uint32(b[0:])), math.Float32frombits(le.Uint32(b[4:]))),
		Size: bindless.V2(math.Float32frombits(le.Uint32(b[8:])), math.Float32frombits(le.Uint32(b[12:]))),
	}
}

// PutColorRect serializes r into b, which must hold SizeofColorRect bytes.
func PutColorRect(b []byte, r ColorRect) {
	le := binary.LittleEndian
	putRect(b[0:], r.Rect)
	le.PutUint32(b[16:], uint32(r.Color))
	le.PutUint32(b[20:], r.ClipIndex)
	le.PutUint32(b[24:], math.Float32bits(r.BorderRadius))
	le.PutUint32(b[28:], 0)
}

// PutTexturedRect serializes r into b, which must hold SizeofTexturedRect
// bytes.
func PutTexturedRect(b []byte, r TexturedRect) {
	le := binary.LittleEndian
	putRect(b[0:], r.Rect)
	putRect(b[16:], r.UV)
	le.PutUint32(b[32:], r.TextureDescriptor)
	le.PutUint32(b[36:], r.ClipIndex)
	le.PutUint32(b[40:], math.Float32bits(r.BorderRadius))
	le.PutUint32(b[44:], uint32(r.Color))
}

// ColorRectAt resolves the record at bytesOffset/SizeofColorRect + index
// inside buf. The second result is false when the resolved slot is out of
// the buffer's range.
func ColorRectAt(buf []byte, bytesOffset, index uint32) (ColorRect, bool) {
	off := uint64(bytesOffset)/SizeofColorRect + uint64(index)
	off *= SizeofColorRect
	if off+SizeofColorRect > uint64(len(buf)) {
		return ColorRect{}, false
	}
	b := buf[off:]
	le := binary.LittleEndian
	return ColorRect{
		Rect:         rectAt(b),
		Color:        bindless.ColorU32(le.Uint32(b[16:])),
		ClipIndex:    le.Uint32(b[20:]),
		BorderRadius: math.Float32frombits(le.Uint32(b[24:])),
	}, true
}

// TexturedRectAt resolves the record at bytesOffset/SizeofTexturedRect +
// index inside buf.
func TexturedRectAt(buf []byte, bytesOffset, index uint32) (TexturedRect, bool) {
	off := uint64(bytesOffset)/SizeofTexturedRect + uint64(index)
	off *= SizeofTexturedRect
	if off+SizeofTexturedRect > uint64(len(buf)) {
		return TexturedRect{}, false
	}
	b := buf[off:]
	le := binary.LittleEndian
	return TexturedRect{
		Rect:              rectAt(b),
		UV:                rectAt(b[16:]),
		TextureDescriptor: le.Uint32(b[32:]),
		ClipIndex:         le.Uint32(b[36:]),
		BorderRadius:      math.Float32frombits(le.Uint32(b[40:])),
		Color:             bindless.ColorU32(le.Uint32(b[44:])),
	}, true
}
