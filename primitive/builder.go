package primitive

import (
	"github.com/gogpu/bindless"
)

// Draw is one homogeneous run of primitives sharing a record sub-array.
// BytesOffset goes into the draw's Options block; the index range selects
// the slice of Indices() belonging to this run.
type Draw struct {
	Type        Type
	BytesOffset uint32
	IndexStart  int
	IndexCount  int
}

// Builder accumulates primitive records and packed wire indices for one
// frame. Consecutive primitives of the same type share a Draw; a type
// switch starts a new sub-array aligned to the new record size.
//
// The zero value is ready to use. Builder is not safe for concurrent use.
type Builder struct {
	records []byte
	indices []Index
	draws   []Draw
}

// beginPrimitive ensures the current draw matches t and returns the
// primitive slot for the next record. The sub-array start is aligned up to
// sizeof so that bytes_offset/sizeof stays integral.
func (b *Builder) beginPrimitive(t Type, sizeof int) uint32 {
	n := len(b.draws)
	if n == 0 || b.draws[n-1].Type != t {
		off := (len(b.records) + sizeof - 1) / sizeof * sizeof
		if off > len(b.records) {
			b.records = append(b.records, make([]byte, off-len(b.records))...)
		}
		b.draws = append(b.draws, Draw{
			Type:        t,
			BytesOffset: uint32(off),
			IndexStart:  len(b.indices),
		})
		n++
	}
	d := &b.draws[n-1]
	return uint32((len(b.records) - int(d.BytesOffset)) / sizeof)
}

func (b *Builder) pushQuad(t Type, slot uint32) {
	for _, c := range QuadCorners {
		b.indices = append(b.indices, MakeIndex(t, slot, c))
	}
	b.draws[len(b.draws)-1].IndexCount += len(QuadCorners)
}

// DrawColorRect appends one flat-colored rect.
func (b *Builder) DrawColorRect(r ColorRect) {
	slot := b.beginPrimitive(TypeColor, SizeofColorRect)
	buf := make([]byte, SizeofColorRect)
	PutColorRect(buf, r)
	b.records = append(b.records, buf...)
	b.pushQuad(TypeColor, slot)
}

// DrawColorRects appends a batch of flat-colored rects.
func (b *Builder) DrawColorRects(rs []ColorRect) {
	for _, r := range rs {
		b.DrawColorRect(r)
	}
}

// DrawTexturedRect appends one textured rect.
func (b *Builder) DrawTexturedRect(r TexturedRect) {
	slot := b.beginPrimitive(TypeTextured, SizeofTexturedRect)
	buf := make([]byte, SizeofTexturedRect)
	PutTexturedRect(buf, r)
	b.records = append(b.records, buf...)
	b.pushQuad(TypeTextured, slot)
}

// DrawTexturedRects appends a batch of textured rects.
func (b *Builder) DrawTexturedRects(rs []TexturedRect) {
	for _, r := range rs {
		b.DrawTexturedRect(r)
	}
}

// GlyphQuad positions one glyph: a screen rect and its atlas UV sub-rect.
type GlyphQuad struct {
	Dst Rect
	Src Rect
}

// DrawGlyphs appends textured rects for a shaped glyph run. All quads
// reference the glyph atlas descriptor and carry the run's color; the
// compositor reads the atlas red channel as an alpha mask.
func (b *Builder) DrawGlyphs(atlasDescriptor uint32, color bindless.ColorU32, quads []GlyphQuad) {
	for _, q := range quads {
		b.DrawTexturedRect(TexturedRect{
			Rect:              q.Dst,
			UV:                q.Src,
			TextureDescriptor: atlasDescriptor,
			Color:             color,
		})
	}
}

// Records returns the accumulated record bytes for upload into a bindless
// buffer. The slice aliases the builder's storage and is invalidated by
// further draws or Reset.
func (b *Builder) Records() []byte { return b.records }

// Indices returns the accumulated packed wire indices.
func (b *Builder) Indices() []Index { return b.indices }

// Draws returns the homogeneous runs built so far.
func (b *Builder) Draws() []Draw { return b.draws }

// Reset clears the builder for the next frame, keeping the allocations.
func (b *Builder) Reset() {
	b.records = b.records[:0]
	b.indices = b.indices[:0]
	b.draws = b.draws[:0]
}
