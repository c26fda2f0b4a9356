// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/bindless"
	"github.com/gogpu/bindless/primitive"
)

// VertexOut is the vertex stage's output: a clip-space position, the
// interpolated UV seed for this corner, and the undecoded wire index
// forwarded to the compositor.
type VertexOut struct {
	Position bindless.Vec4
	UV       bindless.Vec2
	Index    primitive.Index
}

// Valid reports whether the vertex resolved to real geometry. Invalid
// vertices carry the NaN position sentinel and degenerate to nothing in
// the rasterizer.
func (v VertexOut) Valid() bool {
	return !v.Position.IsNaN()
}

// invalidVertex returns the NaN clip-position sentinel. The draw keeps
// going; the quad just covers no pixels.
func invalidVertex(idx primitive.Index) VertexOut {
	nan := math32.NaN()
	return VertexOut{
		Position: bindless.V4(nan, nan, nan, nan),
		Index:    idx,
	}
}

// ResolveVertex expands one packed wire index into quad geometry by
// pulling the primitive record from the bindless buffer named in the
// options block.
//
// Unknown primitive types and out-of-range record slots yield the
// invalid sentinel, never an error: a corrupt index must not take down
// the frame.
func ResolveVertex(tables *bindless.DescriptorTable, opts primitive.Options, idx primitive.Index) VertexOut {
	buffer := tables.Buffer(opts.VerticesDescriptor, bindless.AccessUniform)

	var pos, uv bindless.Vec2
	corner := idx.Corner()

	switch idx.Type() {
	case primitive.TypeColor:
		rec, ok := primitive.ColorRectAt(buffer, opts.PrimitiveBytesOffset, idx.Primitive())
		if !ok {
			return invalidVertex(idx)
		}
		pos = rec.Rect.Pos.Floor().Add(primitive.CornerOffset(corner, rec.Rect.Size))
		uv = primitive.CornerUV(corner)

	case primitive.TypeTextured:
		rec, ok := primitive.TexturedRectAt(buffer, opts.PrimitiveBytesOffset, idx.Primitive())
		if !ok {
			return invalidVertex(idx)
		}
		pos = rec.Rect.Pos.Floor().Add(primitive.CornerOffset(corner, rec.Rect.Size))
		uv = rec.UV.Pos.Add(primitive.CornerUV(corner).MulV(rec.UV.Size))

	default:
		return invalidVertex(idx)
	}

	ndc := pos.MulV(opts.Scale).Add(opts.Translation)
	return VertexOut{
		Position: bindless.V4(ndc.X, ndc.Y, 0, 1),
		UV:       uv,
		Index:    idx,
	}
}
