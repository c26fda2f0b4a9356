// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/bindless"
	"github.com/gogpu/bindless/primitive"
)

// magenta is the opaque diagnostic color for unknown primitive types:
// a visible "this should never happen", never a silent failure.
var magenta = bindless.V4(1, 0, 1, 1)

// Composite shades one fragment. It redecodes the forwarded wire index
// from scratch; the index bits are the single source of truth shared
// with the vertex stage.
//
// The returned color is premultiplied RGBA.
func Composite(tables *bindless.DescriptorTable, opts primitive.Options, idx primitive.Index, uv bindless.Vec2) bindless.Vec4 {
	buffer := tables.Buffer(opts.VerticesDescriptor, bindless.AccessUniform)

	switch idx.Type() {
	case primitive.TypeColor:
		rec, ok := primitive.ColorRectAt(buffer, opts.PrimitiveBytesOffset, idx.Primitive())
		if !ok {
			return magenta
		}
		return compositeColor(rec, uv)

	case primitive.TypeTextured:
		rec, ok := primitive.TexturedRectAt(buffer, opts.PrimitiveBytesOffset, idx.Primitive())
		if !ok {
			return magenta
		}
		return compositeTextured(tables, opts, rec, uv)

	default:
		return magenta
	}
}

// compositeColor shades a flat rect with rounded-box edge antialiasing.
// The signed distance is evaluated in the rect's own pixel space so one
// distance unit is one pixel of edge transition.
func compositeColor(rec primitive.ColorRect, uv bindless.Vec2) bindless.Vec4 {
	half := rec.Rect.Size.Mul(0.5)
	p := uv.Sub(bindless.V2(0.5, 0.5)).MulV(rec.Rect.Size)
	sd := bindless.SDRoundedBox2(p, half, rec.BorderRadius)

	coverage := bindless.Saturate(0.5 - sd)
	return rec.Color.Unpack().Mul(coverage)
}

// compositeTextured shades a textured rect. A record whose descriptor
// matches the frame's glyph atlas is composited as an alpha mask tinted
// with the record's base color; anything else samples the referenced
// texture through a non-uniform descriptor lookup, since the index
// varies per fragment within one draw.
func compositeTextured(tables *bindless.DescriptorTable, opts primitive.Options, rec primitive.TexturedRect, uv bindless.Vec2) bindless.Vec4 {
	if rec.TextureDescriptor == opts.GlyphAtlasDescriptor {
		atlas := tables.Texture(rec.TextureDescriptor, bindless.AccessUniform)
		if atlas == nil {
			return magenta
		}
		// Output alpha is the mask itself; the record's base color only
		// tints, its alpha channel does not modulate coverage.
		mask := atlas.Sample(uv).X
		base := rec.Color.Unpack()
		return bindless.V4(base.X*mask, base.Y*mask, base.Z*mask, mask)
	}

	tex := tables.Texture(rec.TextureDescriptor, bindless.AccessNonUniform)
	if tex == nil {
		return magenta
	}
	c := tex.Sample(uv)
	return bindless.V4(c.X*c.W, c.Y*c.W, c.Z*c.W, c.W)
}

// IsInRect reports whether p lies within the rect, edges inclusive.
// Kept as a shared predicate for clip-rect compositing.
func IsInRect(p bindless.Vec2, r primitive.Rect) bool {
	return r.Contains(p)
}
