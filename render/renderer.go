// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/bindless"
	"github.com/gogpu/bindless/primitive"
)

// Draw rasterizes a packed index stream into target, running the vertex
// and fragment stages per quad exactly as the GPU pipeline would: six
// indices per quad, vertex pulling from the bindless buffer, per-pixel
// compositing, premultiplied source-over blending.
//
// Quads that resolve to the invalid sentinel cover no pixels. A trailing
// partial quad is ignored.
func Draw(target *bindless.StorageImage, tables *bindless.DescriptorTable, opts primitive.Options, indices []primitive.Index) {
	width, height := target.Extent()

	for base := 0; base+6 <= len(indices); base += 6 {
		drawQuad(target, tables, opts, indices[base:base+6], width, height)
	}
}

func drawQuad(target *bindless.StorageImage, tables *bindless.DescriptorTable, opts primitive.Options, quad []primitive.Index, width, height uint32) {
	// Resolve all six vertices; the rasterizer drops the quad when any
	// carries the NaN sentinel.
	var topLeft, bottomRight VertexOut
	for _, idx := range quad {
		v := ResolveVertex(tables, opts, idx)
		if !v.Valid() {
			return
		}
		switch idx.Corner() {
		case 1:
			topLeft = v
		case 3:
			bottomRight = v
		}
	}

	// Map NDC back to pixel space. The quad is axis aligned, so the two
	// diagonal corners bound it and UV interpolates linearly between them.
	toPixel := func(v bindless.Vec4) bindless.Vec2 {
		return bindless.V2(
			(v.X+1)*0.5*float32(width),
			(v.Y+1)*0.5*float32(height))
	}
	minPos := toPixel(topLeft.Position)
	maxPos := toPixel(bottomRight.Position)
	if maxPos.X <= minPos.X || maxPos.Y <= minPos.Y {
		return
	}

	x0 := int(math32.Floor(math32.Max(minPos.X, 0)))
	y0 := int(math32.Floor(math32.Max(minPos.Y, 0)))
	x1 := int(math32.Ceil(math32.Min(maxPos.X, float32(width))))
	y1 := int(math32.Ceil(math32.Min(maxPos.Y, float32(height))))

	span := maxPos.Sub(minPos)
	uvSpan := bottomRight.UV.Sub(topLeft.UV)
	idx := quad[0]

	for py := y0; py < y1; py++ {
		cy := float32(py) + 0.5
		if cy < minPos.Y || cy >= maxPos.Y {
			continue
		}
		for px := x0; px < x1; px++ {
			cx := float32(px) + 0.5
			if cx < minPos.X || cx >= maxPos.X {
				continue
			}
			uv := bindless.V2(
				topLeft.UV.X+(cx-minPos.X)/span.X*uvSpan.X,
				topLeft.UV.Y+(cy-minPos.Y)/span.Y*uvSpan.Y)

			src := Composite(tables, opts, idx, uv)
			blendOver(target, uint32(px), uint32(py), src)
		}
	}
}

// blendOver applies premultiplied source-over: dst = src + dst*(1-src.a).
func blendOver(target *bindless.StorageImage, x, y uint32, src bindless.Vec4) {
	if src.W <= 0 && src.X == 0 && src.Y == 0 && src.Z == 0 {
		return
	}
	dst := target.Load(x, y)
	inv := 1 - src.W
	target.Store(x, y, bindless.V4(
		src.X+dst.X*inv,
		src.Y+dst.Y*inv,
		src.Z+dst.Z*inv,
		src.W+dst.W*inv))
}
