// Package bindless provides a descriptor-indexed 2D primitive renderer
// for the GoGPU ecosystem.
//
// # Overview
//
// bindless draws UI rectangles (flat-colored and textured, including
// glyph-atlas text) using a bindless resource model: geometry, primitive
// attributes, and textures are referenced purely by integer indices into
// global descriptor tables instead of per-draw-call bindings. There are
// no CPU-side vertex or index buffers in the usual sense; the sole
// per-vertex input is a packed 32-bit primitive index that the vertex
// stage expands into quad corners by pulling records out of a bindless
// buffer.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/bindless"
//	    "github.com/gogpu/bindless/primitive"
//	    "github.com/gogpu/bindless/render"
//	)
//
//	tables := bindless.NewDescriptorTable()
//	target := bindless.NewStorageImage(512, 512, gputypes.TextureFormatRGBA8Unorm)
//
//	b := primitive.NewBuilder()
//	b.DrawColorRect(primitive.ColorRect{
//	    Rect:         primitive.Rect{Position: bindless.V2(64, 64), Size: bindless.V2(128, 96)},
//	    Color:        bindless.ColorFromF32(0.9, 0.3, 0.2, 1),
//	    BorderRadius: 8,
//	})
//
//	vertices := tables.RegisterBuffer(b.Vertices())
//	opts := primitive.ScreenOptions(512, 512, vertices, 0)
//	render.NewRenderer(tables).Draw(target, b.Indices(), opts)
//	target.SavePNG("out.png")
//
// # Architecture
//
// The library is organized into two independent pipelines over one
// substrate:
//   - Substrate: descriptor tables ([DescriptorTable]), storage images,
//     sampled textures, and shared shader math (vectors, matrices, SDFs)
//   - Core A: primitive/ (wire format, records, stream builder) and
//     render/ (vertex pulling and per-pixel compositing)
//   - Core B: march/ (SDF scene raymarcher driven through render's
//     compute dispatch)
//   - GPU path: backend/wgpu compiles WGSL versions of both pipelines
//     via gogpu/naga and builds pipelines on gogpu/wgpu
//
// The host application owns descriptor-table slot lifetimes, buffer
// uploads, and frame synchronization. The core only reads the tables;
// index validity is the host's responsibility.
package bindless
