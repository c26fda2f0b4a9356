// Package primitive defines the wire format shared between the host and the
// rect pipeline shaders.
//
// Every vertex a draw emits is a single packed 32-bit index. The shader pulls
// the actual geometry from a bindless storage buffer, so no CPU-side vertex
// or index buffers exist: the index alone names a quad corner, a primitive
// type, and a record slot within the draw's sub-array.
//
// # Wire format
//
// The 32-bit index is packed as:
//
//	bits 31:30  corner           quad corner selector, 0..3
//	bits 29:24  primitive type   0 = color, 1 = textured
//	bits 23:0   primitive index  record slot after the draw's byte offset
//
// Records are fixed-size little-endian structs (ColorRect 32 bytes,
// TexturedRect 48 bytes) addressed by
//
//	primitive_bytes_offset/sizeof(record) + primitive_index
//
// which lets one physical buffer region hold many logical per-draw
// sub-arrays.
//
// # Building draws
//
// A Builder accumulates records and packed indices for a frame:
//
//	var b primitive.Builder
//	b.DrawColorRect(primitive.ColorRect{
//		Rect:  primitive.Rect{Pos: bindless.V2(10, 10), Size: bindless.V2(80, 24)},
//		Color: bindless.ColorRed,
//	})
//	records, indices, draws := b.Records(), b.Indices(), b.Draws()
//
// The records go into a bindless buffer, the indices into the draw call,
// and each Draw supplies the byte offset for its Options block.
package primitive
