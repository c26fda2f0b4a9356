// Package wgpu runs the bindless pipelines on the GPU through
// gogpu/wgpu.
//
// Both passes are expressed as WGSL compute shaders: the rect pass pulls
// quad geometry from the packed index stream and composites per pixel,
// and the demo pass sphere-traces the distance field. Shaders are
// compiled to SPIR-V with gogpu/naga at pipeline creation.
//
// Full GPU dispatch requires buffer binding extensions in the HAL;
// until those land, Render validates and uploads the GPU data layout,
// then executes the same algorithm on the CPU through the render and
// march packages. The pipelines, layouts, and shader modules are real,
// so the dispatch swap is contained to one function per pass.
package wgpu
