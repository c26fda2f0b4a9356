// Package march implements the SDF raymarching demo pass.
//
// A compute-style kernel sphere-traces a signed distance field per
// pixel: an orbiting camera built from analytic inverse matrices, a
// scene of repeated spheres over a ground plane, central-difference
// normals, penumbra soft shadows, and an ambient occlusion estimate.
// Debug visualizations (step count, cone footprint, position fraction)
// are selectable per pass alongside the shaded output.
//
// The pass runs on the CPU through render.Dispatch and on the GPU
// through backend/wgpu; both write the same storage-image target.
package march
