// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render executes the rect pipeline on the CPU.
//
// It mirrors the two GPU shader stages as pure functions: ResolveVertex
// is the vertex-pulling quad expansion and Composite is the per-pixel
// compositor. Draw rasterizes a packed index stream through both, and
// Dispatch runs compute kernels over 16x16 workgroups for the
// raymarching pass.
//
// The same semantics run on the GPU through backend/wgpu; this package
// is both the portable fallback and the reference the shader tests
// compare against.
package render
