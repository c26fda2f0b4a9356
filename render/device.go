// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host application owns the device and passes it in; this package
// and backend/wgpu never create one. That keeps GPU resources shared
// between the renderer and whatever windowing or compute stack the host
// already runs.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider so any
// gpucontext-compatible host plugs in directly.
type DeviceHandle = gpucontext.DeviceProvider

// TextureDescriptor describes parameters for creating a texture that
// backs a descriptor-table slot.
type TextureDescriptor struct {
	// Label is an optional debug label.
	Label string

	// Width and Height are the texture extent in pixels.
	Width  uint32
	Height uint32

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// Usage specifies how the texture will be used.
	Usage TextureUsage
}

// TextureUsage specifies how a texture can be used. Flags combine with
// bitwise OR.
type TextureUsage uint32

const (
	// TextureUsageCopySrc allows the texture to be used as a copy source.
	TextureUsageCopySrc TextureUsage = 1 << iota

	// TextureUsageCopyDst allows the texture to be used as a copy destination.
	TextureUsageCopyDst

	// TextureUsageTextureBinding allows sampling the texture in shaders.
	TextureUsageTextureBinding

	// TextureUsageStorageBinding allows storage-image writes.
	TextureUsageStorageBinding

	// TextureUsageRenderAttachment allows rendering into the texture.
	TextureUsageRenderAttachment
)

// AtlasTextureDescriptor returns the descriptor for a glyph atlas
// texture: single channel, sampled by the compositor and updated by
// cache uploads.
func AtlasTextureDescriptor(size uint32) TextureDescriptor {
	return TextureDescriptor{
		Label:  "glyph-atlas",
		Width:  size,
		Height: size,
		Format: gputypes.TextureFormatR8Unorm,
		Usage:  TextureUsageTextureBinding | TextureUsageCopyDst,
	}
}

// FrameTextureDescriptor returns the descriptor for a compute-written
// frame output texture.
func FrameTextureDescriptor(width, height uint32, format gputypes.TextureFormat) TextureDescriptor {
	return TextureDescriptor{
		Label:  "frame-output",
		Width:  width,
		Height: height,
		Format: format,
		Usage:  TextureUsageStorageBinding | TextureUsageCopySrc,
	}
}
