package bindless

import "github.com/gogpu/gputypes"

// Texture is a sampled 2D texture in the bindless texture table.
// Supported formats: RGBA8Unorm (4 bytes per pixel) and R8Unorm
// (1 byte per pixel, used by the glyph atlas).
type Texture struct {
	format gputypes.TextureFormat
	width  uint32
	height uint32
	stride int // bytes per pixel
	pix    []uint8
}

// NewTexture creates a texture with the given extent and format.
func NewTexture(width, height uint32, format gputypes.TextureFormat) *Texture {
	stride := 4
	if format == gputypes.TextureFormatR8Unorm {
		stride = 1
	}
	return &Texture{
		format: format,
		width:  width,
		height: height,
		stride: stride,
		pix:    make([]uint8, int(width)*int(height)*stride),
	}
}

// Format returns the texture's pixel format.
func (t *Texture) Format() gputypes.TextureFormat {
	return t.format
}

// Extent returns the texture size in pixels.
func (t *Texture) Extent() (width, height uint32) {
	return t.width, t.height
}

// Upload copies a tightly packed pixel region into the texture.
// data must hold w*h pixels in the texture's format. Rows and columns
// that fall outside the texture are clipped.
func (t *Texture) Upload(x, y, w, h uint32, data []uint8) {
	if x >= t.width {
		return
	}
	for row := uint32(0); row < h; row++ {
		dy := y + row
		if dy >= t.height {
			break
		}
		cols := w
		if x+cols > t.width {
			cols = t.width - x
		}
		src := data[int(row)*int(w)*t.stride:]
		dst := t.pix[(int(dy)*int(t.width)+int(x))*t.stride:]
		copy(dst[:int(cols)*t.stride], src[:int(cols)*t.stride])
	}
}

// At returns the texel at integer coordinates, normalized. Coordinates
// are clamped to the texture edge. Single-channel textures return the
// red channel with the remaining channels zero and alpha 1, matching
// how a GPU samples an R8 texture.
func (t *Texture) At(x, y uint32) Vec4 {
	if x >= t.width {
		x = t.width - 1
	}
	if y >= t.height {
		y = t.height - 1
	}
	i := (int(y)*int(t.width) + int(x)) * t.stride
	if t.stride == 1 {
		return Vec4{X: float32(t.pix[i]) / 255, W: 1}
	}
	return Vec4{
		X: float32(t.pix[i+0]) / 255,
		Y: float32(t.pix[i+1]) / 255,
		Z: float32(t.pix[i+2]) / 255,
		W: float32(t.pix[i+3]) / 255,
	}
}

// Sample samples the texture at normalized UV coordinates with
// nearest-neighbor filtering and clamp-to-edge addressing.
func (t *Texture) Sample(uv Vec2) Vec4 {
	x := int32(uv.X * float32(t.width))
	y := int32(uv.Y * float32(t.height))
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return t.At(uint32(x), uint32(y))
}
