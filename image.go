package bindless

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/gputypes"
)

// StorageImage is a read/write image backed by float storage, standing
// in for a GPU storage image. Each entry in the bindless image table is
// tagged with a fixed pixel format; the format decides the channel
// count and how pixels are quantized on export.
//
// Color channels hold premultiplied alpha.
type StorageImage struct {
	format   gputypes.TextureFormat
	width    uint32
	height   uint32
	channels int
	pix      []float32
}

// NewStorageImage creates a storage image with the given extent and
// format. Supported formats: RGBA8Unorm, RGBA16Float, RGBA32Float
// (4 channels) and R32Float (1 channel).
func NewStorageImage(width, height uint32, format gputypes.TextureFormat) *StorageImage {
	channels := 4
	if format == gputypes.TextureFormatR32Float {
		channels = 1
	}
	return &StorageImage{
		format:   format,
		width:    width,
		height:   height,
		channels: channels,
		pix:      make([]float32, int(width)*int(height)*channels),
	}
}

// Format returns the image's pixel format tag.
func (img *StorageImage) Format() gputypes.TextureFormat {
	return img.format
}

// Extent returns the image size in pixels.
func (img *StorageImage) Extent() (width, height uint32) {
	return img.width, img.height
}

// Store writes one pixel. Out-of-range coordinates are silently
// discarded, matching GPU storage-image write semantics.
func (img *StorageImage) Store(x, y uint32, c Vec4) {
	if x >= img.width || y >= img.height {
		return
	}
	i := (int(y)*int(img.width) + int(x)) * img.channels
	img.pix[i] = c.X
	if img.channels == 4 {
		img.pix[i+1] = c.Y
		img.pix[i+2] = c.Z
		img.pix[i+3] = c.W
	}
}

// Load reads one pixel. Out-of-range coordinates return zero.
// Single-channel formats return the red channel with alpha 1.
func (img *StorageImage) Load(x, y uint32) Vec4 {
	if x >= img.width || y >= img.height {
		return Vec4{}
	}
	i := (int(y)*int(img.width) + int(x)) * img.channels
	if img.channels == 1 {
		return Vec4{X: img.pix[i], W: 1}
	}
	return Vec4{X: img.pix[i], Y: img.pix[i+1], Z: img.pix[i+2], W: img.pix[i+3]}
}

// Clear fills the entire image with a color.
func (img *StorageImage) Clear(c Vec4) {
	for i := 0; i < len(img.pix); i += img.channels {
		img.pix[i] = c.X
		if img.channels == 4 {
			img.pix[i+1] = c.Y
			img.pix[i+2] = c.Z
			img.pix[i+3] = c.W
		}
	}
}

// ToImage converts the image to an image.RGBA (which is premultiplied,
// like the stored channels). Single-channel formats are expanded to
// opaque greyscale.
func (img *StorageImage) ToImage() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, int(img.width), int(img.height)))
	for y := uint32(0); y < img.height; y++ {
		for x := uint32(0); x < img.width; x++ {
			c := img.Load(x, y)
			i := out.PixOffset(int(x), int(y))
			if img.channels == 1 {
				v := uint8(Saturate(c.X)*255 + 0.5)
				out.Pix[i+0] = v
				out.Pix[i+1] = v
				out.Pix[i+2] = v
				out.Pix[i+3] = 255
				continue
			}
			out.Pix[i+0] = uint8(Saturate(c.X)*255 + 0.5)
			out.Pix[i+1] = uint8(Saturate(c.Y)*255 + 0.5)
			out.Pix[i+2] = uint8(Saturate(c.Z)*255 + 0.5)
			out.Pix[i+3] = uint8(Saturate(c.W)*255 + 0.5)
		}
	}
	return out
}

// EncodePNG writes the image as PNG.
func (img *StorageImage) EncodePNG(w io.Writer) error {
	return png.Encode(w, img.ToImage())
}

// SavePNG writes the image to a PNG file.
func (img *StorageImage) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bindless: failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := img.EncodePNG(f); err != nil {
		return fmt.Errorf("bindless: failed to encode %s: %w", path, err)
	}
	return nil
}
