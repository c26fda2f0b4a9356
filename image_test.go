package bindless

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestStorageImage_StoreLoad(t *testing.T) {
	img := NewStorageImage(4, 3, gputypes.TextureFormatRGBA32Float)

	c := V4(0.25, 0.5, 0.75, 1)
	img.Store(2, 1, c)
	if got := img.Load(2, 1); !got.Approx(c, 1e-6) {
		t.Errorf("Load(2,1) = %v, want %v", got, c)
	}
	if got := img.Load(0, 0); !got.Approx(Vec4{}, 0) {
		t.Errorf("Load(0,0) = %v, want zero", got)
	}
}

func TestStorageImage_OutOfRangeDiscarded(t *testing.T) {
	img := NewStorageImage(4, 4, gputypes.TextureFormatRGBA8Unorm)
	// Writes past the extent must be silently discarded, never panic.
	img.Store(4, 0, V4(1, 1, 1, 1))
	img.Store(0, 4, V4(1, 1, 1, 1))
	img.Store(1000, 1000, V4(1, 1, 1, 1))

	if got := img.Load(5, 5); !got.Approx(Vec4{}, 0) {
		t.Errorf("Load out of range = %v, want zero", got)
	}
}

func TestStorageImage_SingleChannel(t *testing.T) {
	img := NewStorageImage(2, 2, gputypes.TextureFormatR32Float)
	img.Store(1, 1, V4(0.5, 0.9, 0.9, 0.9))

	got := img.Load(1, 1)
	if got.X != 0.5 || got.Y != 0 || got.Z != 0 || got.W != 1 {
		t.Errorf("single-channel Load = %v, want (0.5, 0, 0, 1)", got)
	}
}

func TestStorageImage_EncodePNG(t *testing.T) {
	img := NewStorageImage(8, 8, gputypes.TextureFormatRGBA8Unorm)
	img.Clear(V4(1, 0, 0, 1))

	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if w := decoded.Bounds().Dx(); w != 8 {
		t.Errorf("decoded width = %d, want 8", w)
	}
}

func TestTexture_SampleClamps(t *testing.T) {
	tex := NewTexture(2, 2, gputypes.TextureFormatRGBA8Unorm)
	tex.Upload(0, 0, 2, 2, []uint8{
		255, 0, 0, 255 /**/, 0, 255, 0, 255,
		0, 0, 255, 255 /**/, 255, 255, 255, 255,
	})

	tests := []struct {
		name string
		uv   Vec2
		want Vec4
	}{
		{"top left", V2(0.1, 0.1), V4(1, 0, 0, 1)},
		{"top right", V2(0.9, 0.1), V4(0, 1, 0, 1)},
		{"bottom left", V2(0.1, 0.9), V4(0, 0, 1, 1)},
		{"clamped negative", V2(-0.5, -0.5), V4(1, 0, 0, 1)},
		{"clamped past edge", V2(2, 2), V4(1, 1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tex.Sample(tt.uv); !got.Approx(tt.want, 1e-3) {
				t.Errorf("Sample(%v) = %v, want %v", tt.uv, got, tt.want)
			}
		})
	}
}

func TestTexture_UploadClips(t *testing.T) {
	tex := NewTexture(4, 4, gputypes.TextureFormatR8Unorm)

	// Entirely right of the texture: dropped, never a panic.
	tex.Upload(5, 0, 2, 2, []uint8{9, 9, 9, 9})
	if got := tex.At(3, 0); got.X != 0 {
		t.Errorf("pixel (3,0) = %v after fully clipped upload, want 0", got.X)
	}

	// Entirely below: dropped.
	tex.Upload(0, 5, 2, 2, []uint8{9, 9, 9, 9})

	// Straddling the right edge: the in-bounds column lands, the rest
	// is clipped.
	tex.Upload(3, 0, 2, 2, []uint8{
		10, 20,
		30, 40,
	})
	if got := tex.At(3, 0); got.X != float32(10)/255 {
		t.Errorf("pixel (3,0) = %v, want %v", got.X, float32(10)/255)
	}
	if got := tex.At(3, 1); got.X != float32(30)/255 {
		t.Errorf("pixel (3,1) = %v, want %v", got.X, float32(30)/255)
	}

	// Straddling the bottom edge: rows past the extent are clipped.
	tex.Upload(0, 3, 1, 3, []uint8{50, 60, 70})
	if got := tex.At(0, 3); got.X != float32(50)/255 {
		t.Errorf("pixel (0,3) = %v, want %v", got.X, float32(50)/255)
	}
}

func TestTexture_R8SamplesRedChannel(t *testing.T) {
	tex := NewTexture(2, 1, gputypes.TextureFormatR8Unorm)
	tex.Upload(0, 0, 2, 1, []uint8{0, 255})

	if got := tex.Sample(V2(0.25, 0.5)); got.X != 0 || got.W != 1 {
		t.Errorf("Sample left = %v, want (0, 0, 0, 1)", got)
	}
	if got := tex.Sample(V2(0.75, 0.5)); got.X != 1 {
		t.Errorf("Sample right = %v, want red 1", got)
	}
}
