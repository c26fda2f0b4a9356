package text

import (
	"errors"
	"fmt"
)

// ErrAtlasFull is returned when a mask cannot be placed in the atlas.
var ErrAtlasFull = errors.New("text: glyph atlas is full")

// Atlas sizing defaults.
const (
	// DefaultAtlasSize is the default atlas dimension in pixels.
	DefaultAtlasSize = 1024

	// atlasPadding is the gap between packed masks, keeping nearest
	// neighbor sampling from bleeding across glyphs.
	atlasPadding = 1
)

// Region is a rectangular placement within the atlas.
type Region struct {
	X, Y, Width, Height int
}

func (r Region) String() string {
	return fmt.Sprintf("Region(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// shelf is one horizontal row of the shelf-packing algorithm.
type shelf struct {
	y      int
	height int
	nextX  int
}

// Atlas packs glyph masks into a fixed-size square with a shelf
// allocator: each mask lands on the first shelf tall and wide enough,
// or opens a new shelf below.
//
// Shelf packing cannot free individual regions. When the atlas fills up,
// the Cache resets it wholesale and re-rasterizes live glyphs.
type Atlas struct {
	size    int
	shelves []shelf
	used    int
}

// NewAtlas creates an atlas with the given square dimension. Sizes below
// 1 fall back to DefaultAtlasSize.
func NewAtlas(size int) *Atlas {
	if size < 1 {
		size = DefaultAtlasSize
	}
	return &Atlas{size: size}
}

// Size returns the atlas dimension in pixels.
func (a *Atlas) Size() int { return a.size }

// Allocate finds space for a width-by-height mask.
func (a *Atlas) Allocate(width, height int) (Region, error) {
	if width <= 0 || height <= 0 {
		return Region{}, fmt.Errorf("text: invalid allocation %dx%d", width, height)
	}
	pw, ph := width+atlasPadding, height+atlasPadding
	if pw > a.size || ph > a.size {
		return Region{}, fmt.Errorf("text: %dx%d exceeds atlas size %d: %w",
			width, height, a.size, ErrAtlasFull)
	}

	for i := range a.shelves {
		s := &a.shelves[i]
		if ph <= s.height && s.nextX+pw <= a.size {
			r := Region{X: s.nextX, Y: s.y, Width: width, Height: height}
			s.nextX += pw
			a.used += width * height
			return r, nil
		}
	}

	// Open a new shelf below the last one.
	bottom := 0
	if n := len(a.shelves); n > 0 {
		bottom = a.shelves[n-1].y + a.shelves[n-1].height
	}
	if bottom+ph > a.size {
		return Region{}, ErrAtlasFull
	}
	a.shelves = append(a.shelves, shelf{y: bottom, height: ph, nextX: pw})
	a.used += width * height
	return Region{X: 0, Y: bottom, Width: width, Height: height}, nil
}

// Reset discards all placements.
func (a *Atlas) Reset() {
	a.shelves = a.shelves[:0]
	a.used = 0
}

// Utilization returns the fraction of atlas area covered by allocations.
func (a *Atlas) Utilization() float64 {
	return float64(a.used) / float64(a.size*a.size)
}
