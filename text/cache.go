package text

import (
	"fmt"

	"github.com/gogpu/bindless"
	"github.com/gogpu/bindless/primitive"
)

// GlyphKey identifies a cached glyph. The face ID already encodes the
// pixel size, since a Face is parsed at a fixed size.
type GlyphKey struct {
	FaceID uint64
	GID    uint32
}

// Glyph is a cache entry: where the mask lives in the atlas and how to
// place it relative to the pen.
type Glyph struct {
	Region   Region
	BearingX int
	BearingY int
	Advance  float32

	// Blank marks glyphs with no coverage (spaces). They advance the
	// pen but emit no quad.
	Blank bool
}

// Upload is a pending pixel transfer into the atlas texture: coverage
// bytes for one region, Width*Height tightly packed.
type Upload struct {
	Region Region
	Pixels []uint8
}

// Cache rasterizes glyphs on demand and packs them into an Atlas.
//
// When the atlas fills up the whole cache generation is dropped and the
// atlas restarts empty: shelf packing cannot free single regions, and in
// practice a UI's live glyph set re-packs within one frame. Callers must
// re-request quads after a generation bump (Generation changes) and apply
// the queued uploads to the atlas texture before drawing.
//
// Cache is not safe for concurrent use.
type Cache struct {
	atlas   *Atlas
	entries map[GlyphKey]Glyph
	uploads []Upload

	generation uint64
	hits       uint64
	misses     uint64
}

// NewCache creates a glyph cache over an atlas of the given dimension.
func NewCache(atlasSize int) *Cache {
	return &Cache{
		atlas:   NewAtlas(atlasSize),
		entries: make(map[GlyphKey]Glyph),
	}
}

// AtlasSize returns the atlas dimension in pixels.
func (c *Cache) AtlasSize() int { return c.atlas.Size() }

// Generation increments every time the atlas is reset. Quads built under
// an older generation reference stale regions and must be rebuilt.
func (c *Cache) Generation() uint64 { return c.generation }

// Glyph returns the cache entry for gid, rasterizing and packing it on
// first use.
func (c *Cache) Glyph(face *Face, gid uint32) (Glyph, error) {
	key := GlyphKey{FaceID: face.id, GID: gid}
	if g, ok := c.entries[key]; ok {
		c.hits++
		return g, nil
	}
	c.misses++

	mask, err := rasterizeGlyph(face, gid)
	if err != nil {
		return Glyph{}, err
	}
	if mask.Mask == nil {
		g := Glyph{Advance: mask.Advance, Blank: true}
		c.entries[key] = g
		return g, nil
	}

	b := mask.Mask.Bounds()
	region, err := c.atlas.Allocate(b.Dx(), b.Dy())
	if err == ErrAtlasFull {
		c.reset()
		region, err = c.atlas.Allocate(b.Dx(), b.Dy())
	}
	if err != nil {
		return Glyph{}, fmt.Errorf("text: pack glyph %d: %w", gid, err)
	}

	c.uploads = append(c.uploads, Upload{Region: region, Pixels: mask.Mask.Pix})

	g := Glyph{
		Region:   region,
		BearingX: mask.BearingX,
		BearingY: mask.BearingY,
		Advance:  mask.Advance,
	}
	c.entries[key] = g
	return g, nil
}

func (c *Cache) reset() {
	bindless.Logger().Warn("glyph atlas full, resetting",
		"entries", len(c.entries),
		"utilization", c.atlas.Utilization())
	c.atlas.Reset()
	clear(c.entries)
	c.uploads = c.uploads[:0]
	c.generation++
}

// DrainUploads returns the pixel transfers queued since the last drain
// and clears the queue. Apply them to the atlas texture before drawing.
func (c *Cache) DrainUploads() []Upload {
	u := c.uploads
	c.uploads = nil
	return u
}

// UVRect converts an atlas region into the unit UV sub-rect a
// TexturedRect record carries.
func (c *Cache) UVRect(r Region) primitive.Rect {
	s := float32(c.atlas.Size())
	return primitive.Rect{
		Pos:  bindless.V2(float32(r.X)/s, float32(r.Y)/s),
		Size: bindless.V2(float32(r.Width)/s, float32(r.Height)/s),
	}
}
