package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// GlyphMask is a rasterized glyph: an alpha coverage mask plus the
// placement of that mask relative to the pen position on the baseline.
type GlyphMask struct {
	// Mask holds 8-bit coverage, tightly packed, Stride == width.
	Mask *image.Alpha

	// BearingX and BearingY offset the mask's top-left corner from the
	// pen position. BearingY is negative for glyphs above the baseline.
	BearingX int
	BearingY int

	// Advance is the pen advance in pixels.
	Advance float32
}

// rasterizeGlyph renders one glyph outline into an alpha mask at the
// face's pixel size. Whitespace glyphs produce a nil Mask with a valid
// advance. Not safe for concurrent use on the same face.
func rasterizeGlyph(face *Face, gid uint32) (GlyphMask, error) {
	ppem := floatToFixed(face.size)

	segments, err := face.rastFont.LoadGlyph(&face.buffer, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return GlyphMask{}, fmt.Errorf("text: load glyph %d: %w", gid, err)
	}
	advance, err := face.rastFont.GlyphAdvance(&face.buffer, sfnt.GlyphIndex(gid), ppem, 0)
	if err != nil {
		return GlyphMask{}, fmt.Errorf("text: glyph %d advance: %w", gid, err)
	}

	bounds := segments.Bounds()
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	maxX, maxY := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()
	w, h := maxX-minX, maxY-minY
	if w <= 0 || h <= 0 {
		// Space and other blank glyphs still advance the pen.
		return GlyphMask{Advance: fixedToFloat(advance)}, nil
	}

	// Shift the outline so the mask starts at (0,0).
	shiftX := fixed.Int26_6(minX * 64)
	shiftY := fixed.Int26_6(minY * 64)
	fx := func(v fixed.Int26_6, shift fixed.Int26_6) float32 {
		return float32(v-shift) / 64
	}

	r := vector.NewRasterizer(w, h)
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			r.MoveTo(fx(seg.Args[0].X, shiftX), fx(seg.Args[0].Y, shiftY))
		case sfnt.SegmentOpLineTo:
			r.LineTo(fx(seg.Args[0].X, shiftX), fx(seg.Args[0].Y, shiftY))
		case sfnt.SegmentOpQuadTo:
			r.QuadTo(
				fx(seg.Args[0].X, shiftX), fx(seg.Args[0].Y, shiftY),
				fx(seg.Args[1].X, shiftX), fx(seg.Args[1].Y, shiftY))
		case sfnt.SegmentOpCubeTo:
			r.CubeTo(
				fx(seg.Args[0].X, shiftX), fx(seg.Args[0].Y, shiftY),
				fx(seg.Args[1].X, shiftX), fx(seg.Args[1].Y, shiftY),
				fx(seg.Args[2].X, shiftX), fx(seg.Args[2].Y, shiftY))
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return GlyphMask{
		Mask:     mask,
		BearingX: minX,
		BearingY: minY,
		Advance:  fixedToFloat(advance),
	}, nil
}
