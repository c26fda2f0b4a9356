package text

import (
	"bytes"
	"fmt"
	"sync/atomic"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// faceIDs hands out a unique ID per parsed face so cache keys from
// different fonts never collide.
var faceIDs atomic.Uint64

// Face is a font at a fixed pixel size.
//
// The font data is parsed twice on purpose: go-text/typesetting drives
// shaping, and x/image/font/sfnt drives outline extraction for mask
// rasterization. Both parsers hold read-only views of the same bytes.
//
// Face is safe for concurrent use except for rasterization, which reuses
// an internal sfnt.Buffer; the Cache serializes those calls.
type Face struct {
	id   uint64
	size float32

	shapeFont *font.Font
	rastFont  *sfnt.Font

	buffer sfnt.Buffer
}

// NewFace parses TTF or OTF font data at the given pixel size.
func NewFace(data []byte, size float32) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("text: invalid face size %v", size)
	}

	shapeFace, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}
	rastFont, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font for rasterization: %w", err)
	}

	return &Face{
		id:        faceIDs.Add(1),
		size:      size,
		shapeFont: shapeFace.Font,
		rastFont:  rastFont,
	}, nil
}

// Size returns the face's pixel size (ppem).
func (f *Face) Size() float32 { return f.size }

// Metrics describes vertical line metrics in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of a line.
	Ascent float32
	// Descent is the distance from the baseline to the bottom, positive
	// downward.
	Descent float32
	// LineHeight is the recommended baseline-to-baseline distance.
	LineHeight float32
}

// Metrics returns the face's line metrics at its pixel size.
func (f *Face) Metrics() (Metrics, error) {
	ppem := fixed.Int26_6(f.size * 64)
	m, err := f.rastFont.Metrics(&f.buffer, ppem, 0)
	if err != nil {
		return Metrics{}, fmt.Errorf("text: font metrics: %w", err)
	}
	return Metrics{
		Ascent:     fixedToFloat(m.Ascent),
		Descent:    fixedToFloat(m.Descent),
		LineHeight: fixedToFloat(m.Height),
	}, nil
}

func fixedToFloat(v fixed.Int26_6) float32 { return float32(v) / 64 }

func floatToFixed(v float32) fixed.Int26_6 { return fixed.Int26_6(v * 64) }
