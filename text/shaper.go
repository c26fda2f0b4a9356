package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// ShapedGlyph is one positioned glyph in a shaped run. Offsets are
// relative to the pen position at the glyph's start; the pen advances by
// XAdvance after each glyph.
type ShapedGlyph struct {
	GID      uint32
	XOffset  float32
	YOffset  float32
	XAdvance float32
}

// Run is the result of shaping one string: glyphs in visual order plus
// the total advance width.
type Run struct {
	Glyphs []ShapedGlyph
	Width  float32
}

// Shaper shapes strings with go-text's HarfBuzz implementation.
//
// HarfbuzzShaper instances carry mutable scratch buffers and are not safe
// for concurrent use, so they are pooled per call. Shaper itself is safe
// for concurrent use.
type Shaper struct {
	pool sync.Pool
}

// NewShaper creates a Shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
}

// Shape converts text into a positioned glyph run using face.
// The base direction is derived from the text's first strong rune.
func (s *Shaper) Shape(face *Face, text string) Run {
	if text == "" || face == nil {
		return Run{}
	}

	runes := []rune(text)
	dir := detectDirection(text)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(face.shapeFont),
		Size:      floatToFixed(face.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	run := Run{Glyphs: make([]ShapedGlyph, len(output.Glyphs))}
	for i, g := range output.Glyphs {
		adv := fixedToFloat(g.XAdvance)
		run.Glyphs[i] = ShapedGlyph{
			GID:      uint32(g.GlyphID),
			XOffset:  fixedToFloat(g.XOffset),
			YOffset:  -fixedToFloat(g.YOffset),
			XAdvance: adv,
		}
		run.Width += adv
	}
	return run
}

// detectDirection resolves the paragraph's base direction with the
// Unicode bidi algorithm: RTL only when the first strong rune is RTL.
func detectDirection(text string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return di.DirectionLTR
	}
	if p.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune. Mixed
// scripts should be split into per-script runs before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
