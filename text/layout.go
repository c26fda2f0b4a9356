package text

import (
	"strings"

	"github.com/gogpu/bindless"
	"github.com/gogpu/bindless/primitive"
)

// Line is one laid-out line of shaped glyphs.
type Line struct {
	Glyphs []ShapedGlyph
	Width  float32
}

// Layout breaks s into lines no wider than maxWidth. Explicit newlines
// always break; otherwise lines wrap greedily at spaces. A maxWidth of 0
// or less disables wrapping.
//
// Words are shaped independently, so kerning does not cross word
// boundaries. For UI labels this is invisible; justified paragraph text
// would need run-level shaping.
func Layout(shaper *Shaper, face *Face, s string, maxWidth float32) []Line {
	if s == "" {
		return nil
	}

	spaceRun := shaper.Shape(face, " ")
	spaceWidth := spaceRun.Width

	var lines []Line
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, Line{})
			continue
		}

		var cur Line
		for _, word := range words {
			run := shaper.Shape(face, word)

			sep := float32(0)
			if len(cur.Glyphs) > 0 {
				sep = spaceWidth
			}
			if maxWidth > 0 && len(cur.Glyphs) > 0 && cur.Width+sep+run.Width > maxWidth {
				lines = append(lines, cur)
				cur = Line{}
				sep = 0
			}
			if sep > 0 {
				cur.Glyphs = append(cur.Glyphs, spaceRun.Glyphs...)
				cur.Width += sep
			}
			cur.Glyphs = append(cur.Glyphs, run.Glyphs...)
			cur.Width += run.Width
		}
		lines = append(lines, cur)
	}
	return lines
}

// Quads converts laid-out lines into glyph quads. The origin is the
// top-left corner of the text block; the first baseline sits one ascent
// below it. Quads rasterizes any glyphs not yet in the cache, so drain
// the cache's uploads afterwards.
func Quads(cache *Cache, face *Face, origin bindless.Vec2, lines []Line) ([]primitive.GlyphQuad, error) {
	m, err := face.Metrics()
	if err != nil {
		return nil, err
	}

	quads := make([]primitive.GlyphQuad, 0, totalGlyphs(lines))
	baseline := origin.Y + m.Ascent
	for _, line := range lines {
		pen := origin.X
		for _, sg := range line.Glyphs {
			g, err := cache.Glyph(face, sg.GID)
			if err != nil {
				return nil, err
			}
			if !g.Blank {
				quads = append(quads, primitive.GlyphQuad{
					Dst: primitive.Rect{
						Pos: bindless.V2(
							pen+sg.XOffset+float32(g.BearingX),
							baseline+sg.YOffset+float32(g.BearingY)),
						Size: bindless.V2(float32(g.Region.Width), float32(g.Region.Height)),
					},
					Src: cache.UVRect(g.Region),
				})
			}
			pen += sg.XAdvance
		}
		baseline += m.LineHeight
	}
	return quads, nil
}

func totalGlyphs(lines []Line) int {
	n := 0
	for _, l := range lines {
		n += len(l.Glyphs)
	}
	return n
}
