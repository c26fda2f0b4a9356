// Package text turns strings into glyph-atlas textured rects.
//
// The pipeline has three stages:
//
//   - Shaping: go-text/typesetting's HarfBuzz port converts a string into
//     positioned glyph IDs, honoring kerning, ligatures, and script rules.
//   - Caching: a Cache rasterizes each (font, glyph, size) once into an
//     alpha mask, packs it into a shelf Atlas, and hands the caller the
//     pixel uploads destined for the atlas texture.
//   - Emission: Layout breaks shaped runs into lines under a width
//     constraint, and Quads produces primitive.GlyphQuad entries that a
//     primitive.Builder turns into textured rects.
//
// The atlas texture stores only the red channel; the rect compositor reads
// it as an alpha mask and tints with the run's color.
package text
