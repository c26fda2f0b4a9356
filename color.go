package bindless

// ColorU32 is a 32-bit packed normalized RGBA color in ABGR bit order:
// alpha in the top byte, red in the bottom byte. This is the layout the
// primitive records carry on the wire, so the packing must not change.
type ColorU32 uint32

// ColorFromU8 packs four 8-bit channels into a ColorU32.
func ColorFromU8(r, g, b, a uint8) ColorU32 {
	return ColorU32(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// ColorFromF32 packs four normalized float channels into a ColorU32.
// Channels are clamped to [0, 1] before quantization.
func ColorFromF32(r, g, b, a float32) ColorU32 {
	return ColorFromU8(
		uint8(Saturate(r)*255+0.5),
		uint8(Saturate(g)*255+0.5),
		uint8(Saturate(b)*255+0.5),
		uint8(Saturate(a)*255+0.5),
	)
}

// Greyscale returns an opaque grey color with the given intensity.
func Greyscale(intensity uint8) ColorU32 {
	return ColorFromU8(intensity, intensity, intensity, 255)
}

// Common colors. Magenta doubles as the compositor's "unknown primitive
// type" diagnostic color.
const (
	ColorWhite   ColorU32 = 0xFFFFFFFF
	ColorBlack   ColorU32 = 0xFF000000
	ColorRed     ColorU32 = 0xFF0000FF
	ColorGreen   ColorU32 = 0xFF00FF00
	ColorBlue    ColorU32 = 0xFFFF0000
	ColorMagenta ColorU32 = 0xFFFF00FF
)

// R returns the red channel.
func (c ColorU32) R() uint8 { return uint8(c) }

// G returns the green channel.
func (c ColorU32) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c ColorU32) B() uint8 { return uint8(c >> 16) }

// A returns the alpha channel.
func (c ColorU32) A() uint8 { return uint8(c >> 24) }

// Unpack returns the color as a normalized straight-alpha Vec4.
func (c ColorU32) Unpack() Vec4 {
	return Vec4{
		X: float32(c.R()) / 255,
		Y: float32(c.G()) / 255,
		Z: float32(c.B()) / 255,
		W: float32(c.A()) / 255,
	}
}

// Premultiplied returns the color as a normalized Vec4 with RGB scaled
// by alpha.
func (c ColorU32) Premultiplied() Vec4 {
	v := c.Unpack()
	return Vec4{X: v.X * v.W, Y: v.Y * v.W, Z: v.Z * v.W, W: v.W}
}
