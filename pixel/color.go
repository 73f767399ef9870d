package pixel

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Models for the standard color types.
var (
	HLModel     color.Model = color.ModelFunc(hlModel)
	RGB332Model color.Model = color.ModelFunc(rgb332Model)
	RGBModel    color.Model = color.ModelFunc(rgbModel)
)

// HL represents a fully saturated color as a hue and lightness pair.
//
// Hue 0-255 covers the color wheel 0-360°. Lightness below 128 fades the hue
// towards black, lightness of 128 and above fades it towards white.
type HL struct {
	H uint8
	L uint8
}

// RGB returns the 8-bit per channel color.
//
// The scaling divides by 256 instead of 255, so the result may be off by a few
// units from an exact HSL conversion. Encoded content relies on these exact
// values, including the different scale derivation on either side of 128.
func (c HL) RGB() (r, g, b uint8) {
	base := &hueLUT[c.H]
	if c.L < 128 {
		// Scale towards black.
		scale := uint16(c.L) << 1
		r = uint8((uint16(base[0]) * scale) >> 8)
		g = uint8((uint16(base[1]) * scale) >> 8)
		b = uint8((uint16(base[2]) * scale) >> 8)
	} else {
		// Scale towards white.
		scale := uint16(c.L-128) << 1
		r = base[0] + uint8((uint16(0xff-base[0])*scale)>>8)
		g = base[1] + uint8((uint16(0xff-base[1])*scale)>>8)
		b = base[2] + uint8((uint16(0xff-base[2])*scale)>>8)
	}
	return
}

func (c HL) RGBA() (r, g, b, a uint32) {
	return expand(c.RGB())
}

func hlModel(c color.Color) color.Color {
	if _, ok := c.(HL); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	h, _, l := colorful.Color{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
	}.Hsl()

	// Lightness l/256 is what RGB produces for an L byte, so invert that.
	return HL{
		H: uint8(int(math.Round(h*256/360)) & 0xff),
		L: uint8(math.Min(math.Round(l*256), 0xff)),
	}
}

// RGB332 represents an 8-bit 3-3-2 RGB color.
type RGB332 struct {
	// CRed, 3, CGreen, 3, CBlue, 2
	V uint8
}

// RGB returns the 8-bit per channel color.
func (c RGB332) RGB() (r, g, b uint8) {
	v := &rgb332LUT[c.V]
	return v[0], v[1], v[2]
}

func (c RGB332) RGBA() (r, g, b, a uint32) {
	return expand(c.RGB())
}

func rgb332Model(c color.Color) color.Color {
	if _, ok := c.(RGB332); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGB332{V: PackRGB332(uint8(r>>8), uint8(g>>8), uint8(b>>8))}
}

// PackRGB332 keeps the top 3 bits of red and green and the top 2 bits of blue.
func PackRGB332(r, g, b uint8) uint8 {
	return (r>>5)<<5 | (g>>5)<<2 | b>>6
}

// RGB represents an opaque 24-bit 8-8-8 RGB color.
type RGB struct {
	R, G, B uint8
}

func (c RGB) RGBA() (r, g, b, a uint32) {
	return expand(c.R, c.G, c.B)
}

func rgbModel(c color.Color) color.Color {
	switch c := c.(type) {
	case RGB:
		return c
	case HL:
		r, g, b := c.RGB()
		return RGB{r, g, b}
	case RGB332:
		r, g, b := c.RGB()
		return RGB{r, g, b}
	default:
		r, g, b, _ := c.RGBA()
		return RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
	}
}

// expand duplicates each 8-bit component in the high byte.
func expand(r8, g8, b8 uint8) (r, g, b, a uint32) {
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xffff
}
