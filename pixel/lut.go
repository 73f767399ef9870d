package pixel

// Lookup tables, filled once during package initialization and never written after.
var (
	hueLUT    = buildHueLUT()
	rgb332LUT = buildRGB332LUT()
)

// buildHueLUT maps a hue byte onto the color wheel at full saturation and 50%
// lightness, using integer arithmetic only.
func buildHueLUT() (lut [256][3]uint8) {
	for h := 0; h < 256; h++ {
		var (
			hue       = (h * 360) >> 8
			remainder = uint8((hue % 60) * 255 / 60)
			r, g, b   uint8
		)
		switch hue / 60 {
		case 0:
			r, g, b = 0xff, remainder, 0
		case 1:
			r, g, b = 0xff-remainder, 0xff, 0
		case 2:
			r, g, b = 0, 0xff, remainder
		case 3:
			r, g, b = 0, 0xff-remainder, 0xff
		case 4:
			r, g, b = remainder, 0, 0xff
		default:
			r, g, b = 0xff, 0, 0xff-remainder
		}
		lut[h] = [3]uint8{r, g, b}
	}
	return
}

// buildRGB332LUT expands every 3-3-2 packed byte to 8 bits per channel.
func buildRGB332LUT() (lut [256][3]uint8) {
	for v := 0; v < 256; v++ {
		var (
			r = uint8(v>>5) & 0x7
			g = uint8(v>>2) & 0x7
			b = uint8(v) & 0x3
		)
		// Duplicate the high bits in the low bits.
		lut[v] = [3]uint8{
			r<<5 | r<<2 | r>>1,
			g<<5 | g<<2 | g>>1,
			b<<6 | b<<4 | b<<2 | b,
		}
	}
	return
}

// Hue returns the fully saturated color at hue h, where 0-255 spans 0-360°.
func Hue(h uint8) (r, g, b uint8) {
	c := &hueLUT[h]
	return c[0], c[1], c[2]
}

// HueTable returns a copy of the hue color wheel.
func HueTable() [256][3]uint8 {
	return hueLUT
}

// RGB332Table returns a copy of the 3-3-2 packed RGB expansion table.
func RGB332Table() [256][3]uint8 {
	return rgb332LUT
}
