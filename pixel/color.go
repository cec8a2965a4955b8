// Package pixel implements the color model shared by the effect kernels
// and the bit-plane packer: fixed-point HSV conversion and gamma tables.
// Everything here is division-free so it can run on every pixel of every
// frame without blowing the per-frame budget.
package pixel

// HSVToRGB converts full-range HSV bytes to 8-bit RGB channels.
//
// Hue is scaled by 6 so the hexagon sector is the high byte and the
// in-sector fraction the low byte; the three ramps are computed with
// multiply/shift only. s == 0 short-circuits to exact grayscale.
func HSVToRGB(h, s, v uint8) (r, g, b uint8) {
	if s == 0 {
		return v, v, v
	}

	h6 := uint16(h) * 6
	sector := uint8(h6 >> 8) // 0-5
	frac := uint8(h6)        // 0-255 within sector

	vs := uint16(v) * uint16(s)
	p := v - uint8(vs>>8)                             // min
	q := v - uint8(uint32(vs)*uint32(frac)>>16)       // ramp down
	t := v - uint8(uint32(vs)*(255-uint32(frac))>>16) // ramp up

	switch sector {
	case 0:
		return v, t, p // Red -> Yellow
	case 1:
		return q, v, p // Yellow -> Green
	case 2:
		return p, v, t // Green -> Cyan
	case 3:
		return p, q, v // Cyan -> Blue
	case 4:
		return t, p, v // Blue -> Magenta
	default:
		return v, p, q // Magenta -> Red
	}
}

// HSVToRGB565 converts HSV bytes straight to a packed RGB565 pixel.
func HSVToRGB565(h, s, v uint8) uint16 {
	r, g, b := HSVToRGB(h, s, v)
	return RGB565(r, g, b)
}

// RGB565 packs 8-bit channels as rrrrrggggggbbbbb.
func RGB565(r, g, b uint8) uint16 {
	return uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3
}

// RGB888From565 expands a packed RGB565 pixel back to 8-bit channels.
//
// The vacated low bits are filled by replicating the most significant
// bits, which scales 0 to 0 and the channel maximum to 255 without a
// division, at the cost of a slight nonlinearity.
func RGB888From565(p uint16) (r, g, b uint8) {
	r = uint8(p>>8) & 0xF8
	g = uint8(p>>3) & 0xFC
	b = uint8(p<<3) & 0xF8
	r |= r >> 5
	g |= g >> 6
	b |= b >> 5
	return r, g, b
}
