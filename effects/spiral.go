package effects

import (
	"hub75/frame"
	"hub75/pixel"
)

// Spiral renders a rainbow spiral into an RGB888 buffer. The hue at
// each pixel is angle + radius*tightness/16 + t; everything comes from
// the precomputed tables, so the kernel is a pure table walk.
func Spiral(dst []byte, tables *Tables, t, tightness uint8) error {
	count := len(tables.Angle)
	if err := frame.Check(tables.Radius, count); err != nil {
		return err
	}
	if err := frame.Check(dst, count*3); err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		hue := uint8(int(tables.Angle[i]) + int(tables.Radius[i])*int(tightness)>>4 + int(t))

		r, g, b := pixel.HSVToRGB(hue, 255, 255)
		dst[i*3] = r
		dst[i*3+1] = g
		dst[i*3+2] = b
	}
	return nil
}
