package effects

import (
	"hub75/frame"
	"hub75/pixel"
)

// Plasma renders a classic plasma frame into an RGB888 buffer. The hue
// at each pixel averages four phase-shifted sine terms; the radial term
// uses (x*x+y*y)>>4 as a cheap stand-in for the distance from origin,
// which is enough because only the periodic banding matters.
func Plasma(dst []byte, width, height int, t uint8) error {
	if err := frame.CheckPixels(dst, width, height, frame.RGB888); err != nil {
		return err
	}

	ti := int(t)
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v1 := int(sinTable[(x+ti)&0xFF])
			v2 := int(sinTable[(y+ti)&0xFF])
			v3 := int(sinTable[(x+y+ti)&0xFF])
			v4 := int(sinTable[((x*x+y*y)>>4+ti)&0xFF])

			hue := uint8((v1 + v2 + v3 + v4) >> 2)

			r, g, b := pixel.HSVToRGB(hue, 255, 255)
			dst[i] = r
			dst[i+1] = g
			dst[i+2] = b
			i += 3
		}
	}
	return nil
}
