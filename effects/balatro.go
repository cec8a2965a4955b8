package effects

import "hub75/frame"

// balatroGradient maps a band index to RGB888. Transitions between the
// red and blue zones pass through near-black instead of an intermediate
// hue, which keeps the boundaries free of magenta fringing; the zone
// structure must be preserved exactly if this table is ever re-derived.
//
//	  0- 85: red zone (boosted peak brightness around 27-43)
//	 86-170: blue zone (boosted peak brightness around 109-125)
//	171-255: dark zone
var balatroGradient = [256 * 3]uint8{
	// 0-85: red zone
	8, 20, 24, 24, 16, 16, 33, 16, 16, 49, 16, 16,
	57, 16, 16, 66, 16, 16, 82, 16, 16, 90, 16, 16,
	107, 16, 8, 115, 12, 8, 132, 12, 8, 140, 12, 8,
	140, 12, 8, 148, 16, 8, 156, 16, 8, 165, 16, 8,
	165, 16, 8, 173, 20, 16, 181, 20, 16, 189, 20, 16,
	198, 20, 16, 206, 24, 16, 222, 28, 16, 222, 28, 16,
	231, 28, 24, 231, 32, 24, 239, 32, 24, 239, 38, 30,
	247, 50, 38, 247, 61, 49, 247, 79, 67, 255, 102, 90,
	255, 127, 115, 255, 152, 140, 255, 169, 157, 255, 176, 164,
	255, 169, 157, 255, 152, 140, 255, 127, 115, 255, 102, 90,
	255, 79, 67, 247, 61, 49, 247, 50, 38, 247, 42, 30,
	239, 32, 24, 239, 32, 24, 231, 32, 24, 231, 28, 24,
	222, 28, 16, 222, 28, 16, 206, 24, 16, 198, 24, 16,
	189, 20, 16, 189, 20, 16, 181, 20, 16, 181, 20, 16,
	173, 20, 16, 173, 20, 16, 165, 16, 8, 165, 16, 8,
	156, 16, 8, 156, 16, 8, 148, 16, 8, 148, 12, 8,
	140, 12, 8, 140, 12, 8, 132, 12, 8, 123, 12, 8,
	123, 12, 8, 115, 16, 8, 107, 16, 8, 99, 16, 8,
	99, 16, 16, 90, 16, 16, 82, 16, 16, 74, 16, 16,
	66, 16, 16, 66, 16, 16, 57, 16, 16, 49, 16, 16,
	41, 16, 16, 41, 16, 16, 33, 16, 16, 24, 16, 16,
	16, 16, 24, 8, 20, 24,
	// 86-170: blue zone
	8, 20, 24, 8, 20, 33, 8, 24, 33, 8, 28, 41,
	8, 32, 49, 8, 36, 57, 8, 40, 66, 8, 44, 74,
	8, 48, 82, 0, 52, 90, 0, 56, 99, 0, 60, 99,
	0, 65, 107, 0, 65, 115, 0, 69, 123, 0, 73, 132,
	0, 77, 140, 0, 81, 148, 0, 85, 156, 0, 89, 165,
	0, 89, 165, 0, 93, 165, 8, 101, 173, 14, 111, 181,
	30, 127, 181, 41, 142, 189, 59, 164, 189, 90, 191, 198,
	115, 216, 198, 140, 246, 198, 157, 255, 198, 164, 255, 198,
	157, 255, 198, 140, 241, 198, 115, 216, 198, 82, 187, 189,
	59, 160, 189, 41, 138, 181, 22, 119, 181, 14, 107, 173,
	0, 93, 165, 0, 89, 165, 0, 89, 165, 0, 89, 156,
	0, 85, 156, 0, 85, 156, 0, 85, 156, 0, 85, 148,
	0, 81, 148, 0, 81, 148, 0, 81, 148, 0, 81, 148,
	0, 81, 148, 0, 81, 148, 0, 81, 148, 0, 81, 148,
	0, 81, 148, 0, 81, 148, 0, 81, 148, 0, 85, 148,
	0, 85, 156, 0, 85, 156, 0, 85, 156, 0, 89, 156,
	0, 89, 165, 0, 89, 165, 0, 85, 156, 0, 81, 148,
	0, 77, 140, 0, 73, 132, 0, 69, 123, 0, 65, 115,
	0, 65, 107, 0, 60, 99, 0, 56, 99, 0, 52, 90,
	8, 48, 82, 8, 44, 74, 8, 40, 66, 8, 36, 57,
	8, 32, 49, 8, 28, 41, 8, 24, 33, 8, 20, 33,
	8, 20, 24,
	// 171-255: dark zone
	8, 16, 16, 8, 16, 16, 8, 16, 16, 8, 16, 16,
	8, 16, 16, 8, 16, 16, 8, 16, 16, 8, 16, 16,
	8, 16, 16, 8, 16, 16, 8, 16, 16, 8, 16, 16,
	8, 16, 24, 8, 16, 24, 8, 16, 24, 8, 16, 24,
	8, 16, 24, 8, 16, 24, 8, 16, 24, 8, 16, 24,
	8, 20, 24, 8, 16, 24, 8, 16, 24, 8, 16, 24,
	8, 16, 24, 8, 16, 24, 8, 16, 24, 8, 16, 24,
	8, 16, 24, 8, 16, 16, 8, 16, 16, 8, 16, 16,
	8, 16, 16, 8, 16, 16, 8, 16, 16, 8, 16, 16,
	8, 16, 16, 8, 16, 16, 8, 16, 16, 8, 16, 16,
	8, 16, 16, 8, 16, 16, 8, 12, 16, 8, 12, 16,
	8, 12, 16, 8, 12, 16, 8, 12, 16, 8, 12, 16,
	8, 12, 16, 8, 12, 16, 8, 12, 16, 8, 12, 16,
	8, 12, 16, 8, 12, 16, 8, 12, 8, 8, 12, 8,
	8, 12, 8, 8, 12, 8, 8, 12, 8, 8, 12, 8,
	8, 12, 8, 8, 12, 8, 8, 12, 8, 8, 12, 8,
	8, 12, 8, 8, 12, 8, 8, 12, 8, 8, 12, 8,
	8, 12, 8, 8, 12, 8, 8, 12, 16, 8, 12, 16,
	8, 12, 16, 8, 12, 16, 8, 12, 16, 8, 12, 16,
	8, 12, 16, 8, 12, 16, 8, 12, 16, 8, 12, 16,
	8, 12, 16, 8, 12, 16, 8, 16, 16, 8, 16, 16,
	8, 16, 16,
}

// Balatro renders the warped spiral. The base spiral band is
// angle + radius*spinSpeed/4 - t/2 in signed 16-bit; five sine-table
// warp terms keyed by different mixes of position, angle, radius and
// time are summed (the higher-frequency ones down-weighted) and folded
// in scaled by warpAmount before the gradient lookup.
func Balatro(dst []byte, tables *Tables, width, height int, t uint16, spinSpeed, warpAmount uint8) error {
	if err := frame.Check(tables.Angle, width*height); err != nil {
		return err
	}
	if err := frame.Check(tables.Radius, width*height); err != nil {
		return err
	}
	if err := frame.CheckPixels(dst, width, height, frame.RGB888); err != nil {
		return err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x

			angle := int(tables.Angle[i])
			radius := int(tables.Radius[i])

			// >>2 rather than >>3 zooms out to show more of the pattern.
			spiral := int16(angle + radius*int(spinSpeed)>>2 - int(t>>1))

			warp := 0

			// Position-based low frequency.
			w1 := uint8(x*5 + y*7 + int(t>>2))
			warp += int(int8(sinTable[w1] - 128))

			// Spiral-based, warps along the spiral bands.
			w2 := uint8(int(spiral) + radius + int(t>>1))
			warp += int(int8(sinTable[w2] - 128))

			// High frequency detail.
			w3 := uint8(x*11 - y*13 + int(t))
			warp += int(int8(sinTable[w3]-128)) >> 1

			// Angle-based swirl.
			w4 := uint8(angle*3 + int(t>>2))
			warp += int(int8(sinTable[w4]-128)) >> 1

			// Radius-based, varies from center to edge.
			w5 := uint8(radius*4 - int(t))
			warp += int(int8(sinTable[w5]-128)) >> 2

			band := uint8(int(spiral) + warp*int(warpAmount)>>6)

			g := int(band) * 3
			dst[i*3] = balatroGradient[g]
			dst[i*3+1] = balatroGradient[g+1]
			dst[i*3+2] = balatroGradient[g+2]
		}
	}
	return nil
}
