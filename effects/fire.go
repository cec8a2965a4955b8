package effects

import "hub75/frame"

// MaxHeat is the highest cell intensity and the last fire palette index.
const MaxHeat = 36

// firePalette is the classic Doom fire ramp (37 colors): black through
// red and orange to yellow-white. Converted from RGB565 with the
// packer's bit replication.
var firePalette = [(MaxHeat + 1) * 3]uint8{
	0, 0, 0, // 0: black
	8, 0, 0, 16, 0, 0, 24, 0, 0, 33, 0, 0, // 1-4: dark red
	41, 0, 0, 49, 0, 0, 57, 0, 0, 66, 0, 0, // 5-8: dark red
	74, 0, 0, 82, 0, 0, 90, 0, 0, 99, 0, 0, // 9-12: red
	107, 0, 0, 115, 0, 0, 123, 0, 0, 132, 0, 0, // 13-16: red
	132, 65, 0, 132, 130, 0, 132, 195, 0, 140, 0, 0, // 17-20: red-orange
	140, 69, 0, 140, 134, 0, 140, 203, 0, 148, 12, 0, // 21-24: red-orange
	148, 81, 0, 148, 150, 0, 148, 219, 0, 156, 28, 0, // 25-28: orange
	156, 97, 0, 156, 166, 0, 156, 235, 0, 165, 44, 0, // 29-32: orange-yellow
	198, 166, 0, 231, 231, 0, 255, 239, 0, 255, 255, 0, // 33-36: yellow to white
}

// fireHash derives a pseudo-random word from position and frame time.
// It is stateless: the same (x, y, t) always hashes to the same value,
// which is what makes fire replay deterministic without stored RNG
// state.
func fireHash(x, y, t uint32) uint32 {
	h := x*374761393 + y*668265263 + t*2654435761
	h = (h ^ h>>13) * 1274126177
	return h ^ h>>16
}

// Fire is the one stateful kernel: a grid of cell intensities (0-36)
// that persists between frames and is mutated in place. A Fire must
// have a single owner; the kernel provides no internal locking.
type Fire struct {
	cells  []uint8
	width  int
	height int
}

// NewFire allocates the intensity grid and seeds it.
func NewFire(width, height int) *Fire {
	f := &Fire{
		cells:  make([]uint8, width*height),
		width:  width,
		height: height,
	}
	f.Reset()
	return f
}

// Reset clears the grid and re-seeds the bottom row at full heat. The
// first frames after a reset render mostly black until propagation has
// carried heat up the panel; that is expected, not a bug.
func (f *Fire) Reset() {
	for i := range f.cells {
		f.cells[i] = 0
	}
	base := (f.height - 1) * f.width
	for x := 0; x < f.width; x++ {
		f.cells[base+x] = MaxHeat
	}
}

// Render advances the flame one step and writes the RGB888 frame. Each
// cell above the bottom row pulls intensity from the row below with a
// hash-derived horizontal drift of -1/0/+1 and a cooling decay of 0-3,
// clamped at zero.
func (f *Fire) Render(dst []byte, t uint8) error {
	if err := frame.CheckPixels(dst, f.width, f.height, frame.RGB888); err != nil {
		return err
	}

	for y := 0; y < f.height-1; y++ {
		for x := 0; x < f.width; x++ {
			src := f.cells[(y+1)*f.width+x]

			rnd := fireHash(uint32(x), uint32(y), uint32(t))

			dstX := x - int(rnd&1) + int(rnd>>1&1)
			if dstX < 0 {
				dstX = 0
			}
			if dstX >= f.width {
				dstX = f.width - 1
			}

			v := int(src) - int(rnd>>2&3)
			if v < 0 {
				v = 0
			}

			f.cells[y*f.width+dstX] = uint8(v)
		}
	}

	for i, heat := range f.cells {
		if heat > MaxHeat {
			heat = MaxHeat
		}
		p := int(heat) * 3
		dst[i*3] = firePalette[p]
		dst[i*3+1] = firePalette[p+1]
		dst[i*3+2] = firePalette[p+2]
	}
	return nil
}
