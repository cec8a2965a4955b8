package effects

import "math"

// Tables holds per-pixel polar coordinates for the spiral-family
// kernels: the angle around the panel center and the distance from it,
// both scaled to bytes. They are built once per dimension pair with
// floating point and then treated as constant; the kernels themselves
// never touch atan2 or sqrt.
type Tables struct {
	Angle  []uint8
	Radius []uint8
	width  int
	height int
}

// NewTables computes the angle/radius tables for a panel.
func NewTables(width, height int) *Tables {
	t := &Tables{
		Angle:  make([]uint8, width*height),
		Radius: make([]uint8, width*height),
		width:  width,
		height: height,
	}

	cx, cy := width/2, height/2
	maxRadius := math.Sqrt(float64(cx*cx + cy*cy))
	if maxRadius == 0 {
		maxRadius = 1
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx, dy := float64(x-cx), float64(y-cy)
			i := y*width + x

			angle := math.Atan2(dy, dx)
			t.Angle[i] = uint8(int((angle + math.Pi) * 255 / (2 * math.Pi)))

			radius := math.Sqrt(dx*dx + dy*dy)
			t.Radius[i] = uint8(int(radius * 255 / maxRadius))
		}
	}
	return t
}

func (t *Tables) Width() int  { return t.width }
func (t *Tables) Height() int { return t.height }
