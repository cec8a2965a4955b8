package driver

import (
	"image/color"

	"tinygo.org/x/drivers"

	"hub75/frame"
)

var _ drivers.Displayer = (*Canvas)(nil)

// Canvas adapts a driver to the tinygo drivers.Displayer interface: a
// per-pixel drawing surface whose Display packs the accumulated frame
// and flips. Drawing targets an internal RGB888 frame, so graphics
// helpers written against Displayer can paint a panel without knowing
// about bit-planes.
type Canvas struct {
	d *Driver
	f *frame.Frame
}

// Canvas returns the drawing adapter, allocating the staging frame on
// first use.
func (d *Driver) Canvas() *Canvas {
	return &Canvas{d: d, f: frame.New(d.width, d.height)}
}

// Frame exposes the canvas's backing frame.
func (c *Canvas) Frame() *frame.Frame { return c.f }

func (c *Canvas) Size() (x, y int16) {
	return int16(c.f.Width()), int16(c.f.Height())
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.f.SetRGB(int(x), int(y), col.R, col.G, col.B)
}

// Display packs the canvas frame into the staging buffer and flips.
func (c *Canvas) Display() error {
	if err := c.d.LoadFrame(c.f); err != nil {
		return err
	}
	return c.d.Flip()
}
