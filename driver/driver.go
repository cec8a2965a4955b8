// Package driver is the boundary between the transcoding core and the
// display hardware: it owns the double-buffered bit-plane frames, packs
// incoming pixel buffers into the staging buffer, and swaps buffers so
// an output backend can stream the completed one while the next is
// being built. The electrical signalling itself lives behind the Output
// interface.
package driver

import (
	"errors"
	"sync/atomic"

	"hub75/bitplane"
	"hub75/frame"
	"hub75/pixel"
)

// DefaultDataFrequency is the panel shift clock in Hz.
const DefaultDataFrequency = 20_000_000

// Output streams a completed bit-plane buffer to panel hardware. Show
// is called with the front buffer after every flip; the driver never
// writes to a buffer it has shown until the next flip returns it to
// staging.
type Output interface {
	Show(bitplanes []byte) error
}

// Config carries the panel geometry and initial correction settings.
// The zero value of the optional fields selects the defaults noted on
// each field.
type Config struct {
	Width  int
	Height int // must be even

	BitDepth int         // planes per channel, 1-8; default 8
	Curve    pixel.Curve // gamma curve; default pixel.Power{Exponent: 2.2}

	Brightness        float64 // 0-1; default 1.0
	BlankingTimeNS    int     // extra off time per bit-frame, nanoseconds
	DataFrequency     int     // shift clock in Hz; default DefaultDataFrequency
	SystemFrequency   int     // core clock in Hz; default 125 MHz
	TargetRefreshRate float64 // default 120 Hz

	Output Output // optional
}

// Driver owns two bit-plane buffers: the front one belongs to the
// output backend, the staging one to the packer. Only Flip moves
// buffers between the two roles.
type Driver struct {
	width    int
	height   int
	bitDepth int

	gamma pixel.Table
	curve pixel.Curve

	brightness float64
	blankingNS int
	baseCycles int
	sysFreq    int
	dataFreq   int
	timing     []uint32

	bufs   [2][]byte
	active atomic.Uint32

	out Output
}

// New allocates the buffers and timing tables for a panel.
func New(cfg Config) (*Driver, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.New("panel dimensions must be positive")
	}
	if cfg.Height%2 != 0 {
		return nil, frame.ErrOddHeight
	}

	bitDepth := cfg.BitDepth
	if bitDepth == 0 {
		bitDepth = 8
	}
	if bitDepth < 1 || bitDepth > 8 {
		return nil, errors.New("bit depth must be between 1 and 8")
	}

	curve := cfg.Curve
	if curve == nil {
		curve = pixel.Power{Exponent: 2.2}
	}

	brightness := cfg.Brightness
	if brightness == 0 {
		brightness = 1.0
	}
	brightness = clamp01(brightness)

	dataFreq := cfg.DataFrequency
	if dataFreq <= 0 {
		dataFreq = DefaultDataFrequency
	}
	sysFreq := cfg.SystemFrequency
	if sysFreq <= 0 {
		sysFreq = 125_000_000
	}
	target := cfg.TargetRefreshRate
	if target <= 0 {
		target = 120
	}

	size := bitplane.BufferSize(cfg.Width, cfg.Height, bitDepth)
	d := &Driver{
		width:      cfg.Width,
		height:     cfg.Height,
		bitDepth:   bitDepth,
		curve:      curve,
		gamma:      pixel.BuildTable(curve, bitDepth),
		brightness: brightness,
		blankingNS: max(0, cfg.BlankingTimeNS),
		sysFreq:    sysFreq,
		dataFreq:   dataFreq,
		timing:     make([]uint32, bitDepth*2),
		out:        cfg.Output,
	}
	d.bufs[0] = make([]byte, size)
	d.bufs[1] = make([]byte, size)

	d.SetTargetRefreshRate(target)
	return d, nil
}

func (d *Driver) Width() int    { return d.width }
func (d *Driver) Height() int   { return d.height }
func (d *Driver) BitDepth() int { return d.bitDepth }

// SetOutput attaches the output backend that receives the front buffer
// on every flip. Attach before the first Flip.
func (d *Driver) SetOutput(out Output) { d.out = out }

// Gamma returns the active correction table.
func (d *Driver) Gamma() *pixel.Table { return &d.gamma }

// SetCurve rebuilds the gamma table; the next Load uses it.
func (d *Driver) SetCurve(c pixel.Curve) {
	d.curve = c
	d.gamma = pixel.BuildTable(c, d.bitDepth)
}

// LoadRGB888 packs an RGB888 pixel buffer into the staging buffer.
func (d *Driver) LoadRGB888(data []byte) error {
	return bitplane.Pack(d.staging(), data, frame.RGB888, d.width, d.height, d.bitDepth, &d.gamma)
}

// LoadRGB565 packs an RGB565 pixel buffer into the staging buffer.
func (d *Driver) LoadRGB565(data []byte) error {
	return bitplane.Pack(d.staging(), data, frame.RGB565, d.width, d.height, d.bitDepth, &d.gamma)
}

// LoadFrame packs a frame into the staging buffer.
func (d *Driver) LoadFrame(f *frame.Frame) error {
	return d.LoadRGB888(f.Data())
}

// Clear zeroes the staging buffer.
func (d *Driver) Clear() {
	bitplane.Clear(d.staging())
}

// Flip promotes the staging buffer to the front and hands it to the
// output backend if one is configured.
func (d *Driver) Flip() error {
	d.active.Store(1 - d.active.Load())
	if d.out == nil {
		return nil
	}
	return d.out.Show(d.Front())
}

// Front returns the buffer currently owned by the output side.
func (d *Driver) Front() []byte { return d.bufs[d.active.Load()] }

func (d *Driver) staging() []byte { return d.bufs[1-d.active.Load()] }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
