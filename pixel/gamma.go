package pixel

import "math"

// A Curve maps a linear channel fraction in [0,1] to a corrected
// fraction in [0,1]. Curves only run at table build time; the hot path
// sees the finished byte table.
type Curve interface {
	Correct(x float64) float64
}

// Linear is the identity curve (no correction).
type Linear struct{}

func (Linear) Correct(x float64) float64 { return x }

// Power is a pure power-law curve with a configurable exponent.
// Exponents below zero are treated as zero, matching a clamped config.
type Power struct {
	Exponent float64
}

func (c Power) Correct(x float64) float64 {
	if x == 0 {
		return 0
	}
	e := c.Exponent
	if e < 0 {
		e = 0
	}
	return math.Pow(x, e)
}

// SRGB is the perceptual sRGB decode curve: a linear toe followed by a
// 2.4 power segment.
type SRGB struct{}

func (SRGB) Correct(x float64) float64 {
	if x <= 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

// Table is a 256-entry gamma lookup table. Entries are monotonically
// non-decreasing and Table[0] is always 0. A Table is immutable once
// built and safe for any number of concurrent readers.
type Table [256]uint8

// BuildTable computes the lookup table for a curve at the given output
// bit depth (1-8, values outside that range are clamped).
//
// Each entry is round(255*curve(i/255)) quantized to the levels the
// hardware can show at that depth, then re-expanded to a full-range
// byte so the packer always indexes and stores 8-bit values. At depth 8
// the quantization is the identity.
func BuildTable(c Curve, bitDepth int) Table {
	if bitDepth < 1 {
		bitDepth = 1
	} else if bitDepth > 8 {
		bitDepth = 8
	}
	if c == nil {
		c = Linear{}
	}

	maxLevel := 1<<bitDepth - 1

	var t Table
	for i := 0; i < 256; i++ {
		v := int(math.Round(255 * c.Correct(float64(i)/255)))
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		level := (v*maxLevel + 127) / 255
		t[i] = uint8((level*255 + maxLevel/2) / maxLevel)
	}
	return t
}
