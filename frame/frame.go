// Package frame defines the pixel buffer encodings and validates every
// caller-supplied buffer before a kernel touches it. A length mismatch
// is reported here and only here, before any byte is written.
package frame

import (
	"errors"
	"fmt"
)

// Encoding identifies the byte layout of a pixel buffer.
type Encoding uint8

const (
	// RGB888 is 3 bytes per pixel: R, G, B, each 0-255.
	RGB888 Encoding = iota + 1
	// RGB565 is 2 bytes per pixel, little-endian, rrrrrggggggbbbbb.
	RGB565
)

// BytesPerPixel returns the per-pixel byte count of the encoding.
func (e Encoding) BytesPerPixel() int {
	if e == RGB565 {
		return 2
	}
	return 3
}

func (e Encoding) String() string {
	switch e {
	case RGB888:
		return "RGB888"
	case RGB565:
		return "RGB565"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

// ErrSize matches any SizeError via errors.Is.
var ErrSize = errors.New("buffer size mismatch")

// ErrOddHeight reports a panel height that cannot be split into the two
// simultaneously driven halves the hardware requires.
var ErrOddHeight = errors.New("panel height must be even")

// SizeError reports a buffer whose length does not match the dimensions
// and encoding implied by the operation. Buffers are never truncated or
// padded to fit.
type SizeError struct {
	Want int
	Got  int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("buffer size mismatch: want %d bytes, got %d", e.Want, e.Got)
}

func (e *SizeError) Is(target error) bool { return target == ErrSize }

// Check validates an exact byte length.
func Check(buf []byte, want int) error {
	if len(buf) != want {
		return &SizeError{Want: want, Got: len(buf)}
	}
	return nil
}

// CheckPixels validates a pixel buffer against panel dimensions.
func CheckPixels(buf []byte, width, height int, enc Encoding) error {
	return Check(buf, width*height*enc.BytesPerPixel())
}

// Frame is a full-panel RGB888 pixel buffer.
type Frame struct {
	data   []byte
	width  int
	height int
}

// New allocates a zeroed frame.
func New(width, height int) *Frame {
	return &Frame{
		data:   make([]byte, width*height*RGB888.BytesPerPixel()),
		width:  width,
		height: height,
	}
}

// FromBytes wraps an existing RGB888 buffer, validating its length.
func FromBytes(data []byte, width, height int) (*Frame, error) {
	if err := CheckPixels(data, width, height, RGB888); err != nil {
		return nil, err
	}
	return &Frame{data: data, width: width, height: height}, nil
}

func (f *Frame) Data() []byte { return f.data }
func (f *Frame) Width() int   { return f.width }
func (f *Frame) Height() int  { return f.height }

// SetRGB writes one pixel. Out-of-bounds coordinates are ignored.
func (f *Frame) SetRGB(x, y int, r, g, b uint8) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 3
	f.data[i] = r
	f.data[i+1] = g
	f.data[i+2] = b
}

// Clear zeroes the frame.
func (f *Frame) Clear() {
	for i := range f.data {
		f.data[i] = 0
	}
}
