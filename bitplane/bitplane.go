// Package bitplane re-encodes RGB pixel buffers into the bit-plane
// layout consumed by dual-scan HUB75 panels under binary code
// modulation. One output byte carries one pixel pair, the pixel on the
// top half of the panel and the one directly below it on the bottom
// half; plane p holds bit p of every channel, least significant plane
// first.
package bitplane

import (
	"hub75/frame"
	"hub75/pixel"
)

// Pin-bit layout of a packed pixel pair. The least significant bits
// correspond with the lowest data pins: R1 on pin 0, G1 on pin 1, and
// so on.
const (
	R1Bit uint8 = 1 << iota
	G1Bit
	B1Bit
	R2Bit
	G2Bit
	B2Bit

	// PairMask covers every valid pin bit of a packed byte.
	PairMask = R1Bit | G1Bit | B1Bit | R2Bit | G2Bit | B2Bit
)

// PlaneSize returns the byte count of a single bit-plane: one byte per
// pixel pair.
func PlaneSize(width, height int) int {
	return width * height / 2
}

// BufferSize returns the byte count of a full bit-plane buffer.
func BufferSize(width, height, bitDepth int) int {
	return PlaneSize(width, height) * bitDepth
}

// Pack transcodes src into dst, applying the gamma table to every
// channel value. src holds width*height pixels in the given encoding;
// dst holds bitDepth planes. Both lengths are validated before any
// byte is written, so a failed Pack never leaves partial output.
func Pack(dst, src []byte, enc frame.Encoding, width, height, bitDepth int, gamma *pixel.Table) error {
	if height%2 != 0 {
		return frame.ErrOddHeight
	}
	if err := frame.CheckPixels(src, width, height, enc); err != nil {
		return err
	}
	planeSize := PlaneSize(width, height)
	if err := frame.Check(dst, planeSize*bitDepth); err != nil {
		return err
	}

	if enc == frame.RGB565 {
		packRGB565(dst, src, planeSize, bitDepth, gamma)
	} else {
		packRGB888(dst, src, planeSize, bitDepth, gamma)
	}
	return nil
}

func packRGB888(dst, src []byte, planeSize, bitDepth int, gamma *pixel.Table) {
	for i := 0; i < planeSize; i++ {
		top := i * 3
		bottom := (i + planeSize) * 3

		r1 := gamma[src[top]]
		g1 := gamma[src[top+1]]
		b1 := gamma[src[top+2]]

		r2 := gamma[src[bottom]]
		g2 := gamma[src[bottom+1]]
		b2 := gamma[src[bottom+2]]

		packPair(dst[i:], r1, g1, b1, r2, g2, b2, planeSize, bitDepth)
	}
}

func packRGB565(dst, src []byte, planeSize, bitDepth int, gamma *pixel.Table) {
	for i := 0; i < planeSize; i++ {
		top := i * 2
		bottom := (i + planeSize) * 2

		r1, g1, b1 := pixel.RGB888From565(uint16(src[top]) | uint16(src[top+1])<<8)
		r2, g2, b2 := pixel.RGB888From565(uint16(src[bottom]) | uint16(src[bottom+1])<<8)

		// Gamma is applied after full 8-bit reconstruction, so the
		// replication artifacts are corrected together with real color.
		r1 = gamma[r1]
		g1 = gamma[g1]
		b1 = gamma[b1]

		r2 = gamma[r2]
		g2 = gamma[g2]
		b2 = gamma[b2]

		packPair(dst[i:], r1, g1, b1, r2, g2, b2, planeSize, bitDepth)
	}
}

func packPair(dst []byte, r1, g1, b1, r2, g2, b2 uint8, planeSize, bitDepth int) {
	for p := 0; p < bitDepth; p++ {
		dst[p*planeSize] = (r1>>p&1)*R1Bit |
			(g1>>p&1)*G1Bit |
			(b1>>p&1)*B1Bit |
			(r2>>p&1)*R2Bit |
			(g2>>p&1)*G2Bit |
			(b2>>p&1)*B2Bit
	}
}

// Clear zeroes a bit-plane buffer.
func Clear(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
