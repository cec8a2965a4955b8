package bitplane

import (
	"bytes"
	"errors"
	"testing"

	"hub75/frame"
	"hub75/pixel"
)

var identity = pixel.BuildTable(pixel.Linear{}, 8)

func TestPackPixelPairExample(t *testing.T) {
	// 2x2 panel at depth 1: the top row pairs with the bottom row.
	src := []byte{
		255, 0, 0, 0, 255, 0, // top: red, green
		0, 0, 255, 255, 255, 255, // bottom: blue, white
	}
	dst := make([]byte, BufferSize(2, 2, 1))

	if err := Pack(dst, src, frame.RGB888, 2, 2, 1, &identity); err != nil {
		t.Fatalf("Pack() = %v, want nil", err)
	}

	if dst[0] != R1Bit|B2Bit {
		t.Fatalf("byte 0 = %#08b, want %#08b", dst[0], R1Bit|B2Bit)
	}
	if dst[1] != G1Bit|R2Bit|G2Bit|B2Bit {
		t.Fatalf("byte 1 = %#08b, want %#08b", dst[1], G1Bit|R2Bit|G2Bit|B2Bit)
	}
}

func TestPackZeroFrame(t *testing.T) {
	src := make([]byte, 4*4*3)
	dst := make([]byte, BufferSize(4, 4, 8))
	for i := range dst {
		dst[i] = 0xAB // stale content must be overwritten
	}

	if err := Pack(dst, src, frame.RGB888, 4, 4, 8, &identity); err != nil {
		t.Fatalf("Pack() = %v, want nil", err)
	}
	for i, b := range dst {
		if b != 0 {
			t.Fatalf("dst[%d] = %d, want 0", i, b)
		}
	}
}

func TestPackFullFrame(t *testing.T) {
	src := make([]byte, 4*4*3)
	for i := range src {
		src[i] = 255
	}
	dst := make([]byte, BufferSize(4, 4, 8))

	if err := Pack(dst, src, frame.RGB888, 4, 4, 8, &identity); err != nil {
		t.Fatalf("Pack() = %v, want nil", err)
	}
	for i, b := range dst {
		if b != PairMask {
			t.Fatalf("dst[%d] = %#08b, want %#08b", i, b, PairMask)
		}
	}
}

func TestPackPlaneLayout(t *testing.T) {
	// A single channel value of 0b10 sets only plane 1.
	src := make([]byte, 2*2*3)
	src[0] = 0b10 // top-left red
	dst := make([]byte, BufferSize(2, 2, 3))

	if err := Pack(dst, src, frame.RGB888, 2, 2, 3, &identity); err != nil {
		t.Fatalf("Pack() = %v, want nil", err)
	}

	planeSize := PlaneSize(2, 2)
	for p := 0; p < 3; p++ {
		want := uint8(0)
		if p == 1 {
			want = R1Bit
		}
		if got := dst[p*planeSize]; got != want {
			t.Fatalf("plane %d byte 0 = %#08b, want %#08b", p, got, want)
		}
	}
}

func TestPackReproducible(t *testing.T) {
	src := make([]byte, 8*4*3)
	for i := range src {
		src[i] = byte(i * 31)
	}
	a := make([]byte, BufferSize(8, 4, 6))
	b := make([]byte, BufferSize(8, 4, 6))

	gamma := pixel.BuildTable(pixel.Power{Exponent: 2.2}, 6)
	if err := Pack(a, src, frame.RGB888, 8, 4, 6, &gamma); err != nil {
		t.Fatalf("Pack() = %v, want nil", err)
	}
	if err := Pack(b, src, frame.RGB888, 8, 4, 6, &gamma); err != nil {
		t.Fatalf("Pack() = %v, want nil", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("identical inputs produced different bit-plane buffers")
	}
}

func TestPackRGB565MatchesExpandedRGB888(t *testing.T) {
	// Gamma runs after 565 expansion, so packing 565 directly must equal
	// expanding to 888 first and packing that.
	const w, h, depth = 4, 2, 8
	gamma := pixel.BuildTable(pixel.Power{Exponent: 2.2}, depth)

	pixels := []uint16{0xF800, 0x07E0, 0x001F, 0xFFFF, 0x0000, 0x8410, 0x1234, 0xABCD}

	src565 := make([]byte, 0, w*h*2)
	src888 := make([]byte, 0, w*h*3)
	for _, p := range pixels {
		src565 = append(src565, byte(p), byte(p>>8))
		r, g, b := pixel.RGB888From565(p)
		src888 = append(src888, r, g, b)
	}

	a := make([]byte, BufferSize(w, h, depth))
	b := make([]byte, BufferSize(w, h, depth))
	if err := Pack(a, src565, frame.RGB565, w, h, depth, &gamma); err != nil {
		t.Fatalf("Pack(RGB565) = %v, want nil", err)
	}
	if err := Pack(b, src888, frame.RGB888, w, h, depth, &gamma); err != nil {
		t.Fatalf("Pack(RGB888) = %v, want nil", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("RGB565 and expanded RGB888 paths disagree")
	}
}

func TestPackSizeErrors(t *testing.T) {
	dst := make([]byte, BufferSize(4, 4, 8))

	// Input off by one byte.
	err := Pack(dst, make([]byte, 4*4*3-1), frame.RGB888, 4, 4, 8, &identity)
	if !errors.Is(err, frame.ErrSize) {
		t.Fatalf("Pack(short input) = %v, want size error", err)
	}

	// Output mismatch.
	err = Pack(make([]byte, len(dst)-1), make([]byte, 4*4*3), frame.RGB888, 4, 4, 8, &identity)
	if !errors.Is(err, frame.ErrSize) {
		t.Fatalf("Pack(short output) = %v, want size error", err)
	}

	var se *frame.SizeError
	if !errors.As(err, &se) {
		t.Fatalf("errors.As(*SizeError) = false for %v", err)
	}
	if se.Want != BufferSize(4, 4, 8) {
		t.Fatalf("SizeError.Want = %d, want %d", se.Want, BufferSize(4, 4, 8))
	}
}

func TestPackNoPartialOutput(t *testing.T) {
	dst := make([]byte, BufferSize(4, 4, 8))
	for i := range dst {
		dst[i] = 0xEE
	}
	if err := Pack(dst, make([]byte, 5), frame.RGB888, 4, 4, 8, &identity); err == nil {
		t.Fatalf("Pack(bad input) = nil, want error")
	}
	for i, b := range dst {
		if b != 0xEE {
			t.Fatalf("dst[%d] modified to %d after failed Pack", i, b)
		}
	}
}

func TestPackOddHeight(t *testing.T) {
	err := Pack(make([]byte, 6), make([]byte, 2*3*3), frame.RGB888, 2, 3, 2, &identity)
	if !errors.Is(err, frame.ErrOddHeight) {
		t.Fatalf("Pack(odd height) = %v, want ErrOddHeight", err)
	}
}

func TestClear(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	Clear(buf)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d] = %d after Clear, want 0", i, b)
		}
	}
}

func BenchmarkPackRGB888(b *testing.B) {
	const w, h, depth = 64, 32, 8
	src := make([]byte, w*h*3)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, BufferSize(w, h, depth))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Pack(dst, src, frame.RGB888, w, h, depth, &identity); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPackRGB565(b *testing.B) {
	const w, h, depth = 64, 32, 8
	src := make([]byte, w*h*2)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, BufferSize(w, h, depth))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Pack(dst, src, frame.RGB565, w, h, depth, &identity); err != nil {
			b.Fatal(err)
		}
	}
}
