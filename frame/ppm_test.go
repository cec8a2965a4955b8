package frame

import (
	"bytes"
	"strings"
	"testing"
)

func TestParsePPMP6(t *testing.T) {
	payload := []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	}
	buf := append([]byte("P6\n# a comment\n2 2\n255\n"), payload...)

	img, err := ParsePPM(buf)
	if err != nil {
		t.Fatalf("ParsePPM() = %v, want nil", err)
	}
	if img.Magic != "P6" || img.Width != 2 || img.Height != 2 || img.MaxValue != 255 {
		t.Fatalf("header = %q %dx%d max %d, want P6 2x2 max 255", img.Magic, img.Width, img.Height, img.MaxValue)
	}
	if !bytes.Equal(img.Data, payload) {
		t.Fatalf("payload mismatch")
	}

	f, err := img.Frame()
	if err != nil {
		t.Fatalf("Frame() = %v, want nil", err)
	}
	if !bytes.Equal(f.Data(), payload) {
		t.Fatalf("frame data mismatch for max value 255")
	}
}

func TestParsePPMCRLF(t *testing.T) {
	buf := append([]byte("P6\r\n2 1\r\n255\r\n"), 1, 2, 3, 4, 5, 6)
	img, err := ParsePPM(buf)
	if err != nil {
		t.Fatalf("ParsePPM() = %v, want nil", err)
	}
	if img.Width != 2 || img.Height != 1 {
		t.Fatalf("dims = %dx%d, want 2x1", img.Width, img.Height)
	}
	if len(img.Data) != 6 {
		t.Fatalf("payload length = %d, want 6", len(img.Data))
	}
}

func TestParsePPMTwoBytesPerChannel(t *testing.T) {
	payload := []byte{
		0xFF, 0xFF, 0x80, 0x00, 0x00, 0x00,
	}
	buf := append([]byte("P6\n1 1\n65535\n"), payload...)

	img, err := ParsePPM(buf)
	if err != nil {
		t.Fatalf("ParsePPM() = %v, want nil", err)
	}
	f, err := img.Frame()
	if err != nil {
		t.Fatalf("Frame() = %v, want nil", err)
	}
	d := f.Data()
	if d[0] != 255 {
		t.Fatalf("channel 0 = %d, want 255", d[0])
	}
	if d[1] != 127 {
		t.Fatalf("channel 1 = %d, want 127", d[1])
	}
	if d[2] != 0 {
		t.Fatalf("channel 2 = %d, want 0", d[2])
	}
}

func TestParsePPMSmallMaxValue(t *testing.T) {
	buf := append([]byte("P6\n1 1\n15\n"), 15, 0, 7)
	img, err := ParsePPM(buf)
	if err != nil {
		t.Fatalf("ParsePPM() = %v, want nil", err)
	}
	f, err := img.Frame()
	if err != nil {
		t.Fatalf("Frame() = %v, want nil", err)
	}
	d := f.Data()
	if d[0] != 255 || d[1] != 0 || d[2] != 7*255/15 {
		t.Fatalf("scaled = (%d, %d, %d), want (255, 0, %d)", d[0], d[1], d[2], 7*255/15)
	}
}

func TestParsePPMGrayscaleAndBitmap(t *testing.T) {
	p5 := append([]byte("P5\n3 2\n255\n"), 1, 2, 3, 4, 5, 6)
	img, err := ParsePPM(p5)
	if err != nil {
		t.Fatalf("ParsePPM(P5) = %v, want nil", err)
	}
	if img.Magic != "P5" || len(img.Data) != 6 {
		t.Fatalf("P5 = %q with %d payload bytes, want 6", img.Magic, len(img.Data))
	}

	p4 := append([]byte("P4\n10 1\n"), 0xAA, 0x80)
	img, err = ParsePPM(p4)
	if err != nil {
		t.Fatalf("ParsePPM(P4) = %v, want nil", err)
	}
	if img.Magic != "P4" || len(img.Data) != 2 {
		t.Fatalf("P4 = %q with %d payload bytes, want 2", img.Magic, len(img.Data))
	}
	if _, err := img.Frame(); err == nil {
		t.Fatalf("Frame() on P4 = nil error, want error")
	}
}

func TestParsePPMTruncatedPayload(t *testing.T) {
	buf := append([]byte("P6\n2 2\n255\n"), 1, 2, 3)
	_, err := ParsePPM(buf)
	if err == nil || !strings.Contains(err.Error(), "incomplete") {
		t.Fatalf("ParsePPM(truncated) = %v, want incomplete error", err)
	}
}

func TestParsePPMBadMagic(t *testing.T) {
	if _, err := ParsePPM([]byte("X6\n1 1\n255\n")); err == nil {
		t.Fatalf("ParsePPM(bad magic) = nil, want error")
	}
	if _, err := ParsePPM([]byte("P7\n1 1\n255\n")); err == nil {
		t.Fatalf("ParsePPM(P7) = nil, want error")
	}
}
