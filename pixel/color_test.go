package pixel

import "testing"

func TestHSVToRGBGrayscale(t *testing.T) {
	for _, h := range []uint8{0, 31, 128, 255} {
		for _, v := range []uint8{0, 1, 127, 255} {
			r, g, b := HSVToRGB(h, 0, v)
			if r != v || g != v || b != v {
				t.Fatalf("HSVToRGB(%d, 0, %d) = (%d, %d, %d), want (%d, %d, %d)", h, v, r, g, b, v, v, v)
			}
		}
	}
}

func TestHSVToRGBRedValue(t *testing.T) {
	for _, v := range []uint8{0, 1, 64, 200, 255} {
		r, _, _ := HSVToRGB(0, 255, v)
		if r != v {
			t.Fatalf("HSVToRGB(0, 255, %d) r = %d, want %d", v, r, v)
		}
	}
}

func TestHSVToRGBSectorBoundaries(t *testing.T) {
	// Pure hues at the hexagon boundaries, within fixed-point rounding.
	const hi, lo = 250, 5
	cases := []struct {
		h       uint8
		name    string
		r, g, b bool // channel is high
	}{
		{0, "red", true, false, false},
		{43, "yellow", true, true, false},
		{85, "green", false, true, false},
		{128, "cyan", false, true, true},
		{170, "blue", false, false, true},
		{213, "magenta", true, false, true},
	}
	for _, tc := range cases {
		r, g, b := HSVToRGB(tc.h, 255, 255)
		for _, ch := range []struct {
			got  uint8
			high bool
		}{{r, tc.r}, {g, tc.g}, {b, tc.b}} {
			if ch.high && ch.got < hi {
				t.Fatalf("h=%d (%s): channel %d too low in (%d, %d, %d)", tc.h, tc.name, ch.got, r, g, b)
			}
			if !ch.high && ch.got > lo {
				t.Fatalf("h=%d (%s): channel %d too high in (%d, %d, %d)", tc.h, tc.name, ch.got, r, g, b)
			}
		}
	}
}

func TestHSVToRGB565MatchesRGB(t *testing.T) {
	for h := 0; h < 256; h += 7 {
		for _, s := range []uint8{0, 100, 255} {
			r, g, b := HSVToRGB(uint8(h), s, 255)
			want := RGB565(r, g, b)
			if got := HSVToRGB565(uint8(h), s, 255); got != want {
				t.Fatalf("HSVToRGB565(%d, %d, 255) = %#04x, want %#04x", h, s, got, want)
			}
		}
	}
}

func TestRGB565Extremes(t *testing.T) {
	if got := RGB565(0, 0, 0); got != 0 {
		t.Fatalf("RGB565(0,0,0) = %#04x, want 0", got)
	}
	if got := RGB565(255, 255, 255); got != 0xFFFF {
		t.Fatalf("RGB565(255,255,255) = %#04x, want 0xffff", got)
	}
	if got := RGB565(255, 0, 0); got != 0xF800 {
		t.Fatalf("RGB565(255,0,0) = %#04x, want 0xf800", got)
	}
	if got := RGB565(0, 255, 0); got != 0x07E0 {
		t.Fatalf("RGB565(0,255,0) = %#04x, want 0x07e0", got)
	}
	if got := RGB565(0, 0, 255); got != 0x001F {
		t.Fatalf("RGB565(0,0,255) = %#04x, want 0x001f", got)
	}
}

func TestRGB888From565Replication(t *testing.T) {
	// Channel extremes must expand to exact 0 and 255.
	r, g, b := RGB888From565(0)
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("RGB888From565(0) = (%d, %d, %d), want zeros", r, g, b)
	}
	r, g, b = RGB888From565(0xFFFF)
	if r != 255 || g != 255 || b != 255 {
		t.Fatalf("RGB888From565(0xffff) = (%d, %d, %d), want 255s", r, g, b)
	}

	// Expansion is monotonic in each channel.
	var prev uint8
	for v := 0; v < 32; v++ {
		r, _, _ := RGB888From565(uint16(v) << 11)
		if r < prev {
			t.Fatalf("red expansion not monotonic at %d: %d < %d", v, r, prev)
		}
		prev = r
	}
}
