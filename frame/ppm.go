package frame

import (
	"errors"
	"fmt"
)

// PPM is a parsed netpbm image: the raw payload plus enough header to
// interpret it. Supported formats are P4 (bitmap), P5 (grayscale) and
// P6 (color), all in their binary variants.
type PPM struct {
	Magic    string
	Width    int
	Height   int
	MaxValue int // 0 for P4
	Data     []byte
}

// ParsePPM decodes a binary netpbm header and validates that the
// payload is complete. The payload is not copied.
func ParsePPM(buf []byte) (*PPM, error) {
	c := &cursor{buf: buf}

	magic, err := parseMagic(c)
	if err != nil {
		return nil, err
	}

	if err := skipTrivia(c); err != nil {
		return nil, err
	}
	width, err := parseNumber(c)
	if err != nil {
		return nil, err
	}

	if err := skipTrivia(c); err != nil {
		return nil, err
	}
	height, err := parseNumber(c)
	if err != nil {
		return nil, err
	}

	imageSize := width * height
	maxValue := 0
	var expected int

	switch magic {
	case "P4":
		expected = (imageSize + 7) / 8
	case "P5", "P6":
		if err := skipTrivia(c); err != nil {
			return nil, err
		}
		maxValue, err = parseNumber(c)
		if err != nil {
			return nil, err
		}
		bytesPerChannel := 1
		if maxValue >= 256 {
			bytesPerChannel = 2
		}
		expected = bytesPerChannel * imageSize
		if magic == "P6" {
			expected *= 3
		}
	default:
		return nil, fmt.Errorf("unsupported netpbm format %q", magic)
	}

	// The netpbm formats allow exactly one whitespace character between
	// the header and the payload.
	if err := skipWhitespace(c); err != nil {
		return nil, err
	}

	data := c.rest()
	if len(data) < expected {
		return nil, fmt.Errorf("ppm image data is incomplete: expected %d bytes, got %d", expected, len(data))
	}

	return &PPM{
		Magic:    magic,
		Width:    width,
		Height:   height,
		MaxValue: maxValue,
		Data:     data[:expected],
	}, nil
}

// Frame converts a P6 image to a full-range RGB888 frame, scaling each
// channel from the image's max value (1- or 2-byte channels).
func (p *PPM) Frame() (*Frame, error) {
	if p.Magic != "P6" {
		return nil, fmt.Errorf("format %q not supported as a frame source", p.Magic)
	}
	if p.MaxValue <= 0 {
		return nil, errors.New("'P6' requires a positive max value")
	}

	bytesPerChannel := 1
	if p.MaxValue >= 256 {
		bytesPerChannel = 2
	}

	f := New(p.Width, p.Height)
	out := f.Data()
	in := p.Data
	for i := range out {
		var v int
		if bytesPerChannel == 1 {
			v = int(in[i])
		} else {
			v = int(in[i*2])<<8 | int(in[i*2+1])
		}
		out[i] = uint8(v * 255 / p.MaxValue)
	}
	return f, nil
}

// cursor walks a byte buffer with position-carrying errors.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) current() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, fmt.Errorf("ppm parse: unexpected EOF at position %d", c.pos)
	}
	return c.buf[c.pos], nil
}

func (c *cursor) next() bool {
	if c.pos >= len(c.buf) {
		return false
	}
	c.pos++
	return true
}

func (c *cursor) rest() []byte {
	return c.buf[c.pos:]
}

func (c *cursor) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if b, err := c.current(); err == nil {
		return fmt.Errorf("ppm parse: %s, character %q, position %d", msg, b, c.pos)
	}
	return fmt.Errorf("ppm parse: %s, position %d", msg, c.pos)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isNewline(b byte) bool { return b == '\r' || b == '\n' }

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\n', '\r', '\t', '\v', '\f':
		return true
	}
	return false
}

func parseMagic(c *cursor) (string, error) {
	b, err := c.current()
	if err != nil {
		return "", err
	}
	if b != 'P' {
		return "", c.errorf("magic number must begin with 'P'")
	}
	if !c.next() {
		return "", c.errorf("unexpected EOF while parsing magic number")
	}
	n, err := parseNumber(c)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("P%d", n), nil
}

func parseNumber(c *cursor) (int, error) {
	b, err := c.current()
	if err != nil {
		return 0, err
	}
	if !isDigit(b) {
		return 0, c.errorf("expected digit while parsing number")
	}

	n := int(b - '0')
	for c.next() {
		b, err := c.current()
		if err != nil || !isDigit(b) {
			break
		}
		n = n*10 + int(b-'0')
	}
	return n, nil
}

func skipTrivia(c *cursor) error {
	skipped := false
	for {
		b, err := c.current()
		if err != nil {
			return err
		}
		if b == '#' {
			if err := skipComment(c); err != nil {
				return err
			}
			skipped = true
			continue
		}
		if isWhitespace(b) {
			if err := skipWhitespace(c); err != nil {
				return err
			}
			skipped = true
			continue
		}
		break
	}
	if !skipped {
		return c.errorf("expected comment or whitespace")
	}
	return nil
}

func skipComment(c *cursor) error {
	for {
		b, err := c.current()
		if err != nil {
			return err
		}
		if isNewline(b) {
			return skipNewline(c)
		}
		if !c.next() {
			return c.errorf("unexpected EOF while skipping comment")
		}
	}
}

func skipWhitespace(c *cursor) error {
	b, err := c.current()
	if err != nil {
		return err
	}
	if !isWhitespace(b) {
		return c.errorf("expected whitespace to skip")
	}
	if isNewline(b) {
		return skipNewline(c)
	}
	if !c.next() {
		return c.errorf("unexpected EOF while skipping whitespace")
	}
	return nil
}

func skipNewline(c *cursor) error {
	first, err := c.current()
	if err != nil {
		return err
	}
	if !isNewline(first) {
		return c.errorf("expected newline to skip")
	}
	if !c.next() {
		return c.errorf("unexpected EOF while skipping newline")
	}
	// A '\r\n' pair counts as one newline.
	if b, err := c.current(); err == nil && first == '\r' && b == '\n' {
		if !c.next() {
			return c.errorf("unexpected EOF while skipping newline")
		}
	}
	return nil
}
