//go:build !tinygo

// Command mkframe converts image files into raw RGB888 frame files (or
// binary P6 PPM) sized for a panel, ready to be loaded straight into
// the packer.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"hub75/internal/buildinfo"
)

func main() {
	var (
		version = flag.Bool("version", false, "Print the build version and exit.")
		width   = flag.Int("width", 64, "Panel width in pixels.")
		height  = flag.Int("height", 32, "Panel height in pixels.")
		outDir  = flag.String("out", ".", "Output directory.")
		asPPM   = flag.Bool("ppm", false, "Write binary P6 PPM instead of a raw frame.")
	)
	flag.Parse()

	if *version {
		fmt.Println("mkframe", buildinfo.Short())
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: mkframe [flags] image...")
		os.Exit(2)
	}

	for _, path := range flag.Args() {
		if err := convert(path, *outDir, *width, *height, *asPPM); err != nil {
			fmt.Fprintf(os.Stderr, "mkframe: %v\n", err)
			os.Exit(1)
		}
	}
}

func convert(path, outDir string, width, height int, asPPM bool) error {
	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}

	resized := imaging.Resize(img, width, height, imaging.Box)
	data := toRGB888(resized)

	ext := ".frame"
	if asPPM {
		ext = ".ppm"
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ext
	out := filepath.Join(outDir, name)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %q: %w", out, err)
	}
	defer f.Close()

	if asPPM {
		if _, err := fmt.Fprintf(f, "P6\n%d %d\n255\n", width, height); err != nil {
			return fmt.Errorf("write %q: %w", out, err)
		}
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %q: %w", out, err)
	}
	fmt.Printf("%s -> %s (%dx%d, %d bytes)\n", path, out, width, height, len(data))
	return nil
}

func toRGB888(img image.Image) []byte {
	b := img.Bounds()
	data := make([]byte, 0, b.Dx()*b.Dy()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			data = append(data, uint8(r>>8), uint8(g>>8), uint8(bl>>8))
		}
	}
	return data
}
