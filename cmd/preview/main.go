//go:build !tinygo

// Command preview runs the procedural effects on a simulated panel in a
// desktop window. Every frame still goes through the full pipeline:
// kernel, gamma table, bit-plane packer, buffer flip.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"

	"hub75/driver"
	"hub75/effects"
	"hub75/internal/buildinfo"
	"hub75/pixel"
)

func main() {
	var (
		version   = flag.Bool("version", false, "Print the build version and exit.")
		width     = flag.Int("width", 64, "Panel width in pixels.")
		height    = flag.Int("height", 32, "Panel height in pixels (even).")
		bitDepth  = flag.Int("depth", 8, "Color bit depth (1-8).")
		effect    = flag.String("effect", "balatro", "Effect: plasma, fire, spiral, balatro.")
		spin      = flag.Int("spin", 4, "Balatro spin speed.")
		warp      = flag.Int("warp", 14, "Balatro warp amount.")
		tightness = flag.Int("tightness", 4, "Spiral tightness.")
		gammaExp  = flag.Float64("gamma", 2.2, "Power gamma exponent (1.0 = identity).")
		scale     = flag.Int("scale", 8, "Window pixels per panel pixel.")
		headless  = flag.Bool("headless", false, "Run without a window.")
		hz        = flag.Int("hz", 60, "Tick rate in headless mode.")
		ticks     = flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	)
	flag.Parse()

	if *version {
		fmt.Println("preview", buildinfo.Short())
		return
	}

	if err := run(*width, *height, *bitDepth, *effect, *spin, *warp, *tightness, *gammaExp, *scale, *headless, *hz, *ticks); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(width, height, bitDepth int, effectName string, spin, warp, tightness int, gammaExp float64, scale int, headless bool, hz int, ticks uint64) error {
	e, err := effects.ParseEffect(effectName)
	if err != nil {
		return err
	}

	drv, err := driver.New(driver.Config{
		Width:    width,
		Height:   height,
		BitDepth: bitDepth,
		Curve:    pixel.Power{Exponent: gammaExp},
	})
	if err != nil {
		return err
	}

	runner := effects.NewRunner(width, height)
	runner.SpinSpeed = uint8(spin)
	runner.WarpAmount = uint8(warp)
	runner.Tightness = uint8(tightness)
	runner.SetEffect(e)

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := runHeadless(ctx, runner, drv, hz, ticks)
		if err == context.Canceled {
			return nil
		}
		return err
	}

	g := &game{runner: runner, drv: drv, width: width, height: height}
	ebiten.SetWindowTitle("hub75 preview (" + e.String() + ")")
	ebiten.SetWindowSize(width*scale, height*scale)
	ebiten.SetTPS(hz)
	return ebiten.RunGame(g)
}

func runHeadless(ctx context.Context, runner *effects.Runner, drv *driver.Driver, hz int, ticks uint64) error {
	if ticks == 0 {
		return runner.Run(ctx, drv, hz)
	}

	for i := uint64(0); i < ticks; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := runner.Step(drv); err != nil {
			return err
		}
	}
	fmt.Printf("rendered %d frames, estimated refresh rate %.1f Hz\n", ticks, drv.RefreshRate())
	return nil
}

type game struct {
	runner *effects.Runner
	drv    *driver.Driver
	width  int
	height int

	rgb   []byte
	img   *image.RGBA
	fbImg *ebiten.Image
}

func (g *game) Update() error {
	buf, err := g.runner.Frame()
	if err != nil {
		return err
	}
	if err := g.drv.LoadRGB888(buf); err != nil {
		return err
	}
	if err := g.drv.Flip(); err != nil {
		return err
	}
	g.rgb = buf
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.rgb == nil {
		return
	}
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, g.width, g.height))
		g.fbImg = ebiten.NewImage(g.width, g.height)
	}

	src := g.rgb
	dst := g.img.Pix
	for i := 0; i*3+2 < len(src); i++ {
		dst[i*4] = src[i*3]
		dst[i*4+1] = src[i*3+1]
		dst[i*4+2] = src[i*3+2]
		dst[i*4+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
