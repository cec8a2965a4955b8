package effects

import (
	"context"
	"fmt"
	"time"

	"hub75/frame"
)

// Effect identifies one of the built-in procedural effects.
type Effect uint8

const (
	Plasma8 Effect = iota + 1
	Fire8
	Spiral8
	Balatro8
)

func (e Effect) String() string {
	switch e {
	case Plasma8:
		return "plasma"
	case Fire8:
		return "fire"
	case Spiral8:
		return "spiral"
	case Balatro8:
		return "balatro"
	default:
		return fmt.Sprintf("Effect(%d)", uint8(e))
	}
}

// ParseEffect maps an effect name to its identifier.
func ParseEffect(name string) (Effect, error) {
	switch name {
	case "plasma":
		return Plasma8, nil
	case "fire":
		return Fire8, nil
	case "spiral":
		return Spiral8, nil
	case "balatro":
		return Balatro8, nil
	}
	return 0, fmt.Errorf("unknown effect %q", name)
}

// Target receives finished RGB888 frames. The display driver satisfies
// it; tests use fakes.
type Target interface {
	LoadRGB888(data []byte) error
	Flip() error
}

// Runner owns the per-session state of the built-in effects: the RGB888
// staging buffer, the fire intensity grid and the lazily built polar
// tables. It renders one frame per Step and advances its own frame
// counter. A Runner is single-owner; it must not be stepped
// concurrently.
type Runner struct {
	width  int
	height int
	rgb    []byte
	fire   *Fire
	tables *Tables

	effect Effect
	t      uint32

	// Adjustable while running.
	SpinSpeed  uint8
	WarpAmount uint8
	Tightness  uint8
}

// NewRunner allocates a runner for the given panel dimensions.
func NewRunner(width, height int) *Runner {
	return &Runner{
		width:      width,
		height:     height,
		rgb:        make([]byte, width*height*frame.RGB888.BytesPerPixel()),
		effect:     Plasma8,
		SpinSpeed:  4,
		WarpAmount: 14,
		Tightness:  4,
	}
}

// SetEffect switches the active effect, building the tables the new
// effect needs. Entering the fire effect restarts it from its seeded
// cold state.
func (r *Runner) SetEffect(e Effect) {
	switch e {
	case Spiral8, Balatro8:
		if r.tables == nil {
			r.tables = NewTables(r.width, r.height)
		}
	case Fire8:
		if r.fire == nil {
			r.fire = NewFire(r.width, r.height)
		} else {
			r.fire.Reset()
		}
	}
	r.effect = e
}

// Effect returns the active effect.
func (r *Runner) Effect() Effect { return r.effect }

// Frame renders the next frame into the staging buffer and returns it.
// The buffer is owned by the runner and overwritten on the next call.
func (r *Runner) Frame() ([]byte, error) {
	t := r.t
	r.t++

	var err error
	switch r.effect {
	case Fire8:
		err = r.fire.Render(r.rgb, uint8(t))
	case Spiral8:
		err = Spiral(r.rgb, r.tables, uint8(t), r.Tightness)
	case Balatro8:
		err = Balatro(r.rgb, r.tables, r.width, r.height, uint16(t), r.SpinSpeed, r.WarpAmount)
	default:
		err = Plasma(r.rgb, r.width, r.height, uint8(t))
	}
	if err != nil {
		return nil, err
	}
	return r.rgb, nil
}

// Step renders one frame and hands it to the target.
func (r *Runner) Step(target Target) error {
	buf, err := r.Frame()
	if err != nil {
		return err
	}
	if err := target.LoadRGB888(buf); err != nil {
		return err
	}
	return target.Flip()
}

// Run drives the target at the given tick rate until the context is
// canceled.
func (r *Runner) Run(ctx context.Context, target Target, hz int) error {
	if hz <= 0 {
		hz = 60
	}
	tick := time.NewTicker(time.Second / time.Duration(hz))
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
			if err := r.Step(target); err != nil {
				return err
			}
		}
	}
}
