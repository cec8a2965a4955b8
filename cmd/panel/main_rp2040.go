//go:build tinygo && rp2040

// Command panel drives a 64x32 HUB75 panel from an RP2040: the effect
// runner renders on the main core while the PIO output streams the
// completed bit-plane buffer.
package main

import (
	"context"
	"machine"

	pio "github.com/tinygo-org/pio/rp2-pio"

	"hub75/driver"
	"hub75/effects"
)

const (
	panelWidth  = 64
	panelHeight = 32
)

func main() {
	drv, err := driver.New(driver.Config{
		Width:           panelWidth,
		Height:          panelHeight,
		BitDepth:        6,
		SystemFrequency: int(machine.CPUFrequency()),
	})
	if err != nil {
		panic(err.Error())
	}

	sm := pio.PIO0.StateMachine(0)

	out, err := driver.NewPIOOutput(drv, sm, driver.Pins{
		BaseData:     machine.GP0, // R1..B2 on GP0-GP5
		Clock:        machine.GP6,
		Latch:        machine.GP7,
		BaseAddress:  machine.GP8, // A-D on GP8-GP11
		AddressBits:  4,
		OutputEnable: machine.GP12,
	})
	if err != nil {
		panic(err.Error())
	}
	drv.SetOutput(out)

	runner := effects.NewRunner(panelWidth, panelHeight)
	runner.SetEffect(effects.Balatro8)

	if err := runner.Run(context.Background(), drv, 60); err != nil {
		panic(err.Error())
	}
}
