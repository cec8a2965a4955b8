//go:build tinygo && rp2040

package driver

import (
	"machine"

	pio "github.com/tinygo-org/pio/rp2-pio"
)

// Pins describes the HUB75 wiring. The six color pins and the address
// pins must be consecutive GPIOs starting at their base pin.
type Pins struct {
	BaseData     machine.Pin // R1, G1, B1, R2, G2, B2
	Clock        machine.Pin
	Latch        machine.Pin
	OutputEnable machine.Pin
	BaseAddress  machine.Pin
	AddressBits  int
}

// hub75Data clocks one packed pixel-pair byte per loop onto the six
// data pins, toggling the shift clock on the side-set pin. Assembled
// from the companion .pio source; only the low 6 output bits are wired.
var hub75DataInstructions = []uint16{
	0x6008, // out pins, 8  side 0
	0x1000, // jmp 0        side 1
}

const hub75DataOrigin = -1

func hub75DataProgramDefaultConfig(offset uint8) pio.StateMachineConfig {
	cfg := pio.DefaultStateMachineConfig()
	cfg.SetWrap(offset, offset+uint8(len(hub75DataInstructions))-1)
	cfg.SetSidesetParams(1, false, false)
	return cfg
}

// PIOOutput streams packed bit-planes to the panel: the state machine
// shifts pixel data, the CPU walks rows and planes, latches, addresses
// and gates output enable per the driver's BCM timing buffer.
type PIOOutput struct {
	d    *Driver
	sm   pio.StateMachine
	pins Pins
	addr []machine.Pin
}

// NewPIOOutput claims the state machine, loads the data program and
// configures every pin. The returned output is meant to be set as the
// driver's Output before the first Flip.
func NewPIOOutput(d *Driver, sm pio.StateMachine, pins Pins) (*PIOOutput, error) {
	p := sm.PIO()
	offset, err := p.AddProgram(hub75DataInstructions, hub75DataOrigin)
	if err != nil {
		return nil, err
	}

	for i := 0; i < 6; i++ {
		(pins.BaseData + machine.Pin(i)).Configure(machine.PinConfig{Mode: p.PinMode()})
	}
	pins.Clock.Configure(machine.PinConfig{Mode: p.PinMode()})
	sm.SetPindirsConsecutive(pins.BaseData, 6, true)
	sm.SetPindirsConsecutive(pins.Clock, 1, true)

	cfg := hub75DataProgramDefaultConfig(offset)
	cfg.SetOutPins(pins.BaseData, 6)
	cfg.SetSidesetPins(pins.Clock)
	cfg.SetOutShift(true, true, 32)
	cfg.SetFIFOJoin(pio.FifoJoinTx)

	whole, frac, err := pio.ClkDivFromFrequency(uint32(d.dataFreq*2), machine.CPUFrequency())
	if err != nil {
		return nil, err
	}
	cfg.SetClkDivIntFrac(whole, frac)

	sm.Init(offset, cfg)
	sm.SetEnabled(true)

	out := &PIOOutput{d: d, sm: sm, pins: pins}
	for i := 0; i < pins.AddressBits; i++ {
		pin := pins.BaseAddress + machine.Pin(i)
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		out.addr = append(out.addr, pin)
	}
	pins.Latch.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pins.OutputEnable.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pins.OutputEnable.High() // active low
	return out, nil
}

// Show streams every bit-plane of the buffer once. The driver calls it
// from Flip; the caller's context keeps running it frame after frame.
func (o *PIOOutput) Show(bitplanes []byte) error {
	planeSize := o.d.width * o.d.height / 2
	rows := o.d.rowAddressCount()
	timing := o.d.Timing()

	for plane := 0; plane < o.d.bitDepth; plane++ {
		off := timing[plane*2]
		on := timing[plane*2+1]

		for row := 0; row < rows; row++ {
			base := plane*planeSize + row*o.d.width
			o.txRow(bitplanes[base : base+o.d.width])

			o.setAddress(row)

			delayCycles(off)
			o.pins.Latch.High()
			o.pins.Latch.Low()
			o.pins.OutputEnable.Low()
			delayCycles(on)
			o.pins.OutputEnable.High()
			delayCycles(off)
		}
	}
	return nil
}

func (o *PIOOutput) txRow(row []byte) {
	i := 0
	for ; i+4 <= len(row); i += 4 {
		word := uint32(row[i]) | uint32(row[i+1])<<8 | uint32(row[i+2])<<16 | uint32(row[i+3])<<24
		o.sm.TxPut(word)
	}
	for ; i < len(row); i++ {
		o.sm.TxPut(uint32(row[i]))
	}
}

func (o *PIOOutput) setAddress(row int) {
	for bit, pin := range o.addr {
		pin.Set(row>>bit&1 == 1)
	}
}

//go:noinline
func delayCycles(n uint32) {
	for i := uint32(0); i < n; i++ {
	}
}
