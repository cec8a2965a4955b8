package driver

// BCM timing: each bit-plane is displayed for base cycles shifted left
// by the plane index. The timing buffer holds an off/on delay pair per
// plane for the output backend; the off delay is halved because it is
// applied twice per bit-frame, once before enable and once after to
// prevent ghosting.

// Output state machine cycle overhead, derived from cycle-counting the
// signalling programs.
const (
	addressDisplayOverheadCycles   = 8
	addressHandshakeOverheadCycles = 2
	dataHandshakeOverheadCycles    = 2
	dataReloadOverheadCycles       = 1
	dataCyclesPerPixel             = 2
	bitplaneTransitionExtraCycles  = 3
)

// rowAddressCount is the number of row addresses scanned per frame:
// the two panel halves are driven simultaneously.
func (d *Driver) rowAddressCount() int { return d.height / 2 }

// Timing returns the off/on cycle pairs per bit-plane, least
// significant plane first. The slice is rebuilt in place whenever
// brightness, blanking or the base cycle count changes.
func (d *Driver) Timing() []uint32 { return d.timing }

// Brightness returns the current brightness fraction.
func (d *Driver) Brightness() float64 { return d.brightness }

// SetBrightness clamps to [0,1] and recomputes the timing buffer.
func (d *Driver) SetBrightness(v float64) float64 {
	d.brightness = clamp01(v)
	d.updateTiming()
	return d.brightness
}

// BlankingTimeNS returns the per-bit-frame blanking time.
func (d *Driver) BlankingTimeNS() int { return d.blankingNS }

// SetBlankingTimeNS sets the extra off delay in nanoseconds and
// recomputes the timing buffer.
func (d *Driver) SetBlankingTimeNS(ns int) int {
	if ns < 0 {
		ns = 0
	}
	d.blankingNS = ns
	d.updateTiming()
	return d.blankingNS
}

// RefreshRate estimates the refresh rate at the current settings.
func (d *Driver) RefreshRate() float64 {
	return d.estimateRefreshRate(d.baseCycles)
}

func (d *Driver) blankingCycles() int {
	return d.blankingNS * d.sysFreq / 1_000_000_000
}

func (d *Driver) planeCycles(baseCycles, plane int) (on, off int) {
	brightnessCycle := baseCycles << plane

	on = int(d.brightness * float64(brightnessCycle))
	if on < 0 {
		on = 0
	}

	off = (brightnessCycle-on)/2 + d.blankingCycles()
	if off < 0 {
		off = 0
	}
	return on, off
}

func (d *Driver) updateTiming() {
	for plane := 0; plane < d.bitDepth; plane++ {
		on, off := d.planeCycles(d.baseCycles, plane)
		d.timing[plane*2] = uint32(off)
		d.timing[plane*2+1] = uint32(on)
	}
}

// estimateRefreshRate predicts the frame rate for a base cycle count by
// accounting for the concurrent data and address state machines: per
// row, the display time and the data transfer time overlap after the
// handshake, so the row is gated by whichever is slower.
func (d *Driver) estimateRefreshRate(baseCycles int) float64 {
	rows := d.rowAddressCount()
	if rows == 0 {
		return 0
	}

	// The data state machine runs at data frequency times two (rising
	// and falling clock edges), so convert its cycles to system cycles.
	dataClockRatio := float64(d.sysFreq) / float64(d.dataFreq*2)

	dataTransferCycles := float64(dataReloadOverheadCycles+dataCyclesPerPixel*d.width) * dataClockRatio

	handshakeCycles := addressHandshakeOverheadCycles + dataHandshakeOverheadCycles*dataClockRatio

	total := 0.0
	for plane := 0; plane < d.bitDepth; plane++ {
		on, off := d.planeCycles(baseCycles, plane)

		addressDisplayCycles := float64(on + 2*off + addressDisplayOverheadCycles)

		rowCycles := addressDisplayCycles
		if dataTransferCycles > rowCycles {
			rowCycles = dataTransferCycles
		}
		total += float64(rows) * (rowCycles + handshakeCycles)
	}
	total += bitplaneTransitionExtraCycles * float64(d.bitDepth)

	if total <= 0 {
		return 0
	}
	return float64(d.sysFreq) / total
}

// SetTargetRefreshRate searches for the base cycle count whose
// estimated refresh rate is closest to the target and returns the
// achieved estimate. Targets above the hardware maximum saturate at
// the maximum.
func (d *Driver) SetTargetRefreshRate(target float64) float64 {
	// base cycles of 1 is the fastest the panel can refresh.
	maxRate := d.estimateRefreshRate(1)
	if target >= maxRate {
		d.baseCycles = 1
		d.updateTiming()
		return maxRate
	}

	// Upper bound estimate: frame time is roughly
	// rows * baseCycles * (2^depth - 1); solve for baseCycles, then
	// verify and expand until the bound really undershoots the target.
	planeSum := 1<<d.bitDepth - 1
	denom := int(target * float64(d.rowAddressCount()*planeSum))
	if denom < 1 {
		denom = 1
	}
	estimated := d.sysFreq / denom
	upper := estimated * 2
	if upper < 2 {
		upper = 2
	}
	for d.estimateRefreshRate(upper) > target {
		upper *= 2
	}

	// Smallest base cycle count whose rate is at or below the target.
	lower := 1
	for lower < upper {
		mid := (lower + upper) / 2
		if d.estimateRefreshRate(mid) > target {
			lower = mid + 1
		} else {
			upper = mid
		}
	}

	baseCycles := lower
	below := d.estimateRefreshRate(baseCycles)
	if baseCycles > 1 {
		above := d.estimateRefreshRate(baseCycles - 1)
		if above-target <= target-below {
			baseCycles--
		}
	}

	d.baseCycles = baseCycles
	d.updateTiming()
	return d.estimateRefreshRate(baseCycles)
}
