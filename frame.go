// frame.go - frame-paced execution loop coupling the CPU core to the machine.

/*
frame.go - Frame Driver

Drives the machine at a fixed cadence: each frame runs the CPU core for up
to CyclesPerFrame bus cycles, hands the framebuffer to the attached display,
and - once every IRQFrameInterval frames - raises an autovectored level-1
interrupt. Host key events are not pumped here: the display backend feeds
them into the Keyboard from its own event loop. A frame in which the core consumes
zero cycles (it is stopped) ends the run rather than spinning forever.

TimerSource exists purely as a seam: production code always uses
fixedCadence, but tests can substitute a source that fires on a different
schedule without touching the driver's control flow.
*/

package main

import "time"

const (
	FrameInterval    = 25 * time.Millisecond
	CyclesPerFrame   = 300000
	IRQFrameInterval = 31
	IRQLevel         = 1
)

// TimerSource decides, per frame, how many frames remain until the next
// periodic interrupt.
type TimerSource interface {
	NextInterruptIn() int
}

type fixedCadence struct{ n int }

func (f *fixedCadence) NextInterruptIn() int { return f.n }

// Display is the capability the frame driver needs from a video backend.
type Display interface {
	Present(bits []byte)
	Closed() bool
}

// Driver runs the frame loop against a Machine and a Display.
type Driver struct {
	Machine *Machine
	Display Display
	Timer   TimerSource

	// MaxFrames caps how many frames Run executes before returning; zero
	// means run until the display closes or the core stalls.
	MaxFrames int

	log *Logger

	framesRun int
}

// NewDriver returns a driver with the standard 31-frame interrupt cadence.
func NewDriver(m *Machine, d Display, log *Logger) *Driver {
	return &Driver{Machine: m, Display: d, Timer: &fixedCadence{n: IRQFrameInterval}, log: log}
}

// Run executes frames until the display reports its window closed or the
// core stops making progress, sleeping between frames to hold the target
// cadence. sleep is a parameter so tests can drive the loop without
// actually waiting in real time.
func (d *Driver) Run(sleep func(time.Duration)) {
	framesUntilIRQ := d.Timer.NextInterruptIn()
	for {
		if d.Display != nil && d.Display.Closed() {
			return
		}
		if d.MaxFrames > 0 && d.framesRun >= d.MaxFrames {
			return
		}

		taken := d.Machine.Core.Execute(CyclesPerFrame)
		d.framesRun++

		if d.Display != nil {
			d.Display.Present(d.Machine.RAM.Framebuffer())
		}

		framesUntilIRQ--
		if framesUntilIRQ <= 0 {
			d.Machine.Core.RaiseIRQ(IRQLevel)
			framesUntilIRQ = d.Timer.NextInterruptIn()
		}

		if taken == 0 {
			if d.log != nil {
				d.log.Warn("frame driver: core made no progress, stopping")
			}
			return
		}

		if sleep != nil {
			sleep(FrameInterval)
		}
	}
}

// FramesRun reports how many frames the driver has executed so far.
func (d *Driver) FramesRun() int {
	return d.framesRun
}
