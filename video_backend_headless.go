//go:build headless

// video_backend_headless.go - no-op display for headless builds and tests.

/*
video_backend_headless.go - Display (headless backend)

Satisfies the same Present/Run/Closed surface as the ebiten backend without
opening a window, so the frame driver and its tests can run under the
headless build tag with no GUI toolkit present. Grounded on the
HeadlessVideoOutput stub this module replaces - same role, same build tag.
*/

package main

import "sync/atomic"

// HeadlessDisplay discards frames and never reports a close request.
type HeadlessDisplay struct {
	frames uint64
}

// NewEbitenDisplay matches the constructor signature of the GUI backend so
// main.go does not need a build-tag switch of its own.
func NewEbitenDisplay(kbd *Keyboard, scale int) *HeadlessDisplay {
	return &HeadlessDisplay{}
}

func (d *HeadlessDisplay) Present(bits []byte) {
	atomic.AddUint64(&d.frames, 1)
}

func (d *HeadlessDisplay) Run(title string, fullscreen bool) error {
	return nil
}

func (d *HeadlessDisplay) Closed() bool {
	return false
}
