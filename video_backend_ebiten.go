//go:build !headless

// video_backend_ebiten.go - ebiten-backed display and keyboard input.

/*
video_backend_ebiten.go - Display (ebiten backend)

Presents the monochrome framebuffer scaled to the window and forwards host
key events into the machine's keyboard matrix. The backend owns nothing
about machine semantics; it is a thin translation layer between ebiten's
event loop and Keyboard.Press/Release plus a packed-bit-to-RGBA blit of the
128x240 framebuffer maintained by ram.go.
*/

package main

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenDisplay renders the framebuffer and feeds host key events into a
// Keyboard.
type EbitenDisplay struct {
	kbd   *Keyboard
	scale int

	mu     sync.Mutex
	bits   []byte // latest framebuffer snapshot, packed 1bpp MSB-first
	image  *ebiten.Image
	closed bool
}

// NewEbitenDisplay returns a display that scales the native 240x128 image
// by scale (minimum 1) and reports key events against kbd.
func NewEbitenDisplay(kbd *Keyboard, scale int) *EbitenDisplay {
	if scale < 1 {
		scale = 1
	}
	return &EbitenDisplay{kbd: kbd, scale: scale}
}

// Present copies a framebuffer snapshot in for the next Draw call. Safe to
// call from the frame driver's goroutine while ebiten's loop runs on its
// own.
func (d *EbitenDisplay) Present(bits []byte) {
	d.mu.Lock()
	if d.bits == nil {
		d.bits = make([]byte, len(bits))
	}
	copy(d.bits, bits)
	d.mu.Unlock()
}

// Run starts the ebiten event loop. It blocks until the window is closed,
// matching ebiten.RunGame's own contract.
func (d *EbitenDisplay) Run(title string, fullscreen bool) error {
	ebiten.SetWindowSize(FramebufferCols*d.scale, FramebufferRows*d.scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	ebiten.SetFullscreen(fullscreen)
	return ebiten.RunGame(d)
}

// Closed reports whether the window has been dismissed.
func (d *EbitenDisplay) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

func (d *EbitenDisplay) Update() error {
	if ebiten.IsWindowBeingClosed() {
		d.mu.Lock()
		d.closed = true
		d.mu.Unlock()
		return ebiten.Termination
	}
	d.pollKeys()
	return nil
}

func (d *EbitenDisplay) pollKeys() {
	for hostKey, logicalID := range hostKeymap {
		switch {
		case inpututil.IsKeyJustPressed(hostKey):
			d.kbd.Press(logicalID)
		case inpututil.IsKeyJustReleased(hostKey):
			d.kbd.Release(logicalID)
		}
	}
}

func (d *EbitenDisplay) Draw(screen *ebiten.Image) {
	d.mu.Lock()
	bits := append([]byte(nil), d.bits...)
	d.mu.Unlock()
	if bits == nil {
		return
	}
	if d.image == nil {
		d.image = ebiten.NewImage(FramebufferCols, FramebufferRows)
	}

	rgba := make([]byte, FramebufferCols*FramebufferRows*4)
	for row := 0; row < FramebufferRows; row++ {
		for col := 0; col < FramebufferCols; col++ {
			byteIdx := row*(FramebufferCols/8) + col/8
			bit := bits[byteIdx]&(1<<uint(7-col%8)) != 0
			px := (row*FramebufferCols + col) * 4
			v := byte(0xFF)
			if bit {
				v = 0x00
			}
			rgba[px], rgba[px+1], rgba[px+2], rgba[px+3] = v, v, v, 0xFF
		}
	}
	d.image.WritePixels(rgba)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(d.scale), float64(d.scale))
	screen.DrawImage(d.image, op)
}

func (d *EbitenDisplay) Layout(_, _ int) (int, int) {
	return FramebufferCols * d.scale, FramebufferRows * d.scale
}
