// ram.go - RAM bank for the Voyage 200 machine.

/*
ram.go - RAM Bank

A flat 256 KiB byte-addressable store. Word accesses are big-endian
regardless of host byte order, matching the 68000 bus. The region
ram[0x4C00:0x4C00+3840] is the monochrome framebuffer (128 rows x 240
columns, 1 bit per pixel, MSB-first) and is read directly by the frame
driver's rasteriser - no special-casing is needed here since it is plain
memory as far as the RAM bank is concerned.

Offsets are taken modulo RAMSize so callers never need to bounds-check.
*/

package main

import "encoding/binary"

// FramebufferBase is the RAM offset of the monochrome framebuffer.
const (
	FramebufferBase  = 0x4C00
	FramebufferRows  = 128
	FramebufferCols  = 240
	FramebufferBytes = FramebufferRows * FramebufferCols / 8 // 3840
)

// RAMBank is the machine's 256 KiB linear store.
type RAMBank struct {
	mem [RAMSize]byte
}

// NewRAMBank returns a freshly zeroed RAM bank.
func NewRAMBank() *RAMBank {
	return &RAMBank{}
}

func (r *RAMBank) Read8(off uint32) uint8 {
	return r.mem[off%RAMSize]
}

func (r *RAMBank) Write8(off uint32, v uint8) {
	r.mem[off%RAMSize] = v
}

func (r *RAMBank) Read16(off uint32) uint16 {
	off %= RAMSize
	if off == RAMSize-1 {
		// Odd-boundary wraparound: high byte from the last byte, low byte
		// from offset 0. Alignment policy is the CPU core's concern, not
		// this bank's.
		return uint16(r.mem[off])<<8 | uint16(r.mem[0])
	}
	return binary.BigEndian.Uint16(r.mem[off : off+2])
}

func (r *RAMBank) Write16(off uint32, v uint16) {
	off %= RAMSize
	if off == RAMSize-1 {
		r.mem[off] = byte(v >> 8)
		r.mem[0] = byte(v)
		return
	}
	binary.BigEndian.PutUint16(r.mem[off:off+2], v)
}

// Framebuffer returns the raw packed-bit framebuffer bytes, MSB-first,
// one bit per pixel, 128 rows x 240 columns.
func (r *RAMBank) Framebuffer() []byte {
	return r.mem[FramebufferBase : FramebufferBase+FramebufferBytes]
}

// Reset clears the entire bank to zero.
func (r *RAMBank) Reset() {
	for i := range r.mem {
		r.mem[i] = 0
	}
}
