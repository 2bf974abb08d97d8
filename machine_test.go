package main

import "testing"

type fakeCore struct {
	regs        map[string]uint32
	resetCalled bool
}

func newFakeCore() *fakeCore { return &fakeCore{regs: map[string]uint32{}} }

func (f *fakeCore) Reset()                         { f.resetCalled = true }
func (f *fakeCore) Execute(maxCycles int) int       { return maxCycles }
func (f *fakeCore) GetReg(name string) uint32       { return f.regs[name] }
func (f *fakeCore) SetReg(name string, v uint32)    { f.regs[name] = v }
func (f *fakeCore) RaiseIRQ(level int)              {}

func TestMachineDispatchesReadWriteBySurface(t *testing.T) {
	m := NewMachine(NewDiscardLogger())

	m.Write8(0x10, 0x42)
	if got := m.Read8(0x10); got != 0x42 {
		t.Fatalf("RAM round trip via Machine failed: got %#x", got)
	}

	m.Write8(0x600002, 0x55) // I/O register 2
	if got := m.Read8(0x600002); got != 0x55 {
		t.Fatalf("I/O round trip via Machine failed: got %#x", got)
	}

	if got := m.Read8(0x900000); got != 0 {
		t.Fatalf("unmapped read should be 0, got %#x", got)
	}
}

func TestMachineRead16PreservesIOCompositionQuirk(t *testing.T) {
	m := NewMachine(NewDiscardLogger())
	m.IO.Write8(0x02, 0x12)
	m.IO.Write8(0x03, 0x34)

	got := m.Read16(0x600002)
	// Preserved quirk: composed as (hi<<16)|lo then truncated to 16 bits,
	// so only the low byte survives - the documented (hi<<8)|lo = 0x1234
	// is never what callers actually observe.
	if got != 0x0034 {
		t.Fatalf("Read16(IO) = %#04x, want 0x0034 (quirk preserved)", got)
	}
}

func TestMachineRAMRead16ComposesNormally(t *testing.T) {
	m := NewMachine(NewDiscardLogger())
	m.RAM.Write16(0x10, 0xBEEF)
	if got := m.Read16(0x10); got != 0xBEEF {
		t.Fatalf("RAM Read16 via Machine = %#04x, want 0xBEEF", got)
	}
}

func TestMachineResetLoadsVectorsFromFlashIntoCore(t *testing.T) {
	m := NewMachine(NewDiscardLogger())
	core := newFakeCore()
	m.AttachCore(core)

	// Seed the reset vectors directly in the flash backing store.
	raw := m.Flash.raw()
	raw[0], raw[1], raw[2], raw[3] = 0x00, 0x08, 0x00, 0x00 // SP = 0x00080000
	raw[4], raw[5], raw[6], raw[7] = 0x00, 0x20, 0x10, 0x00 // PC = 0x00201000

	m.Reset()

	if !core.resetCalled {
		t.Fatalf("Machine.Reset did not reset the attached core")
	}
	if core.GetReg("A7") != 0x00080000 {
		t.Fatalf("A7 = %#x, want 0x00080000", core.GetReg("A7"))
	}
	if core.GetReg("PC") != 0x00201000 {
		t.Fatalf("PC = %#x, want 0x00201000", core.GetReg("PC"))
	}
}
