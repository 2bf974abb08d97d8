// dump.go - diagnostic snapshots of machine state to disk.

/*
dump.go - Diagnostic Dumps

Three dump kinds: a binary PBM (P4) screenshot of the monochrome
framebuffer, a raw 256 KiB RAM image, and a raw 4 MiB flash image. All three
are byte-for-byte dumps of the backing stores - no interpretation - so they
can be diffed directly against a known-good reference.
*/

package main

import (
	"fmt"
	"os"
)

// DumpScreen writes the framebuffer as a binary PBM (P4) image.
func DumpScreen(m *Machine, path string) error {
	header := fmt.Sprintf("P4\n%d %d\n", FramebufferCols, FramebufferRows)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dump screen: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(header); err != nil {
		return fmt.Errorf("dump screen: %w", err)
	}
	if _, err := f.Write(m.RAM.Framebuffer()); err != nil {
		return fmt.Errorf("dump screen: %w", err)
	}
	return nil
}

// DumpMemory writes the full RAM bank.
func DumpMemory(m *Machine, path string) error {
	return dumpRegion(path, m.RAM.mem[:])
}

// DumpFlash writes the full flash bank, bypassing ff_mask.
func DumpFlash(m *Machine, path string) error {
	return dumpRegion(path, m.Flash.raw())
}

func dumpRegion(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	return nil
}
