package refcore

import (
	"fmt"
	"os"
)

// SaveSRAM writes cartridge SRAM to path. Without SRAM the file is empty.
func (c *Core) SaveSRAM(path string) error {
	if !c.loaded {
		return ErrNoCartridge
	}
	if err := os.WriteFile(path, c.sram, 0644); err != nil {
		return fmt.Errorf("failed to save SRAM: %w", err)
	}
	return nil
}

// LoadSRAM replaces SRAM with the start of the file at path. A shorter
// file leaves the rest of SRAM cleared.
func (c *Core) LoadSRAM(path string) error {
	if !c.loaded {
		return ErrNoCartridge
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load SRAM: %w", err)
	}
	clear(c.sram)
	copy(c.sram, data)
	return nil
}

// SRAM returns the cartridge SRAM.
func (c *Core) SRAM() []byte {
	return c.sram
}
