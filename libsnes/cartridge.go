package libsnes

import (
	"fmt"

	"github.com/OV2/snes9x-libsnes/scratch"
)

// LoadCartridge loads a ROM image. The engine can only load from a path,
// so the image is staged in the scratch directory and removed again
// whatever the outcome. On success the previous cartridge's SRAM mapping is
// released, pointer accumulators are cleared, and the attached devices and
// default button mappings are applied again.
func (a *Adapter) LoadCartridge(data []byte) error {
	if len(data) == 0 {
		a.log.Print("Rom loading failed: empty image")
		return ErrEmptyROM
	}

	path, err := a.scratch.Encode(scratch.ROM, data)
	if err != nil {
		a.log.Printf("Rom loading failed: %v", err)
		return err
	}
	defer func() {
		if err := a.scratch.Remove(scratch.ROM); err != nil {
			a.log.Print(err)
		}
	}()

	if err := a.engine.LoadROM(path); err != nil {
		a.log.Printf("Rom loading failed: %v", err)
		return fmt.Errorf("%w: %v", ErrEngineRejected, err)
	}

	a.releaseCartridge()

	a.pointers = pointers{}
	for _, port := range []Port{Port1, Port2} {
		if s := a.ports[port]; s != nil {
			a.attach(port, s)
		}
	}
	a.mapButtons()

	a.loaded = true
	a.firstRun = true
	return nil
}

// UnloadCartridge releases the SRAM mapping and its mirror file.
func (a *Adapter) UnloadCartridge() {
	a.releaseCartridge()
}

// releaseCartridge drops everything tied to the loaded cartridge so that
// the next load starts clean.
func (a *Adapter) releaseCartridge() {
	a.releaseSRAM()
	a.loaded = false
	a.firstRun = false
}

// LoadCartridgeBSXSlotted is not supported.
func (a *Adapter) LoadCartridgeBSXSlotted(baseXML string, base []byte, slotXML string, slot []byte) error {
	return a.unsupported("BS-X slotted")
}

// LoadCartridgeBSX is not supported.
func (a *Adapter) LoadCartridgeBSX(baseXML string, base []byte, slotXML string, slot []byte) error {
	return a.unsupported("BS-X")
}

// LoadCartridgeSufamiTurbo is not supported.
func (a *Adapter) LoadCartridgeSufamiTurbo(baseXML string, base []byte, slotAXML string, slotA []byte, slotBXML string, slotB []byte) error {
	return a.unsupported("Sufami Turbo")
}

// LoadCartridgeSuperGameBoy is not supported.
func (a *Adapter) LoadCartridgeSuperGameBoy(romXML string, rom []byte, dmgXML string, dmg []byte) error {
	return a.unsupported("Super Game Boy")
}

func (a *Adapter) unsupported(format string) error {
	a.log.Printf("%s cartridges are not supported", format)
	return fmt.Errorf("%w: %s", ErrUnsupported, format)
}
