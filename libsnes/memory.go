package libsnes

import (
	"errors"

	"github.com/OV2/snes9x-libsnes/mmapfile"
	"github.com/OV2/snes9x-libsnes/scratch"
)

// sramBridge owns the memory-mapped SRAM mirror of the loaded cartridge.
// There is at most one mapping per load.
type sramBridge struct {
	store *mmapfile.File

	// reloadPending is set when the host got the mapping before the first
	// frame; the engine then reloads SRAM from the mirror before stepping.
	reloadPending bool
}

// MemoryData returns a memory block for direct host access, or nil if the
// block does not exist for the loaded cartridge.
//
// Cartridge RAM is a shared mapping of a mirror file the engine saved.
// Host writes land in the file; if they happen before the first Run after
// a load, the engine reloads SRAM from it before stepping.
func (a *Adapter) MemoryData(kind MemoryKind) []byte {
	switch kind {
	case MemoryCartridgeRAM:
		return a.sramData()
	case MemoryCartridgeRTC:
		if !a.loaded {
			return nil
		}
		return a.engine.RTC()
	default:
		return nil
	}
}

// MemorySize returns the size of a memory block, or 0 if it does not
// exist for the loaded cartridge.
func (a *Adapter) MemorySize(kind MemoryKind) int {
	switch kind {
	case MemoryCartridgeRAM:
		return a.sramSize()
	case MemoryCartridgeRTC:
		if !a.loaded {
			return 0
		}
		return len(a.engine.RTC())
	default:
		return 0
	}
}

func (a *Adapter) sramData() []byte {
	if a.sram.store != nil {
		return a.sram.store.Bytes()
	}
	if !a.loaded {
		return nil
	}

	path := a.scratch.Path(scratch.SRAM)
	if err := a.engine.SaveSRAM(path); err != nil {
		a.log.Printf("Failed to save SRAM: %v", err)
		a.removeArtifact(scratch.SRAM)
		return nil
	}

	store, err := mmapfile.Open(path)
	if err != nil {
		if !errors.Is(err, mmapfile.ErrEmpty) {
			a.log.Printf("Failed to map SRAM: %v", err)
		}
		a.removeArtifact(scratch.SRAM)
		return nil
	}

	a.sram.store = store
	a.sram.reloadPending = true
	return store.Bytes()
}

func (a *Adapter) sramSize() int {
	if a.sram.store != nil {
		return a.sram.store.Len()
	}
	if !a.loaded {
		return 0
	}

	defer a.removeArtifact(scratch.SRAMProbe)
	if err := a.engine.SaveSRAM(a.scratch.Path(scratch.SRAMProbe)); err != nil {
		a.log.Printf("Failed to save SRAM: %v", err)
		return 0
	}
	size, err := a.scratch.Size(scratch.SRAMProbe)
	if err != nil {
		a.log.Print(err)
		return 0
	}
	return int(size)
}

// reloadSRAM loads the mirror into the engine if the host mapped it
// before the first frame.
func (a *Adapter) reloadSRAM() {
	if !a.sram.reloadPending || a.sram.store == nil {
		return
	}
	a.sram.reloadPending = false

	if err := a.sram.store.Sync(); err != nil {
		a.log.Printf("Failed to flush SRAM: %v", err)
	}
	if err := a.engine.LoadSRAM(a.sram.store.Name()); err != nil {
		a.log.Printf("Failed to load SRAM: %v", err)
	}
}

// releaseSRAM unmaps and closes the mirror, then deletes it.
func (a *Adapter) releaseSRAM() {
	if store := a.sram.store; store != nil {
		a.sram.store = nil
		if err := store.Close(); err != nil {
			a.log.Printf("Failed to release SRAM: %v", err)
		}
	}
	a.removeArtifact(scratch.SRAM)
	a.sram.reloadPending = false
}

func (a *Adapter) removeArtifact(artifact scratch.Artifact) {
	if err := a.scratch.Remove(artifact); err != nil {
		a.log.Print(err)
	}
}
