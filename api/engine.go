// Package snescore describes the emulation engine consumed by the libsnes
// bridge. The engine only accepts file paths for ROM, SRAM and save-state
// I/O, takes absolute input reports and renders into a framebuffer owned
// by its frontend.
package snescore

// Engine is the interface a snes9x-style emulation core must implement to
// be driven by the bridge.
type Engine interface {
	// Init initializes memory, APU and graphics. fe receives frames and
	// audio notifications while MainLoop runs. A failure here leaves the
	// engine unusable.
	Init(fe Frontend, settings Settings) error

	// Deinit releases everything Init acquired.
	Deinit()

	// LoadROM loads a cartridge image from path.
	LoadROM(path string) error

	// Reset performs a hard reset (power cycle).
	Reset()

	// SoftReset performs a soft reset (reset button).
	SoftReset()

	// MainLoop emulates one frame. DeinitUpdate and SamplesAvailable are
	// called synchronously from inside it.
	MainLoop()

	// PAL reports whether the loaded cartridge runs at PAL timing.
	PAL() bool

	// SetController binds a controller type to a port. ids selects which
	// logical pads, mice or light guns the controller drives.
	SetController(port int, ctl ControllerType, ids [4]int)

	// UnmapAllControls removes every button and pointer mapping.
	UnmapAllControls()

	// MapButton binds a button id to a command such as "Joypad1 A".
	MapButton(id uint32, command string) error

	// MapPointer binds a pointer id to a pointer command.
	MapPointer(id uint32, command string) error

	// ReportButton reports the state of a mapped button.
	ReportButton(id uint32, pressed bool)

	// ReportPointer reports the absolute position of a mapped pointer.
	ReportPointer(id uint32, x, y int16)

	// FreezeGame writes a save state to path.
	FreezeGame(path string) error

	// UnfreezeGame restores a save state from path.
	UnfreezeGame(path string) error

	// SaveSRAM writes cartridge SRAM to path. Cartridges without SRAM
	// produce an empty file.
	SaveSRAM(path string) error

	// LoadSRAM replaces cartridge SRAM with the contents of path.
	LoadSRAM(path string) error

	// RTC returns the cartridge real-time-clock registers, or nil when the
	// cartridge has no RTC chip.
	RTC() []byte

	// FinalizeSamples closes off the samples generated so far.
	FinalizeSamples()

	// SampleCount returns the number of int16 samples ready to mix.
	SampleCount() int

	// MixSamples mixes up to len(dst) interleaved stereo samples into dst
	// and returns the number written.
	MixSamples(dst []int16) int
}

// Frontend is implemented by the bridge and called by the engine.
type Frontend interface {
	// Screen returns the framebuffer and its current pitch in pixels. The
	// engine renders the next frame at that pitch.
	Screen() (pixels []uint16, pitch int)

	// DeinitUpdate is called once a frame of the given size is complete.
	DeinitUpdate(width, height int)

	// SamplesAvailable is called when audio samples are ready to mix.
	SamplesAvailable()
}
