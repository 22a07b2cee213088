// Package libsnes bridges a libsnes-style host to a snes9x-style engine.
//
// The engine only takes absolute input reports, reads and writes ROMs,
// SRAM and save states through file paths, and renders at one of two
// framebuffer pitches. The Adapter multiplexes host controller devices into
// engine reports, keeps the framebuffer pitch consistent for the host, and
// turns the engine's file I/O into byte buffers.
//
// An Adapter is not safe for concurrent use. Sinks are called synchronously
// from inside Run.
package libsnes

import (
	"fmt"
	"log"
	"os"

	snescore "github.com/OV2/snes9x-libsnes/api"
	"github.com/OV2/snes9x-libsnes/scratch"
)

// VideoRefreshFunc receives a completed frame. The slice is reused for the
// next frame and must not be retained. Rows are PitchFor(height) pixels
// apart.
type VideoRefreshFunc func(frame []uint16, width, height int)

// AudioSampleFunc receives one stereo sample pair.
type AudioSampleFunc func(left, right int16)

// InputPollFunc is called once per Run before any input state query.
type InputPollFunc func()

// InputStateFunc returns the current value of one button or axis.
type InputStateFunc func(port Port, device DeviceKind, index, id uint) int16

// Config holds the adapter configuration.
type Config struct {
	// ScratchDir is where the private temp directory is created. Empty
	// means the system temp directory.
	ScratchDir string `json:"scratchDir"`

	// Settings are passed to the engine at Init.
	Settings snescore.Settings `json:"settings"`

	// Logger receives diagnostics. Nil logs to stderr.
	Logger *log.Logger `json:"-"`
}

// DefaultConfig returns the default adapter configuration.
func DefaultConfig() Config {
	return Config{
		Settings: snescore.DefaultSettings(),
	}
}

// Adapter is the bridge context. It is created by Init and released by
// Term.
type Adapter struct {
	engine  snescore.Engine
	log     *log.Logger
	scratch *scratch.Dir

	videoRefresh VideoRefreshFunc
	audioSample  AudioSampleFunc
	inputPoll    InputPollFunc
	inputState   InputStateFunc

	ports    [2]*deviceSchema
	pointers pointers

	fb       *FrameBuffer
	audioBuf []int16

	loaded   bool
	firstRun bool
	sram     sramBridge
}

// Init creates an adapter around engine and initializes the engine. An
// error wrapping ErrEngineInit means the engine is unusable and the host
// should exit.
func Init(engine snescore.Engine, cfg Config) (*Adapter, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "[libsnes]: ", 0)
	}

	dir, err := scratch.New(cfg.ScratchDir)
	if err != nil {
		logger.Printf("Failed to create scratch directory: %v", err)
		return nil, err
	}

	a := &Adapter{
		engine:   engine,
		log:      logger,
		scratch:  dir,
		fb:       NewFrameBuffer(),
		audioBuf: make([]int16, audioBufferSize),
	}

	if err := engine.Init(engineFrontend{a}, cfg.Settings); err != nil {
		engine.Deinit()
		dir.Close()
		logger.Printf("Failed to init Memory or APU: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrEngineInit, err)
	}

	for _, port := range []Port{Port1, Port2} {
		a.attach(port, schemas[DeviceJoypad])
	}
	a.mapButtons()

	return a, nil
}

// Term releases the SRAM mapping, shuts the engine down and removes every
// temp artifact. The adapter must not be used afterwards.
func (a *Adapter) Term() {
	a.releaseCartridge()

	a.engine.Deinit()
	a.engine.UnmapAllControls()

	if err := a.scratch.Close(); err != nil {
		a.log.Print(err)
	}
	a.fb = nil
}

// SetVideoRefresh sets the video sink.
func (a *Adapter) SetVideoRefresh(cb VideoRefreshFunc) {
	a.videoRefresh = cb
}

// SetAudioSample sets the audio sink.
func (a *Adapter) SetAudioSample(cb AudioSampleFunc) {
	a.audioSample = cb
}

// SetInputPoll sets the input poll trigger.
func (a *Adapter) SetInputPoll(cb InputPollFunc) {
	a.inputPoll = cb
}

// SetInputState sets the input state query.
func (a *Adapter) SetInputState(cb InputStateFunc) {
	a.inputState = cb
}

// Power power-cycles the console. The SRAM mapping stays in place.
func (a *Adapter) Power() {
	a.engine.Reset()
}

// Reset presses the console's reset button.
func (a *Adapter) Reset() {
	a.engine.SoftReset()
}

// Run emulates one frame: reloads SRAM on the first frame after a load if
// the host mapped it, polls input, reports every attached device and steps
// the engine.
func (a *Adapter) Run() {
	if a.firstRun {
		a.firstRun = false
		a.reloadSRAM()
	}

	if a.inputPoll != nil {
		a.inputPoll()
	}
	a.reportButtons()
	a.engine.MainLoop()
}

// Region returns the video region of the loaded cartridge.
func (a *Adapter) Region() snescore.Region {
	if a.engine.PAL() {
		return snescore.RegionPAL
	}
	return snescore.RegionNTSC
}

// CheatReset is not supported and does nothing.
func (a *Adapter) CheatReset() {}

// CheatSet is not supported and does nothing.
func (a *Adapter) CheatSet(index uint, enabled bool, code string) {}

// SetCartridgeBasename is not needed by the bridge and does nothing.
func (a *Adapter) SetCartridgeBasename(name string) {}

// engineFrontend is the view of the adapter handed to the engine.
type engineFrontend struct {
	a *Adapter
}

func (f engineFrontend) Screen() ([]uint16, int) {
	return f.a.fb.Pixels(), f.a.fb.Pitch()
}

func (f engineFrontend) DeinitUpdate(width, height int) {
	f.a.deinitUpdate(width, height)
}

func (f engineFrontend) SamplesAvailable() {
	f.a.samplesAvailable()
}
