package libsnes

import (
	"bytes"
	"errors"
	"log"
	"os"
	"testing"

	snescore "github.com/OV2/snes9x-libsnes/api"
)

type controllerCall struct {
	ctl snescore.ControllerType
	ids [4]int
}

// fakeEngine records every call the adapter makes and keeps its "emulated
// state" in plain byte slices.
type fakeEngine struct {
	fe       snescore.Frontend
	settings snescore.Settings

	initErr     error
	initCalls   int
	deinitCalls int

	loadErr   error
	loadPaths []string
	rom       []byte

	controllers [2]controllerCall
	unmapCalls  int
	buttonMap   map[uint32]string
	pointerMap  map[uint32]string
	buttons     map[uint32]bool
	pointers    map[uint32]Pointer

	state       []byte
	freezeErr   error
	unfreezeErr error

	sram       []byte
	sramErr    error
	sramLoads  int
	sramLoaded []byte
	rtc        []byte
	pal        bool
	resets     int
	softResets int
	frames     int
	onMainLoop func(e *fakeEngine)
	samples    []int16
	finalizes  int
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		buttonMap:  make(map[uint32]string),
		pointerMap: make(map[uint32]string),
		buttons:    make(map[uint32]bool),
		pointers:   make(map[uint32]Pointer),
	}
}

func (e *fakeEngine) Init(fe snescore.Frontend, settings snescore.Settings) error {
	e.initCalls++
	e.fe = fe
	e.settings = settings
	return e.initErr
}

func (e *fakeEngine) Deinit() { e.deinitCalls++ }

func (e *fakeEngine) LoadROM(path string) error {
	e.loadPaths = append(e.loadPaths, path)
	if e.loadErr != nil {
		return e.loadErr
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	e.rom = data
	return nil
}

func (e *fakeEngine) Reset()     { e.resets++ }
func (e *fakeEngine) SoftReset() { e.softResets++ }

func (e *fakeEngine) MainLoop() {
	e.frames++
	if e.onMainLoop != nil {
		e.onMainLoop(e)
	}
}

func (e *fakeEngine) PAL() bool { return e.pal }

func (e *fakeEngine) SetController(port int, ctl snescore.ControllerType, ids [4]int) {
	e.controllers[port] = controllerCall{ctl: ctl, ids: ids}
}

func (e *fakeEngine) UnmapAllControls() {
	e.unmapCalls++
	e.buttonMap = make(map[uint32]string)
	e.pointerMap = make(map[uint32]string)
}

func (e *fakeEngine) MapButton(id uint32, command string) error {
	e.buttonMap[id] = command
	return nil
}

func (e *fakeEngine) MapPointer(id uint32, command string) error {
	e.pointerMap[id] = command
	return nil
}

func (e *fakeEngine) ReportButton(id uint32, pressed bool) { e.buttons[id] = pressed }

func (e *fakeEngine) ReportPointer(id uint32, x, y int16) { e.pointers[id] = Pointer{X: x, Y: y} }

func (e *fakeEngine) FreezeGame(path string) error {
	if e.freezeErr != nil {
		return e.freezeErr
	}
	return os.WriteFile(path, e.state, 0644)
}

func (e *fakeEngine) UnfreezeGame(path string) error {
	if e.unfreezeErr != nil {
		return e.unfreezeErr
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	e.state = data
	return nil
}

func (e *fakeEngine) SaveSRAM(path string) error {
	if e.sramErr != nil {
		return e.sramErr
	}
	return os.WriteFile(path, e.sram, 0644)
}

func (e *fakeEngine) LoadSRAM(path string) error {
	e.sramLoads++
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	e.sramLoaded = data
	copy(e.sram, data)
	return nil
}

func (e *fakeEngine) RTC() []byte { return e.rtc }

func (e *fakeEngine) FinalizeSamples() { e.finalizes++ }

func (e *fakeEngine) SampleCount() int { return len(e.samples) }

func (e *fakeEngine) MixSamples(dst []int16) int {
	n := copy(dst, e.samples)
	e.samples = e.samples[n:]
	return n
}

// newTestAdapter initializes an adapter around eng with a private scratch
// root and a logger writing to the returned buffer
func newTestAdapter(t *testing.T, eng *fakeEngine) (*Adapter, *bytes.Buffer) {
	t.Helper()
	var logBuf bytes.Buffer
	cfg := DefaultConfig()
	cfg.ScratchDir = t.TempDir()
	cfg.Logger = log.New(&logBuf, "", 0)

	a, err := Init(eng, cfg)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(a.Term)
	return a, &logBuf
}

// loadTestCartridge loads a small ROM image into the adapter
func loadTestCartridge(t *testing.T, a *Adapter) {
	t.Helper()
	if err := a.LoadCartridge([]byte{0x78, 0x18, 0xFB, 0x5C}); err != nil {
		t.Fatalf("LoadCartridge failed: %v", err)
	}
}

// scratchFiles lists the files currently in the adapter's scratch directory
func scratchFiles(t *testing.T, a *Adapter) []string {
	t.Helper()
	entries, err := os.ReadDir(a.scratch.Root())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("ReadDir failed: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
