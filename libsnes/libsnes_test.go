package libsnes

import (
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	snescore "github.com/OV2/snes9x-libsnes/api"
)

// TestInit_DefaultsToJoypads verifies both ports start with a joypad
func TestInit_DefaultsToJoypads(t *testing.T) {
	eng := newFakeEngine()
	a, _ := newTestAdapter(t, eng)

	if eng.initCalls != 1 {
		t.Errorf("engine Init called %d times, want 1", eng.initCalls)
	}
	for _, port := range []Port{Port1, Port2} {
		if got := a.PortDevice(port); got != DeviceJoypad {
			t.Errorf("PortDevice(%s) = %s, want Joypad", port, got)
		}
		call := eng.controllers[port]
		if call.ctl != snescore.ControllerJoypad {
			t.Errorf("%s controller = %s, want Joypad", port, call.ctl)
		}
		if call.ids[0] != int(port) {
			t.Errorf("%s controller id = %d, want %d", port, call.ids[0], int(port))
		}
	}
	if eng.settings != snescore.DefaultSettings() {
		t.Errorf("engine settings = %+v, want defaults", eng.settings)
	}
}

// TestInit_MapsDefaultControls verifies the default mapping table reaches the engine
func TestInit_MapsDefaultControls(t *testing.T) {
	eng := newFakeEngine()
	newTestAdapter(t, eng)

	wantButtons := padSlots*len(joypadButtons) + 2
	if len(eng.buttonMap) != wantButtons {
		t.Errorf("mapped %d buttons, want %d", len(eng.buttonMap), wantButtons)
	}
	if len(eng.pointerMap) != 3 {
		t.Errorf("mapped %d pointers, want 3", len(eng.pointerMap))
	}

	testCases := []struct {
		id   uint32
		want string
	}{
		{buttonID(1, JoypadA), "Joypad1 A"},
		{buttonID(1, JoypadSelect), "{Joypad1 Select,Mouse1 L}"},
		{buttonID(2, JoypadStart), "{Joypad2 Start,Mouse2 R,Superscope Cursor,Justifier1 Start}"},
		{buttonID(2, JoypadDown), "{Joypad2 Down,Superscope Pause}"},
		{buttonID(5, JoypadR), "Joypad5 R"},
		{buttonID(8, JoypadB), "Joypad8 B"},
		{buttonID(slotJustifier2, JustifierTrigger), "Justifier2 Trigger"},
	}
	for _, tc := range testCases {
		if got := eng.buttonMap[tc.id]; got != tc.want {
			t.Errorf("buttonMap[%#x] = %q, want %q", tc.id, got, tc.want)
		}
	}
	if got := eng.pointerMap[PointerMouse1]; got != "Pointer Mouse1+Superscope+Justifier1" {
		t.Errorf("pointerMap[PointerMouse1] = %q", got)
	}
}

// TestInit_EngineFailure verifies a failed engine init is reported and cleaned up
func TestInit_EngineFailure(t *testing.T) {
	eng := newFakeEngine()
	eng.initErr = errors.New("out of memory")
	root := t.TempDir()

	cfg := DefaultConfig()
	cfg.ScratchDir = root
	cfg.Logger = log.New(&strings.Builder{}, "", 0)

	a, err := Init(eng, cfg)
	if !errors.Is(err, ErrEngineInit) {
		t.Fatalf("Init error = %v, want ErrEngineInit", err)
	}
	if a != nil {
		t.Error("Init returned an adapter on failure")
	}
	if eng.deinitCalls != 1 {
		t.Errorf("engine Deinit called %d times, want 1", eng.deinitCalls)
	}

	entries, _ := os.ReadDir(root)
	if len(entries) != 0 {
		t.Errorf("scratch root not cleaned up: %d entries", len(entries))
	}
}

// TestTerm_RemovesScratch verifies Term deletes the private directory
func TestTerm_RemovesScratch(t *testing.T) {
	eng := newFakeEngine()
	a, _ := newTestAdapter(t, eng)
	root := a.scratch.Root()

	a.Term()

	if _, err := os.Stat(root); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("scratch directory still exists: %v", err)
	}
	if eng.deinitCalls != 1 {
		t.Errorf("engine Deinit called %d times, want 1", eng.deinitCalls)
	}
}

// TestPowerAndReset verifies hard and soft reset reach the engine
func TestPowerAndReset(t *testing.T) {
	eng := newFakeEngine()
	a, _ := newTestAdapter(t, eng)

	a.Power()
	a.Reset()
	a.Reset()

	if eng.resets != 1 {
		t.Errorf("Reset called %d times, want 1", eng.resets)
	}
	if eng.softResets != 2 {
		t.Errorf("SoftReset called %d times, want 2", eng.softResets)
	}
}

// TestRegion verifies the engine timing maps to a region
func TestRegion(t *testing.T) {
	eng := newFakeEngine()
	a, _ := newTestAdapter(t, eng)

	if got := a.Region(); got != snescore.RegionNTSC {
		t.Errorf("Region() = %s, want NTSC", got)
	}
	eng.pal = true
	if got := a.Region(); got != snescore.RegionPAL {
		t.Errorf("Region() = %s, want PAL", got)
	}
}

// TestRun_PollsBeforeQueries verifies the run loop order
func TestRun_PollsBeforeQueries(t *testing.T) {
	eng := newFakeEngine()
	a, _ := newTestAdapter(t, eng)

	var events []string
	a.SetInputPoll(func() { events = append(events, "poll") })
	a.SetInputState(func(port Port, device DeviceKind, index, id uint) int16 {
		if len(events) == 0 || events[len(events)-1] != "query" {
			events = append(events, "query")
		}
		return 0
	})
	eng.onMainLoop = func(e *fakeEngine) { events = append(events, "step") }

	a.Run()

	want := []string{"poll", "query", "step"}
	if strings.Join(events, ",") != strings.Join(want, ",") {
		t.Errorf("events = %v, want %v", events, want)
	}
}

// TestRun_WithoutCallbacks verifies unset sinks are skipped
func TestRun_WithoutCallbacks(t *testing.T) {
	eng := newFakeEngine()
	a, _ := newTestAdapter(t, eng)
	eng.onMainLoop = func(e *fakeEngine) {
		e.fe.DeinitUpdate(256, 224)
		e.samples = []int16{1, 2}
		e.fe.SamplesAvailable()
	}

	// Should not panic
	a.Run()

	if eng.frames != 1 {
		t.Errorf("frames = %d, want 1", eng.frames)
	}
}

// TestUnsupportedCartridges verifies multi-cart loaders are stubbed
func TestUnsupportedCartridges(t *testing.T) {
	eng := newFakeEngine()
	a, logBuf := newTestAdapter(t, eng)

	errs := []error{
		a.LoadCartridgeBSX("", []byte{1}, "", []byte{1}),
		a.LoadCartridgeBSXSlotted("", []byte{1}, "", []byte{1}),
		a.LoadCartridgeSufamiTurbo("", []byte{1}, "", []byte{1}, "", []byte{1}),
		a.LoadCartridgeSuperGameBoy("", []byte{1}, "", []byte{1}),
	}
	for i, err := range errs {
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("loader %d error = %v, want ErrUnsupported", i, err)
		}
	}
	if len(eng.loadPaths) != 0 {
		t.Errorf("engine LoadROM called %d times, want 0", len(eng.loadPaths))
	}
	if !strings.Contains(logBuf.String(), "not supported") {
		t.Errorf("no diagnostic logged: %q", logBuf.String())
	}
}

// TestLibraryRevision verifies the reported revision
func TestLibraryRevision(t *testing.T) {
	if LibraryRevisionMajor != 1 || LibraryRevisionMinor != 1 {
		t.Errorf("revision = %d.%d, want 1.1", LibraryRevisionMajor, LibraryRevisionMinor)
	}
}
