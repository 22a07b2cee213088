package main

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/OV2/snes9x-libsnes/libsnes"
	"github.com/go-audio/wav"
)

// writeTestROM writes a 32KB LoROM image declaring 2KB of SRAM
func writeTestROM(t *testing.T, dir string, dest byte) string {
	t.Helper()
	rom := make([]byte, 0x8000)
	h := rom[0x7FC0:]
	copy(h, "BRIDGE TEST          ")
	h[0x18] = 1
	h[0x19] = dest
	binary.LittleEndian.PutUint16(h[0x1C:], ^uint16(0x1234))
	binary.LittleEndian.PutUint16(h[0x1E:], 0x1234)

	path := filepath.Join(dir, "test.sfc")
	if err := os.WriteFile(path, rom, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

// TestRun_WritesOutputs tests a short run produces every requested file
func TestRun_WritesOutputs(t *testing.T) {
	dir := t.TempDir()
	srm := filepath.Join(dir, "test.srm")
	if err := os.WriteFile(srm, bytes.Repeat([]byte("SRAM"), 0x200), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	opts := options{
		rom:    writeTestROM(t, dir, 1),
		frames: 3,
		port1:  "joypad",
		port2:  "mouse",
		wav:    filepath.Join(dir, "out.wav"),
		png:    filepath.Join(dir, "out.png"),
		srm:    srm,
		state:  filepath.Join(dir, "out.state"),
	}
	if err := run(opts); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	wf, err := os.Open(opts.wav)
	if err != nil {
		t.Fatalf("Open WAV failed: %v", err)
	}
	defer wf.Close()
	dec := wav.NewDecoder(wf)
	if !dec.IsValidFile() {
		t.Fatal("WAV file is not valid")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer failed: %v", err)
	}
	if dec.NumChans != 2 || dec.SampleRate != 32000 {
		t.Errorf("WAV format = %d channels at %d Hz, want 2 at 32000", dec.NumChans, dec.SampleRate)
	}
	if want := 3 * (32000 / 60) * 2; len(buf.Data) != want {
		t.Errorf("WAV has %d samples, want %d", len(buf.Data), want)
	}

	pf, err := os.Open(opts.png)
	if err != nil {
		t.Fatalf("Open PNG failed: %v", err)
	}
	defer pf.Close()
	img, err := png.Decode(pf)
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 256 || b.Dy() != 224 {
		t.Errorf("PNG size = %dx%d, want 256x224", b.Dx(), b.Dy())
	}

	sram, _ := os.ReadFile(srm)
	if len(sram) != 0x800 || !bytes.HasPrefix(sram, []byte("SRAMSRAM")) {
		t.Errorf("SRAM file is %d bytes, want 0x800 of the original contents", len(sram))
	}

	state, err := os.ReadFile(opts.state)
	if err != nil || len(state) == 0 {
		t.Errorf("state file = %d bytes, %v", len(state), err)
	}
}

// TestRun_ResumeAndHiRes tests restoring a state and a hi-res last frame
func TestRun_ResumeAndHiRes(t *testing.T) {
	dir := t.TempDir()
	rom := writeTestROM(t, dir, 2)
	state := filepath.Join(dir, "first.state")

	if err := run(options{rom: rom, frames: 2, port1: "joypad", port2: "joypad", state: state}); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	opts := options{
		rom:    rom,
		frames: 1,
		port1:  "joypad",
		port2:  "superscope",
		hiRes:  true,
		resume: state,
		png:    filepath.Join(dir, "hires.png"),
	}
	if err := run(opts); err != nil {
		t.Fatalf("resumed run failed: %v", err)
	}

	pf, err := os.Open(opts.png)
	if err != nil {
		t.Fatalf("Open PNG failed: %v", err)
	}
	defer pf.Close()
	cfg, err := png.DecodeConfig(pf)
	if err != nil {
		t.Fatalf("png.DecodeConfig failed: %v", err)
	}
	if cfg.Width != 512 || cfg.Height != 448 {
		t.Errorf("PNG size = %dx%d, want 512x448", cfg.Width, cfg.Height)
	}
}

// TestRun_Errors tests bad inputs are reported
func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	rom := writeTestROM(t, dir, 1)
	tiny := filepath.Join(dir, "tiny.sfc")
	os.WriteFile(tiny, []byte{1, 2, 3}, 0644)

	testCases := []struct {
		name string
		opts options
	}{
		{"missing rom", options{rom: filepath.Join(dir, "none.sfc"), port1: "joypad", port2: "joypad"}},
		{"bad device", options{rom: rom, port1: "keyboard", port2: "joypad"}},
		{"rejected rom", options{rom: tiny, port1: "joypad", port2: "joypad"}},
		{"missing state", options{rom: rom, port1: "joypad", port2: "joypad", resume: filepath.Join(dir, "none.state")}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := run(tc.opts); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

// TestParseDevice tests flag values map to device kinds
func TestParseDevice(t *testing.T) {
	testCases := []struct {
		name string
		want libsnes.DeviceKind
	}{
		{"joypad", libsnes.DeviceJoypad},
		{"Multitap", libsnes.DeviceMultitap},
		{"MOUSE", libsnes.DeviceMouse},
		{"superscope", libsnes.DeviceSuperScope},
		{"justifier", libsnes.DeviceJustifier},
		{"justifiers", libsnes.DeviceJustifiers},
	}
	for _, tc := range testCases {
		got, err := parseDevice(tc.name)
		if err != nil || got != tc.want {
			t.Errorf("parseDevice(%q) = %s, %v, want %s", tc.name, got, err, tc.want)
		}
	}
	if _, err := parseDevice("none"); err == nil {
		t.Error("parseDevice(none) succeeded")
	}
}

// TestRGB555 tests pixel expansion to 8 bits per channel
func TestRGB555(t *testing.T) {
	testCases := []struct {
		p       uint16
		r, g, b uint8
	}{
		{0x0000, 0, 0, 0},
		{0x7FFF, 0xFF, 0xFF, 0xFF},
		{0x001F, 0xFF, 0, 0},
		{0x03E0, 0, 0xFF, 0},
		{0x7C00, 0, 0, 0xFF},
		{0x0010, 0x84, 0, 0},
	}
	for _, tc := range testCases {
		c := rgb555(tc.p)
		if c.R != tc.r || c.G != tc.g || c.B != tc.b || c.A != 0xFF {
			t.Errorf("rgb555(%#x) = %v, want {%d %d %d 255}", tc.p, c, tc.r, tc.g, tc.b)
		}
	}
}

// TestCapture_PacksRows tests frames at either pitch are stored packed
func TestCapture_PacksRows(t *testing.T) {
	for _, height := range []int{224, 448} {
		pitch := libsnes.PitchFor(height)
		frame := make([]uint16, pitch*height)
		for y := 0; y < height; y++ {
			frame[y*pitch] = uint16(y)
		}

		var c capture
		c.video(frame, 4, height)

		if len(c.frame) != 4*height {
			t.Fatalf("height %d: stored %d pixels, want %d", height, len(c.frame), 4*height)
		}
		for y := 0; y < height; y++ {
			if c.frame[y*4] != uint16(y) {
				t.Fatalf("height %d: row %d starts %d", height, y, c.frame[y*4])
			}
		}
	}
}
