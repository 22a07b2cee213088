// Command snesbridge runs a cartridge headlessly through the libsnes
// bridge and the reference core, and writes what came out: audio as WAV,
// the last frame as PNG, battery RAM and a save state.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/OV2/snes9x-libsnes/libsnes"
	"github.com/OV2/snes9x-libsnes/refcore"
	"github.com/OV2/snes9x-libsnes/romloader"
)

type options struct {
	rom    string
	config string
	frames int
	port1  string
	port2  string
	hiRes  bool
	resume string
	wav    string
	png    string
	srm    string
	state  string
}

func main() {
	var opts options
	flag.StringVar(&opts.rom, "rom", "", "ROM file or archive to run (required)")
	flag.StringVar(&opts.config, "config", "", "JSON configuration file")
	flag.IntVar(&opts.frames, "frames", 600, "number of frames to run")
	flag.StringVar(&opts.port1, "port1", "joypad", "device on port 1")
	flag.StringVar(&opts.port2, "port2", "joypad", "device on port 2")
	flag.BoolVar(&opts.hiRes, "hires", false, "hold Select on pad 1 to request hi-res frames")
	flag.StringVar(&opts.resume, "resume", "", "save state to restore before running")
	flag.StringVar(&opts.wav, "wav", "", "write audio to this WAV file")
	flag.StringVar(&opts.png, "png", "", "write the last frame to this PNG file")
	flag.StringVar(&opts.srm, "srm", "", "battery RAM file, read before and written after the run")
	flag.StringVar(&opts.state, "state", "", "write a save state to this file after the run")
	flag.Parse()

	if opts.rom == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	port1, err := parseDevice(opts.port1)
	if err != nil {
		return err
	}
	port2, err := parseDevice(opts.port2)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}

	img, err := romloader.Load(opts.rom, romloader.Extensions)
	if err != nil {
		return fmt.Errorf("failed to load ROM: %w", err)
	}
	if img.CopierHeader() {
		log.Printf("%s has a copier header", img.Name)
	}

	core := refcore.New()
	a, err := libsnes.Init(core, cfg)
	if err != nil {
		return err
	}
	defer a.Term()

	out := &capture{}
	in := &scriptedInput{hiRes: opts.hiRes}
	a.SetVideoRefresh(out.video)
	a.SetAudioSample(out.audio)
	a.SetInputPoll(in.poll)
	a.SetInputState(in.state)

	if err := a.LoadCartridge(img.Data); err != nil {
		return fmt.Errorf("failed to load %s: %w", img.Name, err)
	}
	if err := a.AttachDevice(libsnes.Port1, port1); err != nil {
		return err
	}
	if err := a.AttachDevice(libsnes.Port2, port2); err != nil {
		return err
	}

	h := core.Header()
	log.Printf("Loaded %q (%s, SRAM %d bytes)", h.Title, a.Region(), a.MemorySize(libsnes.MemoryCartridgeRAM))

	if opts.srm != "" {
		if err := readSRAM(a, opts.srm); err != nil {
			return err
		}
	}
	if opts.resume != "" {
		data, err := os.ReadFile(opts.resume)
		if err != nil {
			return fmt.Errorf("failed to read save state: %w", err)
		}
		if err := a.Unserialize(data); err != nil {
			return err
		}
	}

	for i := 0; i < opts.frames; i++ {
		a.Run()
	}

	if opts.wav != "" {
		if err := out.writeWAV(opts.wav, cfg.Settings.SoundPlaybackRate); err != nil {
			return err
		}
	}
	if opts.png != "" {
		if err := out.writePNG(opts.png); err != nil {
			return err
		}
	}
	if opts.srm != "" {
		if err := writeSRAM(a, opts.srm); err != nil {
			return err
		}
	}
	if opts.state != "" {
		if err := writeState(a, opts.state); err != nil {
			return err
		}
	}
	return nil
}

// readSRAM copies an existing battery file into the cartridge RAM before
// the first frame. A missing file is not an error.
func readSRAM(a *libsnes.Adapter, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read SRAM: %w", err)
	}

	sram := a.MemoryData(libsnes.MemoryCartridgeRAM)
	if sram == nil {
		log.Printf("Cartridge has no SRAM, ignoring %s", path)
		return nil
	}
	if len(data) != len(sram) {
		log.Printf("%s is %d bytes, cartridge SRAM is %d", path, len(data), len(sram))
	}
	copy(sram, data)
	return nil
}

func writeSRAM(a *libsnes.Adapter, path string) error {
	sram := a.MemoryData(libsnes.MemoryCartridgeRAM)
	if sram == nil {
		return nil
	}
	if err := os.WriteFile(path, sram, 0644); err != nil {
		return fmt.Errorf("failed to write SRAM: %w", err)
	}
	return nil
}

func writeState(a *libsnes.Adapter, path string) error {
	size := a.SerializeSize()
	if size == 0 {
		return fmt.Errorf("failed to size save state")
	}
	buf := make([]byte, size)
	if err := a.Serialize(buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("failed to write save state: %w", err)
	}
	return nil
}
