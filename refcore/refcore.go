// Package refcore is a deterministic stand-in for a snes9x engine. It
// reads the cartridge header, keeps SRAM, RTC and input state, and
// produces a test pattern and tone instead of emulating the console.
// It lets the bridge be driven end to end without real hardware
// emulation.
package refcore

import (
	"fmt"
	"os"
	"strings"

	snescore "github.com/OV2/snes9x-libsnes/api"
	"github.com/OV2/snes9x-libsnes/romloader"
)

type controller struct {
	ctl snescore.ControllerType
	ids [4]int
}

// Core implements snescore.Engine.
type Core struct {
	fe       snescore.Frontend
	settings snescore.Settings

	rom    []byte
	header Header
	loaded bool

	controllers [2]controller
	buttonMap   map[uint32][]string
	pointerMap  map[uint32][]string
	held        map[string]bool
	pointers    map[string][2]int16

	sram []byte
	rtc  []byte

	frame   uint32
	phase   int
	samples []int16
}

var _ snescore.Engine = (*Core)(nil)

// New returns a core with no cartridge. Init must be called before use.
func New() *Core {
	return &Core{
		buttonMap:  make(map[uint32][]string),
		pointerMap: make(map[uint32][]string),
		held:       make(map[string]bool),
		pointers:   make(map[string][2]int16),
	}
}

// Init binds the frontend and settings.
func (c *Core) Init(fe snescore.Frontend, settings snescore.Settings) error {
	if fe == nil {
		return fmt.Errorf("refcore: nil frontend")
	}
	settings.Validate()
	c.fe = fe
	c.settings = settings
	return nil
}

// Deinit drops the cartridge and the frontend.
func (c *Core) Deinit() {
	c.unload()
	c.fe = nil
}

// LoadROM reads the image at path, skipping a copier header, and decodes
// its internal header. SRAM starts cleared.
func (c *Core) LoadROM(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read ROM: %w", err)
	}
	rom := romloader.StripCopierHeader(data)

	h, err := ParseHeader(rom)
	if err != nil {
		return err
	}

	c.unload()
	c.rom = rom
	c.header = h
	c.sram = make([]byte, h.SRAMSize)
	if h.HasRTC() {
		c.rtc = make([]byte, rtcSize)
	}
	c.loaded = true
	c.Reset()
	return nil
}

func (c *Core) unload() {
	c.rom = nil
	c.header = Header{}
	c.sram = nil
	c.rtc = nil
	c.loaded = false
	c.frame = 0
	c.phase = 0
	c.samples = c.samples[:0]
}

// Header returns the header of the loaded cartridge.
func (c *Core) Header() Header {
	return c.header
}

// Frame returns the number of frames run since the last reset.
func (c *Core) Frame() uint32 {
	return c.frame
}

// Reset power-cycles: the frame counter, tone and queued samples restart.
func (c *Core) Reset() {
	c.frame = 0
	c.phase = 0
	c.samples = c.samples[:0]
}

// SoftReset restarts the frame counter only.
func (c *Core) SoftReset() {
	c.frame = 0
}

// PAL reports whether the cartridge is a 50Hz one.
func (c *Core) PAL() bool {
	return c.header.Region == snescore.RegionPAL
}

// SetController binds a controller type to a port. Peripherals disabled
// in the settings are treated as unplugged.
func (c *Core) SetController(port int, ctl snescore.ControllerType, ids [4]int) {
	if port < 0 || port > 1 {
		return
	}
	if !c.peripheralEnabled(ctl) {
		ctl = snescore.ControllerNone
	}
	c.controllers[port] = controller{ctl: ctl, ids: ids}
}

func (c *Core) peripheralEnabled(ctl snescore.ControllerType) bool {
	switch ctl {
	case snescore.ControllerMouse:
		return c.settings.MouseMaster
	case snescore.ControllerSuperScope:
		return c.settings.SuperScopeMaster
	case snescore.ControllerJustifier:
		return c.settings.JustifierMaster
	case snescore.ControllerMP5:
		return c.settings.MultiPlayer5Master
	default:
		return true
	}
}

// Controller returns what is plugged into port.
func (c *Core) Controller(port int) (snescore.ControllerType, [4]int) {
	if port < 0 || port > 1 {
		return snescore.ControllerNone, [4]int{}
	}
	return c.controllers[port].ctl, c.controllers[port].ids
}

// UnmapAllControls removes every mapping and releases held inputs.
func (c *Core) UnmapAllControls() {
	clear(c.buttonMap)
	clear(c.pointerMap)
	clear(c.held)
	clear(c.pointers)
}

// MapButton binds id to a command or a braced, comma separated list of
// commands.
func (c *Core) MapButton(id uint32, command string) error {
	cmds, err := splitCommand(command)
	if err != nil {
		return err
	}
	c.buttonMap[id] = cmds
	return nil
}

// MapPointer binds id to a "Pointer A+B" command.
func (c *Core) MapPointer(id uint32, command string) error {
	targets, ok := strings.CutPrefix(command, "Pointer ")
	if !ok || targets == "" {
		return fmt.Errorf("%w: %q", ErrBadCommand, command)
	}
	c.pointerMap[id] = strings.Split(targets, "+")
	return nil
}

func splitCommand(command string) ([]string, error) {
	if inner, ok := strings.CutPrefix(command, "{"); ok {
		inner, ok = strings.CutSuffix(inner, "}")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadCommand, command)
		}
		command = inner
	}
	var cmds []string
	for _, cmd := range strings.Split(command, ",") {
		if cmd = strings.TrimSpace(cmd); cmd == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadCommand, command)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// ReportButton sets every command mapped to id.
func (c *Core) ReportButton(id uint32, pressed bool) {
	for _, cmd := range c.buttonMap[id] {
		c.held[cmd] = pressed
	}
}

// ReportPointer moves every pointer mapped to id.
func (c *Core) ReportPointer(id uint32, x, y int16) {
	for _, name := range c.pointerMap[id] {
		c.pointers[name] = [2]int16{x, y}
	}
}

// Held reports whether a command is currently pressed.
func (c *Core) Held(command string) bool {
	return c.held[command]
}

// PointerPosition returns the last position reported for a pointer
// target such as "Mouse1" or "Superscope".
func (c *Core) PointerPosition(name string) (x, y int16) {
	p := c.pointers[name]
	return p[0], p[1]
}

// MainLoop runs one frame: it draws the pattern, hands it to the
// frontend, and queues the frame's audio.
func (c *Core) MainLoop() {
	if c.fe == nil || !c.loaded {
		return
	}
	c.frame++

	width, height := c.frameSize()
	pix, pitch := c.fe.Screen()
	c.render(pix, pitch, width, height)
	c.fe.DeinitUpdate(width, height)

	c.generateSamples()
	c.fe.SamplesAvailable()
}

// RTC returns the clock registers, or nil without an RTC chip.
func (c *Core) RTC() []byte {
	return c.rtc
}
