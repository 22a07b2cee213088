package libsnes

import (
	snescore "github.com/OV2/snes9x-libsnes/api"
)

// accumulation describes how a device's pointer axes are turned into the
// absolute positions the engine expects.
type accumulation int

const (
	passThrough accumulation = iota // no pointer
	perPort                         // one accumulator per port
	shared                          // one accumulator per device kind
)

// deviceSchema describes what a device reports each frame.
type deviceSchema struct {
	kind       DeviceKind
	query      DeviceKind // device passed to the host's input state query
	units      int        // sub-devices queried with index 0..units-1
	buttons    []uint     // ordered button ids, queried per unit
	pointer    bool       // X and Y axes queried before the buttons
	accumulate accumulation
	controller snescore.ControllerType
}

// Engine pad slot used for the second Justifier's buttons.
const slotJustifier2 = 9

// Pad slots of the four multitap sub-pads per port. Port 2 follows the
// usual Joypad2-5 layout; port 1 uses Joypad1 and 6-8 so that a multitap
// on each port never shares a slot.
var multitapSlots = [2][4]int{
	{1, 6, 7, 8},
	{2, 3, 4, 5},
}

var joypadButtons = []uint{
	JoypadB, JoypadY, JoypadSelect, JoypadStart,
	JoypadUp, JoypadDown, JoypadLeft, JoypadRight,
	JoypadA, JoypadX, JoypadL, JoypadR,
}

var schemas = map[DeviceKind]*deviceSchema{
	DeviceJoypad: {
		kind:       DeviceJoypad,
		query:      DeviceJoypad,
		units:      1,
		buttons:    joypadButtons,
		controller: snescore.ControllerJoypad,
	},
	DeviceMultitap: {
		kind:       DeviceMultitap,
		query:      DeviceMultitap,
		units:      4,
		buttons:    joypadButtons,
		controller: snescore.ControllerMP5,
	},
	DeviceMouse: {
		kind:       DeviceMouse,
		query:      DeviceMouse,
		units:      1,
		buttons:    []uint{MouseLeft, MouseRight},
		pointer:    true,
		accumulate: perPort,
		controller: snescore.ControllerMouse,
	},
	DeviceSuperScope: {
		kind:       DeviceSuperScope,
		query:      DeviceSuperScope,
		units:      1,
		buttons:    []uint{SuperScopeTrigger, SuperScopeCursor, SuperScopeTurbo, SuperScopePause},
		pointer:    true,
		accumulate: shared,
		controller: snescore.ControllerSuperScope,
	},
	DeviceJustifier: {
		kind:       DeviceJustifier,
		query:      DeviceJustifier,
		units:      1,
		buttons:    []uint{JustifierTrigger, JustifierStart},
		pointer:    true,
		accumulate: shared,
		controller: snescore.ControllerJustifier,
	},
	DeviceJustifiers: {
		kind:       DeviceJustifiers,
		query:      DeviceJustifier,
		units:      2,
		buttons:    []uint{JustifierTrigger, JustifierStart},
		pointer:    true,
		accumulate: shared,
		controller: snescore.ControllerJustifier,
	},
}

// Buttons returns the ordered ids a device kind reports for one unit,
// axes first. It returns nil for unrecognized kinds.
func Buttons(kind DeviceKind) []uint {
	s, ok := schemas[kind]
	if !ok {
		return nil
	}
	var ids []uint
	if s.pointer {
		ids = append(ids, 0, 1)
	}
	return append(ids, s.buttons...)
}

// slot returns the engine pad slot that a unit's buttons are reported on.
func (s *deviceSchema) slot(port Port, unit int) int {
	switch {
	case s.kind == DeviceMultitap:
		return multitapSlots[port][unit]
	case unit == 1:
		return slotJustifier2
	default:
		return int(port) + 1
	}
}

// pointerChannel returns the engine pointer id a unit's position is
// reported on.
func (s *deviceSchema) pointerChannel(port Port, unit int) uint32 {
	switch {
	case s.kind == DeviceMouse:
		return PointerMouse1 + uint32(port)
	case unit == 1:
		return PointerJustifier2
	default:
		return PointerMouse1
	}
}

// controllerIDs returns the engine controller ids for the device on port.
func (s *deviceSchema) controllerIDs(port Port) [4]int {
	switch s.kind {
	case DeviceJoypad, DeviceMouse:
		return [4]int{int(port), 0, 0, 0}
	case DeviceMultitap:
		var ids [4]int
		for i, slot := range multitapSlots[port] {
			ids[i] = slot - 1
		}
		return ids
	case DeviceJustifiers:
		return [4]int{1, 0, 0, 0}
	default:
		return [4]int{}
	}
}

// buttonID encodes a pad slot and button into an engine button id.
func buttonID(slot int, id uint) uint32 {
	return uint32(slot)<<4 | uint32(id)
}

// Pointer is an accumulated pointer position.
type Pointer struct {
	X, Y int16
}

// Add accumulates a delta. Coordinates wrap like the engine's int16.
func (p *Pointer) Add(dx, dy int16) {
	p.X += dx
	p.Y += dy
}

// pointers holds every accumulator the multiplexer owns.
type pointers struct {
	mouse     [2]Pointer
	scope     Pointer
	justifier [2]Pointer
}

// accumulator returns the accumulator for a unit of a device on port.
func (p *pointers) accumulator(kind DeviceKind, port Port, unit int) *Pointer {
	switch kind {
	case DeviceMouse:
		return &p.mouse[port]
	case DeviceSuperScope:
		return &p.scope
	case DeviceJustifier, DeviceJustifiers:
		return &p.justifier[unit]
	default:
		return nil
	}
}

// reset clears the accumulators owned by a device attached to port.
func (p *pointers) reset(kind DeviceKind, port Port) {
	switch kind {
	case DeviceMouse:
		p.mouse[port] = Pointer{}
	case DeviceSuperScope:
		p.scope = Pointer{}
	case DeviceJustifier, DeviceJustifiers:
		p.justifier = [2]Pointer{}
	}
}
