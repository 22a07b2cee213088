package libsnes

import (
	"fmt"
)

// AttachDevice binds a device kind to a port and resets the pointer
// accumulators the device owns. Unrecognized kinds and ports are rejected
// without any change.
func (a *Adapter) AttachDevice(port Port, kind DeviceKind) error {
	if port != Port1 && port != Port2 {
		a.log.Printf("Invalid port %d", int(port))
		return fmt.Errorf("%w: port %d", ErrInvalidDevice, int(port))
	}
	s, ok := schemas[kind]
	if !ok {
		a.log.Print("Invalid device!")
		return fmt.Errorf("%w: %d", ErrInvalidDevice, uint(kind))
	}

	a.attach(port, s)
	a.pointers.reset(kind, port)
	return nil
}

// attach binds s to port on both sides of the bridge.
func (a *Adapter) attach(port Port, s *deviceSchema) {
	a.ports[port] = s
	a.engine.SetController(int(port), s.controller, s.controllerIDs(port))
}

// PortDevice returns the device kind attached to port.
func (a *Adapter) PortDevice(port Port) DeviceKind {
	if port != Port1 && port != Port2 || a.ports[port] == nil {
		return DeviceNone
	}
	return a.ports[port].kind
}

// PointerState returns the accumulated position of a pointer device unit.
// Mice are tracked per port; the Super Scope and Justifiers ignore port.
func (a *Adapter) PointerState(kind DeviceKind, port Port, unit int) Pointer {
	if port != Port1 && port != Port2 || unit < 0 || unit > 1 {
		return Pointer{}
	}
	if p := a.pointers.accumulator(kind, port, unit); p != nil {
		return *p
	}
	return Pointer{}
}

// reportButtons queries the host for every button and axis of each
// attached device and forwards them to the engine. Pointer axes are host
// deltas; they are summed into the device's accumulator and the engine is
// given the running position.
func (a *Adapter) reportButtons() {
	for _, port := range []Port{Port1, Port2} {
		s := a.ports[port]
		if s == nil {
			a.log.Printf("Unknown device on %s", port)
			continue
		}

		for unit := 0; unit < s.units; unit++ {
			if s.pointer {
				acc := a.pointers.accumulator(s.kind, port, unit)
				acc.Add(a.query(port, s.query, unit, 0), a.query(port, s.query, unit, 1))
				a.engine.ReportPointer(s.pointerChannel(port, unit), acc.X, acc.Y)
			}

			slot := s.slot(port, unit)
			for _, id := range s.buttons {
				a.engine.ReportButton(buttonID(slot, id), a.query(port, s.query, unit, id) != 0)
			}
		}
	}
}

func (a *Adapter) query(port Port, device DeviceKind, index int, id uint) int16 {
	if a.inputState == nil {
		return 0
	}
	return a.inputState(port, device, uint(index), id)
}

// Number of engine pad slots mapped to joypad commands.
const padSlots = 8

var joypadButtonNames = [...]string{
	JoypadB:      "B",
	JoypadY:      "Y",
	JoypadSelect: "Select",
	JoypadStart:  "Start",
	JoypadUp:     "Up",
	JoypadDown:   "Down",
	JoypadLeft:   "Left",
	JoypadRight:  "Right",
	JoypadA:      "A",
	JoypadX:      "X",
	JoypadL:      "L",
	JoypadR:      "R",
}

// Commands sharing a pad slot's button with the joypad command. Mice,
// the Super Scope and Justifiers report their buttons on these ids.
var sharedCommands = map[int]map[uint]string{
	1: {
		JoypadSelect: "Mouse1 L",
		JoypadStart:  "Mouse1 R",
	},
	2: {
		JoypadSelect: "Mouse2 L,Superscope Fire,Justifier1 Trigger",
		JoypadStart:  "Mouse2 R,Superscope Cursor,Justifier1 Start",
		JoypadUp:     "Superscope ToggleTurbo",
		JoypadDown:   "Superscope Pause",
	},
}

var pointerCommands = map[uint32]string{
	PointerMouse1:     "Pointer Mouse1+Superscope+Justifier1",
	PointerMouse2:     "Pointer Mouse2",
	PointerJustifier2: "Pointer Justifier2",
}

// buttonCommand returns the engine command for a button on a pad slot.
func buttonCommand(slot int, id uint) string {
	cmd := fmt.Sprintf("Joypad%d %s", slot, joypadButtonNames[id])
	if extra, ok := sharedCommands[slot][id]; ok {
		return "{" + cmd + "," + extra + "}"
	}
	return cmd
}

// mapButtons replaces the engine's control mappings with the defaults.
func (a *Adapter) mapButtons() {
	a.engine.UnmapAllControls()

	for slot := 1; slot <= padSlots; slot++ {
		for _, id := range joypadButtons {
			if err := a.engine.MapButton(buttonID(slot, id), buttonCommand(slot, id)); err != nil {
				a.log.Printf("Failed to map pad %d button %d: %v", slot, id, err)
			}
		}
	}

	justifier2 := map[uint]string{
		JustifierTrigger: "Justifier2 Trigger",
		JustifierStart:   "Justifier2 Start",
	}
	for id, cmd := range justifier2 {
		if err := a.engine.MapButton(buttonID(slotJustifier2, id), cmd); err != nil {
			a.log.Printf("Failed to map %q: %v", cmd, err)
		}
	}

	for id, cmd := range pointerCommands {
		if err := a.engine.MapPointer(id, cmd); err != nil {
			a.log.Printf("Failed to map %q: %v", cmd, err)
		}
	}
}
