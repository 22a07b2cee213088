package libsnes

// Library revision reported to hosts.
const (
	LibraryRevisionMajor = 1
	LibraryRevisionMinor = 1
)

// Port identifies a physical controller port.
type Port int

const (
	Port1 Port = iota
	Port2
)

// String returns the display name of the port.
func (p Port) String() string {
	switch p {
	case Port1:
		return "port 1"
	case Port2:
		return "port 2"
	default:
		return "unknown port"
	}
}

// DeviceKind identifies a controller device attachable to a port.
type DeviceKind uint

const (
	DeviceNone DeviceKind = iota
	DeviceJoypad
	DeviceMultitap
	DeviceMouse
	DeviceSuperScope
	DeviceJustifier
	DeviceJustifiers
)

// String returns the display name of the device kind.
func (d DeviceKind) String() string {
	switch d {
	case DeviceNone:
		return "None"
	case DeviceJoypad:
		return "Joypad"
	case DeviceMultitap:
		return "Multitap"
	case DeviceMouse:
		return "Mouse"
	case DeviceSuperScope:
		return "Super Scope"
	case DeviceJustifier:
		return "Justifier"
	case DeviceJustifiers:
		return "Justifiers"
	default:
		return "Unknown"
	}
}

// Joypad button IDs.
const (
	JoypadB = iota
	JoypadY
	JoypadSelect
	JoypadStart
	JoypadUp
	JoypadDown
	JoypadLeft
	JoypadRight
	JoypadA
	JoypadX
	JoypadL
	JoypadR
)

// Mouse IDs.
const (
	MouseX = iota
	MouseY
	MouseLeft
	MouseRight
)

// Super Scope IDs.
const (
	SuperScopeX = iota
	SuperScopeY
	SuperScopeTrigger
	SuperScopeCursor
	SuperScopeTurbo
	SuperScopePause
)

// Justifier IDs.
const (
	JustifierX = iota
	JustifierY
	JustifierTrigger
	JustifierStart
)

// MemoryKind identifies a memory block exposed to the host.
type MemoryKind uint

const (
	MemoryCartridgeRAM MemoryKind = iota
	MemoryCartridgeRTC
	MemoryBSXRAM
	MemoryBSXPRAM
	MemorySufamiTurboARAM
	MemorySufamiTurboBRAM
	MemoryGameBoyRAM
	MemoryGameBoyRTC
)

// Pointer channel ids handed to the engine. They follow the last joypad
// button id so they never collide with a button report.
const (
	PointerMouse1 uint32 = JoypadR + 1 + iota
	PointerMouse2
	PointerJustifier2
)
