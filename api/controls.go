package snescore

// ControllerType identifies the physical controller plugged into a port.
type ControllerType int

const (
	ControllerNone ControllerType = iota
	ControllerJoypad
	ControllerMP5
	ControllerMouse
	ControllerSuperScope
	ControllerJustifier
)

// String returns the display name of the controller type.
func (c ControllerType) String() string {
	switch c {
	case ControllerNone:
		return "None"
	case ControllerJoypad:
		return "Joypad"
	case ControllerMP5:
		return "Multitap"
	case ControllerMouse:
		return "Mouse"
	case ControllerSuperScope:
		return "Super Scope"
	case ControllerJustifier:
		return "Justifier"
	default:
		return "Unknown"
	}
}
