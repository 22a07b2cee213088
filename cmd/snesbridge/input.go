package main

import (
	"github.com/OV2/snes9x-libsnes/libsnes"
)

// scriptedInput is a host input source with no physical devices. Pointer
// devices drift one unit right and down per frame, and pad 1 can hold
// Select to request hi-res frames.
type scriptedInput struct {
	hiRes bool
	polls int
}

func (in *scriptedInput) poll() {
	in.polls++
}

func (in *scriptedInput) state(port libsnes.Port, device libsnes.DeviceKind, index, id uint) int16 {
	switch device {
	case libsnes.DeviceJoypad:
		if in.hiRes && port == libsnes.Port1 && id == libsnes.JoypadSelect {
			return 1
		}
	case libsnes.DeviceMouse, libsnes.DeviceSuperScope, libsnes.DeviceJustifier:
		if id == 0 || id == 1 {
			return 1
		}
	}
	return 0
}
