package refcore

import "errors"

var (
	// ErrROMTooSmall is returned for images too short to hold a header.
	ErrROMTooSmall = errors.New("ROM image too small")

	// ErrNoCartridge is returned by operations that need a loaded ROM.
	ErrNoCartridge = errors.New("no cartridge loaded")

	// ErrBadState is returned for save states the core did not write.
	ErrBadState = errors.New("invalid save state")

	// ErrWrongCartridge is returned for save states of another cartridge.
	ErrWrongCartridge = errors.New("save state belongs to another cartridge")

	// ErrBadCommand is returned for malformed control mappings.
	ErrBadCommand = errors.New("invalid control command")
)
