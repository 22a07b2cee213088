package libsnes

import "errors"

// ErrEngineInit is returned when the engine's memory or audio subsystem
// fails to initialize. Nothing else can work afterwards and hosts should
// exit.
var ErrEngineInit = errors.New("failed to init memory or APU")

// ErrEmptyROM is returned when a cartridge load is given no data.
var ErrEmptyROM = errors.New("empty ROM image")

// ErrEngineRejected is returned when the engine refuses a load, freeze or
// unfreeze.
var ErrEngineRejected = errors.New("engine rejected the operation")

// ErrUnsupported is returned by cartridge formats the bridge does not
// handle.
var ErrUnsupported = errors.New("unsupported cartridge format")

// ErrInvalidDevice is returned when attaching an unrecognized device kind.
var ErrInvalidDevice = errors.New("invalid device")

// ErrSizeMismatch is returned when a save-state buffer does not match the
// serialized size.
var ErrSizeMismatch = errors.New("save state size mismatch")

