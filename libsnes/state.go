package libsnes

import (
	"fmt"

	"github.com/OV2/snes9x-libsnes/scratch"
)

// SerializeSize returns the size of a save state of the current emulated
// state, or 0 if the engine cannot freeze. The engine has no size query,
// so this performs a full freeze.
func (a *Adapter) SerializeSize() int {
	if err := a.freeze(); err != nil {
		return 0
	}
	defer a.removeArtifact(scratch.State)

	size, err := a.scratch.Size(scratch.State)
	if err != nil {
		a.log.Print(err)
		return 0
	}
	return int(size)
}

// Serialize writes a save state into dst. dst must be exactly the size of
// the state; otherwise ErrSizeMismatch is returned and dst is untouched.
func (a *Adapter) Serialize(dst []byte) error {
	if err := a.freeze(); err != nil {
		return err
	}
	defer a.removeArtifact(scratch.State)

	data, err := a.scratch.Decode(scratch.State)
	if err != nil {
		a.log.Print(err)
		return err
	}
	if len(data) != len(dst) {
		a.log.Printf("Save state is %d bytes, buffer is %d", len(data), len(dst))
		return fmt.Errorf("%w: state is %d bytes, buffer is %d", ErrSizeMismatch, len(data), len(dst))
	}

	copy(dst, data)
	return nil
}

// Unserialize restores a save state previously produced by Serialize.
func (a *Adapter) Unserialize(src []byte) error {
	path, err := a.scratch.Encode(scratch.State, src)
	if err != nil {
		a.log.Print(err)
		return err
	}
	defer a.removeArtifact(scratch.State)

	if err := a.engine.UnfreezeGame(path); err != nil {
		a.log.Printf("Failed to restore save state: %v", err)
		return fmt.Errorf("%w: %v", ErrEngineRejected, err)
	}
	return nil
}

// freeze has the engine write a save state to the state artifact.
func (a *Adapter) freeze() error {
	if err := a.engine.FreezeGame(a.scratch.Path(scratch.State)); err != nil {
		a.log.Printf("Failed to freeze: %v", err)
		a.removeArtifact(scratch.State)
		return fmt.Errorf("%w: %v", ErrEngineRejected, err)
	}
	return nil
}
