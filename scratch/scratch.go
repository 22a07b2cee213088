// Package scratch stages byte buffers as files for an engine that can only
// read and write paths. Each Dir owns a private directory holding at most
// one file per artifact kind.
package scratch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Artifact identifies a staged file kind.
type Artifact int

const (
	ROM Artifact = iota
	SRAM
	SRAMProbe
	State
)

// Fixed artifact file names inside the private directory.
var names = map[Artifact]string{
	ROM:       ".s9x.rom.sfc",
	SRAM:      ".s9x.srm",
	SRAMProbe: ".s9x.srm.probe",
	State:     ".s9x.state.tmp",
}

// String returns the file name used for the artifact.
func (a Artifact) String() string {
	if n, ok := names[a]; ok {
		return n
	}
	return fmt.Sprintf("artifact(%d)", int(a))
}

// ErrClosed is returned for operations on a Dir after Close.
var ErrClosed = errors.New("scratch directory closed")

// Dir is a private scratch directory.
type Dir struct {
	path string
}

// New creates a private scratch directory under parent. An empty parent
// uses the system temp directory.
func New(parent string) (*Dir, error) {
	if parent == "" {
		parent = os.TempDir()
	}
	path, err := os.MkdirTemp(parent, "snes9x-libsnes-")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	return &Dir{path: path}, nil
}

// Root returns the directory path.
func (d *Dir) Root() string {
	return d.path
}

// Path returns the path of an artifact. The file may not exist.
func (d *Dir) Path(a Artifact) string {
	return filepath.Join(d.path, a.String())
}

// Encode writes data verbatim to the artifact's file and returns its path,
// ready to be handed to the engine.
func (d *Dir) Encode(a Artifact, data []byte) (string, error) {
	if d.path == "" {
		return "", ErrClosed
	}
	path := d.Path(a)
	if err := os.WriteFile(path, data, 0600); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write %s: %w", a, err)
	}
	return path, nil
}

// Decode reads back the artifact's file, typically after the engine
// wrote it.
func (d *Dir) Decode(a Artifact) ([]byte, error) {
	if d.path == "" {
		return nil, ErrClosed
	}
	f, err := os.Open(d.Path(a))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", a, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", a, err)
	}
	return data, nil
}

// Size returns the length of the artifact's file.
func (d *Dir) Size(a Artifact) (int64, error) {
	if d.path == "" {
		return 0, ErrClosed
	}
	fi, err := os.Stat(d.Path(a))
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", a, err)
	}
	return fi.Size(), nil
}

// Exists reports whether the artifact's file is present.
func (d *Dir) Exists(a Artifact) bool {
	if d.path == "" {
		return false
	}
	_, err := os.Stat(d.Path(a))
	return err == nil
}

// Remove deletes the artifact's file. A missing file is not an error.
func (d *Dir) Remove(a Artifact) error {
	if d.path == "" {
		return nil
	}
	if err := os.Remove(d.Path(a)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", a, err)
	}
	return nil
}

// Close removes the directory and everything in it.
func (d *Dir) Close() error {
	if d.path == "" {
		return nil
	}
	path := d.path
	d.path = ""
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove scratch directory: %w", err)
	}
	return nil
}
