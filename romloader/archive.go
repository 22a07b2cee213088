package romloader

import (
	"fmt"
	"io"
	"path/filepath"
)

// entry is one member of an archive.
type entry struct {
	name string
	dir  bool
	open func() (io.ReadCloser, error)
}

// walker yields archive members in order and io.EOF after the last one.
type walker func() (entry, error)

// sliceWalker walks an archive whose members are all known up front.
func sliceWalker[F any](files []F, toEntry func(F) entry) walker {
	i := 0
	return func() (entry, error) {
		if i >= len(files) {
			return entry{}, io.EOF
		}
		e := toEntry(files[i])
		i++
		return e, nil
	}
}

// findROM extracts the first member that is a file with a ROM extension.
func findROM(next walker, extensions []string) (*Image, error) {
	for {
		e, err := next()
		if err == io.EOF {
			return nil, ErrNoROMFile
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read archive entry: %w", err)
		}
		if e.dir || !isROMFile(e.name, extensions) {
			continue
		}

		rc, err := e.open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s in archive: %w", e.name, err)
		}
		data, err := limitedRead(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", e.name, err)
		}
		return &Image{Name: filepath.Base(e.name), Data: data}, nil
	}
}
