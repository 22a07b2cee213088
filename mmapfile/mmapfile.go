// Package mmapfile maps a file into memory read-write so that writes to
// the returned bytes land in the file without further calls.
package mmapfile

import (
	"errors"
	"fmt"
	"os"
)

// ErrEmpty is returned when the file to map has zero length.
var ErrEmpty = errors.New("cannot map an empty file")

// File is a shared, writable mapping of a file. The mapping and the
// descriptor stay valid until Close.
type File struct {
	f     *os.File
	data  []byte
	unmap func() error
	flush func() error
}

// Open maps the whole of the file at path.
func Open(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	size := int(fi.Size())
	if size == 0 {
		f.Close()
		return nil, ErrEmpty
	}

	data, unmap, flush, err := mapFile(f, size)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to map %s: %w", path, err)
	}

	return &File{f: f, data: data, unmap: unmap, flush: flush}, nil
}

// Bytes returns the mapped region. It must not be used after Close.
func (m *File) Bytes() []byte {
	return m.data
}

// Len returns the mapped length.
func (m *File) Len() int {
	return len(m.data)
}

// Name returns the path of the backing file.
func (m *File) Name() string {
	if m.f == nil {
		return ""
	}
	return m.f.Name()
}

// Sync flushes the mapped region to the backing file.
func (m *File) Sync() error {
	if m.data == nil {
		return nil
	}
	return m.flush()
}

// Close unmaps the region and then closes the backing file. Calling Close
// more than once is harmless.
func (m *File) Close() error {
	var errs []error
	if m.data != nil {
		m.data = nil
		if err := m.unmap(); err != nil {
			errs = append(errs, fmt.Errorf("failed to unmap: %w", err))
		}
	}
	if m.f != nil {
		if err := m.f.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close: %w", err))
		}
		m.f = nil
	}
	return errors.Join(errs...)
}
