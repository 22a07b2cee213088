//go:build !unix && !windows

package mmapfile

import (
	"io"
	"os"
)

// Platforms without mmap get a heap copy that is written back to the file
// on Sync and Close.
func mapFile(f *os.File, size int) ([]byte, func() error, func() error, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, nil, nil, err
	}
	flush := func() error {
		_, err := f.WriteAt(data, 0)
		return err
	}
	return data, flush, flush, nil
}
