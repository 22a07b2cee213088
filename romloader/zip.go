package romloader

import (
	"archive/zip"
	"fmt"
	"io"
)

// extractFromZIP extracts the first ROM file from a ZIP archive
func extractFromZIP(path string, extensions []string) (*Image, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip: %w", err)
	}
	defer r.Close()

	return findROM(sliceWalker(r.File, func(f *zip.File) entry {
		return entry{
			name: f.Name,
			dir:  f.FileInfo().IsDir(),
			open: func() (io.ReadCloser, error) { return f.Open() },
		}
	}), extensions)
}
