package romloader

import (
	"fmt"
	"io"

	"github.com/bodgit/sevenzip"
)

// extractFrom7z extracts the first ROM file from a 7z archive
func extractFrom7z(path string, extensions []string) (*Image, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open 7z: %w", err)
	}
	defer r.Close()

	return findROM(sliceWalker(r.File, func(f *sevenzip.File) entry {
		return entry{
			name: f.Name,
			dir:  f.FileInfo().IsDir(),
			open: func() (io.ReadCloser, error) { return f.Open() },
		}
	}), extensions)
}
