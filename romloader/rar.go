package romloader

import (
	"fmt"
	"io"

	"github.com/nwaples/rardecode/v2"
)

// extractFromRAR extracts the first ROM file from a RAR archive
func extractFromRAR(path string, extensions []string) (*Image, error) {
	r, err := rardecode.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rar: %w", err)
	}
	defer r.Close()

	return findROM(func() (entry, error) {
		header, err := r.Next()
		if err != nil {
			return entry{}, err
		}
		return entry{
			name: header.Name,
			dir:  header.IsDir,
			open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
		}, nil
	}, extensions)
}
