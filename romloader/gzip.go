package romloader

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// extractFromGzip extracts the first ROM file from a tar.gz archive, or
// the whole stream of a plain .gz file
func extractFromGzip(path string, extensions []string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip: %w", err)
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gr.Close()

	lowerPath := strings.ToLower(path)
	if strings.HasSuffix(lowerPath, ".tar.gz") || strings.HasSuffix(lowerPath, ".tgz") {
		return findROM(tarWalker(tar.NewReader(gr)), extensions)
	}

	// A plain .gz holds the ROM itself, named after the archive.
	data, err := limitedRead(gr)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress gzip: %w", err)
	}
	name := filepath.Base(path)
	if strings.HasSuffix(strings.ToLower(name), ".gz") {
		name = name[:len(name)-3]
	}
	return &Image{Name: name, Data: data}, nil
}

func tarWalker(tr *tar.Reader) walker {
	return func() (entry, error) {
		header, err := tr.Next()
		if err != nil {
			return entry{}, err
		}
		return entry{
			name: header.Name,
			dir:  header.Typeflag != tar.TypeReg,
			open: func() (io.ReadCloser, error) { return io.NopCloser(tr), nil },
		}, nil
	}
}
