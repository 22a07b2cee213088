//go:build unix

package mmapfile

import (
	"os"

	"golang.org/x/sys/unix"
)

func mapFile(f *os.File, size int) ([]byte, func() error, func() error, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, nil, err
	}
	unmap := func() error {
		return unix.Munmap(data)
	}
	flush := func() error {
		return unix.Msync(data, unix.MS_SYNC)
	}
	return data, unmap, flush, nil
}
