//go:build !unix

package glb

import (
	"errors"
	"os"
)

var errNoMmap = errors.New("glb: mmap not supported on this platform")

func mapFile(_ *os.File, _ int) ([]byte, error) {
	return nil, errNoMmap
}

func unmapFile(_ []byte) error {
	return nil
}
