//go:build !(linux || darwin || freebsd)

package mmfile

import (
	"fmt"
	"os"
)

// Map reads the whole file when mmap is not available.
func Map(path string) (*Mapping, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("mmfile: %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Mapping{data: data}, nil
}
