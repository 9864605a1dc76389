package config

import (
	"io/fs"
	"os"
)

// fileSystem is where list configs are read from. Tests swap in an
// fstest.MapFS.
var fileSystem fs.FS = hostFS{}

// hostFS reads from the host filesystem. Unlike os.DirFS it accepts absolute
// paths.
type hostFS struct{}

var _ fs.ReadFileFS = hostFS{}

func (hostFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

func (hostFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}
