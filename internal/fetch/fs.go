package fetch

import (
	"os"

	"github.com/spf13/afero"
)

const dirPerm os.FileMode = 0o755

// FSDirectoryCreator creates directories on an afero filesystem.
type FSDirectoryCreator struct {
	fs afero.Fs
}

// NewFSDirectoryCreator returns a DirectoryCreator backed by fs.
func NewFSDirectoryCreator(fs afero.Fs) *FSDirectoryCreator {
	return &FSDirectoryCreator{fs: fs}
}

func (d *FSDirectoryCreator) MkdirAll(dir string) error {
	return d.fs.MkdirAll(dir, dirPerm)
}
