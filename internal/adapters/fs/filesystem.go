package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/prepdeps/internal/core/domain"
	"go.trai.ch/prepdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Filesystem = (*Filesystem)(nil)

// Filesystem implements ports.Filesystem on the local disk.
type Filesystem struct{}

// NewFilesystem creates a new Filesystem.
func NewFilesystem() *Filesystem {
	return &Filesystem{}
}

// CreateDir creates path and any missing parents. An existing path is an error.
func (f *Filesystem) CreateDir(path string) error {
	if _, err := os.Lstat(path); err == nil {
		return zerr.With(domain.ErrDestinationExists, "path", path)
	} else if !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrCreateDirFailed.Error()), "path", path)
	}

	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCreateDirFailed.Error()), "path", path)
	}
	return nil
}

// DirExists reports whether path is an existing directory.
func (f *Filesystem) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
