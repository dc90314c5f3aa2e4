package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/prepdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier checks which paths exist on disk.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Populated returns the paths that exist, in input order. A directory counts
// as populated only when it has at least one entry.
func (v *Verifier) Populated(paths []string) ([]string, error) {
	var present []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to stat dependency path"), "path", path)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to read dependency directory"), "path", path)
			}
			if len(entries) == 0 {
				continue
			}
		}
		present = append(present, path)
	}
	return present, nil
}
