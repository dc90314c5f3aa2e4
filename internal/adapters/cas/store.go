// Package cas implements fetch record storage.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/prepdeps/internal/core/domain"
	"go.trai.ch/prepdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RecordStore = (*Store)(nil)

// Store implements ports.RecordStore using a file-per-dependency strategy
// under root/.prepdeps/records. Files are safe to write concurrently for
// distinct names.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Put stores the record for a run rooted at root, replacing any previous
// record for the same name.
func (s *Store) Put(root string, record domain.FetchRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRecordMarshalFailed.Error()), "dependency", record.Name)
	}

	filename := Filename(root, record.Name)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "dependency", record.Name)
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "dependency", record.Name)
	}

	return nil
}

// Filename returns the path of the record for name in a run rooted at root.
func Filename(root, name string) string {
	hash := sha256.Sum256([]byte(name))
	return filepath.Join(root, domain.DefaultRecordsPath(), hex.EncodeToString(hash[:])+".json")
}
