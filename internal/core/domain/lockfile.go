package domain

import "time"

// LockfileVersion is the current record format version.
const LockfileVersion = 1

// FetchRecord describes one dependency as it was found after a run.
type FetchRecord struct {
	Name        string         `json:"name"`
	Kind        DependencyKind `json:"kind"`
	Source      string         `json:"source"`
	Destination string         `json:"destination"`

	// Revision is the commit HEAD points at after the run (repositories only).
	Revision string `json:"revision,omitzero"`

	// ContentHash is the xxhash fingerprint of the file contents (files only).
	ContentHash string `json:"content_hash,omitzero"`

	FetchedAt time.Time `json:"fetched_at,omitzero"`
}

// Lockfile summarizes every record produced by a single run.
type Lockfile struct {
	// Version is the record format version.
	Version int

	// Records maps dependency names to their fetch records.
	Records map[string]FetchRecord
}

// NewLockfile builds a Lockfile from a set of records.
func NewLockfile(records []FetchRecord) *Lockfile {
	lf := &Lockfile{
		Version: LockfileVersion,
		Records: make(map[string]FetchRecord, len(records)),
	}
	for _, r := range records {
		lf.Records[r.Name] = r
	}
	return lf
}
