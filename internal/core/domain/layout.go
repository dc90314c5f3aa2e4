package domain

import "path/filepath"

const (
	// LibDirName is the directory every dependency is placed under.
	LibDirName = "lib"

	// StateDirName is the name of the internal state directory.
	StateDirName = ".prepdeps"

	// RecordsDirName is the name of the fetch record directory.
	RecordsDirName = "records"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultRecordsPath returns the default path for fetch records.
// It joins .prepdeps and records.
func DefaultRecordsPath() string {
	return filepath.Join(StateDirName, RecordsDirName)
}
