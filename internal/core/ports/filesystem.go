package ports

// Filesystem performs the directory operations the fetch procedure needs.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type Filesystem interface {
	// CreateDir creates path and any missing parents.
	// It fails if path itself already exists.
	CreateDir(path string) error

	// DirExists reports whether path exists and is a directory.
	DirExists(path string) bool
}
