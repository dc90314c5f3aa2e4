package ports

// Verifier checks which dependency paths are present on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// Populated returns the subset of paths that exist, in input order.
	Populated(paths []string) ([]string, error)
}
