package ports

import "context"

// VCS clones repositories and switches them to a revision.
//
//go:generate go run go.uber.org/mock/mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type VCS interface {
	// Clone clones url into dest. dest must not exist or must be empty.
	Clone(ctx context.Context, url, dest string) error

	// Checkout switches the repository at repoPath to revision, which may be
	// a branch name or a (possibly abbreviated) commit hash.
	Checkout(ctx context.Context, repoPath, revision string) error
}

// Inspector reads the state of a local repository.
type Inspector interface {
	// Head returns the full commit hash HEAD points at.
	Head(ctx context.Context, repoPath string) (string, error)
}
