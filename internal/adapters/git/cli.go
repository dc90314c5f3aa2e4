// Package git provides repository clone, checkout and inspection adapters.
package git

import (
	"context"

	"go.trai.ch/prepdeps/internal/core/domain"
	"go.trai.ch/prepdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

// Binary is the name of the git executable looked up on PATH.
const Binary = "git"

// CLI implements ports.VCS by running the git binary through an executor.
type CLI struct {
	executor ports.Executor
}

// NewCLI creates a CLI backed by the given executor.
func NewCLI(executor ports.Executor) *CLI {
	return &CLI{executor: executor}
}

// Clone runs `git clone <url> <dest> --quiet`.
func (c *CLI) Clone(ctx context.Context, url, dest string) error {
	err := c.executor.Execute(ctx, ports.Command{
		Name: Binary,
		Args: []string{"clone", url, dest, "--quiet"},
	})
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrCloneFailed.Error()), "url", url)
		return zerr.With(err, "path", dest)
	}
	return nil
}

// Checkout runs `git checkout <revision>` inside repoPath.
func (c *CLI) Checkout(ctx context.Context, repoPath, revision string) error {
	err := c.executor.Execute(ctx, ports.Command{
		Name: Binary,
		Args: []string{"checkout", revision},
		Dir:  repoPath,
	})
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrCheckoutFailed.Error()), "revision", revision)
		return zerr.With(err, "path", repoPath)
	}
	return nil
}
