package git

import (
	"context"
	"errors"
	"io"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"go.trai.ch/prepdeps/internal/core/domain"
	"go.trai.ch/prepdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	remoteName = "origin"

	// minAbbrevLen matches the shortest commit abbreviation git accepts.
	minAbbrevLen = 4
)

// Native implements ports.VCS and ports.Inspector in-process with go-git.
type Native struct{}

// NewNative creates a Native adapter.
func NewNative() *Native {
	return &Native{}
}

// Clone clones url into dest. Progress goes to the vertex in ctx, if any.
func (n *Native) Clone(ctx context.Context, url, dest string) error {
	var progress io.Writer
	if v, ok := ports.VertexFromContext(ctx); ok {
		progress = v.Stdout()
	}

	_, err := gogit.PlainCloneContext(ctx, dest, false, &gogit.CloneOptions{
		URL:      url,
		Progress: progress,
	})
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrCloneFailed.Error()), "url", url)
		return zerr.With(err, "path", dest)
	}
	return nil
}

// Checkout switches the repository to revision. A name matching a local
// branch checks that branch out. A name matching a branch of origin creates
// a local tracking branch. Anything else is resolved as a commit and checked
// out detached.
func (n *Native) Checkout(_ context.Context, repoPath, revision string) error {
	if err := n.checkout(repoPath, revision); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrCheckoutFailed.Error()), "revision", revision)
		return zerr.With(err, "path", repoPath)
	}
	return nil
}

func (n *Native) checkout(repoPath, revision string) error {
	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		return err
	}
	w, err := repo.Worktree()
	if err != nil {
		return err
	}

	local := plumbing.NewBranchReferenceName(revision)
	if _, err := repo.Reference(local, true); err == nil {
		return w.Checkout(&gogit.CheckoutOptions{Branch: local})
	}

	if remote, err := repo.Reference(plumbing.NewRemoteReferenceName(remoteName, revision), true); err == nil {
		if err := w.Checkout(&gogit.CheckoutOptions{Branch: local, Hash: remote.Hash(), Create: true}); err != nil {
			return err
		}
		err := repo.CreateBranch(&config.Branch{Name: revision, Remote: remoteName, Merge: local})
		if err != nil && !errors.Is(err, gogit.ErrBranchExists) {
			return err
		}
		return nil
	}

	hash, err := resolveCommit(repo, revision)
	if err != nil {
		return err
	}
	return w.Checkout(&gogit.CheckoutOptions{Hash: hash})
}

// resolveCommit resolves full revisions through go-git and falls back to a
// unique prefix match over all commits for abbreviated hashes.
func resolveCommit(repo *gogit.Repository, revision string) (plumbing.Hash, error) {
	if h, err := repo.ResolveRevision(plumbing.Revision(revision)); err == nil {
		return *h, nil
	}

	prefix := strings.ToLower(revision)
	if len(prefix) < minAbbrevLen || !isHex(prefix) {
		return plumbing.ZeroHash, zerr.With(domain.ErrRevisionNotFound, "revision", revision)
	}

	iter, err := repo.CommitObjects()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	defer iter.Close()

	var matches []plumbing.Hash
	err = iter.ForEach(func(c *object.Commit) error {
		if strings.HasPrefix(c.Hash.String(), prefix) {
			matches = append(matches, c.Hash)
			if len(matches) > 1 {
				return storer.ErrStop
			}
		}
		return nil
	})
	if err != nil {
		return plumbing.ZeroHash, err
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return plumbing.ZeroHash, zerr.With(domain.ErrRevisionNotFound, "revision", revision)
	default:
		return plumbing.ZeroHash, zerr.With(zerr.With(domain.ErrRevisionNotFound, "revision", revision), "reason", "ambiguous")
	}
}

func isHex(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

// Head returns the full commit hash HEAD points at.
func (n *Native) Head(_ context.Context, repoPath string) (string, error) {
	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrHeadResolveFailed.Error()), "path", repoPath)
	}
	ref, err := repo.Head()
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrHeadResolveFailed.Error()), "path", repoPath)
	}
	return ref.Hash().String(), nil
}
