package git_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// newTestRepo creates a repository with two commits and returns it together
// with the hashes of the first and second commit.
func newTestRepo(t *testing.T) (string, *gogit.Repository, plumbing.Hash, plumbing.Hash) {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	w, err := repo.Worktree()
	require.NoError(t, err)

	commit := func(content, msg string) plumbing.Hash {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "glm.hpp"), []byte(content), 0o600))
		_, err := w.Add("glm.hpp")
		require.NoError(t, err)
		h, err := w.Commit(msg, &gogit.CommitOptions{
			Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Unix(1700000000, 0)},
		})
		require.NoError(t, err)
		return h
	}

	first := commit("v1", "first")
	second := commit("v2", "second")
	return dir, repo, first, second
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
