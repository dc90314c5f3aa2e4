package cas_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prepdeps/internal/adapters/cas"
	"go.trai.ch/prepdeps/internal/core/domain"
)

func readRecord(t *testing.T, root, name string) domain.FetchRecord {
	t.Helper()
	data, err := os.ReadFile(cas.Filename(root, name))
	require.NoError(t, err)

	var record domain.FetchRecord
	require.NoError(t, json.Unmarshal(data, &record))
	return record
}

func TestStore_Put(t *testing.T) {
	root := t.TempDir()

	record := domain.FetchRecord{
		Name:        "glm",
		Kind:        domain.KindRepository,
		Source:      "https://github.com/g-truc/glm.git",
		Destination: "lib/glm",
		Revision:    "8f39bb8aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		FetchedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, cas.NewStore().Put(root, record))

	assert.Equal(t, record, readRecord(t, root, "glm"))
}

func TestStore_Layout(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, cas.NewStore().Put(root, domain.FetchRecord{Name: "stb_image", Kind: domain.KindFile, ContentHash: "0123456789abcdef"}))

	path := cas.Filename(root, "stb_image")
	assert.Equal(t, filepath.Join(root, ".prepdeps", "records"), filepath.Dir(path))
	assert.Equal(t, ".json", filepath.Ext(path))

	data, err := os.ReadFile(path) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Contains(t, string(data), `"content_hash": "0123456789abcdef"`)
	assert.NotContains(t, string(data), `"revision"`)
	assert.NotContains(t, string(data), `"fetched_at"`)
}

func TestStore_Put_RootedAtWorkDir(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	store := cas.NewStore()

	require.NoError(t, store.Put(first, domain.FetchRecord{Name: "vdu", Revision: "aaa"}))
	require.NoError(t, store.Put(second, domain.FetchRecord{Name: "vdu", Revision: "bbb"}))

	assert.Equal(t, "aaa", readRecord(t, first, "vdu").Revision)
	assert.Equal(t, "bbb", readRecord(t, second, "vdu").Revision)
}

func TestStore_Put_Overwrites(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()
	require.NoError(t, store.Put(root, domain.FetchRecord{Name: "vdu", Revision: "aaa"}))
	require.NoError(t, store.Put(root, domain.FetchRecord{Name: "vdu", Revision: "bbb"}))

	assert.Equal(t, "bbb", readRecord(t, root, "vdu").Revision)
}

func TestStore_Put_WriteFailure(t *testing.T) {
	root := t.TempDir()
	// A file where the state directory should be blocks the write.
	require.NoError(t, os.WriteFile(filepath.Join(root, ".prepdeps"), []byte("x"), 0o600))

	err := cas.NewStore().Put(root, domain.FetchRecord{Name: "vdu"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write fetch record")
}
