package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prepdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

func validManifest() *domain.Manifest {
	return &domain.Manifest{
		Root: "lib",
		Dependencies: []domain.Dependency{
			{Name: "vdu", Kind: domain.KindRepository, Source: "https://example.com/vdu.git", Destination: "lib/vdu"},
			{Name: "glm", Kind: domain.KindRepository, Source: "https://example.com/glm.git", Destination: "lib/glm", Revision: "8f39bb8"},
			{Name: "stb_image", Kind: domain.KindFile, Source: "https://example.com/stb_image.h", Destination: "lib/stb/stb/stb_image.h"},
		},
	}
}

func TestManifest_Validate(t *testing.T) {
	require.NoError(t, validManifest().Validate())
}

func TestManifest_Validate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *domain.Manifest)
		wantMsg string
		wantKey string
	}{
		{
			name:    "empty root",
			mutate:  func(m *domain.Manifest) { m.Root = "" },
			wantMsg: "invalid manifest root",
			wantKey: "root",
		},
		{
			name:    "absolute root",
			mutate:  func(m *domain.Manifest) { m.Root = "/lib" },
			wantMsg: "invalid manifest root",
			wantKey: "root",
		},
		{
			name:    "missing name",
			mutate:  func(m *domain.Manifest) { m.Dependencies[0].Name = "" },
			wantMsg: "dependency name is required",
			wantKey: "index",
		},
		{
			name:    "duplicate name",
			mutate:  func(m *domain.Manifest) { m.Dependencies[1].Name = "vdu" },
			wantMsg: "duplicate dependency",
			wantKey: "dependency",
		},
		{
			name:    "unknown kind",
			mutate:  func(m *domain.Manifest) { m.Dependencies[0].Kind = "tarball" },
			wantMsg: "unknown dependency kind",
			wantKey: "kind",
		},
		{
			name:    "missing source",
			mutate:  func(m *domain.Manifest) { m.Dependencies[0].Source = "" },
			wantMsg: "dependency source is required",
			wantKey: "dependency",
		},
		{
			name:    "destination escapes root",
			mutate:  func(m *domain.Manifest) { m.Dependencies[0].Destination = "lib/../vdu" },
			wantMsg: "destination outside dependency root",
			wantKey: "destination",
		},
		{
			name:    "destination equals root",
			mutate:  func(m *domain.Manifest) { m.Dependencies[0].Destination = "lib" },
			wantMsg: "destination outside dependency root",
			wantKey: "destination",
		},
		{
			name:    "revision on file",
			mutate:  func(m *domain.Manifest) { m.Dependencies[2].Revision = "main" },
			wantMsg: "revision is only supported on repositories",
			wantKey: "dependency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validManifest()
			tt.mutate(m)

			err := m.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			assert.Contains(t, zErr.Metadata(), tt.wantKey)
		})
	}
}

func TestManifest_Validate_Empty(t *testing.T) {
	m := &domain.Manifest{Root: "lib"}
	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest has no dependencies")
}

func TestManifest_Filters(t *testing.T) {
	m := validManifest()

	repos := m.Repositories()
	require.Len(t, repos, 2)
	assert.Equal(t, "vdu", repos[0].Name)
	assert.Equal(t, "glm", repos[1].Name)

	files := m.Files()
	require.Len(t, files, 1)
	assert.Equal(t, "stb_image", files[0].Name)
}

func TestDependency_IsPinned(t *testing.T) {
	m := validManifest()
	assert.False(t, m.Dependencies[0].IsPinned())
	assert.True(t, m.Dependencies[1].IsPinned())
	assert.False(t, m.Dependencies[2].IsPinned())
}
