package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prepdeps/internal/adapters/config"
	"go.trai.ch/prepdeps/internal/core/domain"
)

func TestLoader_Embedded(t *testing.T) {
	manifest, err := config.NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, domain.LibDirName, manifest.Root)

	var names []string
	for _, d := range manifest.Dependencies {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{
		"vdu", "freetype", "chaiscript", "glm", "rapidxml", "assimp", "stb_image", "stb_image_write",
	}, names)

	byName := make(map[string]domain.Dependency)
	for _, d := range manifest.Dependencies {
		byName[d.Name] = d
	}
	assert.Equal(t, "release-6.x", byName["chaiscript"].Revision)
	assert.Equal(t, "8f39bb8", byName["glm"].Revision)
	assert.Equal(t, "https://github.com/assimp/assimp.git", byName["assimp"].Source)
	assert.Equal(t, domain.KindFile, byName["stb_image_write"].Kind)
	assert.Equal(t, "lib/stb/stb/stb_image_write.h", byName["stb_image_write"].Destination)
}

func TestLoader_EmbeddedPlan(t *testing.T) {
	manifest, err := config.NewLoader().Load()
	require.NoError(t, err)

	plan, err := domain.NewPlan(".", manifest)
	require.NoError(t, err)

	var names []string
	for i := range plan.Steps {
		names = append(names, plan.Steps[i].Name())
	}
	assert.Equal(t, []string{
		"clone vdu",
		"clone freetype",
		"clone chaiscript",
		"clone glm",
		"clone rapidxml",
		"clone assimp",
		"mkdir lib/stb/stb",
		"download stb_image",
		"download stb_image_write",
		"checkout chaiscript",
		"checkout glm",
	}, names)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			yaml:    "version: [",
			wantErr: "failed to parse dependency manifest",
		},
		{
			name:    "unknown field",
			yaml:    "version: \"1\"\nroot: lib\nextra: true\n",
			wantErr: "failed to parse dependency manifest",
		},
		{
			name:    "unsupported version",
			yaml:    "version: \"2\"\nroot: lib\n",
			wantErr: "unsupported manifest version",
		},
		{
			name: "invalid dependency",
			yaml: `version: "1"
root: lib
dependencies:
  - name: x
    kind: tarball
    source: https://example.com/x.tgz
    destination: lib/x
`,
			wantErr: "unknown dependency kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.NewLoaderFromBytes([]byte(tt.yaml)).Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoader_DefaultRoot(t *testing.T) {
	yaml := `version: "1"
dependencies:
  - name: x
    kind: file
    source: https://example.com/x.h
    destination: lib/x/x.h
`
	manifest, err := config.NewLoaderFromBytes([]byte(yaml)).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.LibDirName, manifest.Root)
}
