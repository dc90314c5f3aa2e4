// Package config provides the loader for the compiled-in dependency manifest.
package config

import (
	"bytes"
	_ "embed"

	"go.trai.ch/prepdeps/internal/core/domain"
	"go.trai.ch/prepdeps/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only manifest format version understood by the loader.
const SupportedVersion = "1"

//go:embed deps.yaml
var embeddedManifest []byte

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader over an in-memory YAML document.
type Loader struct {
	data []byte
}

// NewLoader creates a Loader for the manifest compiled into the binary.
func NewLoader() *Loader {
	return NewLoaderFromBytes(embeddedManifest)
}

// NewLoaderFromBytes creates a Loader for the given YAML document.
func NewLoaderFromBytes(data []byte) *Loader {
	return &Loader{data: data}
}

// Load parses and validates the manifest. An omitted root defaults to lib.
func (l *Loader) Load() (*domain.Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(l.data))
	dec.KnownFields(true)

	var depsfile Depsfile
	if err := dec.Decode(&depsfile); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}

	if depsfile.Version != SupportedVersion {
		err := zerr.With(zerr.New("unsupported manifest version"), "version", depsfile.Version)
		return nil, zerr.With(err, "supported", SupportedVersion)
	}

	root := depsfile.Root
	if root == "" {
		root = domain.LibDirName
	}

	manifest := &domain.Manifest{
		Root:         root,
		Dependencies: make([]domain.Dependency, 0, len(depsfile.Dependencies)),
	}
	for _, dto := range depsfile.Dependencies {
		manifest.Dependencies = append(manifest.Dependencies, domain.Dependency{
			Name:        dto.Name,
			Kind:        domain.DependencyKind(dto.Kind),
			Source:      dto.Source,
			Destination: dto.Destination,
			Revision:    dto.Revision,
		})
	}

	if err := manifest.Validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}
