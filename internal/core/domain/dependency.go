// Package domain contains the core models for preparing third-party source dependencies.
package domain

import (
	"path"
	"strings"

	"go.trai.ch/zerr"
)

// DependencyKind describes how a dependency is fetched.
type DependencyKind string

const (
	// KindRepository is a version-controlled repository that is cloned.
	KindRepository DependencyKind = "repository"
	// KindFile is a single file retrieved over HTTP.
	KindFile DependencyKind = "file"
)

// IsValid reports whether the kind is one of the known dependency kinds.
func (k DependencyKind) IsValid() bool {
	switch k {
	case KindRepository, KindFile:
		return true
	default:
		return false
	}
}

// Dependency is one entry of the fixed dependency manifest.
type Dependency struct {
	// Name identifies the dependency (e.g., "glm").
	Name string

	// Kind selects the fetch procedure.
	Kind DependencyKind

	// Source is the clone URL for repositories or the download URL for files.
	Source string

	// Destination is the slash-separated path, relative to the invocation
	// directory, where the dependency is placed (e.g., "lib/glm").
	Destination string

	// Revision is the branch name or commit prefix a repository is pinned to.
	// Empty means the default branch as cloned.
	Revision string
}

// IsPinned reports whether the dependency carries a revision to check out.
func (d *Dependency) IsPinned() bool {
	return d.Kind == KindRepository && d.Revision != ""
}

// Manifest is the ordered list of dependencies to fetch.
type Manifest struct {
	// Root is the directory all destinations live under.
	Root string

	// Dependencies preserves declaration order, which is also fetch order.
	Dependencies []Dependency
}

// Repositories returns the repository dependencies in manifest order.
func (m *Manifest) Repositories() []Dependency {
	return m.filter(KindRepository)
}

// Files returns the file dependencies in manifest order.
func (m *Manifest) Files() []Dependency {
	return m.filter(KindFile)
}

func (m *Manifest) filter(kind DependencyKind) []Dependency {
	var out []Dependency
	for _, d := range m.Dependencies {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// Validate checks the manifest for structural errors.
func (m *Manifest) Validate() error {
	root := path.Clean(m.Root)
	if m.Root == "" || root == "." || path.IsAbs(root) || strings.HasPrefix(root, "..") {
		return zerr.With(ErrInvalidManifestRoot, "root", m.Root)
	}
	if len(m.Dependencies) == 0 {
		return ErrEmptyManifest
	}

	seen := make(map[string]struct{}, len(m.Dependencies))
	for i := range m.Dependencies {
		d := &m.Dependencies[i]
		if d.Name == "" {
			return zerr.With(ErrMissingDependencyName, "index", i)
		}
		if _, dup := seen[d.Name]; dup {
			return zerr.With(ErrDuplicateDependency, "dependency", d.Name)
		}
		seen[d.Name] = struct{}{}

		if err := validateDependency(root, d); err != nil {
			return err
		}
	}
	return nil
}

func validateDependency(root string, d *Dependency) error {
	if !d.Kind.IsValid() {
		err := zerr.With(ErrUnknownDependencyKind, "dependency", d.Name)
		return zerr.With(err, "kind", string(d.Kind))
	}
	if d.Source == "" {
		return zerr.With(ErrMissingSource, "dependency", d.Name)
	}

	dest := path.Clean(d.Destination)
	if d.Destination == "" || path.IsAbs(dest) || !strings.HasPrefix(dest, root+"/") {
		err := zerr.With(ErrDestinationOutsideRoot, "dependency", d.Name)
		err = zerr.With(err, "destination", d.Destination)
		return zerr.With(err, "root", root)
	}
	if d.Kind == KindFile && d.Revision != "" {
		return zerr.With(ErrRevisionOnFile, "dependency", d.Name)
	}
	return nil
}
