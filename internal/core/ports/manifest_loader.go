package ports

import "go.trai.ch/prepdeps/internal/core/domain"

// ManifestLoader defines the interface for loading the dependency manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load returns the validated dependency manifest.
	Load() (*domain.Manifest, error)
}
