package ports

import "go.trai.ch/prepdeps/internal/core/domain"

// RecordStore persists the fetch records written after a run. Records are
// informational and are never read back by the tool.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Put stores the record for a run whose dependencies live under root.
	Put(root string, record domain.FetchRecord) error
}
