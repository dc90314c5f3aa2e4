package ports

import "context"

// Downloader retrieves a remote file.
//
//go:generate go run go.uber.org/mock/mockgen -source=downloader.go -destination=mocks/mock_downloader.go -package=mocks
type Downloader interface {
	// Download performs an HTTP GET on url and writes the full body to dest.
	// The directory containing dest must already exist.
	Download(ctx context.Context, url, dest string) error
}
