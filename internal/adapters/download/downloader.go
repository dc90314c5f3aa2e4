// Package download retrieves single files over HTTP.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"go.trai.ch/prepdeps/internal/core/domain"
	"go.trai.ch/prepdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

// Downloader implements ports.Downloader using net/http.
type Downloader struct {
	httpClient *http.Client
}

// New creates a Downloader. The client has no timeout; requests are bounded
// only by the caller's context.
func New() *Downloader {
	return NewWithClient(&http.Client{})
}

// NewWithClient creates a Downloader using the given HTTP client.
func NewWithClient(client *http.Client) *Downloader {
	return &Downloader{httpClient: client}
}

// Download performs a GET on url and writes the full body to dest.
// The directory containing dest is not created.
func (d *Downloader) Download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", url)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	vertex, hasVertex := ports.VertexFromContext(ctx)
	if hasVertex {
		vertex.Log(domain.LogLevelInfo, fmt.Sprintf("GET %s: %s", url, resp.Status))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := zerr.With(domain.ErrDownloadStatus, "url", url)
		return zerr.With(err, "status_code", resp.StatusCode)
	}

	//nolint:gosec // destination comes from the compiled-in manifest
	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDownloadWriteFailed.Error()), "path", dest)
	}

	n, err := io.Copy(f, resp.Body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrDownloadWriteFailed.Error()), "path", dest)
		return zerr.With(err, "url", url)
	}

	if hasVertex {
		vertex.Log(domain.LogLevelInfo, fmt.Sprintf("wrote %d bytes to %s", n, dest))
	}
	return nil
}
