// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/pdiddy/opus-fetch/pkg/types"
)

// HTTPDownloader fetches archives with net/http instead of an external tool.
// The client's default policy follows redirects; no auth or extra headers
// beyond User-Agent are sent.
type HTTPDownloader struct {
	client    *http.Client
	fs        afero.Fs
	userAgent string
}

// NewHTTPDownloader returns a downloader that writes into fs.
func NewHTTPDownloader(client *http.Client, fs afero.Fs, cfg types.HTTPConfig) *HTTPDownloader {
	return &HTTPDownloader{client: client, fs: fs, userAgent: cfg.UserAgent}
}

// Describe renders the request Fetch would make.
func (h *HTTPDownloader) Describe(url, destPath string) string {
	return fmt.Sprintf("GET %s -> %s", url, destPath)
}

// Fetch downloads url to a temporary file next to destPath and renames it
// into place once the body has been fully written. A non-2xx response is an
// error and leaves destPath untouched.
func (h *HTTPDownloader) Fetch(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if h.userAgent != "" {
		req.Header.Set("User-Agent", h.userAgent)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	tmpFile, err := afero.TempFile(h.fs, filepath.Dir(destPath), ".opus-fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		h.fs.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		h.fs.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := h.fs.Rename(tmpPath, destPath); err != nil {
		h.fs.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
