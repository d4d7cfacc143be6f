package fetch

import (
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/afero"

	"github.com/pdiddy/opus-fetch/pkg/types"
)

// NewDownloader builds the downloader named by cfg.Backend. Command-line
// tools write their output to stdout and stderr; the http backend writes
// files through fs.
func NewDownloader(cfg types.FetchConfig, fs afero.Fs, stdout, stderr io.Writer) (Downloader, error) {
	switch cfg.Backend {
	case types.BackendWget, "":
		return NewWget(stdout, stderr), nil
	case types.BackendCurl:
		return NewCurl(stdout, stderr), nil
	case types.BackendHTTP:
		client := &http.Client{Timeout: cfg.Timeout}
		return NewHTTPDownloader(client, fs, cfg.HTTPConfig), nil
	default:
		return nil, fmt.Errorf("unknown downloader %q (want wget, curl, or http)", cfg.Backend)
	}
}
