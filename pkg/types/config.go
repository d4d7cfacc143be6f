package types

import "time"

// HTTPConfig holds settings for the native HTTP downloader.
type HTTPConfig struct {
	// Timeout bounds a single request. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "opus-fetch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// DownloaderBackend names the tool used to fetch archives.
type DownloaderBackend string

const (
	BackendWget DownloaderBackend = "wget"
	BackendCurl DownloaderBackend = "curl"
	BackendHTTP DownloaderBackend = "http"
)

// FetchConfig holds settings for a fetch run.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Home is the directory the OPUS tree is rooted in (default: user home).
	Home string `json:"home" yaml:"home"`

	// Backend selects the downloader: wget, curl, or http.
	Backend DownloaderBackend `json:"downloader" yaml:"downloader"`

	// Strict makes download failures fail the run after every URL has been tried.
	Strict bool `json:"strict" yaml:"strict"`

	// LedgerPath is the SQLite file recording attempts. Empty disables it.
	LedgerPath string `json:"ledger" yaml:"ledger"`
}
