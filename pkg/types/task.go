// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DownloadTask describes one archive to fetch. It is derived from a source
// URL and never persisted.
type DownloadTask struct {
	// SourceURL is the archive URL as it appears in the source list.
	SourceURL string `json:"source_url" yaml:"source_url"`

	// CorpusName is the fourth-from-last path segment (e.g. "OPUS-JW300").
	CorpusName string `json:"corpus_name" yaml:"corpus_name"`

	// Version is the third-from-last path segment (e.g. "v1").
	Version string `json:"version" yaml:"version"`

	// FormatName is the second-from-last path segment (e.g. "xml").
	FormatName string `json:"format_name" yaml:"format_name"`

	// Filename is the last path segment (e.g. "en-th.xml.gz").
	Filename string `json:"filename" yaml:"filename"`

	// DestDir is home/OPUS/<CorpusName><Version>/<FormatName>.
	DestDir string `json:"dest_dir" yaml:"dest_dir"`

	// DestPath is DestDir/Filename.
	DestPath string `json:"dest_path" yaml:"dest_path"`
}

// Attempt is a ledger record of a single fetch.
type Attempt struct {
	URL      string        `json:"url" yaml:"url"`
	DestPath string        `json:"dest_path" yaml:"dest_path"`
	Backend  string        `json:"backend" yaml:"backend"`
	Started  time.Time     `json:"started" yaml:"started"`
	Duration time.Duration `json:"duration" yaml:"duration"`

	// Error is the download error text, empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// OK reports whether the attempt completed without error.
func (a Attempt) OK() bool {
	return a.Error == ""
}
