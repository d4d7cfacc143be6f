// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads OPUS archives into the local corpus tree.
//
// A Fetcher walks an ordered URL list one entry at a time: it derives the
// destination, creates the destination directory, and hands the URL to a
// Downloader. Directory failures stop the run. Download failures do not;
// by default they are ignored, and in strict mode they are collected and
// returned once every URL has been tried.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/opus-fetch/internal/opus"
)

// Downloader fetches url into destPath.
type Downloader interface {
	Fetch(ctx context.Context, url, destPath string) error
}

// DirectoryCreator creates dir and any missing parents. An existing
// directory is not an error.
type DirectoryCreator interface {
	MkdirAll(dir string) error
}

// describer is implemented by downloaders that can render the command they
// run, for the notice line printed before each fetch.
type describer interface {
	Describe(url, destPath string) string
}

// DirectoryError reports a destination directory that could not be created.
type DirectoryError struct {
	Dir string
	Err error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("creating directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// DownloadError reports a failed fetch. It is only returned in strict mode.
type DownloadError struct {
	URL      string
	DestPath string
	Err      error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("downloading %s to %s: %v", e.URL, e.DestPath, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// Fetcher runs download tasks sequentially.
type Fetcher struct {
	downloader Downloader
	dirs       DirectoryCreator
	out        io.Writer

	// Strict makes Run return the download failures it saw.
	Strict bool
}

// New returns a Fetcher that prints its notices to w.
func New(d Downloader, dirs DirectoryCreator, w io.Writer) *Fetcher {
	return &Fetcher{downloader: d, dirs: dirs, out: w}
}

// Run processes urls in order, rooting the OPUS tree at home. Each URL gets
// two notice lines: the directory it is about to create and the fetch
// command it is about to run. Duplicate URLs are fetched again.
func (f *Fetcher) Run(ctx context.Context, urls []string, home string) error {
	var failures []error
	for _, url := range urls {
		task := opus.NewTask(url, home)

		fmt.Fprintf(f.out, "mkdir -p %s\n", task.DestDir)
		if err := f.dirs.MkdirAll(task.DestDir); err != nil {
			return &DirectoryError{Dir: task.DestDir, Err: err}
		}

		fmt.Fprintf(f.out, "Run: %s\n", f.describe(task.SourceURL, task.DestPath))
		err := f.downloader.Fetch(ctx, task.SourceURL, task.DestPath)
		if err != nil && f.Strict {
			failures = append(failures, &DownloadError{URL: task.SourceURL, DestPath: task.DestPath, Err: err})
		}
	}
	return errors.Join(failures...)
}

func (f *Fetcher) describe(url, destPath string) string {
	if d, ok := f.downloader.(describer); ok {
		return d.Describe(url, destPath)
	}
	return fmt.Sprintf("fetch %s -> %s", url, destPath)
}
