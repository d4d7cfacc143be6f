// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package opus derives local storage paths from OPUS archive URLs.
//
// An archive URL ends in four path segments:
//
//	https://object.pouta.csc.fi/<corpus>/<version>/<format>/<filename>
//
// and is stored under <home>/OPUS/<corpus><version>/<format>/<filename>.
package opus

import (
	"path/filepath"
	"strings"

	"github.com/pdiddy/opus-fetch/pkg/types"
)

// RootDir is the directory under home that holds every corpus.
const RootDir = "OPUS"

// Segments returns the last four "/"-delimited fields of url as corpus,
// version, format, and filename. Trailing empty fields are dropped first.
// URLs with fewer than four fields are not rejected: the missing leading
// results are empty strings.
func Segments(url string) (corpus, version, format, filename string) {
	fields := strings.Split(url, "/")
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}

	var last [4]string
	n := len(fields)
	for i := 0; i < 4; i++ {
		if j := n - 4 + i; j >= 0 {
			last[i] = fields[j]
		}
	}
	return last[0], last[1], last[2], last[3]
}

// NewTask derives the download task for url rooted at home.
func NewTask(url, home string) types.DownloadTask {
	corpus, version, format, filename := Segments(url)
	dir := filepath.Join(home, RootDir, corpus+version, format)
	return types.DownloadTask{
		SourceURL:  url,
		CorpusName: corpus,
		Version:    version,
		FormatName: format,
		Filename:   filename,
		DestDir:    dir,
		DestPath:   filepath.Join(dir, filename),
	}
}

// Plan derives one task per url, preserving order and duplicates.
func Plan(urls []string, home string) []types.DownloadTask {
	tasks := make([]types.DownloadTask, 0, len(urls))
	for _, u := range urls {
		tasks = append(tasks, NewTask(u, home))
	}
	return tasks
}
