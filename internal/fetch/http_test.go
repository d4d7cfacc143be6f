// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/opus-fetch/pkg/types"
)

const fakeArchive = "\x1f\x8b fake gzip"

func newArchiveServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/OPUS-A/v1/xml/en-th.xml.gz":
			fmt.Fprint(w, fakeArchive)
		case "/moved/OPUS-A/v1/xml/en-th.xml.gz":
			http.Redirect(w, r, "/OPUS-A/v1/xml/en-th.xml.gz", http.StatusFound)
		default:
			http.NotFound(w, r)
		}
	}))
}

func newTestHTTPDownloader(ts *httptest.Server, fs afero.Fs) *HTTPDownloader {
	return NewHTTPDownloader(ts.Client(), fs, types.HTTPConfig{UserAgent: "opus-fetch/test"})
}

func TestHTTPDownloader_Fetch(t *testing.T) {
	ts := newArchiveServer(t)
	defer ts.Close()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/h/OPUS/OPUS-Av1/xml", 0o755))
	dest := "/h/OPUS/OPUS-Av1/xml/en-th.xml.gz"

	d := newTestHTTPDownloader(ts, fs)
	require.NoError(t, d.Fetch(context.Background(), ts.URL+"/OPUS-A/v1/xml/en-th.xml.gz", dest))

	data, err := afero.ReadFile(fs, dest)
	require.NoError(t, err)
	assert.Equal(t, fakeArchive, string(data))
	assertNoTempFiles(t, fs, "/h/OPUS/OPUS-Av1/xml")
}

func TestHTTPDownloader_FollowsRedirects(t *testing.T) {
	ts := newArchiveServer(t)
	defer ts.Close()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/h", 0o755))

	d := newTestHTTPDownloader(ts, fs)
	require.NoError(t, d.Fetch(context.Background(), ts.URL+"/moved/OPUS-A/v1/xml/en-th.xml.gz", "/h/a.gz"))

	data, err := afero.ReadFile(fs, "/h/a.gz")
	require.NoError(t, err)
	assert.Equal(t, fakeArchive, string(data))
}

func TestHTTPDownloader_SendsUserAgent(t *testing.T) {
	got := make(chan string, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.UserAgent()
	}))
	defer ts.Close()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/h", 0o755))
	require.NoError(t, newTestHTTPDownloader(ts, fs).Fetch(context.Background(), ts.URL+"/x", "/h/x"))
	assert.Equal(t, "opus-fetch/test", <-got)
}

func TestHTTPDownloader_NotFoundLeavesNoFile(t *testing.T) {
	ts := newArchiveServer(t)
	defer ts.Close()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/h", 0o755))

	err := newTestHTTPDownloader(ts, fs).Fetch(context.Background(), ts.URL+"/missing.gz", "/h/missing.gz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")

	exists, err := afero.Exists(fs, "/h/missing.gz")
	require.NoError(t, err)
	assert.False(t, exists)
	assertNoTempFiles(t, fs, "/h")
}

func TestHTTPDownloader_OverwritesExisting(t *testing.T) {
	ts := newArchiveServer(t)
	defer ts.Close()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/h/a.gz", []byte("stale"), 0o644))

	require.NoError(t, newTestHTTPDownloader(ts, fs).Fetch(context.Background(), ts.URL+"/OPUS-A/v1/xml/en-th.xml.gz", "/h/a.gz"))

	data, err := afero.ReadFile(fs, "/h/a.gz")
	require.NoError(t, err)
	assert.Equal(t, fakeArchive, string(data))
}

func TestHTTPDownloader_ConnectionError(t *testing.T) {
	ts := newArchiveServer(t)
	url := ts.URL + "/OPUS-A/v1/xml/en-th.xml.gz"
	ts.Close()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/h", 0o755))

	err := NewHTTPDownloader(http.DefaultClient, fs, types.HTTPConfig{}).Fetch(context.Background(), url, "/h/a.gz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP request")
}

func TestHTTPDownloader_Describe(t *testing.T) {
	d := NewHTTPDownloader(http.DefaultClient, afero.NewMemMapFs(), types.HTTPConfig{})
	assert.Equal(t, "GET "+urlA+" -> /h/a.gz", d.Describe(urlA, "/h/a.gz"))
}

func TestNewDownloader(t *testing.T) {
	tests := []struct {
		backend types.DownloaderBackend
		check   func(t *testing.T, d Downloader)
		wantErr bool
	}{
		{backend: "", check: func(t *testing.T, d Downloader) {
			require.IsType(t, &CommandDownloader{}, d)
			assert.Equal(t, "wget", d.(*CommandDownloader).Name())
		}},
		{backend: types.BackendWget, check: func(t *testing.T, d Downloader) {
			assert.Equal(t, "wget", d.(*CommandDownloader).Name())
		}},
		{backend: types.BackendCurl, check: func(t *testing.T, d Downloader) {
			assert.Equal(t, "curl", d.(*CommandDownloader).Name())
		}},
		{backend: types.BackendHTTP, check: func(t *testing.T, d Downloader) {
			assert.IsType(t, &HTTPDownloader{}, d)
		}},
		{backend: "aria2c", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			d, err := NewDownloader(types.FetchConfig{Backend: tt.backend}, afero.NewMemMapFs(), nil, nil)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown downloader")
				return
			}
			require.NoError(t, err)
			tt.check(t, d)
		})
	}
}

func assertNoTempFiles(t *testing.T, fs afero.Fs, dir string) {
	t.Helper()
	matches, err := afero.Glob(fs, dir+"/.opus-fetch-*.tmp")
	require.NoError(t, err)
	assert.Empty(t, matches)
}
