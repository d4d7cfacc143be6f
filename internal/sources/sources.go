// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sources provides the ordered list of archive URLs to fetch.
//
// A source file is YAML with a single key:
//
//	urls:
//	  - https://object.pouta.csc.fi/OPUS-JW300/v1/xml/en-th.xml.gz
//
// Order and duplicates are preserved.
package sources

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed default.yaml
var defaultYAML []byte

// File is the on-disk representation of a source list.
type File struct {
	URLs []string `yaml:"urls"`
}

// Default returns the built-in English-Thai OPUS list.
func Default() []string {
	urls, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded source list: %v", err))
	}
	return urls
}

// Load reads a source list from a YAML file.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading source list: %w", err)
	}
	urls, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing source list %s: %w", path, err)
	}
	return urls, nil
}

// Parse decodes a YAML source list.
func Parse(data []byte) ([]string, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return Clean(f.URLs), nil
}

// Clean trims whitespace around each URL and drops blank entries.
func Clean(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// Write saves urls as a YAML source list.
func Write(path string, urls []string) error {
	data, err := yaml.Marshal(&File{URLs: urls})
	if err != nil {
		return fmt.Errorf("marshaling source list: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
