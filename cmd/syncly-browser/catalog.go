package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Chunk is one stored part of a file, uploaded to a storage bucket.
type Chunk struct {
	ChunkName string `json:"chunk_name"`
	FileID    string `json:"file_id"`
	Bucket    string `json:"bucket"`
}

// ViewLink returns the Drive view URL for the chunk.
func (c Chunk) ViewLink() string {
	return "https://drive.google.com/file/d/" + c.FileID + "/view"
}

// CatalogFile is a logical file in the chunk-metadata catalog.
type CatalogFile struct {
	FileName string  `json:"file_name"`
	Chunks   []Chunk `json:"chunks"`
}

// Buckets returns the distinct buckets holding the file's chunks, in order
// of first appearance.
func (f CatalogFile) Buckets() []string {
	seen := make(map[string]bool)
	var buckets []string
	for _, chunk := range f.Chunks {
		if chunk.Bucket == "" || seen[chunk.Bucket] {
			continue
		}
		seen[chunk.Bucket] = true
		buckets = append(buckets, chunk.Bucket)
	}
	return buckets
}

// LoadCatalog reads the metadata catalog file. Current catalogs hold a JSON
// array of files; the legacy format held a single file object, which is
// still accepted. Files are returned sorted by name.
func LoadCatalog(path string) ([]CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	files, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return files, nil
}

// ParseCatalog decodes catalog bytes, accepting both the array form and the
// legacy single-object form.
func ParseCatalog(data []byte) ([]CatalogFile, error) {
	var files []CatalogFile
	if err := json.Unmarshal(data, &files); err != nil {
		var single CatalogFile
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, err
		}
		files = []CatalogFile{single}
	}

	SortFiles(files, false)
	return files, nil
}

// SortFiles orders files by name, case-insensitively.
func SortFiles(files []CatalogFile, descending bool) {
	sort.SliceStable(files, func(i, j int) bool {
		a := strings.ToLower(files[i].FileName)
		b := strings.ToLower(files[j].FileName)
		if descending {
			return a > b
		}
		return a < b
	})
}

// BucketCount returns the number of distinct buckets across the catalog.
func BucketCount(files []CatalogFile) int {
	seen := make(map[string]bool)
	for _, file := range files {
		for _, chunk := range file.Chunks {
			if chunk.Bucket != "" {
				seen[chunk.Bucket] = true
			}
		}
	}
	return len(seen)
}
