package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalogArrayForm(t *testing.T) {
	data := []byte(`[
		{"file_name": "notes.txt", "chunks": [
			{"chunk_name": "notes.txt.chunk0", "file_id": "abc123", "bucket": "bucket-1"}
		]},
		{"file_name": "Backup.tar", "chunks": [
			{"chunk_name": "Backup.tar.chunk0", "file_id": "def456", "bucket": "bucket-2"},
			{"chunk_name": "Backup.tar.chunk1", "file_id": "ghi789", "bucket": "bucket-1"}
		]}
	]`)

	files, err := ParseCatalog(data)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "Backup.tar", files[0].FileName, "files come back sorted by name")
	assert.Equal(t, "notes.txt", files[1].FileName)
	assert.Len(t, files[0].Chunks, 2)
}

func TestParseCatalogLegacySingleObject(t *testing.T) {
	data := []byte(`{"file_name": "old.bin", "chunks": [
		{"chunk_name": "old.bin.chunk0", "file_id": "xyz", "bucket": "bucket-1"}
	]}`)

	files, err := ParseCatalog(data)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "old.bin", files[0].FileName)
}

func TestParseCatalogRejectsGarbage(t *testing.T) {
	_, err := ParseCatalog([]byte(`"not a catalog"`))
	assert.Error(t, err)
}

func TestSortFilesDescending(t *testing.T) {
	files := []CatalogFile{
		{FileName: "alpha"},
		{FileName: "Charlie"},
		{FileName: "bravo"},
	}

	SortFiles(files, true)

	assert.Equal(t, "Charlie", files[0].FileName)
	assert.Equal(t, "bravo", files[1].FileName)
	assert.Equal(t, "alpha", files[2].FileName)
}

func TestBuckets(t *testing.T) {
	file := CatalogFile{
		FileName: "big.iso",
		Chunks: []Chunk{
			{ChunkName: "big.iso.chunk0", Bucket: "bucket-2"},
			{ChunkName: "big.iso.chunk1", Bucket: "bucket-1"},
			{ChunkName: "big.iso.chunk2", Bucket: "bucket-2"},
			{ChunkName: "big.iso.chunk3"},
		},
	}

	assert.Equal(t, []string{"bucket-2", "bucket-1"}, file.Buckets())
}

func TestBucketCount(t *testing.T) {
	files := []CatalogFile{
		{Chunks: []Chunk{{Bucket: "a"}, {Bucket: "b"}}},
		{Chunks: []Chunk{{Bucket: "b"}, {Bucket: "c"}}},
		{},
	}

	assert.Equal(t, 3, BucketCount(files))
}

func TestChunkViewLink(t *testing.T) {
	chunk := Chunk{FileID: "abc123"}
	assert.Equal(t, "https://drive.google.com/file/d/abc123/view", chunk.ViewLink())
}
