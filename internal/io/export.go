package ioutils

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"github.com/handiism/imgur-grabber/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AlbumRecord is the JSON form of a fetched album.
type AlbumRecord struct {
	URL       string   `json:"url"`
	ID        string   `json:"id"`
	Count     int      `json:"count"`
	ElapsedMS int64    `json:"elapsed_ms"`
	Images    []string `json:"images"`
}

// NewAlbumRecord converts album to its JSON form. Images is never null.
func NewAlbumRecord(album *model.Album) AlbumRecord {
	images := album.Images
	if images == nil {
		images = []string{}
	}
	return AlbumRecord{
		URL:       album.URL,
		ID:        album.ID,
		Count:     album.Count(),
		ElapsedMS: album.ElapsedMillis(),
		Images:    images,
	}
}

// AlbumFilePath returns the file an album's URL list is saved to inside dir.
// The album ID is sanitized, so nested IDs like "Xk3fQ9z/layout" stay in dir.
func AlbumFilePath(dir string, album *model.Album) string {
	name := SanitizeFileName(album.ID)
	if name == "" {
		name = "album"
	}
	return filepath.Join(dir, name+".txt")
}

// SaveAlbum writes the album's image URLs to AlbumFilePath(dir, album),
// one per line, creating dir if needed. Returns the path written.
//
// Example:
//
//	path, err := SaveAlbum(ctx, "out", album)
//	// path == "out/Xk3fQ9z.txt"
func SaveAlbum(ctx context.Context, dir string, album *model.Album) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	path := AlbumFilePath(dir, album)
	if err := WriteLines(ctx, path, album.Images); err != nil {
		return "", err
	}
	return path, nil
}

// SaveLinks writes the image URLs of every album, in order, to a single file.
func SaveLinks(ctx context.Context, path string, albums []*model.Album) error {
	links := lo.FlatMap(albums, func(album *model.Album, _ int) []string {
		return album.Images
	})
	return WriteLines(ctx, path, links)
}

// WriteAlbumsJSON writes albums to w as an indented JSON array.
func WriteAlbumsJSON(w io.Writer, albums []*model.Album) error {
	records := lo.Map(albums, func(album *model.Album, _ int) AlbumRecord {
		return NewAlbumRecord(album)
	})

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode albums: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
