package ioutils

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/handiism/imgur-grabber/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAmender_AmendFile(t *testing.T) {
	dir := t.TempDir()
	source := writeTestFile(t, dir, "links.txt",
		"https://imgur.com/abC123\nhttps://imgur.com/dEf456\nhttps://imgur.com/gHi789\n")

	a := NewAmender(DefaultAmendPrefix, DefaultAmendSuffix)
	output, count, err := a.AmendFile(context.Background(), source)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "amended_links.txt"), output)
	assert.Equal(t, 3, count)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t,
		"https://imgur.com/abC123.png\nhttps://imgur.com/dEf456.png\nhttps://imgur.com/gHi789.png\n",
		string(data))
}

func TestAmender_AmendFile_KeepsDuplicatesAndBlankLines(t *testing.T) {
	dir := t.TempDir()
	source := writeTestFile(t, dir, "links.txt", "a\r\n\r\na\r\n")

	a := NewAmender("new_", ".jpg")
	output, count, err := a.AmendFile(context.Background(), source)

	require.NoError(t, err)
	assert.Equal(t, 3, count)

	lines, err := ReadLines(context.Background(), output)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", ".jpg", "a.jpg"}, lines)
}

func TestAmender_AmendFile_MissingSource(t *testing.T) {
	a := NewAmender(DefaultAmendPrefix, DefaultAmendSuffix)

	_, _, err := a.AmendFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))

	assert.True(t, errors.Is(err, ErrIO))
}

func TestAmender_OutputPath(t *testing.T) {
	a := NewAmender("amended_", ".png")

	assert.Equal(t, "amended_links.txt", a.OutputPath("links.txt"))
	assert.Equal(t, filepath.Join("lists", "amended_links.txt"), a.OutputPath(filepath.Join("lists", "links.txt")))
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank line kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"empty file", "", nil},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestFile(t, dir, string(rune('a'+i))+".txt", tt.content)
			got, err := ReadLines(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteLines_UnwritableDestination(t *testing.T) {
	err := WriteLines(context.Background(), filepath.Join(t.TempDir(), "missing", "out.txt"), []string{"a"})

	assert.True(t, errors.Is(err, ErrIO))
}

func TestCheckReadable(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "links.txt", "a\n")

	assert.NoError(t, CheckReadable(path))
	assert.True(t, errors.Is(CheckReadable(filepath.Join(dir, "missing.txt")), ErrIO))
	assert.True(t, errors.Is(CheckReadable(dir), ErrIO))
}

func TestCheckWritable(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, CheckWritable(filepath.Join(dir, "out.txt")))
	assert.True(t, errors.Is(CheckWritable(filepath.Join(dir, "missing", "out.txt")), ErrIO))
	assert.True(t, errors.Is(CheckWritable(dir), ErrIO))
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Xk3fQ9z", "Xk3fQ9z"},
		{"Xk3fQ9z/layout/grid", "Xk3fQ9z_layout_grid"},
		{"album?grid", "album_grid"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.input))
		})
	}
}

func TestSaveAlbum(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	album := model.NewAlbum("https://imgur.com/a/Xk3fQ9z", "https://imgur.com/a/")
	album.Images = []string{"https://imgur.com/a1", "https://imgur.com/b2"}

	path, err := SaveAlbum(context.Background(), dir, album)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Xk3fQ9z.txt"), path)
	lines, err := ReadLines(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, album.Images, lines)
}

func TestAlbumFilePath_EmptyID(t *testing.T) {
	album := model.NewAlbum("https://imgur.com/a/", "https://imgur.com/a/")

	assert.Equal(t, filepath.Join("out", "album.txt"), AlbumFilePath("out", album))
}

func TestSaveLinks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "all.txt")
	one := model.NewAlbum("https://imgur.com/a/one", "https://imgur.com/a/")
	one.Images = []string{"https://imgur.com/a1"}
	two := model.NewAlbum("https://imgur.com/a/two", "https://imgur.com/a/")
	two.Images = []string{"https://imgur.com/b1", "https://imgur.com/b2"}

	require.NoError(t, SaveLinks(context.Background(), path, []*model.Album{one, two}))

	lines, err := ReadLines(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://imgur.com/a1", "https://imgur.com/b1", "https://imgur.com/b2"}, lines)
}

func TestWriteAlbumsJSON(t *testing.T) {
	album := model.NewAlbum("https://imgur.com/a/Xk3fQ9z", "https://imgur.com/a/")
	album.Elapsed = 42 * time.Millisecond
	empty := model.NewAlbum("https://imgur.com/a/empty", "https://imgur.com/a/")
	album.Images = []string{"https://imgur.com/a1"}

	var buf bytes.Buffer
	require.NoError(t, WriteAlbumsJSON(&buf, []*model.Album{album, empty}))

	assert.JSONEq(t, `[
		{"url":"https://imgur.com/a/Xk3fQ9z","id":"Xk3fQ9z","count":1,"elapsed_ms":42,"images":["https://imgur.com/a1"]},
		{"url":"https://imgur.com/a/empty","id":"empty","count":0,"elapsed_ms":0,"images":[]}
	]`, buf.String())
}
