package model

import (
	"fmt"
	"strings"
	"time"
)

// Album represents an imgur album and the direct image URLs found on its page.
//
// Images is kept in first-seen order and holds no duplicates. An album with
// no image data on its page (empty, private or deleted) has no Images but is
// not an error.
type Album struct {
	// URL is the album link as entered by the user.
	URL string

	// ID is the part of URL after the album prefix, e.g. "Xk3fQ9z".
	ID string

	// Images contains the direct image URLs in first-seen order.
	Images []string

	// Elapsed is the wall-clock time of the fetch and parse pass.
	Elapsed time.Duration
}

// NewAlbum creates an Album for url, deriving its ID by removing
// albumPrefix and any trailing slash.
func NewAlbum(url, albumPrefix string) *Album {
	id := strings.TrimPrefix(url, albumPrefix)
	id = strings.TrimSuffix(id, "/")
	return &Album{
		URL: url,
		ID:  id,
	}
}

// Count returns the number of image URLs found.
func (a *Album) Count() int {
	return len(a.Images)
}

// HasImages returns true if at least one image URL was found.
func (a *Album) HasImages() bool {
	return len(a.Images) > 0
}

// ElapsedMillis returns Elapsed in whole milliseconds.
func (a *Album) ElapsedMillis() int64 {
	return a.Elapsed.Milliseconds()
}

// Summary returns the one-line report printed after an album's URLs.
func (a *Album) Summary() string {
	return fmt.Sprintf("Found %d images in %d ms", a.Count(), a.ElapsedMillis())
}

// AmendResult describes a completed run of the file amender.
type AmendResult struct {
	// SourcePath is the file that was read.
	SourcePath string

	// OutputPath is the file that was created.
	OutputPath string

	// Count is the number of lines written to OutputPath.
	Count int
}

// Summary returns the one-line report printed after amending a file.
func (r *AmendResult) Summary() string {
	return fmt.Sprintf("Amended %d links into %s", r.Count, r.OutputPath)
}
