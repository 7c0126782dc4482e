// Package ioutils provides the file handling around the imgur scraper.
//
// This package contains functions for:
//   - Reading and writing line-delimited link lists
//   - Checking a file can be read or written before a run
//   - Amending a link list with a fixed suffix
//   - Saving an album's links to a file
//   - Filename sanitization and directory creation
//
// # File Amender
//
// Amender reads a list of image URLs, appends a suffix to each line and
// writes the result to a new file whose name is the source name with a
// prefix in front:
//
//	a := ioutils.NewAmender(ioutils.DefaultAmendPrefix, ioutils.DefaultAmendSuffix)
//	out, n, err := a.AmendFile(ctx, "links.txt")
//	// out == "amended_links.txt"
//
// # Errors
//
// Every error caused by an unreadable source or an unwritable destination
// wraps ErrIO:
//
//	if errors.Is(err, ioutils.ErrIO) {
//	    fmt.Println("check the file name and permissions")
//	}
//
// # Saving Albums
//
//	path, err := ioutils.SaveAlbum(ctx, "out", album)
//	// out/Xk3fQ9z.txt, one URL per line
package ioutils
