package ioutils

import (
	"context"
	"path/filepath"

	"github.com/samber/lo"
)

const (
	// DefaultAmendPrefix is prepended to the source file name to name the
	// amended copy.
	DefaultAmendPrefix = "amended_"

	// DefaultAmendSuffix is appended to every line of the source file.
	DefaultAmendSuffix = ".png"
)

// Amender appends a fixed suffix to every line of a link list and writes
// the result next to the source file.
//
// No deduplication or validation is done; the source is trusted to be a
// clean list of URLs.
//
// Example:
//
//	a := NewAmender(DefaultAmendPrefix, DefaultAmendSuffix)
//	out, n, err := a.AmendFile(ctx, "links.txt")
//	// out == "amended_links.txt", every line now ends in ".png"
type Amender struct {
	prefix string
	suffix string
}

// NewAmender creates an Amender that names its output prefix + source name
// and appends suffix to every line.
func NewAmender(prefix, suffix string) *Amender {
	return &Amender{
		prefix: prefix,
		suffix: suffix,
	}
}

// OutputPath returns where AmendFile writes the amended copy of source:
// the same directory, with the prefix in front of the file name.
func (a *Amender) OutputPath(source string) string {
	return filepath.Join(filepath.Dir(source), a.prefix+filepath.Base(source))
}

// AmendLines returns a copy of lines with the suffix appended to each.
func (a *Amender) AmendLines(lines []string) []string {
	return lo.Map(lines, func(line string, _ int) string {
		return line + a.suffix
	})
}

// AmendFile reads source line by line, appends the suffix to each line and
// writes them, in order, to OutputPath(source).
//
// Returns the output path and the number of lines written, or an error
// wrapping ErrIO if source cannot be read or the output cannot be created.
func (a *Amender) AmendFile(ctx context.Context, source string) (string, int, error) {
	lines, err := ReadLines(ctx, source)
	if err != nil {
		return "", 0, err
	}

	output := a.OutputPath(source)
	amended := a.AmendLines(lines)
	if err := WriteLines(ctx, output, amended); err != nil {
		return "", 0, err
	}

	return output, len(amended), nil
}
