package ioutils

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrIO is wrapped by every error caused by a file that cannot be read or
// written.
var ErrIO = errors.New("file i/o failed")

// maxLineLength bounds a single line read by ReadLines.
const maxLineLength = 16 * 1024 * 1024

// ReadLines reads a text file and returns its lines without terminators.
//
// Both "\n" and "\r\n" end a line. Empty lines are kept; a final line
// terminator does not produce an extra empty line.
//
// Returns an error wrapping ErrIO if the file cannot be opened or read.
//
// Example:
//
//	lines, err := ReadLines(ctx, "links.txt")
func ReadLines(ctx context.Context, path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, path, err)
	}

	return lines, nil
}

// WriteLines writes lines to a file, one per line, each followed by "\n".
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Returns an error wrapping ErrIO if the file cannot be created or written.
func WriteLines(ctx context.Context, path string, lines []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("%w: write %s: %w", ErrIO, path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrIO, path, err)
	}
	return nil
}

// CheckReadable returns an error wrapping ErrIO unless path is a regular
// file that can be opened for reading.
func CheckReadable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrIO, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return file.Close()
}

// CheckWritable returns an error wrapping ErrIO unless a file can be
// created at path: its directory must exist and path must not be a
// directory itself.
func CheckWritable(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrIO, dir)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrIO, path)
	}
	return nil
}

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("Xk3fQ9z/layout/grid") // Returns "Xk3fQ9z_layout_grid"
func SanitizeFileName(name string) string {
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")
	name = strings.TrimRight(name, " ")

	return name
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
