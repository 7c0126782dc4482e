package imgur

import (
	"fmt"
	"iter"
	"regexp"
	"strings"
)

const (
	// recordDelimiter separates consecutive image objects in the block.
	recordDelimiter = "},"

	// hashField starts every image object.
	hashField = `{"hash":"`

	// hashKey is present on every page line that carries image data.
	hashKey = `"hash"`
)

// markerPattern precedes the embedded image array. It appears twice per
// album page with identical content after each occurrence.
var markerPattern = regexp.MustCompile(`"count":[0-9]+,"images":\[`)

// ExtractImageBlock returns the text between the first and the second
// occurrence of the image data marker, or everything after the first
// marker when there is no second one.
//
// Returns an error wrapping ErrFormat if the marker is absent or nothing
// follows it. Callers should treat that as an album with no images.
//
// Example:
//
//	block, err := ExtractImageBlock(`x"count":1,"images":[{"hash":"a1"}]`)
//	// block == `{"hash":"a1"}]`
func ExtractImageBlock(page string) (string, error) {
	segments := markerPattern.Split(page, 3)
	if len(segments) < 2 || segments[1] == "" {
		return "", fmt.Errorf("%w: no %q marker", ErrFormat, `"count":N,"images":[`)
	}
	return segments[1], nil
}

// SplitRecords cuts an image block into one record per image object.
//
// The last record keeps the closing bracket and whatever text followed the
// array; ExtractHash only looks at the start of a record, so that is fine.
func SplitRecords(block string) []string {
	return strings.Split(block, recordDelimiter)
}

// ExtractHash returns the hash of a single image record: the text after the
// leading {"hash":" field up to the next double quote.
//
// A record that does not start with the field is read from its first
// character instead. The result is then usually garbage that the URL
// validator rejects later.
func ExtractHash(record string) string {
	record = strings.TrimPrefix(record, hashField)
	hash, _, _ := strings.Cut(record, `"`)
	return hash
}

// Hashes yields the candidate hash of every record in block, in order.
// The sequence can be ranged over any number of times.
func Hashes(block string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for record := range strings.SplitSeq(block, recordDelimiter) {
			if !yield(ExtractHash(record)) {
				return
			}
		}
	}
}

// ReduceHashLines keeps only the page lines that mention a "hash" key and
// joins them without separators.
//
// Album pages are large and the image data sits on a handful of lines, so
// this shrinks the text the marker search has to scan.
func ReduceHashLines(page string) string {
	var sb strings.Builder
	for line := range strings.Lines(page) {
		line = strings.TrimRight(line, "\r\n")
		if strings.Contains(line, hashKey) {
			sb.WriteString(line)
		}
	}
	return sb.String()
}
