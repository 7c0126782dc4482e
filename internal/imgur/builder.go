package imgur

import (
	"iter"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Builder turns image hashes into validated, deduplicated direct URLs.
//
// Example:
//
//	b := NewBuilder(DefaultImagePrefix, NewValidator(DefaultValidatorConfig()))
//	urls := b.BuildURLs(slices.Values([]string{"abC123", "abC123"}), "")
//	// urls == []string{"https://imgur.com/abC123"}
type Builder struct {
	prefix    string
	validator *Validator
}

// NewBuilder creates a Builder that prepends prefix to every hash and keeps
// only URLs validator accepts as single-image links.
func NewBuilder(prefix string, validator *Validator) *Builder {
	return &Builder{
		prefix:    prefix,
		validator: validator,
	}
}

// URL returns prefix + hash + suffix without validating it.
func (b *Builder) URL(hash, suffix string) string {
	return b.prefix + hash + suffix
}

// BuildURLs builds prefix + hash + suffix for each hash and returns the
// URLs that pass validation, each at most once, in first-seen order.
//
// Invalid URLs are dropped silently. The seen set lives only for the
// duration of the call.
func (b *Builder) BuildURLs(hashes iter.Seq[string], suffix string) []string {
	seen := linkedhashset.New()
	for hash := range hashes {
		url := b.URL(hash, suffix)
		if seen.Contains(url) || !b.validator.Validate(url, ModeImage) {
			continue
		}
		seen.Add(url)
	}

	urls := make([]string, 0, seen.Size())
	for _, v := range seen.Values() {
		urls = append(urls, v.(string))
	}
	return urls
}
