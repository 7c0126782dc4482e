package imgur

import (
	"fmt"
	"regexp"
)

const (
	// DefaultImagePrefix is prepended to a hash to form a direct image URL.
	DefaultImagePrefix = "https://imgur.com/"

	// DefaultAlbumPrefix starts every album link.
	DefaultAlbumPrefix = "https://imgur.com/a/"

	// DefaultExtension is the file extension some upload targets expect on
	// direct image URLs.
	DefaultExtension = ".png"
)

// Mode selects which link shape a Validator checks against.
type Mode int

const (
	// ModeImage matches a single-image link: prefix, alphanumeric hash and
	// an optional (or required) extension.
	ModeImage Mode = iota

	// ModeAlbum matches an album link: album prefix followed by any
	// non-whitespace identifier.
	ModeAlbum
)

// String returns a human readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeAlbum:
		return "album"
	case ModeImage:
		return "image"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ValidatorConfig holds the link shapes a Validator accepts.
type ValidatorConfig struct {
	// ImagePrefix starts every single-image link, e.g. "https://imgur.com/".
	ImagePrefix string

	// AlbumPrefix starts every album link, e.g. "https://imgur.com/a/".
	AlbumPrefix string

	// Extension is the file extension allowed after an image hash.
	// Empty means image links are bare hashes.
	Extension string

	// RequireExtension rejects image links that do not end in Extension.
	RequireExtension bool
}

// DefaultValidatorConfig returns the imgur link shapes with an optional
// ".png" extension.
func DefaultValidatorConfig() ValidatorConfig {
	return ValidatorConfig{
		ImagePrefix: DefaultImagePrefix,
		AlbumPrefix: DefaultAlbumPrefix,
		Extension:   DefaultExtension,
	}
}

// Validator checks strings against the album and single-image link shapes.
//
// A Validator is immutable and safe for concurrent use.
type Validator struct {
	album *regexp.Regexp
	image *regexp.Regexp
}

// NewValidator compiles the link patterns described by cfg.
func NewValidator(cfg ValidatorConfig) *Validator {
	ext := ""
	if cfg.Extension != "" {
		ext = regexp.QuoteMeta(cfg.Extension)
		if !cfg.RequireExtension {
			ext = "(?:" + ext + ")?"
		}
	}

	return &Validator{
		album: regexp.MustCompile(`^` + regexp.QuoteMeta(cfg.AlbumPrefix) + `\S+$`),
		image: regexp.MustCompile(`^` + regexp.QuoteMeta(cfg.ImagePrefix) + `[a-zA-Z0-9]+` + ext + `$`),
	}
}

// Validate reports whether candidate matches the whole link shape for mode.
func (v *Validator) Validate(candidate string, mode Mode) bool {
	switch mode {
	case ModeAlbum:
		return v.album.MatchString(candidate)
	case ModeImage:
		return v.image.MatchString(candidate)
	default:
		return false
	}
}

// Check is Validate returning an error wrapping ErrValidation on mismatch.
func (v *Validator) Check(candidate string, mode Mode) error {
	if !v.Validate(candidate, mode) {
		return fmt.Errorf("%w: %q is not an %s link", ErrValidation, candidate, mode)
	}
	return nil
}

// Classify reports which link shape candidate has. Album links win over
// image links. ok is false when candidate matches neither.
func (v *Validator) Classify(candidate string) (mode Mode, ok bool) {
	if v.Validate(candidate, ModeAlbum) {
		return ModeAlbum, true
	}
	if v.Validate(candidate, ModeImage) {
		return ModeImage, true
	}
	return ModeImage, false
}
