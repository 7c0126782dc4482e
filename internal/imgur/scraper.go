package imgur

import "errors"

// ScraperConfig configures the link shapes and output of a Scraper.
type ScraperConfig struct {
	Validator ValidatorConfig

	// Suffix is appended to every built URL, e.g. ".png". It must satisfy
	// the validator's extension policy or every URL will be dropped.
	Suffix string

	// FilterHashLines runs ReduceHashLines over the page before extraction.
	FilterHashLines bool
}

// DefaultScraperConfig returns bare-hash URLs on the default imgur prefixes.
func DefaultScraperConfig() ScraperConfig {
	return ScraperConfig{
		Validator:       DefaultValidatorConfig(),
		FilterHashLines: true,
	}
}

// Scraper extracts direct image URLs from imgur album page HTML.
//
// A Scraper holds no per-call state and is safe for concurrent use.
type Scraper struct {
	validator       *Validator
	builder         *Builder
	suffix          string
	filterHashLines bool
}

// NewScraper creates a Scraper from cfg.
func NewScraper(cfg ScraperConfig) *Scraper {
	v := NewValidator(cfg.Validator)
	return &Scraper{
		validator:       v,
		builder:         NewBuilder(cfg.Validator.ImagePrefix, v),
		suffix:          cfg.Suffix,
		filterHashLines: cfg.FilterHashLines,
	}
}

// Validator returns the validator the scraper filters URLs with.
func (s *Scraper) Validator() *Validator {
	return s.validator
}

// ParseAlbumPage returns the direct image URLs found in an album page.
//
// Returns an error wrapping ErrFormat if the page has no image data marker.
func (s *Scraper) ParseAlbumPage(page string) ([]string, error) {
	if s.filterHashLines {
		page = ReduceHashLines(page)
	}

	block, err := ExtractImageBlock(page)
	if err != nil {
		return nil, err
	}

	return s.builder.BuildURLs(Hashes(block), s.suffix), nil
}

// Scrape is ParseAlbumPage with a missing marker reported as no images.
func (s *Scraper) Scrape(page string) []string {
	urls, err := s.ParseAlbumPage(page)
	if errors.Is(err, ErrFormat) {
		return []string{}
	}
	return urls
}
