package config

import (
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/handiism/imgur-grabber/internal/http"
	"github.com/handiism/imgur-grabber/internal/imgur"
	ioutils "github.com/handiism/imgur-grabber/internal/io"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Settings holds all configuration options.
type Settings struct {
	// Link shapes
	ImagePrefix      string `json:"image_prefix"`
	AlbumPrefix      string `json:"album_prefix"`
	ImageExtension   string `json:"image_extension"`
	RequireExtension bool   `json:"require_extension"`

	// Scraping
	URLSuffix       string `json:"url_suffix"`
	FilterHashLines bool   `json:"filter_hash_lines"`

	// Amending
	AmendPrefix string `json:"amend_prefix"`
	AmendSuffix string `json:"amend_suffix"`

	// Transport
	RequestTimeoutSeconds float64 `json:"request_timeout_seconds"` // 0 = no timeout
	UserAgent             string  `json:"user_agent"`

	// Concurrency across album URLs; each album is still fetched and parsed
	// in a single pass.
	MaxConcurrentAlbums int `json:"max_concurrent_albums"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		ImagePrefix:      imgur.DefaultImagePrefix,
		AlbumPrefix:      imgur.DefaultAlbumPrefix,
		ImageExtension:   imgur.DefaultExtension,
		RequireExtension: false,

		URLSuffix:       "",
		FilterHashLines: true,

		AmendPrefix: ioutils.DefaultAmendPrefix,
		AmendSuffix: ioutils.DefaultAmendSuffix,

		RequestTimeoutSeconds: 0,
		UserAgent:             http.DefaultUserAgent,

		MaxConcurrentAlbums: 1,
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// RequestTimeout returns the transport timeout as a Duration.
func (s *Settings) RequestTimeout() time.Duration {
	if s.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(s.RequestTimeoutSeconds * float64(time.Second))
}

// Concurrency returns MaxConcurrentAlbums, at least 1.
func (s *Settings) Concurrency() int {
	if s.MaxConcurrentAlbums < 1 {
		return 1
	}
	return s.MaxConcurrentAlbums
}

// ToValidatorConfig converts settings to a ValidatorConfig.
func (s *Settings) ToValidatorConfig() imgur.ValidatorConfig {
	return imgur.ValidatorConfig{
		ImagePrefix:      s.ImagePrefix,
		AlbumPrefix:      s.AlbumPrefix,
		Extension:        s.ImageExtension,
		RequireExtension: s.RequireExtension,
	}
}

// ToScraperConfig converts settings to a ScraperConfig.
func (s *Settings) ToScraperConfig() imgur.ScraperConfig {
	return imgur.ScraperConfig{
		Validator:       s.ToValidatorConfig(),
		Suffix:          s.URLSuffix,
		FilterHashLines: s.FilterHashLines,
	}
}
