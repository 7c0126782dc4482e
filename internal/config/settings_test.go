package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "missing.json"))

	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"require_extension":true,"url_suffix":".png"}`), 0644))

	settings, err := Load(path)

	require.NoError(t, err)
	assert.True(t, settings.RequireExtension)
	assert.Equal(t, ".png", settings.URLSuffix)
	assert.Equal(t, "https://imgur.com/", settings.ImagePrefix)
	assert.Equal(t, "amended_", settings.AmendPrefix)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := Load(path)

	assert.Error(t, err)
}

func TestSettings_SaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	settings := DefaultSettings()
	settings.MaxConcurrentAlbums = 4

	require.NoError(t, settings.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, loaded.MaxConcurrentAlbums)
}

func TestSettings_RequestTimeout(t *testing.T) {
	settings := DefaultSettings()
	assert.Zero(t, settings.RequestTimeout())

	settings.RequestTimeoutSeconds = 1.5
	assert.Equal(t, 1500*time.Millisecond, settings.RequestTimeout())
}

func TestSettings_Concurrency(t *testing.T) {
	settings := DefaultSettings()
	settings.MaxConcurrentAlbums = 0
	assert.Equal(t, 1, settings.Concurrency())

	settings.MaxConcurrentAlbums = 3
	assert.Equal(t, 3, settings.Concurrency())
}

func TestSettings_ToScraperConfig(t *testing.T) {
	settings := DefaultSettings()
	settings.RequireExtension = true
	settings.URLSuffix = ".png"
	settings.FilterHashLines = false

	cfg := settings.ToScraperConfig()

	assert.Equal(t, "https://imgur.com/", cfg.Validator.ImagePrefix)
	assert.Equal(t, "https://imgur.com/a/", cfg.Validator.AlbumPrefix)
	assert.Equal(t, ".png", cfg.Validator.Extension)
	assert.True(t, cfg.Validator.RequireExtension)
	assert.Equal(t, ".png", cfg.Suffix)
	assert.False(t, cfg.FilterHashLines)
}
