// Package config provides configuration management for imgur-grabber.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to the scraper and validator configs
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Image links on https://imgur.com/, album links on https://imgur.com/a/
//	// Bare hashes accepted, ".png" optional
//	// Amended files named amended_<source>, lines suffixed with ".png"
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.RequireExtension = true
//	settings.URLSuffix = ".png"
//	err := settings.Save("/path/to/config.json")
//
// # Configuration Options
//
// Settings includes options for:
//   - Image and album link prefixes
//   - Extension policy for single-image links
//   - Suffix appended to scraped URLs
//   - Amend file prefix and line suffix
//   - Request timeout and User-Agent
//   - Album fetch concurrency
package config
