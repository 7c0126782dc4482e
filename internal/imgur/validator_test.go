package imgur

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_Validate(t *testing.T) {
	v := NewValidator(DefaultValidatorConfig())

	tests := []struct {
		name      string
		candidate string
		mode      Mode
		want      bool
	}{
		{"album link", "https://imgur.com/a/Xk3fQ9z", ModeAlbum, true},
		{"album link with path segments", "https://imgur.com/a/Xk3fQ9z/layout/blog", ModeAlbum, true},
		{"album link with query", "https://imgur.com/a/Xk3fQ9z?grid", ModeAlbum, true},
		{"album prefix only", "https://imgur.com/a/", ModeAlbum, false},
		{"album link with whitespace", "https://imgur.com/a/Xk3 fQ9z", ModeAlbum, false},
		{"album link over http", "http://imgur.com/a/Xk3fQ9z", ModeAlbum, false},
		{"album link without scheme", "imgur.com/a/Xk3fQ9z", ModeAlbum, false},
		{"image link as album", "https://imgur.com/abC123", ModeAlbum, false},

		{"bare image link", "https://imgur.com/abC123", ModeImage, true},
		{"image link with extension", "https://imgur.com/abC123.png", ModeImage, true},
		{"image link with other extension", "https://imgur.com/abC123.jpg", ModeImage, false},
		{"image prefix only", "https://imgur.com/", ModeImage, false},
		{"album link as image", "https://imgur.com/a/Xk3fQ9z", ModeImage, false},
		{"image link with punctuation", "https://imgur.com/ab-C123", ModeImage, false},
		{"image link on other host", "https://example.com/abC123", ModeImage, false},
		{"image link with trailing text", "https://imgur.com/abC123 ", ModeImage, false},

		{"unknown mode", "https://imgur.com/abC123", Mode(42), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Validate(tt.candidate, tt.mode))
		})
	}
}

func TestValidator_ExtensionPolicy(t *testing.T) {
	tests := []struct {
		name      string
		cfg       ValidatorConfig
		candidate string
		want      bool
	}{
		{
			name:      "required extension present",
			cfg:       ValidatorConfig{ImagePrefix: DefaultImagePrefix, Extension: ".png", RequireExtension: true},
			candidate: "https://imgur.com/abC123.png",
			want:      true,
		},
		{
			name:      "required extension missing",
			cfg:       ValidatorConfig{ImagePrefix: DefaultImagePrefix, Extension: ".png", RequireExtension: true},
			candidate: "https://imgur.com/abC123",
			want:      false,
		},
		{
			name:      "no extension configured rejects one",
			cfg:       ValidatorConfig{ImagePrefix: DefaultImagePrefix},
			candidate: "https://imgur.com/abC123.png",
			want:      false,
		},
		{
			name:      "no extension configured accepts bare hash",
			cfg:       ValidatorConfig{ImagePrefix: DefaultImagePrefix},
			candidate: "https://imgur.com/abC123",
			want:      true,
		},
		{
			name:      "extension dot is literal",
			cfg:       ValidatorConfig{ImagePrefix: DefaultImagePrefix, Extension: ".png", RequireExtension: true},
			candidate: "https://imgur.com/abC123xpng",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator(tt.cfg)
			assert.Equal(t, tt.want, v.Validate(tt.candidate, ModeImage))
		})
	}
}

func TestValidator_MissingHostPrefixFailsBothModes(t *testing.T) {
	v := NewValidator(DefaultValidatorConfig())

	for _, candidate := range []string{"", "abC123", "/a/Xk3fQ9z", "ftp://imgur.com/a/x", "https://i.imgur.com/abC123"} {
		assert.False(t, v.Validate(candidate, ModeAlbum), candidate)
		assert.False(t, v.Validate(candidate, ModeImage), candidate)
	}
}

func TestValidator_Check(t *testing.T) {
	v := NewValidator(DefaultValidatorConfig())

	assert.NoError(t, v.Check("https://imgur.com/a/Xk3fQ9z", ModeAlbum))

	err := v.Check("https://imgur.com/abC123", ModeAlbum)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "album")
}

func TestValidator_Classify(t *testing.T) {
	v := NewValidator(DefaultValidatorConfig())

	mode, ok := v.Classify("https://imgur.com/a/Xk3fQ9z")
	assert.True(t, ok)
	assert.Equal(t, ModeAlbum, mode)

	mode, ok = v.Classify("https://imgur.com/abC123.png")
	assert.True(t, ok)
	assert.Equal(t, ModeImage, mode)

	_, ok = v.Classify("https://example.com/abC123")
	assert.False(t, ok)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "album", ModeAlbum.String())
	assert.Equal(t, "image", ModeImage.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
