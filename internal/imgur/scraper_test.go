package imgur

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// albumPage renders a page that embeds the image block twice, the way
// imgur's front end does.
func albumPage(hashes ...string) string {
	records := make([]string, len(hashes))
	for i, hash := range hashes {
		records[i] = fmt.Sprintf(`{"hash":"%s","title":"image %d","description":null,"ext":".png","animated":false}`, hash, i)
	}
	block := fmt.Sprintf(`"count":%d,"images":[%s]`, len(hashes), strings.Join(records, ","))

	return "<!doctype html>\n<html>\n<head><title>album</title></head>\n<body>\n" +
		"<script>\n" +
		"var album = {\"id\":\"Xk3fQ9z\",\"album_images\":{" + block + "}};\n" +
		"var gallery = {\"album_images\":{" + block + "}};\n" +
		"</script>\n</body>\n</html>\n"
}

func TestScraper_ParseAlbumPage(t *testing.T) {
	s := NewScraper(DefaultScraperConfig())

	urls, err := s.ParseAlbumPage(albumPage("abC123", "dEf456", "gHi789"))

	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://imgur.com/abC123",
		"https://imgur.com/dEf456",
		"https://imgur.com/gHi789",
	}, urls)
}

func TestScraper_ParseAlbumPage_CountMatchesDistinctRecords(t *testing.T) {
	for _, filter := range []bool{true, false} {
		t.Run(fmt.Sprintf("filter=%v", filter), func(t *testing.T) {
			cfg := DefaultScraperConfig()
			cfg.FilterHashLines = filter
			s := NewScraper(cfg)

			var hashes []string
			for i := 0; i < 25; i++ {
				hashes = append(hashes, fmt.Sprintf("img%02dX", i))
			}

			urls, err := s.ParseAlbumPage(albumPage(hashes...))
			require.NoError(t, err)
			assert.Len(t, urls, len(hashes))
		})
	}
}

func TestScraper_ParseAlbumPage_DuplicateBlockMissing(t *testing.T) {
	s := NewScraper(DefaultScraperConfig())
	page := `<script>var album = {"count":2,"images":[{"hash":"a1"},{"hash":"b2"}]};</script>`

	urls, err := s.ParseAlbumPage(page)

	require.NoError(t, err)
	assert.Equal(t, []string{"https://imgur.com/a1", "https://imgur.com/b2"}, urls)
}

func TestScraper_ParseAlbumPage_NoMarker(t *testing.T) {
	s := NewScraper(DefaultScraperConfig())

	_, err := s.ParseAlbumPage("<html><body>404</body></html>")

	assert.True(t, errors.Is(err, ErrFormat))
}

func TestScraper_Scrape_NoMarkerYieldsNoURLs(t *testing.T) {
	s := NewScraper(DefaultScraperConfig())

	urls := s.Scrape("<html><body>This album is empty</body></html>")

	assert.NotNil(t, urls)
	assert.Empty(t, urls)
}

func TestScraper_Scrape_WithSuffix(t *testing.T) {
	cfg := DefaultScraperConfig()
	cfg.Validator.RequireExtension = true
	cfg.Suffix = ".png"
	s := NewScraper(cfg)

	urls := s.Scrape(albumPage("abC123", "abC123", "dEf456"))

	assert.Equal(t, []string{"https://imgur.com/abC123.png", "https://imgur.com/dEf456.png"}, urls)
}

func TestScraper_Validator(t *testing.T) {
	s := NewScraper(DefaultScraperConfig())

	assert.True(t, s.Validator().Validate("https://imgur.com/a/Xk3fQ9z", ModeAlbum))
}
