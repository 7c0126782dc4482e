package grab

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/imgur-grabber/internal/config"
	"github.com/handiism/imgur-grabber/internal/http"
	"github.com/handiism/imgur-grabber/internal/imgur"
	ioutils "github.com/handiism/imgur-grabber/internal/io"
	"github.com/handiism/imgur-grabber/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns the lower-case name of the level.
func (l ProgressLevel) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ProgressEvent represents a progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager runs the fetch and amend pipelines.
type Manager struct {
	settings   *config.Settings
	httpClient *http.Client
	scraper    *imgur.Scraper
	amender    *ioutils.Amender

	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// NewManager creates a new Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		httpClient: http.NewClient(settings.UserAgent, settings.RequestTimeout()),
		scraper:    imgur.NewScraper(settings.ToScraperConfig()),
		amender:    ioutils.NewAmender(settings.AmendPrefix, settings.AmendSuffix),
		onProgress: onProgress,
	}
}

// Validator returns the link validator built from the settings.
func (m *Manager) Validator() *imgur.Validator {
	return m.scraper.Validator()
}

// ParseInputURLs splits user input on newlines, commas and whitespace and
// returns the non-empty entries, in order, without repeats.
func (m *Manager) ParseInputURLs(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r' || r == ' ' || r == '\t'
	})
	return lo.Uniq(fields)
}

// FetchAlbum downloads one album page and extracts its direct image URLs.
//
// Returns an error wrapping imgur.ErrValidation if albumURL is not an album
// link, or a *http.TransportError if the page cannot be fetched. A page
// without image data is not an error: the album is returned with no images
// and a warning is reported.
func (m *Manager) FetchAlbum(ctx context.Context, albumURL string) (*model.Album, error) {
	if err := m.Validator().Check(albumURL, imgur.ModeAlbum); err != nil {
		return nil, err
	}

	album := model.NewAlbum(albumURL, m.settings.AlbumPrefix)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching links from %s", albumURL), Level: LevelVerbose})

	start := time.Now()
	html, err := m.httpClient.GetString(ctx, albumURL)
	if err != nil {
		return nil, err
	}

	urls, err := m.scraper.ParseAlbumPage(html)
	if err != nil {
		if !errors.Is(err, imgur.ErrFormat) {
			return nil, err
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("No image data in %s (empty, private or changed layout)", albumURL), Level: LevelWarning})
		urls = []string{}
	}
	album.Images = urls
	album.Elapsed = time.Since(start)

	for _, u := range album.Images {
		m.progress(ProgressEvent{Message: u, Level: LevelVerbose})
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("%s: %s", album.ID, album.Summary()), Level: LevelSuccess})

	return album, nil
}

// FetchAll runs FetchAlbum for every URL, up to the configured number of
// albums at a time.
//
// A failing album does not stop the others. The albums that succeeded are
// returned in input order together with the joined errors of the rest.
func (m *Manager) FetchAll(ctx context.Context, albumURLs []string) ([]*model.Album, error) {
	albums := make([]*model.Album, len(albumURLs))
	errs := make([]error, len(albumURLs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.Concurrency())

	for i, albumURL := range albumURLs {
		g.Go(func() error {
			album, err := m.FetchAlbum(ctx, albumURL)
			if err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching %s: %v", albumURL, err), Level: LevelError})
				errs[i] = fmt.Errorf("%s: %w", albumURL, err)
				return nil
			}
			albums[i] = album
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return lo.Compact(albums), errors.Join(errs...)
}

// Amend appends the configured suffix to every line of source and writes
// the result to a new file named with the configured prefix.
//
// Returns an error wrapping ioutils.ErrIO if source cannot be read or the
// destination cannot be written.
func (m *Manager) Amend(ctx context.Context, source string) (*model.AmendResult, error) {
	if err := ioutils.CheckReadable(source); err != nil {
		return nil, err
	}
	output := m.amender.OutputPath(source)
	if err := ioutils.CheckWritable(output); err != nil {
		return nil, err
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Amending %s", source), Level: LevelVerbose})

	output, count, err := m.amender.AmendFile(ctx, source)
	if err != nil {
		return nil, err
	}

	result := &model.AmendResult{SourcePath: source, OutputPath: output, Count: count}
	m.progress(ProgressEvent{Message: result.Summary(), Level: LevelSuccess})
	return result, nil
}

// progress delivers events one at a time, even while albums are fetched
// concurrently.
func (m *Manager) progress(event ProgressEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
