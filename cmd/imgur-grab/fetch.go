package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/handiism/imgur-grabber/internal/config"
	"github.com/handiism/imgur-grabber/internal/grab"
	ioutils "github.com/handiism/imgur-grabber/internal/io"
	"github.com/handiism/imgur-grabber/internal/model"
)

type fetchOptions struct {
	inputFile  string
	outputFile string
	outputDir  string
	format     string
}

var (
	fetchOpts fetchOptions

	suffix      string
	requireExt  bool
	timeout     float64
	concurrency int
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [album-url...]",
	Short: "Print the direct image links of one or more albums",
	Long: `Downloads each album page, extracts the image records embedded in it and
prints one direct link per image, in page order and without duplicates,
followed by "Found N images in M ms".

Album links can be given as arguments (comma or whitespace separated) or read
from a file with --input.`,
	Example: `  imgur-grab fetch https://imgur.com/a/Xk3fQ9z
  imgur-grab fetch --suffix .png --output links.txt https://imgur.com/a/Xk3fQ9z
  imgur-grab fetch --format json --concurrency 4 --input albums.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := getSettings()
		flags := cmd.Flags()
		if flags.Changed("suffix") {
			s.URLSuffix = suffix
		}
		if flags.Changed("require-ext") {
			s.RequireExtension = requireExt
		}
		if flags.Changed("timeout") {
			s.RequestTimeoutSeconds = timeout
		}
		if flags.Changed("concurrency") {
			s.MaxConcurrentAlbums = concurrency
		}

		return runFetch(cmd.Context(), cmd.OutOrStdout(), getLogger(), s, fetchOpts, args)
	},
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchOpts.inputFile, "input", "i", "", "Read album links from a file, one per line")
	fetchCmd.Flags().StringVarP(&fetchOpts.outputFile, "output", "o", "", "Also write every link to this file, one per line")
	fetchCmd.Flags().StringVar(&fetchOpts.outputDir, "output-dir", "", "Also write each album's links to <dir>/<album-id>.txt")
	fetchCmd.Flags().StringVar(&fetchOpts.format, "format", "text", "Output format (text or json)")
	fetchCmd.Flags().StringVar(&suffix, "suffix", "", "Text appended to every image link, e.g. .png")
	fetchCmd.Flags().BoolVar(&requireExt, "require-ext", false, "Reject image links that lack the configured extension")
	fetchCmd.Flags().Float64Var(&timeout, "timeout", 0, "Request timeout in seconds (0 = none)")
	fetchCmd.Flags().IntVarP(&concurrency, "concurrency", "c", 1, "Number of albums fetched at once")
}

// runFetch fetches every album named in args or opts.inputFile and reports
// the links to out. Albums that fail are logged; the run still reports the
// rest and then returns the joined errors.
func runFetch(ctx context.Context, out io.Writer, logger *slog.Logger, s *config.Settings, opts fetchOptions, args []string) error {
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("unknown --format %q (want text or json)", opts.format)
	}

	manager := grab.NewManager(s, progressLogger(logger))

	input := strings.Join(args, "\n")
	if opts.inputFile != "" {
		lines, err := ioutils.ReadLines(ctx, opts.inputFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", opts.inputFile, err)
		}
		input += "\n" + strings.Join(lines, "\n")
	}

	urls := manager.ParseInputURLs(input)
	if len(urls) == 0 {
		return fmt.Errorf("no album links given")
	}
	logger.Info("Fetching albums", "count", len(urls), "concurrency", s.Concurrency())

	albums, fetchErr := manager.FetchAll(ctx, urls)

	if err := writeAlbums(out, albums, opts.format); err != nil {
		return err
	}
	if err := exportAlbums(ctx, logger, albums, opts); err != nil {
		return err
	}

	return fetchErr
}

// writeAlbums prints albums to out in the requested format.
func writeAlbums(out io.Writer, albums []*model.Album, format string) error {
	if format == "json" {
		return ioutils.WriteAlbumsJSON(out, albums)
	}

	for _, album := range albums {
		for _, link := range album.Images {
			if _, err := fmt.Fprintln(out, link); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(out, album.Summary()); err != nil {
			return err
		}
	}
	return nil
}

// exportAlbums writes the optional link files.
func exportAlbums(ctx context.Context, logger *slog.Logger, albums []*model.Album, opts fetchOptions) error {
	if opts.outputFile != "" {
		if err := ioutils.SaveLinks(ctx, opts.outputFile, albums); err != nil {
			return err
		}
		logger.Info("Links saved", "path", opts.outputFile)
	}

	if opts.outputDir != "" {
		for _, album := range albums {
			path, err := ioutils.SaveAlbum(ctx, opts.outputDir, album)
			if err != nil {
				return err
			}
			logger.Info("Album saved", "album", album.ID, "path", path)
		}
	}
	return nil
}
