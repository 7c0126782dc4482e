package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/handiism/imgur-grabber/internal/config"
	"github.com/handiism/imgur-grabber/internal/grab"
)

var (
	// Persistent flags - bound in init()
	cfgFile   string
	logFormat string
	logLevel  string
	logOutput string

	// Populated in PersistentPreRunE
	rootLogger *slog.Logger
	settings   *config.Settings
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "imgur-grab",
	Short: "Collect direct image links from imgur albums.",
	Long: `imgur-grab downloads imgur album pages and prints the direct link of every
image in them, one per line, followed by a summary.

Use 'fetch' to collect links, 'amend' to append an extension to every line of
a saved link list, and 'validate' to check links without fetching anything.
For the interactive front-end, use imgur-tui.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(logLevel, logFormat, logOutput)
		if err != nil {
			return err
		}
		rootLogger = logger
		slog.SetDefault(rootLogger)

		settings = config.DefaultSettings()
		if cfgFile != "" {
			settings, err = config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config %s: %w", cfgFile, err)
			}
			rootLogger.Debug("Configuration loaded", "path", cfgFile)
		}
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(amendCmd)
	rootCmd.AddCommand(validateCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	interrupted := ctx.Err() != nil
	stop()

	if err != nil {
		if interrupted {
			os.Exit(130)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a JSON settings file")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log output format (text or json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logOutput, "log-output", "stderr", "Log output destination (stderr, stdout, or file path)")

	rootCmd.Version = "1.0.0"
}

// newLogger builds the root logger. Logs go to stderr unless told otherwise,
// so stdout only carries results.
func newLogger(level, format, output string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	var w io.Writer = os.Stderr
	switch strings.ToLower(output) {
	case "", "stderr":
	case "stdout":
		w = os.Stdout
	default:
		f, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", output, err)
		}
		w = f
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if strings.ToLower(format) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// progressLogger forwards manager events to logger.
func progressLogger(logger *slog.Logger) func(grab.ProgressEvent) {
	return func(event grab.ProgressEvent) {
		switch event.Level {
		case grab.LevelVerbose:
			logger.Debug(event.Message)
		case grab.LevelWarning:
			logger.Warn(event.Message)
		case grab.LevelError:
			logger.Error(event.Message)
		default:
			logger.Info(event.Message, "level", event.Level.String())
		}
	}
}

func getLogger() *slog.Logger {
	if rootLogger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return rootLogger
}

func getSettings() *config.Settings {
	if settings == nil {
		return config.DefaultSettings()
	}
	return settings
}
