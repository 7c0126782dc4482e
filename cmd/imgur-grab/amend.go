package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/handiism/imgur-grabber/internal/config"
	"github.com/handiism/imgur-grabber/internal/grab"
)

var (
	amendPrefix string
	amendSuffix string
)

var amendCmd = &cobra.Command{
	Use:   "amend <file>",
	Short: "Append an extension to every link in a file",
	Long: `Reads a list of links, appends the suffix to every line and writes the
result next to the source, named with the prefix in front of the file name.
Lines are copied in order; nothing is validated or deduplicated.`,
	Example: `  imgur-grab amend links.txt                 # writes amended_links.txt
  imgur-grab amend --suffix .jpg links.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := getSettings()
		if cmd.Flags().Changed("prefix") {
			s.AmendPrefix = amendPrefix
		}
		if cmd.Flags().Changed("suffix") {
			s.AmendSuffix = amendSuffix
		}

		return runAmend(cmd.Context(), cmd.OutOrStdout(), getLogger(), s, args[0])
	},
}

func init() {
	amendCmd.Flags().StringVar(&amendPrefix, "prefix", "", "Prefix of the output file name (default from settings: amended_)")
	amendCmd.Flags().StringVar(&amendSuffix, "suffix", "", "Text appended to every line (default from settings: .png)")
}

func runAmend(ctx context.Context, out io.Writer, logger *slog.Logger, s *config.Settings, source string) error {
	manager := grab.NewManager(s, progressLogger(logger))

	result, err := manager.Amend(ctx, source)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, result.Summary())
	return err
}
