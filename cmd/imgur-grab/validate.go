package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/handiism/imgur-grabber/internal/config"
	"github.com/handiism/imgur-grabber/internal/imgur"
)

var validateCmd = &cobra.Command{
	Use:   "validate <link>...",
	Short: "Check whether links are album or image links",
	Long: `Prints each argument followed by "album", "image" or "invalid". Nothing is
fetched. Exits non-zero if any argument is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.OutOrStdout(), getSettings(), args)
	},
}

func runValidate(out io.Writer, s *config.Settings, links []string) error {
	validator := imgur.NewValidator(s.ToValidatorConfig())

	invalid := 0
	for _, link := range links {
		kind := "invalid"
		if mode, ok := validator.Classify(link); ok {
			kind = mode.String()
		} else {
			invalid++
		}
		if _, err := fmt.Fprintf(out, "%s\t%s\n", link, kind); err != nil {
			return err
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d links invalid: %w", invalid, len(links), imgur.ErrValidation)
	}
	return nil
}
