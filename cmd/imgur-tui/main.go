package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/handiism/imgur-grabber/internal/config"
	"github.com/handiism/imgur-grabber/internal/tui"
)

func main() {
	var cfgFile string

	cmd := &cobra.Command{
		Use:          "imgur-tui",
		Short:        "Interactive imgur album link grabber",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.DefaultSettings()
			if cfgFile != "" {
				var err error
				settings, err = config.Load(cfgFile)
				if err != nil {
					return fmt.Errorf("failed to load config %s: %w", cfgFile, err)
				}
			}
			return tui.Run(settings)
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "Path to a JSON settings file")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
