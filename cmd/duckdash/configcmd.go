package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duckdash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default config YAML",
	Long: `Print the built-in config for a game (default: duckdash).
Save it, edit it and pass it back with --config.

Examples:
  duckdash config > my-duck.yaml
  duckdash play --config my-duck.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		profile := config.ProfileDuckDash
		if len(args) > 0 {
			profile = args[0]
		}
		data := config.GetDefaultYAML(profile)
		if data == nil {
			return fmt.Errorf("no config for game %q", profile)
		}
		_, err := os.Stdout.Write(data)
		return err
	},
}
