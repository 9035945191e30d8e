package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beatflap/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in game config as YAML.

Save it to ~/.arcade/configs/flappy.yaml or ./configs/flappy.yaml to
tune the game, or pass any file with 'beatflap play --config <path>'.

Example:
  beatflap config > ~/.arcade/configs/flappy.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		//nolint:errcheck // Nothing useful to do if stdout is gone
		os.Stdout.Write(config.GetDefaultYAML())
	},
}
