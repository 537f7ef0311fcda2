package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-quad/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a game would run with, after the config file
search and the difficulty preset are applied. Redirect it to a file to
start a custom config.

Search order: --config, ~/.flappy/configs/flappy.yaml,
./configs/flappy.yaml, then the built-in defaults.

Examples:
  flappy config
  flappy config --difficulty hard
  flappy config --defaults > ~/.flappy/configs/flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default YAML with comments")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadGameConfig()
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		logger.Fatal("could not encode config", "error", err)
	}
	os.Stdout.Write(data)
}
