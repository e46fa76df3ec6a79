package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a game would start with after applying
--config and --difficulty. Redirect the output to a file to start a
custom config.

Examples:
  flappy config
  flappy config --difficulty hard
  flappy config --defaults > ~/.arcade/configs/flappy.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults, ignoring config files")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagConfigDefaults {
		// The embedded file keeps its comments, which makes a better template
		_, err := out.Write(config.DefaultFlappyYAML())
		return err
	}

	cfg, err := flappy.LoadConfig(true)
	if err != nil {
		return err
	}
	data, err := config.MarshalFlappy(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
