// flappy is a terminal Flappy Bird clone with local play, an SSH server and
// persistent high scores.
//
// Usage:
//
//	flappy                   - Start the interactive menu
//	flappy list              - List available variants
//	flappy play [variant]    - Play a variant (default: flappy)
//	flappy menu              - Start menu to pick a variant interactively
//	flappy serve             - Start SSH server for remote play
//	flappy scores [variant]  - Show high scores
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Use a custom flappy.yaml
//	--difficulty <name>   - easy, normal, hard or fixed
//	--sound               - Play sound effects
//	--log-file <path>     - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagLogFile    string
	flagRealtime   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap through pipes in your terminal",
	Long: `Flappy is a terminal take on the classic one-button game.
Tap to flap, pass through the gaps, and don't touch the ground.

Available commands:
  list     - Show the available variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play flappy_lite --difficulty hard
  flappy menu --sound
  flappy serve --ssh :2222
  flappy scores flappy --stats`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyGameConfig,
	RunE:              runMenu,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom flappy.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagSound, "sound", false, "Play sound effects")
	pf.StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
	pf.BoolVar(&flagRealtime, "realtime", false, "Step physics by measured frame time instead of a fixed 1/fps")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGameConfig hands --config and --difficulty to the game package and
// validates the result so a bad file fails before the terminal is taken over.
func applyGameConfig(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	flappy.SetConfigPath(flagConfig)
	flappy.SetDifficultyPreset(flagDifficulty)

	if _, err := flappy.LoadConfig(true); err != nil {
		return err
	}
	return nil
}
