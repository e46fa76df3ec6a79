package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: flappy).

Controls:
  Space/Up/W - Flap (also starts and restarts a round)
  P          - Pause
  Esc/B      - Leave (after game over or while paused)
  Ctrl+S     - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  flappy play
  flappy play flappy_lite
  flappy play --difficulty hard --sound
  flappy play --config ./my-flappy.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := flappy.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if errors.Is(err, registry.ErrUnknownGame) {
		return fmt.Errorf("unknown variant %q (run 'flappy list' to see them)", gameID)
	}
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	session := openLocalSession()
	defer session.Close()

	if err := tui.Run(game, runtimeConfig(), session.opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
