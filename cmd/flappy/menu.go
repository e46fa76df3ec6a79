package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Press Esc after a game ends to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  flappy menu
  flappy menu --fps 30
  flappy menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	session := openLocalSession()
	defer session.Close()

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(cfg, session.opts)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch res.Choice {
		case tui.ChoiceQuit:
			return nil

		case tui.ChoiceScores:
			back, err := tui.RunScoreboard(session.opts.Store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		case tui.ChoicePlay:
			game, err := registry.Create(res.GameID)
			if err != nil {
				return err
			}
			// Fresh seed per round unless pinned
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			if err := tui.Run(game, cfg, session.opts); err != nil {
				session.opts.Logger.Error("game ended with an error", "err", err)
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
