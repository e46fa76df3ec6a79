package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows every registered variant with its best recorded score.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	games := registry.List()
	if len(games) == 0 {
		_, err := fmt.Fprintln(out, "No variants available.")
		return err
	}

	// Best scores are optional here
	var store *storage.Store
	if s, err := storage.Open(flagDBPath); err == nil {
		store = s
		defer store.Close()
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("ID", "TITLE", "BEST", "ABOUT")
	for _, g := range games {
		best := "-"
		if store != nil {
			if b, err := store.LoadBest(g.ID); err == nil && b > 0 {
				best = fmt.Sprint(b)
			}
		}
		t.Row(g.ID, g.Title, best, g.Description)
	}

	_, err := fmt.Fprintf(out, "%s\n\nRun 'flappy play <id>' to play a variant.\n", t.Render())
	return err
}
