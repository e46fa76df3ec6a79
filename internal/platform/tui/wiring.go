// Package tui runs games in the terminal with Bubble Tea: the per-game
// model, the variant menu, the scoreboard and the SSH session server.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// Options carries the collaborators a game session is wired to.
// Every field is optional.
type Options struct {
	Store    *storage.Store   // Score history and best score
	Sink     flappy.EventSink // Sound or other event consumers
	Logger   *log.Logger
	Renderer *lipgloss.Renderer // Per-session colour profile; nil means stdout
}

// Games opt into collaborators by implementing these setters.
type (
	highScoreSetter interface {
		SetHighScoreStore(flappy.HighScoreStore)
	}
	eventSinkSetter interface {
		SetEventSink(flappy.EventSink)
	}
	loggerSetter interface {
		SetLogger(*log.Logger)
	}
)

// wireGame hands the session's collaborators to a game before its first Reset.
func wireGame(game registry.Game, opts Options) {
	if s, ok := game.(highScoreSetter); ok && opts.Store != nil {
		s.SetHighScoreStore(storage.NewHighScores(opts.Store, game.ID()))
	}
	if s, ok := game.(eventSinkSetter); ok && opts.Sink != nil {
		s.SetEventSink(opts.Sink)
	}
	if s, ok := game.(loggerSetter); ok && opts.Logger != nil {
		s.SetLogger(opts.Logger)
	}
}
