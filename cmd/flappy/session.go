package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-arcade/internal/audio"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// soundVolume is the master volume for --sound.
const soundVolume = 0.6

// localSession holds the collaborators shared by play and menu.
type localSession struct {
	opts    tui.Options
	sound   *audio.SoundManager
	logFile *os.File
}

// openLocalSession opens storage, logging and sound for local play.
// Failures downgrade to warnings; the game runs without the missing piece.
func openLocalSession() *localSession {
	s := &localSession{}

	logger := log.New(io.Discard)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			s.logFile = f
			logger = log.NewWithOptions(f, log.Options{
				ReportTimestamp: true,
				Prefix:          "flappy",
				Level:           log.DebugLevel,
			})
		}
	}
	s.opts.Logger = logger

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
	} else {
		s.opts.Store = store
	}

	if flagSound {
		sm := audio.NewSoundManager(soundVolume, logger)
		if err := sm.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
			logger.Warn("sound disabled", "err", err)
		} else {
			s.sound = sm
			s.opts.Sink = sm
		}
	}

	return s
}

// Close releases everything openLocalSession acquired.
func (s *localSession) Close() {
	if s.sound != nil {
		s.sound.Cleanup()
	}
	if s.opts.Store != nil {
		if err := s.opts.Store.Close(); err != nil {
			s.opts.Logger.Warn("cannot close scores database", "err", err)
		}
	}
	if s.logFile != nil {
		//nolint:errcheck // Nothing left to report to
		s.logFile.Close()
	}
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if flagRealtime {
		// Cap at three frames so a stalled terminal cannot tunnel the body
		cfg.Clock = core.NewWallClock(3.0 / float64(flagFPS))
	}
	return cfg
}
