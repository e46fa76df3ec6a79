package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func updateSession(t *testing.T, s SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := s.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return sm
}

func TestSessionPlayThenQuit(t *testing.T) {
	s := NewSessionModel(testConfig(), Options{})

	s = updateSession(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame || s.game == nil {
		t.Fatal("selecting a variant should start a game")
	}
	if s.View() == "" {
		t.Error("game should render")
	}

	s = updateSession(t, s, runeKey('q'))
	if !s.quitting || s.View() != "" {
		t.Error("q in game should end the session")
	}
}

func TestSessionPauseThenBack(t *testing.T) {
	s := NewSessionModel(testConfig(), Options{})
	s = updateSession(t, s, tea.KeyMsg{Type: tea.KeyEnter})

	// Back is ignored mid-round
	s = updateSession(t, s, tea.KeyMsg{Type: tea.KeyEscape})
	s = updateSession(t, s, TickMsg(time.Now()))
	if s.screen != screenGame {
		t.Fatal("esc during play should not leave the game")
	}

	s = updateSession(t, s, runeKey('w'))
	s = updateSession(t, s, TickMsg(time.Now()))
	s = updateSession(t, s, runeKey('p'))
	s = updateSession(t, s, TickMsg(time.Now()))
	if !s.game.State().Paused {
		t.Fatal("p should pause the game")
	}

	s = updateSession(t, s, tea.KeyMsg{Type: tea.KeyEscape})
	if s.screen != screenMenu || s.game != nil || s.quitting {
		t.Error("esc while paused should return to the menu")
	}
}

func TestSessionScoreboardAndBack(t *testing.T) {
	s := NewSessionModel(testConfig(), Options{})

	s = updateSession(t, s, tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScores {
		t.Fatal("tab should open the scoreboard in-session")
	}
	if s.View() == "" {
		t.Error("scoreboard should render")
	}

	s = updateSession(t, s, tea.KeyMsg{Type: tea.KeyEscape})
	if s.screen != screenMenu || s.quitting {
		t.Error("esc should return to the menu")
	}
	if s.menu.Choice() != ChoiceNone {
		t.Error("returning should show a fresh menu")
	}
}

func TestSessionResizeReachesGame(t *testing.T) {
	s := NewSessionModel(testConfig(), Options{})
	s = updateSession(t, s, tea.WindowSizeMsg{Width: 100, Height: 30})
	s = updateSession(t, s, tea.KeyMsg{Type: tea.KeyEnter})

	if s.game == nil || s.game.config.ScreenW != 100 || s.game.config.ScreenH != 30 {
		t.Error("game should start at the size the menu saw")
	}
}
