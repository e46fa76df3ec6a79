package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel runs menu, game and scoreboard inside one program, for
// connections that cannot start a new program per screen. Child models
// quit their program when they finish; the session swallows those quits
// and switches screens instead.
type SessionModel struct {
	opts   Options
	config core.RuntimeConfig
	screen sessionScreen

	menu       MenuModel
	game       *Model
	scoreboard ScoreboardModel
	quitting   bool
}

func NewSessionModel(cfg core.RuntimeConfig, opts Options) SessionModel {
	return SessionModel{opts: opts, config: cfg, menu: NewMenuModel(cfg, opts)}
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = ws.Width, ws.Height
	}
	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// showMenu rebuilds the menu so best scores are fresh.
func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.screen, m.game = screenMenu, nil
	m.menu = NewMenuModel(m.config, m.opts)
	return m, m.menu.Init()
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch m.menu.Choice() {
	case ChoiceQuit:
		return m.quit()
	case ChoiceScores:
		m.screen = screenScores
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH, m.opts.Renderer)
		return m, m.scoreboard.Init()
	case ChoicePlay:
		game, err := registry.Create(m.menu.Selected().GameID)
		if err != nil {
			if m.opts.Logger != nil {
				m.opts.Logger.Error("cannot start game", "err", err)
			}
			return m.showMenu()
		}
		cfg := m.menu.Config()
		cfg.Seed = time.Now().UnixNano()
		gm := NewModel(game, cfg, m.opts)
		m.game, m.screen = &gm, screenGame
		return m, gm.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	gm := next.(Model)
	m.game = &gm

	switch {
	case gm.BackToMenu():
		return m.showMenu()
	case gm.IsQuitting():
		return m.quit()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	m.scoreboard = next.(ScoreboardModel)

	switch {
	case m.scoreboard.IsQuitting():
		return m.quit()
	case m.scoreboard.IsGoingBack():
		return m.showMenu()
	}
	return m, cmd
}

func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.screen == screenGame && m.game != nil:
		return m.game.View()
	case m.screen == screenScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
