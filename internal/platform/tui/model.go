package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// screenshotDir receives ctrl+s dumps of the cell screen.
const screenshotDir = "~/.arcade/screenshots"

// Model drives one game: it turns keys into an InputFrame, steps the game
// on every TickMsg and paints the game's Screen. Run uses it on its own;
// SessionModel embeds it between menu visits.
type Model struct {
	game   registry.Game
	opts   Options
	config core.RuntimeConfig
	keys   *KeyMapper
	styler *Styler
	screen *core.Screen

	frame core.InputFrame // actions since the previous tick
	state core.GameState  // as of the previous tick

	standalone bool // Back ends the program
	recorded   bool // the finished round is in the history
	quitting   bool
	backToMenu bool
}

// NewModel wires opts into game. A zero seed is replaced with the clock.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	wireGame(game, opts)
	return Model{
		game:   game,
		opts:   opts,
		config: cfg,
		keys:   NewKeyMapper(),
		styler: NewStyler(opts.Renderer),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
	}
}

// Init resets the game and schedules the first tick.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return nextTick(m.config.TickInterval())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.backToMenu {
			return m, nil
		}
		m.step()
		return m, nextTick(m.config.TickInterval())

	case tea.KeyMsg:
		return m.key(msg)

	case tea.WindowSizeMsg:
		// The match goes on; the renderer rescales the world.
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.screen.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

func (m Model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.screenshot(); err != nil {
			m.warn("screenshot failed", "err", err)
		} else if m.opts.Logger != nil {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.frame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back only leaves between rounds or while paused
	if m.frame.Has(core.ActionBack) && (m.state.GameOver || m.state.Paused) {
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// step advances the game once and records a finished round exactly once.
func (m *Model) step() {
	m.state = m.game.Step(m.frame).State
	m.frame.Clear()

	if !m.state.GameOver {
		m.recorded = false
		return
	}
	if !m.recorded {
		m.recorded = true
		m.record()
	}
}

// record stores the finished round. Zero scores are not history.
func (m *Model) record() {
	if m.opts.Store == nil || m.state.Score <= 0 {
		return
	}
	if _, err := m.opts.Store.RecordRound(m.game.ID(), m.state.Score); err != nil {
		m.warn("cannot record round", "game", m.game.ID(), "err", err)
	}
}

func (m Model) warn(msg string, kv ...any) {
	if m.opts.Logger != nil {
		m.opts.Logger.Warn(msg, kv...)
	}
}

// screenshot writes the current frame as plain text and returns its path.
func (m Model) screenshot() (string, error) {
	dir, err := storage.ExpandPath(screenshotDir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot dir: %w", err)
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return m.styler.Render(m.screen)
}

// State is the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting reports whether the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to leave to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in its own full-screen program until the user quits or
// backs out.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	m := NewModel(game, cfg, opts)
	m.standalone = true
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}
	return nil
}
