package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

func binding(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

// GameKeyMap holds the in-game bindings.
type GameKeyMap struct {
	Flap, Pause, Back, Quit key.Binding
}

func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Pause, k.Back, k.Quit}
}

func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultGameKeyMap flaps on space, w and up.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Flap:  binding("space", "flap", " ", "w", "up"),
		Pause: binding("p", "pause", "p"),
		Back:  binding("esc", "menu", "esc", "b"),
		Quit:  binding("q", "quit", "q", "ctrl+c"),
	}
}

// MenuKeyMap holds the menu bindings.
type MenuKeyMap struct {
	Up, Down, Select, Back, Scores, Quit key.Binding
}

func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Scores, k.Back, k.Quit}}
}

func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     binding("↑/k", "up", "up", "w", "k"),
		Down:   binding("↓/j", "down", "down", "s", "j"),
		Select: binding("enter", "select", "enter", " "),
		Back:   binding("esc", "back", "esc", "b"),
		Scores: binding("tab", "scores", "tab"),
		Quit:   binding("q", "quit", "q", "ctrl+c"),
	}
}

// MenuAction is what a key means on the menu.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// KeyMapper turns key messages into game actions and menu actions. The
// first matching binding wins, so Quit is checked before anything else.
type KeyMapper struct {
	Game GameKeyMap
	Menu MenuKeyMap
}

func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Game: DefaultGameKeyMap(), Menu: DefaultMenuKeyMap()}
}

// MapKey returns the game action for msg, ActionNone if it is unbound.
// isQuit is set for the quit binding.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	order := [...]struct {
		b key.Binding
		a core.Action
	}{
		{km.Game.Quit, core.ActionQuit},
		{km.Game.Flap, core.ActionJump},
		{km.Game.Back, core.ActionBack},
		{km.Game.Pause, core.ActionPause},
	}
	for _, o := range order {
		if key.Matches(msg, o.b) {
			return o.a, o.a == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame adds the action for msg to frame and reports a quit.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}

func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	order := [...]struct {
		b key.Binding
		a MenuAction
	}{
		{km.Menu.Quit, MenuActionQuit},
		{km.Menu.Up, MenuActionUp},
		{km.Menu.Down, MenuActionDown},
		{km.Menu.Select, MenuActionSelect},
		{km.Menu.Back, MenuActionBack},
		{km.Menu.Scores, MenuActionScoreboard},
	}
	for _, o := range order {
		if key.Matches(msg, o.b) {
			return o.a
		}
	}
	return MenuActionNone
}
