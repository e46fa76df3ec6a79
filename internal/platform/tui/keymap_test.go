package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"w flaps", runeKey('w'), core.ActionJump, false},
		{"up flaps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"b goes back", runeKey('b'), core.ActionBack, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", action, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('x'), &frame) {
		t.Error("unbound key should not quit")
	}
	if frame.Has(core.ActionJump) {
		t.Error("unbound key should not set an action")
	}

	km.MapKeyToFrame(runeKey('w'), &frame)
	if !frame.Has(core.ActionJump) {
		t.Error("w should set ActionJump")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tc.msg.String(), got, tc.expected)
		}
	}
}
