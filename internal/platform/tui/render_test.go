package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

func TestStylerPlainScreen(t *testing.T) {
	scr := core.NewScreen(4, 2)
	scr.DrawTextColored(0, 0, "ab", core.ColorDefault)
	scr.DrawTextColored(0, 1, "cd", core.ColorDefault)

	got := NewStyler(nil).Render(scr)
	if got != scr.String() {
		t.Errorf("default-coloured cells should render unstyled:\n%q\nexpected\n%q", got, scr.String())
	}
}

func TestStylerColourRuns(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.ANSI)

	scr := core.NewScreen(6, 1)
	scr.DrawTextColored(0, 0, "gg", core.ColorGreen)
	scr.DrawTextColored(2, 0, "yy", core.ColorYellow)

	got := NewStyler(r).Render(scr)
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("coloured cells should carry escape codes, got %q", got)
	}
	if n := lipgloss.Width(got); n != 6 {
		t.Errorf("visible width = %d, expected 6", n)
	}
	if !strings.Contains(got, "gg") || !strings.Contains(got, "yy") {
		t.Errorf("runs should stay contiguous, got %q", got)
	}
}

func TestStylerOutOfRangeColour(t *testing.T) {
	scr := core.NewScreen(1, 1)
	scr.SetColored(0, 0, 'x', core.ColorCount+3)
	if got := NewStyler(nil).Render(scr); !strings.Contains(got, "x") {
		t.Errorf("unknown colour should fall back to default, got %q", got)
	}
}
