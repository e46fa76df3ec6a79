package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Styler turns a Screen into styled terminal output. Each SSH session gets
// its own lipgloss renderer so colours match the client's terminal.
type Styler struct {
	styles [core.ColorCount]lipgloss.Style
}

// NewStyler builds one style per core colour. A nil renderer means the
// process's own terminal.
func NewStyler(r *lipgloss.Renderer) *Styler {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	s := &Styler{}
	for c := range s.styles {
		st := r.NewStyle()
		if code := core.Color(c).ANSI(); code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		s.styles[c] = st
	}
	return s
}

// style returns the style for a colour, falling back to the default.
func (s *Styler) style(c core.Color) lipgloss.Style {
	if c >= core.ColorCount {
		c = core.ColorDefault
	}
	return s.styles[c]
}

// Render converts the screen to a string, one styled run per stretch of
// same-coloured cells.
func (s *Styler) Render(scr *core.Screen) string {
	var sb strings.Builder
	sb.Grow(scr.Width()*scr.Height()*2 + scr.Height())

	var run strings.Builder
	for y := range scr.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < scr.Width() {
			color := scr.GetCell(x, y).Color
			run.Reset()
			for ; x < scr.Width(); x++ {
				cell := scr.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(s.style(color).Render(run.String()))
		}
	}
	return sb.String()
}
