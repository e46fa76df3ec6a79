package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

// MenuChoice is how the menu was left.
type MenuChoice int

const (
	ChoiceNone   MenuChoice = iota // still open
	ChoicePlay                     // Selected holds the variant
	ChoiceScores                   // open the scoreboard
	ChoiceQuit
)

// MenuItem is one row of the menu. Rows with an empty GameID are not
// variants.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Best        int // 0 when unknown
}

type menuStyles struct {
	logo, cursor, item, best, blurb, help lipgloss.Style
}

func newMenuStyles(r *lipgloss.Renderer) menuStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return menuStyles{
		logo:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		cursor: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		item:   r.NewStyle(),
		best:   r.NewStyle().Foreground(lipgloss.Color("241")),
		blurb:  r.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		help:   r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MenuModel picks a variant or the scoreboard. It quits its program once
// a choice is made; SessionModel intercepts that.
type MenuModel struct {
	items  []MenuItem
	cursor int
	config core.RuntimeConfig
	keys   *KeyMapper
	help   help.Model
	styles menuStyles

	choice MenuChoice
}

// NewMenuModel lists every registered variant, with best scores from
// opts.Store when one is set, followed by the scoreboard entry.
func NewMenuModel(cfg core.RuntimeConfig, opts Options) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+1)
	for _, g := range games {
		it := MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
		if opts.Store != nil {
			if best, err := opts.Store.LoadBest(g.ID); err == nil {
				it.Best = best
			}
		}
		items = append(items, it)
	}
	items = append(items, MenuItem{Title: "High Scores", Description: "history and stats per variant"})

	h := help.New()
	h.Width = cfg.ScreenW
	return MenuModel{
		items:  items,
		config: cfg,
		keys:   NewKeyMapper(),
		help:   h,
		styles: newMenuStyles(opts.Renderer),
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		m.choice = m.apply(m.keys.MapKeyToMenuAction(msg))
		if m.choice != ChoiceNone {
			return m, tea.Quit
		}
	}
	return m, nil
}

// apply moves the cursor or turns the action into a choice.
func (m *MenuModel) apply(a MenuAction) MenuChoice {
	switch a {
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case MenuActionScoreboard:
		return ChoiceScores
	case MenuActionQuit:
		return ChoiceQuit
	case MenuActionSelect:
		if m.items[m.cursor].GameID == "" {
			return ChoiceScores
		}
		return ChoicePlay
	}
	return ChoiceNone
}

func (m MenuModel) View() string {
	if m.choice == ChoiceQuit {
		return ""
	}
	s := m.styles
	w := m.config.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(s.logo.Render("F L A P P Y"), w))
	b.WriteString("\n\n")

	for i, it := range m.items {
		mark, title := "  ", s.item.Render(it.Title)
		if i == m.cursor {
			mark, title = s.cursor.Render("▸ "), s.cursor.Render(it.Title)
		}
		line := mark + title
		if it.Best > 0 {
			line += s.best.Render(fmt.Sprintf("  best %d", it.Best))
		}
		b.WriteString(centerText(line, w))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(s.blurb.Render(m.items[m.cursor].Description), w))
	b.WriteString("\n\n")
	b.WriteString(centerText(s.help.Render(m.help.View(m.keys.Menu)), w))
	b.WriteString("\n")
	return b.String()
}

// Choice reports how the menu was left.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Selected is the highlighted variant after ChoicePlay, nil otherwise.
func (m MenuModel) Selected() *MenuItem {
	if m.choice != ChoicePlay {
		return nil
	}
	it := m.items[m.cursor]
	return &it
}

// Config is the runtime config including any resize seen by the menu.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText left-pads text to centre it in width cells. ANSI sequences
// do not count towards the width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult is the outcome of RunMenu.
type MenuResult struct {
	Choice MenuChoice
	GameID string // set for ChoicePlay
	Config core.RuntimeConfig
}

// RunMenu shows the menu as its own program.
func RunMenu(cfg core.RuntimeConfig, opts Options) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(cfg, opts), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, fmt.Errorf("tui: menu: %w", err)
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}

	res := MenuResult{Choice: m.Choice(), Config: m.Config()}
	switch res.Choice {
	case ChoicePlay:
		res.GameID = m.Selected().GameID
	case ChoiceNone:
		// Program ended without a choice, e.g. interrupted
		res.Choice = ChoiceQuit
	}
	return res, nil
}
