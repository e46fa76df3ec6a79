package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

const (
	statsPanelMinWidth = 72 // Below this the stats collapse into one line
	statsPanelWidth    = 24
	historyLimit       = 100
	dateLayout         = "Jan 02 15:04"
)

// ScoreboardKeyMap holds the scoreboard bindings.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next variant")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev variant")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// scoreboardStyles are built from one renderer so SSH sessions get their
// own colour profile.
type scoreboardStyles struct {
	title  lipgloss.Style
	tab    lipgloss.Style
	tabOn  lipgloss.Style
	panel  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	empty  lipgloss.Style
	footer lipgloss.Style
	table  table.Styles
}

func newScoreboardStyles(r *lipgloss.Renderer) scoreboardStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	accent := lipgloss.Color("229")
	muted := lipgloss.Color("241")
	edge := lipgloss.Color("240")

	ts := table.Styles{
		Header: r.NewStyle().Padding(0, 1).Bold(true).
			BorderStyle(lipgloss.NormalBorder()).BorderForeground(edge).BorderBottom(true),
		Cell:     r.NewStyle().Padding(0, 1),
		Selected: r.NewStyle().Foreground(accent).Background(lipgloss.Color("57")),
	}

	return scoreboardStyles{
		title:  r.NewStyle().Bold(true).Foreground(accent),
		tab:    r.NewStyle().Foreground(muted).Padding(0, 1),
		tabOn:  r.NewStyle().Bold(true).Foreground(accent).Background(lipgloss.Color("57")).Padding(0, 1),
		panel:  r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(edge).Padding(0, 1),
		label:  r.NewStyle().Foreground(muted),
		value:  r.NewStyle().Bold(true),
		empty:  r.NewStyle().Foreground(muted).Italic(true).Padding(1, 2),
		footer: r.NewStyle().Foreground(muted),
		table:  ts,
	}
}

// ScoreboardModel browses round history and aggregates per variant.
type ScoreboardModel struct {
	store    *storage.Store
	variants []registry.GameInfo
	current  int

	history []storage.Round
	stats   storage.Stats
	best    int

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	styles scoreboardStyles

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates the scoreboard. A nil renderer uses the
// process default.
func NewScoreboardModel(store *storage.Store, width, height int, r *lipgloss.Renderer) ScoreboardModel {
	m := ScoreboardModel{
		store:    store,
		variants: registry.List(),
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		styles:   newScoreboardStyles(r),
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.table = table.New(table.WithFocused(true), table.WithStyles(m.styles.table))
	m.layoutTable()
	m.reload()
	return m
}

// wide reports whether the stats panel fits beside the table.
func (m ScoreboardModel) wide() bool {
	return m.width >= statsPanelMinWidth
}

// layoutTable sizes the history columns to the window.
func (m *ScoreboardModel) layoutTable() {
	avail := m.width - 6
	if m.wide() {
		avail -= statsPanelWidth + 4
	}
	dateW := core.Clamp(avail-16, 12, 20)
	m.table.SetColumns([]table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Played", Width: dateW},
	})
	m.table.SetHeight(core.Clamp(m.height-9, 3, historyLimit))
}

// variantID returns the ID of the variant on display, "" when none exist.
func (m ScoreboardModel) variantID() string {
	if len(m.variants) == 0 {
		return ""
	}
	return m.variants[m.current].ID
}

// reload fetches history, aggregates and best score for the current variant.
// Store errors leave the affected part empty.
func (m *ScoreboardModel) reload() {
	m.history, m.stats, m.best = nil, storage.Stats{}, 0
	id := m.variantID()
	if m.store != nil && id != "" {
		if h, err := m.store.TopRounds(id, historyLimit); err == nil {
			m.history = h
		}
		if st, err := m.store.Stats(id); err == nil {
			m.stats = st
		}
		if b, err := m.store.LoadBest(id); err == nil {
			m.best = b
		}
	}

	rows := make([]table.Row, 0, len(m.history))
	for i, e := range m.history {
		rows = append(rows, table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(e.Score),
			e.PlayedAt.Format(dateLayout),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Best is the larger of the persisted best and the best round in history.
func (m ScoreboardModel) Best() int {
	return max(m.best, m.stats.Best)
}

// Variant returns the ID of the variant on display.
func (m ScoreboardModel) Variant() string {
	return m.variantID()
}

// Rows returns the number of history rows on display.
func (m ScoreboardModel) Rows() int {
	return len(m.history)
}

func (m *ScoreboardModel) step(delta int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.current = ((m.current+delta)%n + n) % n
	m.reload()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layoutTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	s := m.styles

	var b strings.Builder
	b.WriteString(centerText(s.title.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	history := s.panel.Render(m.historyView())
	if m.wide() {
		body := lipgloss.JoinHorizontal(lipgloss.Top, history, "  ", s.panel.Width(statsPanelWidth).Render(m.statsView()))
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, history))
		b.WriteString("\n")
		b.WriteString(centerText(m.statsLine(), m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(centerText(s.footer.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// tabs renders one tab per variant, or just the current one with arrows
// when they do not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.variants) == 0 {
		return m.styles.label.Render("no variants registered")
	}
	parts := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			parts[i] = m.styles.tabOn.Render(v.Title)
		} else {
			parts[i] = m.styles.tab.Render(v.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(line) > m.width-4 {
		line = "‹ " + m.styles.tabOn.Render(m.variants[m.current].Title) + " ›"
	}
	return line
}

func (m ScoreboardModel) historyView() string {
	if len(m.history) == 0 {
		return m.styles.empty.Render("No rounds recorded yet.")
	}
	return m.table.View()
}

// statsView is the panel shown beside the history on wide terminals.
func (m ScoreboardModel) statsView() string {
	s := m.styles
	line := func(label, value string) string {
		return s.label.Render(fmt.Sprintf("%-7s", label)) + " " + s.value.Render(value)
	}
	lines := []string{line("Best", fmt.Sprint(m.Best()))}
	if m.stats.Rounds > 0 {
		lines = append(lines,
			line("Rounds", fmt.Sprint(m.stats.Rounds)),
			line("Avg", fmt.Sprintf("%.1f", m.stats.Mean)),
			line("Total", fmt.Sprint(m.stats.Total)),
			line("Last", m.stats.LastPlayed.Format(dateLayout)),
		)
	} else {
		lines = append(lines, s.label.Render("no rounds yet"))
	}
	return strings.Join(lines, "\n")
}

// statsLine is the collapsed form of statsView.
func (m ScoreboardModel) statsLine() string {
	if m.stats.Rounds == 0 {
		return m.styles.label.Render(fmt.Sprintf("Best %d", m.Best()))
	}
	return m.styles.label.Render(fmt.Sprintf("Best %d · Rounds %d · Avg %.1f",
		m.Best(), m.stats.Rounds, m.stats.Mean))
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard as its own program. goBack is false
// when the user quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height, nil), tea.WithAltScreen()).Run()
	if err != nil {
		return false, fmt.Errorf("tui: scoreboard: %w", err)
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
