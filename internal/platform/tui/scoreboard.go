package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/uberjump/internal/levels"
	"github.com/vovakirdan/uberjump/internal/progress"
	"github.com/vovakirdan/uberjump/internal/storage"
)

const (
	sidebarWidth = 26  // Level list, including padding
	maxScores    = 100 // Runs loaded per level
	chromeRows   = 9   // Title, summary, borders and help around the table
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextLevel, k.PrevLevel},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "prev level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// levelBoard is the per-level data shown in the sidebar.
type levelBoard struct {
	level *levels.Level
	best  int
}

// ScoreboardModel browses the run history of every level.
type ScoreboardModel struct {
	boards    []levelBoard
	cursor    int
	store     *storage.Store
	progress  progress.Record
	scores    []storage.ScoreEntry
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	theme     Theme
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over the given levels. A nil
// store shows empty tables.
func NewScoreboardModel(lvls []*levels.Level, store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		boards: make([]levelBoard, len(lvls)),
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		theme:  DefaultTheme(),
		width:  width,
		height: height,
	}
	m.help.Width = width

	for i, l := range lvls {
		m.boards[i].level = l
		if store != nil {
			if best, err := store.HighScore(l.ID); err == nil {
				m.boards[i].best = best
			}
		}
	}
	if store != nil {
		if rec, err := store.LoadProgress(); err == nil {
			m.progress = rec
		}
	}

	m.table = m.newTable()
	m.loadScores()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Climb", Width: 6},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-chromeRows)),
	)

	s := table.DefaultStyles()
	s.Header = m.theme.TableHeader
	s.Selected = m.theme.TableSelected
	t.SetStyles(s)
	return t
}

// current returns the level being shown, or nil when there are none.
func (m ScoreboardModel) current() *levels.Level {
	if len(m.boards) == 0 {
		return nil
	}
	return m.boards[m.cursor].level
}

func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	if l := m.current(); l != nil && m.store != nil {
		if scores, err := m.store.TopScores(l.ID, maxScores); err == nil {
			m.scores = scores
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d%%", climbPercent(s.Score, m.current())),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// climbPercent is how much of the level's height a score covers, capped
// at 100.
func climbPercent(score int, l *levels.Level) int {
	if l == nil || l.EndY <= 0 {
		return 0
	}
	return min(100, score*100/l.EndY)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
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

		case key.Matches(msg, m.keys.NextLevel):
			m.moveLevel(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			m.moveLevel(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(3, m.height-chromeRows))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// moveLevel switches to the neighbouring level, wrapping at both ends.
func (m *ScoreboardModel) moveLevel(delta int) {
	if len(m.boards) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.boards)) % len(m.boards)
	m.loadScores()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "HIGH SCORES"
	if l := m.current(); l != nil {
		title += " - " + l.Name
	}
	b.WriteString(centerText(m.theme.MenuTitle.Render(title), m.width))
	b.WriteString("\n")
	summary := fmt.Sprintf("Best overall: %d   Stars: %d", m.progress.HighScore, m.progress.Stars)
	b.WriteString(centerText(m.theme.MenuDescription.Render(summary), m.width))
	b.WriteString("\n\n")

	tableView := m.theme.PanelBorder.Render(m.tableContent())
	if m.width >= sidebarWidth+lipgloss.Width(tableView)+2 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", tableView))
	} else {
		b.WriteString(tableView)
	}

	b.WriteString("\n")
	b.WriteString(m.theme.HUDControls.Render(m.help.View(m.keys)))
	return b.String()
}

// sidebar lists every level with its best run.
func (m ScoreboardModel) sidebar() string {
	var b strings.Builder
	b.WriteString(m.theme.PanelTitle.Render("Levels"))
	b.WriteString("\n")

	nameWidth := sidebarWidth - 12
	for i, board := range m.boards {
		name := board.level.Name
		if len(name) > nameWidth {
			name = name[:nameWidth-1] + "."
		}
		line := fmt.Sprintf("  %-*s %5d", nameWidth, name, board.best)
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			line = "> " + line[2:]
			style = m.theme.MenuItemActive
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return m.theme.PanelBorder.Width(sidebarWidth).Render(strings.TrimSuffix(b.String(), "\n"))
}

func (m ScoreboardModel) tableContent() string {
	if len(m.scores) == 0 {
		return m.theme.MenuDescription.Italic(true).Padding(1, 2).
			Render("No runs recorded yet.\nClimb this level to set a score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to the level picker.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
// Returns true if user pressed back, false if quitting.
func RunScoreboard(lvls []*levels.Level, store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(lvls, store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
