package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/uberjump/internal/core"
	"github.com/vovakirdan/uberjump/internal/jump"
)

// helpRows is the space kept below the play field for the help line.
const helpRows = 1

// sessionPresenter collects what the game presents between renders.
type sessionPresenter struct {
	result      *jump.Result
	bestAtStart int
	haveBest    bool
}

func (p *sessionPresenter) PresentStart() {
	p.result = nil
	p.haveBest = false
}

func (p *sessionPresenter) RenderFrame(f jump.Frame) {
	if !p.haveBest {
		p.bestAtStart = f.HighScore
		p.haveBest = true
	}
}

func (p *sessionPresenter) PresentEndOfSession(r jump.Result) {
	p.result = &r
}

// GameModel is the Bubble Tea model that runs one level.
type GameModel struct {
	game       *jump.Game
	loop       uint64
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	theme      Theme
	presenter  *sessionPresenter
	inputFrame core.InputFrame
	steer      float64 // Steering held since the last sample
	gameState  core.GameState
	canGoBack  bool // Esc returns to the level picker
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game and attaches itself as
// the game's presenter.
func NewGameModel(game *jump.Game, cfg core.RuntimeConfig, theme Theme) GameModel {
	presenter := &sessionPresenter{}
	game.SetPresenter(presenter)

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		loop:       loopIDs.Add(1),
		screen:     core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-helpRows)),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		theme:      theme,
		presenter:  presenter,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.loop, m.config.TickRate), sampleCmd(m.loop))
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(1, msg.Height-helpRows))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()

	case SampleMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		m.game.Tilt().Push(m.steer)
		m.steer = 0
		return m, sampleCmd(m.loop)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys

	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case m.canGoBack && key.Matches(msg, keys.Back) &&
		(m.gameState.GameOver || m.gameState.Paused || !m.gameState.Started):
		m.backToMenu = true
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if s := Steer(m.inputFrame); s != 0 {
		m.steer = s
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.steer = 0
		m.inputFrame.Clear()
		return m, tickCmd(m.loop, m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.inputFrame.Clear()
	return m, tickCmd(m.loop, m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".uberjump", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if r := m.presenter.result; r != nil {
		panel := renderEndPanel(m.theme, *r, m.presenter.bestAtStart)
		body = lipgloss.Place(m.screen.Width(), m.screen.Height(), lipgloss.Center, lipgloss.Center, panel)
	} else {
		m.game.Render(m.screen)
		body = RenderScreen(m.screen)
	}

	return body + "\n" + m.theme.HUDControls.Render(m.help.View(m.keyMapper.Keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level picker.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a game in the local terminal until the user quits.
func Run(game *jump.Game, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, cfg, DefaultTheme())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
