package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/game"
	"github.com/vovakirdan/tui-battleship/internal/savegame"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

// footerLines is reserved below the boards for the prompt and help bar.
const footerLines = 3

// ResultSaver records finished games. *storage.Store implements it.
type ResultSaver interface {
	SaveResult(r storage.Result) (string, error)
}

type mode int

const (
	modePlay mode = iota
	modeSavePrompt
	modeBrowser
)

// Model is the Bubble Tea model for one battleship session.
type Model struct {
	game        *game.Game
	screen      *core.Screen
	saves       *savegame.Store
	results     ResultSaver
	logger      *log.Logger
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	keyMapper   *KeyMapper
	help        help.Model
	prompt      textinput.Model
	browser     SavesModel
	mode        mode
	quitting    bool
	resultSaved bool // Whether the result of the current finished game was recorded
}

// NewModel creates a model around g. saves and results may be nil.
func NewModel(g *game.Game, saves *savegame.Store, results ResultSaver, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	ti := textinput.New()
	ti.Placeholder = "leave empty for a generated name"
	ti.CharLimit = 64
	ti.Width = 40
	ti.Prompt = "Save as: "

	g.Reset(cfg)
	g.Resize(cfg.ScreenW, cfg.ScreenH-footerLines)

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerLines, 1)),
		saves:      saves,
		results:    results,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  g.State(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		prompt:     ti,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case tea.KeyMsg:
		switch m.mode {
		case modeSavePrompt:
			return m.handlePromptKey(msg)
		case modeBrowser:
			return m.handleBrowserMsg(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input on the play screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Save):
		m.mode = modeSavePrompt
		m.prompt.SetValue("")
		return m, m.prompt.Focus()
	case key.Matches(msg, keys.Load):
		m.mode = modeBrowser
		m.browser = NewSavesModel(m.saves, m.config.ScreenW, m.config.ScreenH)
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handlePromptKey edits the save name; enter saves, esc cancels.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		name := strings.TrimSpace(m.prompt.Value())
		if saved, err := m.game.Save(name); err != nil {
			m.logger.Warn("save failed", "name", name, "error", err)
		} else {
			m.logger.Debug("saved from TUI", "name", saved)
		}
		m.closePrompt()
		return m, nil
	case tea.KeyEsc:
		m.closePrompt()
		return m, nil
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompt.Blur()
	m.prompt.SetValue("")
	m.mode = modePlay
}

// handleBrowserMsg forwards input to the saves browser and loads the pick.
func (m Model) handleBrowserMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.browser, cmd = m.browser.Update(msg)
	if !m.browser.Closed() {
		return m, cmd
	}

	if name, ok := m.browser.Chosen(); ok {
		if err := m.Load(name); err != nil {
			m.logger.Warn("load failed", "name", name, "error", err)
		}
	}
	m.mode = modePlay
	return m, cmd
}

// Load replaces the running game with a saved one. A save that is already
// finished is not recorded as a new result.
func (m *Model) Load(name string) error {
	if err := m.game.Load(name); err != nil {
		return err
	}
	m.resultSaved = m.game.Finished()
	m.gameState = m.game.State()
	return nil
}

// handleResize processes window resize events. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	h := max(msg.Height-footerLines, 1)
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.help.Width = msg.Width

	if m.mode == modeBrowser {
		m.browser, _ = m.browser.Update(msg)
	}
	return m, nil
}

// handleTick runs the queued input through the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	switch {
	case m.gameState.GameOver && !m.resultSaved:
		m.recordResult()
		m.resultSaved = true
	case !m.gameState.GameOver:
		m.resultSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// recordResult stores the finished game. Best-effort: failures are logged.
func (m *Model) recordResult() {
	if m.results == nil {
		return
	}
	st := m.game.Current().Stats()
	id, err := m.results.SaveResult(storage.Result{
		Shots:    st.Shots,
		Hits:     st.Hits,
		Misses:   st.Misses,
		Duration: m.game.CombatSeconds(),
	})
	if err != nil {
		m.logger.Warn("could not record result", "error", err)
		return
	}
	m.logger.Info("result recorded", "match", id, "shots", st.Shots)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeBrowser {
		return m.browser.View()
	}

	m.game.Render(m.screen)

	var footer string
	if m.mode == modeSavePrompt {
		footer = m.prompt.View()
	} else {
		footer = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keyMapper.Keys()))
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Game returns the wrapped game controller.
func (m Model) Game() *game.Game {
	return m.game
}

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	start := time.Now()
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	m.logger.Debug("session finished", "elapsed", time.Since(start).Round(time.Second))
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
