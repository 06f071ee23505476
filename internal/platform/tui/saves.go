package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-battleship/internal/savegame"
)

// SavesKeyMap defines the key bindings for the saves browser.
type SavesKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Load   key.Binding
	Delete key.Binding
	Back   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SavesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Load, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SavesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultSavesKeyMap returns default key bindings.
func DefaultSavesKeyMap() SavesKeyMap {
	return SavesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Load: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "load"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete", "x"),
			key.WithHelp("x", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
	}
}

// SavesModel lists saved games in a table and lets the player pick one.
type SavesModel struct {
	store   *savegame.Store
	entries []savegame.Entry
	table   table.Model
	help    help.Model
	keys    SavesKeyMap
	width   int
	height  int
	err     error

	chosen string // name picked with Load
	closed bool
}

// NewSavesModel creates a browser and loads the current list of saves.
func NewSavesModel(store *savegame.Store, width, height int) SavesModel {
	h := help.New()
	h.ShowAll = false

	m := SavesModel{
		store:  store,
		keys:   DefaultSavesKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

// createTable creates a new table sized to the window.
func (m *SavesModel) createTable() table.Model {
	nameW := m.width - 30
	if nameW < 20 {
		nameW = 20
	}
	if nameW > 40 {
		nameW = 40
	}
	columns := []table.Column{
		{Title: "Name", Width: nameW},
		{Title: "Saved", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload re-reads the save list from the store.
func (m *SavesModel) reload() {
	m.entries = nil
	m.err = nil
	if m.store != nil {
		m.entries, m.err = m.store.List()
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		saved := "-"
		if !e.UpdatedAt.IsZero() {
			saved = e.UpdatedAt.Format("Jan 02 15:04")
		}
		rows[i] = table.Row{e.Name, saved}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// selected returns the highlighted save name.
func (m SavesModel) selected() (string, bool) {
	row := m.table.SelectedRow()
	if len(row) == 0 {
		return "", false
	}
	return row[0], true
}

// Init initializes the browser.
func (m SavesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m SavesModel) Update(msg tea.Msg) (SavesModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.closed = true
			return m, nil

		case key.Matches(msg, m.keys.Load):
			if name, ok := m.selected(); ok {
				m.chosen = name
				m.closed = true
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if name, ok := m.selected(); ok && m.store != nil {
				if err := m.store.Delete(name); err != nil {
					m.err = err
					return m, nil
				}
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.reload()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m SavesModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var body string
	switch {
	case m.err != nil:
		body = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Render(m.err.Error())
	case len(m.entries) == 0:
		body = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2).
			Render("No saved games yet.\nPress ctrl+s while playing to save one.")
	default:
		body = m.table.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("SAVED GAMES"),
		boxStyle.Render(body),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// Chosen returns the save picked for loading, if any.
func (m SavesModel) Chosen() (string, bool) {
	return m.chosen, m.chosen != ""
}

// Closed reports whether the browser should be dismissed.
func (m SavesModel) Closed() bool {
	return m.closed
}
