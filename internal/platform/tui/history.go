package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

const maxHistory = 100

// HistorySource is the part of the store the browser reads.
type HistorySource interface {
	RecentMatches(limit int) ([]storage.Match, error)
	MatchMisses(matchID string) ([]storage.Miss, error)
}

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "misses"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel browses recorded matches and the misses of each.
type HistoryModel struct {
	source   HistorySource
	matches  []storage.Match
	selected *storage.Match // non-nil while showing misses
	misses   []storage.Miss
	err      error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel loads the most recent matches.
func NewHistoryModel(source HistorySource, width, height int) HistoryModel {
	m := HistoryModel{
		source: source,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.matches, m.err = source.RecentMatches(maxHistory)
	m.table = m.matchTable()
	return m
}

func newTable(columns []table.Column, rows []table.Row, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(height-8, 3)), // header, help and margins
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

func (m HistoryModel) matchTable() table.Model {
	columns := []table.Column{
		{Title: "Match", Width: 8},
		{Title: "Player", Width: 12},
		{Title: "Level", Width: 7},
		{Title: "Score", Width: 7},
		{Title: "Rounds", Width: 6},
		{Title: "Ended", Width: 10},
		{Title: "Date", Width: 12},
	}
	rows := make([]table.Row, len(m.matches))
	for i, match := range m.matches {
		rows[i] = table.Row{
			match.ID[:min(8, len(match.ID))],
			match.Player,
			match.Difficulty,
			fmt.Sprintf("%d - %d", match.LeftScore, match.RightScore),
			fmt.Sprintf("%d", match.Rounds),
			match.EndReason,
			match.StartedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return newTable(columns, rows, m.height)
}

func (m HistoryModel) missTable() table.Model {
	columns := []table.Column{
		{Title: "Round", Width: 6},
		{Title: "Missed", Width: 7},
		{Title: "Score", Width: 7},
		{Title: "Time", Width: 10},
	}
	rows := make([]table.Row, len(m.misses))
	for i, miss := range m.misses {
		rows[i] = table.Row{
			fmt.Sprintf("%d", miss.Round),
			miss.Side,
			fmt.Sprintf("%d - %d", miss.LeftScore, miss.RightScore),
			miss.CreatedAt.Local().Format("15:04:05"),
		}
	}
	return newTable(columns, rows, m.height)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.selected == nil {
				m.quitting = true
				return m, tea.Quit
			}
			m.selected = nil
			m.misses = nil
			m.table = m.matchTable()
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if m.selected != nil || len(m.matches) == 0 {
				return m, nil
			}
			match := m.matches[m.table.Cursor()]
			m.selected = &match
			m.misses, m.err = m.source.MatchMisses(match.ID)
			m.table = m.missTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.selected != nil {
			m.table = m.missTable()
		} else {
			m.table = m.matchTable()
		}
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := "MATCH HISTORY"
	if m.selected != nil {
		title = fmt.Sprintf("MATCH %s  %d - %d", m.selected.ID, m.selected.LeftScore, m.selected.RightScore)
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, titleStyle.Render(title)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.content()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m HistoryModel) content() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not load history:\n" + m.err.Error())
	case m.selected == nil && len(m.matches) == 0:
		return emptyStyle.Render("No matches recorded yet.\nRun 'pong play' to start one!")
	case m.selected != nil && len(m.misses) == 0:
		return emptyStyle.Render("Nobody missed in this match.")
	}
	return m.table.View()
}

// RunHistory runs the history browser.
func RunHistory(source HistorySource, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(source, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
