package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/platform"
	"github.com/vovakirdan/tui-pong/internal/session"
)

// FooterHeight is the number of rows below the playfield.
const FooterHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model hosting one Pong session. Bubble Tea
// messages become platform events; every tick runs one frame.
type Model struct {
	session  *session.Session
	tickRate int
	help     help.Model
	keys     ActionKeyMap
	quitting bool
	now      func() time.Time
}

// NewModel wraps a session.
func NewModel(s *session.Session, tickRate int) Model {
	return Model{
		session:  s,
		tickRate: tickRate,
		help:     help.New(),
		keys:     NewActionKeyMap(s.Remapper()),
		now:      time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)

	case tea.MouseMsg:
		m.session.Push(MapMouse(msg)...)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		h := max(msg.Height-FooterHeight, 0)
		m.session.Push(platform.Resized(uint32(msg.Width), uint32(h)))

	case tea.FocusMsg:
		m.session.Push(platform.Focused(true))

	case tea.BlurMsg:
		m.session.Push(platform.Focused(false))

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) {
	in := MapKey(msg)
	if in.Close {
		m.session.Push(platform.Closed())
		return
	}
	if in.Char != 0 {
		m.session.Push(platform.ReceivedCharacter(in.Char))
	}
	if in.Key != platform.KeyAbsent {
		m.session.PressKey(in.Key, m.now())
	}
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.session.Frame(now)
	if m.session.Quit() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// View renders the playfield and the key help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.session.Render()) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run plays a session in the local terminal until the player quits.
func Run(s *session.Session, tickRate int) error {
	p := tea.NewProgram(
		NewModel(s, tickRate),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
