package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/session"
)

func newTestModel(t *testing.T) (Model, *session.Session) {
	t.Helper()
	s, err := session.New(session.Options{
		Pong:     config.DefaultPongConfig(),
		Bindings: config.DefaultBindings(),
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 23, TickRate: 60, Seed: 3},
	})
	if err != nil {
		t.Fatalf("session.New failed: %v", err)
	}
	m := NewModel(s, 60)
	m.now = func() time.Time { return time.Unix(100, 0) }
	return m, s
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelServe(t *testing.T) {
	m, s := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, cmd := update(t, m, TickMsg(time.Unix(100, 0)))
	if cmd == nil {
		t.Error("Expected the tick loop to continue")
	}
	if !s.State().Match.RoundActive {
		t.Error("Space should start the round")
	}
	if view := m.View(); !strings.Contains(view, "serve") {
		t.Errorf("Expected key help in the view, got %q", view)
	}
}

func TestModelPaddleKeys(t *testing.T) {
	m, s := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	update(t, m, TickMsg(time.Unix(100, 0)))

	if v := s.State().Paddles[pong.Right].VelocityDown; v != 2 {
		t.Errorf("right paddle VelocityDown = %v, expected 2", v)
	}
}

func TestModelQuit(t *testing.T) {
	m, s := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	m, cmd := update(t, m, TickMsg(time.Unix(100, 0)))
	if !s.Quit() {
		t.Error("ctrl+c should end the session")
	}
	if cmd == nil {
		t.Fatal("Expected tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.Quit command")
	}
	if m.View() != "" {
		t.Error("Expected empty view after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m, s := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})
	update(t, m, TickMsg(time.Unix(100, 0)))

	screen := s.Render()
	if screen.Width() != 100 || screen.Height() != 30 {
		t.Errorf("playfield = %dx%d, expected 100x30", screen.Width(), screen.Height())
	}
}

func TestActionKeyMap(t *testing.T) {
	_, s := newTestModel(t)
	km := NewActionKeyMap(s.Remapper())

	short := km.ShortHelp()
	if len(short) != len(actionHelp) {
		t.Fatalf("Expected %d bindings, got %d", len(actionHelp), len(short))
	}
	serve := short[4].Help()
	if serve.Key != "space/mouse1" || serve.Desc != "serve" {
		t.Errorf("serve help = %+v", serve)
	}
}

func TestRenderScreen(t *testing.T) {
	screen := core.NewScreen(3, 2)
	screen.SetColored(0, 0, 'a', core.ColorRed)
	screen.Set(1, 1, 'b')

	out := RenderScreen(screen)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Expected 2 lines, got %q", out)
	}
	if !strings.Contains(out, "a") || !strings.Contains(out, "b") {
		t.Errorf("Missing content in %q", out)
	}
}
