package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

type fakeHistory struct {
	matches []storage.Match
	misses  map[string][]storage.Miss
}

func (f fakeHistory) RecentMatches(limit int) ([]storage.Match, error) {
	return f.matches, nil
}

func (f fakeHistory) MatchMisses(id string) ([]storage.Miss, error) {
	return f.misses[id], nil
}

func TestHistoryEmpty(t *testing.T) {
	m := NewHistoryModel(fakeHistory{}, 80, 24)
	if !strings.Contains(m.View(), "No matches recorded yet") {
		t.Errorf("Expected empty message, got %q", m.View())
	}
}

func TestHistoryDrillDown(t *testing.T) {
	src := fakeHistory{
		matches: []storage.Match{
			{ID: "aaaaaaaa-1111", Player: "ann", Difficulty: "easy", LeftScore: 2, RightScore: 1, StartedAt: time.Now()},
			{ID: "bbbbbbbb-2222", Player: "ben", Difficulty: "hard", StartedAt: time.Now()},
		},
		misses: map[string][]storage.Miss{
			"aaaaaaaa-1111": {
				{Round: 1, Side: "right", LeftScore: 1},
				{Round: 2, Side: "left", LeftScore: 1, RightScore: 1},
			},
		},
	}
	m := NewHistoryModel(src, 100, 30)
	if !strings.Contains(m.View(), "ann") {
		t.Fatalf("Expected match rows, got %q", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(HistoryModel)
	if m.selected == nil || m.selected.ID != "aaaaaaaa-1111" {
		t.Fatalf("Expected first match selected, got %+v", m.selected)
	}
	if len(m.misses) != 2 || !strings.Contains(m.View(), "MATCH aaaaaaaa-1111") {
		t.Errorf("Expected miss view, got %q", m.View())
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(HistoryModel)
	if m.selected != nil || cmd != nil {
		t.Error("Esc in the miss view should go back to the match list")
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(HistoryModel)
	if !m.quitting || cmd == nil {
		t.Error("q should quit")
	}
}
