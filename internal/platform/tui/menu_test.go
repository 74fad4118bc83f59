package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term2048/internal/storage"
)

func menuPress(m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuSelection(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuChoice
	}{
		{"first item", []tea.KeyMsg{enter}, ChoicePlay},
		{"second item", []tea.KeyMsg{down, enter}, ChoiceScores},
		{"last item", []tea.KeyMsg{down, down, enter}, ChoiceQuit},
		{"cursor stops at bottom", []tea.KeyMsg{down, down, down, down, enter}, ChoiceQuit},
		{"cursor stops at top", []tea.KeyMsg{up, up, enter}, ChoicePlay},
		{"quit key", []tea.KeyMsg{runeKey('q')}, ChoiceQuit},
		{"escape", []tea.KeyMsg{{Type: tea.KeyEsc}}, ChoiceQuit},
		{"no selection", []tea.KeyMsg{down}, ChoiceNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := menuPress(NewMenuModel(nil, 80, 24), tc.keys...)
			if got := m.Selected(); got != tc.want {
				t.Errorf("Selected() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store := openStore(t)
	store.SaveResult(storage.Result{Score: 1234, CreatedAt: time.Now()})

	view := NewMenuModel(store, 80, 24).View()
	if !strings.Contains(view, "Best score: 1234") {
		t.Errorf("menu should show the best score:\n%s", view)
	}
	if !strings.Contains(view, "> New Game") {
		t.Error("cursor should start on New Game")
	}
}
