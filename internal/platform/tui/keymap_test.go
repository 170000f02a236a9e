package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/termgrid/snake/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key  string
		want core.Action
	}{
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"k", core.ActionUp},
		{"down", core.ActionDown},
		{"s", core.ActionDown},
		{"j", core.ActionDown},
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"h", core.ActionLeft},
		{"right", core.ActionRight},
		{"d", core.ActionRight},
		{"l", core.ActionRight},
		{"r", core.ActionRestart},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"x", core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := km.Action(keyMsg(tc.key)); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.key, got, tc.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should list bindings")
	}
	if len(km.FullHelp()) == 0 {
		t.Error("FullHelp should list binding groups")
	}
}
