package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkostin/pathgrid/internal/engine"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		code int
		ok   bool
	}{
		{"r", engine.KeyRegenerate, true},
		{"o", engine.KeyToggleOverlay, true},
		{"f", engine.KeyToggleFollow, true},
		{"x", 0, false},
		{"1", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			code, ok := km.MapKey(keyMsg(tc.key))
			if code != tc.code || ok != tc.ok {
				t.Errorf("MapKey(%q) = (%d, %v), expected (%d, %v)",
					tc.key, code, ok, tc.code, tc.ok)
			}
		})
	}
}

func TestMapMove(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		dx, dy int
		ok     bool
	}{
		{"up", 0, -1, true},
		{"w", 0, -1, true},
		{"down", 0, 1, true},
		{"s", 0, 1, true},
		{"left", -1, 0, true},
		{"a", -1, 0, true},
		{"right", 1, 0, true},
		{"d", 1, 0, true},
		{"z", 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			dx, dy, ok := km.MapMove(keyMsg(tc.key))
			if dx != tc.dx || dy != tc.dy || ok != tc.ok {
				t.Errorf("MapMove(%q) = (%d, %d, %v), expected (%d, %d, %v)",
					tc.key, dx, dy, ok, tc.dx, tc.dy, tc.ok)
			}
		})
	}
}

func TestIsQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, k := range []string{"q", "ctrl+c", "esc"} {
		if !km.IsQuit(keyMsg(k)) {
			t.Errorf("IsQuit(%q) = false, expected true", k)
		}
	}
	for _, k := range []string{"r", "w", "x"} {
		if km.IsQuit(keyMsg(k)) {
			t.Errorf("IsQuit(%q) = true, expected false", k)
		}
	}
}
