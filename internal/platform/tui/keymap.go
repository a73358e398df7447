package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkostin/pathgrid/internal/engine"
)

// KeyMapper translates Bubble Tea key messages to core key codes.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a core key code.
// Returns the code and whether the key is bound.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (code int, ok bool) {
	switch msg.String() {
	case "r":
		return engine.KeyRegenerate, true
	case "o":
		return engine.KeyToggleOverlay, true
	case "f":
		return engine.KeyToggleFollow, true
	}
	return 0, false
}

// MapMove translates arrow/WASD keys to a pointer step. Terminals without
// mouse support steer the virtual pointer this way.
func (km *KeyMapper) MapMove(msg tea.KeyMsg) (dx, dy int, ok bool) {
	switch msg.String() {
	case "up", "w":
		return 0, -1, true
	case "down", "s":
		return 0, 1, true
	case "left", "a":
		return -1, 0, true
	case "right", "d":
		return 1, 0, true
	}
	return 0, 0, false
}

// IsQuit reports whether the key message requests quitting the host.
func (km *KeyMapper) IsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return true
	}
	return false
}

// playKeyMap defines the help footer bindings for the play view.
type playKeyMap struct {
	Move       key.Binding
	Regenerate key.Binding
	Overlay    key.Binding
	Follow     key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k playKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Regenerate, k.Overlay, k.Follow, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k playKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Regenerate},
		{k.Overlay, k.Follow, k.Quit},
	}
}

func defaultPlayKeyMap() playKeyMap {
	return playKeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "w", "a", "s", "d"),
			key.WithHelp("arrows/wasd", "move goal"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new grid"),
		),
		Overlay: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "overlay"),
		),
		Follow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "follow"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
