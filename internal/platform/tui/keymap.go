package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// KeyMap holds the in-game key bindings. It implements help.KeyMap.
type KeyMap struct {
	MoveUp     key.Binding
	MoveDown   key.Binding
	MoveLeft   key.Binding
	MoveRight  key.Binding
	ShootUp    key.Binding
	ShootDown  key.Binding
	ShootLeft  key.Binding
	ShootRight key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns WASD movement with arrow-key shooting.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		MoveUp:     key.NewBinding(key.WithKeys("w", "W"), key.WithHelp("wasd", "move")),
		MoveDown:   key.NewBinding(key.WithKeys("s", "S")),
		MoveLeft:   key.NewBinding(key.WithKeys("a", "A")),
		MoveRight:  key.NewBinding(key.WithKeys("d", "D")),
		ShootUp:    key.NewBinding(key.WithKeys("up", "i"), key.WithHelp("arrows/ijkl", "shoot")),
		ShootDown:  key.NewBinding(key.WithKeys("down", "k")),
		ShootLeft:  key.NewBinding(key.WithKeys("left", "j")),
		ShootRight: key.NewBinding(key.WithKeys("right", "l")),
		Pause:      key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoveUp, k.ShootUp, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns every binding that carries help text.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MoveUp, k.ShootUp},
		{k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys     KeyMap
	bindings []actionBinding
}

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{
		keys: keys,
		bindings: []actionBinding{
			{keys.MoveUp, core.ActionMoveUp},
			{keys.MoveDown, core.ActionMoveDown},
			{keys.MoveLeft, core.ActionMoveLeft},
			{keys.MoveRight, core.ActionMoveRight},
			{keys.ShootUp, core.ActionShootUp},
			{keys.ShootDown, core.ActionShootDown},
			{keys.ShootLeft, core.ActionShootLeft},
			{keys.ShootRight, core.ActionShootRight},
			{keys.Pause, core.ActionPause},
			{keys.Restart, core.ActionRestart},
			{keys.Quit, core.ActionQuit},
		},
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.bindings {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
