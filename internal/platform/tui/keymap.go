package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// KeyMap holds the key bindings for every game action.
// It implements help.KeyMap so the footer can list the controls.
type KeyMap struct {
	MoveLeft  key.Binding
	MoveRight key.Binding
	SoftDrop  key.Binding
	Rotate    key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Quit      key.Binding
	Help      key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(c config.ControlsConfig) KeyMap {
	return KeyMap{
		MoveLeft:  binding(c.MoveLeft, "left"),
		MoveRight: binding(c.MoveRight, "right"),
		SoftDrop:  binding(c.SoftDrop, "drop"),
		Rotate:    binding(c.Rotate, "rotate"),
		Pause:     binding(c.Pause, "pause"),
		Restart:   binding(c.Restart, "restart"),
		Quit:      binding(c.Quit, "quit"),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpLabel(keys), desc))
}

// helpLabel shows at most two keys, with arrows as glyphs.
func helpLabel(keys []string) string {
	arrows := map[string]string{"left": "←", "right": "→", "up": "↑", "down": "↓"}
	labels := make([]string, 0, 2)
	for _, k := range keys {
		if len(labels) == 2 {
			break
		}
		if a, ok := arrows[k]; ok {
			k = a
		}
		labels = append(labels, k)
	}
	return strings.Join(labels, "/")
}

// ShortHelp returns the bindings shown in the one-line footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoveLeft, k.MoveRight, k.Rotate, k.SoftDrop, k.Pause, k.Quit, k.Help}
}

// FullHelp returns the bindings shown when help is expanded.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MoveLeft, k.MoveRight, k.SoftDrop, k.Rotate},
		{k.Pause, k.Restart, k.Quit, k.Help},
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper from the configured controls.
func NewKeyMapper(c config.ControlsConfig) *KeyMapper {
	return &KeyMapper{keys: NewKeyMap(c)}
}

// KeyMap returns the underlying bindings.
func (km *KeyMapper) KeyMap() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.MoveLeft):
		return core.ActionMoveLeft, false
	case key.Matches(msg, km.keys.MoveRight):
		return core.ActionMoveRight, false
	case key.Matches(msg, km.keys.SoftDrop):
		return core.ActionSoftDrop, false
	case key.Matches(msg, km.keys.Rotate):
		return core.ActionRotate, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}
